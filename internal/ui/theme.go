package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hunterline/internal/engine"
)

// Hunterline theme (CLI + TUI).

const (
	IconQuest   = "🗡️"
	IconSparkle = "✨"
	IconDone    = "✅"
	IconOpen    = "⬜"
	IconTrophy  = "🏆"
	IconBolt    = "⚡"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconSkull   = "💀"
	IconLoop    = "🔁"
	IconScroll  = "📜"
	IconShield  = "🛡️"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var statColors = map[engine.Stat]lipgloss.Color{
	engine.StatStrength:     lipgloss.Color("#FF5757"),
	engine.StatAgility:      lipgloss.Color("#36DE7E"),
	engine.StatIntelligence: lipgloss.Color("#6272D9"),
	engine.StatVitality:     lipgloss.Color("#9256E5"),
	engine.StatCharisma:     lipgloss.Color("#FFB443"),
}

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
	BadgeBoss    = lipgloss.NewStyle().Bold(true).Foreground(cBad).Render("BOSS")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

func StatIcon(s engine.Stat) string {
	switch s {
	case engine.StatStrength:
		return "💪"
	case engine.StatAgility:
		return "⚡"
	case engine.StatIntelligence:
		return "🧠"
	case engine.StatVitality:
		return "❤️"
	case engine.StatCharisma:
		return "💬"
	default:
		return "•"
	}
}

// StatName renders the stat label in its color.
func StatName(s engine.Stat) string {
	c, ok := statColors[s]
	if !ok {
		return s.Label()
	}
	return lipgloss.NewStyle().Bold(true).Foreground(c).Render(s.Label())
}

func CategoryIcon(c engine.Category) string {
	switch c {
	case engine.CategoryPhysical:
		return "🏃"
	case engine.CategoryMental:
		return "🧘"
	case engine.CategoryIntelligence:
		return "📚"
	default:
		return IconQuest
	}
}

func DifficultyText(d engine.Difficulty) string {
	switch d {
	case engine.DifficultyEasy:
		return Good.Render("easy")
	case engine.DifficultyMedium:
		return Warn.Render("medium")
	case engine.DifficultyHard:
		return Bad.Render("hard")
	default:
		return Muted.Render(string(d))
	}
}

// Delta renders a signed stat change, or nothing for zero.
func Delta(d int) string {
	switch {
	case d > 0:
		return Good.Render(fmt.Sprintf("+%d", d))
	case d < 0:
		return Bad.Render(fmt.Sprintf("%d", d))
	default:
		return ""
	}
}

// ExpBar draws a width-cell progress bar for exp out of max.
func ExpBar(exp, max, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := 0
	if max > 0 && exp > 0 {
		filled = exp * width / max
	}
	if filled > width {
		filled = width
	}
	return Gold.Render(strings.Repeat("█", filled)) + Dim.Render(strings.Repeat("░", width-filled))
}

func QuestStatus(q engine.Quest) string {
	if q.Completed {
		return IconDone
	}
	return IconOpen
}

// EventLine renders one engine event for logs and footers.
func EventLine(e engine.Event) string {
	switch e.Kind {
	case engine.EventLevelUp:
		return BadgeLevelUp + " " + e.Message
	case engine.EventBossEncounter:
		return BadgeBoss + " " + e.Message
	case engine.EventQuestFailed:
		return Bad.Render(IconSkull) + " " + e.Message
	case engine.EventQuestCompleted:
		return IconSparkle + " " + e.Message
	case engine.EventNewDay:
		return IconLoop + " " + e.Message
	default:
		return IconInfo + " " + e.Message
	}
}
