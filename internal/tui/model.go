package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"hunterline/internal/engine"
	"hunterline/internal/ui"
)

const logLines = 5

type boardModel struct {
	ctx context.Context
	svc *engine.Service
	rec *engine.Recorder

	width  int
	height int

	snap     engine.Snapshot
	selected int

	confirmRefresh bool
	messages       []string
	lastLog        string
	loading        bool
}

type loadedMsg struct {
	snap engine.Snapshot
}

type completedMsg struct {
	res *engine.CompleteResult
	err error
}

type refreshedMsg struct {
	res *engine.RefreshResult
	err error
}

func newBoardModel(ctx context.Context, svc *engine.Service, rec *engine.Recorder) boardModel {
	m := boardModel{
		ctx:     ctx,
		svc:     svc,
		rec:     rec,
		loading: true,
		lastLog: "Loaded.",
	}
	m.collect()
	return m
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{snap: m.svc.Snapshot()}
	}
}

func (m boardModel) completeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteQuest(m.ctx, id)
		return completedMsg{res: res, err: err}
	}
}

func (m boardModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.Refresh(m.ctx)
		return refreshedMsg{res: res, err: err}
	}
}

// collect moves freshly emitted engine messages into the footer log.
func (m *boardModel) collect() {
	if m.rec == nil {
		return
	}
	for _, e := range m.rec.Drain() {
		m.messages = append(m.messages, ui.EventLine(e))
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.snap = msg.snap
		if m.selected >= len(m.snap.Quests) {
			m.selected = len(m.snap.Quests) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.collect()
		return m, nil
	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		if !msg.res.Applied {
			m.lastLog = "Nothing to complete."
			return m, nil
		}
		m.lastLog = fmt.Sprintf("%s +%d, +%d EXP (level %d → %d)",
			msg.res.Stat.Label(), msg.res.StatDelta, msg.res.ExpAwarded, msg.res.LevelBefore, msg.res.LevelAfter)
		return m, m.loadCmd()
	case refreshedMsg:
		if msg.err != nil {
			m.lastLog = "Refresh failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("New quests. %d penalties applied.", len(msg.res.Penalties))
		return m, m.loadCmd()
	case tea.KeyMsg:
		if m.confirmRefresh {
			m.confirmRefresh = false
			if msg.String() == "y" {
				m.lastLog = "Refreshing…"
				return m, m.refreshCmd()
			}
			m.lastLog = "Refresh cancelled."
			return m, nil
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "R":
			m.confirmRefresh = true
			m.lastLog = "Refresh quests? Unfinished quests cost 1 stat point each. (y/N)"
			return m, nil
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.snap.Quests)-1 {
				m.selected++
			}
			return m, nil
		case "c", " ", "enter":
			if m.selected < 0 || m.selected >= len(m.snap.Quests) {
				return m, nil
			}
			q := m.snap.Quests[m.selected]
			if q.Completed {
				m.lastLog = "Already done."
				return m, nil
			}
			m.lastLog = fmt.Sprintf("Completing %s…", q.Title)
			return m, m.completeCmd(q.ID)
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	leftW := 30
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 20 {
			leftW = 20
		}
	}

	left := padColumn(sidebar, leftW)
	body := joinColumns(left, main)
	return header + "\n\n" + body + "\n" + footer
}

func (m boardModel) renderHeader() string {
	if m.loading {
		return ui.Title.Render("Hunterline") + " — loading…"
	}
	name := m.snap.Name
	if name == "" {
		name = "Hunter"
	}
	return fmt.Sprintf("%s | %s | Level %d | EXP %d/%d %s",
		ui.Title.Render("Hunterline"), name, m.snap.Level, m.snap.Exp, m.snap.ExpToNextLevel,
		ui.ExpBar(m.snap.Exp, m.snap.ExpToNextLevel, 20))
}

func (m boardModel) renderSidebar() string {
	lines := []string{ui.PanelTitle.Render("Stats")}
	for _, s := range engine.AllStats {
		line := fmt.Sprintf("%s %-12s %3d", ui.StatIcon(s), s.Label(), m.snap.Stats.Get(s))
		if d := ui.Delta(m.snap.RecentChanges[s]); d != "" {
			line += " " + d
		}
		lines = append(lines, line)
	}
	lines = append(lines,
		"",
		ui.PanelTitle.Render("Keys"),
		"↑/↓ or j/k: move",
		"c/space: complete",
		"R: new quests",
		"r: reload",
		"q: quit",
	)
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	out := []string{ui.PanelTitle.Render("Daily Quests")}
	if len(m.snap.Quests) == 0 {
		out = append(out, ui.Muted.Render("(no quests)"))
		return strings.Join(out, "\n")
	}
	done := 0
	for i, q := range m.snap.Quests {
		if q.Completed {
			done++
		}
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%s %s %s  %s +%d · %d EXP",
			cursor, ui.QuestStatus(q), ui.CategoryIcon(q.Category), q.Title,
			q.StatBonus.Type.Label(), q.StatBonus.Value, q.Exp)
		if i == m.selected {
			line = ui.SelectedRow.Render(line)
		}
		out = append(out, line)
	}
	out = append(out, "", ui.Muted.Render(fmt.Sprintf("%d/%d completed", done, len(m.snap.Quests))))
	if done == len(m.snap.Quests) {
		out = append(out, ui.Good.Render(ui.IconTrophy+" All quests completed!"))
	}
	if i := m.selected; i >= 0 && i < len(m.snap.Quests) {
		out = append(out, "", ui.Dim.Render(m.snap.Quests[i].Description))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	start := len(m.messages) - logLines
	if start < 0 {
		start = 0
	}
	lines := append([]string(nil), m.messages[start:]...)
	lines = append(lines, ui.Muted.Render(m.lastLog))
	return strings.Join(lines, "\n")
}
