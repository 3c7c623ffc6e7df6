package engine

type Stat string

const (
	StatStrength     Stat = "strength"
	StatAgility      Stat = "agility"
	StatIntelligence Stat = "intelligence"
	StatVitality     Stat = "vitality"
	StatCharisma     Stat = "charisma"
)

// AllStats lists the five attributes in display order.
var AllStats = []Stat{StatStrength, StatAgility, StatIntelligence, StatVitality, StatCharisma}

func (s Stat) IsValid() bool {
	switch s {
	case StatStrength, StatAgility, StatIntelligence, StatVitality, StatCharisma:
		return true
	default:
		return false
	}
}

// Label is the capitalized stat name used in messages.
func (s Stat) Label() string {
	if s == "" {
		return ""
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}

type Category string

const (
	CategoryPhysical     Category = "physical"
	CategoryMental       Category = "mental"
	CategoryIntelligence Category = "intelligence"
)

// Categories is the fixed pool order used by the generator.
var Categories = []Category{CategoryPhysical, CategoryMental, CategoryIntelligence}

func (c Category) IsValid() bool {
	switch c {
	case CategoryPhysical, CategoryMental, CategoryIntelligence:
		return true
	default:
		return false
	}
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

// Stats holds the five hunter attributes.
type Stats struct {
	Strength     int `json:"strength"`
	Agility      int `json:"agility"`
	Intelligence int `json:"intelligence"`
	Vitality     int `json:"vitality"`
	Charisma     int `json:"charisma"`
}

// DefaultStats is the starting profile: 10 in every attribute.
func DefaultStats() Stats {
	return Stats{Strength: 10, Agility: 10, Intelligence: 10, Vitality: 10, Charisma: 10}
}

func (s Stats) Get(stat Stat) int {
	switch stat {
	case StatStrength:
		return s.Strength
	case StatAgility:
		return s.Agility
	case StatIntelligence:
		return s.Intelligence
	case StatVitality:
		return s.Vitality
	case StatCharisma:
		return s.Charisma
	default:
		return 0
	}
}

// add applies delta to the named stat and reports whether the stat exists.
func (s *Stats) add(stat Stat, delta int) bool {
	switch stat {
	case StatStrength:
		s.Strength += delta
	case StatAgility:
		s.Agility += delta
	case StatIntelligence:
		s.Intelligence += delta
	case StatVitality:
		s.Vitality += delta
	case StatCharisma:
		s.Charisma += delta
	default:
		return false
	}
	return true
}

// RecentChanges is the net delta per stat since the last daily reset.
type RecentChanges map[Stat]int

func (r RecentChanges) clone() RecentChanges {
	out := make(RecentChanges, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

type StatBonus struct {
	Type  Stat `json:"type"`
	Value int  `json:"value"`
}

// Quest is one generated instance of a catalog template.
type Quest struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    Category   `json:"category"`
	Difficulty  Difficulty `json:"difficulty"`
	Exp         int        `json:"exp"`
	StatBonus   StatBonus  `json:"statBonus"`
	Completed   bool       `json:"completed"`
}

func (q Quest) valid() bool {
	return q.ID != "" && q.Category.IsValid() && q.Difficulty.IsValid() &&
		q.Exp > 0 && q.StatBonus.Type.IsValid() && q.StatBonus.Value > 0
}

func cloneQuests(qs []Quest) []Quest {
	out := make([]Quest, len(qs))
	copy(out, qs)
	return out
}
