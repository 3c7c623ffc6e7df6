package engine

import "fmt"

// Template is immutable catalog text a Quest is instantiated from.
type Template struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    Category   `json:"category"`
	Difficulty  Difficulty `json:"difficulty"`
	Exp         int        `json:"exp"`
	StatBonus   StatBonus  `json:"statBonus"`
}

// Catalog groups templates into the three category pools.
type Catalog struct {
	Physical     []Template
	Mental       []Template
	Intelligence []Template
}

// Pool returns the templates for one category.
func (c Catalog) Pool(cat Category) []Template {
	switch cat {
	case CategoryPhysical:
		return c.Physical
	case CategoryMental:
		return c.Mental
	case CategoryIntelligence:
		return c.Intelligence
	default:
		return nil
	}
}

// Size is the total number of templates across pools.
func (c Catalog) Size() int {
	return len(c.Physical) + len(c.Mental) + len(c.Intelligence)
}

// Validate checks every template against the known categories, difficulties and stats.
func (c Catalog) Validate() error {
	for _, cat := range Categories {
		for i, t := range c.Pool(cat) {
			switch {
			case t.Title == "":
				return fmt.Errorf("catalog %s[%d]: title is required", cat, i)
			case t.Category != cat:
				return fmt.Errorf("catalog %s[%d] %q: category %q does not match pool", cat, i, t.Title, t.Category)
			case !t.Difficulty.IsValid():
				return fmt.Errorf("catalog %s[%d] %q: invalid difficulty %q", cat, i, t.Title, t.Difficulty)
			case t.Exp <= 0:
				return fmt.Errorf("catalog %s[%d] %q: exp must be positive", cat, i, t.Title)
			case !t.StatBonus.Type.IsValid():
				return fmt.Errorf("catalog %s[%d] %q: invalid stat %q", cat, i, t.Title, t.StatBonus.Type)
			case t.StatBonus.Value <= 0:
				return fmt.Errorf("catalog %s[%d] %q: stat bonus must be positive", cat, i, t.Title)
			}
		}
	}
	return nil
}

func tmpl(cat Category, diff Difficulty, exp int, stat Stat, value int, title, desc string) Template {
	return Template{
		Title:       title,
		Description: desc,
		Category:    cat,
		Difficulty:  diff,
		Exp:         exp,
		StatBonus:   StatBonus{Type: stat, Value: value},
	}
}

// DefaultCatalog is the built-in quest catalog.
func DefaultCatalog() Catalog {
	return Catalog{
		Physical: []Template{
			tmpl(CategoryPhysical, DifficultyEasy, 20, StatStrength, 2,
				"Morning Exercise Routine", "Complete a 15-minute morning exercise routine to energize your day."),
			tmpl(CategoryPhysical, DifficultyMedium, 30, StatAgility, 2,
				"Cardio Challenge", "Complete a 20-minute cardio session to improve your endurance."),
			tmpl(CategoryPhysical, DifficultyMedium, 30, StatStrength, 3,
				"Strength Training", "Complete 3 sets of 10 push-ups, squats, and lunges."),
			tmpl(CategoryPhysical, DifficultyHard, 40, StatVitality, 3,
				"Endurance Builder", "Go for a 30-minute jog or run to build stamina."),
		},
		Mental: []Template{
			tmpl(CategoryMental, DifficultyEasy, 20, StatVitality, 2,
				"Mindfulness Meditation", "Practice 10 minutes of focused meditation to clear your mind."),
			tmpl(CategoryMental, DifficultyMedium, 30, StatIntelligence, 2,
				"Deep Focus Session", "Complete 25 minutes of uninterrupted work using the Pomodoro technique."),
			tmpl(CategoryMental, DifficultyMedium, 25, StatVitality, 2,
				"Stress Management", "Practice deep breathing exercises for 15 minutes to reduce stress."),
			tmpl(CategoryMental, DifficultyHard, 35, StatCharisma, 3,
				"Emotional Resilience", "Write a reflective journal entry about a recent challenge and how you overcame it."),
		},
		Intelligence: []Template{
			tmpl(CategoryIntelligence, DifficultyEasy, 20, StatIntelligence, 2,
				"Reading Session", "Read a book or educational article for 20 minutes to expand your knowledge."),
			tmpl(CategoryIntelligence, DifficultyMedium, 30, StatIntelligence, 3,
				"Problem Solving", "Complete a challenging puzzle or brain teaser to improve critical thinking."),
			tmpl(CategoryIntelligence, DifficultyMedium, 35, StatIntelligence, 3,
				"New Skill Acquisition", "Spend 30 minutes learning a new skill or studying a new topic."),
			tmpl(CategoryIntelligence, DifficultyHard, 40, StatCharisma, 3,
				"Creative Expression", "Spend 30 minutes writing, drawing, or engaging in another creative activity."),
		},
	}
}
