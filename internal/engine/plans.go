package engine

import "fmt"

// AdvancedPlanLevel is the level from which the mastery plan is recommended.
const AdvancedPlanLevel = 5

// TrainingPlan is a suggested multi-day focus derived from the current stats.
type TrainingPlan struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Days        int        `json:"days"`
	Difficulty  Difficulty `json:"difficulty"`
	Recommended bool       `json:"recommended"`
	Focus       []Stat     `json:"focus"`
	Activities  []string   `json:"activities"`
}

// StrongestStat is the first stat, in AllStats order, holding the maximum.
func StrongestStat(s Stats) Stat {
	best := AllStats[0]
	for _, st := range AllStats[1:] {
		if s.Get(st) > s.Get(best) {
			best = st
		}
	}
	return best
}

// WeakestStat is the last stat, in AllStats order, holding the minimum.
func WeakestStat(s Stats) Stat {
	worst := AllStats[0]
	for _, st := range AllStats[1:] {
		if s.Get(st) <= s.Get(worst) {
			worst = st
		}
	}
	return worst
}

// TrainingPlans returns the weakest-stat focus, balanced growth and
// strongest-stat mastery plans, in that order.
func TrainingPlans(stats Stats, level int) []TrainingPlan {
	weak, strong := WeakestStat(stats), StrongestStat(stats)
	return []TrainingPlan{
		{
			Title:       weak.Label() + " Training Focus",
			Description: fmt.Sprintf("A 7-day plan to improve your %s, your weakest stat.", weak),
			Days:        7,
			Difficulty:  DifficultyMedium,
			Recommended: true,
			Focus:       []Stat{weak},
			Activities: []string{
				fmt.Sprintf("Daily %s exercises - 20 minutes", weak),
				"Progressive difficulty increase",
				"Specialized training techniques",
			},
		},
		{
			Title:       "Balanced Growth Plan",
			Description: "A comprehensive plan focusing on improving all stats evenly.",
			Days:        14,
			Difficulty:  DifficultyMedium,
			Focus:       append([]Stat(nil), AllStats...),
			Activities: []string{
				"Daily rotation of different stat exercises",
				"Weekly progress tracking",
				"Balance-focused approach",
			},
		},
		{
			Title:       "Advanced " + strong.Label() + " Mastery",
			Description: fmt.Sprintf("Build on your strongest stat (%s) to reach new heights.", strong),
			Days:        10,
			Difficulty:  DifficultyHard,
			Recommended: level >= AdvancedPlanLevel,
			Focus:       []Stat{strong},
			Activities: []string{
				"Intensive specialized training",
				"Advanced techniques and challenges",
				"Skill refinement and perfection",
			},
		},
	}
}

// TrainingPlans derives plans from the live profile.
func (s *Service) TrainingPlans() []TrainingPlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return TrainingPlans(s.p.ledger.Stats, s.p.ledger.Level)
}
