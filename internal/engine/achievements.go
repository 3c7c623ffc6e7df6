package engine

import "fmt"

// Achievement is a profile badge derived from level and stats.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Earned      bool   `json:"earned"`
	Progress    int    `json:"progress"` // percent, 0..100
}

const (
	statMasteryTarget  = 50
	balancedStatTarget = 25
)

// AchievementChecker calculates which achievements the hunter has earned.
type AchievementChecker struct {
	stats Stats
	level int
}

func NewAchievementChecker(stats Stats, level int) *AchievementChecker {
	return &AchievementChecker{stats: stats, level: level}
}

// GetAchievements returns all achievements with their earned status.
func (c *AchievementChecker) GetAchievements() []Achievement {
	return []Achievement{
		{ID: "awakening", Name: "Awakening", Description: "Begin your journey as a hunter", Earned: true, Progress: 100},
		c.levelAchievement("novice_hunter", "Novice Hunter", 5),
		c.levelAchievement("skilled_hunter", "Skilled Hunter", 10),

		c.statAchievement("physical_prowess", "Physical Prowess", StatStrength),
		c.statAchievement("lightning_reflexes", "Lightning Reflexes", StatAgility),
		c.statAchievement("mind_master", "Mind Master", StatIntelligence),
		c.statAchievement("endurance_champion", "Endurance Champion", StatVitality),
		c.statAchievement("social_influence", "Social Influence", StatCharisma),

		c.balancedAchievement(),
	}
}

// CountEarned returns how many achievements have been earned.
func (c *AchievementChecker) CountEarned() int {
	count := 0
	for _, a := range c.GetAchievements() {
		if a.Earned {
			count++
		}
	}
	return count
}

func (c *AchievementChecker) CountTotal() int {
	return len(c.GetAchievements())
}

func (c *AchievementChecker) levelAchievement(id, name string, level int) Achievement {
	return Achievement{
		ID:          id,
		Name:        name,
		Description: fmt.Sprintf("Reach level %d", level),
		Earned:      c.level >= level,
		Progress:    percent(c.level, level),
	}
}

func (c *AchievementChecker) statAchievement(id, name string, stat Stat) Achievement {
	v := c.stats.Get(stat)
	return Achievement{
		ID:          id,
		Name:        name,
		Description: fmt.Sprintf("Reach %d %s", statMasteryTarget, stat.Label()),
		Earned:      v >= statMasteryTarget,
		Progress:    percent(v, statMasteryTarget),
	}
}

func (c *AchievementChecker) balancedAchievement() Achievement {
	lowest := c.stats.Get(WeakestStat(c.stats))
	return Achievement{
		ID:          "balanced_hunter",
		Name:        "Balanced Hunter",
		Description: fmt.Sprintf("Have at least %d in all stats", balancedStatTarget),
		Earned:      lowest >= balancedStatTarget,
		Progress:    percent(lowest, balancedStatTarget),
	}
}

func percent(v, target int) int {
	if v <= 0 || target <= 0 {
		return 0
	}
	if v >= target {
		return 100
	}
	return v * 100 / target
}

// Achievements is a convenience over the live profile.
func (s *Service) Achievements() []Achievement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return NewAchievementChecker(s.p.ledger.Stats, s.p.ledger.Level).GetAchievements()
}
