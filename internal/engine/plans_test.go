package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrongestAndWeakestTieBreaks(t *testing.T) {
	flat := DefaultStats()
	assert.Equal(t, StatStrength, StrongestStat(flat), "first maximum")
	assert.Equal(t, StatCharisma, WeakestStat(flat), "last minimum")

	s := Stats{Strength: 12, Agility: 15, Intelligence: 9, Vitality: 15, Charisma: 9}
	assert.Equal(t, StatAgility, StrongestStat(s))
	assert.Equal(t, StatCharisma, WeakestStat(s))
}

func TestTrainingPlans(t *testing.T) {
	s := Stats{Strength: 20, Agility: 11, Intelligence: 8, Vitality: 10, Charisma: 12}

	plans := TrainingPlans(s, 1)
	require.Len(t, plans, 3)

	assert.Equal(t, "Intelligence Training Focus", plans[0].Title)
	assert.Equal(t, 7, plans[0].Days)
	assert.Equal(t, DifficultyMedium, plans[0].Difficulty)
	assert.True(t, plans[0].Recommended)
	assert.Equal(t, []Stat{StatIntelligence}, plans[0].Focus)

	assert.Equal(t, "Balanced Growth Plan", plans[1].Title)
	assert.Equal(t, 14, plans[1].Days)
	assert.False(t, plans[1].Recommended)
	assert.Equal(t, AllStats, plans[1].Focus)

	assert.Equal(t, "Advanced Strength Mastery", plans[2].Title)
	assert.Equal(t, DifficultyHard, plans[2].Difficulty)
	assert.False(t, plans[2].Recommended)

	assert.True(t, TrainingPlans(s, AdvancedPlanLevel)[2].Recommended)
}

func TestAchievements(t *testing.T) {
	c := NewAchievementChecker(DefaultStats(), 1)
	assert.Equal(t, 1, c.CountEarned(), "only awakening at the start")
	assert.Equal(t, 9, c.CountTotal())

	s := Stats{Strength: 50, Agility: 30, Intelligence: 25, Vitality: 26, Charisma: 40}
	got := map[string]Achievement{}
	for _, a := range NewAchievementChecker(s, 6).GetAchievements() {
		got[a.ID] = a
	}
	assert.True(t, got["novice_hunter"].Earned)
	assert.False(t, got["skilled_hunter"].Earned)
	assert.Equal(t, 60, got["skilled_hunter"].Progress)
	assert.True(t, got["physical_prowess"].Earned)
	assert.Equal(t, 60, got["lightning_reflexes"].Progress)
	assert.True(t, got["balanced_hunter"].Earned)
}
