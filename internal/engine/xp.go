package engine

const (
	// ExpPerLevel scales the level threshold: expToNextLevel = level * ExpPerLevel.
	ExpPerLevel = 100

	// LevelUpStatBonus is added to every stat on each level-up.
	LevelUpStatBonus = 1

	// BossLevelInterval marks levels that announce a boss encounter.
	BossLevelInterval = 5

	// QuestFailPenalty is applied to the bonus stat of every unfinished quest on refresh.
	QuestFailPenalty = -1

	// QuestSetSize is the generator's target: one per category plus two extra.
	QuestSetSize = 5
)

// ExpToNextLevel returns the experience needed to leave the given level.
func ExpToNextLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return level * ExpPerLevel
}

// IsBossLevel reports whether reaching level triggers a boss encounter.
func IsBossLevel(level int) bool {
	return level > 0 && level%BossLevelInterval == 0
}
