package engine

// Ledger owns stats, level and experience and the arithmetic that moves them.
// It has no persistence; Service snapshots and saves it after each mutation.
type Ledger struct {
	Stats  Stats
	Level  int
	Exp    int
	Recent RecentChanges
}

// LevelUp describes one leveling transition.
type LevelUp struct {
	From int
	To   int
	Boss bool
}

func NewLedger() Ledger {
	return Ledger{
		Stats:  DefaultStats(),
		Level:  1,
		Exp:    0,
		Recent: RecentChanges{},
	}
}

func (l Ledger) clone() Ledger {
	l.Recent = l.Recent.clone()
	return l
}

// ExpToNextLevel is derived from the current level.
func (l Ledger) ExpToNextLevel() int {
	return ExpToNextLevel(l.Level)
}

// AwardStat adds delta (which may be negative) to the stat and accumulates it
// in Recent. Unknown stats are ignored and reported as false.
func (l *Ledger) AwardStat(stat Stat, delta int) bool {
	if !l.Stats.add(stat, delta) {
		return false
	}
	if l.Recent == nil {
		l.Recent = RecentChanges{}
	}
	l.Recent[stat] += delta
	return true
}

// AwardExperience adds amount to exp. If the total reaches the current
// level's threshold, exactly one level-up happens and any surplus is dropped.
// It returns nil when no level-up occurred.
func (l *Ledger) AwardExperience(amount int) *LevelUp {
	l.Exp += amount
	if l.Exp < l.ExpToNextLevel() {
		return nil
	}
	return l.levelUp()
}

func (l *Ledger) levelUp() *LevelUp {
	from := l.Level
	l.Level++
	l.Exp = 0
	for _, s := range AllStats {
		l.AwardStat(s, LevelUpStatBonus)
	}
	return &LevelUp{From: from, To: l.Level, Boss: IsBossLevel(l.Level)}
}

// ResetRecentChanges clears the per-day delta ledger.
func (l *Ledger) ResetRecentChanges() {
	l.Recent = RecentChanges{}
}
