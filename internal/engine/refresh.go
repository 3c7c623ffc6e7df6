package engine

import (
	"context"
	"fmt"
	"time"

	"hunterline/internal/storage"
)

// Penalty is one unfinished quest's stat loss.
type Penalty struct {
	QuestID string `json:"questId"`
	Title   string `json:"title"`
	Stat    Stat   `json:"stat"`
	Delta   int    `json:"delta"`
}

type RefreshResult struct {
	Penalties []Penalty `json:"penalties"`
	Quests    []Quest   `json:"quests"`
}

// Refresh penalizes every unfinished quest and replaces the whole set.
// RecentChanges is left alone; only the daily cycle clears it.
func (s *Service) Refresh(ctx context.Context) (*RefreshResult, error) {
	s.mu.Lock()
	next := s.p.clone()
	res, out := s.refreshInto(&next)
	err := s.commit(ctx, next, KeyStats, KeyQuests, KeyRecentChanges)
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("refresh: %w", err)
	}
	s.publish(ctx, out)
	return res, nil
}

// refreshInto applies penalties and a new quest set to next without saving.
func (s *Service) refreshInto(next *profile) (*RefreshResult, outcome) {
	var out outcome
	res := &RefreshResult{}
	now := s.clock.Now()

	for _, q := range next.quests {
		if q.Completed {
			continue
		}
		stat := q.StatBonus.Type
		if !next.ledger.AwardStat(stat, QuestFailPenalty) {
			continue
		}
		res.Penalties = append(res.Penalties, Penalty{QuestID: q.ID, Title: q.Title, Stat: stat, Delta: QuestFailPenalty})
		out.event(Event{
			Kind:    EventQuestFailed,
			Message: fmt.Sprintf("You failed to complete %q. %s %d.", q.Title, stat.Label(), QuestFailPenalty),
			QuestID: q.ID,
			Stat:    stat,
			Delta:   QuestFailPenalty,
			At:      now,
		})
		out.logs = append(out.logs, storage.LogEntry{
			QuestID:    q.ID,
			Title:      q.Title,
			Outcome:    storage.OutcomeFailed,
			Stat:       string(stat),
			StatDelta:  QuestFailPenalty,
			RecordedAt: now,
		})
	}

	next.quests = s.generate()
	res.Quests = cloneQuests(next.quests)
	s.log.Debug("quests refreshed", "penalties", len(res.Penalties), "quests", len(res.Quests))
	return res, out
}

func newDayEvent(now time.Time) Event {
	return Event{
		Kind:    EventNewDay,
		Message: "New day, new quests! Your hunt continues...",
		At:      now,
	}
}
