package engine

import (
	"context"
	"fmt"
	"time"

	"hunterline/internal/storage"
)

type CompleteResult struct {
	QuestID       string `json:"questId"`
	Applied       bool   `json:"applied"` // false when the id was unknown or already completed
	Stat          Stat   `json:"stat,omitempty"`
	StatDelta     int    `json:"statDelta"`
	ExpAwarded    int    `json:"expAwarded"`
	LevelBefore   int    `json:"levelBefore"`
	LevelAfter    int    `json:"levelAfter"`
	LevelUp       bool   `json:"levelUp"`
	BossEncounter bool   `json:"bossEncounter"`
}

// CompleteQuest marks the quest done and awards its stat bonus and
// experience. Unknown and already-completed ids are a silent no-op.
func (s *Service) CompleteQuest(ctx context.Context, id string) (*CompleteResult, error) {
	s.mu.Lock()
	res, out, err := s.completeLocked(ctx, id)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	s.publish(ctx, out)
	return res, nil
}

func (s *Service) completeLocked(ctx context.Context, id string) (*CompleteResult, outcome, error) {
	var out outcome
	res := &CompleteResult{
		QuestID:     id,
		LevelBefore: s.p.ledger.Level,
		LevelAfter:  s.p.ledger.Level,
	}

	idx := -1
	for i, q := range s.p.quests {
		if q.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 || s.p.quests[idx].Completed {
		s.log.Debug("complete ignored", "quest_id", id, "found", idx >= 0)
		return res, out, nil
	}

	next := s.p.clone()
	q := &next.quests[idx]
	q.Completed = true
	next.ledger.AwardStat(q.StatBonus.Type, q.StatBonus.Value)
	lu := next.ledger.AwardExperience(q.Exp)

	if err := s.commit(ctx, next, KeyStats, KeyLevel, KeyExp, KeyQuests, KeyRecentChanges); err != nil {
		return nil, out, fmt.Errorf("complete quest %s: %w", id, err)
	}

	now := s.clock.Now()
	res.Applied = true
	res.Stat = q.StatBonus.Type
	res.StatDelta = q.StatBonus.Value
	res.ExpAwarded = q.Exp
	res.LevelAfter = next.ledger.Level

	out.event(Event{
		Kind:    EventQuestCompleted,
		Message: fmt.Sprintf("Quest completed! %s +%d, +%d EXP.", q.StatBonus.Type.Label(), q.StatBonus.Value, q.Exp),
		QuestID: q.ID,
		Stat:    q.StatBonus.Type,
		Delta:   q.StatBonus.Value,
		Exp:     q.Exp,
		At:      now,
	})
	out.logs = append(out.logs, storage.LogEntry{
		QuestID:    q.ID,
		Title:      q.Title,
		Outcome:    storage.OutcomeCompleted,
		Stat:       string(q.StatBonus.Type),
		StatDelta:  q.StatBonus.Value,
		ExpAwarded: q.Exp,
		RecordedAt: now,
	})
	if lu != nil {
		res.LevelUp = true
		res.BossEncounter = lu.Boss
		out.events = append(out.events, levelUpEvents(lu, now)...)
	}

	s.log.Debug("quest completed", "quest_id", id, "level", res.LevelAfter)
	return res, out, nil
}

func levelUpEvents(lu *LevelUp, now time.Time) []Event {
	evs := []Event{{
		Kind:    EventLevelUp,
		Message: fmt.Sprintf("You've reached level %d! All stats increased by %d.", lu.To, LevelUpStatBonus),
		Level:   lu.To,
		At:      now,
	}}
	if lu.Boss {
		evs = append(evs, Event{
			Kind:    EventBossEncounter,
			Message: "A boss battle has appeared! Defeat it to earn special rewards.",
			Level:   lu.To,
			At:      now,
		})
	}
	return evs
}
