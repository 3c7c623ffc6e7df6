package engine

import (
	"context"
	"fmt"
)

// CheckDailyCycle refreshes the quest set when the calendar day differs from
// the stored marker. A missing marker is written without refreshing, so a new
// profile is never penalized on first run. Open calls this once; a session
// kept open past midnight is not re-checked.
func (s *Service) CheckDailyCycle(ctx context.Context) (bool, error) {
	s.mu.Lock()
	now := s.clock.Now()
	next := s.p.clone()

	if next.lastRefresh.IsZero() {
		next.lastRefresh = now
		err := s.commit(ctx, next, KeyLastRefresh)
		s.mu.Unlock()
		if err != nil {
			return false, fmt.Errorf("daily cycle: %w", err)
		}
		s.log.Debug("daily marker initialized", "at", now)
		return false, nil
	}
	if sameCalendarDay(next.lastRefresh, now, s.loc) {
		s.mu.Unlock()
		return false, nil
	}

	prev := next.lastRefresh
	_, out := s.refreshInto(&next)
	next.lastRefresh = now
	next.ledger.ResetRecentChanges()
	out.event(newDayEvent(now))
	err := s.commit(ctx, next, KeyStats, KeyQuests, KeyRecentChanges, KeyLastRefresh)
	s.mu.Unlock()
	if err != nil {
		return false, fmt.Errorf("daily cycle: %w", err)
	}
	s.log.Info("new day", "previous", prev, "now", now)
	s.publish(ctx, out)
	return true, nil
}
