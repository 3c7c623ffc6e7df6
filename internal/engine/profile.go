package engine

import (
	"context"
	"fmt"
	"strings"
)

// SetProfileName stores the hunter name and marks the first visit done.
func (s *Service) SetProfileName(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.p.clone()
	next.name = name
	next.firstVisitDone = true
	if err := s.commit(ctx, next, KeyProfileName, KeyFirstVisit); err != nil {
		return fmt.Errorf("set name: %w", err)
	}
	return nil
}

func (s *Service) CompleteFirstVisit(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.p.firstVisitDone {
		return nil
	}
	next := s.p.clone()
	next.firstVisitDone = true
	if err := s.commit(ctx, next, KeyFirstVisit); err != nil {
		return fmt.Errorf("first visit: %w", err)
	}
	return nil
}

// ResetProfile starts over with defaults and clears the outcome log. Every
// engine key is rewritten in one save, so a failed reset changes nothing.
// Today's marker is written so the fresh set is not penalized.
func (s *Service) ResetProfile(ctx context.Context) error {
	s.mu.Lock()
	now := s.clock.Now()
	next := profile{
		ledger:      NewLedger(),
		quests:      s.generate(),
		lastRefresh: now,
	}
	err := s.commit(ctx, next, allKeys...)
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}

	if s.history != nil {
		if err := s.history.Clear(ctx); err != nil {
			s.log.Warn("clear quest history", "err", err)
		}
	}
	s.log.Info("profile reset")
	s.publish(ctx, outcome{events: []Event{{
		Kind:    EventProfileReset,
		Message: "Progress has been reset.",
		At:      now,
	}}})
	return nil
}
