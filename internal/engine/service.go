package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"hunterline/internal/storage"
)

// History receives one row per completed or failed quest. It is optional
// and best-effort: failures are logged, never returned.
type History interface {
	Insert(ctx context.Context, e storage.LogEntry) (int64, error)
	Clear(ctx context.Context) error
}

// Service is the hunter session. It is created once per process and shared
// by every presentation layer; all methods are safe for concurrent use.
type Service struct {
	mu sync.Mutex

	store    storage.Store
	history  History
	notifier Notifier
	clock    Clock
	loc      *time.Location
	rng      *rand.Rand
	newID    func() string
	catalog  Catalog
	log      *slog.Logger

	p profile
}

type Option func(*Service)

func WithNotifier(n Notifier) Option {
	return func(s *Service) {
		if n != nil {
			s.notifier = n
		}
	}
}

func WithClock(c Clock) Option {
	return func(s *Service) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithLocation sets the zone calendar days are compared in. Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithRand injects the generator's random source.
func WithRand(r *rand.Rand) Option {
	return func(s *Service) {
		if r != nil {
			s.rng = r
		}
	}
}

// WithIDFunc replaces uuid-based quest ids.
func WithIDFunc(fn func() string) Option {
	return func(s *Service) {
		if fn != nil {
			s.newID = fn
		}
	}
}

func WithCatalog(c Catalog) Option {
	return func(s *Service) { s.catalog = c }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

func WithHistory(h History) Option {
	return func(s *Service) { s.history = h }
}

// Open loads the profile from store, falling back to defaults for anything
// absent or corrupt, and runs the daily cycle check once.
func Open(ctx context.Context, store storage.Store, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, errors.New("engine: store is required")
	}
	s := &Service{
		store:    store,
		notifier: discardNotifier{},
		clock:    RealClock{},
		loc:      time.Local,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		newID:    uuid.NewString,
		catalog:  DefaultCatalog(),
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.catalog.Validate(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	p, dirty, err := s.loadProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	s.mu.Lock()
	err = s.commit(ctx, p, dirty...)
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	if _, err := s.CheckDailyCycle(ctx); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	return s, nil
}

func (s *Service) generate() []Quest {
	return Generate(s.rng, s.catalog, s.newID)
}

// commit persists keys of next in one SaveMany and only then adopts next as
// the live profile. Callers hold s.mu.
func (s *Service) commit(ctx context.Context, next profile, keys ...string) error {
	if len(keys) > 0 {
		entries, err := next.entries(keys...)
		if err != nil {
			return err
		}
		if err := s.store.SaveMany(ctx, entries); err != nil {
			return fmt.Errorf("save state: %w", err)
		}
		s.log.Debug("state saved", "keys", keys)
	}
	s.p = next
	return nil
}

// outcome is what a committed mutation still has to announce.
type outcome struct {
	events []Event
	logs   []storage.LogEntry
}

func (o *outcome) event(e Event) { o.events = append(o.events, e) }

// publish runs after s.mu is released.
func (s *Service) publish(ctx context.Context, o outcome) {
	if s.history != nil {
		for _, e := range o.logs {
			if _, err := s.history.Insert(ctx, e); err != nil {
				s.log.Warn("record quest outcome", "quest_id", e.QuestID, "err", err)
			}
		}
	}
	for _, e := range o.events {
		s.notifier.Notify(e)
	}
}

func (s *Service) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.ledger.Stats
}

func (s *Service) Level() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.ledger.Level
}

func (s *Service) Exp() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.ledger.Exp
}

func (s *Service) ExpToNextLevel() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.ledger.ExpToNextLevel()
}

func (s *Service) RecentChanges() RecentChanges {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.ledger.Recent.clone()
}

func (s *Service) Quests() []Quest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneQuests(s.p.quests)
}

func (s *Service) ProfileName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.name
}

func (s *Service) IsFirstVisit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.p.firstVisitDone
}

// LastRefresh is the daily cycle marker.
func (s *Service) LastRefresh() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.lastRefresh
}

// Snapshot is a consistent copy of the whole profile.
type Snapshot struct {
	Name           string        `json:"name"`
	FirstVisit     bool          `json:"firstVisit"`
	Stats          Stats         `json:"stats"`
	Level          int           `json:"level"`
	Exp            int           `json:"exp"`
	ExpToNextLevel int           `json:"expToNextLevel"`
	RecentChanges  RecentChanges `json:"recentChanges"`
	Quests         []Quest       `json:"quests"`
	LastRefresh    time.Time     `json:"lastRefresh"`
}

func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Name:           s.p.name,
		FirstVisit:     !s.p.firstVisitDone,
		Stats:          s.p.ledger.Stats,
		Level:          s.p.ledger.Level,
		Exp:            s.p.ledger.Exp,
		ExpToNextLevel: s.p.ledger.ExpToNextLevel(),
		RecentChanges:  s.p.ledger.Recent.clone(),
		Quests:         cloneQuests(s.p.quests),
		LastRefresh:    s.p.lastRefresh,
	}
}
