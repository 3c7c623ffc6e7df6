package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hunterline/internal/storage"
)

// Persisted keys. Values are JSON documents.
const (
	KeyStats         = "stats"
	KeyLevel         = "level"
	KeyExp           = "exp"
	KeyQuests        = "quests"
	KeyRecentChanges = "recentChanges"
	KeyLastRefresh   = "lastRefreshDate"
	KeyFirstVisit    = "firstVisitCompleted"
	KeyProfileName   = "profileName"
)

var allKeys = []string{
	KeyStats, KeyLevel, KeyExp, KeyQuests, KeyRecentChanges,
	KeyLastRefresh, KeyFirstVisit, KeyProfileName,
}

// profile is the in-memory copy of everything the engine persists.
type profile struct {
	ledger         Ledger
	quests         []Quest
	lastRefresh    time.Time // zero when no marker was ever written
	firstVisitDone bool
	name           string
}

func (p profile) clone() profile {
	p.ledger = p.ledger.clone()
	p.quests = cloneQuests(p.quests)
	return p
}

func (p profile) value(key string) (any, error) {
	switch key {
	case KeyStats:
		return p.ledger.Stats, nil
	case KeyLevel:
		return p.ledger.Level, nil
	case KeyExp:
		return p.ledger.Exp, nil
	case KeyQuests:
		return p.quests, nil
	case KeyRecentChanges:
		return p.ledger.Recent, nil
	case KeyLastRefresh:
		if p.lastRefresh.IsZero() {
			return nil, nil
		}
		return p.lastRefresh.Format(time.RFC3339Nano), nil
	case KeyFirstVisit:
		return p.firstVisitDone, nil
	case KeyProfileName:
		return p.name, nil
	default:
		return nil, fmt.Errorf("unknown key %q", key)
	}
}

// entries encodes the named keys for one SaveMany call.
func (p profile) entries(keys ...string) ([]storage.Entry, error) {
	out := make([]storage.Entry, 0, len(keys))
	for _, k := range keys {
		v, err := p.value(k)
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", k, err)
		}
		out = append(out, storage.Entry{Key: k, Value: data})
	}
	return out, nil
}

// loadJSON decodes key into dst. Missing and undecodable values both report
// found=false; only store failures are returned as errors.
func (s *Service) loadJSON(ctx context.Context, key string, dst any) (bool, error) {
	raw, ok, err := s.store.Load(ctx, key)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		s.log.Warn("corrupt persisted value, using default", "key", key, "err", err)
		return false, nil
	}
	return true, nil
}

// loadProfile reads every key, substituting documented defaults for absent
// or corrupt values. Stats missing from a stored object keep their default;
// exp must sit below the loaded level's threshold. The returned keys were defaulted in a way that must be
// written back (a regenerated quest set).
func (s *Service) loadProfile(ctx context.Context) (profile, []string, error) {
	p := profile{ledger: NewLedger()}
	var dirty []string

	stats := DefaultStats()
	if ok, err := s.loadJSON(ctx, KeyStats, &stats); err != nil {
		return p, nil, err
	} else if ok {
		p.ledger.Stats = stats
	}

	var level int
	if ok, err := s.loadJSON(ctx, KeyLevel, &level); err != nil {
		return p, nil, err
	} else if ok && level >= 1 {
		p.ledger.Level = level
	} else if ok {
		s.log.Warn("invalid level, using default", "level", level)
	}

	var exp int
	if ok, err := s.loadJSON(ctx, KeyExp, &exp); err != nil {
		return p, nil, err
	} else if ok && exp >= 0 && exp < p.ledger.ExpToNextLevel() {
		p.ledger.Exp = exp
	} else if ok {
		s.log.Warn("invalid exp, using default", "exp", exp, "level", p.ledger.Level)
	}

	var recent RecentChanges
	if ok, err := s.loadJSON(ctx, KeyRecentChanges, &recent); err != nil {
		return p, nil, err
	} else if ok {
		for stat, d := range recent {
			if stat.IsValid() {
				p.ledger.Recent[stat] = d
			}
		}
	}

	var quests []Quest
	ok, err := s.loadJSON(ctx, KeyQuests, &quests)
	if err != nil {
		return p, nil, err
	}
	if ok && validQuestSet(quests) {
		p.quests = quests
	} else {
		if ok {
			s.log.Warn("invalid quest set, generating a new one", "count", len(quests))
		}
		p.quests = s.generate()
		dirty = append(dirty, KeyQuests)
	}

	var marker string
	if ok, err := s.loadJSON(ctx, KeyLastRefresh, &marker); err != nil {
		return p, nil, err
	} else if ok && marker != "" {
		t, perr := time.Parse(time.RFC3339Nano, marker)
		if perr != nil {
			s.log.Warn("corrupt refresh marker, treating as absent", "value", marker, "err", perr)
		} else {
			p.lastRefresh = t
		}
	}

	if _, err := s.loadJSON(ctx, KeyFirstVisit, &p.firstVisitDone); err != nil {
		return p, nil, err
	}
	if _, err := s.loadJSON(ctx, KeyProfileName, &p.name); err != nil {
		return p, nil, err
	}

	return p, dirty, nil
}

func validQuestSet(qs []Quest) bool {
	if len(qs) == 0 {
		return false
	}
	seen := make(map[string]bool, len(qs))
	for _, q := range qs {
		if !q.valid() || seen[q.ID] {
			return false
		}
		seen[q.ID] = true
	}
	return true
}
