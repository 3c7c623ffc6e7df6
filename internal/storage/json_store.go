package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// JSONStore keeps every key in a single JSON document on disk.
// Values must themselves be valid JSON.
type JSONStore struct {
	filePath string
	mu       sync.RWMutex
	state    map[string]json.RawMessage
}

func NewJSONStore(filePath string) (*JSONStore, error) {
	s := &JSONStore{
		filePath: filePath,
		state:    make(map[string]json.RawMessage),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *JSONStore) Load(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw, ok := s.state[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, true, nil
}

func (s *JSONStore) Save(ctx context.Context, key string, value []byte) error {
	return s.SaveMany(ctx, []Entry{{Key: key, Value: value}})
}

func (s *JSONStore) SaveMany(_ context.Context, entries []Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(map[string]json.RawMessage, len(s.state)+len(entries))
	for k, v := range s.state {
		next[k] = v
	}
	for _, e := range entries {
		if !json.Valid(e.Value) {
			return fmt.Errorf("json store: value for %s is not valid JSON", e.Key)
		}
		next[e.Key] = append(json.RawMessage(nil), e.Value...)
	}
	if err := s.persistLocked(next); err != nil {
		return err
	}
	s.state = next
	return nil
}

func (s *JSONStore) Close() error { return nil }

func (s *JSONStore) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read json store: %w", err)
	}
	var state map[string]json.RawMessage
	if err := json.Unmarshal(data, &state); err != nil {
		// A damaged document is treated like an empty one; the engine
		// falls back to defaults for every key.
		return nil
	}
	if state != nil {
		s.state = state
	}
	return nil
}

func (s *JSONStore) persistLocked(state map[string]json.RawMessage) error {
	if err := os.MkdirAll(filepath.Dir(s.filePath), 0o755); err != nil {
		return fmt.Errorf("create json store dir: %w", err)
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json store: %w", err)
	}

	tmpPath := s.filePath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write json store: %w", err)
	}
	if err := os.Rename(tmpPath, s.filePath); err != nil {
		return fmt.Errorf("replace json store: %w", err)
	}
	return nil
}
