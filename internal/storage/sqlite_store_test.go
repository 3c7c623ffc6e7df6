package storage_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hunterline/internal/storage"
)

func newSQLiteStore(t *testing.T) *storage.SQLiteStore {
	t.Helper()
	st, err := storage.NewSQLiteStore(context.Background(), filepath.Join(t.TempDir(), "hunter.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestSQLiteStoreLoadSave(t *testing.T) {
	ctx := context.Background()
	st := newSQLiteStore(t)

	_, ok, err := st.Load(ctx, "level")
	require.NoError(t, err)
	assert.False(t, ok, "missing key should report ok=false")

	require.NoError(t, st.Save(ctx, "level", []byte("3")))
	require.NoError(t, st.Save(ctx, "level", []byte("4")))

	v, ok, err := st.Load(ctx, "level")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "4", string(v), "last write wins")
}

func TestSQLiteStoreSaveManyOverwrites(t *testing.T) {
	ctx := context.Background()
	st := newSQLiteStore(t)

	require.NoError(t, st.SaveMany(ctx, []storage.Entry{
		{Key: "exp", Value: []byte("30")},
		{Key: "stats", Value: []byte(`{"strength":10}`)},
	}))

	keys, err := st.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"exp", "stats"}, keys)

	require.NoError(t, st.SaveMany(ctx, []storage.Entry{
		{Key: "exp", Value: []byte("0")},
	}))
	raw, ok, err := st.Load(ctx, "exp")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "0", string(raw))
	keys, err = st.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"exp", "stats"}, keys)
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "hunter.db")

	st, err := storage.NewSQLiteStore(ctx, path)
	require.NoError(t, err)
	require.NoError(t, st.Save(ctx, "profileName", []byte(`"Jinwoo"`)))
	require.NoError(t, st.Close())

	st, err = storage.NewSQLiteStore(ctx, path)
	require.NoError(t, err)
	defer st.Close()

	v, ok, err := st.Load(ctx, "profileName")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `"Jinwoo"`, string(v))
}

func TestLogRepoInsertListCount(t *testing.T) {
	ctx := context.Background()
	st := newSQLiteStore(t)
	repo := storage.NewLogRepo(st.DB())

	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	_, err := repo.Insert(ctx, storage.LogEntry{
		QuestID: "q1", Title: "Cardio Challenge", Outcome: storage.OutcomeCompleted,
		Stat: "agility", StatDelta: 2, ExpAwarded: 30, RecordedAt: base,
	})
	require.NoError(t, err)
	_, err = repo.Insert(ctx, storage.LogEntry{
		QuestID: "q2", Title: "Reading Session", Outcome: storage.OutcomeFailed,
		Stat: "intelligence", StatDelta: -1, RecordedAt: base.Add(time.Hour),
	})
	require.NoError(t, err)

	list, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "q2", list[0].QuestID, "newest first")
	assert.Equal(t, -1, list[0].StatDelta)

	n, err := repo.CountByOutcome(ctx, storage.OutcomeCompleted)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, repo.Clear(ctx))
	list, err = repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, list)
}
