package engine

import (
	"context"
	"errors"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hunterline/internal/storage"
)

var day1 = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

type testEnv struct {
	store *storage.SQLiteStore
	clock *FakeClock
	rec   *Recorder
	ids   func() string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	st, err := storage.NewSQLiteStore(context.Background(), filepath.Join(t.TempDir(), "hunter.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return &testEnv{
		store: st,
		clock: NewFakeClock(day1),
		rec:   &Recorder{},
		ids:   counterIDs("q"),
	}
}

func (e *testEnv) open(t *testing.T, opts ...Option) *Service {
	t.Helper()
	return e.openStore(t, e.store, opts...)
}

func (e *testEnv) openStore(t *testing.T, st storage.Store, opts ...Option) *Service {
	t.Helper()
	base := []Option{
		WithClock(e.clock),
		WithLocation(time.UTC),
		WithRand(rand.New(rand.NewSource(1))),
		WithIDFunc(e.ids),
		WithNotifier(e.rec),
		WithHistory(storage.NewLogRepo(e.store.DB())),
	}
	svc, err := Open(context.Background(), st, append(base, opts...)...)
	require.NoError(t, err)
	return svc
}

func seedStore(t *testing.T, st storage.Store, kv map[string]string) {
	t.Helper()
	for k, v := range kv {
		require.NoError(t, st.Save(context.Background(), k, []byte(v)))
	}
}

func kinds(evs []Event) []EventKind {
	out := make([]EventKind, len(evs))
	for i, e := range evs {
		out[i] = e.Kind
	}
	return out
}

func TestOpenFreshProfileUsesDefaults(t *testing.T) {
	env := newTestEnv(t)
	svc := env.open(t)

	assert.Equal(t, DefaultStats(), svc.Stats())
	assert.Equal(t, 1, svc.Level())
	assert.Equal(t, 0, svc.Exp())
	assert.Equal(t, 100, svc.ExpToNextLevel())
	assert.Empty(t, svc.RecentChanges())
	assert.Len(t, svc.Quests(), QuestSetSize)
	assert.True(t, svc.IsFirstVisit())
	assert.True(t, svc.LastRefresh().Equal(day1))
	assert.Empty(t, env.rec.Events(), "first run is not penalized")

	keys, err := env.store.Keys(context.Background())
	require.NoError(t, err)
	assert.Contains(t, keys, KeyQuests)
	assert.Contains(t, keys, KeyLastRefresh)
}

func TestCompleteQuestAwardsStatAndExp(t *testing.T) {
	env := newTestEnv(t)
	svc := env.open(t)
	ctx := context.Background()

	q := svc.Quests()[0]
	res, err := svc.CompleteQuest(ctx, q.ID)
	require.NoError(t, err)

	assert.True(t, res.Applied)
	assert.Equal(t, q.StatBonus.Type, res.Stat)
	assert.Equal(t, q.StatBonus.Value, res.StatDelta)
	assert.Equal(t, q.Exp, res.ExpAwarded)
	assert.False(t, res.LevelUp)

	assert.Equal(t, 10+q.StatBonus.Value, svc.Stats().Get(q.StatBonus.Type))
	assert.Equal(t, q.Exp, svc.Exp())
	assert.Equal(t, RecentChanges{q.StatBonus.Type: q.StatBonus.Value}, svc.RecentChanges())
	assert.True(t, svc.Quests()[0].Completed)

	evs := env.rec.Drain()
	require.Len(t, evs, 1)
	assert.Equal(t, EventQuestCompleted, evs[0].Kind)
	assert.Equal(t, q.ID, evs[0].QuestID)
	assert.Contains(t, evs[0].Message, q.StatBonus.Type.Label())

	// Durable: a new session sees the same state.
	again := env.open(t)
	assert.Equal(t, svc.Stats(), again.Stats())
	assert.Equal(t, svc.Exp(), again.Exp())
	assert.Equal(t, svc.Quests(), again.Quests())
	assert.Equal(t, svc.RecentChanges(), again.RecentChanges())
}

func TestCompleteQuestIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	svc := env.open(t)
	ctx := context.Background()

	id := svc.Quests()[1].ID
	_, err := svc.CompleteQuest(ctx, id)
	require.NoError(t, err)
	stats, exp := svc.Stats(), svc.Exp()
	env.rec.Drain()

	res, err := svc.CompleteQuest(ctx, id)
	require.NoError(t, err)
	assert.False(t, res.Applied)

	res, err = svc.CompleteQuest(ctx, "no-such-quest")
	require.NoError(t, err)
	assert.False(t, res.Applied)

	assert.Equal(t, stats, svc.Stats())
	assert.Equal(t, exp, svc.Exp())
	assert.Empty(t, env.rec.Drain(), "no-ops emit nothing")
}

func TestCompleteQuestLevelUp(t *testing.T) {
	env := newTestEnv(t)
	seedStore(t, env.store, map[string]string{KeyExp: "95"})
	svc := env.open(t)

	q := svc.Quests()[0]
	res, err := svc.CompleteQuest(context.Background(), q.ID)
	require.NoError(t, err)

	assert.True(t, res.LevelUp)
	assert.False(t, res.BossEncounter)
	assert.Equal(t, 1, res.LevelBefore)
	assert.Equal(t, 2, res.LevelAfter)
	assert.Equal(t, 0, svc.Exp(), "surplus is discarded")

	for _, s := range AllStats {
		want := 11
		if s == q.StatBonus.Type {
			want += q.StatBonus.Value
		}
		assert.Equal(t, want, svc.Stats().Get(s), s)
	}

	evs := env.rec.Drain()
	assert.Equal(t, []EventKind{EventQuestCompleted, EventLevelUp}, kinds(evs))
	assert.Equal(t, 2, evs[1].Level)
	assert.Equal(t, "You've reached level 2! All stats increased by 1.", evs[1].Message)
}

func TestCompleteQuestBossEncounter(t *testing.T) {
	env := newTestEnv(t)
	seedStore(t, env.store, map[string]string{KeyLevel: "4", KeyExp: "390"})
	svc := env.open(t)

	res, err := svc.CompleteQuest(context.Background(), svc.Quests()[0].ID)
	require.NoError(t, err)
	assert.True(t, res.BossEncounter)
	assert.Equal(t, 5, svc.Level())
	assert.Equal(t,
		[]EventKind{EventQuestCompleted, EventLevelUp, EventBossEncounter},
		kinds(env.rec.Drain()))
}

func TestRefreshPenalizesOnlyIncompleteQuests(t *testing.T) {
	env := newTestEnv(t)
	svc := env.open(t)
	ctx := context.Background()

	old := svc.Quests()
	for _, q := range old[:2] {
		_, err := svc.CompleteQuest(ctx, q.ID)
		require.NoError(t, err)
	}
	before := svc.Stats()
	recentBefore := svc.RecentChanges()
	env.rec.Drain()

	wantPenalty := map[Stat]int{}
	for _, q := range old[2:] {
		wantPenalty[q.StatBonus.Type] += QuestFailPenalty
	}

	res, err := svc.Refresh(ctx)
	require.NoError(t, err)
	require.Len(t, res.Penalties, 3)

	after := svc.Stats()
	for _, s := range AllStats {
		assert.Equal(t, before.Get(s)+wantPenalty[s], after.Get(s), s)
	}

	fresh := svc.Quests()
	require.Len(t, fresh, QuestSetSize)
	oldIDs := map[string]bool{}
	for _, q := range old {
		oldIDs[q.ID] = true
	}
	for _, q := range fresh {
		assert.False(t, q.Completed)
		assert.False(t, oldIDs[q.ID], "old quest %s survived refresh", q.ID)
	}

	evs := env.rec.Drain()
	assert.Equal(t, []EventKind{EventQuestFailed, EventQuestFailed, EventQuestFailed}, kinds(evs))
	assert.Equal(t, old[2].ID, evs[0].QuestID)

	// Manual refresh keeps the day's deltas and adds the penalties to them.
	recent := svc.RecentChanges()
	for _, s := range AllStats {
		assert.Equal(t, recentBefore[s]+wantPenalty[s], recent[s], s)
	}

	// Completing a discarded quest does nothing.
	r, err := svc.CompleteQuest(ctx, old[3].ID)
	require.NoError(t, err)
	assert.False(t, r.Applied)
}

func TestRefreshWithAllQuestsCompleteHasNoPenalty(t *testing.T) {
	env := newTestEnv(t)
	svc := env.open(t)
	ctx := context.Background()

	for _, q := range svc.Quests() {
		_, err := svc.CompleteQuest(ctx, q.ID)
		require.NoError(t, err)
	}
	before := svc.Stats()

	res, err := svc.Refresh(ctx)
	require.NoError(t, err)
	assert.Empty(t, res.Penalties)
	assert.Equal(t, before, svc.Stats())
}

func TestRecordsQuestHistory(t *testing.T) {
	env := newTestEnv(t)
	svc := env.open(t)
	ctx := context.Background()

	_, err := svc.CompleteQuest(ctx, svc.Quests()[0].ID)
	require.NoError(t, err)
	_, err = svc.Refresh(ctx)
	require.NoError(t, err)

	repo := storage.NewLogRepo(env.store.DB())
	done, err := repo.CountByOutcome(ctx, storage.OutcomeCompleted)
	require.NoError(t, err)
	failed, err := repo.CountByOutcome(ctx, storage.OutcomeFailed)
	require.NoError(t, err)
	assert.Equal(t, 1, done)
	assert.Equal(t, 4, failed)
}

func TestCorruptStateFallsBackToDefaults(t *testing.T) {
	env := newTestEnv(t)
	seedStore(t, env.store, map[string]string{
		KeyStats:         "{not json",
		KeyLevel:         "-3",
		KeyExp:           `"lots"`,
		KeyQuests:        `[{"id":"","title":"broken"}]`,
		KeyRecentChanges: `{"luck":4,"agility":2}`,
		KeyFirstVisit:    "maybe",
	})
	svc := env.open(t)

	assert.Equal(t, DefaultStats(), svc.Stats())
	assert.Equal(t, 1, svc.Level())
	assert.Equal(t, 0, svc.Exp())
	assert.Equal(t, RecentChanges{StatAgility: 2}, svc.RecentChanges())
	assert.True(t, svc.IsFirstVisit())

	quests := svc.Quests()
	require.Len(t, quests, QuestSetSize)
	raw, ok, err := env.store.Load(context.Background(), KeyQuests)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, string(raw), quests[0].ID, "regenerated set is saved")
}

func TestLoadedValuesMustKeepInvariants(t *testing.T) {
	env := newTestEnv(t)
	seedStore(t, env.store, map[string]string{
		KeyStats: `{"agility":14}`,
		KeyLevel: "2",
		KeyExp:   "250",
	})
	svc := env.open(t)

	want := DefaultStats()
	want.Agility = 14
	assert.Equal(t, want, svc.Stats(), "missing stats keep their default")
	assert.Equal(t, 2, svc.Level())
	assert.Equal(t, 0, svc.Exp(), "exp at or past the threshold is rejected")

	env2 := newTestEnv(t)
	seedStore(t, env2.store, map[string]string{
		KeyStats: `{}`,
		KeyExp:   "100",
	})
	svc = env2.open(t)
	assert.Equal(t, DefaultStats(), svc.Stats())
	assert.Equal(t, 1, svc.Level())
	assert.Equal(t, 0, svc.Exp())

	env3 := newTestEnv(t)
	seedStore(t, env3.store, map[string]string{
		KeyLevel: "3",
		KeyExp:   "299",
	})
	svc = env3.open(t)
	assert.Equal(t, 299, svc.Exp(), "exp just below the threshold is kept")
}

type flakyStore struct {
	storage.Store
	failSave bool
	failLoad bool
}

var errDiskGone = errors.New("disk gone")

func (f *flakyStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	if f.failLoad {
		return nil, false, errDiskGone
	}
	return f.Store.Load(ctx, key)
}

func (f *flakyStore) SaveMany(ctx context.Context, entries []storage.Entry) error {
	if f.failSave {
		return errDiskGone
	}
	return f.Store.SaveMany(ctx, entries)
}

func TestFailedSaveLeavesStateUntouched(t *testing.T) {
	env := newTestEnv(t)
	fs := &flakyStore{Store: storage.NewMemoryStore()}
	svc := env.openStore(t, fs)
	ctx := context.Background()

	quests, stats := svc.Quests(), svc.Stats()
	fs.failSave = true

	_, err := svc.CompleteQuest(ctx, quests[0].ID)
	require.ErrorIs(t, err, errDiskGone)
	_, err = svc.Refresh(ctx)
	require.ErrorIs(t, err, errDiskGone)

	assert.Equal(t, quests, svc.Quests())
	assert.Equal(t, stats, svc.Stats())
	assert.Equal(t, 0, svc.Exp())
	assert.Empty(t, env.rec.Events())

	fs.failSave = false
	res, err := svc.CompleteQuest(ctx, quests[0].ID)
	require.NoError(t, err)
	assert.True(t, res.Applied)
}

func TestFailedResetKeepsStoreAndSession(t *testing.T) {
	env := newTestEnv(t)
	fs := &flakyStore{Store: storage.NewMemoryStore()}
	svc := env.openStore(t, fs)
	ctx := context.Background()

	require.NoError(t, svc.SetProfileName(ctx, "Jinwoo"))
	q := svc.Quests()[0]
	_, err := svc.CompleteQuest(ctx, q.ID)
	require.NoError(t, err)
	env.rec.Drain()

	fs.failSave = true
	err = svc.ResetProfile(ctx)
	require.ErrorIs(t, err, errDiskGone)

	assert.Equal(t, q.Exp, svc.Exp())
	assert.Equal(t, "Jinwoo", svc.ProfileName())
	assert.Empty(t, env.rec.Events())

	for _, key := range []string{KeyStats, KeyQuests, KeyLastRefresh, KeyProfileName} {
		_, ok, err := fs.Load(ctx, key)
		require.NoError(t, err)
		assert.True(t, ok, key)
	}

	fs.failSave = false
	reopened := env.openStore(t, fs)
	assert.Equal(t, q.Exp, reopened.Exp())
	assert.Equal(t, "Jinwoo", reopened.ProfileName())
	assert.Equal(t, svc.Quests(), reopened.Quests())
}

func TestOpenReturnsStoreReadErrors(t *testing.T) {
	fs := &flakyStore{Store: storage.NewMemoryStore(), failLoad: true}
	_, err := Open(context.Background(), fs)
	require.ErrorIs(t, err, errDiskGone)
}

func TestOpenRejectsInvalidCatalog(t *testing.T) {
	c := DefaultCatalog()
	c.Physical = []Template{{Title: "x", Category: CategoryPhysical, Difficulty: "brutal", Exp: 5, StatBonus: StatBonus{Type: StatStrength, Value: 1}}}
	_, err := Open(context.Background(), storage.NewMemoryStore(), WithCatalog(c))
	assert.ErrorContains(t, err, "invalid difficulty")
}

func TestSetProfileName(t *testing.T) {
	env := newTestEnv(t)
	svc := env.open(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.SetProfileName(ctx, "   "), ErrNameRequired)
	assert.True(t, svc.IsFirstVisit())

	require.NoError(t, svc.SetProfileName(ctx, "  Jinwoo "))
	assert.Equal(t, "Jinwoo", svc.ProfileName())
	assert.False(t, svc.IsFirstVisit())

	again := env.open(t)
	assert.Equal(t, "Jinwoo", again.ProfileName())
	assert.False(t, again.IsFirstVisit())
}

func TestCompleteFirstVisit(t *testing.T) {
	env := newTestEnv(t)
	svc := env.open(t)

	require.NoError(t, svc.CompleteFirstVisit(context.Background()))
	assert.False(t, svc.IsFirstVisit())
	assert.Equal(t, "", svc.ProfileName())
}

func TestResetProfile(t *testing.T) {
	env := newTestEnv(t)
	svc := env.open(t)
	ctx := context.Background()

	require.NoError(t, svc.SetProfileName(ctx, "Jinwoo"))
	_, err := svc.CompleteQuest(ctx, svc.Quests()[0].ID)
	require.NoError(t, err)
	old := svc.Quests()
	env.clock.Advance(2 * time.Hour)
	env.rec.Drain()

	require.NoError(t, svc.ResetProfile(ctx))

	assert.Equal(t, DefaultStats(), svc.Stats())
	assert.Equal(t, 1, svc.Level())
	assert.Equal(t, 0, svc.Exp())
	assert.Empty(t, svc.RecentChanges())
	assert.Equal(t, "", svc.ProfileName())
	assert.True(t, svc.IsFirstVisit())
	assert.True(t, svc.LastRefresh().Equal(env.clock.Now()))
	require.Len(t, svc.Quests(), QuestSetSize)
	assert.NotEqual(t, old[0].ID, svc.Quests()[0].ID)

	assert.Equal(t, []EventKind{EventProfileReset}, kinds(env.rec.Drain()))

	entries, err := storage.NewLogRepo(env.store.DB()).ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, entries)

	again := env.open(t)
	assert.Equal(t, svc.Quests(), again.Quests())
	assert.Empty(t, env.rec.Drain(), "same day after reset: no refresh")
}

func TestSnapshotIsACopy(t *testing.T) {
	env := newTestEnv(t)
	svc := env.open(t)

	snap := svc.Snapshot()
	snap.Quests[0].Completed = true
	snap.RecentChanges[StatCharisma] = 9

	assert.False(t, svc.Quests()[0].Completed)
	assert.Empty(t, svc.RecentChanges())
	assert.Equal(t, svc.ExpToNextLevel(), snap.ExpToNextLevel)
}
