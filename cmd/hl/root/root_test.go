package root

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hunterline/internal/config"
	"hunterline/internal/engine"
	"hunterline/internal/storage"
)

func TestResolveQuestRef(t *testing.T) {
	quests := []engine.Quest{{ID: "a1"}, {ID: "b2"}, {ID: "c3"}}

	assert.Equal(t, "b2", resolveQuestRef(quests, "#2"))
	assert.Equal(t, "c3", resolveQuestRef(quests, "3"))
	assert.Equal(t, "a1", resolveQuestRef(quests, " a1 "))
	assert.Equal(t, "#9", resolveQuestRef(quests, "#9"), "out of range stays as an id")
	assert.Equal(t, "0", resolveQuestRef(quests, "0"))
}

func TestPlansMarkdown(t *testing.T) {
	md := plansMarkdown(engine.TrainingPlans(engine.DefaultStats(), 5))

	assert.Contains(t, md, "# Training Plans")
	assert.Contains(t, md, "## Charisma Training Focus ⭐ recommended")
	assert.Contains(t, md, "## Balanced Growth Plan\n")
	assert.Contains(t, md, "## Advanced Strength Mastery ⭐ recommended")
	assert.Contains(t, md, "**14 days**")
}

func TestPrintQuestsFiltersByCategory(t *testing.T) {
	quests := []engine.Quest{
		{ID: "a", Title: "Morning Run", Category: engine.CategoryPhysical},
		{ID: "b", Title: "Meditate", Category: engine.CategoryMental, Completed: true},
		{ID: "c", Title: "Push-ups", Category: engine.CategoryPhysical},
	}
	cat, ok := engine.ParseCategory(" Physical ")
	assert.True(t, ok)

	var buf bytes.Buffer
	printQuests(&buf, quests, cat)
	out := buf.String()
	assert.Contains(t, out, "Morning Run")
	assert.Contains(t, out, "#3")
	assert.Contains(t, out, "Push-ups")
	assert.NotContains(t, out, "Meditate")
	assert.Contains(t, out, "0/2 completed")

	buf.Reset()
	printQuests(&buf, quests, engine.CategoryIntelligence)
	assert.Contains(t, buf.String(), "no intelligence quests today")

	_, ok = engine.ParseCategory("cardio")
	assert.False(t, ok)
}

func TestOpenSessionUsesLoadedConfig(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Engine: storage.EngineMemory}}
	require.NoError(t, cfg.ApplyDefaults())
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	rec := &engine.Recorder{}

	s, err := openSession(context.Background(), &cobra.Command{}, cfg, log, rec)
	require.NoError(t, err)
	defer s.close()

	assert.Same(t, cfg, s.cfg)
	assert.Same(t, log, s.log)
	assert.Nil(t, s.history, "memory store keeps no history")
	assert.Len(t, s.svc.Quests(), engine.QuestSetSize)
}

func TestNameSkipFinishesFirstVisit(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "hunter.db")
	t.Setenv(config.EnvConfigPath, filepath.Join(dir, "missing.yaml"))
	t.Setenv("HUNTERLINE_STORE_ENGINE", storage.EngineSQLite)
	t.Setenv("HUNTERLINE_STORE_PATH", dbPath)

	cmd := newNameCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--skip"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), "nameless hunter")

	st, err := storage.NewSQLiteStore(context.Background(), dbPath)
	require.NoError(t, err)
	defer st.Close()
	svc, err := engine.Open(context.Background(), st)
	require.NoError(t, err)
	assert.False(t, svc.IsFirstVisit())
	assert.Equal(t, "", svc.ProfileName())
}
