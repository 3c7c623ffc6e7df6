package root

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"

	"github.com/spf13/cobra"

	"hunterline/internal/config"
	"hunterline/internal/engine"
	"hunterline/internal/storage"
	"hunterline/internal/ui"
)

// session is one opened profile plus the resources behind it.
type session struct {
	svc     *engine.Service
	cfg     *config.Config
	log     *slog.Logger
	history *storage.LogRepo // nil unless the store is SQLite
	close   func()
}

func loadConfig() (*config.Config, error) {
	path, err := config.ResolvePath(flagConfig)
	if err != nil {
		return nil, err
	}
	return config.Load(path)
}

func newLogger(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	lvl, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	if flagVerbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// printNotifier writes each event as one styled line.
func printNotifier(w io.Writer) engine.Notifier {
	return engine.NotifierFunc(func(e engine.Event) {
		fmt.Fprintln(w, ui.EventLine(e))
	})
}

// openService loads the config and starts a session. n receives engine
// events; it defaults to printing them on the command's stdout.
func openService(ctx context.Context, cmd *cobra.Command, n engine.Notifier) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	log, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	return openSession(ctx, cmd, cfg, log, n)
}

// openSession opens the configured store with an already loaded config.
func openSession(ctx context.Context, cmd *cobra.Command, cfg *config.Config, log *slog.Logger, n engine.Notifier) (*session, error) {
	catalog, err := cfg.LoadCatalog()
	if err != nil {
		return nil, err
	}

	st, err := storage.NewByEngine(ctx, cfg.Store.Engine, cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Store.Engine, err)
	}

	if n == nil {
		n = printNotifier(cmd.OutOrStdout())
	}
	opts := []engine.Option{
		engine.WithLogger(log),
		engine.WithCatalog(catalog),
		engine.WithNotifier(engine.Notifiers(n, engine.LogNotifier(log.With("component", "events")))),
	}
	if cfg.Seed != nil {
		opts = append(opts, engine.WithRand(rand.New(rand.NewSource(*cfg.Seed))))
	}

	s := &session{cfg: cfg, log: log, close: func() { _ = st.Close() }}
	if sq, ok := st.(*storage.SQLiteStore); ok {
		s.history = storage.NewLogRepo(sq.DB())
		opts = append(opts, engine.WithHistory(s.history))
	}

	svc, err := engine.Open(ctx, st, opts...)
	if err != nil {
		_ = st.Close()
		return nil, err
	}
	s.svc = svc
	log.Debug("session opened", "engine", cfg.Store.Engine, "path", cfg.Store.Path)
	return s, nil
}
