package root

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"hunterline/internal/httpapi"
)

func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API and live event stream",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log, err := newLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			hub := httpapi.NewHub(log.With("component", "hub"))
			go hub.Run(ctx)

			s, err := openSession(ctx, cmd, cfg, log, hub)
			if err != nil {
				return err
			}
			defer s.close()

			if addr == "" {
				addr = s.cfg.Server.Addr
			}
			srv := &http.Server{
				Addr:              addr,
				Handler:           httpapi.NewRouter(httpapi.NewHandler(s.svc, hub, s.log)),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() { errCh <- srv.ListenAndServe() }()
			s.log.Info("listening", "addr", addr)

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			s.log.Info("shutting down")
			return srv.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default server.addr from config)")

	return cmd
}
