package root

import (
	"github.com/spf13/cobra"

	"hunterline/internal/engine"
	"hunterline/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the TUI dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			rec := &engine.Recorder{}
			s, err := openService(ctx, cmd, rec)
			if err != nil {
				return err
			}
			defer s.close()

			return tui.RunBoard(ctx, s.svc, rec, cmd.OutOrStdout())
		},
	}

	return cmd
}
