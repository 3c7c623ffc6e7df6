package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"hunterline/internal/ui"
)

func newRefreshCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Replace today's quests (unfinished quests are penalized)",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openService(cmd.Context(), cmd, nil)
			if err != nil {
				return err
			}
			defer s.close()

			res, err := s.svc.Refresh(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(res.Penalties) == 0 {
				fmt.Fprintln(out, ui.Good.Render("No penalties. Every quest was done."))
			}
			fmt.Fprintln(out, "")
			printQuests(out, res.Quests, "")
			return nil
		},
	}

	return cmd
}
