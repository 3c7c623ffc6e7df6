package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"hunterline/internal/engine"
	"hunterline/internal/storage"
	"hunterline/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently completed and failed quests",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := openService(ctx, cmd, nil)
			if err != nil {
				return err
			}
			defer s.close()

			if s.history == nil {
				return errors.New("quest history needs the sqlite store engine")
			}
			entries, err := s.history.ListRecent(ctx, limit)
			if err != nil {
				return err
			}
			done, err := s.history.CountByOutcome(ctx, storage.OutcomeCompleted)
			if err != nil {
				return err
			}
			failed, err := s.history.CountByOutcome(ctx, storage.OutcomeFailed)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "Quest History"))
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("%d completed, %d failed", done, failed)))
			if len(entries) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(empty)"))
				return nil
			}
			for _, e := range entries {
				mark := ui.IconDone
				if e.Outcome == storage.OutcomeFailed {
					mark = ui.IconSkull
				}
				detail := fmt.Sprintf("%s %+d", engine.Stat(e.Stat).Label(), e.StatDelta)
				if e.ExpAwarded > 0 {
					detail += fmt.Sprintf(", +%d EXP", e.ExpAwarded)
				}
				fmt.Fprintf(out, "%s %s %s %s\n",
					ui.Muted.Render(e.RecordedAt.Local().Format("01-02 15:04")), mark, e.Title, ui.Muted.Render("("+detail+")"))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of entries")

	return cmd
}
