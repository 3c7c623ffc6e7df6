package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"hunterline/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <id|#n>",
		Short: "Complete a quest",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("quest id or #number is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openService(cmd.Context(), cmd, nil)
			if err != nil {
				return err
			}
			defer s.close()

			id := resolveQuestRef(s.svc.Quests(), args[0])
			res, err := s.svc.CompleteQuest(cmd.Context(), id)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !res.Applied {
				fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("No open quest matches %q.", args[0])))
				return nil
			}
			fmt.Fprintln(out, ui.LabelValue("Level", fmt.Sprintf("%d · EXP %d/%d", s.svc.Level(), s.svc.Exp(), s.svc.ExpToNextLevel())))
			return nil
		},
	}

	return cmd
}
