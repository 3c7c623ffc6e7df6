package root

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"hunterline/internal/ui"
)

func newNameCmd() *cobra.Command {
	var skip bool
	cmd := &cobra.Command{
		Use:   "name [new name]",
		Short: "Show or set the hunter name",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openService(cmd.Context(), cmd, nil)
			if err != nil {
				return err
			}
			defer s.close()

			out := cmd.OutOrStdout()
			if skip {
				if err := s.svc.CompleteFirstVisit(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(out, ui.Muted.Render("Continuing as a nameless hunter."))
				return nil
			}
			if len(args) == 0 {
				if n := s.svc.ProfileName(); n != "" {
					fmt.Fprintln(out, n)
					return nil
				}
				fmt.Fprintln(out, ui.Muted.Render("No name yet. Run `hl name <name>` to awaken."))
				return nil
			}

			if err := s.svc.SetProfileName(cmd.Context(), strings.Join(args, " ")); err != nil {
				return err
			}
			fmt.Fprintln(out, ui.Good.Render(fmt.Sprintf("%s Welcome, Hunter %s.", ui.IconSparkle, s.svc.ProfileName())))
			return nil
		},
	}
	cmd.Flags().BoolVar(&skip, "skip", false, "finish the first visit without choosing a name")

	return cmd
}
