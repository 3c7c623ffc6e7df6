package root

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"hunterline/internal/engine"
)

func newPlansCmd() *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "plans",
		Short: "Suggest training plans from your stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openService(cmd.Context(), cmd, nil)
			if err != nil {
				return err
			}
			defer s.close()

			md := plansMarkdown(s.svc.TrainingPlans())
			if raw {
				fmt.Fprint(cmd.OutOrStdout(), md)
				return nil
			}
			renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
			if err != nil {
				return err
			}
			out, err := renderer.Render(md)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print markdown without styling")

	return cmd
}

func plansMarkdown(plans []engine.TrainingPlan) string {
	var b strings.Builder
	b.WriteString("# Training Plans\n\n")
	for _, p := range plans {
		fmt.Fprintf(&b, "## %s", p.Title)
		if p.Recommended {
			b.WriteString(" ⭐ recommended")
		}
		b.WriteString("\n\n")
		fmt.Fprintf(&b, "%s\n\n", p.Description)
		focus := make([]string, len(p.Focus))
		for i, s := range p.Focus {
			focus[i] = s.Label()
		}
		fmt.Fprintf(&b, "**%d days** · %s · focus: %s\n\n", p.Days, p.Difficulty, strings.Join(focus, ", "))
		for _, a := range p.Activities {
			fmt.Fprintf(&b, "- %s\n", a)
		}
		b.WriteString("\n")
	}
	return b.String()
}
