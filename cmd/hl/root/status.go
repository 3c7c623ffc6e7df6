package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"hunterline/internal/engine"
	"hunterline/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show hunter stats, level and achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := openService(ctx, cmd, nil)
			if err != nil {
				return err
			}
			defer s.close()

			out := cmd.OutOrStdout()
			snap := s.svc.Snapshot()
			name := snap.Name
			if name == "" {
				name = ui.Muted.Render("(unnamed, set one with `hl name`)")
			}

			fmt.Fprintln(out, ui.Heading(ui.IconShield, "Hunter Status"))
			fmt.Fprintln(out, ui.LabelValue("Name", name))
			fmt.Fprintln(out, ui.LabelValue("Level", snap.Level))
			fmt.Fprintln(out, ui.LabelValue("EXP", fmt.Sprintf("%d/%d %s", snap.Exp, snap.ExpToNextLevel, ui.ExpBar(snap.Exp, snap.ExpToNextLevel, 20))))
			if engine.IsBossLevel(snap.Level) {
				fmt.Fprintln(out, ui.BadgeBoss+" "+ui.Muted.Render("a boss awaits at this level"))
			}
			fmt.Fprintln(out, ui.LabelValue("Last refresh", snap.LastRefresh.Local().Format("2006-01-02 15:04")))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("📊 Stats"))
			for _, st := range engine.AllStats {
				line := fmt.Sprintf("- %s %s: %d", ui.StatIcon(st), ui.StatName(st), snap.Stats.Get(st))
				if d := ui.Delta(snap.RecentChanges[st]); d != "" {
					line += " " + d
				}
				fmt.Fprintln(out, line)
			}
			fmt.Fprintln(out, "")

			checker := engine.NewAchievementChecker(snap.Stats, snap.Level)
			fmt.Fprintln(out, ui.H2.Render(fmt.Sprintf("%s Achievements (%d/%d)", ui.IconTrophy, checker.CountEarned(), checker.CountTotal())))
			for _, a := range checker.GetAchievements() {
				mark := ui.Muted.Render(fmt.Sprintf("%3d%%", a.Progress))
				if a.Earned {
					mark = ui.Good.Render(" ✓  ")
				}
				fmt.Fprintf(out, "- %s %s %s\n", mark, a.Name, ui.Muted.Render(a.Description))
			}
			return nil
		},
	}

	return cmd
}
