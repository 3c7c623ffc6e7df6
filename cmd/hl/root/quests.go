package root

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"hunterline/internal/engine"
	"hunterline/internal/ui"
)

func newQuestsCmd() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:     "quests",
		Aliases: []string{"list", "ls"},
		Short:   "List today's quests",
		RunE: func(cmd *cobra.Command, args []string) error {
			var cat engine.Category
			if category != "" {
				c, ok := engine.ParseCategory(category)
				if !ok {
					return fmt.Errorf("unknown category %q (want physical, mental or intelligence)", category)
				}
				cat = c
			}

			s, err := openService(cmd.Context(), cmd, nil)
			if err != nil {
				return err
			}
			defer s.close()

			printQuests(cmd.OutOrStdout(), s.svc.Quests(), cat)
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "only show quests of this category")

	return cmd
}

// printQuests lists quests with their 1-based position. A non-empty cat hides
// other categories; positions still refer to the full set so `hl do #n` works.
func printQuests(w io.Writer, quests []engine.Quest, cat engine.Category) {
	fmt.Fprintln(w, ui.Heading(ui.IconQuest, "Daily Quests"))
	if len(quests) == 0 {
		fmt.Fprintln(w, ui.Muted.Render("(no quests)"))
		return
	}
	done, shown := 0, 0
	for i, q := range quests {
		if cat != "" && q.Category != cat {
			continue
		}
		shown++
		if q.Completed {
			done++
		}
		fmt.Fprintf(w, "%s %s %s %s %s\n",
			ui.Key.Render(fmt.Sprintf("#%d", i+1)),
			ui.QuestStatus(q),
			ui.CategoryIcon(q.Category),
			q.Title,
			ui.Muted.Render(fmt.Sprintf("(%s, %s +%d, %d EXP)", q.Difficulty, q.StatBonus.Type.Label(), q.StatBonus.Value, q.Exp)),
		)
		fmt.Fprintln(w, "   "+ui.Dim.Render(q.Description))
	}
	if shown == 0 {
		fmt.Fprintln(w, ui.Muted.Render(fmt.Sprintf("(no %s quests today)", cat)))
		return
	}
	fmt.Fprintln(w, ui.Muted.Render(fmt.Sprintf("%d/%d completed", done, shown)))
}

// resolveQuestRef maps "#n" or "n" (1-based position) to a quest id. Any other
// input is taken as an id as-is.
func resolveQuestRef(quests []engine.Quest, ref string) string {
	ref = strings.TrimSpace(ref)
	n, err := strconv.Atoi(strings.TrimPrefix(ref, "#"))
	if err == nil && n >= 1 && n <= len(quests) {
		return quests[n-1].ID
	}
	return ref
}
