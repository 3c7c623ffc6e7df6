package root

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"hunterline/internal/ui"
)

const Version = "0.1.0"

var (
	flagConfig  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:           "hl",
	Short:         "Hunterline: level up your real life",
	Long:          "Hunterline turns daily habits into quests. Complete them to earn EXP and stat points; skip them and your stats decay.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default $HUNTERLINE_CONFIG or ~/.hunterline.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging on stderr")

	rootCmd.AddCommand(
		newStatusCmd(),
		newQuestsCmd(),
		newDoCmd(),
		newRefreshCmd(),
		newResetCmd(),
		newNameCmd(),
		newPlansCmd(),
		newHistoryCmd(),
		newBoardCmd(),
		newServeCmd(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
