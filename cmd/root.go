package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "happymath",
	Short: "Arcade math practice for kids",
	Long: "Happy Math is a terminal arcade of math games. Each game adapts its\n" +
		"difficulty to the player and remembers progress between runs.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, runOptions{})
	},
}

// ExecuteContext runs the command line with ctx as every command's context.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to config file (overrides HAPPYMATH_CONFIG env var)")
	pf.String("db", "", "Path to SQLite database file (overrides HAPPYMATH_DB env var)")
	pf.Bool("ephemeral", false, "Keep all progress in memory for this run")
	pf.String("lang", "", "UI language for this run (English, zh, vi, ...)")
	pf.Uint64("seed", 0, "Seed for reproducible problems (0 = random)")
	pf.String("log-file", "", "Write logs to this file")
	pf.String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.Flags().Bool("no-splash", false, "Skip the welcome screen")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}
