package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/happymath/internal/gametype"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Jump straight into a game",
	Long: "Start a game without going through the menus. Valid games:\n  " +
		strings.Join(gameNames(), ", "),
	Args: cobra.ExactArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return gameNames(), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := gametype.Parse(args[0])
		if err != nil {
			return fmt.Errorf("%w (valid: %s)", err, strings.Join(gameNames(), ", "))
		}
		return runApp(cmd, runOptions{game: t})
	},
}

func gameNames() []string {
	all := gametype.All()
	names := make([]string, len(all))
	for i, t := range all {
		names[i] = t.String()
	}
	return names
}
