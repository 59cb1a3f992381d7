package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/happymath/internal/gametype"
)

var errResetAborted = errors.New("reset aborted")

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset saved progress",
	Long: "Reset the level, score and statistics of one game (--game) or of\n" +
		"every game (--all). Answer history for the reset games is removed too.",
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := resetTarget(cmd)
		if err != nil {
			return err
		}

		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			what := "ALL games"
			if target != "" {
				what = "the " + target.String() + " game"
			}
			ok, err := confirm(cmd.InOrStdin(), cmd.OutOrStdout(),
				fmt.Sprintf("Reset progress for %s? [y/N] ", what))
			if err != nil {
				return err
			}
			if !ok {
				return errResetAborted
			}
		}

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		ctx := cmd.Context()
		if target == "" {
			d.progress.ResetAll(ctx)
		} else {
			d.progress.Reset(ctx, target)
		}
		if err := d.store.EventRepo().DeleteAnswers(ctx, target.String()); err != nil {
			return fmt.Errorf("delete history: %w", err)
		}
		d.log.Info("progress reset", zap.String("game", target.String()))

		fmt.Fprintln(cmd.OutOrStdout(), "Progress reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().String("game", "", "Game to reset")
	resetCmd.Flags().Bool("all", false, "Reset every game")
	resetCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
	resetCmd.MarkFlagsMutuallyExclusive("game", "all")
	resetCmd.MarkFlagsOneRequired("game", "all")
}

// resetTarget returns the game named by --game, or "" for --all.
func resetTarget(cmd *cobra.Command) (gametype.GameType, error) {
	if all, _ := cmd.Flags().GetBool("all"); all {
		return "", nil
	}
	name, _ := cmd.Flags().GetString("game")
	return gametype.Parse(name)
}

// confirm asks prompt on w and reads a yes/no answer from r.
func confirm(r io.Reader, w io.Writer, prompt string) (bool, error) {
	fmt.Fprint(w, prompt)
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read answer: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
