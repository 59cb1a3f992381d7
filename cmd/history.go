package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/happymath/internal/gametype"
	"github.com/abhisek/happymath/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently answered problems",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := historyQuery(cmd)
		if err != nil {
			return err
		}

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		events, err := d.store.EventRepo().RecentAnswers(cmd.Context(), opts)
		if err != nil {
			return fmt.Errorf("query history: %w", err)
		}
		return writeHistory(cmd.OutOrStdout(), events)
	},
}

func init() {
	historyCmd.Flags().String("game", "", "Only show one game")
	historyCmd.Flags().Int("limit", 20, "Maximum number of answers (0 = all)")
}

func historyQuery(cmd *cobra.Command) (store.QueryOpts, error) {
	var opts store.QueryOpts
	if name, _ := cmd.Flags().GetString("game"); name != "" {
		t, err := gametype.Parse(name)
		if err != nil {
			return opts, err
		}
		opts.GameType = t.String()
	}
	limit, _ := cmd.Flags().GetInt("limit")
	if limit < 0 {
		return opts, fmt.Errorf("--limit must not be negative")
	}
	opts.Limit = limit
	return opts, nil
}

// writeHistory prints events newest first.
func writeHistory(w io.Writer, events []store.AnswerEvent) error {
	if len(events) == 0 {
		_, err := fmt.Fprintln(w, "No answers recorded yet.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tGAME\tLEVEL\tQUESTION\tANSWER\tEXPECTED\tRESULT\tTIME TAKEN")
	for _, e := range events {
		result := "wrong"
		if e.Correct {
			result = "correct"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\t%s\t%.1fs\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			e.GameType, e.Level, e.Question, e.ChosenAnswer, e.CorrectAnswer,
			result, float64(e.ResponseMs)/1000)
	}
	return tw.Flush()
}
