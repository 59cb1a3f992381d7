package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/happymath/internal/progress"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress for every game",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		sessions, err := d.store.EventRepo().SessionCount(cmd.Context(), "")
		if err != nil {
			return fmt.Errorf("count sessions: %w", err)
		}
		report := buildStatsReport(d.progress.Entries(), d.progress.TotalProgress(), sessions)

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}
		return writeStats(cmd.OutOrStdout(), report)
	},
}

func init() {
	statsCmd.Flags().Bool("json", false, "Print machine-readable JSON")
}

type gameStats struct {
	Game                string     `json:"game"`
	Level               int        `json:"level,omitempty"`
	Score               int        `json:"score,omitempty"`
	PointsRequired      int        `json:"pointsRequired,omitempty"`
	TotalProblems       int        `json:"totalProblems"`
	CorrectAnswers      int        `json:"correctAnswers"`
	Accuracy            float64    `json:"accuracy"`
	HighestDifficulty   int        `json:"highestDifficulty"`
	StreakCount         int        `json:"streakCount"`
	TimeSpent           float64    `json:"timeSpent"`
	AverageResponseTime float64    `json:"averageResponseTime"`
	LastPlayed          *time.Time `json:"lastPlayed,omitempty"`
}

type statsReport struct {
	Games    []gameStats `json:"games"`
	Total    gameStats   `json:"total"`
	Sessions int         `json:"sessions"`
}

func buildStatsReport(entries []progress.Entry, total progress.GameProgress, sessions int) statsReport {
	r := statsReport{Games: make([]gameStats, 0, len(entries)), Sessions: sessions}
	for _, e := range entries {
		gs := toGameStats(e.Type.String(), e.Progress)
		gs.Level = e.State.Level
		gs.Score = e.State.Score
		gs.PointsRequired = progress.PointsRequired(e.State.Level)
		r.Games = append(r.Games, gs)
	}
	r.Total = toGameStats("total", total)
	return r
}

func toGameStats(name string, gp progress.GameProgress) gameStats {
	gs := gameStats{
		Game:                name,
		TotalProblems:       gp.TotalProblems,
		CorrectAnswers:      gp.CorrectAnswers,
		Accuracy:            gp.AccuracyPercentage(),
		HighestDifficulty:   gp.HighestDifficulty,
		StreakCount:         gp.StreakCount,
		TimeSpent:           gp.TimeSpent,
		AverageResponseTime: gp.AverageResponseTime,
	}
	if !gp.LastPlayed.IsZero() {
		lp := gp.LastPlayed
		gs.LastPlayed = &lp
	}
	return gs
}

// writeStats prints report as an aligned table.
func writeStats(w io.Writer, r statsReport) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "GAME\tLEVEL\tSCORE\tPROBLEMS\tACCURACY\tBEST LEVEL\tAVG TIME\tLAST PLAYED")
	for _, g := range r.Games {
		fmt.Fprintf(tw, "%s\t%d\t%d/%d\t%d\t%.0f%%\t%d\t%s\t%s\n",
			g.Game, g.Level, g.Score, g.PointsRequired, g.TotalProblems,
			g.Accuracy, g.HighestDifficulty, formatSeconds(g.AverageResponseTime, g.TotalProblems),
			formatLastPlayed(g.LastPlayed))
	}
	t := r.Total
	fmt.Fprintf(tw, "%s\t\t\t%d\t%.0f%%\t%d\t%s\t%s\n",
		"TOTAL", t.TotalProblems, t.Accuracy, t.HighestDifficulty,
		formatSeconds(t.AverageResponseTime, t.TotalProblems), formatLastPlayed(t.LastPlayed))
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nSessions played: %d\n", r.Sessions)
	return err
}

func formatSeconds(avg float64, problems int) string {
	if problems == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1fs", avg)
}

func formatLastPlayed(t *time.Time) string {
	if t == nil {
		return "never"
	}
	return t.Local().Format("2006-01-02 15:04")
}
