package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/happymath/internal/app"
	"github.com/abhisek/happymath/internal/gametype"
	"github.com/abhisek/happymath/internal/i18n"
)

// runOptions are the per-command choices layered over the shared deps.
type runOptions struct {
	game gametype.GameType
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command, ro runOptions) error {
	d, err := openDeps(cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	noSplash, _ := cmd.Flags().GetBool("no-splash")
	opts := app.Options{
		Progress:      d.progress,
		Generator:     d.generator(),
		Events:        d.store.EventRepo(),
		Logger:        d.log,
		FeedbackDelay: d.cfg.FeedbackDelay,
		Game:          ro.game,
		SkipWelcome:   noSplash || ro.game != "",
	}
	if d.cfg.Language != "" {
		opts.Language = i18n.ParseLanguage(d.cfg.Language)
	}

	d.log.Info("starting",
		zap.String("version", version),
		zap.String("game", ro.game.String()),
		zap.Bool("ephemeral", d.cfg.Ephemeral))
	return app.Run(cmd.Context(), opts)
}
