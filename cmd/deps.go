package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/happymath/internal/config"
	"github.com/abhisek/happymath/internal/logging"
	"github.com/abhisek/happymath/internal/problemgen"
	"github.com/abhisek/happymath/internal/progress"
	"github.com/abhisek/happymath/internal/store"
)

// deps are the services shared by every subcommand.
type deps struct {
	cfg      *config.Config
	log      *zap.Logger
	store    *store.Store
	progress *progress.Store
}

// openDeps loads the configuration, then opens the logger, the database
// and the progress store. Callers must Close the result.
func openDeps(cmd *cobra.Command) (*deps, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	log, err := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	st, err := openStore(cfg, log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("open store: %w", err)
	}

	ps := progress.Open(cmd.Context(), st.KV(), progress.WithLogger(log.Named("progress")))
	return &deps{cfg: cfg, log: log, store: st, progress: ps}, nil
}

// Close releases the database and flushes the logger.
func (d *deps) Close() {
	if err := d.store.Close(); err != nil {
		d.log.Warn("close store", zap.Error(err))
	}
	_ = d.log.Sync()
}

// generator builds a problem generator, seeded when the config asks for
// reproducible problems.
func (d *deps) generator() *problemgen.Generator {
	var rng *rand.Rand
	if d.cfg.Seed != 0 {
		rng = rand.New(rand.NewPCG(d.cfg.Seed, d.cfg.Seed^0x9e3779b97f4a7c15))
	}
	return problemgen.New(rng, problemgen.DefaultConfig())
}

// loadConfig reads the config file and environment, then applies the
// flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if flags.Changed("db") {
		cfg.DBPath, _ = flags.GetString("db")
	}
	if flags.Changed("ephemeral") {
		cfg.Ephemeral, _ = flags.GetBool("ephemeral")
	}
	if flags.Changed("lang") {
		cfg.Language, _ = flags.GetString("lang")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("log-file") {
		cfg.Logging.File, _ = flags.GetString("log-file")
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// openStore opens the SQLite database named by cfg, or a private
// in-memory one for ephemeral runs.
func openStore(cfg *config.Config, log *zap.Logger) (*store.Store, error) {
	opts := []store.Option{store.WithLogger(log.Named("store"))}
	if cfg.Ephemeral {
		return store.OpenMemory(opts...)
	}

	path, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	return store.Open(path, opts...)
}

// resolveDBPath returns the configured path (flag, env var or config
// file), then the default XDG path.
func resolveDBPath(cfg *config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
