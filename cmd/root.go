package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tymora/tymora/internal/config"
	"github.com/tymora/tymora/internal/session"
	"github.com/tymora/tymora/internal/store"
)

var (
	flagConfig string
	flagDate   string
)

var rootCmd = &cobra.Command{
	Use:   "tymora",
	Short: "TymOra – a personal activity log",
	Long: `tymora logs timestamped activities per calendar day, tagged by
category, mood and energy level, and derives summaries and rule-based
insights from them. All data is stored locally.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&flagDate, "date", "", "Selected date (YYYY-MM-DD, default today)")

	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(timelineCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(insightsCmd)
	rootCmd.AddCommand(retentionCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCmd)
}

// app bundles everything a subcommand needs.
type app struct {
	cfg   *config.Config
	store *store.Store
	sess  *session.Session
	log   zerolog.Logger
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		a.log.Error().Err(err).Msg("closing store")
	}
}

// openStore loads config and opens the database without touching the
// document. Used by commands that must work even on a corrupt document
// (import, reset).
func openStore() (*config.Config, *store.Store, zerolog.Logger, error) {
	path := flagConfig
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, nil, zerolog.Nop(), err
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, zerolog.Nop(), err
	}
	logger := setupLogger(cfg.Logging)
	st, err := store.Open(cfg.Storage.Path, logger)
	if err != nil {
		return nil, nil, logger, err
	}
	return cfg, st, logger, nil
}

// openApp opens the store, loads the document (seeding or migrating as
// needed), runs the startup retention cleanup and builds the session for
// the selected date.
func openApp() (*app, error) {
	cfg, st, logger, err := openStore()
	if err != nil {
		return nil, err
	}

	doc, err := st.Load()
	if err != nil {
		_ = st.Close()
		return nil, err
	}
	if _, err := st.Cleanup(doc.HistoryRetentionDays); err != nil {
		_ = st.Close()
		return nil, err
	}

	sess, err := session.New(st, logger, flagDate)
	if err != nil {
		_ = st.Close()
		return nil, err
	}
	return &app{cfg: cfg, store: st, sess: sess, log: logger}, nil
}

// setupLogger configures zerolog from config. The CLI default is warn so
// regular command output stays clean.
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.WarnLevel
	switch cfg.Level {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "error":
		level = zerolog.ErrorLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}
