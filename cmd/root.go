package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"wastewise/internal/analyzer"
	"wastewise/internal/config"
	"wastewise/internal/database"
	"wastewise/internal/logger"
	"wastewise/internal/metrics"
	"wastewise/internal/provider"

	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:           "wastewise",
	Short:         "Food waste insights for home kitchens",
	Long:          "Track cooked, eaten and leftover food, predict waste and get suggestions to reduce it.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "  Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", config.DefaultPath, "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

// loadConfig is the shared config path used by all commands. --log-level
// wins over the file and the environment.
func loadConfig() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, nil, err
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	return cfg, logger.New(cfg.LogLevel, os.Stderr), nil
}

// openProvider picks the remote API when one is configured, otherwise the
// local database. The returned func releases whatever was opened.
func openProvider(cfg config.Config, log *slog.Logger) (provider.Provider, func(), error) {
	if cfg.Remote.URL != "" {
		remote := provider.NewRemote(cfg.Remote.URL, cfg.Remote.Timeout)
		remote.Token = cfg.Remote.Token
		log.Info("using remote data provider", "url", remote.BaseURL)
		return remote, func() {}, nil
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Database.Seed {
		if err := database.Seed(db, time.Now()); err != nil {
			db.Close()
			return nil, nil, err
		}
	}
	log.Info("using database data provider", "driver", cfg.Database.Driver)
	return provider.NewStore(db), func() { db.Close() }, nil
}

func newAnalyzer(cfg config.Config, log *slog.Logger, mc *metrics.Collector) *analyzer.Analyzer {
	opts := []analyzer.Option{
		analyzer.WithChatDelay(cfg.Assistant.ChatDelay),
		analyzer.WithLogger(log),
		analyzer.WithMetrics(mc),
	}
	switch {
	case cfg.Assistant.Deterministic:
		opts = append(opts, analyzer.WithRand(analyzer.FixedRand(0.5)))
	case cfg.Assistant.Seed != 0:
		opts = append(opts, analyzer.WithSeed(cfg.Assistant.Seed))
	}
	return analyzer.New(opts...)
}
