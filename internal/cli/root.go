package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/scrabbler/internal/factory"
	"github.com/mcoot/scrabbler/internal/middleware"
)

var (
	cfg    *Config
	app    *factory.App
	logger *slog.Logger
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "scrabbler",
		Short: "Word game engine and move finder",
		Long: `scrabbler checks words, replays plays onto a 15x15 premium board,
finds the highest-scoring move for a rack and runs CPU-only games.

The lexicon is read from --words (one word per line). With --storage redis
the lists are cached and --words "" loads them from the cache.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger = cfg.Logger(cmd.ErrOrStderr())

			var err error
			app, err = factory.New(cfg.FactoryConfig(logger, cmd.Flags().Changed("seed")))
			if err != nil {
				return err
			}
			return app.LoadDictionary(cmd.Context(), cfg.WordsPath, cfg.PartialsPath)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app == nil {
				return nil
			}
			return app.Close()
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.WordsPath, "words", cfg.WordsPath, "Word list path (env: SCRABBLER_WORDS)")
	rootCmd.PersistentFlags().StringVar(&cfg.PartialsPath, "partials", cfg.PartialsPath, "Partials list path, derived from the words if empty (env: SCRABBLER_PARTIALS)")
	rootCmd.PersistentFlags().StringVar(&cfg.Storage, "storage", cfg.Storage, "Word list cache: memory, redis (env: SCRABBLER_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL (env: SCRABBLER_REDIS_URL)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose logging")

	// Add subcommands
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newReplayCmd())
	rootCmd.AddCommand(newBestCmd())
	rootCmd.AddCommand(newSelfPlayCmd())

	currentLogger := func() *slog.Logger { return logger }
	for _, sub := range rootCmd.Commands() {
		sub.RunE = middleware.Chain(sub.RunE,
			middleware.Recovery(currentLogger, middleware.DefaultPanicHandler),
			middleware.Logging(currentLogger),
		)
	}

	return rootCmd
}

// Execute runs the root command. Cancelling ctx aborts a running search.
func Execute(ctx context.Context) {
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
