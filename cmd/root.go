package cmd

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/hangman/internal/config"
	"github.com/abhisek/hangman/internal/hangman"
	"github.com/abhisek/hangman/internal/logging"
	"github.com/abhisek/hangman/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "hangman",
	Short: "Hangman in the terminal",
	Long:  "Guess the word one letter at a time, in English, Italian or Spanish.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides HANGMAN_DB env var)")
	pf.String("log-file", "", `Log file path, or "-" for stderr (overrides HANGMAN_LOG_FILE)`)
	pf.String("lang", "", "Word language: en, it or es (overrides HANGMAN_LANG)")
	pf.String("source", "", "Word source: api, offline or llm (overrides HANGMAN_SOURCE)")
	pf.String("api-url", "", "Base URL of the random word API (overrides HANGMAN_API_URL)")
	rootCmd.Flags().String("mode", "", "Time mode: normal, speed or countdown (overrides HANGMAN_MODE)")

	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(wordCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if v, _ := cmd.Flags().GetString("db"); v != "" {
		cfg.DBPath = v
	}
	if v, _ := cmd.Flags().GetString("log-file"); v != "" {
		cfg.LogFile = v
	}
	if v, _ := cmd.Flags().GetString("source"); v != "" {
		cfg.Words.Kind = v
	}
	if v, _ := cmd.Flags().GetString("api-url"); v != "" {
		cfg.Words.APIURL = v
	}
	if v, _ := cmd.Flags().GetString("lang"); v != "" {
		lang, err := hangman.ParseLanguage(v)
		if err != nil {
			return nil, err
		}
		cfg.Language = lang
	}
	if cmd.Flags().Lookup("mode") != nil {
		if v, _ := cmd.Flags().GetString("mode"); v != "" {
			mode, err := hangman.ParseTimeMode(v)
			if err != nil {
				return nil, err
			}
			cfg.TimeMode = mode
		}
	}
	return cfg, nil
}

// openLogger opens the configured log destination.
func openLogger(cfg *config.Config) (zerolog.Logger, io.Closer, error) {
	log, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return log, closer, fmt.Errorf("open log: %w", err)
	}
	return log, closer, nil
}

// openStore resolves the database path, --db first, then HANGMAN_DB, then
// the default XDG path, and opens it.
func openStore(cfg *config.Config, log zerolog.Logger) (*store.Store, error) {
	dbPath := cfg.DBPath
	if dbPath != "" {
		if err := store.EnsureDir(dbPath); err != nil {
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
	} else {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
		dbPath = p
	}

	st, err := store.Open(dbPath, store.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
