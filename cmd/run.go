package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/hangman/internal/app"
	"github.com/abhisek/hangman/internal/clock"
	"github.com/abhisek/hangman/internal/game"
	"github.com/abhisek/hangman/internal/vocab"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, closer, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	st, err := openStore(cfg, log)
	if err != nil {
		return err
	}
	defer st.Close()

	words, err := vocab.NewFromConfig(ctx, cfg.Words, log)
	if err != nil {
		log.Warn().Err(err).Str("source", cfg.Words.Kind).Msg("word source unavailable, using offline list")
		fmt.Fprintln(os.Stderr, "Word source not configured:", err)
		fmt.Fprintln(os.Stderr, "Playing with the offline word list.")
		if words, err = vocab.NewEmbeddedSource(); err != nil {
			return fmt.Errorf("offline words: %w", err)
		}
	}

	eng := game.New(words, st.ScoreRepo(), clock.Real{},
		game.WithLogger(log),
		game.WithLanguage(cfg.Language),
		game.WithTimeMode(cfg.TimeMode),
		game.WithFetchTimeout(cfg.FetchTimeout),
	)

	log.Info().
		Str("language", string(cfg.Language)).
		Str("mode", string(cfg.TimeMode)).
		Str("source", cfg.Words.Kind).
		Msg("starting hangman")
	return app.Run(ctx, eng)
}
