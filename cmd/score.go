package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/hangman/internal/hangman"
	"github.com/abhisek/hangman/internal/i18n"
	"github.com/abhisek/hangman/internal/store"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Show the saved win/loss record",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		score, err := st.ScoreRepo().Load(cmd.Context())
		switch {
		case errors.Is(err, store.ErrNotFound):
			score = hangman.Score{}
		case err != nil:
			log.Warn().Err(err).Msg("saved score unreadable")
			fmt.Fprintln(cmd.ErrOrStderr(), "Saved score is unreadable, showing zero:", err)
			score = hangman.Score{}
		}

		t := i18n.For(cfg.Language)
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n%s: %d\n", t.Wins, score.Wins, t.Losses, score.Losses)
		return nil
	},
}

var scoreClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Reset wins and losses to zero",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		if err := st.ScoreRepo().Save(cmd.Context(), hangman.Score{}); err != nil {
			return fmt.Errorf("clear score: %w", err)
		}
		log.Info().Msg("score cleared")
		fmt.Fprintln(cmd.OutOrStdout(), "Score cleared.")
		return nil
	},
}

func init() {
	scoreCmd.AddCommand(scoreClearCmd)
}
