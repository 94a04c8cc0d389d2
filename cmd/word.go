package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/hangman/internal/vocab"
)

var wordCmd = &cobra.Command{
	Use:   "word",
	Short: "Fetch words from the configured source (no database)",
	Long: `Fetch and print words from the configured word source.

This is a stateless tool: no database, no score. Useful for checking the
word API, the offline lists or an LLM provider.`,
	RunE: runWord,
}

func init() {
	wordCmd.Flags().Int("count", 1, "Number of words to fetch")
}

func runWord(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	if count < 1 {
		return fmt.Errorf("--count must be at least 1")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, closer, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	src, err := vocab.NewFromConfig(cmd.Context(), cfg.Words, log)
	if err != nil {
		return err
	}

	for i := 0; i < count; i++ {
		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.FetchTimeout)
		word, err := src.FetchWord(ctx, cfg.Language)
		cancel()
		if err != nil {
			return fmt.Errorf("fetch word: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), word)
	}
	return nil
}
