package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmpolyakov/vocabtrainer/internal/database"
	"github.com/dmpolyakov/vocabtrainer/internal/word"
)

// defaultSeedWords is the starter vocabulary loaded when no seed file is given.
var defaultSeedWords = []word.CommonWord{
	{English: "Peace", Translation: "Мир", Category: "Basic"},
	{English: "Hello", Translation: "Привет", Category: "Greetings"},
	{English: "Goodbye", Translation: "Пока", Category: "Greetings"},
	{English: "Car", Translation: "Машина", Category: "Transport"},
	{English: "House", Translation: "Дом", Category: "Housing"},
	{English: "Red", Translation: "Красный", Category: "Colors"},
	{English: "Blue", Translation: "Синий", Category: "Colors"},
	{English: "Green", Translation: "Зелёный", Category: "Colors"},
	{English: "White", Translation: "Белый", Category: "Colors"},
	{English: "Black", Translation: "Чёрный", Category: "Colors"},
	{English: "I", Translation: "Я", Category: "Pronouns"},
	{English: "You", Translation: "Ты", Category: "Pronouns"},
	{English: "He", Translation: "Он", Category: "Pronouns"},
	{English: "She", Translation: "Она", Category: "Pronouns"},
	{English: "We", Translation: "Мы", Category: "Pronouns"},
}

func newSeedCommand() *cobra.Command {
	var (
		seedFile   string
		exportFile string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load shared vocabulary into the database",
		Long:  "Load shared vocabulary into the database, either the built-in starter set or entries from a YAML file. With --export, write the current shared vocabulary to a YAML file instead.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := database.Open(cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			repo := word.NewDBRepository(db)

			if exportFile != "" {
				return exportSeedFile(cmd, repo, exportFile)
			}

			words := defaultSeedWords
			if seedFile != "" {
				words, err = loadSeedFile(seedFile)
				if err != nil {
					return err
				}
			}

			if err := repo.BatchUpsertCommon(cmd.Context(), words); err != nil {
				return fmt.Errorf("failed to seed vocabulary: %w", err)
			}
			slog.Info("vocabulary seeded", slog.Int("words", len(words)))
			return nil
		},
	}
	cmd.Flags().StringVar(&seedFile, "file", "", "YAML file with vocabulary entries")
	cmd.Flags().StringVar(&exportFile, "export", "", "write the current shared vocabulary to this YAML file")
	cmd.MarkFlagsMutuallyExclusive("file", "export")
	return cmd
}

func exportSeedFile(cmd *cobra.Command, repo word.Repository, path string) error {
	words, err := repo.ListCommon(cmd.Context())
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(words)
	if err != nil {
		return fmt.Errorf("failed to marshal vocabulary: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	slog.Info("vocabulary exported", slog.Int("words", len(words)), slog.String("path", path))
	return nil
}

func loadSeedFile(path string) ([]word.CommonWord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	var words []word.CommonWord
	if err := yaml.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("seed file %s contains no words", path)
	}
	return words, nil
}
