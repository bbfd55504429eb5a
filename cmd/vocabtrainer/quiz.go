package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dmpolyakov/vocabtrainer/internal/cli"
	"github.com/dmpolyakov/vocabtrainer/internal/database"
	"github.com/dmpolyakov/vocabtrainer/internal/engine"
	"github.com/dmpolyakov/vocabtrainer/internal/session"
	"github.com/dmpolyakov/vocabtrainer/internal/stats"
	"github.com/dmpolyakov/vocabtrainer/internal/user"
	"github.com/dmpolyakov/vocabtrainer/internal/word"
)

func newQuizCommand() *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Run a quiz session in the terminal",
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

			eng := engine.New(
				word.NewDBRepository(db),
				stats.NewDBRepository(db),
				user.NewDBRepository(db),
				session.NewStore(),
				engine.Config{
					DistractorCount: cfg.Quiz.DistractorCount,
					MinOptions:      cfg.Quiz.MinOptions,
					StorageTimeout:  cfg.Storage.Timeout(),
				},
				nil,
			)

			quiz := cli.NewQuizCLI(eng, userID, os.Stdin, os.Stdout)
			return quiz.Run(cmd.Context())
		},
	}
	cmd.Flags().Int64Var(&userID, "user", 0, "user ID to run the session as")
	if err := cmd.MarkFlagRequired("user"); err != nil {
		panic(err)
	}
	return cmd
}
