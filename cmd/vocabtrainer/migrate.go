package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmpolyakov/vocabtrainer/internal/database"
)

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database schema migrations",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
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

				if err := database.MigrateUp(db); err != nil {
					return err
				}
				slog.Info("migrations applied")
				return nil
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
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

				if err := database.MigrateDown(db); err != nil {
					return err
				}
				slog.Info("migration rolled back")
				return nil
			},
		},
	)
	return cmd
}
