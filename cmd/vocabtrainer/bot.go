package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmpolyakov/vocabtrainer/internal/bootstrap"
	"github.com/dmpolyakov/vocabtrainer/internal/config"
	"github.com/dmpolyakov/vocabtrainer/internal/database"
	"github.com/dmpolyakov/vocabtrainer/internal/engine"
	"github.com/dmpolyakov/vocabtrainer/internal/session"
	"github.com/dmpolyakov/vocabtrainer/internal/stats"
	"github.com/dmpolyakov/vocabtrainer/internal/telegram"
	"github.com/dmpolyakov/vocabtrainer/internal/user"
	"github.com/dmpolyakov/vocabtrainer/internal/word"
)

func newBotCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run the Telegram quiz bot",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.Telegram.Token == "" {
				return fmt.Errorf("telegram token is required: set the TELEGRAM_BOT_TOKEN environment variable")
			}
			return runBot(cmd.Context(), cfg)
		},
	}
}

func runBot(ctx context.Context, cfg *config.Config) error {
	app := bootstrap.New()

	db, err := database.Open(cfg.Database)
	if err != nil {
		return err
	}
	app.AddShutdownHook(func(ctx context.Context) error {
		return db.Close()
	})

	store := session.NewStore()
	reaper := session.NewReaper(store, cfg.Session.ReapInterval(), cfg.Session.IdleTimeout(), nil)

	eng := engine.New(
		word.NewDBRepository(db),
		stats.NewDBRepository(db),
		user.NewDBRepository(db),
		store,
		engine.Config{
			DistractorCount: cfg.Quiz.DistractorCount,
			MinOptions:      cfg.Quiz.MinOptions,
			StorageTimeout:  cfg.Storage.Timeout(),
		},
		nil,
	)

	bot, err := telegram.New(cfg.Telegram.Token, cfg.Telegram.PollTimeoutSeconds, eng, nil)
	if err != nil {
		return fmt.Errorf("failed to create telegram bot: %w", err)
	}

	return app.Run(ctx, func(ctx context.Context) error {
		go reaper.Run(ctx)
		slog.InfoContext(ctx, "starting telegram bot")
		return bot.Run(ctx)
	})
}
