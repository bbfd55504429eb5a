// Package telegram adapts engine events and responses to the Telegram Bot API.
package telegram

import (
	"context"
	"log/slog"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dmpolyakov/vocabtrainer/internal/engine"
)

// roundPacing is the pause before an automatically started next round, so
// the result of the previous answer stays readable.
const roundPacing = time.Second

// Bot runs the long-polling loop and converts Telegram updates into
// engine events. Per-user ordering is the engine's concern; updates are
// handled concurrently here.
type Bot struct {
	api         *tgbotapi.BotAPI
	engine      *engine.Engine
	pollTimeout int
	logger      *slog.Logger
}

// New creates a Bot for the given token. If logger is nil, the default
// logger is used.
func New(token string, pollTimeoutSeconds int, eng *engine.Engine, logger *slog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Bot{
		api:         api,
		engine:      eng,
		pollTimeout: pollTimeoutSeconds,
		logger:      logger.With(slog.String("component", "telegram_bot")),
	}, nil
}

// Run polls for updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	b.logger.Info("authorized on telegram", slog.String("account", b.api.Self.UserName))

	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.pollTimeout
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			go b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	ev, chatID, ok := eventFromUpdate(update)
	if !ok {
		return
	}

	if update.CallbackQuery != nil {
		if _, err := b.api.Request(tgbotapi.NewCallback(update.CallbackQuery.ID, "")); err != nil {
			b.logger.Warn("answer callback failed", slog.Any("error", err))
		}
	}

	responses := b.engine.HandleEvent(ctx, ev)
	b.deliver(chatID, responses)
}

func eventFromUpdate(update tgbotapi.Update) (engine.Event, int64, bool) {
	switch {
	case update.Message != nil && update.Message.From != nil && update.Message.Text != "":
		msg := update.Message
		return engine.Event{
			UserID:    msg.From.ID,
			Kind:      engine.EventText,
			Payload:   msg.Text,
			Username:  msg.From.UserName,
			FirstName: msg.From.FirstName,
			LastName:  msg.From.LastName,
		}, msg.Chat.ID, true

	case update.CallbackQuery != nil && update.CallbackQuery.Message != nil:
		cb := update.CallbackQuery
		return engine.Event{
			UserID:    cb.From.ID,
			Kind:      engine.EventSelection,
			Payload:   cb.Data,
			Username:  cb.From.UserName,
			FirstName: cb.From.FirstName,
			LastName:  cb.From.LastName,
		}, cb.Message.Chat.ID, true
	}
	return engine.Event{}, 0, false
}

func (b *Bot) deliver(chatID int64, responses []engine.Response) {
	for i, r := range responses {
		if i > 0 && len(r.Options) > 0 {
			// A follow-up message with options is the auto-started next round.
			time.Sleep(roundPacing)
		}

		msg := tgbotapi.NewMessage(chatID, r.Text)
		if len(r.Options) > 0 {
			msg.ReplyMarkup = replyKeyboard(r.Options)
		}
		if _, err := b.api.Send(msg); err != nil {
			b.logger.Error("send message failed", slog.Int64("chat_id", chatID), slog.Any("error", err))
		}
	}
}

// replyKeyboard lays out the options two per row, followed by the
// persistent command rows.
func replyKeyboard(options []string) tgbotapi.ReplyKeyboardMarkup {
	var rows [][]tgbotapi.KeyboardButton
	hasCommands := false
	for i := 0; i < len(options); i += 2 {
		row := []tgbotapi.KeyboardButton{tgbotapi.NewKeyboardButton(options[i])}
		if i+1 < len(options) {
			row = append(row, tgbotapi.NewKeyboardButton(options[i+1]))
		}
		rows = append(rows, row)
	}
	for _, o := range options {
		if o == engine.CmdNext {
			hasCommands = true
		}
	}
	if hasCommands {
		return tgbotapi.NewReplyKeyboard(rows...)
	}
	rows = append(rows,
		[]tgbotapi.KeyboardButton{
			tgbotapi.NewKeyboardButton(engine.CmdNext),
			tgbotapi.NewKeyboardButton(engine.CmdAddWord),
		},
		[]tgbotapi.KeyboardButton{
			tgbotapi.NewKeyboardButton(engine.CmdDeleteWord),
			tgbotapi.NewKeyboardButton(engine.CmdStats),
		},
	)
	return tgbotapi.NewReplyKeyboard(rows...)
}
