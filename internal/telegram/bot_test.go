package telegram

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmpolyakov/vocabtrainer/internal/engine"
)

func TestEventFromUpdate(t *testing.T) {
	tests := []struct {
		name       string
		update     tgbotapi.Update
		wantEvent  engine.Event
		wantChatID int64
		wantOK     bool
	}{
		{
			name: "text message",
			update: tgbotapi.Update{
				Message: &tgbotapi.Message{
					Text: "House",
					From: &tgbotapi.User{ID: 42, UserName: "ivan", FirstName: "Иван", LastName: "Петров"},
					Chat: &tgbotapi.Chat{ID: 100},
				},
			},
			wantEvent: engine.Event{
				UserID:    42,
				Kind:      engine.EventText,
				Payload:   "House",
				Username:  "ivan",
				FirstName: "Иван",
				LastName:  "Петров",
			},
			wantChatID: 100,
			wantOK:     true,
		},
		{
			name: "callback query",
			update: tgbotapi.Update{
				CallbackQuery: &tgbotapi.CallbackQuery{
					Data: "House",
					From: &tgbotapi.User{ID: 42, UserName: "ivan"},
					Message: &tgbotapi.Message{
						Chat: &tgbotapi.Chat{ID: 100},
					},
				},
			},
			wantEvent: engine.Event{
				UserID:   42,
				Kind:     engine.EventSelection,
				Payload:  "House",
				Username: "ivan",
			},
			wantChatID: 100,
			wantOK:     true,
		},
		{
			name: "message without text is skipped",
			update: tgbotapi.Update{
				Message: &tgbotapi.Message{
					From: &tgbotapi.User{ID: 42},
					Chat: &tgbotapi.Chat{ID: 100},
				},
			},
			wantOK: false,
		},
		{
			name:   "empty update is skipped",
			update: tgbotapi.Update{},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, chatID, ok := eventFromUpdate(tt.update)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantEvent, ev)
			assert.Equal(t, tt.wantChatID, chatID)
		})
	}
}

func TestReplyKeyboard(t *testing.T) {
	t.Run("answer options get the persistent command rows", func(t *testing.T) {
		markup := replyKeyboard([]string{"House", "Car", "Red", "Peace"})

		require.Len(t, markup.Keyboard, 4)
		assert.Equal(t, "House", markup.Keyboard[0][0].Text)
		assert.Equal(t, "Car", markup.Keyboard[0][1].Text)
		assert.Equal(t, "Red", markup.Keyboard[1][0].Text)
		assert.Equal(t, "Peace", markup.Keyboard[1][1].Text)
		assert.Equal(t, engine.CmdNext, markup.Keyboard[2][0].Text)
		assert.Equal(t, engine.CmdAddWord, markup.Keyboard[2][1].Text)
		assert.Equal(t, engine.CmdDeleteWord, markup.Keyboard[3][0].Text)
		assert.Equal(t, engine.CmdStats, markup.Keyboard[3][1].Text)
	})

	t.Run("odd option count leaves a short last row", func(t *testing.T) {
		markup := replyKeyboard([]string{"House", "Car", "Red"})

		require.Len(t, markup.Keyboard, 4)
		require.Len(t, markup.Keyboard[1], 1)
		assert.Equal(t, "Red", markup.Keyboard[1][0].Text)
	})

	t.Run("the main menu is not duplicated", func(t *testing.T) {
		markup := replyKeyboard([]string{
			engine.CmdNext, engine.CmdAddWord, engine.CmdDeleteWord, engine.CmdStats,
		})

		require.Len(t, markup.Keyboard, 2)
		assert.Equal(t, engine.CmdNext, markup.Keyboard[0][0].Text)
		assert.Equal(t, engine.CmdStats, markup.Keyboard[1][1].Text)
	})
}
