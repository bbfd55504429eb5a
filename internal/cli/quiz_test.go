package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dmpolyakov/vocabtrainer/internal/engine"
	mock_stats "github.com/dmpolyakov/vocabtrainer/internal/mocks/stats"
	mock_user "github.com/dmpolyakov/vocabtrainer/internal/mocks/user"
	mock_word "github.com/dmpolyakov/vocabtrainer/internal/mocks/word"
	"github.com/dmpolyakov/vocabtrainer/internal/session"
	"github.com/dmpolyakov/vocabtrainer/internal/word"
)

func TestQuizCLI_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	words := mock_word.NewMockRepository(ctrl)
	statsRepo := mock_stats.NewMockRepository(ctrl)
	users := mock_user.NewMockRepository(ctrl)

	target := word.Ref{Type: word.TypeCommon, ID: 3, English: "House", Translation: "Дом"}

	users.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	words.EXPECT().PickRandom(gomock.Any(), int64(1)).Return(target, nil)
	words.EXPECT().PickDistractors(gomock.Any(), int64(1), "House", 3).
		Return([]string{"Car", "Red", "Peace"}, nil)

	// Answering correctly starts the next round; an empty pool ends it.
	statsRepo.EXPECT().RecordAnswer(gomock.Any(), int64(1), int64(3), word.TypeCommon, true).Return(nil)
	words.EXPECT().PickRandom(gomock.Any(), int64(1)).Return(word.Ref{}, word.ErrNoWords)

	eng := engine.New(words, statsRepo, users, session.NewStore(), engine.Config{}, nil)

	in := strings.NewReader("House\nexit\n")
	var out strings.Builder
	quiz := NewQuizCLI(eng, 1, in, &out)

	require.NoError(t, quiz.Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, "Выбери перевод слова: 🇷🇺 Дом")
	assert.Contains(t, got, "1)")
	assert.Contains(t, got, "4)")
	assert.Contains(t, got, "Отлично!")
}

func TestQuizCLI_NumberSelectsOption(t *testing.T) {
	ctrl := gomock.NewController(t)
	words := mock_word.NewMockRepository(ctrl)
	statsRepo := mock_stats.NewMockRepository(ctrl)
	users := mock_user.NewMockRepository(ctrl)

	target := word.Ref{Type: word.TypeCommon, ID: 3, English: "House", Translation: "Дом"}

	users.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	words.EXPECT().PickRandom(gomock.Any(), int64(1)).Return(target, nil)
	words.EXPECT().PickDistractors(gomock.Any(), int64(1), "House", 3).
		Return([]string{"Car", "Red", "Peace"}, nil)

	// Any numbered pick lands on a presented option, so exactly one
	// answer is recorded; a correct pick also starts the next round.
	statsRepo.EXPECT().
		RecordAnswer(gomock.Any(), int64(1), int64(3), word.TypeCommon, gomock.Any()).
		Return(nil)
	words.EXPECT().PickRandom(gomock.Any(), int64(1)).Return(word.Ref{}, word.ErrNoWords).AnyTimes()

	eng := engine.New(words, statsRepo, users, session.NewStore(), engine.Config{}, nil)

	in := strings.NewReader("2\nexit\n")
	var out strings.Builder
	quiz := NewQuizCLI(eng, 1, in, &out)

	require.NoError(t, quiz.Run(context.Background()))
	assert.NotContains(t, out.String(), "Пожалуйста, выберите один из предложенных вариантов")
}
