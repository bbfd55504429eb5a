// Package stats provides per-user, per-word learning statistics.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/dmpolyakov/vocabtrainer/internal/database"
	"github.com/dmpolyakov/vocabtrainer/internal/word"
)

// LearningStat holds answer counters for one (user, word, origin) key.
// Counters are only ever incremented.
type LearningStat struct {
	ID            int64     `db:"id"`
	UserID        int64     `db:"user_id"`
	WordID        int64     `db:"word_id"`
	WordType      word.Type `db:"word_type"`
	CorrectCount  int       `db:"correct_count"`
	WrongCount    int       `db:"wrong_count"`
	LastPracticed time.Time `db:"last_practiced"`
}

// SummaryRow is a LearningStat joined with the word it refers to,
// used for per-user reporting.
type SummaryRow struct {
	English       string    `db:"english_word"`
	Translation   string    `db:"translation_word"`
	WordType      word.Type `db:"word_type"`
	CorrectCount  int       `db:"correct_count"`
	WrongCount    int       `db:"wrong_count"`
	LastPracticed time.Time `db:"last_practiced"`
}

//go:generate mockgen -source=repository.go -destination=../mocks/stats/mock_repository.go -package=mock_stats

// Repository defines operations for recording and reading learning statistics.
type Repository interface {
	RecordAnswer(ctx context.Context, userID, wordID int64, wordType word.Type, correct bool) error
	SummaryByUser(ctx context.Context, userID int64) ([]SummaryRow, error)
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

var _ Repository = (*DBRepository)(nil)

// RecordAnswer increments the matching counter for the (user, word, origin)
// key, creating the row on first answer. The insert-on-conflict statement
// keeps concurrent answers for the same key from losing increments.
func (r *DBRepository) RecordAnswer(ctx context.Context, userID, wordID int64, wordType word.Type, correct bool) error {
	const query = `
		INSERT INTO learning_stats (user_id, word_id, word_type, correct_count, wrong_count, last_practiced)
		VALUES (?, ?, ?, ?, ?, NOW())
		ON DUPLICATE KEY UPDATE
			correct_count = correct_count + VALUES(correct_count),
			wrong_count = wrong_count + VALUES(wrong_count),
			last_practiced = NOW()`

	var correctInc, wrongInc int
	if correct {
		correctInc = 1
	} else {
		wrongInc = 1
	}

	return database.WithConflictRetry(ctx, func() error {
		if _, err := r.db.ExecContext(ctx, query, userID, wordID, wordType, correctInc, wrongInc); err != nil {
			return fmt.Errorf("record answer: %w", err)
		}
		return nil
	})
}

// SummaryByUser returns the user's statistics joined with the words they
// refer to, most recently practiced first.
func (r *DBRepository) SummaryByUser(ctx context.Context, userID int64) ([]SummaryRow, error) {
	const query = `
		SELECT
			COALESCE(cw.english_word, pw.english_word, '') AS english_word,
			COALESCE(cw.translation_word, pw.translation_word, '') AS translation_word,
			s.word_type, s.correct_count, s.wrong_count, s.last_practiced
		FROM learning_stats s
		LEFT JOIN common_words cw ON s.word_type = 'common' AND cw.id = s.word_id
		LEFT JOIN personal_words pw ON s.word_type = 'personal' AND pw.id = s.word_id AND pw.user_id = s.user_id
		WHERE s.user_id = ?
		ORDER BY s.last_practiced DESC`

	var rows []SummaryRow
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("load learning summary: %w", err)
	}
	return rows, nil
}
