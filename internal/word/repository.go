package word

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jmoiron/sqlx"

	"github.com/dmpolyakov/vocabtrainer/internal/database"
)

var (
	// ErrNoWords is returned when the combined pool for a user is empty.
	ErrNoWords = errors.New("no words available")
	// ErrTermTooShort is returned when a term or translation is shorter
	// than two characters after trimming.
	ErrTermTooShort = errors.New("term must be at least 2 characters")
)

// MinTermLength is the minimum rune count for a term or translation after trimming.
const MinTermLength = 2

//go:generate mockgen -source=repository.go -destination=../mocks/word/mock_repository.go -package=mock_word

// Repository defines operations over the shared and personal word pools.
type Repository interface {
	PickRandom(ctx context.Context, userID int64) (Ref, error)
	PickDistractors(ctx context.Context, userID int64, exclude string, count int) ([]string, error)
	UpsertPersonal(ctx context.Context, userID int64, english, translation string) error
	DeletePersonal(ctx context.Context, userID int64, english string) error
	CountPersonal(ctx context.Context, userID int64) (int, error)
	ListPersonal(ctx context.Context, userID int64) ([]PersonalWord, error)
	ListCommon(ctx context.Context) ([]CommonWord, error)
	BatchUpsertCommon(ctx context.Context, words []CommonWord) error
	PoolStats(ctx context.Context) (PoolStats, error)
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

// PickRandom draws one word uniformly at random from the union of the
// common pool and the user's personal pool.
func (r *DBRepository) PickRandom(ctx context.Context, userID int64) (Ref, error) {
	const query = `
		SELECT word_type, word_id, english_word, translation_word FROM (
			SELECT 'common' AS word_type, id AS word_id, english_word, translation_word FROM common_words
			UNION ALL
			SELECT 'personal' AS word_type, id AS word_id, english_word, translation_word FROM personal_words WHERE user_id = ?
		) AS pool
		ORDER BY RAND()
		LIMIT 1`

	var ref Ref
	if err := r.db.GetContext(ctx, &ref, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Ref{}, ErrNoWords
		}
		return Ref{}, fmt.Errorf("pick random word: %w", err)
	}
	return ref, nil
}

// PickDistractors draws up to count distinct english terms from the same
// union, excluding the target term, in random order. The result may be
// shorter than count when the pool is small.
func (r *DBRepository) PickDistractors(ctx context.Context, userID int64, exclude string, count int) ([]string, error) {
	const query = `
		SELECT english_word FROM (
			SELECT english_word FROM common_words
			UNION ALL
			SELECT english_word FROM personal_words WHERE user_id = ?
		) AS pool
		WHERE english_word <> ?
		GROUP BY english_word
		ORDER BY RAND()
		LIMIT ?`

	var terms []string
	if err := r.db.SelectContext(ctx, &terms, query, userID, exclude, count); err != nil {
		return nil, fmt.Errorf("pick distractors: %w", err)
	}
	return terms, nil
}

// UpsertPersonal inserts a personal word or overwrites the translation of
// an existing (user, english) pair.
func (r *DBRepository) UpsertPersonal(ctx context.Context, userID int64, english, translation string) error {
	english = strings.TrimSpace(english)
	translation = strings.TrimSpace(translation)
	if utf8.RuneCountInString(english) < MinTermLength || utf8.RuneCountInString(translation) < MinTermLength {
		return ErrTermTooShort
	}

	const query = `
		INSERT INTO personal_words (user_id, english_word, translation_word)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE translation_word = VALUES(translation_word)`

	return database.WithConflictRetry(ctx, func() error {
		if _, err := r.db.ExecContext(ctx, query, userID, english, translation); err != nil {
			return fmt.Errorf("upsert personal word: %w", err)
		}
		return nil
	})
}

// DeletePersonal removes a personal word. Deleting a term the user does
// not have succeeds without effect.
func (r *DBRepository) DeletePersonal(ctx context.Context, userID int64, english string) error {
	const query = `DELETE FROM personal_words WHERE user_id = ? AND english_word = ?`

	return database.WithConflictRetry(ctx, func() error {
		if _, err := r.db.ExecContext(ctx, query, userID, english); err != nil {
			return fmt.Errorf("delete personal word: %w", err)
		}
		return nil
	})
}

// CountPersonal returns the number of personal words the user owns.
func (r *DBRepository) CountPersonal(ctx context.Context, userID int64) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM personal_words WHERE user_id = ?`, userID); err != nil {
		return 0, fmt.Errorf("count personal words: %w", err)
	}
	return count, nil
}

// ListPersonal returns the user's personal words, most recently created first.
func (r *DBRepository) ListPersonal(ctx context.Context, userID int64) ([]PersonalWord, error) {
	const query = `
		SELECT id, user_id, english_word, translation_word, created_at
		FROM personal_words
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC`

	var words []PersonalWord
	if err := r.db.SelectContext(ctx, &words, query, userID); err != nil {
		return nil, fmt.Errorf("list personal words: %w", err)
	}
	return words, nil
}

// ListCommon returns all shared vocabulary entries.
func (r *DBRepository) ListCommon(ctx context.Context) ([]CommonWord, error) {
	var words []CommonWord
	if err := r.db.SelectContext(ctx, &words, `SELECT id, english_word, translation_word, category, created_at FROM common_words ORDER BY english_word`); err != nil {
		return nil, fmt.Errorf("list common words: %w", err)
	}
	return words, nil
}

// BatchUpsertCommon inserts or updates shared vocabulary entries in a single transaction.
func (r *DBRepository) BatchUpsertCommon(ctx context.Context, words []CommonWord) error {
	if len(words) == 0 {
		return nil
	}

	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		const query = `
			INSERT INTO common_words (english_word, translation_word, category)
			VALUES (:english_word, :translation_word, :category)
			ON DUPLICATE KEY UPDATE translation_word = VALUES(translation_word), category = VALUES(category)`

		for _, w := range words {
			if _, err := tx.NamedExecContext(ctx, query, w); err != nil {
				return fmt.Errorf("upsert common word %q: %w", w.English, err)
			}
		}
		return nil
	})
}

// PoolStats returns administrative counts over both pools and the user table.
func (r *DBRepository) PoolStats(ctx context.Context) (PoolStats, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM common_words) AS common_words,
			(SELECT COUNT(*) FROM personal_words) AS personal_words,
			(SELECT COUNT(*) FROM users) AS users`

	var stats PoolStats
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		return PoolStats{}, fmt.Errorf("load pool stats: %w", err)
	}
	return stats, nil
}
