// Package user provides persistence for end-user identities.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// User is an end user, identified by an opaque numeric ID assigned by the
// transport. Display fields are informational only.
type User struct {
	ID        int64     `db:"user_id"`
	Username  string    `db:"username"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	CreatedAt time.Time `db:"created_at"`
}

//go:generate mockgen -source=repository.go -destination=../mocks/user/mock_repository.go -package=mock_user

// Repository defines operations for managing users.
type Repository interface {
	Upsert(ctx context.Context, u User) error
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

// Upsert creates the user on first contact and refreshes display fields afterwards.
func (r *DBRepository) Upsert(ctx context.Context, u User) error {
	const query = `
		INSERT INTO users (user_id, username, first_name, last_name)
		VALUES (:user_id, :username, :first_name, :last_name)
		ON DUPLICATE KEY UPDATE
			username = VALUES(username),
			first_name = VALUES(first_name),
			last_name = VALUES(last_name)`

	if _, err := r.db.NamedExecContext(ctx, query, u); err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}
	return nil
}
