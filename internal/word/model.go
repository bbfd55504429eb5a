// Package word provides the two-tier word pool: shared vocabulary plus per-user words.
package word

import "time"

// Type identifies which pool a word came from. Learning stats are keyed
// per origin, so the discriminator travels with every picked word.
type Type string

const (
	TypeCommon   Type = "common"
	TypePersonal Type = "personal"
)

// CommonWord is a shared vocabulary entry available to every user.
type CommonWord struct {
	ID          int64     `db:"id" yaml:"-"`
	English     string    `db:"english_word" yaml:"english"`
	Translation string    `db:"translation_word" yaml:"translation"`
	Category    string    `db:"category" yaml:"category,omitempty"`
	CreatedAt   time.Time `db:"created_at" yaml:"-"`
}

// PersonalWord is a vocabulary entry owned by exactly one user.
type PersonalWord struct {
	ID          int64     `db:"id"`
	UserID      int64     `db:"user_id"`
	English     string    `db:"english_word"`
	Translation string    `db:"translation_word"`
	CreatedAt   time.Time `db:"created_at"`
}

// Ref is a resolved word reference used during quiz construction,
// agnostic to which table backs it.
type Ref struct {
	Type        Type   `db:"word_type"`
	ID          int64  `db:"word_id"`
	English     string `db:"english_word"`
	Translation string `db:"translation_word"`
}

// PoolStats is an administrative summary of the word pools.
type PoolStats struct {
	CommonWords   int `db:"common_words"`
	PersonalWords int `db:"personal_words"`
	Users         int `db:"users"`
}
