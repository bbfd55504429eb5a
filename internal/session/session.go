// Package session holds ephemeral per-user quiz state with TTL-based eviction.
package session

import (
	"time"

	"github.com/dmpolyakov/vocabtrainer/internal/word"
)

// State is the dialog position of a session.
type State string

const (
	StateIdle                 State = "idle"
	StateAwaitingAnswer       State = "awaiting_answer"
	StateAwaitingEnglish      State = "awaiting_english"
	StateAwaitingRussian      State = "awaiting_russian"
	StateAwaitingDeleteChoice State = "awaiting_delete_choice"
)

// Session is the ephemeral per-user state: the active round, the dialog
// position, and scratch input for the add-word flow. It is owned
// exclusively by the Store and must only be mutated inside Store.Do.
type Session struct {
	State          State
	Target         *word.Ref
	Distractors    []string
	PendingEnglish string
	LastActivity   time.Time
}

// HasTarget reports whether a round is currently pending an answer.
func (s *Session) HasTarget() bool {
	return s.Target != nil
}

// ResetRound clears the active round and returns the session to Idle.
func (s *Session) ResetRound() {
	s.Target = nil
	s.Distractors = nil
	s.State = StateIdle
}

// ClearPending drops the add-word scratch input.
func (s *Session) ClearPending() {
	s.PendingEnglish = ""
}
