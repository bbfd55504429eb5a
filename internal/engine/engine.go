// Package engine implements the quiz state machine over the word pools,
// learning statistics, and per-user sessions. It is transport-agnostic:
// inbound events come in as plain facts ("user said T", "user picked C")
// and outbound responses describe text plus selectable options, leaving
// delivery and rendering to the transport layer.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmpolyakov/vocabtrainer/internal/session"
	"github.com/dmpolyakov/vocabtrainer/internal/stats"
	"github.com/dmpolyakov/vocabtrainer/internal/user"
	"github.com/dmpolyakov/vocabtrainer/internal/word"
)

// EventKind distinguishes free text from the selection of a presented option.
type EventKind string

const (
	EventText      EventKind = "text"
	EventSelection EventKind = "selection"
)

// Event is one inbound fact about a user. Display fields are informational
// and only used when the user row is created or refreshed.
type Event struct {
	UserID    int64
	Kind      EventKind
	Payload   string
	Username  string
	FirstName string
	LastName  string
}

// Response describes one outbound message: text plus, optionally, an
// ordered set of options the transport should render as selectable.
type Response struct {
	Text    string
	Options []string
}

// Config holds the engine's tunables.
type Config struct {
	DistractorCount int
	MinOptions      int
	StorageTimeout  time.Duration
}

// Engine drives quiz rounds and the add/delete word dialogs. All session
// mutation happens inside the store's per-user exclusive section, so
// concurrent events for one user are handled one at a time.
type Engine struct {
	words    word.Repository
	stats    stats.Repository
	users    user.Repository
	sessions *session.Store
	cfg      Config
	logger   *slog.Logger
}

// New creates an Engine. Zero config fields fall back to defaults
// (3 distractors, 4 minimum options, 5s storage timeout). If logger is
// nil, the default logger is used.
func New(
	words word.Repository,
	statsRepo stats.Repository,
	users user.Repository,
	sessions *session.Store,
	cfg Config,
	logger *slog.Logger,
) *Engine {
	if cfg.DistractorCount <= 0 {
		cfg.DistractorCount = 3
	}
	if cfg.MinOptions <= 0 {
		cfg.MinOptions = 4
	}
	if cfg.StorageTimeout <= 0 {
		cfg.StorageTimeout = 5 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		words:    words,
		stats:    statsRepo,
		users:    users,
		sessions: sessions,
		cfg:      cfg,
		logger:   logger.With(slog.String("component", "quiz_engine")),
	}
}

// HandleEvent processes one inbound event under the user's session lock
// and returns the responses to deliver, in order. Storage failures never
// propagate: they are logged and surfaced as retryable user messages.
func (e *Engine) HandleEvent(ctx context.Context, ev Event) []Response {
	var out []Response
	_ = e.sessions.Do(ev.UserID, func(s *session.Session) error {
		out = e.dispatch(ctx, ev, s)
		return nil
	})
	return out
}

func (e *Engine) dispatch(ctx context.Context, ev Event, s *session.Session) []Response {
	switch ev.Payload {
	case CmdStart:
		return e.handleStart(ctx, ev, s)
	case CmdAddWord:
		s.ClearPending()
		s.State = session.StateAwaitingEnglish
		return respond(msgEnglishPrompt)
	case CmdDeleteWord:
		return e.handleDeleteStart(ctx, ev.UserID, s)
	case CmdStats:
		return e.handleStats(ctx, ev.UserID)
	case CmdNext, CmdContinue:
		if s.State == session.StateIdle || s.State == session.StateAwaitingAnswer {
			return e.buildRound(ctx, ev.UserID, s)
		}
		// Inside a data-entry dialog the text falls through as dialog input.
	}

	switch s.State {
	case session.StateAwaitingEnglish:
		return e.handleEnglishInput(ev, s)
	case session.StateAwaitingRussian:
		return e.handleRussianInput(ctx, ev, s)
	case session.StateAwaitingDeleteChoice:
		return e.handleDeleteChoice(ctx, ev, s)
	case session.StateAwaitingAnswer:
		return e.handleAnswer(ctx, ev, s)
	default:
		// Idle with no round pending: any stray event asks for a round.
		return e.buildRound(ctx, ev.UserID, s)
	}
}

func (e *Engine) handleStart(ctx context.Context, ev Event, s *session.Session) []Response {
	tctx, cancel := e.storageCtx(ctx)
	defer cancel()

	err := e.users.Upsert(tctx, user.User{
		ID:        ev.UserID,
		Username:  ev.Username,
		FirstName: ev.FirstName,
		LastName:  ev.LastName,
	})
	if err != nil {
		e.logger.Error("upsert user failed", slog.Int64("user_id", ev.UserID), slog.Any("error", err))
		return respond(msgStorageError)
	}

	return []Response{{
		Text:    msgGreeting,
		Options: []string{CmdNext, CmdAddWord, CmdDeleteWord, CmdStats},
	}}
}

// buildRound picks a target and distractors, stores the round in the
// session, and emits the prompt. The session is mutated only after every
// storage call has succeeded.
func (e *Engine) buildRound(ctx context.Context, userID int64, s *session.Session) []Response {
	tctx, cancel := e.storageCtx(ctx)
	defer cancel()

	ref, err := e.words.PickRandom(tctx, userID)
	if errors.Is(err, word.ErrNoWords) {
		s.ResetRound()
		return respond(msgNoWords)
	}
	if err != nil {
		e.logger.Error("pick random word failed", slog.Int64("user_id", userID), slog.Any("error", err))
		return respond(msgStorageError)
	}

	distractors, err := e.words.PickDistractors(tctx, userID, ref.English, e.cfg.DistractorCount)
	if err != nil {
		e.logger.Error("pick distractors failed", slog.Int64("user_id", userID), slog.Any("error", err))
		return respond(msgStorageError)
	}
	if len(distractors)+1 < e.cfg.MinOptions {
		s.ResetRound()
		return respond(msgInsufficientPool)
	}

	s.Target = &ref
	s.Distractors = distractors
	s.State = session.StateAwaitingAnswer

	return []Response{{
		Text:    fmt.Sprintf(msgRoundPrompt, ref.Translation),
		Options: shuffledOptions(s),
	}}
}

func (e *Engine) handleAnswer(ctx context.Context, ev Event, s *session.Session) []Response {
	target := s.Target

	switch {
	case ev.Payload == target.English:
		if err := e.recordAnswer(ctx, ev.UserID, target, true); err != nil {
			return respond(msgStorageError)
		}
		english, translation := target.English, target.Translation
		s.ResetRound()
		out := []Response{{Text: fmt.Sprintf(msgCorrect, english, translation)}}
		return append(out, e.buildRound(ctx, ev.UserID, s)...)

	case containsTerm(s.Distractors, ev.Payload):
		if err := e.recordAnswer(ctx, ev.UserID, target, false); err != nil {
			return respond(msgStorageError)
		}
		// The round survives a wrong answer; only presentation order changes.
		return []Response{
			{Text: fmt.Sprintf(msgWrong, ev.Payload, target.English, target.Translation)},
			{Text: fmt.Sprintf(msgRoundPrompt, target.Translation), Options: shuffledOptions(s)},
		}

	default:
		return respond(msgInvalidOption)
	}
}

func (e *Engine) handleEnglishInput(ev Event, s *session.Session) []Response {
	term := strings.TrimSpace(ev.Payload)
	if utf8.RuneCountInString(term) < word.MinTermLength {
		return respond(msgEnglishTooShort)
	}

	s.PendingEnglish = term
	s.State = session.StateAwaitingRussian
	return respond(fmt.Sprintf(msgRussianPrompt, term))
}

func (e *Engine) handleRussianInput(ctx context.Context, ev Event, s *session.Session) []Response {
	translation := strings.TrimSpace(ev.Payload)
	if utf8.RuneCountInString(translation) < word.MinTermLength {
		return respond(msgRussianTooShort)
	}

	tctx, cancel := e.storageCtx(ctx)
	defer cancel()

	english := s.PendingEnglish
	var out []Response
	if err := e.words.UpsertPersonal(tctx, ev.UserID, english, translation); err != nil {
		e.logger.Error("upsert personal word failed",
			slog.Int64("user_id", ev.UserID), slog.String("english", english), slog.Any("error", err))
		out = respond(msgAddFailed)
	} else if count, err := e.words.CountPersonal(tctx, ev.UserID); err != nil {
		e.logger.Warn("count personal words failed", slog.Int64("user_id", ev.UserID), slog.Any("error", err))
		out = respond(fmt.Sprintf(msgWordAddedShort, english))
	} else {
		out = respond(fmt.Sprintf(msgWordAdded, english, count))
	}

	s.ClearPending()
	s.State = session.StateIdle
	return append(out, e.buildRound(ctx, ev.UserID, s)...)
}

func (e *Engine) handleDeleteStart(ctx context.Context, userID int64, s *session.Session) []Response {
	tctx, cancel := e.storageCtx(ctx)
	defer cancel()

	count, err := e.words.CountPersonal(tctx, userID)
	if err != nil {
		e.logger.Error("count personal words failed", slog.Int64("user_id", userID), slog.Any("error", err))
		return respond(msgStorageError)
	}
	if count == 0 {
		return respond(msgNothingToDelete)
	}

	words, err := e.words.ListPersonal(tctx, userID)
	if err != nil {
		e.logger.Error("list personal words failed", slog.Int64("user_id", userID), slog.Any("error", err))
		return respond(msgStorageError)
	}

	options := make([]string, 0, len(words))
	for _, w := range words {
		options = append(options, w.English)
	}

	s.State = session.StateAwaitingDeleteChoice
	return []Response{{
		Text:    fmt.Sprintf(msgDeletePrompt, count),
		Options: options,
	}}
}

func (e *Engine) handleDeleteChoice(ctx context.Context, ev Event, s *session.Session) []Response {
	tctx, cancel := e.storageCtx(ctx)
	defer cancel()

	term := strings.TrimSpace(ev.Payload)
	if err := e.words.DeletePersonal(tctx, ev.UserID, term); err != nil {
		e.logger.Error("delete personal word failed",
			slog.Int64("user_id", ev.UserID), slog.String("english", term), slog.Any("error", err))
		return respond(fmt.Sprintf(msgDeleteFailed, term))
	}

	remaining, err := e.words.CountPersonal(tctx, ev.UserID)
	if err != nil {
		e.logger.Error("count personal words failed", slog.Int64("user_id", ev.UserID), slog.Any("error", err))
		return respond(msgStorageError)
	}

	s.State = session.StateIdle
	out := respond(fmt.Sprintf(msgWordDeleted, term, remaining))
	if remaining > 0 {
		return append(out, Response{Text: msgContinuePrompt, Options: []string{CmdContinue}})
	}
	return append(out, e.buildRound(ctx, ev.UserID, s)...)
}

func (e *Engine) handleStats(ctx context.Context, userID int64) []Response {
	tctx, cancel := e.storageCtx(ctx)
	defer cancel()

	count, err := e.words.CountPersonal(tctx, userID)
	if err != nil {
		e.logger.Error("count personal words failed", slog.Int64("user_id", userID), slog.Any("error", err))
		return respond(msgStorageError)
	}
	pool, err := e.words.PoolStats(tctx)
	if err != nil {
		e.logger.Error("load pool stats failed", slog.Any("error", err))
		return respond(msgStorageError)
	}

	return respond(fmt.Sprintf(msgStatsTemplate, count, pool.CommonWords, pool.Users, pool.PersonalWords))
}

func (e *Engine) recordAnswer(ctx context.Context, userID int64, target *word.Ref, correct bool) error {
	tctx, cancel := e.storageCtx(ctx)
	defer cancel()

	if err := e.stats.RecordAnswer(tctx, userID, target.ID, target.Type, correct); err != nil {
		e.logger.Error("record answer failed",
			slog.Int64("user_id", userID),
			slog.Int64("word_id", target.ID),
			slog.String("word_type", string(target.Type)),
			slog.Any("error", err))
		return err
	}
	return nil
}

func (e *Engine) storageCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, e.cfg.StorageTimeout)
}

// shuffledOptions returns the target plus distractors in random order.
// Presentation order carries no meaning, so no fixed seed is used.
func shuffledOptions(s *session.Session) []string {
	options := make([]string, 0, len(s.Distractors)+1)
	options = append(options, s.Target.English)
	options = append(options, s.Distractors...)
	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}

func containsTerm(terms []string, term string) bool {
	for _, t := range terms {
		if t == term {
			return true
		}
	}
	return false
}

func respond(text string) []Response {
	return []Response{{Text: text}}
}
