package session

import (
	"sync"
	"time"
)

// Store maps user IDs to sessions. All access to a given user's session is
// serialized through a per-entry mutex, so two inbound events for the same
// user can never interleave a read-modify-write, while events for
// different users proceed independently.
type Store struct {
	mu       sync.Mutex
	sessions map[int64]*entry

	now func() time.Time
}

type entry struct {
	mu      sync.Mutex
	sess    Session
	evicted bool
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		sessions: make(map[int64]*entry),
		now:      time.Now,
	}
}

// Do runs fn with exclusive access to the user's session, creating an Idle
// session on first contact. Last activity is refreshed before fn runs, so
// every handled event counts as a touch.
func (st *Store) Do(userID int64, fn func(s *Session) error) error {
	for {
		e := st.acquire(userID)
		e.mu.Lock()
		if e.evicted {
			// Lost a race with the reaper between lookup and lock; the
			// entry is gone from the map, so start over with a fresh one.
			e.mu.Unlock()
			continue
		}
		e.sess.LastActivity = st.now()
		err := fn(&e.sess)
		e.mu.Unlock()
		return err
	}
}

func (st *Store) acquire(userID int64) *entry {
	st.mu.Lock()
	defer st.mu.Unlock()
	e, ok := st.sessions[userID]
	if !ok {
		e = &entry{sess: Session{State: StateIdle, LastActivity: st.now()}}
		st.sessions[userID] = e
	}
	return e
}

// Peek returns a copy of the user's session without creating one.
func (st *Store) Peek(userID int64) (Session, bool) {
	st.mu.Lock()
	e, ok := st.sessions[userID]
	st.mu.Unlock()
	if !ok {
		return Session{}, false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.evicted {
		return Session{}, false
	}
	return e.sess, true
}

// Evict removes the user's session. It takes the same per-user lock as Do,
// so an eviction never interleaves with an in-flight transition.
func (st *Store) Evict(userID int64) bool {
	st.mu.Lock()
	e, ok := st.sessions[userID]
	st.mu.Unlock()
	if !ok {
		return false
	}

	e.mu.Lock()
	e.evicted = true
	e.mu.Unlock()

	st.mu.Lock()
	if cur, ok := st.sessions[userID]; ok && cur == e {
		delete(st.sessions, userID)
	}
	st.mu.Unlock()
	return true
}

// EvictIdle removes every session whose last activity is before cutoff and
// returns the evicted user IDs. Each eviction holds the per-user lock, so a
// session being mutated concurrently is either swept before or after the
// transition, never mid-way.
func (st *Store) EvictIdle(cutoff time.Time) []int64 {
	st.mu.Lock()
	candidates := make(map[int64]*entry, len(st.sessions))
	for id, e := range st.sessions {
		candidates[id] = e
	}
	st.mu.Unlock()

	var evicted []int64
	for id, e := range candidates {
		e.mu.Lock()
		stale := !e.evicted && e.sess.LastActivity.Before(cutoff)
		if stale {
			e.evicted = true
		}
		e.mu.Unlock()

		if !stale {
			continue
		}
		st.mu.Lock()
		if cur, ok := st.sessions[id]; ok && cur == e {
			delete(st.sessions, id)
		}
		st.mu.Unlock()
		evicted = append(evicted, id)
	}
	return evicted
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}
