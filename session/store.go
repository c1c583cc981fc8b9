package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/you/pathfinder/finder"
)

// Store holds live sessions in memory. Entries expire after ttl without
// access; nothing survives a restart.
type Store struct {
	cache     *cache.Cache
	newFinder func() *finder.Orchestrator

	mu sync.Mutex // serializes get-or-create
}

// NewStore creates a Store. newFinder builds the orchestrator of each new session.
func NewStore(ttl time.Duration, newFinder func() *finder.Orchestrator) *Store {
	return &Store{
		cache:     cache.New(ttl, 2*ttl),
		newFinder: newFinder,
	}
}

// Get returns the session with id and extends its lifetime
func (s *Store) Get(id string) (*Session, bool) {
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, false
	}
	sess := v.(*Session)
	s.cache.SetDefault(id, sess)
	return sess, true
}

// GetOrCreate returns the session with id, or a fresh one when id is unknown
// or expired. created reports whether a new session was made.
func (s *Store) GetOrCreate(id string) (sess *Session, created bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" {
		if sess, ok := s.Get(id); ok {
			return sess, false
		}
	}

	sess = newSession(uuid.NewString(), s.newFinder())
	s.cache.SetDefault(sess.ID, sess)
	return sess, true
}

// Delete drops a session
func (s *Store) Delete(id string) {
	s.cache.Delete(id)
}

// Count returns the number of sessions, including expired ones not yet cleaned up
func (s *Store) Count() int {
	return s.cache.ItemCount()
}
