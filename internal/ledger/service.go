// Package ledger implements the create/update/delete operations over the
// financial document. Every operation is a read-modify-write of the whole
// document through the local store, serialized by a mutex so interleaved
// callers cannot lose updates.
package ledger

import (
	"strconv"
	"sync"
	"time"

	"github.com/Veraticus/money-mastery/internal/storage"
)

// Service owns mutation of the financial document.
type Service struct {
	mu     sync.Mutex
	store  *storage.Store
	now    func() time.Time
	lastID int64
}

// New creates a ledger service over the given store.
func New(store *storage.Store) *Service {
	return &Service{store: store, now: time.Now}
}

// WithClock overrides the service's time source.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// nextID generates a record id unique within this process: a
// nanosecond-resolution timestamp, bumped past the previous id when two
// creations land on the same tick. Callers must hold s.mu.
func (s *Service) nextID() string {
	id := s.now().UnixNano()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}
