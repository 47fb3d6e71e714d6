package storage

import (
	"database/sql"
	"sync"

	"github.com/go-playground/validator/v10"
)

// validate backs every input check in the schema access layer.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Store is the serialized facade over the gateway's handle. A single mutex
// stands in for the original serial dispatch queue: every exported
// operation acquires it exactly once and everything below it is an
// unexported, non-locking helper, so composite operations can never
// re-enter the serialized section or observe a half-committed write.
type Store struct {
	mu sync.Mutex
	gw *Gateway
}

// NewStore wraps a gateway in the serialized store facade.
func NewStore(gw *Gateway) *Store {
	return &Store{gw: gw}
}

// Open opens the underlying gateway. Idempotent.
func (s *Store) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gw.Open()
}

// Close closes the underlying gateway. Idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gw.Close()
}

// IsOpen reports whether the store handle is open.
func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gw.IsOpen()
}

// conn opens the gateway defensively and hands back the shared handle.
// Callers must hold s.mu.
func (s *Store) conn() (*sql.DB, error) {
	if err := s.gw.Open(); err != nil {
		return nil, err
	}
	return s.gw.conn, nil
}
