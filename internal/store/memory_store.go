package store

import (
	"sync"

	"github.com/preston-bernstein/nba-props-service/internal/board"
)

// MemoryStore keeps the current board in memory. Replacement is atomic, so
// readers see either the previous board or the new one, never a mix.
type MemoryStore struct {
	mu      sync.RWMutex
	current *board.Board
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Board returns the current board, or false before the first load.
func (s *MemoryStore) Board() (*board.Board, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current, s.current != nil
}

// SetBoard replaces the current board. A nil board is ignored.
func (s *MemoryStore) SetBoard(b *board.Board) {
	if b == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = b
}
