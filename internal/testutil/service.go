package testutil

import (
	"time"

	"github.com/preston-bernstein/nba-props-service/internal/store"
)

// NewLoadedStore returns a memory store already holding SampleBoard(now).
func NewLoadedStore(now time.Time) *store.MemoryStore {
	ms := store.NewMemoryStore()
	ms.SetBoard(SampleBoard(now))
	return ms
}
