// Package history keeps the bounded most-recent-first list of translations.
package history

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/valpere/rapidtran/internal"
)

// Capacity is the maximum number of entries kept.
const Capacity = 5

// IDGenerator produces unique history entry identifiers.
type IDGenerator func() string

// NewUUID returns a random UUIDv4 string. It is the default IDGenerator.
func NewUUID() string {
	return uuid.NewString()
}

// NewCounter returns a generator yielding prefix-1, prefix-2, ...
// Useful where ids must be deterministic.
func NewCounter(prefix string) IDGenerator {
	var n atomic.Uint64
	return func() string {
		return fmt.Sprintf("%s-%d", prefix, n.Add(1))
	}
}

// Prepend returns a new list with entry first followed by at most
// capacity-1 of the existing entries. The input slice is not modified.
func Prepend(entries []internal.HistoryEntry, entry internal.HistoryEntry, capacity int) []internal.HistoryEntry {
	if capacity <= 0 {
		capacity = Capacity
	}
	keep := min(len(entries), capacity-1)

	out := make([]internal.HistoryEntry, 0, keep+1)
	out = append(out, entry)
	return append(out, entries[:keep]...)
}
