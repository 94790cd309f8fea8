// Package history keeps the session-scoped journal history: an in-memory,
// append-only log of past analyses. It lives for the process lifetime and is
// never persisted.
package history

import (
	"sync"
	"time"

	"github.com/crimson-sun/mheda/internal/model"
)

// Point is one timeline sample for history charting.
type Point struct {
	Timestamp time.Time `json:"timestamp"`
	Emotion   string    `json:"emotion"`
}

// Log is an append-only ordered sequence of journal entries. Entries are
// immutable once appended. The mutex guards against concurrent HTTP requests;
// there is no cross-session sharing.
type Log struct {
	mu      sync.Mutex
	entries []model.JournalEntry
}

// NewLog creates an empty history log.
func NewLog() *Log {
	return &Log{}
}

// Append records an entry at the end of the log.
func (l *Log) Append(entry model.JournalEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
}

// Len returns the number of recorded entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Entries returns a copy of the log in append (chronological) order.
func (l *Log) Entries() []model.JournalEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]model.JournalEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Counts returns how many entries were recorded per emotion.
func (l *Log) Counts() map[string]int {
	l.mu.Lock()
	defer l.mu.Unlock()
	counts := make(map[string]int, 8)
	for _, e := range l.entries {
		counts[e.Emotion]++
	}
	return counts
}

// Timeline returns one chart point per entry, in chronological order.
func (l *Log) Timeline() []Point {
	l.mu.Lock()
	defer l.mu.Unlock()
	points := make([]Point, len(l.entries))
	for i, e := range l.entries {
		points[i] = Point{Timestamp: e.Timestamp, Emotion: e.Emotion}
	}
	return points
}
