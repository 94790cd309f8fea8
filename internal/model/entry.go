package model

import (
	"time"

	"github.com/google/uuid"
)

// JournalEntry is one recorded analysis in the session history.
// Entries are immutable after creation.
type JournalEntry struct {
	ID        uuid.UUID `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Text      string    `json:"text"`
	Emotion   string    `json:"emotion"`
}
