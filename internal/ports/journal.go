package ports

import (
	"context"
	"time"
)

// CardRecord is the serialization shape for one drawn card crossing the
// persistence and narrative boundaries.
type CardRecord struct {
	CardID       string `json:"card_id"`
	CardName     string `json:"card_name"`
	PositionID   int    `json:"position_id"`
	PositionName string `json:"position_name"`
	Reversed     bool   `json:"reversed"`
	Meaning      string `json:"meaning"`
}

// ReadingRecord is a completed reading as stored in the journal.
// Narrative is attached once, after completion; Notes and Favorite stay
// user-editable.
type ReadingRecord struct {
	ID        string       `json:"id"`
	SpreadID  string       `json:"spread_id"`
	Question  string       `json:"question,omitempty"`
	Cards     []CardRecord `json:"cards"`
	Narrative string       `json:"narrative,omitempty"`
	Notes     string       `json:"notes,omitempty"`
	Favorite  bool         `json:"favorite"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// EntryUpdate carries the user-editable fields of a journal entry.
// Nil means leave unchanged.
type EntryUpdate struct {
	Notes    *string
	Favorite *bool
}

// ListFilter narrows journal listings.
type ListFilter struct {
	FavoritesOnly bool
}

// JournalStore persists completed readings.
type JournalStore interface {
	SaveReading(ctx context.Context, rec ReadingRecord) error
	GetReading(ctx context.Context, id string) (ReadingRecord, error)
	// ListReadings returns entries newest first.
	ListReadings(ctx context.Context, f ListFilter) ([]ReadingRecord, error)
	// AttachNarrative sets the narrative once; a second attach fails.
	AttachNarrative(ctx context.Context, id, narrative string) error
	UpdateEntry(ctx context.Context, id string, upd EntryUpdate) (ReadingRecord, error)
	DeleteReading(ctx context.Context, id string) error
}
