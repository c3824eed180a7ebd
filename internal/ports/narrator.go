package ports

import "context"

// NarrateInput holds the structured facts of a completed reading. The
// narrator flattens them into the prompt; this side only supplies data.
type NarrateInput struct {
	SpreadName string
	Question   string
	Cards      []CardRecord
}

// Narrator generates a reading narrative via an LLM.
type Narrator interface {
	Narrate(ctx context.Context, in NarrateInput) (string, error)
}
