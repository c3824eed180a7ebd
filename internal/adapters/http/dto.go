package http

import (
	"time"

	"github.com/henryperkins/Tarot-Master/internal/app"
	"github.com/henryperkins/Tarot-Master/internal/domain"
)

// StartReadingRequest is the JSON body of POST /v1/readings.
type StartReadingRequest struct {
	SpreadID string `json:"spread_id"`
	Question string `json:"question"`
}

// RevealRequest is the JSON body of POST /v1/readings/:id/reveal.
type RevealRequest struct {
	PositionID int `json:"position_id"`
}

// UpdateEntryRequest carries journal edits; absent fields stay unchanged.
type UpdateEntryRequest struct {
	Notes    *string `json:"notes"`
	Favorite *bool   `json:"favorite"`
}

// DrawnCardResponse is one slot of an in-progress reading. Card fields
// stay hidden until the position is revealed.
type DrawnCardResponse struct {
	PositionID   int      `json:"position_id"`
	PositionName string   `json:"position_name"`
	X            float64  `json:"x"`
	Y            float64  `json:"y"`
	Revealed     bool     `json:"revealed"`
	CardID       string   `json:"card_id,omitempty"`
	CardName     string   `json:"card_name,omitempty"`
	Reversed     *bool    `json:"reversed,omitempty"`
	Keywords     []string `json:"keywords,omitempty"`
	Meaning      string   `json:"meaning,omitempty"`
}

// ReadingResponse is the state of one reading session.
type ReadingResponse struct {
	ID            string              `json:"id"`
	SpreadID      string              `json:"spread_id"`
	SpreadName    string              `json:"spread_name"`
	Question      string              `json:"question,omitempty"`
	Cards         []DrawnCardResponse `json:"cards"`
	RevealedCount int                 `json:"revealed_count"`
	CardCount     int                 `json:"card_count"`
	Complete      bool                `json:"complete"`
	CreatedAt     time.Time           `json:"created_at"`
}

// NarrativeResponse is the JSON shape of POST /v1/readings/:id/narrative.
type NarrativeResponse struct {
	Narrative string `json:"narrative"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func toReadingResponse(session *app.Session) ReadingResponse {
	draw := session.Draw
	cards := make([]DrawnCardResponse, len(draw.Cards))
	for i, dc := range draw.Cards {
		pos, _ := draw.Spread.Position(dc.PositionID)
		cards[i] = DrawnCardResponse{
			PositionID:   dc.PositionID,
			PositionName: pos.Name,
			X:            pos.X,
			Y:            pos.Y,
			Revealed:     dc.Revealed,
		}
		if dc.Revealed {
			reversed := dc.Reversed
			cards[i].CardID = dc.Card.ID
			cards[i].CardName = dc.Card.Name
			cards[i].Reversed = &reversed
			cards[i].Keywords = dc.Card.Keywords
			cards[i].Meaning = dc.Card.Meaning(dc.Reversed)
		}
	}

	return ReadingResponse{
		ID:            session.ID,
		SpreadID:      draw.Spread.ID,
		SpreadName:    draw.Spread.Name,
		Question:      draw.Question,
		Cards:         cards,
		RevealedCount: draw.RevealedCount(),
		CardCount:     draw.Spread.CardCount,
		Complete:      draw.IsComplete(),
		CreatedAt:     session.CreatedAt,
	}
}

// cardSummary trims a catalog card for list responses.
type cardSummary struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Arcana   domain.Arcana `json:"arcana"`
	Suit     domain.Suit   `json:"suit,omitempty"`
	Number   int           `json:"number"`
	Keywords []string      `json:"keywords"`
}

func toCardSummaries(cards []domain.Card) []cardSummary {
	out := make([]cardSummary, len(cards))
	for i, c := range cards {
		out[i] = cardSummary{
			ID:       c.ID,
			Name:     c.Name,
			Arcana:   c.Arcana,
			Suit:     c.Suit,
			Number:   c.Number,
			Keywords: c.Keywords,
		}
	}
	return out
}
