// Package catalog holds the static reference data: the 78-card
// Rider-Waite-Smith deck and the supported spread layouts. Contents are
// fixed at startup; nothing here mutates after load.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/henryperkins/Tarot-Master/internal/domain"
)

//go:embed data/cards.json
var cardFS embed.FS

// Catalog is a read-only view over the card deck and spread layouts.
type Catalog struct {
	cards   []domain.Card
	byID    map[string]domain.Card
	spreads []domain.Spread
}

// New parses the embedded deck. The data ships inside the binary, so a
// parse failure is a build defect surfaced at startup.
func New() (*Catalog, error) {
	c := &Catalog{spreads: spreads}

	raw, err := cardFS.ReadFile("data/cards.json")
	if err != nil {
		return nil, fmt.Errorf("read embedded cards: %w", err)
	}
	if err := json.Unmarshal(raw, &c.cards); err != nil {
		return nil, fmt.Errorf("parse embedded cards: %w", err)
	}

	c.byID = make(map[string]domain.Card, len(c.cards))
	for _, card := range c.cards {
		c.byID[card.ID] = card
	}
	return c, nil
}

// Cards returns the full deck in catalog order.
func (c *Catalog) Cards() []domain.Card {
	return c.cards
}

// CardByID looks up a card by id. Absence is not an error.
func (c *Catalog) CardByID(id string) (domain.Card, bool) {
	card, ok := c.byID[id]
	return card, ok
}

// ByArcana returns every card of the given arcana class, in catalog order.
func (c *Catalog) ByArcana(a domain.Arcana) []domain.Card {
	var out []domain.Card
	for _, card := range c.cards {
		if card.Arcana == a {
			out = append(out, card)
		}
	}
	return out
}

// BySuit returns every card of the given minor-arcana suit.
func (c *Catalog) BySuit(s domain.Suit) []domain.Card {
	var out []domain.Card
	for _, card := range c.cards {
		if card.Suit == s {
			out = append(out, card)
		}
	}
	return out
}

// RandomCards selects count distinct cards uniformly at random using
// the same shuffle-and-take contract as the draw engine.
func (c *Catalog) RandomCards(rng domain.RNG, count int) ([]domain.Card, error) {
	if count < 1 || count > len(c.cards) {
		return nil, domain.ErrInvalidSpread
	}

	indices := make([]int, len(c.cards))
	for i := range indices {
		indices[i] = i
	}
	for i := len(indices) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		indices[i], indices[j] = indices[j], indices[i]
	}

	out := make([]domain.Card, count)
	for i := range out {
		out[i] = c.cards[indices[i]]
	}
	return out, nil
}

// Spreads returns all spread layouts in display order.
func (c *Catalog) Spreads() []domain.Spread {
	return c.spreads
}

// SpreadByID looks up a spread by id. Callers seeing an unknown id
// should fall back to DefaultSpread rather than fail.
func (c *Catalog) SpreadByID(id string) (domain.Spread, bool) {
	for _, s := range c.spreads {
		if s.ID == id {
			return s, true
		}
	}
	return domain.Spread{}, false
}

// DefaultSpread returns the first catalog entry, the single-card spread.
func (c *Catalog) DefaultSpread() domain.Spread {
	return c.spreads[0]
}
