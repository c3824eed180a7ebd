package domain

// Arcana is the card class: major or minor.
type Arcana string

const (
	ArcanaMajor Arcana = "major"
	ArcanaMinor Arcana = "minor"
)

// Suit of a minor-arcana card. Major-arcana cards have no suit.
type Suit string

const (
	SuitWands     Suit = "wands"
	SuitCups      Suit = "cups"
	SuitSwords    Suit = "swords"
	SuitPentacles Suit = "pentacles"
)

// Suits lists the four minor-arcana suits in display order.
var Suits = []Suit{SuitWands, SuitCups, SuitSwords, SuitPentacles}

// Card is one immutable entry of the 78-card catalog.
type Card struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Arcana    Arcana   `json:"arcana"`
	Suit      Suit     `json:"suit,omitempty"`
	Number    int      `json:"number"`
	Keywords  []string `json:"keywords"`
	Upright   string   `json:"upright"`
	Reversed  string   `json:"reversed"`
	Element   string   `json:"element,omitempty"`
	Astrology string   `json:"astrology,omitempty"`
}

// Meaning returns the interpretation text for the given orientation.
func (c Card) Meaning(reversed bool) string {
	if reversed {
		return c.Reversed
	}
	return c.Upright
}
