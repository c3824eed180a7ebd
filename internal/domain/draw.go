package domain

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
	// Float64 returns a random float64 in [0.0, 1.0).
	Float64() float64
}

// DefaultReversalChance is the probability that a drawn card lands
// reversed. Product policy, not a structural invariant; override it
// per draw with WithReversalChance.
const DefaultReversalChance = 0.30

// DrawOption tunes draw policy.
type DrawOption func(*drawConfig)

type drawConfig struct {
	reversalChance float64
}

// WithReversalChance overrides the per-card reversal probability.
func WithReversalChance(p float64) DrawOption {
	return func(c *drawConfig) { c.reversalChance = p }
}

// DrawnCard is one slot of a draw: a card fixed to a spread position
// at creation time. Revealed only ever flips false to true.
type DrawnCard struct {
	Card       Card
	PositionID int
	Reversed   bool
	Revealed   bool
}

// Draw is one instantiation of a spread: distinct cards assigned to
// its positions in declared order, tracking reveal progress.
type Draw struct {
	Spread   Spread
	Question string
	Cards    []DrawnCard
}

// NewDraw selects spread.CardCount distinct cards from deck uniformly
// at random and assigns the i-th selected card to the i-th position.
// Each card is independently reversed with the configured probability.
// Reproducible for a seeded rng.
func NewDraw(spread Spread, deck []Card, question string, rng RNG, opts ...DrawOption) (*Draw, error) {
	if spread.CardCount < 1 || spread.CardCount > len(deck) {
		return nil, ErrInvalidSpread
	}

	cfg := drawConfig{reversalChance: DefaultReversalChance}
	for _, opt := range opts {
		opt(&cfg)
	}

	// Fisher-Yates over indices; the first CardCount entries are the
	// selection. Shuffling rather than sampling keeps the no-duplicate
	// invariant structural.
	indices := make([]int, len(deck))
	for i := range indices {
		indices[i] = i
	}
	for i := len(indices) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		indices[i], indices[j] = indices[j], indices[i]
	}

	cards := make([]DrawnCard, spread.CardCount)
	for i := range cards {
		cards[i] = DrawnCard{
			Card:       deck[indices[i]],
			PositionID: spread.Positions[i].ID,
			Reversed:   rng.Float64() < cfg.reversalChance,
		}
	}

	return &Draw{
		Spread:   spread,
		Question: question,
		Cards:    cards,
	}, nil
}

// Reveal marks the card at positionID as revealed. Revealing an
// already-revealed position is a no-op.
func (d *Draw) Reveal(positionID int) error {
	for i := range d.Cards {
		if d.Cards[i].PositionID == positionID {
			d.Cards[i].Revealed = true
			return nil
		}
	}
	return ErrUnknownPosition
}

// RevealAll marks every position as revealed.
func (d *Draw) RevealAll() {
	for i := range d.Cards {
		d.Cards[i].Revealed = true
	}
}

// IsComplete reports whether every position has been revealed.
func (d *Draw) IsComplete() bool {
	for i := range d.Cards {
		if !d.Cards[i].Revealed {
			return false
		}
	}
	return true
}

// RevealedCount returns how many positions have been revealed so far.
func (d *Draw) RevealedCount() int {
	n := 0
	for i := range d.Cards {
		if d.Cards[i].Revealed {
			n++
		}
	}
	return n
}
