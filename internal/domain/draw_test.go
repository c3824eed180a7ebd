package domain_test

import (
	"math/rand"
	"testing"

	"github.com/henryperkins/Tarot-Master/internal/domain"
)

// scriptedRNG returns values from pre-set sequences.
type scriptedRNG struct {
	ints     []int
	floats   []float64
	intIdx   int
	floatIdx int
}

func (r *scriptedRNG) Intn(n int) int {
	v := r.ints[r.intIdx%len(r.ints)] % n
	r.intIdx++
	return v
}

func (r *scriptedRNG) Float64() float64 {
	v := r.floats[r.floatIdx%len(r.floats)]
	r.floatIdx++
	return v
}

func testDeck(n int) []domain.Card {
	cards := make([]domain.Card, n)
	for i := range n {
		cards[i] = domain.Card{
			ID:       "card-" + string(rune('a'+i%26)) + string(rune('a'+i/26)),
			Name:     "Card " + string(rune('A'+i%26)),
			Arcana:   domain.ArcanaMajor,
			Keywords: []string{"kw1", "kw2"},
			Upright:  "Upright meaning.",
			Reversed: "Reversed meaning.",
		}
	}
	return cards
}

func threeCardSpread() domain.Spread {
	return domain.Spread{
		ID:        "three-card",
		Name:      "Past, Present, Future",
		CardCount: 3,
		Positions: []domain.Position{
			{ID: 1, Name: "Past", X: 0.2, Y: 0.5},
			{ID: 2, Name: "Present", X: 0.5, Y: 0.5},
			{ID: 3, Name: "Future", X: 0.8, Y: 0.5},
		},
	}
}

func TestNewDraw_DistinctCards(t *testing.T) {
	deck := testDeck(78)
	rng := rand.New(rand.NewSource(42))

	for _, n := range []int{1, 3, 5, 10} {
		spread := domain.Spread{ID: "s", CardCount: n}
		for i := range n {
			spread.Positions = append(spread.Positions, domain.Position{ID: i + 1})
		}

		draw, err := domain.NewDraw(spread, deck, "", rng)
		if err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}
		if len(draw.Cards) != n {
			t.Fatalf("n=%d: expected %d cards, got %d", n, n, len(draw.Cards))
		}

		seen := make(map[string]bool)
		for _, c := range draw.Cards {
			if seen[c.Card.ID] {
				t.Errorf("n=%d: duplicate card ID %s", n, c.Card.ID)
			}
			seen[c.Card.ID] = true
		}
	}
}

func TestNewDraw_PositionBijection(t *testing.T) {
	deck := testDeck(78)
	spread := threeCardSpread()
	rng := rand.New(rand.NewSource(7))

	draw, err := domain.NewDraw(spread, deck, "", rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := make(map[int]int)
	for _, c := range draw.Cards {
		seen[c.PositionID]++
	}
	for _, p := range spread.Positions {
		if seen[p.ID] != 1 {
			t.Errorf("position %d occupied %d times, want 1", p.ID, seen[p.ID])
		}
	}
	// Draw order follows declared position order.
	for i, c := range draw.Cards {
		if c.PositionID != spread.Positions[i].ID {
			t.Errorf("card %d: position %d, want %d", i, c.PositionID, spread.Positions[i].ID)
		}
	}
}

func TestNewDraw_ReversalFromScriptedRNG(t *testing.T) {
	deck := testDeck(5)
	spread := threeCardSpread()
	rng := &scriptedRNG{
		ints:   []int{0, 0, 0, 0}, // shuffle swaps keep original order
		floats: []float64{0.9, 0.1, 0.5},
	}

	draw, err := domain.NewDraw(spread, deck, "", rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 0.30 threshold: 0.9 upright, 0.1 reversed, 0.5 upright.
	expected := []bool{false, true, false}
	for i, c := range draw.Cards {
		if c.Reversed != expected[i] {
			t.Errorf("card %d: reversed=%v, want %v", i, c.Reversed, expected[i])
		}
		if c.Revealed {
			t.Errorf("card %d: revealed at creation", i)
		}
	}
}

func TestNewDraw_ReversalChanceOverride(t *testing.T) {
	deck := testDeck(5)
	spread := threeCardSpread()
	rng := &scriptedRNG{
		ints:   []int{0},
		floats: []float64{0.9, 0.1, 0.5},
	}

	draw, err := domain.NewDraw(spread, deck, "", rng, domain.WithReversalChance(1.0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, c := range draw.Cards {
		if !c.Reversed {
			t.Errorf("card %d: expected reversed with chance 1.0", i)
		}
	}
}

func TestNewDraw_ReversalFraction(t *testing.T) {
	deck := testDeck(78)
	spread := domain.Spread{
		ID:        "single",
		CardCount: 1,
		Positions: []domain.Position{{ID: 1, Name: "The Message"}},
	}
	rng := rand.New(rand.NewSource(1))

	const draws = 10000
	reversed := 0
	for range draws {
		draw, err := domain.NewDraw(spread, deck, "", rng)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if draw.Cards[0].Reversed {
			reversed++
		}
	}

	frac := float64(reversed) / draws
	if frac < 0.27 || frac > 0.33 {
		t.Errorf("reversed fraction %.4f outside [0.27, 0.33]", frac)
	}
}

func TestNewDraw_Deterministic(t *testing.T) {
	deck := testDeck(78)
	spread := threeCardSpread()

	a, err := domain.NewDraw(spread, deck, "q", rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := domain.NewDraw(spread, deck, "q", rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range a.Cards {
		if a.Cards[i].Card.ID != b.Cards[i].Card.ID ||
			a.Cards[i].Reversed != b.Cards[i].Reversed ||
			a.Cards[i].PositionID != b.Cards[i].PositionID {
			t.Errorf("card %d differs between identically seeded draws", i)
		}
	}
}

func TestNewDraw_InvalidSpread(t *testing.T) {
	deck := testDeck(78)
	rng := rand.New(rand.NewSource(3))

	for _, n := range []int{0, -1, 200} {
		spread := domain.Spread{ID: "bad", CardCount: n}
		_, err := domain.NewDraw(spread, deck, "", rng)
		if err != domain.ErrInvalidSpread {
			t.Errorf("cardCount=%d: expected ErrInvalidSpread, got %v", n, err)
		}
	}
}

func TestReveal_Idempotent(t *testing.T) {
	deck := testDeck(10)
	draw, err := domain.NewDraw(threeCardSpread(), deck, "", rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := draw.Reveal(2); err != nil {
		t.Fatalf("first reveal: %v", err)
	}
	if err := draw.Reveal(2); err != nil {
		t.Fatalf("second reveal: %v", err)
	}
	if got := draw.RevealedCount(); got != 1 {
		t.Errorf("revealed count %d, want 1", got)
	}
}

func TestReveal_UnknownPosition(t *testing.T) {
	deck := testDeck(10)
	draw, err := domain.NewDraw(threeCardSpread(), deck, "", rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := draw.Reveal(999); err != domain.ErrUnknownPosition {
		t.Fatalf("expected ErrUnknownPosition, got %v", err)
	}
	if got := draw.RevealedCount(); got != 0 {
		t.Errorf("failed reveal mutated state: %d positions revealed", got)
	}
}

func TestIsComplete(t *testing.T) {
	deck := testDeck(10)
	draw, err := domain.NewDraw(threeCardSpread(), deck, "", rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if draw.IsComplete() {
		t.Fatal("complete before any reveal")
	}
	for _, p := range []int{1, 2} {
		if err := draw.Reveal(p); err != nil {
			t.Fatalf("reveal %d: %v", p, err)
		}
		if draw.IsComplete() {
			t.Fatalf("complete after revealing only position %d", p)
		}
	}
	if err := draw.Reveal(3); err != nil {
		t.Fatalf("reveal 3: %v", err)
	}
	if !draw.IsComplete() {
		t.Fatal("not complete after revealing every position")
	}
}

func TestRevealAll(t *testing.T) {
	deck := testDeck(10)
	draw, err := domain.NewDraw(threeCardSpread(), deck, "", rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	draw.RevealAll()
	if !draw.IsComplete() {
		t.Fatal("not complete after RevealAll")
	}
}
