package domain

// Position is one named slot within a spread. X and Y are normalized
// layout coordinates in [0,1], advisory for rendering only.
type Position struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
}

// Spread is an immutable layout definition: how many cards a reading
// uses and what each slot represents. CardCount always equals
// len(Positions) and position IDs are unique within one spread.
type Spread struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CardCount   int        `json:"card_count"`
	Positions   []Position `json:"positions"`
}

// Position returns the position with the given id, if the spread has one.
func (s Spread) Position(id int) (Position, bool) {
	for _, p := range s.Positions {
		if p.ID == id {
			return p, true
		}
	}
	return Position{}, false
}
