package move

import (
	"fmt"

	"github.com/domino14/blockbot/piece"
)

// Move is a candidate placement: where a piece of some type would come to
// rest if it were rotated, moved to a column and dropped. It only exists
// during a single search.
type Move struct {
	typ        piece.Type
	column     int
	rotation   int
	landingRow int
	score      float64
	equity     float64
}

// Result is what an input driver needs to carry out a move: how many
// columns to shift left from the spawn column (negative means right) and how
// many quarter turns to apply.
type Result struct {
	Displacement int
	Rotation     int
}

func (r Result) String() string {
	return fmt.Sprintf("displacement %d, rotation %d", r.Displacement, r.Rotation)
}

// NewMove creates a candidate. Its equity is the raw score minus the row it
// lands on, so that lower landings are preferred.
func NewMove(t piece.Type, column, rotation, landingRow int, score float64) *Move {
	return &Move{
		typ:        t,
		column:     column,
		rotation:   rotation,
		landingRow: landingRow,
		score:      score,
		equity:     score - float64(landingRow),
	}
}

func (m *Move) PieceType() piece.Type { return m.typ }
func (m *Move) Column() int           { return m.column }
func (m *Move) Rotation() int         { return m.rotation }
func (m *Move) LandingRow() int       { return m.landingRow }

// Score is the raw heuristic score of the landed piece.
func (m *Move) Score() float64 {
	return m.score
}

// Equity is the adjusted score moves are ranked by.
func (m *Move) Equity() float64 {
	return m.equity
}

// Result converts the move into displacement and rotation counts relative
// to a piece spawned at spawnCol.
func (m *Move) Result(spawnCol int) Result {
	return Result{Displacement: spawnCol - m.column, Rotation: m.rotation}
}

// Equals compares placements, ignoring scores.
func (m *Move) Equals(o *Move) bool {
	return m.typ == o.typ && m.column == o.column && m.rotation == o.rotation &&
		m.landingRow == o.landingRow
}

// String provides a string just for debugging purposes.
func (m *Move) String() string {
	return fmt.Sprintf("<%p piece: %v col: %d rot: %d row: %d score: %.3f equity: %.3f>",
		m, m.typ.Name(), m.column, m.rotation, m.landingRow, m.score, m.equity)
}

// ShortDescription provides a short description, useful for logging or
// user display.
func (m *Move) ShortDescription() string {
	return fmt.Sprintf("%s c%d r%d", m.typ.Name(), m.column, m.rotation)
}
