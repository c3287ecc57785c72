// Package piece holds the geometry of the seven falling-block shapes and an
// active piece that can be moved, rotated, dropped, and scored against a
// board.
package piece

import (
	"fmt"

	"github.com/domino14/blockbot/board"
	"github.com/domino14/blockbot/equity"
)

// Point is an absolute board position: column X, row Y.
type Point struct {
	X, Y int
}

// Piece is an active piece. Its cell offsets are never stored; they are
// always looked up from the shape table by type and rotation.
type Piece struct {
	typ      Type
	center   Point
	rotation int
	weights  equity.Weights
}

// New creates a piece of type t centered at (col, row) in rotation state 0.
func New(t Type, col, row int, weights equity.Weights) *Piece {
	return &Piece{
		typ:     t,
		center:  Point{col, row},
		weights: weights,
	}
}

func (p *Piece) Type() Type                { return p.typ }
func (p *Piece) Center() Point             { return p.center }
func (p *Piece) Col() int                  { return p.center.X }
func (p *Piece) Row() int                  { return p.center.Y }
func (p *Piece) Rotation() int             { return p.rotation }
func (p *Piece) Weights() equity.Weights   { return p.weights }
func (p *Piece) Offsets() [NumCells]Offset { return shapes[p.typ][p.rotation] }

// SetCenter moves the piece without any legality check.
func (p *Piece) SetCenter(col, row int) {
	p.center = Point{col, row}
}

// Copy returns an independent copy of the piece.
func (p *Piece) Copy() *Piece {
	c := *p
	return &c
}

// Cells returns the absolute positions of the piece's four cells.
func (p *Piece) Cells() [NumCells]Point {
	return cellsAt(p.typ, p.rotation, p.center.X, p.center.Y)
}

func cellsAt(t Type, rotation, col, row int) [NumCells]Point {
	var pts [NumCells]Point
	for i, o := range shapes[t][rotation] {
		pts[i] = Point{col + o.DX, row + o.DY}
	}
	return pts
}

// withinAt reports whether all cells would lie in [0,w) x [0,h) if the
// center were at (col, row). It does not touch the piece.
func (p *Piece) withinAt(col, row, w, h int) bool {
	for _, o := range shapes[p.typ][p.rotation] {
		x, y := col+o.DX, row+o.DY
		if x < 0 || x >= w || y < 0 || y >= h {
			return false
		}
	}
	return true
}

// IsOnBoard checks the piece against the full storage extent, buffer rows
// included.
func (p *Piece) IsOnBoard() bool {
	return p.IsOnBoardWithin(board.Width, board.StorageHeight)
}

// IsOnBoardWithin checks the piece against an explicit width and height.
// Placement legality uses the visible height here.
func (p *Piece) IsOnBoardWithin(w, h int) bool {
	return p.withinAt(p.center.X, p.center.Y, w, h)
}

func (p *Piece) CanMoveLeft() bool {
	return p.withinAt(p.center.X-1, p.center.Y, board.Width, board.StorageHeight)
}

func (p *Piece) CanMoveRight() bool {
	return p.withinAt(p.center.X+1, p.center.Y, board.Width, board.StorageHeight)
}

func (p *Piece) TranslateLeft() {
	if p.CanMoveLeft() {
		p.center.X--
	}
}

func (p *Piece) TranslateRight() {
	if p.CanMoveRight() {
		p.center.X++
	}
}

// Rotate turns the piece one quarter turn clockwise. Rotation never checks
// legality.
func (p *Piece) Rotate() {
	p.RotateBy(1)
}

// RotateBy turns the piece n quarter turns clockwise; negative n turns it
// counterclockwise.
func (p *Piece) RotateBy(n int) {
	p.rotation = normalizeRotation(p.rotation + n)
}

// RotateTo sets the absolute rotation state, modulo 4.
func (p *Piece) RotateTo(r int) {
	p.rotation = normalizeRotation(r)
}

// fitsOn reports whether the piece, with its center at row, lies on the
// storage board without overlapping an occupied cell.
func (p *Piece) fitsOn(b *board.Board, row int) bool {
	for _, o := range shapes[p.typ][p.rotation] {
		x, y := p.center.X+o.DX, row+o.DY
		if !board.OnBoard(x, y) || b.Occupied(x, y) {
			return false
		}
	}
	return true
}

// Drop moves the piece straight down for as long as it stays on the board
// without colliding, then backs off the first step that failed. Only the
// piece's position changes; the board is not written.
//
// If the piece does not fit where it starts it ends up one row above its
// start. Such a position is never legal on the visible board.
func (p *Piece) Drop(b *board.Board) {
	row := p.center.Y
	for p.fitsOn(b, row) {
		row--
	}
	p.center.Y = row + 1
}

// Commit drops the piece and writes its cells into the board.
func (p *Piece) Commit(b *board.Board) {
	p.Drop(b)
	for _, c := range p.Cells() {
		b.Set(c.X, c.Y)
	}
}

func (p *Piece) String() string {
	return fmt.Sprintf("<piece %v center: (%d,%d) rot: %d>", p.typ, p.center.X, p.center.Y, p.rotation)
}
