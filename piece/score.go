package piece

import (
	"github.com/domino14/blockbot/board"
)

const (
	floorContact = 0.9
	wallContact  = 0.5
)

// Score is the heuristic value of the piece at its current position, which
// should already be dropped and on the board:
//
//	c0*height - c1*whitespace + c2*neighbors + c3*tetrises
//
// The board is only read.
func (p *Piece) Score(b *board.Board) float64 {
	return p.weights.Combine(p.HeightScore(b), p.Whitespace(b), p.NeighborScore(b), p.TetrisCount(b))
}

// HeightScore is how far below the top of the stack the piece's center
// sits. It is 0 on an empty board and never negative.
func (p *Piece) HeightScore(b *board.Board) int {
	h := b.HighestOccupiedRow() - p.center.Y
	if h < 0 {
		return 0
	}
	return h
}

// Whitespace counts the empty cells under the piece. Only the lowest piece
// cell of each column is considered. From there the scan goes down and
// stops at the first occupied board cell or the floor.
func (p *Piece) Whitespace(b *board.Board) int {
	cells := p.Cells()
	count := 0
	for i, c := range cells {
		if !lowestInColumn(cells, i) {
			continue
		}
		for y := c.Y - 1; y >= 0; y-- {
			if b.Occupied(c.X, y) {
				break
			}
			count++
		}
	}
	return count
}

func lowestInColumn(cells [NumCells]Point, i int) bool {
	for j, other := range cells {
		if j != i && other.X == cells[i].X && other.Y < cells[i].Y {
			return false
		}
	}
	return true
}

// NeighborScore sums the contact value to the right of, to the left of and
// below every cell of the piece.
func (p *Piece) NeighborScore(b *board.Board) float64 {
	var total float64
	for _, c := range p.Cells() {
		total += contact(b, c.X+1, c.Y)
		total += contact(b, c.X-1, c.Y)
		total += contact(b, c.X, c.Y-1)
	}
	return total
}

// contact is the board value at (x, y) when that is on the board, and a
// fixed credit for touching the floor or a side wall.
func contact(b *board.Board, x, y int) float64 {
	switch {
	case board.OnBoard(x, y):
		return float64(b.At(x, y))
	case y == -1:
		return floorContact
	case x == -1 || x == board.Width:
		return wallContact
	}
	return 0
}

// TetrisCount returns how many rows would be complete with the piece's cells
// added. The count works on a scratch copy of the grid. A row's cells are
// summed left to right until the first gap, so only an unbroken row can
// reach the full width.
func (p *Piece) TetrisCount(b *board.Board) int {
	grid := b.Grid()
	for _, c := range p.Cells() {
		grid[c.Y][c.X] = board.OccupiedCell
	}
	n := 0
	for y := range grid {
		sum := 0
		for x := 0; x < board.Width; x++ {
			if grid[y][x] == board.EmptyCell {
				break
			}
			sum += int(grid[y][x])
		}
		if sum == board.Width {
			n++
		}
	}
	return n
}
