package board

import (
	"github.com/cespare/xxhash"
	"github.com/samber/lo"
)

const (
	// Width is the number of columns on the board.
	Width = 10
	// VisibleHeight is the number of rows of the visible playfield. Game-over
	// and placement legality are judged against this height.
	VisibleHeight = 19
	// BufferHeight is the number of hidden rows above the playfield, so that
	// pieces can exist and rotate above it.
	BufferHeight = 6
	// StorageHeight is the physical extent of the grid.
	StorageHeight = VisibleHeight + BufferHeight
)

const (
	EmptyCell    uint8 = 0
	OccupiedCell uint8 = 1
)

// Grid is the raw occupancy grid, indexed [row][column]. Row 0 is the
// bottom of the board.
type Grid [StorageHeight][Width]uint8

// Board is the occupancy grid plus a running count of cleared lines.
type Board struct {
	grid         Grid
	linesCleared int
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	// The grid is an array, so this is a full copy.
	c := *b
	return &c
}

// Grid returns a copy of the occupancy grid. Callers may mutate the copy
// freely.
func (b *Board) Grid() Grid {
	return b.grid
}

// Reset empties the board and zeroes the line counter.
func (b *Board) Reset() {
	b.grid = Grid{}
	b.linesCleared = 0
}

// OnBoard returns true if (x, y) lies inside the storage extent.
func OnBoard(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < StorageHeight
}

// At returns the value of the cell at column x, row y. It panics if the
// coordinates are off the storage board.
func (b *Board) At(x, y int) uint8 {
	return b.grid[y][x]
}

// Occupied returns whether the cell at (x, y) is filled.
func (b *Board) Occupied(x, y int) bool {
	return b.grid[y][x] == OccupiedCell
}

// Set marks the cell at (x, y) as occupied.
func (b *Board) Set(x, y int) {
	b.grid[y][x] = OccupiedCell
}

// RowSum returns the number of occupied cells in row y.
func (b *Board) RowSum(y int) int {
	return rowSum(b.grid[y])
}

func rowSum(row [Width]uint8) int {
	return lo.SumBy(row[:], func(c uint8) int { return int(c) })
}

// LinesCleared returns the total number of lines cleared on this board.
func (b *Board) LinesCleared() int {
	return b.linesCleared
}

// IsEmpty returns true if no cell on the board is occupied.
func (b *Board) IsEmpty() bool {
	for y := 0; y < StorageHeight; y++ {
		if b.RowSum(y) != 0 {
			return false
		}
	}
	return true
}

// HighestOccupiedRow scans from the top of the storage extent and returns the
// first row that contains any occupied cell. An empty board returns 0, as
// does a board whose only occupied row is row 0.
func (b *Board) HighestOccupiedRow() int {
	for y := StorageHeight - 1; y >= 0; y-- {
		for x := 0; x < Width; x++ {
			if b.grid[y][x] != EmptyCell {
				return y
			}
		}
	}
	return 0
}

// ClearLines removes every full row, shifting the rows above it down by one.
// After a clear the same row index is examined again, since the row that
// just moved into it may be full as well. It returns the number of rows
// cleared by this call; the board's running total is updated too.
func (b *Board) ClearLines() int {
	cleared := 0
	for y := 0; y < StorageHeight; y++ {
		sum := b.RowSum(y)
		if sum != Width {
			continue
		}
		for y2 := y + 1; y2 < StorageHeight; y2++ {
			b.grid[y2-1] = b.grid[y2]
		}
		b.grid[StorageHeight-1] = [Width]uint8{}
		cleared++
		y--
	}
	b.linesCleared += cleared
	return cleared
}

// Hash returns a 64-bit fingerprint of the grid contents. Two boards with
// the same occupancy have the same hash regardless of their line counters.
func (b *Board) Hash() uint64 {
	buf := make([]byte, 0, StorageHeight*Width)
	for y := range b.grid {
		buf = append(buf, b.grid[y][:]...)
	}
	return xxhash.Sum64(buf)
}

// Equals compares grid contents only.
func (b *Board) Equals(other *Board) bool {
	return b.grid == other.grid
}
