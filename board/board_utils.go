package board

import (
	"errors"
	"fmt"
	"strings"
)

var (
	errTooManyRows  = errors.New("too many rows for the board")
	errRowTooLong   = errors.New("row is wider than the board")
	filledCellRunes = "#1Xx"
)

// ToDisplayText renders the board top-down. The buffer rows are separated
// from the visible playfield by a dashed line.
func (b *Board) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteString("\n   ")
	for x := 0; x < Width; x++ {
		fmt.Fprintf(&sb, "%d ", x)
	}
	sb.WriteString("\n")
	for y := StorageHeight - 1; y >= 0; y-- {
		if y == VisibleHeight-1 {
			sb.WriteString("   " + strings.Repeat("-", Width*2) + "\n")
		}
		fmt.Fprintf(&sb, "%2d|", y)
		for x := 0; x < Width; x++ {
			if b.grid[y][x] == OccupiedCell {
				sb.WriteString("# ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("   " + strings.Repeat("=", Width*2) + "\n")
	return sb.String()
}

// FromRows builds a board from an ASCII picture. Rows are given top-down and
// the last string becomes row 0. Any of '#', '1', 'X' marks an occupied
// cell; every other rune is empty.
func FromRows(rows ...string) (*Board, error) {
	if len(rows) > StorageHeight {
		return nil, fmt.Errorf("%w: got %d", errTooManyRows, len(rows))
	}
	b := NewBoard()
	for i, row := range rows {
		y := len(rows) - 1 - i
		if len([]rune(row)) > Width {
			return nil, fmt.Errorf("%w: row %d is %q", errRowTooLong, y, row)
		}
		for x, r := range []rune(row) {
			if strings.ContainsRune(filledCellRunes, r) {
				b.Set(x, y)
			}
		}
	}
	return b, nil
}

// MustFromRows is FromRows for fixed test boards.
func MustFromRows(rows ...string) *Board {
	b, err := FromRows(rows...)
	if err != nil {
		panic(err)
	}
	return b
}
