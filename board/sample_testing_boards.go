package board

// This file contains some sample filled boards, used solely for testing.

import (
	"fmt"
	"strings"
)

// Position is a string representation of a board, drawn top-down.
type Position string

const (
	// RightWell has nine full columns and a four-deep well at the right
	// edge. A vertical I clears all four rows.
	RightWell Position = `
#########.
#########.
#########.
#########.
`
	// Staircase leaves holes under overhangs for whitespace scoring.
	Staircase Position = `
###.......
#.####....
#..#####..
##.#.#####
`
	// NearlyFull fills everything below the spawn row except one cell in
	// column 0, so only an I fits in the visible playfield.
	NearlyFull Position = `
.#########
.#########
.#########
.#########
.#########
.#########
.#########
.#########
.#########
.#########
.#########
.#########
.#########
.#########
.#########
.#########
.#########
.#########
`
)

// SetToPosition replaces the contents of the board with the given sample
// position and zeroes the line counter.
func (b *Board) SetToPosition(p Position) error {
	lines := strings.Split(strings.Trim(string(p), "\n"), "\n")
	nb, err := FromRows(lines...)
	if err != nil {
		return fmt.Errorf("bad position: %w", err)
	}
	*b = *nb
	return nil
}
