package game

import (
	"fmt"
	"strings"

	"github.com/domino14/blockbot/board"
)

func addText(lines []string, row int, hpad int, text string) {
	if row >= len(lines) {
		return
	}
	lines[row] = lines[row] + strings.Repeat(" ", hpad) + text
}

// ToDisplayText renders the board, with the active piece drawn in if there
// is one, and a few lines of game state to its right.
func (g *Game) ToDisplayText() string {
	b := g.board
	if g.current != nil {
		b = g.board.Clone()
		for _, c := range g.current.Cells() {
			if board.OnBoard(c.X, c.Y) {
				b.Set(c.X, c.Y)
			}
		}
	}
	bts := strings.Split(b.ToDisplayText(), "\n")
	hpadding := 3
	vpadding := 2

	addText(bts, vpadding, hpadding, fmt.Sprintf("Game %s", g.uid))
	addText(bts, vpadding+1, hpadding, fmt.Sprintf("Pieces placed: %d", g.turnnum))
	addText(bts, vpadding+2, hpadding, fmt.Sprintf("Lines cleared: %d", g.board.LinesCleared()))
	addText(bts, vpadding+3, hpadding, fmt.Sprintf("Weights: %s", g.weights))
	if g.current != nil {
		addText(bts, vpadding+5, hpadding, fmt.Sprintf("Active: %s, rotation %d, column %d",
			g.current.Type().DisplayName(), g.current.Rotation(), g.current.Col()))
	}
	if g.playing == PlayStateGameOver {
		addText(bts, vpadding+7, hpadding, "Game is over.")
	}
	return strings.Join(bts, "\n")
}
