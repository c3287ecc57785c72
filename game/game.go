// Package game holds the state of a single falling-block game: the board,
// the active piece, and whether any placement is still possible. A Game
// doesn't decide where pieces go; AI players and the shell drive it from
// outside this package.
package game

import (
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/blockbot/board"
	"github.com/domino14/blockbot/equity"
	"github.com/domino14/blockbot/movegen"
	"github.com/domino14/blockbot/piece"
)

type PlayState uint8

const (
	PlayStatePlaying PlayState = iota
	PlayStateGameOver
)

func (s PlayState) String() string {
	if s == PlayStateGameOver {
		return "game over"
	}
	return "playing"
}

var (
	ErrNoActivePiece = errors.New("no active piece")
	ErrGameOver      = errors.New("game is over")
)

const uidLength = 10

type Game struct {
	uid     string
	board   *board.Board
	current *piece.Piece
	weights equity.Weights
	playing PlayState
	// turnnum counts pieces committed to the board.
	turnnum int
	// lastCleared is the number of rows removed by the last ClearLines.
	lastCleared int
}

// NewGame creates a game on an empty board. Pieces added to it are scored
// with the given weights.
func NewGame(weights equity.Weights) *Game {
	return &Game{
		uid:     lo.RandomString(uidLength, lo.AlphanumericCharset),
		board:   board.NewBoard(),
		weights: weights,
	}
}

// NewFromBoard starts a game on a copy of an existing board.
func NewFromBoard(b *board.Board, weights equity.Weights) *Game {
	g := NewGame(weights)
	g.board = b.Clone()
	return g
}

// StartGame empties the board and resets the game for another round.
func (g *Game) StartGame() {
	g.board.Reset()
	g.current = nil
	g.playing = PlayStatePlaying
	g.turnnum = 0
	g.lastCleared = 0
	g.uid = lo.RandomString(uidLength, lo.AlphanumericCharset)
}

// AddPiece makes a new piece of type t the active piece, at the spawn
// position in rotation state 0.
func (g *Game) AddPiece(t piece.Type) *piece.Piece {
	g.current = piece.New(t, movegen.SpawnCol, movegen.SpawnRow, g.weights)
	log.Debug().Str("gid", g.uid).Str("piece", t.Name()).Msg("add-piece")
	return g.current
}

// Left and Right shift the active piece one column when it fits.
func (g *Game) Left() {
	if g.current != nil {
		g.current.TranslateLeft()
	}
}

func (g *Game) Right() {
	if g.current != nil {
		g.current.TranslateRight()
	}
}

func (g *Game) Rotate() {
	if g.current != nil {
		g.current.Rotate()
	}
}

func (g *Game) RotateBy(n int) {
	if g.current != nil {
		g.current.RotateBy(n)
	}
}

// PlacePiece moves the active piece to the given column and rotation
// state, drops it, and writes its cells into the board. The placement is
// not validated here; callers pass a placement that movegen produced.
func (g *Game) PlacePiece(col, rotation int) error {
	if g.playing == PlayStateGameOver {
		return ErrGameOver
	}
	if g.current == nil {
		return ErrNoActivePiece
	}
	g.current.RotateTo(rotation)
	g.current.SetCenter(col, g.current.Row())
	g.current.Commit(g.board)
	g.turnnum++
	log.Debug().Str("gid", g.uid).Int("col", col).Int("rot", rotation).
		Int("row", g.current.Row()).Msg("placed")
	g.current = nil
	return nil
}

// ClearLines removes complete rows from the board.
func (g *Game) ClearLines() int {
	g.lastCleared = g.board.ClearLines()
	return g.lastCleared
}

// SetGameOver marks the game as finished. It is called when the active
// piece has no legal placement; that piece is discarded.
func (g *Game) SetGameOver() {
	g.playing = PlayStateGameOver
	g.current = nil
	log.Debug().Str("gid", g.uid).Int("turn", g.turnnum).Msg("game-over")
}

func (g *Game) Playing() bool               { return g.playing == PlayStatePlaying }
func (g *Game) PlayState() PlayState        { return g.playing }
func (g *Game) Board() *board.Board         { return g.board }
func (g *Game) CurrentPiece() *piece.Piece  { return g.current }
func (g *Game) Weights() equity.Weights     { return g.weights }
func (g *Game) Turn() int                   { return g.turnnum }
func (g *Game) Uid() string                 { return g.uid }
func (g *Game) LinesCleared() int           { return g.board.LinesCleared() }
func (g *Game) LastCleared() int            { return g.lastCleared }
func (g *Game) SetWeights(w equity.Weights) { g.weights = w }
