// Package movegen enumerates every legal placement of a piece on a board.
package movegen

import (
	"github.com/rs/zerolog/log"

	"github.com/domino14/blockbot/board"
	"github.com/domino14/blockbot/equity"
	"github.com/domino14/blockbot/move"
	"github.com/domino14/blockbot/piece"
)

const (
	// SpawnCol and SpawnRow are where every new piece's center appears.
	SpawnCol = 4
	SpawnRow = 18
)

// MoveGenerator is the interface a turn player drives.
type MoveGenerator interface {
	GenAll(b *board.Board, t piece.Type) []*move.Move
	SetPlayRecorder(pr PlayRecorderFunc)
	SetWeights(w equity.Weights)
	Plays() []*move.Move
}

// Generator tries every (column, rotation) pair for a piece. It never
// writes to the board it is given.
type Generator struct {
	weights      equity.Weights
	playRecorder PlayRecorderFunc
	plays        []*move.Move
	// considered counts candidates tried by the last GenAll, legal or not.
	considered int
}

// NewGenerator creates a generator that scores with the given weights and
// records every legal placement.
func NewGenerator(weights equity.Weights) *Generator {
	return &Generator{
		weights:      weights,
		playRecorder: AllPlaysRecorder,
		plays:        make([]*move.Move, 0, board.Width*piece.NumRotations),
	}
}

func (gen *Generator) SetPlayRecorder(pr PlayRecorderFunc) {
	gen.playRecorder = pr
}

func (gen *Generator) SetWeights(w equity.Weights) {
	gen.weights = w
}

func (gen *Generator) Weights() equity.Weights {
	return gen.weights
}

// GenAll generates all legal placements of a piece of type t. Columns are
// the outer loop and rotations the inner loop; recorders see candidates in
// that order.
func (gen *Generator) GenAll(b *board.Board, t piece.Type) []*move.Move {
	gen.plays = gen.plays[:0]
	gen.considered = 0
	for col := 0; col < board.Width; col++ {
		for rot := 0; rot < piece.NumRotations; rot++ {
			gen.considered++
			p := piece.New(t, col, SpawnRow, gen.weights)
			p.RotateTo(rot)
			p.Drop(b)
			if !p.IsOnBoardWithin(board.Width, board.VisibleHeight) {
				continue
			}
			gen.playRecorder(gen, p, p.Score(b))
		}
	}
	log.Debug().Str("piece", t.Name()).Int("considered", gen.considered).
		Int("recorded", len(gen.plays)).Msg("gen-all")
	return gen.plays
}

// Plays returns the plays recorded by the last GenAll.
func (gen *Generator) Plays() []*move.Move {
	return gen.plays
}
