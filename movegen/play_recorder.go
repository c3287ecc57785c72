package movegen

import (
	"github.com/domino14/blockbot/move"
	"github.com/domino14/blockbot/piece"
)

// PlayRecorderFunc receives each legal, already-dropped candidate piece and
// its raw score.
type PlayRecorderFunc func(gen *Generator, p *piece.Piece, score float64)

func NullPlayRecorder(gen *Generator, p *piece.Piece, score float64) {}

// AllPlaysRecorder keeps every candidate in generation order.
func AllPlaysRecorder(gen *Generator, p *piece.Piece, score float64) {
	gen.plays = append(gen.plays, toMove(p, score))
}

// TopPlayOnlyRecorder keeps a single play, the best seen so far. A later
// candidate with equal equity replaces the earlier one.
func TopPlayOnlyRecorder(gen *Generator, p *piece.Piece, score float64) {
	m := toMove(p, score)
	if len(gen.plays) == 0 {
		gen.plays = append(gen.plays, m)
		return
	}
	if m.Equity() >= gen.plays[0].Equity() {
		gen.plays[0] = m
	}
}

func toMove(p *piece.Piece, score float64) *move.Move {
	return move.NewMove(p.Type(), p.Col(), p.Rotation(), p.Row(), score)
}
