package movegen

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/blockbot/board"
	"github.com/domino14/blockbot/equity"
	"github.com/domino14/blockbot/piece"
)

func TestGenAllSquareEmptyBoard(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard()
	gen := NewGenerator(equity.DefaultWeights)
	plays := gen.GenAll(b, piece.TypeO)
	// The square fits in columns 0 through 8, in all four rotation states.
	is.Equal(len(plays), 9*4)
	is.Equal(gen.considered, board.Width*piece.NumRotations)
	for _, p := range plays {
		is.Equal(p.LandingRow(), 0)
	}
	is.True(b.IsEmpty())
}

func TestGenAllLineEmptyBoard(t *testing.T) {
	is := is.New(t)
	gen := NewGenerator(equity.DefaultWeights)
	plays := gen.GenAll(board.NewBoard(), piece.TypeI)
	is.Equal(len(plays), 7+9+7+10)
}

func TestGenAllOrder(t *testing.T) {
	is := is.New(t)
	gen := NewGenerator(equity.DefaultWeights)
	plays := gen.GenAll(board.NewBoard(), piece.TypeT)
	for i := 1; i < len(plays); i++ {
		prev, cur := plays[i-1], plays[i]
		rankPrev := prev.Column()*piece.NumRotations + prev.Rotation()
		rankCur := cur.Column()*piece.NumRotations + cur.Rotation()
		is.True(rankPrev < rankCur)
	}
}

func TestGenAllRejectsAboveVisibleRows(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard()
	for y := 0; y < board.VisibleHeight-1; y++ {
		for x := 0; x < board.Width; x++ {
			b.Set(x, y)
		}
	}
	before := b.Hash()
	gen := NewGenerator(equity.DefaultWeights)

	is.Equal(len(gen.GenAll(b, piece.TypeO)), 0)
	// A flat line still fits in the last visible row.
	plays := gen.GenAll(b, piece.TypeI)
	is.Equal(len(plays), 7+7)
	for _, p := range plays {
		is.Equal(p.Rotation()%2, 0)
	}
	is.Equal(b.Hash(), before)
}

func TestTopPlayOnlyRecorderKeepsLastTie(t *testing.T) {
	is := is.New(t)
	gen := NewGenerator(equity.DefaultWeights)
	gen.SetPlayRecorder(TopPlayOnlyRecorder)
	// Both corner columns score the same and every rotation of the square
	// is the same shape, so the last corner in its last rotation is kept.
	plays := gen.GenAll(board.NewBoard(), piece.TypeO)
	is.Equal(len(plays), 1)
	is.Equal(plays[0].Column(), 8)
	is.Equal(plays[0].Rotation(), 3)
}

func TestNullPlayRecorder(t *testing.T) {
	is := is.New(t)
	gen := NewGenerator(equity.DefaultWeights)
	gen.SetPlayRecorder(NullPlayRecorder)
	is.Equal(len(gen.GenAll(board.NewBoard(), piece.TypeZ)), 0)
}

func TestGenAllFindsNarrowWell(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard()
	is.NoErr(b.SetToPosition(board.NearlyFull))
	gen := NewGenerator(equity.DefaultWeights)

	for _, typ := range []piece.Type{piece.TypeO, piece.TypeT, piece.TypeS, piece.TypeZ} {
		is.Equal(len(gen.GenAll(b, typ)), 0)
	}
	vertical := 0
	for _, p := range gen.GenAll(b, piece.TypeI) {
		if p.Rotation()%2 == 1 {
			is.True(p.LandingRow() < 4)
			vertical++
		}
	}
	is.True(vertical > 0)
}

func TestRecorderGetsFreshPieces(t *testing.T) {
	is := is.New(t)
	gen := NewGenerator(equity.DefaultWeights)
	seen := map[*piece.Piece]bool{}
	gen.SetPlayRecorder(func(g *Generator, p *piece.Piece, score float64) {
		seen[p] = true
		AllPlaysRecorder(g, p, score)
	})
	plays := gen.GenAll(board.NewBoard(), piece.TypeT)
	is.True(len(plays) > 0)
	is.Equal(len(seen), len(plays))
}
