package turnplayer

import (
	"testing"

	"github.com/matryer/is"
	"lukechampine.com/frand"

	"github.com/domino14/blockbot/board"
	"github.com/domino14/blockbot/config"
	"github.com/domino14/blockbot/equity"
	"github.com/domino14/blockbot/move"
	"github.com/domino14/blockbot/movegen"
	"github.com/domino14/blockbot/piece"
	"github.com/domino14/blockbot/turnplayer"
)

var DefaultConfig = config.DefaultConfig()

func newAIPlayer(t *testing.T) *AIStaticTurnPlayer {
	p, err := NewAIStaticTurnPlayer(&DefaultConfig, &turnplayer.GameOptions{})
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestBestPlayTieGoesToLast(t *testing.T) {
	is := is.New(t)
	a := move.NewMove(piece.TypeT, 1, 0, 0, 5)
	b := move.NewMove(piece.TypeT, 2, 0, 0, 7)
	c := move.NewMove(piece.TypeT, 3, 0, 0, 7)
	d := move.NewMove(piece.TypeT, 4, 0, 0, 1)
	is.Equal(BestPlay([]*move.Move{a, b, c, d}), c)
	is.Equal(BestPlay([]*move.Move{a, c, b, d}), b)
	is.Equal(BestPlay(nil), nil)
}

func randomBoard(rng *frand.RNG) *board.Board {
	b := board.NewBoard()
	height := rng.Intn(12)
	for y := 0; y < height; y++ {
		for x := 0; x < board.Width; x++ {
			if rng.Intn(10) < 7 {
				b.Set(x, y)
			}
		}
	}
	return b
}

func TestTopPlayOnlyMatchesSortedAllPlays(t *testing.T) {
	is := is.New(t)
	var seed [32]byte
	seed[0] = 42
	rng := frand.NewCustom(seed[:], 1024, 12)

	for i := 0; i < 200; i++ {
		b := randomBoard(rng)
		typ := piece.Type(rng.Intn(piece.NumTypes))

		gen := movegen.NewGenerator(equity.DefaultWeights)
		all := gen.GenAll(b, typ)
		expected := BestPlay(all)

		topgen := movegen.NewGenerator(equity.DefaultWeights)
		topgen.SetPlayRecorder(movegen.TopPlayOnlyRecorder)
		top := topgen.GenAll(b, typ)

		if expected == nil {
			is.Equal(len(top), 0)
			continue
		}
		is.Equal(len(top), 1)
		is.True(top[0].Equals(expected))
	}
}

func TestBestMoveForEmptyBoard(t *testing.T) {
	is := is.New(t)
	p := newAIPlayer(t)
	res, ok := p.BestMoveFor(piece.TypeO)
	is.True(ok)
	// Both corners tie; the right one is generated later.
	is.Equal(res, move.Result{Displacement: movegen.SpawnCol - 8, Rotation: 3})
	is.True(p.Board().Equals(board.MustFromRows("........##", "........##")))
	is.Equal(p.Turn(), 1)
}

func TestBestMoveClearsLines(t *testing.T) {
	is := is.New(t)
	p := newAIPlayer(t)
	for x := 0; x < board.Width-1; x++ {
		p.Board().Set(x, 0)
	}
	res, ok := p.BestMoveFor(piece.TypeI)
	is.True(ok)
	is.Equal(p.LinesCleared(), 1)
	is.Equal(p.LastCleared(), 1)
	// The vertical line goes in the well.
	is.Equal(res.Rotation%2, 1)
}

func TestNoPlacementEndsGame(t *testing.T) {
	is := is.New(t)
	p := newAIPlayer(t)
	for y := 0; y < board.VisibleHeight; y++ {
		for x := 1; x < board.Width; x++ {
			p.Board().Set(x, y)
		}
	}
	before := p.Board().Hash()
	_, ok := p.BestMoveFor(piece.TypeO)
	is.True(!ok)
	is.True(!p.IsPlaying())
	is.Equal(p.Board().Hash(), before)
	is.Equal(p.Turn(), 0)
}

func TestGenerateMovesBestFirst(t *testing.T) {
	is := is.New(t)
	p := newAIPlayer(t)
	p.AddPiece(piece.TypeL)
	plays := p.GenerateMoves(5)
	is.Equal(len(plays), 5)
	for i := 1; i < len(plays); i++ {
		is.True(plays[i-1].Equity() >= plays[i].Equity())
	}
	top := GenBestStaticTurn(p.Game, p)
	is.True(top.Equals(plays[0]))
	is.True(p.Board().IsEmpty())
}

type weightSpy struct {
	*movegen.Generator
	got []equity.Weights
}

func (s *weightSpy) SetWeights(w equity.Weights) {
	s.got = append(s.got, w)
	s.Generator.SetWeights(w)
}

type spyPlayer struct {
	*AIStaticTurnPlayer
	mg *weightSpy
}

func (p spyPlayer) MoveGenerator() movegen.MoveGenerator { return p.mg }

func TestGenBestStaticTurnUsesGameWeights(t *testing.T) {
	is := is.New(t)
	p := newAIPlayer(t)
	w := equity.Weights{1, 0, 0, 0}
	p.SetWeights(w)
	p.AddPiece(piece.TypeO)

	spy := &weightSpy{Generator: movegen.NewGenerator(equity.DefaultWeights)}
	best := GenBestStaticTurn(p.Game, spyPlayer{p, spy})
	is.True(best != nil)
	is.Equal(spy.got, []equity.Weights{w})
	is.Equal(spy.Weights(), w)
}
