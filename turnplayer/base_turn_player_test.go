package turnplayer

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/blockbot/board"
	"github.com/domino14/blockbot/config"
	"github.com/domino14/blockbot/equity"
	"github.com/domino14/blockbot/piece"
)

var DefaultConfig = config.DefaultConfig()

func newPlayer(t *testing.T) *BaseTurnPlayer {
	opts := &GameOptions{}
	if err := opts.SetDefaults(&DefaultConfig); err != nil {
		t.Fatal(err)
	}
	return NewBaseTurnPlayer(opts)
}

func TestDefaultsUseConfiguredWeights(t *testing.T) {
	is := is.New(t)
	p := newPlayer(t)
	is.Equal(p.Weights(), equity.DefaultWeights)

	opts := &GameOptions{}
	is.NoErr(opts.SetWeights([]string{"1", "2", "3", "4"}))
	is.NoErr(opts.SetDefaults(&DefaultConfig))
	is.Equal(opts.Weights, equity.Weights{1, 2, 3, 4})

	is.True(opts.SetWeights([]string{"1", "2"}) != nil)
}

func TestParseAndPlayMove(t *testing.T) {
	is := is.New(t)
	p := newPlayer(t)
	typ, err := p.AddPieceByName("o")
	is.NoErr(err)
	is.Equal(typ, piece.TypeO)

	m, err := p.ParseMove([]string{"c0", "r0"})
	is.NoErr(err)
	is.Equal(m.Column(), 0)
	is.Equal(m.LandingRow(), 0)
	is.True(p.Board().IsEmpty())

	cleared, err := p.PlayMove(m)
	is.NoErr(err)
	is.Equal(cleared, 0)
	is.True(p.Board().Equals(board.MustFromRows("##", "##")))
	is.True(p.IsPlaying())
}

func TestParseMoveErrors(t *testing.T) {
	is := is.New(t)
	p := newPlayer(t)
	_, err := p.ParseMove([]string{"3", "1"})
	is.True(err != nil) // no active piece

	p.AddPiece(piece.TypeO)
	_, err = p.ParseMove([]string{"3"})
	is.True(errors.Is(err, errMoveFormat))
	_, err = p.ParseMove([]string{"cx", "1"})
	is.True(errors.Is(err, errMoveFormat))
	_, err = p.ParseMove([]string{"9", "0"})
	is.True(errors.Is(err, ErrIllegalPlacement))
}

func TestPlayMoveWrongPiece(t *testing.T) {
	is := is.New(t)
	p := newPlayer(t)
	p.AddPiece(piece.TypeI)
	m, err := p.NewPlacementMove(4, 0)
	is.NoErr(err)
	p.AddPiece(piece.TypeO)
	_, err = p.PlayMove(m)
	is.True(errors.Is(err, ErrIllegalPlacement))
}
