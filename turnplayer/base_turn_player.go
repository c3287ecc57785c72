package turnplayer

import (
	"errors"
	"fmt"

	"github.com/domino14/blockbot/board"
	"github.com/domino14/blockbot/game"
	"github.com/domino14/blockbot/move"
	"github.com/domino14/blockbot/piece"
)

var ErrIllegalPlacement = errors.New("illegal placement")

// Basic game. Add pieces, make moves.

type BaseTurnPlayer struct {
	*game.Game
}

// NewBaseTurnPlayer is a good entry point.
func NewBaseTurnPlayer(opts *GameOptions) *BaseTurnPlayer {
	g := game.NewGame(opts.Weights)
	g.StartGame()
	return &BaseTurnPlayer{g}
}

func (p *BaseTurnPlayer) AddPieceByName(name string) (piece.Type, error) {
	t, err := piece.TypeFromName(name)
	if err != nil {
		return t, err
	}
	p.AddPiece(t)
	return t, nil
}

// NewPlacementMove scores the active piece at the given column and
// rotation, without touching the board. It fails if the piece would not
// come to rest inside the visible playfield.
func (p *BaseTurnPlayer) NewPlacementMove(col, rotation int) (*move.Move, error) {
	cur := p.CurrentPiece()
	if cur == nil {
		return nil, game.ErrNoActivePiece
	}
	c := cur.Copy()
	c.RotateTo(rotation)
	c.SetCenter(col, cur.Row())
	c.Drop(p.Board())
	if !c.IsOnBoardWithin(board.Width, board.VisibleHeight) {
		return nil, fmt.Errorf("%w: column %d rotation %d", ErrIllegalPlacement, col, rotation)
	}
	return move.NewMove(c.Type(), col, c.Rotation(), c.Row(), c.Score(p.Board())), nil
}

// PlayMove commits the move and clears complete rows. It returns the number
// of rows cleared.
func (p *BaseTurnPlayer) PlayMove(m *move.Move) (int, error) {
	cur := p.CurrentPiece()
	if cur == nil {
		return 0, game.ErrNoActivePiece
	}
	if cur.Type() != m.PieceType() {
		return 0, fmt.Errorf("%w: move is for %v, active piece is %v",
			ErrIllegalPlacement, m.PieceType().Name(), cur.Type().Name())
	}
	if err := p.PlacePiece(m.Column(), m.Rotation()); err != nil {
		return 0, err
	}
	return p.ClearLines(), nil
}

func (p *BaseTurnPlayer) IsPlaying() bool {
	return p.Playing()
}
