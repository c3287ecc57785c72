package turnplayer

import (
	"github.com/domino14/blockbot/move"
	"github.com/domino14/blockbot/piece"
)

// TurnPlayer encapsulates all the functions needed to play a single turn
// of the game by hand.
type TurnPlayer interface {
	AddPieceByName(name string) (piece.Type, error)
	NewPlacementMove(col, rotation int) (*move.Move, error)
	ParseMove(fields []string) (*move.Move, error)
	PlayMove(m *move.Move) (int, error)
	IsPlaying() bool
}
