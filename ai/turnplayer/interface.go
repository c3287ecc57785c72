package turnplayer

import (
	"github.com/domino14/blockbot/move"
	"github.com/domino14/blockbot/movegen"
)

type AITurnPlayer interface {
	GenerateMoves(numPlays int) []*move.Move
	MoveGenerator() movegen.MoveGenerator
}
