package turnplayer

import (
	"github.com/domino14/blockbot/game"
	"github.com/domino14/blockbot/move"
	"github.com/domino14/blockbot/movegen"
)

// GenBestStaticTurn is a useful utility function for autoplaying. It
// returns nil when the active piece has no legal placement.
func GenBestStaticTurn(g *game.Game, p AITurnPlayer) *move.Move {
	cur := g.CurrentPiece()
	if cur == nil {
		return nil
	}
	mg := p.MoveGenerator()
	mg.SetPlayRecorder(movegen.TopPlayOnlyRecorder)
	mg.SetWeights(g.Weights())
	plays := mg.GenAll(g.Board(), cur.Type())
	if len(plays) == 0 {
		return nil
	}
	return plays[0]
}
