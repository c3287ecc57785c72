package turnplayer

import (
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/domino14/blockbot/config"
	"github.com/domino14/blockbot/move"
	"github.com/domino14/blockbot/movegen"
	"github.com/domino14/blockbot/piece"
	"github.com/domino14/blockbot/turnplayer"
)

// AIStaticTurnPlayer places each piece where the heuristic likes it best,
// looking at the current piece only.
type AIStaticTurnPlayer struct {
	turnplayer.BaseTurnPlayer

	gen *movegen.Generator
	cfg *config.Config
}

func NewAIStaticTurnPlayer(conf *config.Config, opts *turnplayer.GameOptions) (*AIStaticTurnPlayer, error) {
	if err := opts.SetDefaults(conf); err != nil {
		return nil, err
	}
	p := turnplayer.NewBaseTurnPlayer(opts)
	return addAIFields(p, conf), nil
}

func addAIFields(p *turnplayer.BaseTurnPlayer, conf *config.Config) *AIStaticTurnPlayer {
	gen := movegen.NewGenerator(p.Weights())
	return &AIStaticTurnPlayer{*p, gen, conf}
}

func (p *AIStaticTurnPlayer) MoveGenerator() movegen.MoveGenerator {
	return p.gen
}

// SortPlays orders plays by ascending equity. The sort is stable, so plays
// with equal equity keep their generation order.
func SortPlays(plays []*move.Move) {
	sort.SliceStable(plays, func(i, j int) bool {
		return plays[i].Equity() < plays[j].Equity()
	})
}

// BestPlay returns the last play after a stable ascending sort: the highest
// equity, and among equals the one generated last. It returns nil if there
// are no plays. The slice is sorted in place.
func BestPlay(plays []*move.Move) *move.Move {
	if len(plays) == 0 {
		return nil
	}
	SortPlays(plays)
	return plays[len(plays)-1]
}

// GenerateMoves returns up to numPlays legal plays for the active piece,
// best first.
func (p *AIStaticTurnPlayer) GenerateMoves(numPlays int) []*move.Move {
	cur := p.CurrentPiece()
	if cur == nil {
		return nil
	}
	p.gen.SetPlayRecorder(movegen.AllPlaysRecorder)
	p.gen.SetWeights(p.Weights())
	plays := p.gen.GenAll(p.Board(), cur.Type())
	SortPlays(plays)
	ret := make([]*move.Move, 0, len(plays))
	for i := len(plays) - 1; i >= 0 && len(ret) < numPlays; i-- {
		ret = append(ret, plays[i])
	}
	return ret
}

// PlayBestStaticTurn picks the best placement for the active piece and
// commits it. It does not clear lines. If there is no legal placement the
// game is marked over, nothing is placed and ok is false.
func (p *AIStaticTurnPlayer) PlayBestStaticTurn() (res move.Result, best *move.Move, ok bool) {
	best = GenBestStaticTurn(p.Game, p)
	if best == nil {
		p.SetGameOver()
		return move.Result{}, nil, false
	}
	if err := p.PlacePiece(best.Column(), best.Rotation()); err != nil {
		log.Err(err).Msg("placing-best-static-turn")
		return move.Result{}, nil, false
	}
	return best.Result(movegen.SpawnCol), best, true
}

// BestMoveFor adds a piece of type t, places it where it scores best and
// clears lines. The result tells an input driver how to reproduce the move.
func (p *AIStaticTurnPlayer) BestMoveFor(t piece.Type) (move.Result, bool) {
	p.AddPiece(t)
	res, _, ok := p.PlayBestStaticTurn()
	if !ok {
		return res, false
	}
	p.ClearLines()
	return res, true
}
