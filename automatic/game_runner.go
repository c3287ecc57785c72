// Package automatic plays whole games without a human: pieces come from a
// source, the static player places each one, and full rows are cleared
// until nothing fits. It also runs batches of such games in parallel.
package automatic

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	aiturnplayer "github.com/domino14/blockbot/ai/turnplayer"
	"github.com/domino14/blockbot/config"
	"github.com/domino14/blockbot/equity"
	"github.com/domino14/blockbot/turnplayer"
)

// CSVHeader describes the lines a GameRunner sends on its log channel.
const CSVHeader = "gameID,turn,piece,column,rotation,displacement,equity,lines\n"

// GameRunner is the master struct here for the automatic game logic.
type GameRunner struct {
	player    *aiturnplayer.AIStaticTurnPlayer
	source    PieceSource
	config    *config.Config
	logchan   chan string
	gamechan  chan string
	pace      time.Duration
	maxPieces int
}

// NewGameRunner creates a runner that scores with the given weights and
// draws pieces from src. Pace and the piece cap come from the config.
func NewGameRunner(logchan chan string, cfg *config.Config, weights equity.Weights,
	src PieceSource) (*GameRunner, error) {

	opts := &turnplayer.GameOptions{}
	opts.UseWeights(weights)
	p, err := aiturnplayer.NewAIStaticTurnPlayer(cfg, opts)
	if err != nil {
		return nil, err
	}
	return &GameRunner{
		player:    p,
		source:    src,
		config:    cfg,
		logchan:   logchan,
		pace:      cfg.GetDuration(config.ConfigPace),
		maxPieces: cfg.GetInt(config.ConfigMaxPieces),
	}, nil
}

func (r *GameRunner) SetGameChan(c chan string) {
	r.gamechan = c
}

func (r *GameRunner) Player() *aiturnplayer.AIStaticTurnPlayer {
	return r.player
}

func (r *GameRunner) StartGame() {
	r.player.StartGame()
}

// PlayBestStaticTurn draws a piece and places it where it scores best,
// then clears lines. It returns false once no placement exists.
func (r *GameRunner) PlayBestStaticTurn() bool {
	g := r.player.Game
	t := r.source.Next()
	g.AddPiece(t)
	res, best, ok := r.player.PlayBestStaticTurn()
	if !ok {
		log.Debug().Str("gid", g.Uid()).Str("piece", t.Name()).Msg("no-placement")
		return false
	}
	cleared := g.ClearLines()
	if r.logchan != nil {
		r.logchan <- fmt.Sprintf("%v,%v,%v,%v,%v,%v,%.3f,%v\n",
			g.Uid(),
			g.Turn(),
			t.Name(),
			best.Column(),
			best.Rotation(),
			res.Displacement,
			best.Equity(),
			cleared)
	}
	return true
}

// PlayGame plays from an empty board until a piece has no legal placement
// or the piece cap is reached. It returns the number of turns played; the
// turn on which no placement was found counts as well. Cancelling ctx
// stops the game between turns.
func (r *GameRunner) PlayGame(ctx context.Context) (int, error) {
	r.StartGame()
	return r.playUntilOver(ctx)
}

func (r *GameRunner) playUntilOver(ctx context.Context) (int, error) {
	g := r.player.Game
	pieces := 0
	for g.Playing() {
		if err := ctx.Err(); err != nil {
			return pieces, err
		}
		r.PlayBestStaticTurn()
		pieces++
		if r.maxPieces > 0 && pieces >= r.maxPieces {
			break
		}
		if r.pace > 0 {
			select {
			case <-ctx.Done():
				return pieces, ctx.Err()
			case <-time.After(r.pace):
			}
		}
	}
	log.Debug().Str("gid", g.Uid()).Int("pieces", pieces).
		Int("lines", g.LinesCleared()).Msg("game-finished")
	if r.gamechan != nil {
		r.gamechan <- g.ToDisplayText()
	}
	return pieces, nil
}
