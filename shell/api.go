package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	aiturnplayer "github.com/domino14/blockbot/ai/turnplayer"
	"github.com/domino14/blockbot/automatic"
	"github.com/domino14/blockbot/equity"
	"github.com/domino14/blockbot/move"
	"github.com/domino14/blockbot/movegen"
)

const defaultNumPlays = 15

type Response struct {
	message string
}

type CmdOptions map[string]string

func (c CmdOptions) String(key string) string {
	return c[key]
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v, ok := c[key]
	if !ok {
		return defaultI, nil
	}
	return strconv.Atoi(v)
}

func msg(message string) *Response {
	return &Response{message: message}
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(usage()), nil
	}
	return msg(usageTopic(cmd.args[0])), nil
}

// newGame starts a game. An optional seed makes the random pieces used by
// `auto` reproducible.
func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	var seed [32]byte
	if len(cmd.args) > 0 {
		var err error
		seed, err = automatic.DecodeSeed(cmd.args[0])
		if err != nil {
			return nil, err
		}
	} else {
		frand.Read(seed[:])
	}
	p, err := aiturnplayer.NewAIStaticTurnPlayer(sc.config, sc.options)
	if err != nil {
		return nil, err
	}
	sc.player = p
	sc.source = automatic.NewRandomSource(seed)
	sc.curPlayList = nil
	log.Info().Str("gid", p.Uid()).Str("seed", automatic.EncodeSeed(seed)).Msg("new-game")
	return msg(fmt.Sprintf("New game %s (seed %s)\n%s", p.Uid(), automatic.EncodeSeed(seed),
		p.ToDisplayText())), nil
}

func (sc *ShellController) weights(cmd *shellcmd) (*Response, error) {
	if path := cmd.options.String("file"); path != "" {
		w, err := equity.CachedWeightsFile(sc.config, path)
		if err != nil {
			return nil, err
		}
		sc.options.UseWeights(w)
	} else if len(cmd.args) == 0 {
		return msg(sc.options.Weights.String()), nil
	} else if err := sc.options.SetWeights(cmd.args); err != nil {
		return nil, err
	}
	if sc.player != nil {
		sc.player.SetWeights(sc.options.Weights)
	}
	return msg("weights set to " + sc.options.Weights.String()), nil
}

func (sc *ShellController) requireGame() error {
	if sc.player == nil {
		return errNoGame
	}
	if !sc.player.IsPlaying() {
		return errors.New("the game is over; start another with `new`")
	}
	return nil
}

// piece makes a piece of the named type the active piece, without placing it.
func (sc *ShellController) piece(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: piece <name>")
	}
	if _, err := sc.player.AddPieceByName(cmd.args[0]); err != nil {
		return nil, err
	}
	sc.curPlayList = nil
	return msg(sc.player.ToDisplayText()), nil
}

func moveTableHeader() string {
	return "     Move        Col Rot Row  Score   Equity\n"
}

func MoveTableRow(idx int, m *move.Move) string {
	return fmt.Sprintf("%3d: %-12s%-4d%-4d%-5d%-8.3f%-8.3f", idx+1,
		m.ShortDescription(), m.Column(), m.Rotation(), m.LandingRow(), m.Score(), m.Equity())
}

// gen lists the best placements for the active piece, best first.
func (sc *ShellController) gen(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	if sc.player.CurrentPiece() == nil {
		return nil, errors.New("add a piece first with `piece <name>`")
	}
	numPlays := defaultNumPlays
	if len(cmd.args) > 0 {
		n, err := strconv.Atoi(cmd.args[0])
		if err != nil {
			return nil, err
		}
		numPlays = n
	}
	sc.curPlayList = sc.player.GenerateMoves(numPlays)
	if len(sc.curPlayList) == 0 {
		return msg("No legal placements."), nil
	}
	var sb strings.Builder
	sb.WriteString(moveTableHeader())
	for i, p := range sc.curPlayList {
		sb.WriteString(MoveTableRow(i, p) + "\n")
	}
	return msg(sb.String()), nil
}

// commit places the active piece, either as a generated play (#n) or at a
// column and rotation.
func (sc *ShellController) commit(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	var m *move.Move
	var err error
	if len(cmd.args) == 1 && strings.HasPrefix(cmd.args[0], "#") {
		idx, err := strconv.Atoi(cmd.args[0][1:])
		if err != nil {
			return nil, err
		}
		if idx < 1 || idx > len(sc.curPlayList) {
			return nil, errors.New("play outside range")
		}
		m = sc.curPlayList[idx-1]
	} else {
		m, err = sc.player.ParseMove(cmd.args)
		if err != nil {
			return nil, err
		}
	}
	cleared, err := sc.player.PlayMove(m)
	if err != nil {
		return nil, err
	}
	sc.curPlayList = nil
	return msg(fmt.Sprintf("%s: %v, cleared %d\n%s", m.ShortDescription(),
		m.Result(movegen.SpawnCol), cleared, sc.player.ToDisplayText())), nil
}

// add drops a piece of the named type where the search likes it best.
func (sc *ShellController) add(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: add <name>")
	}
	t, err := sc.player.AddPieceByName(cmd.args[0])
	if err != nil {
		return nil, err
	}
	sc.curPlayList = nil
	res, ok := sc.player.BestMoveFor(t)
	if !ok {
		return msg(fmt.Sprintf("No legal placement for %v.\n%s", t, sc.player.ToDisplayText())), nil
	}
	return msg(fmt.Sprintf("%v: %v\n%s", t, res, sc.player.ToDisplayText())), nil
}

// auto plays n random pieces, or until the game ends.
func (sc *ShellController) auto(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	n := 1
	if len(cmd.args) > 0 {
		var err error
		n, err = strconv.Atoi(cmd.args[0])
		if err != nil {
			return nil, err
		}
	}
	played := 0
	for ; played < n && sc.player.IsPlaying(); played++ {
		sc.player.BestMoveFor(sc.source.Next())
	}
	sc.curPlayList = nil
	return msg(fmt.Sprintf("Played %d piece(s).\n%s", played, sc.player.ToDisplayText())), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	if sc.player == nil {
		return nil, errNoGame
	}
	return msg(sc.player.ToDisplayText()), nil
}

// nudge moves or turns the active piece by hand.
func (sc *ShellController) nudge(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	if sc.player.CurrentPiece() == nil {
		return nil, errors.New("no active piece")
	}
	switch cmd.cmd {
	case "left":
		sc.player.Left()
	case "right":
		sc.player.Right()
	case "rotate":
		n := 1
		if len(cmd.args) > 0 {
			var err error
			if n, err = strconv.Atoi(cmd.args[0]); err != nil {
				return nil, err
			}
		}
		sc.player.RotateBy(n)
	}
	return msg(sc.player.ToDisplayText()), nil
}

// analyze summarizes a turn log written by a batch of automatic games.
func (sc *ShellController) analyze(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: analyze <logfile>")
	}
	summary, err := automatic.AnalyzeLogFile(cmd.args[0])
	if err != nil {
		return nil, err
	}
	return msg(summary), nil
}
