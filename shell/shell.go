// Package shell is an interactive REPL over a single game. Pieces can be
// added by hand or drawn at random, and the placement search can be
// inspected before anything is committed.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	aiturnplayer "github.com/domino14/blockbot/ai/turnplayer"
	"github.com/domino14/blockbot/automatic"
	"github.com/domino14/blockbot/config"
	"github.com/domino14/blockbot/move"
	"github.com/domino14/blockbot/turnplayer"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errNoGame            = errors.New("please start a game first with the `new` command")
)

type ShellController struct {
	l      *readline.Instance
	config *config.Config

	options *turnplayer.GameOptions
	player  *aiturnplayer.AIStaticTurnPlayer
	source  *automatic.RandomSource

	curPlayList []*move.Move
}

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config) (*ShellController, error) {
	prompt := "\033[31mblockbot>\033[0m "
	sc := &ShellController{config: cfg, options: &turnplayer.GameOptions{}}
	l, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     "/tmp/blockbot-readline.tmp",
		AutoComplete:    NewShellCompleter(sc),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}
	sc.l = l
	if err := sc.options.SetDefaults(cfg); err != nil {
		return nil, err
	}
	return sc, nil
}

// newController creates a controller that is not attached to a terminal.
func newController(cfg *config.Config) (*ShellController, error) {
	sc := &ShellController{config: cfg, options: &turnplayer.GameOptions{}}
	if err := sc.options.SetDefaults(cfg); err != nil {
		return nil, err
	}
	return sc, nil
}

func (sc *ShellController) showMessage(msg string) {
	if sc.l == nil {
		return
	}
	showMessage(msg, sc.l.Stderr())
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// extractFields splits a line into a command, its positional arguments,
// and -name value options. Quoting follows shell rules.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := CmdOptions{}
	for i := 1; i < len(fields); i++ {
		if strings.HasPrefix(fields[i], "-") && len(fields[i]) > 1 && !isNumber(fields[i]) {
			if i+1 >= len(fields) {
				return nil, errWrongOptionSyntax
			}
			options[fields[i][1:]] = fields[i+1]
			i++
			continue
		}
		args = append(args, fields[i])
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

func isNumber(s string) bool {
	var f float64
	_, err := fmt.Sscanf(s, "%g", &f)
	return err == nil
}

func (sc *ShellController) standardModeSwitch(line string, sig chan os.Signal) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "exit", "bye":
		sig <- syscall.SIGINT
		return nil, errors.New("sending quit signal")
	case "script":
		return sc.script(cmd)
	default:
		return sc.dispatch(cmd)
	}
}

// dispatch runs every command that a script may run too.
func (sc *ShellController) dispatch(cmd *shellcmd) (*Response, error) {
	switch cmd.cmd {
	case "help":
		return sc.help(cmd)
	case "new":
		return sc.newGame(cmd)
	case "weights":
		return sc.weights(cmd)
	case "piece":
		return sc.piece(cmd)
	case "gen":
		return sc.gen(cmd)
	case "commit":
		return sc.commit(cmd)
	case "add":
		return sc.add(cmd)
	case "auto":
		return sc.auto(cmd)
	case "board", "s":
		return sc.show(cmd)
	case "left", "right", "rotate":
		return sc.nudge(cmd)
	case "analyze":
		return sc.analyze(cmd)
	default:
		log.Debug().Msgf("you said: %v", cmd.cmd)
		return nil, fmt.Errorf("unrecognized command %q; try `help`", cmd.cmd)
	}
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		resp, err := sc.standardModeSwitch(line, sig)
		if err != nil {
			if line == "exit" || line == "bye" {
				break
			}
			sc.showError(err)
			continue
		}
		if resp != nil {
			sc.showMessage(resp.message)
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}
