package shell

import (
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/samber/lo"

	"github.com/domino14/blockbot/piece"
)

// ShellCompleter completes command names and piece names.
type ShellCompleter struct {
	sc *ShellController
}

func NewShellCompleter(sc *ShellController) *ShellCompleter {
	return &ShellCompleter{sc: sc}
}

var commandNames = []string{
	"help", "new", "weights", "piece", "left", "right", "rotate", "gen",
	"commit", "add", "auto", "board", "analyze", "script", "exit",
}

var helpTopics = []string{"scoring", "moves", "script"}

func pieceNames() []string {
	types := piece.Types()
	return lo.FlatMap(types[:], func(t piece.Type, _ int) []string {
		return []string{t.Name(), t.Color()}
	})
}

// Do implements the readline.AutoCompleter interface.
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])
	fields, err := shellquote.Split(text)
	if err != nil {
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string
	switch {
	case len(fields) == 0 || (len(fields) == 1 && !endsWithSpace):
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	case len(fields) == 1 || (len(fields) == 2 && !endsWithSpace):
		if !endsWithSpace {
			prefix = fields[1]
		}
		switch fields[0] {
		case "piece", "add":
			completions = pieceNames()
		case "help":
			completions = helpTopics
		}
	}

	var out [][]rune
	for _, cand := range completions {
		if strings.HasPrefix(strings.ToLower(cand), strings.ToLower(prefix)) {
			out = append(out, []rune(cand[len(prefix):]+" "))
		}
	}
	return out, len([]rune(prefix))
}
