package turnplayer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/domino14/blockbot/move"
)

var errMoveFormat = errors.New("valid format is '<column> <rotation>', e.g. 'c3 r1' or '3 1'")

func parseField(s, prefix string) (int, error) {
	s = strings.TrimPrefix(strings.ToLower(s), prefix)
	return strconv.Atoi(s)
}

// ParseMove parses a column and rotation for the active piece.
func (p *BaseTurnPlayer) ParseMove(fields []string) (*move.Move, error) {
	if len(fields) != 2 {
		return nil, errMoveFormat
	}
	col, err := parseField(fields[0], "c")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errMoveFormat, err)
	}
	rot, err := parseField(fields[1], "r")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errMoveFormat, err)
	}
	return p.NewPlacementMove(col, rot)
}
