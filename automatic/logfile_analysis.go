package automatic

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/samber/lo"

	"github.com/domino14/blockbot/stats"
)

var errBadLogRecord = errors.New("bad log record")

type gameTally struct {
	turns int
	lines int
}

// AnalyzeLogFile reads a turn log written by StartCompVCompStaticGames and
// summarizes it per game.
func AnalyzeLogFile(filepath string) (string, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return "", err
	}
	defer file.Close()
	return analyzeLog(file)
}

func analyzeLog(rd io.Reader) (string, error) {
	r := csv.NewReader(rd)
	// Record looks like:
	// gameID,turn,piece,column,rotation,displacement,equity,lines
	tallies := map[string]*gameTally{}
	order := []string{}
	pieceCounts := map[string]int{}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if record[0] == "gameID" {
			continue
		}
		if len(record) != 8 {
			return "", fmt.Errorf("%w: %v", errBadLogRecord, record)
		}
		turn, err := strconv.Atoi(record[1])
		if err != nil {
			return "", fmt.Errorf("%w: turn: %w", errBadLogRecord, err)
		}
		lines, err := strconv.Atoi(record[7])
		if err != nil {
			return "", fmt.Errorf("%w: lines: %w", errBadLogRecord, err)
		}
		gt, ok := tallies[record[0]]
		if !ok {
			gt = &gameTally{}
			tallies[record[0]] = gt
			order = append(order, record[0])
		}
		gt.turns = max(gt.turns, turn)
		gt.lines += lines
		pieceCounts[record[2]]++
	}

	turnStats := &stats.Statistic{}
	lineStats := &stats.Statistic{}
	for _, id := range order {
		turnStats.Push(float64(tallies[id].turns))
		lineStats.Push(float64(tallies[id].lines))
	}

	out := fmt.Sprintf("Games played: %d\n", len(order))
	out += fmt.Sprintf("Placements: %s\n", turnStats)
	out += fmt.Sprintf("Lines: %s\n", lineStats)
	names := lo.Keys(pieceCounts)
	total := lo.Sum(lo.Values(pieceCounts))
	out += "Piece frequencies:\n"
	slices.Sort(names)
	for _, n := range names {
		out += fmt.Sprintf("  %s: %.3f\n", n, float64(pieceCounts[n])/float64(total))
	}
	return out, nil
}

