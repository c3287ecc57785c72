package automatic

// Batches of self-play games, for measuring a weight vector.

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/blockbot/config"
	"github.com/domino14/blockbot/equity"
	"github.com/domino14/blockbot/stats"
)

const histogramBins = 15

// GameResult is the outcome of one game of a batch.
type GameResult struct {
	Index     int
	Seed      [32]byte
	GameID    string
	Pieces    int
	Lines     int
	BoardHash uint64
}

// PlayGames plays one game per seed, at most threads at a time. Every game
// gets its own runner and board. Results are returned in seed order, so
// the outcome does not depend on scheduling.
func PlayGames(ctx context.Context, cfg *config.Config, weights equity.Weights,
	seeds [][32]byte, threads int, logchan chan string) ([]GameResult, error) {

	if threads < 1 {
		threads = 1
	}
	results := make([]GameResult, len(seeds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	for i, seed := range seeds {
		i, seed := i, seed
		g.Go(func() error {
			r, err := NewGameRunner(logchan, cfg, weights, NewRandomSource(seed))
			if err != nil {
				return err
			}
			n, err := r.PlayGame(ctx)
			if err != nil {
				return err
			}
			results[i] = r.result(i, seed, n)
			if (i+1)%100 == 0 {
				log.Info().Int("games", i+1).Msg("progress")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *GameRunner) result(idx int, seed [32]byte, pieces int) GameResult {
	g := r.player.Game
	return GameResult{
		Index:     idx,
		Seed:      seed,
		GameID:    g.Uid(),
		Pieces:    pieces,
		Lines:     g.LinesCleared(),
		BoardHash: g.Board().Hash(),
	}
}

// PlaySingleGame plays one game from seed. Turns go to logchan and the
// final board to gamechan; either may be nil. A gamechan must be buffered
// or drained by the caller.
func PlaySingleGame(ctx context.Context, cfg *config.Config, weights equity.Weights,
	seed [32]byte, logchan, gamechan chan string) (GameResult, error) {

	r, err := NewGameRunner(logchan, cfg, weights, NewRandomSource(seed))
	if err != nil {
		return GameResult{}, err
	}
	r.SetGameChan(gamechan)
	n, err := r.PlayGame(ctx)
	if err != nil {
		return GameResult{}, err
	}
	return r.result(0, seed, n), nil
}

// StartCompVCompStaticGames plays a batch and writes every turn to a CSV
// file at outputFilename.
func StartCompVCompStaticGames(ctx context.Context, cfg *config.Config, weights equity.Weights,
	seeds [][32]byte, threads int, outputFilename string) ([]GameResult, error) {

	logfile, err := os.Create(outputFilename)
	if err != nil {
		return nil, err
	}
	defer logfile.Close()
	log.Debug().Msgf("Starting %v games, %v threads", len(seeds), threads)

	logChan := make(chan string, 100)
	done := make(chan error)
	go func() {
		var werr error
		_, werr = logfile.WriteString(CSVHeader)
		for msg := range logChan {
			if werr == nil {
				_, werr = logfile.WriteString(msg)
			}
		}
		log.Info().Msg("Exiting turn logger goroutine!")
		done <- werr
	}()

	results, err := PlayGames(ctx, cfg, weights, seeds, threads, logChan)
	close(logChan)
	if werr := <-done; werr != nil && err == nil {
		err = werr
	}
	log.Info().Msg("All games finished.")
	return results, err
}

// Summarize aggregates batch results into a printable report with a
// histogram of pieces placed per game.
func Summarize(results []GameResult) string {
	var sb strings.Builder
	if len(results) == 0 {
		return "No games played.\n"
	}
	pieces := &stats.Statistic{}
	lines := &stats.Statistic{}
	for _, r := range results {
		pieces.Push(float64(r.Pieces))
		lines.Push(float64(r.Lines))
	}
	fmt.Fprintf(&sb, "Games played: %d\n", len(results))
	fmt.Fprintf(&sb, "Pieces: %s\n", pieces)
	fmt.Fprintf(&sb, "Lines:  %s\n", lines)

	if pieces.Min() == pieces.Max() {
		return sb.String()
	}
	data := lo.Map(results, func(r GameResult, _ int) float64 { return float64(r.Pieces) })
	hist := histogram.Hist(histogramBins, data)
	sb.WriteString("\nPieces per game:\n")
	if err := histogram.Fprint(&sb, hist, histogram.Linear(40)); err != nil {
		log.Err(err).Msg("histogram")
	}
	return sb.String()
}

// SeedsFromConfig resolves the seeds for a batch: a seed file if one is
// configured, then a single seed, and otherwise numGames fresh seeds.
func SeedsFromConfig(cfg *config.Config) ([][32]byte, error) {
	if path := cfg.GetString(config.ConfigSeedFile); path != "" {
		return LoadSeeds(path)
	}
	if s := cfg.GetString(config.ConfigSeed); s != "" {
		seed, err := DecodeSeed(s)
		if err != nil {
			return nil, err
		}
		return [][32]byte{seed}, nil
	}
	n := cfg.GetInt(config.ConfigNumGames)
	if n < 1 {
		return nil, fmt.Errorf("%s must be positive, got %d", config.ConfigNumGames, n)
	}
	return GenerateSeeds(n), nil
}
