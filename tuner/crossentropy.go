// Package tuner searches for scoring weights with the noisy cross-entropy
// method: sample a population of weight vectors around a mean, play games
// with each, and refit the mean and variance to the best few.
package tuner

import (
	"context"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
	"gopkg.in/yaml.v3"
	"lukechampine.com/frand"

	"github.com/domino14/blockbot/automatic"
	"github.com/domino14/blockbot/config"
	"github.com/domino14/blockbot/equity"
)

type Settings struct {
	Population      int
	Iterations      int
	Games           int
	Threads         int
	Rho             float64
	Noise           float64
	InitialVariance float64
}

func SettingsFromConfig(cfg *config.Config) Settings {
	return Settings{
		Population:      cfg.GetInt(config.ConfigTunePopulation),
		Iterations:      cfg.GetInt(config.ConfigTuneIterations),
		Games:           cfg.GetInt(config.ConfigTuneGames),
		Threads:         cfg.GetInt(config.ConfigThreads),
		Rho:             cfg.GetFloat64(config.ConfigTuneRho),
		Noise:           cfg.GetFloat64(config.ConfigTuneNoise),
		InitialVariance: cfg.GetFloat64(config.ConfigTuneInitialVari),
	}
}

func (s Settings) validate() error {
	switch {
	case s.Population < 1:
		return fmt.Errorf("population must be positive, got %d", s.Population)
	case s.Games < 1:
		return fmt.Errorf("games per candidate must be positive, got %d", s.Games)
	case s.Rho <= 0 || s.Rho > 1:
		return fmt.Errorf("rho must be in (0, 1], got %v", s.Rho)
	}
	return nil
}

// Candidate is a weight vector and the mean number of pieces it placed.
type Candidate struct {
	Weights []float64 `yaml:"weights"`
	Pieces  float64   `yaml:"pieces"`
}

// Iteration is the record of one round of sampling and refitting. It is
// written out as one YAML document.
type Iteration struct {
	Iteration  int         `yaml:"iteration"`
	Noise      float64     `yaml:"noise"`
	Means      []float64   `yaml:"means"`
	Variances  []float64   `yaml:"variances"`
	Elite      []Candidate `yaml:"elite"`
	EliteMean  float64     `yaml:"elite_mean"`
	BestSingle Candidate   `yaml:"best_single"`
}

type CrossEntropy struct {
	cfg       *config.Config
	settings  Settings
	means     equity.Weights
	variances equity.Weights
	rng       *frand.RNG
	seeds     [][32]byte
	iteration int
	best      Candidate
	out       *yaml.Encoder
}

// NewCrossEntropy starts a search around start. Sampling is driven by
// seed; every candidate is scored on the same games, one per entry of
// gameSeeds.
func NewCrossEntropy(cfg *config.Config, settings Settings, start equity.Weights,
	seed [32]byte, gameSeeds [][32]byte) (*CrossEntropy, error) {

	if err := settings.validate(); err != nil {
		return nil, err
	}
	if len(gameSeeds) == 0 {
		return nil, fmt.Errorf("no game seeds")
	}
	ce := &CrossEntropy{
		cfg:      cfg,
		settings: settings,
		means:    start,
		rng:      frand.NewCustom(seed[:], 1024, 20),
		seeds:    gameSeeds,
	}
	for i := range ce.variances {
		ce.variances[i] = settings.InitialVariance
	}
	return ce, nil
}

// SetOutput makes every iteration get written to w as a YAML document.
func (ce *CrossEntropy) SetOutput(w io.Writer) {
	ce.out = yaml.NewEncoder(w)
}

func (ce *CrossEntropy) Means() equity.Weights     { return ce.means }
func (ce *CrossEntropy) Variances() equity.Weights { return ce.variances }
func (ce *CrossEntropy) Best() Candidate           { return ce.best }

func (ce *CrossEntropy) noise() float64 {
	return ce.settings.Noise / math.Log10(1+float64(ce.iteration))
}

// sample draws each weight from a normal distribution around its mean, by
// inverting the CDF at a uniform draw from the seeded stream.
func (ce *CrossEntropy) sample(noise float64) equity.Weights {
	var w equity.Weights
	for i := range w {
		variance := math.Abs(ce.means[i])*noise + ce.variances[i]
		dist := distuv.Normal{Mu: ce.means[i], Sigma: math.Sqrt(variance)}
		u := ce.rng.Float64()
		for u == 0 {
			u = ce.rng.Float64()
		}
		w[i] = dist.Quantile(u)
	}
	return w
}

func (ce *CrossEntropy) evaluate(ctx context.Context, pop []equity.Weights) ([]Candidate, error) {
	results := make([]Candidate, len(pop))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, ce.settings.Threads))
	for i, w := range pop {
		i, w := i, w
		g.Go(func() error {
			games, err := automatic.PlayGames(ctx, ce.cfg, w, ce.seeds, 1, nil)
			if err != nil {
				return err
			}
			results[i] = Candidate{
				Weights: w.Slice(),
				Pieces: lo.MeanBy(games, func(r automatic.GameResult) float64 {
					return float64(r.Pieces)
				}),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Step runs one iteration and refits the distribution to the elite.
func (ce *CrossEntropy) Step(ctx context.Context) (*Iteration, error) {
	ce.iteration++
	noise := ce.noise()
	pop := make([]equity.Weights, ce.settings.Population)
	for i := range pop {
		pop[i] = ce.sample(noise)
	}
	results, err := ce.evaluate(ctx, pop)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Pieces > results[j].Pieces
	})
	cutoff := max(1, int(ce.settings.Rho*float64(len(results))))
	elite := results[:cutoff]

	for i := range ce.means {
		col := lo.Map(elite, func(c Candidate, _ int) float64 { return c.Weights[i] })
		ce.means[i], ce.variances[i] = stat.PopMeanVariance(col, nil)
	}
	if results[0].Pieces > ce.best.Pieces || ce.best.Weights == nil {
		ce.best = results[0]
	}

	it := &Iteration{
		Iteration:  ce.iteration,
		Noise:      noise,
		Means:      ce.means.Slice(),
		Variances:  ce.variances.Slice(),
		Elite:      elite,
		EliteMean:  lo.MeanBy(elite, func(c Candidate) float64 { return c.Pieces }),
		BestSingle: ce.best,
	}
	log.Info().Int("iteration", it.Iteration).Float64("elite-mean", it.EliteMean).
		Float64("best", ce.best.Pieces).Str("means", ce.means.String()).Msg("tune-iteration")
	if ce.out != nil {
		if err := ce.out.Encode(it); err != nil {
			return it, fmt.Errorf("writing iteration %d: %w", it.Iteration, err)
		}
	}
	return it, nil
}

// Run performs the configured number of iterations and returns the final
// means.
func (ce *CrossEntropy) Run(ctx context.Context) (equity.Weights, error) {
	for i := 0; i < ce.settings.Iterations; i++ {
		if _, err := ce.Step(ctx); err != nil {
			return ce.means, err
		}
	}
	if ce.out != nil {
		if err := ce.out.Close(); err != nil {
			return ce.means, err
		}
	}
	return ce.means, nil
}
