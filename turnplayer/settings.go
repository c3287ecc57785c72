package turnplayer

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/blockbot/config"
	"github.com/domino14/blockbot/equity"
)

type GameOptions struct {
	Weights    equity.Weights
	weightsSet bool
}

func (opts *GameOptions) SetDefaults(cfg *config.Config) error {
	if opts.weightsSet {
		return nil
	}
	w, err := equity.WeightsFromConfig(cfg)
	if err != nil {
		return err
	}
	opts.Weights = w
	opts.weightsSet = true
	log.Info().Msgf("using weights %v", opts.Weights)
	return nil
}

// SetWeights takes the weights as separate fields or as a single
// comma-separated field.
func (opts *GameOptions) SetWeights(fields []string) error {
	w, err := equity.ParseWeights(strings.Join(fields, " "))
	if err != nil {
		return fmt.Errorf("valid format is 'w0 w1 w2 w3': %w", err)
	}
	opts.Weights = w
	opts.weightsSet = true
	return nil
}

func (opts *GameOptions) UseWeights(w equity.Weights) {
	opts.Weights = w
	opts.weightsSet = true
}
