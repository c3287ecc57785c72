package equity

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/domino14/blockbot/cache"
	"github.com/domino14/blockbot/config"
)

type weightsDoc struct {
	Weights []float64 `yaml:"weights"`
	Comment string    `yaml:"comment,omitempty"`
}

// ReadWeights decodes a YAML document of the form `weights: [a, b, c, d]`.
func ReadWeights(r io.Reader) (Weights, error) {
	var doc weightsDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return Weights{}, fmt.Errorf("decoding weights: %w", err)
	}
	return NewWeights(doc.Weights)
}

// WriteWeights encodes w as YAML. The comment is optional.
func WriteWeights(wr io.Writer, w Weights, comment string) error {
	enc := yaml.NewEncoder(wr)
	defer enc.Close()
	return enc.Encode(weightsDoc{Weights: w.Slice(), Comment: comment})
}

func LoadWeightsFile(path string) (Weights, error) {
	f, err := os.Open(path)
	if err != nil {
		return Weights{}, err
	}
	defer f.Close()
	w, err := ReadWeights(f)
	if err != nil {
		return Weights{}, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug().Str("path", path).Str("weights", w.String()).Msg("loaded-weights")
	return w, nil
}

func SaveWeightsFile(path string, w Weights, comment string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteWeights(f, w, comment); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// CachedWeightsFile is LoadWeightsFile behind the global object cache, so a
// file shared by many games is read once.
func CachedWeightsFile(cfg *config.Config, path string) (Weights, error) {
	obj, err := cache.Load(cfg, "weights:"+path, func(_ *config.Config, _ string) (any, error) {
		return LoadWeightsFile(path)
	})
	if err != nil {
		return Weights{}, err
	}
	return obj.(Weights), nil
}

// WeightsFromConfig resolves the scoring weights. A weights file takes
// precedence over the inline list.
func WeightsFromConfig(cfg *config.Config) (Weights, error) {
	if path := cfg.GetString(config.ConfigWeightsFile); path != "" {
		return CachedWeightsFile(cfg, path)
	}
	return ParseWeights(cfg.GetString(config.ConfigWeights))
}
