package equity

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/blockbot/cache"
	"github.com/domino14/blockbot/config"
)

func TestNewWeightsArity(t *testing.T) {
	is := is.New(t)
	for _, vals := range [][]float64{nil, {1}, {1, 2, 3}, {1, 2, 3, 4, 5}} {
		_, err := NewWeights(vals)
		is.True(errors.Is(err, ErrWeightArity))
	}
	w, err := NewWeights([]float64{2, 3, 5, 10})
	is.NoErr(err)
	is.Equal(w, DefaultWeights)
}

func TestParseWeights(t *testing.T) {
	is := is.New(t)
	w, err := ParseWeights("2.0, 3.0,5.0 10")
	is.NoErr(err)
	is.Equal(w, DefaultWeights)

	_, err = ParseWeights("1,2,three,4")
	is.True(err != nil)

	_, err = ParseWeights("1,2,3")
	is.True(errors.Is(err, ErrWeightArity))
}

func TestCombine(t *testing.T) {
	w := Weights{2, 3, 5, 10}
	// 2*4 - 3*2 + 5*1.5 + 10*1
	assert.InDelta(t, 19.5, w.Combine(4, 2, 1.5, 1), 1e-9)
	assert.InDelta(t, 0.0, w.Combine(0, 0, 0, 0), 1e-9)
}

func TestWeightsYAMLRoundTrip(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	is.NoErr(WriteWeights(&buf, TunedWeights, "tuned"))
	w, err := ReadWeights(&buf)
	is.NoErr(err)
	is.Equal(w, TunedWeights)
}

func TestReadWeightsWrongArity(t *testing.T) {
	is := is.New(t)
	_, err := ReadWeights(bytes.NewBufferString("weights: [1, 2]\n"))
	is.True(errors.Is(err, ErrWeightArity))
}

func TestWeightsFromConfig(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	w, err := WeightsFromConfig(&cfg)
	is.NoErr(err)
	is.Equal(w, DefaultWeights)

	path := filepath.Join(t.TempDir(), "w.yaml")
	is.NoErr(SaveWeightsFile(path, TunedWeights, ""))
	cfg.Set(config.ConfigWeightsFile, path)
	w, err = WeightsFromConfig(&cfg)
	is.NoErr(err)
	is.Equal(w, TunedWeights)
}

func TestCachedWeightsFile(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	path := filepath.Join(t.TempDir(), "cached.yaml")
	is.NoErr(SaveWeightsFile(path, TunedWeights, "first"))
	w, err := CachedWeightsFile(&cfg, path)
	is.NoErr(err)
	is.Equal(w, TunedWeights)

	// A rewrite is not seen until the entry is evicted.
	is.NoErr(SaveWeightsFile(path, DefaultWeights, "second"))
	w, err = CachedWeightsFile(&cfg, path)
	is.NoErr(err)
	is.Equal(w, TunedWeights)

	cache.Evict("weights:" + path)
	w, err = CachedWeightsFile(&cfg, path)
	is.NoErr(err)
	is.Equal(w, DefaultWeights)
}
