package equity

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// NumWeights is the arity of the scoring weight vector.
const NumWeights = 4

const (
	HeightIdx = iota
	WhitespaceIdx
	NeighborsIdx
	TetrisesIdx
)

var ErrWeightArity = errors.New("wrong number of scoring weights")

// Weights are the coefficients of the placement heuristic, in order:
// height, whitespace, neighbors, tetrises.
type Weights [NumWeights]float64

var (
	// DefaultWeights are the weights a piece gets when nothing else is
	// configured.
	DefaultWeights = Weights{2.0, 3.0, 5.0, 10.0}
	// TunedWeights came out of a long cross-entropy tuning run.
	TunedWeights = Weights{0.7079009304384309, 3.8753536098633123, 7.015729027236182, 5.720294020792873}
)

// NewWeights validates the arity of vals and returns a weight vector.
func NewWeights(vals []float64) (Weights, error) {
	var w Weights
	if len(vals) != NumWeights {
		return w, fmt.Errorf("%w: expected %d, got %d", ErrWeightArity, NumWeights, len(vals))
	}
	copy(w[:], vals)
	return w, nil
}

// ParseWeights parses a comma- or space-separated list of floats.
func ParseWeights(s string) (Weights, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	vals := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Weights{}, fmt.Errorf("parsing weight %q: %w", f, err)
		}
		vals = append(vals, v)
	}
	return NewWeights(vals)
}

func (w Weights) Height() float64     { return w[HeightIdx] }
func (w Weights) Whitespace() float64 { return w[WhitespaceIdx] }
func (w Weights) Neighbors() float64  { return w[NeighborsIdx] }
func (w Weights) Tetrises() float64   { return w[TetrisesIdx] }

// Slice returns the weights as a freshly allocated slice.
func (w Weights) Slice() []float64 {
	s := make([]float64, NumWeights)
	copy(s, w[:])
	return s
}

// Combine is the weighted sum of the four placement features. Whitespace
// is the only penalty.
func (w Weights) Combine(height, whitespace int, neighbors float64, tetrises int) float64 {
	return w.Height()*float64(height) -
		w.Whitespace()*float64(whitespace) +
		w.Neighbors()*neighbors +
		w.Tetrises()*float64(tetrises)
}

func (w Weights) String() string {
	return strings.Join(lo.Map(w[:], func(v float64, _ int) string {
		return strconv.FormatFloat(v, 'f', 4, 64)
	}), ",")
}
