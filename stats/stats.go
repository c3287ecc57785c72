// Package stats keeps running statistics over batches of games.
package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

const (
	Epsilon = 1e-6
)

var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

func FuzzyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// ZVal returns the two-tailed z-value for a confidence level in percent.
func ZVal(pct float64) float64 {
	return stdNormal.Quantile((1 + pct/100) / 2)
}

// Statistic is a running mean and variance (Welford's algorithm), plus the
// extremes seen so far.
type Statistic struct {
	totalIterations int
	last            float64
	min             float64
	max             float64

	oldM float64
	newM float64
	oldS float64
	newS float64
}

func (s *Statistic) Push(val float64) {
	s.last = val
	s.totalIterations++
	if s.totalIterations == 1 {
		s.oldM = val
		s.newM = val
		s.oldS = 0
		s.min = val
		s.max = val
		return
	}
	s.newM = s.oldM + (val-s.oldM)/float64(s.totalIterations)
	s.newS = s.oldS + (val-s.oldM)*(val-s.newM)
	s.oldM = s.newM
	s.oldS = s.newS
	s.min = math.Min(s.min, val)
	s.max = math.Max(s.max, val)
}

func (s *Statistic) Mean() float64 {
	if s.totalIterations > 0 {
		return s.newM
	}
	return 0.0
}

func (s *Statistic) Variance() float64 {
	if s.totalIterations <= 1 {
		return 0.0
	}
	return s.newS / float64(s.totalIterations-1)
}

func (s *Statistic) Stdev() float64 {
	return math.Sqrt(s.Variance())
}

func (s *Statistic) Last() float64 { return s.last }
func (s *Statistic) Min() float64  { return s.min }
func (s *Statistic) Max() float64  { return s.max }

// StandardError returns the standard error of the mean.
func (s *Statistic) StandardError() float64 {
	if s.totalIterations == 0 {
		return 0.0
	}
	return math.Sqrt(s.Variance() / float64(s.totalIterations))
}

func (s *Statistic) Iterations() int {
	return s.totalIterations
}

// ConfidenceInterval returns the bounds of the two-tailed interval around the
// mean, for a confidence level given in percent.
func (s *Statistic) ConfidenceInterval(pct float64) (float64, float64) {
	half := ZVal(pct) * s.StandardError()
	return s.Mean() - half, s.Mean() + half
}

func (s *Statistic) String() string {
	lo, hi := s.ConfidenceInterval(95)
	return fmt.Sprintf("n=%d mean=%.3f stdev=%.3f min=%.0f max=%.0f 95%%CI=[%.3f, %.3f]",
		s.totalIterations, s.Mean(), s.Stdev(), s.min, s.max, lo, hi)
}
