package analysis

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/softviz/internal/transform"
)

// SweepPoint is the softargmax outcome for a single temperature.
type SweepPoint struct {
	Temperature float64
	Expectation float64
	ArgMax      int
	Entropy     float64
	Output      transform.Vector
}

// Temperatures returns a linear grid from min to max inclusive.
func Temperatures(min, max float64, steps int) []float64 {
	if steps <= 1 {
		steps = 2 // Prevent division by zero
	}
	grid := make([]float64, steps)
	floats.Span(grid, min, max)
	return grid
}

// Sweep recomputes softargmax for every temperature in temps. The algorithm
// in cfg is ignored; temperature is the swept parameter. The first invalid
// temperature aborts the sweep.
func Sweep(values transform.Vector, cfg transform.Config, temps []float64) ([]SweepPoint, error) {
	points := make([]SweepPoint, 0, len(temps))
	for _, temp := range temps {
		run := transform.Config{
			Algorithm:   transform.Softargmax,
			Temperature: temp,
			SubtractMax: cfg.SubtractMax,
		}
		res, err := transform.Compute(values, run)
		if err != nil {
			return nil, err
		}
		points = append(points, SweepPoint{
			Temperature: temp,
			Expectation: res.Expectation(),
			ArgMax:      res.ArgMax(),
			Entropy:     Entropy(res.Probabilities),
			Output:      res.Output,
		})
	}
	return points, nil
}

// Expectations extracts the expectation series from a sweep.
func Expectations(points []SweepPoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Expectation
	}
	return out
}

// Entropy returns the Shannon entropy of p in nats, treating 0·log 0 as 0.
func Entropy(p transform.Vector) float64 {
	h := 0.0
	for _, x := range p {
		if x > 0 {
			h -= x * math.Log(x)
		}
	}
	return h
}

// MaxIndex returns the index of the largest value, or -1 for an empty vector.
func MaxIndex(v transform.Vector) int {
	if len(v) == 0 {
		return -1
	}
	return floats.MaxIdx(v)
}
