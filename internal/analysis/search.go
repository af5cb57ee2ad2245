package analysis

import (
	"context"
	"errors"
	"math"

	"github.com/san-kum/softviz/internal/transform"
)

var ErrNoCandidates = errors.New("analysis: no temperatures to search")

// FitTemperature searches temps for the softargmax temperature whose
// expectation lies closest to target. Ties keep the earlier temperature.
func FitTemperature(ctx context.Context, values transform.Vector, cfg transform.Config, temps []float64, target float64) (SweepPoint, error) {
	if len(temps) == 0 {
		return SweepPoint{}, ErrNoCandidates
	}
	points, err := SweepParallel(ctx, values, cfg, temps, 0)
	if err != nil {
		return SweepPoint{}, err
	}

	best := math.Inf(1)
	var bestPoint SweepPoint
	for _, p := range points {
		if d := math.Abs(p.Expectation - target); d < best {
			best, bestPoint = d, p
		}
	}
	return bestPoint, nil
}
