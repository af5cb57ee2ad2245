package transform

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Compute applies cfg.Algorithm to values. The configuration is validated
// before any exponent is evaluated. An empty vector yields an empty Result
// with Sum 0; use ComputeStrict to reject it instead.
func Compute(values Vector, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !values.IsFinite() {
		return nil, fmt.Errorf("%w: vector contains NaN or Inf", ErrMalformedInput)
	}

	n := len(values)
	res := &Result{
		Exponents:     make(Vector, n),
		Probabilities: make(Vector, n),
		Output:        make(Vector, n),
	}
	if n == 0 {
		return res, nil
	}

	shift := 0.0
	if cfg.SubtractMax {
		shift = values.Max()
	}

	scale := 1.0
	if cfg.Algorithm == Softargmax {
		scale = cfg.Temperature
	}

	for i, x := range values {
		if cfg.Algorithm == Softargmax {
			res.Exponents[i] = math.Exp((x - shift) / scale)
		} else {
			res.Exponents[i] = math.Exp(x - shift)
		}
	}
	res.Sum = floats.Sum(res.Exponents)

	for i, e := range res.Exponents {
		res.Probabilities[i] = e / res.Sum
	}

	switch cfg.Algorithm {
	case Softargmax:
		floats.MulTo(res.Output, res.Probabilities, values)
	default:
		copy(res.Output, res.Probabilities)
	}

	return res, nil
}

// ComputeStrict is Compute with ErrEmptyInput for a zero-length vector.
func ComputeStrict(values Vector, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}
	return Compute(values, cfg)
}
