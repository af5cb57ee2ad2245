package transform

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

type Vector []float64

func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	c := make(Vector, len(v))
	copy(c, v)
	return c
}

func (v Vector) IsFinite() bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// Max returns the largest element, or 0 for an empty vector.
func (v Vector) Max() float64 {
	if len(v) == 0 {
		return 0
	}
	return floats.Max(v)
}

func (v Vector) Sum() float64 {
	if len(v) == 0 {
		return 0
	}
	return floats.Sum(v)
}

// Equal reports bit-for-bit equality.
func (v Vector) Equal(other Vector) bool {
	if len(v) != len(other) {
		return false
	}
	for i := range v {
		if math.Float64bits(v[i]) != math.Float64bits(other[i]) {
			return false
		}
	}
	return true
}

type Algorithm int

const (
	Softmax Algorithm = iota
	Softargmax
)

func (a Algorithm) String() string {
	switch a {
	case Softmax:
		return "softmax"
	case Softargmax:
		return "softargmax"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ParseAlgorithm accepts "softmax" or "softargmax", case-insensitively.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "softmax":
		return Softmax, nil
	case "softargmax", "soft-argmax", "soft_argmax":
		return Softargmax, nil
	}
	return 0, &ConfigError{Field: "algorithm", Value: name, Reason: "is not softmax or softargmax"}
}

func (a Algorithm) MarshalText() ([]byte, error) {
	if a != Softmax && a != Softargmax {
		return nil, &ConfigError{Field: "algorithm", Value: int(a), Reason: "is unknown"}
	}
	return []byte(a.String()), nil
}

func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

type Config struct {
	Algorithm   Algorithm
	Temperature float64
	SubtractMax bool
}

func DefaultConfig() Config {
	return Config{
		Algorithm:   Softargmax,
		Temperature: 1.0,
		SubtractMax: true,
	}
}

// Validate checks the configuration. Temperature is only checked for softargmax.
func (c Config) Validate() error {
	switch c.Algorithm {
	case Softmax:
		return nil
	case Softargmax:
		if math.IsNaN(c.Temperature) || math.IsInf(c.Temperature, 0) {
			return &ConfigError{Field: "temperature", Value: c.Temperature, Reason: "must be finite"}
		}
		if c.Temperature <= 0 {
			return &ConfigError{Field: "temperature", Value: c.Temperature, Reason: "must be positive"}
		}
		return nil
	default:
		return &ConfigError{Field: "algorithm", Value: int(c.Algorithm), Reason: "is unknown"}
	}
}

type Result struct {
	Exponents     Vector
	Sum           float64
	Probabilities Vector
	Output        Vector
}

// ArgMax returns the index of the largest probability, or -1 when empty.
func (r *Result) ArgMax() int {
	if r == nil || len(r.Probabilities) == 0 {
		return -1
	}
	return floats.MaxIdx(r.Probabilities)
}

// Expectation is the sum of the outputs. For softargmax this is the
// probability-weighted average of the inputs.
func (r *Result) Expectation() float64 {
	if r == nil {
		return 0
	}
	return r.Output.Sum()
}

func (r *Result) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Output)
}
