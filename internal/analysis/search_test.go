package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/san-kum/softviz/internal/transform"
)

func TestSweepParallelMatchesSweep(t *testing.T) {
	v := transform.Vector{0.2, 0.4, 0.6, 0.5, 0.3, 0.7}
	temps := Temperatures(0.05, 5, 37)

	want, err := Sweep(v, transform.DefaultConfig(), temps)
	if err != nil {
		t.Fatal(err)
	}
	for _, workers := range []int{0, 1, 4, 100} {
		got, err := SweepParallel(context.Background(), v, transform.DefaultConfig(), temps, workers)
		if err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}
		if len(got) != len(want) {
			t.Fatalf("workers=%d: %d points, want %d", workers, len(got), len(want))
		}
		for i := range want {
			if got[i].Temperature != want[i].Temperature || got[i].Expectation != want[i].Expectation {
				t.Errorf("workers=%d point %d = %+v, want %+v", workers, i, got[i], want[i])
			}
		}
	}
}

func TestSweepParallelErrors(t *testing.T) {
	v := transform.Vector{1, 2}
	_, err := SweepParallel(context.Background(), v, transform.DefaultConfig(), []float64{1, 0, 2}, 2)
	if !errors.Is(err, transform.ErrInvalidConfiguration) {
		t.Errorf("expected ErrInvalidConfiguration, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := SweepParallel(ctx, v, transform.DefaultConfig(), []float64{1, 2}, 1); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}

	points, err := SweepParallel(context.Background(), v, transform.DefaultConfig(), nil, 0)
	if err != nil || len(points) != 0 {
		t.Errorf("empty sweep = %v, %v", points, err)
	}
}

func TestFitTemperature(t *testing.T) {
	v := transform.Vector{0, 1}
	temps := []float64{0.01, 1, 100}

	// near zero temperature the expectation approaches max(v) = 1
	p, err := FitTemperature(context.Background(), v, transform.DefaultConfig(), temps, 1)
	if err != nil {
		t.Fatal(err)
	}
	if p.Temperature != 0.01 {
		t.Errorf("temperature = %v, want 0.01", p.Temperature)
	}

	// very hot: both weights near 1/2, expectation near 0.5
	p, err = FitTemperature(context.Background(), v, transform.DefaultConfig(), temps, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if p.Temperature != 100 {
		t.Errorf("temperature = %v, want 100", p.Temperature)
	}

	if _, err := FitTemperature(context.Background(), v, transform.DefaultConfig(), nil, 1); !errors.Is(err, ErrNoCandidates) {
		t.Errorf("expected ErrNoCandidates, got %v", err)
	}
}
