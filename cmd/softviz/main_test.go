package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/softviz/internal/config"
	"github.com/san-kum/softviz/internal/transform"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetArgs(append(args, "--log-level", "error"))
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.Execute()
}

func TestInitConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "in.yaml")
	if err := os.WriteFile(cfgPath, []byte("temperature: 2\nvalues: [1, 2]\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		args     []string
		wantTemp float64
		wantAlg  string
		wantN    int
	}{
		{"defaults", nil, 1, "softargmax", 6},
		{"preset", []string{"--preset", "flat"}, 10, "softargmax", 6},
		{"file over preset", []string{"--preset", "flat", "--config", cfgPath}, 2, "softargmax", 2},
		{"flag over file", []string{"--config", cfgPath, "--temperature", "0.5", "--algorithm", "softmax"}, 0.5, "softmax", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "out.yaml")
			if err := execute(t, append([]string{"init-config", out}, tt.args...)...); err != nil {
				t.Fatalf("init-config: %v", err)
			}
			got, err := config.Load(out)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if got.Temperature != tt.wantTemp || got.Algorithm != tt.wantAlg || len(got.Values) != tt.wantN {
				t.Errorf("got temp=%v alg=%s n=%d", got.Temperature, got.Algorithm, len(got.Values))
			}
		})
	}
}

func TestUnknownPreset(t *testing.T) {
	err := execute(t, "compute", "--preset", "nope", "1,2")
	if err == nil || !strings.Contains(err.Error(), "unknown preset") {
		t.Errorf("expected unknown preset error, got %v", err)
	}
}

func TestExportCSV(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.csv")
	if err := execute(t, "export-csv", "1", "2", "3", "-o", out); err != nil {
		t.Fatalf("export-csv: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 || lines[0] != "index,value,exponent,probability,output" {
		t.Errorf("unexpected csv:\n%s", data)
	}
}

func TestExportRejectsMalformedValues(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.json")
	err := execute(t, "export-json", "1,x", "-o", out)
	if !errors.Is(err, transform.ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Error("nothing should be written on error")
	}
}

func TestExportRejectsInvalidTemperature(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.svg")
	err := execute(t, "export-svg", "--temperature", "0", "1,2", "-o", out)
	if !errors.Is(err, transform.ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Error("nothing should be written on error")
	}
}

func TestExportSVG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.svg")
	if err := execute(t, "export-svg", "0.2,0.4", "-o", out); err != nil {
		t.Fatalf("export-svg: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(string(data), "</svg>") {
		t.Error("svg not terminated")
	}
}

func TestComputeEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
	err := execute(t, "compute", "--file", path)
	if !errors.Is(err, transform.ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestAnimateRejectsNaNStep(t *testing.T) {
	err := execute(t, "animate", "--step", "NaN", "1,2")
	if !errors.Is(err, transform.ErrInvalidConfiguration) {
		t.Errorf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestExportSVGBraille(t *testing.T) {
	out := filepath.Join(t.TempDir(), "canvas.svg")
	if err := execute(t, "export-svg", "--braille", "0.2,0.4,0.6", "-o", out); err != nil {
		t.Fatalf("export-svg --braille: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	svg := string(data)
	if !strings.Contains(svg, "<circle") || strings.Contains(svg, "<rect x=") {
		t.Errorf("expected a dot rendering of the canvas:\n%.200s", svg)
	}
}
