package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/softviz/internal/transform"
)

func TestRenderFormula(t *testing.T) {
	cfg := transform.DefaultConfig()
	cfg.Temperature = 0.5

	out, err := RenderFormula(cfg, "notty", 80)
	if err != nil {
		t.Fatalf("RenderFormula: %v", err)
	}
	for _, want := range []string{"Softargmax", "p_i", "0.5"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	cfg.Algorithm = transform.Softmax
	out, err = RenderFormula(cfg, "notty", 0)
	if err != nil {
		t.Fatalf("RenderFormula: %v", err)
	}
	if !strings.Contains(out, "Softmax") {
		t.Errorf("softmax output missing title:\n%s", out)
	}
}

func TestRenderFormulaUnknownStyle(t *testing.T) {
	if _, err := RenderFormula(transform.DefaultConfig(), "no-such-style", 80); err == nil {
		t.Error("expected error for unknown style")
	}
}
