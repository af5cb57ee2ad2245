package transform

import (
	"fmt"
	"strings"
)

// Formula returns a markdown description of the transform selected by cfg.
func Formula(cfg Config) string {
	shift := "x_i"
	if cfg.SubtractMax {
		shift = "(x_i - max(x))"
	}
	switch cfg.Algorithm {
	case Softargmax:
		return fmt.Sprintf("# Softargmax\n\n"+
			"    p_i = exp(%s / t) / sum_j exp(%s / t)\n"+
			"    S(x_i) = p_i * x_i\n\n"+
			"Temperature **t = %g**. Lower values approach a one-hot arg-max, "+
			"higher values approach a uniform average.\n",
			shift, replaceIndex(shift), cfg.Temperature)
	default:
		return fmt.Sprintf("# Softmax\n\n"+
			"    S(x_i) = exp(%s) / sum_j exp(%s)\n\n"+
			"Outputs are a probability distribution that sums to 1.\n",
			shift, replaceIndex(shift))
	}
}

func replaceIndex(expr string) string {
	return strings.ReplaceAll(expr, "x_i", "x_j")
}
