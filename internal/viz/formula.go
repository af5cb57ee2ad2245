package viz

import (
	"fmt"

	"github.com/charmbracelet/glamour"

	"github.com/san-kum/softviz/internal/transform"
)

// RenderFormula renders the markdown description of cfg for the terminal.
// An empty style picks a light or dark style from the terminal background.
func RenderFormula(cfg transform.Config, style string, width int) (string, error) {
	opts := []glamour.TermRendererOption{}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("formula renderer: %w", err)
	}
	return r.Render(transform.Formula(cfg))
}
