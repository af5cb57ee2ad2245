package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/softviz/internal/transform"
)

const (
	DefaultAlgorithm   = "softargmax"
	DefaultTemperature = 1.0
	DefaultStep        = 0.01
	DefaultFPS         = 60
	DefaultTheme       = "cyberpunk"
	DefaultWidth       = 60
	DefaultHeight      = 16
)

// DefaultValues are the six bars shown when nothing else is configured.
var DefaultValues = []float64{0.2, 0.4, 0.6, 0.5, 0.3, 0.7}

type Config struct {
	Values      []float64       `yaml:"values"`
	Algorithm   string          `yaml:"algorithm"`
	Temperature float64         `yaml:"temperature"`
	SubtractMax bool            `yaml:"subtract_max"`
	Animation   AnimationConfig `yaml:"animation"`
	Display     DisplayConfig   `yaml:"display"`
}

type AnimationConfig struct {
	Step      float64 `yaml:"step"`
	FPS       int     `yaml:"fps"`
	Autostart bool    `yaml:"autostart"`
}

type DisplayConfig struct {
	Theme  string `yaml:"theme"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

func DefaultConfig() *Config {
	values := make([]float64, len(DefaultValues))
	copy(values, DefaultValues)
	return &Config{
		Values:      values,
		Algorithm:   DefaultAlgorithm,
		Temperature: DefaultTemperature,
		SubtractMax: true,
		Animation: AnimationConfig{
			Step:      DefaultStep,
			FPS:       DefaultFPS,
			Autostart: true,
		},
		Display: DisplayConfig{
			Theme:  DefaultTheme,
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
	}
}

// Load reads a YAML file on top of DefaultConfig and validates the result.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a YAML file on top of a copy of base. Keys missing from the
// file keep the base values.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Transform converts the file-level settings into an engine configuration.
func (c *Config) Transform() (transform.Config, error) {
	alg, err := transform.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return transform.Config{}, err
	}
	return transform.Config{
		Algorithm:   alg,
		Temperature: c.Temperature,
		SubtractMax: c.SubtractMax,
	}, nil
}

func (c *Config) Vector() transform.Vector {
	return transform.Vector(c.Values).Clone()
}

func (c *Config) Validate() error {
	tc, err := c.Transform()
	if err != nil {
		return err
	}
	if err := tc.Validate(); err != nil {
		return err
	}
	if !transform.Vector(c.Values).IsFinite() {
		return fmt.Errorf("%w: values contain NaN or Inf", transform.ErrMalformedInput)
	}
	if !(c.Animation.Step > 0 && c.Animation.Step <= 1) {
		return &transform.ConfigError{Field: "animation.step", Value: c.Animation.Step, Reason: "must be in (0, 1]"}
	}
	if c.Animation.FPS <= 0 {
		return &transform.ConfigError{Field: "animation.fps", Value: c.Animation.FPS, Reason: "must be positive"}
	}
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return &transform.ConfigError{Field: "display", Value: fmt.Sprintf("%dx%d", c.Display.Width, c.Display.Height), Reason: "must be positive"}
	}
	return nil
}

func (c *Config) Clone() *Config {
	out := *c
	out.Values = append([]float64(nil), c.Values...)
	return &out
}
