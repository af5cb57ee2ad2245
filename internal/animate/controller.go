// Package animate morphs one vector into another, one column at a time.
//
// A [Controller] is driven by its caller: every display frame the caller
// invokes [Controller.Tick] and draws [Controller.Current]. The controller
// owns no goroutine or timer and is not safe for concurrent use.
package animate

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/softviz/internal/transform"
)

// DefaultStep advances progress by 1% per tick, so each column takes 100 ticks.
const DefaultStep = 0.01

var ErrLengthMismatch = errors.New("animate: original and target lengths differ")

type Phase int

const (
	Idle Phase = iota
	Interpolating
	Stopped
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Interpolating:
		return "interpolating"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, p float64) float64 {
	return a + (b-a)*p
}

type Controller struct {
	original transform.Vector
	target   transform.Vector
	current  transform.Vector
	index    int
	progress float64
	phase    Phase
}

// New returns an initialized controller in the Idle phase.
func New(original, target transform.Vector) (*Controller, error) {
	c := &Controller{}
	if err := c.Initialize(original, target); err != nil {
		return nil, err
	}
	return c, nil
}

// Initialize replaces the animated pair and returns to Idle, discarding any
// in-flight animation. On error the previous state is kept.
func (c *Controller) Initialize(original, target transform.Vector) error {
	if len(original) != len(target) {
		return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(original), len(target))
	}
	c.original = original.Clone()
	c.target = target.Clone()
	c.current = original.Clone()
	c.index = 0
	c.progress = 0
	c.phase = Idle
	return nil
}

// Sync reinitializes when the lengths of original or target differ from the
// live state. It reports whether a reinitialization happened.
func (c *Controller) Sync(original, target transform.Vector) (bool, error) {
	if len(original) == len(c.original) && len(target) == len(c.target) {
		return false, nil
	}
	if err := c.Initialize(original, target); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Controller) Start() {
	if c.phase == Interpolating {
		return
	}
	c.phase = Interpolating
}

// Stop freezes the current values. It has no effect unless interpolating.
func (c *Controller) Stop() {
	if c.phase != Interpolating {
		return
	}
	c.phase = Stopped
}

// Reset restores the original values exactly and returns to Idle.
func (c *Controller) Reset() {
	c.current = c.original.Clone()
	c.index = 0
	c.progress = 0
	c.phase = Idle
}

// Tick advances the active column by step and returns a copy of the current
// values. Ticks outside the Interpolating phase, with a non-positive or
// non-finite step, or after every column has finished leave the state as is.
// The last write to a column uses the progress from before the increment
// that completes it. Finishing the last column does not stop the controller.
func (c *Controller) Tick(step float64) transform.Vector {
	if c.phase != Interpolating || step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return c.Current()
	}
	i := c.index
	if i >= len(c.original) {
		return c.Current()
	}

	c.current[i] = Lerp(c.original[i], c.target[i], c.progress)
	c.progress = math.Min(c.progress+step, 1)
	if c.progress >= 1 {
		c.index++
		c.progress = 0
	}
	return c.Current()
}

func (c *Controller) Running() bool { return c.phase == Interpolating }

func (c *Controller) Phase() Phase { return c.phase }

func (c *Controller) Index() int { return c.index }

func (c *Controller) Progress() float64 { return c.progress }

func (c *Controller) Len() int { return len(c.original) }

// Done reports whether every column has finished interpolating.
func (c *Controller) Done() bool { return c.index >= len(c.original) }

// Current returns a copy of the displayed values.
func (c *Controller) Current() transform.Vector { return c.current.Clone() }

func (c *Controller) Original() transform.Vector { return c.original.Clone() }

func (c *Controller) Target() transform.Vector { return c.target.Clone() }

// Fraction is the overall completion in [0, 1].
func (c *Controller) Fraction() float64 {
	n := len(c.original)
	if n == 0 {
		return 1
	}
	return (float64(c.index) + c.progress) / float64(n)
}
