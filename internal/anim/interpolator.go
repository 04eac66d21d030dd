// Package anim evaluates the spin animation applied to a displayed shape.
package anim

import (
	"fmt"
	"strings"
)

// Interpolator maps linear progress in [0,1] to eased progress.
type Interpolator int

// Interpolators.
const (
	// EaseBoth accelerates over the first fifth of a cycle and decelerates
	// over the last fifth.
	EaseBoth Interpolator = iota
	Linear
)

// String returns the config name of the interpolator.
func (i Interpolator) String() string {
	switch i {
	case EaseBoth:
		return "ease_both"
	case Linear:
		return "linear"
	default:
		return fmt.Sprintf("Interpolator(%d)", int(i))
	}
}

// ParseInterpolator looks up an interpolator by config name.
func ParseInterpolator(name string) (Interpolator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "ease_both", "ease-both":
		return EaseBoth, nil
	case "linear":
		return Linear, nil
	}
	return EaseBoth, fmt.Errorf("unknown interpolator %q", name)
}

// Apply returns the eased value of t, clamped to [0,1].
func (i Interpolator) Apply(t float64) float64 {
	t = clamp01(t)
	if i != EaseBoth {
		return t
	}
	switch {
	case t < 0.2:
		return clamp01(3.125 * t * t)
	case t > 0.8:
		return clamp01(-3.125*t*t + 6.25*t - 2.125)
	default:
		return clamp01(1.25*t - 0.125)
	}
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
