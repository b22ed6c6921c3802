// internal/tween/easing.go
package tween

import "math"

// Ease maps linear progress in [0, 1] to eased progress.
type Ease func(t float64) float64

func Linear(t float64) float64 { return t }

func EaseInQuad(t float64) float64 { return t * t }

func EaseOutQuad(t float64) float64 { return 1 - (1-t)*(1-t) }

func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

func EaseOutCubic(t float64) float64 { return 1 - math.Pow(1-t, 3) }
