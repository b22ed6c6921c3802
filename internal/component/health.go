// internal/component/health.go
package component

import "math"

// Health - здоровье игрока. Current никогда не выходит за [0, Max].
type Health struct {
	Current uint64
	Max     uint64
}

func NewHealth(max uint64) Health {
	return Health{Current: max, Max: max}
}

// Damage subtracts n, stopping at zero.
func (h *Health) Damage(n uint64) {
	if n >= h.Current {
		h.Current = 0
		return
	}
	h.Current -= n
}

// Heal adds n, stopping at Max.
func (h *Health) Heal(n uint64) {
	if n >= h.Max-h.Current {
		h.Current = h.Max
		return
	}
	h.Current += n
}

func (h *Health) Fill() { h.Current = h.Max }

// ScaleMax multiplies Max by factor and rescales Current so the health
// fraction stays the same. Both values are rounded to the nearest integer.
func (h *Health) ScaleMax(factor float64) {
	if h.Max == 0 {
		return
	}
	fraction := h.Fraction()
	newMax := math.Round(float64(h.Max) * factor)
	if newMax < 1 {
		newMax = 1
	}
	h.Max = uint64(newMax)
	h.Current = uint64(math.Round(float64(h.Max) * fraction))
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

func (h Health) Fraction() float64 {
	if h.Max == 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}

func (h Health) IsDead() bool { return h.Current == 0 }
