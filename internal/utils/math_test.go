package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, 0, NormalizeAngle(2*math.Pi), 1e-9)
	assert.InDelta(t, math.Pi/2, NormalizeAngle(math.Pi/2+4*math.Pi), 1e-9)
}

func TestLerpAngleTakesShortestArc(t *testing.T) {
	got := LerpAngle(math.Pi-0.1, -math.Pi+0.1, 0.5)
	assert.InDelta(t, math.Pi, math.Abs(got), 1e-9)
}

func TestRoundUint64(t *testing.T) {
	assert.Equal(t, uint64(110), RoundUint64(100*1.1))
	assert.Equal(t, uint64(0), RoundUint64(-3))
	assert.Equal(t, uint64(55), RoundUint64(110*0.5))
}
