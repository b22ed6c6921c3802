package system

import (
	"testing"

	"go-too-many/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDamageFlashExpires(t *testing.T) {
	ecs := entity.NewECS()
	fx := NewVisualEffectSystem(ecs, 0.2)
	id := ecs.NewEntity()

	fx.Flash(id)
	require.Contains(t, ecs.Flashes, id)
	assert.InDelta(t, 1, ecs.Flashes[id].Fraction(), 1e-12)

	fx.Update(0.15)
	assert.InDelta(t, 0.25, ecs.Flashes[id].Fraction(), 1e-9)

	// a second hit restarts the flash
	fx.Flash(id)
	fx.Update(0.15)
	require.Contains(t, ecs.Flashes, id)

	fx.Update(0.1)
	assert.NotContains(t, ecs.Flashes, id)
}
