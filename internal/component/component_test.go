package component

import (
	"testing"

	"go-too-many/internal/config"
	"go-too-many/internal/defs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthDamageSaturates(t *testing.T) {
	h := NewHealth(10)
	h.Damage(4)
	assert.Equal(t, uint64(6), h.Current)
	h.Damage(100)
	assert.Equal(t, uint64(0), h.Current)
	assert.True(t, h.IsDead())
}

func TestHealthHealClamps(t *testing.T) {
	h := Health{Current: 3, Max: 10}
	h.Heal(5)
	assert.Equal(t, uint64(8), h.Current)
	h.Heal(^uint64(0))
	assert.Equal(t, uint64(10), h.Current)
}

func TestHealthStaysInBoundsUnderMixedOps(t *testing.T) {
	h := NewHealth(50)
	ops := []int64{-7, 3, -60, 100, -1, 20, -49, 49}
	for _, op := range ops {
		if op < 0 {
			h.Damage(uint64(-op))
		} else {
			h.Heal(uint64(op))
		}
		require.LessOrEqual(t, h.Current, h.Max)
	}
}

func TestScaleMaxPreservesFraction(t *testing.T) {
	h := Health{Current: 50, Max: 100}
	h.ScaleMax(1.1)
	assert.Equal(t, uint64(110), h.Max)
	assert.Equal(t, uint64(55), h.Current)
}

func TestLoadoutSecondarySlot(t *testing.T) {
	l := NewLoadout(config.Default())
	assert.Equal(t, SecondaryNone, l.SecondaryKind())

	l.Secondary = NewGrenadeAction(l.Tuning().Grenade)
	g, ok := l.Grenade()
	require.True(t, ok)
	assert.True(t, g.Cooldown().Ready())
	_, ok = l.Teleport()
	assert.False(t, ok)
}

func TestTickRegenHealsOnlyWhenEnabled(t *testing.T) {
	tun := config.Default()
	l := NewLoadout(tun)
	l.Health.Damage(10)
	assert.Zero(t, l.TickRegen(tun.Regen.Interval*3))

	l.Regen.Enabled = true
	healed := l.TickRegen(tun.Regen.Interval * 2)
	assert.Equal(t, tun.Regen.Amount*2, healed)
}

func TestPerkSetClone(t *testing.T) {
	s := PerkSet{}
	s.Add(defs.PerkHeal)
	c := s.Clone()
	c.Remove(defs.PerkHeal)
	assert.True(t, s.Has(defs.PerkHeal))
	assert.False(t, c.Has(defs.PerkHeal))
}
