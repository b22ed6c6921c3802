package system

import (
	"testing"

	"go-too-many/internal/component"
	"go-too-many/internal/config"
	"go-too-many/internal/defs"
	"go-too-many/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTargets() PerkTargets {
	tun := config.Default()
	return PerkTargets{
		Loadout:   component.NewLoadout(tun),
		Animation: component.NewAnimationParams(tun),
		Enemies:   component.NewEnemyModifiers(),
	}
}

func TestSlotPerksRequireTheirUnlock(t *testing.T) {
	c := NewPerkCatalog()
	eligible := c.EligiblePerks(component.PerkSet{})
	assert.NotContains(t, eligible, defs.PerkLargerGrenadeExplosion)
	assert.NotContains(t, eligible, defs.PerkShorterGrenadeCooldown)
	assert.NotContains(t, eligible, defs.PerkUnlockTeleportExplosion)
	assert.NotContains(t, eligible, defs.PerkLargerTeleportExplosion)
	assert.NotContains(t, eligible, defs.PerkFasterHealthRegen)
	assert.Contains(t, eligible, defs.PerkShorterAttackCooldown)

	owned := component.PerkSet{}
	owned.Add(defs.PerkUnlockGrenade)
	eligible = c.EligiblePerks(owned)
	assert.Contains(t, eligible, defs.PerkLargerGrenadeExplosion)
	assert.NotContains(t, eligible, defs.PerkUnlockGrenade)
}

func TestOneShotPerksDisappearOnceOwned(t *testing.T) {
	c := NewPerkCatalog()
	targets := newTargets()

	for _, k := range []defs.PerkKind{defs.PerkRetaliate, defs.PerkUnlockHealthRegen} {
		require.True(t, c.Apply(k, targets))
		assert.NotContains(t, c.EligiblePerks(targets.Loadout.Perks), k)
	}
	assert.True(t, targets.Loadout.Retaliate)
	assert.True(t, targets.Loadout.Regen.Enabled)

	require.True(t, c.Apply(defs.PerkLongerSword, targets))
	assert.Contains(t, c.EligiblePerks(targets.Loadout.Perks), defs.PerkLongerSword, "repeatable perks stay offered")
}

func TestGrenadeThenTeleportLeavesOnlyTeleport(t *testing.T) {
	c := NewPerkCatalog()
	targets := newTargets()

	require.True(t, c.Apply(defs.PerkUnlockGrenade, targets))
	require.True(t, c.Apply(defs.PerkLargerGrenadeExplosion, targets))
	require.True(t, c.Apply(defs.PerkUnlockTeleport, targets))

	l := targets.Loadout
	assert.Equal(t, component.SecondaryTeleport, l.SecondaryKind())
	_, hasGrenade := l.Grenade()
	assert.False(t, hasGrenade)
	assert.False(t, l.Perks.Has(defs.PerkUnlockGrenade))
	assert.False(t, l.Perks.Has(defs.PerkLargerGrenadeExplosion))

	eligible := c.EligiblePerks(l.Perks)
	assert.NotContains(t, eligible, defs.PerkLargerGrenadeExplosion)
	assert.Contains(t, eligible, defs.PerkUnlockGrenade)
	assert.Contains(t, eligible, defs.PerkUnlockTeleportExplosion)
}

func TestUnlockReplacesCooldownState(t *testing.T) {
	c := NewPerkCatalog()
	targets := newTargets()
	require.True(t, c.Apply(defs.PerkUnlockTeleport, targets))
	tp, _ := targets.Loadout.Teleport()
	tp.Timer.Start()
	require.False(t, tp.Timer.Ready())

	require.True(t, c.Apply(defs.PerkUnlockGrenade, targets))
	g, ok := targets.Loadout.Grenade()
	require.True(t, ok)
	assert.True(t, g.Timer.Ready(), "new slot starts with a fresh cooldown")
}

func TestHigherMaxHealthKeepsFraction(t *testing.T) {
	c := NewPerkCatalog()
	targets := newTargets()
	targets.Loadout.Health.Max = 100
	targets.Loadout.Health.Current = 50

	require.True(t, c.Apply(defs.PerkHigherMaxHealth, targets))
	assert.Equal(t, uint64(110), targets.Loadout.Health.Max)
	assert.Equal(t, uint64(55), targets.Loadout.Health.Current)
}

func TestScalingPerks(t *testing.T) {
	c := NewPerkCatalog()
	targets := newTargets()
	l := targets.Loadout
	length, angle, cd, speed := l.Sword.Length, l.Sword.SwingAngle, l.AttackCooldown, l.MaxSpeed
	swing := targets.Animation.SwingDuration

	for _, k := range []defs.PerkKind{defs.PerkLongerSword, defs.PerkWiderSwordSwing,
		defs.PerkShorterAttackCooldown, defs.PerkFasterMovement, defs.PerkFasterSwordSwing} {
		require.True(t, c.Apply(k, targets))
	}
	assert.InDelta(t, length*1.1, l.Sword.Length, 1e-9)
	assert.InDelta(t, angle*1.05, l.Sword.SwingAngle, 1e-9)
	assert.InDelta(t, cd*0.9, l.AttackCooldown, 1e-9)
	assert.InDelta(t, speed*1.1, l.MaxSpeed, 1e-9)
	assert.InDelta(t, swing*0.9, targets.Animation.SwingDuration, 1e-9)
}

func TestSlowerEnemiesIsFloored(t *testing.T) {
	c := NewPerkCatalog()
	targets := newTargets()
	for range 100 {
		c.Apply(defs.PerkSlowerEnemies, targets)
	}
	assert.InDelta(t, 0.1, targets.Enemies.SpeedMultiplier, 1e-12)
}

func TestSlotMismatchIsNoOp(t *testing.T) {
	c := NewPerkCatalog()
	targets := newTargets()
	// ownership without the matching slot, as a broken predicate would allow
	targets.Loadout.Perks.Add(defs.PerkUnlockGrenade)

	assert.False(t, c.Apply(defs.PerkLargerGrenadeExplosion, targets))
	assert.False(t, targets.Loadout.Perks.Has(defs.PerkLargerGrenadeExplosion))
	assert.Nil(t, targets.Loadout.Secondary)
}

func TestTeleportExplosionChain(t *testing.T) {
	c := NewPerkCatalog()
	targets := newTargets()
	require.True(t, c.Apply(defs.PerkUnlockTeleport, targets))
	require.True(t, c.Apply(defs.PerkUnlockTeleportExplosion, targets))
	assert.NotContains(t, c.EligiblePerks(targets.Loadout.Perks), defs.PerkUnlockTeleportExplosion)

	tp, _ := targets.Loadout.Teleport()
	r := tp.Radius
	require.True(t, c.Apply(defs.PerkLargerTeleportExplosion, targets))
	assert.True(t, tp.Explodes)
	assert.InDelta(t, r*1.2, tp.Radius, 1e-9)
}

func TestChooseRandomIsDistinctAndBounded(t *testing.T) {
	c := NewPerkCatalog()
	rng := utils.NewPRNGService(8)
	owned := component.PerkSet{}

	for range 50 {
		got := c.ChooseRandom(3, owned, rng)
		require.Len(t, got, 3)
		seen := map[defs.PerkKind]bool{}
		for _, k := range got {
			require.False(t, seen[k])
			seen[k] = true
		}
	}

	all := c.ChooseRandom(100, owned, rng)
	assert.ElementsMatch(t, c.EligiblePerks(owned), all)
}
