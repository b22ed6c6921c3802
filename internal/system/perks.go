// internal/system/perks.go
package system

import (
	"go-too-many/internal/component"
	"go-too-many/internal/defs"
	"go-too-many/internal/logger"
	"go-too-many/internal/utils"
)

const (
	minEnemySpeedMultiplier = 0.1
)

// PerkTargets are the values a perk may change.
type PerkTargets struct {
	Loadout   *component.Loadout
	Animation *component.AnimationParams
	Enemies   *component.EnemyModifiers
}

type perkRule struct {
	eligible func(owned component.PerkSet) bool
	// apply returns false when the perk had nothing to act on.
	apply func(t PerkTargets) bool
}

// PerkCatalog knows every perk's eligibility rule and effect.
type PerkCatalog struct {
	rules map[defs.PerkKind]perkRule
}

func always(component.PerkSet) bool { return true }

func notOwned(k defs.PerkKind) func(component.PerkSet) bool {
	return func(owned component.PerkSet) bool { return !owned.Has(k) }
}

func owns(k defs.PerkKind) func(component.PerkSet) bool {
	return func(owned component.PerkSet) bool { return owned.Has(k) }
}

// Perks that only make sense alongside a given secondary action.
var (
	grenadePerks  = []defs.PerkKind{defs.PerkUnlockGrenade, defs.PerkLargerGrenadeExplosion, defs.PerkShorterGrenadeCooldown}
	teleportPerks = []defs.PerkKind{defs.PerkUnlockTeleport, defs.PerkUnlockTeleportExplosion, defs.PerkLargerTeleportExplosion, defs.PerkShorterTeleportCooldown}
)

func NewPerkCatalog() *PerkCatalog {
	c := &PerkCatalog{rules: map[defs.PerkKind]perkRule{
		defs.PerkLongerSword: {always, func(t PerkTargets) bool {
			t.Loadout.Sword.Length *= 1.1
			return true
		}},
		defs.PerkWiderSwordSwing: {always, func(t PerkTargets) bool {
			t.Loadout.Sword.SwingAngle *= 1.05
			return true
		}},
		defs.PerkFasterSwordSwing: {always, func(t PerkTargets) bool {
			t.Animation.SwingDuration *= 0.9
			return true
		}},
		defs.PerkShorterAttackCooldown: {always, func(t PerkTargets) bool {
			t.Loadout.AttackCooldown *= 0.9
			return true
		}},
		defs.PerkFasterMovement: {always, func(t PerkTargets) bool {
			t.Loadout.MaxSpeed *= 1.1
			return true
		}},
		defs.PerkHigherMaxHealth: {always, func(t PerkTargets) bool {
			t.Loadout.Health.ScaleMax(1.1)
			return true
		}},
		defs.PerkHeal: {always, func(t PerkTargets) bool {
			t.Loadout.Health.Fill()
			return true
		}},
		defs.PerkUnlockGrenade: {notOwned(defs.PerkUnlockGrenade), func(t PerkTargets) bool {
			t.Loadout.Secondary = component.NewGrenadeAction(t.Loadout.Tuning().Grenade)
			for _, k := range teleportPerks {
				t.Loadout.Perks.Remove(k)
			}
			return true
		}},
		defs.PerkLargerGrenadeExplosion: {owns(defs.PerkUnlockGrenade), func(t PerkTargets) bool {
			g, ok := t.Loadout.Grenade()
			if !ok {
				return false
			}
			g.Radius *= 1.2
			return true
		}},
		defs.PerkShorterGrenadeCooldown: {owns(defs.PerkUnlockGrenade), func(t PerkTargets) bool {
			g, ok := t.Loadout.Grenade()
			if !ok {
				return false
			}
			g.CooldownDuration *= 0.9
			return true
		}},
		defs.PerkUnlockTeleport: {notOwned(defs.PerkUnlockTeleport), func(t PerkTargets) bool {
			t.Loadout.Secondary = component.NewTeleportAction(t.Loadout.Tuning().Teleport)
			for _, k := range grenadePerks {
				t.Loadout.Perks.Remove(k)
			}
			return true
		}},
		defs.PerkUnlockTeleportExplosion: {
			func(owned component.PerkSet) bool {
				return owned.Has(defs.PerkUnlockTeleport) && !owned.Has(defs.PerkUnlockTeleportExplosion)
			},
			func(t PerkTargets) bool {
				tp, ok := t.Loadout.Teleport()
				if !ok {
					return false
				}
				tp.Explodes = true
				return true
			},
		},
		defs.PerkLargerTeleportExplosion: {owns(defs.PerkUnlockTeleportExplosion), func(t PerkTargets) bool {
			tp, ok := t.Loadout.Teleport()
			if !ok {
				return false
			}
			tp.Radius *= 1.2
			return true
		}},
		defs.PerkShorterTeleportCooldown: {owns(defs.PerkUnlockTeleport), func(t PerkTargets) bool {
			tp, ok := t.Loadout.Teleport()
			if !ok {
				return false
			}
			tp.CooldownDuration *= 0.9
			return true
		}},
		defs.PerkSlowerEnemies: {always, func(t PerkTargets) bool {
			t.Enemies.SpeedMultiplier *= 0.9
			if t.Enemies.SpeedMultiplier < minEnemySpeedMultiplier {
				t.Enemies.SpeedMultiplier = minEnemySpeedMultiplier
			}
			return true
		}},
		defs.PerkRetaliate: {notOwned(defs.PerkRetaliate), func(t PerkTargets) bool {
			t.Loadout.Retaliate = true
			return true
		}},
		defs.PerkUnlockHealthRegen: {notOwned(defs.PerkUnlockHealthRegen), func(t PerkTargets) bool {
			t.Loadout.Regen.Enabled = true
			t.Loadout.Regen.Timer.Start()
			return true
		}},
		defs.PerkFasterHealthRegen: {owns(defs.PerkUnlockHealthRegen), func(t PerkTargets) bool {
			if !t.Loadout.Regen.Enabled {
				return false
			}
			t.Loadout.Regen.Interval *= 0.9
			t.Loadout.Regen.Timer.SetDuration(t.Loadout.Regen.Interval)
			return true
		}},
	}}
	return c
}

// EligiblePerks returns the perks that may be offered, in declaration order.
func (c *PerkCatalog) EligiblePerks(owned component.PerkSet) []defs.PerkKind {
	out := make([]defs.PerkKind, 0, len(defs.AllPerks))
	for _, k := range defs.AllPerks {
		rule, ok := c.rules[k]
		if ok && rule.eligible(owned) {
			out = append(out, k)
		}
	}
	return out
}

// ChooseRandom picks up to amount distinct eligible perks. With fewer
// eligible perks than asked for, all of them are returned.
func (c *PerkCatalog) ChooseRandom(amount int, owned component.PerkSet, rng *utils.PRNGService) []defs.PerkKind {
	eligible := c.EligiblePerks(owned)
	picked := rng.Sample(len(eligible), amount)
	out := make([]defs.PerkKind, 0, len(picked))
	for _, idx := range picked {
		out = append(out, eligible[idx])
	}
	return out
}

// Apply runs the perk's effect and records ownership. A perk whose effect
// found nothing to act on is a no-op: it is logged and not recorded.
func (c *PerkCatalog) Apply(kind defs.PerkKind, t PerkTargets) bool {
	rule, ok := c.rules[kind]
	if !ok {
		logger.Warnf("perk %d has no rule", kind)
		return false
	}
	if !rule.apply(t) {
		logger.Warnf("perk %q found nothing to act on (secondary slot %s), ignored", kind, t.Loadout.SecondaryKind())
		return false
	}
	t.Loadout.Perks.Add(kind)
	return true
}

func (c *PerkCatalog) Info(kind defs.PerkKind) defs.PerkInfo {
	return defs.PerkLibrary[kind]
}

// Infos maps kinds to their display text.
func (c *PerkCatalog) Infos(kinds []defs.PerkKind) []defs.PerkInfo {
	out := make([]defs.PerkInfo, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, c.Info(k))
	}
	return out
}
