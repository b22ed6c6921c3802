// internal/defs/perks.go
package defs

// PerkKind identifies a perk.
type PerkKind int

const (
	PerkLongerSword PerkKind = iota
	PerkWiderSwordSwing
	PerkFasterSwordSwing
	PerkShorterAttackCooldown
	PerkFasterMovement
	PerkHigherMaxHealth
	PerkHeal
	PerkUnlockGrenade
	PerkLargerGrenadeExplosion
	PerkShorterGrenadeCooldown
	PerkUnlockTeleport
	PerkUnlockTeleportExplosion
	PerkLargerTeleportExplosion
	PerkShorterTeleportCooldown
	PerkSlowerEnemies
	PerkRetaliate
	PerkUnlockHealthRegen
	PerkFasterHealthRegen

	perkCount
)

// AllPerks lists every perk in declaration order.
var AllPerks = func() []PerkKind {
	all := make([]PerkKind, 0, perkCount)
	for k := PerkKind(0); k < perkCount; k++ {
		all = append(all, k)
	}
	return all
}()

// PerkInfo is the user-facing text of a perk.
type PerkInfo struct {
	Kind        PerkKind
	Name        string
	Description string
}

var PerkLibrary = map[PerkKind]PerkInfo{
	PerkLongerSword:             {PerkLongerSword, "Longer Sword", "Sword reach +10%."},
	PerkWiderSwordSwing:         {PerkWiderSwordSwing, "Wider Swing", "Sword swing arc +5%."},
	PerkFasterSwordSwing:        {PerkFasterSwordSwing, "Faster Swing", "Sword swings 10% faster."},
	PerkShorterAttackCooldown:   {PerkShorterAttackCooldown, "Quick Recovery", "Attack cooldown -10%."},
	PerkFasterMovement:          {PerkFasterMovement, "Swift Feet", "Movement speed +10%."},
	PerkHigherMaxHealth:         {PerkHigherMaxHealth, "Vitality", "Max health +10%."},
	PerkHeal:                    {PerkHeal, "Heal", "Restore all health."},
	PerkUnlockGrenade:           {PerkUnlockGrenade, "Grenade", "Right click throws a grenade. Replaces teleport."},
	PerkLargerGrenadeExplosion:  {PerkLargerGrenadeExplosion, "Bigger Grenades", "Grenade explosion radius +20%."},
	PerkShorterGrenadeCooldown:  {PerkShorterGrenadeCooldown, "Grenade Belt", "Grenade cooldown -10%."},
	PerkUnlockTeleport:          {PerkUnlockTeleport, "Teleport", "Right click teleports to the cursor. Replaces grenade."},
	PerkUnlockTeleportExplosion: {PerkUnlockTeleportExplosion, "Explosive Arrival", "Teleporting causes an explosion."},
	PerkLargerTeleportExplosion: {PerkLargerTeleportExplosion, "Bigger Arrival", "Teleport explosion radius +20%."},
	PerkShorterTeleportCooldown: {PerkShorterTeleportCooldown, "Blink Training", "Teleport cooldown -10%."},
	PerkSlowerEnemies:           {PerkSlowerEnemies, "Molasses", "Enemies move 10% slower."},
	PerkRetaliate:               {PerkRetaliate, "Retaliate", "Enemies that touch you die."},
	PerkUnlockHealthRegen:       {PerkUnlockHealthRegen, "Regeneration", "Slowly regain health."},
	PerkFasterHealthRegen:       {PerkFasterHealthRegen, "Faster Regeneration", "Health regenerates 10% faster."},
}

func (k PerkKind) String() string {
	if info, ok := PerkLibrary[k]; ok {
		return info.Name
	}
	return "unknown perk"
}
