// internal/app/collaborators.go
package app

import (
	"go-too-many/internal/defs"
	"go-too-many/internal/physics"
	"go-too-many/internal/system"
)

// Physics is the physics collaborator. physics.World implements it.
type Physics = system.Physics

// Audio plays cues fire-and-forget and runs the background loop while a
// life is in progress. audio.Player implements it.
type Audio interface {
	system.Audio
	StartMusic(volume float64)
	StopMusic()
}

// Display receives everything the HUD shows. ui.HUD implements it.
type Display interface {
	SetLevel(level uint64)
	SetXP(current, needed, previous uint64)
	SetHealth(current, max uint64)
	SetEnemyCount(n int)
	ShowPerkChoices(choices []defs.PerkInfo)
	HidePerkChoices()
}

type nullDisplay struct{}

func (nullDisplay) SetLevel(uint64)                 {}
func (nullDisplay) SetXP(uint64, uint64, uint64)    {}
func (nullDisplay) SetHealth(uint64, uint64)        {}
func (nullDisplay) SetEnemyCount(int)               {}
func (nullDisplay) ShowPerkChoices([]defs.PerkInfo) {}
func (nullDisplay) HidePerkChoices()                {}

type nullAudio struct{}

func (nullAudio) Play(defs.Cue, float64) {}
func (nullAudio) StartMusic(float64)     {}
func (nullAudio) StopMusic()             {}

// NewWorldPhysics is the default physics factory.
func NewWorldPhysics() Physics {
	return physics.NewWorld()
}
