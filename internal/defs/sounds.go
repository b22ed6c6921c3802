// internal/defs/sounds.go
package defs

// Cue names a sound effect the core asks the audio collaborator to play.
type Cue string

const (
	CueSwing     Cue = "swing"
	CueHit       Cue = "hit"
	CuePlayerHit Cue = "player_hit"
	CueLevelUp   Cue = "level_up"
	CueExplosion Cue = "explosion"
	CueTeleport  Cue = "teleport"

	// CueMusic is the background loop. It is started and stopped, never
	// played as a one-shot.
	CueMusic Cue = "music"
)

// AllCues are the one-shot effects.
var AllCues = []Cue{CueSwing, CueHit, CuePlayerHit, CueLevelUp, CueExplosion, CueTeleport}

// PreloadCues is everything the loading screen renders ahead of time.
var PreloadCues = append(append([]Cue{}, AllCues...), CueMusic)
