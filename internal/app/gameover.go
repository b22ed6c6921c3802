// internal/app/gameover.go
package app

import "fmt"

// LegacyMessage is the epitaph shown for a run that ended at level.
func LegacyMessage(level uint64) string {
	switch {
	case level < 4:
		return "You will be forgotten."
	case level < 10:
		return "Your efforts were not in vain, but you will be forgotten."
	case level < 15:
		return "You will be remembered."
	default:
		return "Your heroic feats will be remembered for all time."
	}
}

// GameOverText is the full game-over caption.
func GameOverText(level, xp uint64) string {
	return fmt.Sprintf("You perished at level %d with %d XP.\n%s", level, xp, LegacyMessage(level))
}
