package state

import (
	"testing"

	"go-too-many/internal/app"
	"go-too-many/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

type recordingState struct {
	name string
	log  *[]string
}

func (r *recordingState) Enter()             { *r.log = append(*r.log, "enter "+r.name) }
func (r *recordingState) Update(float64)     { *r.log = append(*r.log, "update "+r.name) }
func (r *recordingState) Draw(*ebiten.Image) {}
func (r *recordingState) Exit()              { *r.log = append(*r.log, "exit "+r.name) }

func TestStateMachineTransitions(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	sm.Update(0.1) // no state yet

	a := &recordingState{name: "a", log: &log}
	b := &recordingState{name: "b", log: &log}
	sm.SetState(a)
	sm.Update(0.1)
	sm.SetState(b)
	assert.Equal(t, b, sm.Current())
	sm.SetState(nil)
	assert.Nil(t, sm.Current())

	assert.Equal(t, []string{"enter a", "update a", "exit a", "enter b", "exit b"}, log)
}

func TestMoveInput(t *testing.T) {
	assert.Equal(t, types.Vec2{}, MoveInput(false, false, false, false))
	assert.Equal(t, types.Vec2{X: 1, Y: -1}, MoveInput(true, false, false, true))
	assert.Equal(t, types.Vec2{}, MoveInput(true, true, true, true))
}

func TestLoadingText(t *testing.T) {
	assert.Equal(t, "loading...\n42%", LoadingText(42))
}

func TestSummaryLines(t *testing.T) {
	lines := SummaryLines(app.Snapshot{Level: 12, XP: 300}, app.Stats{Kills: 40, DamageTaken: 95, TimeSurvived: 181.4})
	assert.Equal(t, "You perished at level 12 with 300 XP.", lines[0])
	assert.Equal(t, "You will be remembered.", lines[1])
	assert.Contains(t, lines, "Survived 181s, 40 kills, 95 damage taken")
}
