// internal/physics/world.go
package physics

import (
	"errors"
	"sort"

	"go-too-many/internal/types"

	"github.com/jakecoffman/cp"
)

var ErrUnknownBody = errors.New("unknown body")

type Collision = types.Collision

// ShapeKind selects the collision shape of a body.
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	// ShapeSegment is a capsule from Position to End with half-width Radius.
	ShapeSegment
)

// bodyType tags every shape so one handler sees all pairs.
const bodyType cp.CollisionType = 1

// BodyDef describes a body at creation time.
type BodyDef struct {
	Shape    ShapeKind
	Position types.Vec2
	End      types.Vec2
	Radius   float64
	Mass     float64
	// Damping is the fraction of velocity lost per second, applied as
	// v / (1 + Damping*dt) before each step.
	Damping float64
	// Kinematic bodies are moved only by SetPosition/SetSegment.
	Kinematic bool
	// Sensors report overlaps but are never pushed apart.
	Sensor bool
}

type body struct {
	id    types.EntityID
	def   BodyDef
	body  *cp.Body
	shape *cp.Shape
	force types.Vec2
}

// World adapts a chipmunk space to entity IDs: it keeps forces across steps
// and turns begin callbacks into ordered collision-start pairs.
type World struct {
	space   *cp.Space
	bodies  map[types.EntityID]*body
	byShape map[*cp.Shape]types.EntityID
	order   []types.EntityID
	dirty   bool
	started map[Collision]struct{}
}

func NewWorld() *World {
	w := &World{
		space:   cp.NewSpace(),
		bodies:  make(map[types.EntityID]*body),
		byShape: make(map[*cp.Shape]types.EntityID),
		started: make(map[Collision]struct{}),
	}
	handler := w.space.NewCollisionHandler(bodyType, bodyType)
	handler.BeginFunc = w.begin
	return w
}

func vec(v types.Vec2) cp.Vector { return cp.Vector{X: v.X, Y: v.Y} }

func fromVec(v cp.Vector) types.Vec2 { return types.Vec2{X: v.X, Y: v.Y} }

// begin runs inside Step while the space is locked; it only records.
func (w *World) begin(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	sa, sb := arb.Shapes()
	a, okA := w.byShape[sa]
	b, okB := w.byShape[sb]
	if okA && okB && a != b {
		if b < a {
			a, b = b, a
		}
		w.started[Collision{A: a, B: b}] = struct{}{}
	}
	return true
}

// AddBody registers a body for id, replacing any existing one.
func (w *World) AddBody(id types.EntityID, def BodyDef) {
	w.RemoveBody(id)
	if def.Mass <= 0 {
		def.Mass = 1
	}

	var cb *cp.Body
	if def.Kinematic {
		cb = cp.NewKinematicBody()
	} else {
		// бесконечный момент: тела не вращаются
		cb = cp.NewBody(def.Mass, cp.INFINITY)
	}
	cb.SetPosition(vec(def.Position))
	w.space.AddBody(cb)

	var shape *cp.Shape
	switch def.Shape {
	case ShapeSegment:
		shape = cp.NewSegment(cb, cp.Vector{}, vec(def.End.Sub(def.Position)), def.Radius)
	default:
		shape = cp.NewCircle(cb, def.Radius, cp.Vector{})
	}
	shape.SetSensor(def.Sensor)
	shape.SetCollisionType(bodyType)
	w.space.AddShape(shape)

	w.bodies[id] = &body{id: id, def: def, body: cb, shape: shape}
	w.byShape[shape] = id
	w.dirty = true
}

func (w *World) RemoveBody(id types.EntityID) {
	b, ok := w.bodies[id]
	if !ok {
		return
	}
	w.space.RemoveShape(b.shape)
	w.space.RemoveBody(b.body)
	delete(w.byShape, b.shape)
	delete(w.bodies, id)
	w.dirty = true
}

func (w *World) Has(id types.EntityID) bool {
	_, ok := w.bodies[id]
	return ok
}

func (w *World) Len() int { return len(w.bodies) }

func (w *World) Position(id types.EntityID) (types.Vec2, bool) {
	b, ok := w.bodies[id]
	if !ok {
		return types.Vec2{}, false
	}
	return fromVec(b.body.Position()), true
}

func (w *World) Velocity(id types.EntityID) (types.Vec2, bool) {
	b, ok := w.bodies[id]
	if !ok {
		return types.Vec2{}, false
	}
	return fromVec(b.body.Velocity()), true
}

// SetPosition teleports a body. Segments move rigidly.
func (w *World) SetPosition(id types.EntityID, p types.Vec2) error {
	b, ok := w.bodies[id]
	if !ok {
		return ErrUnknownBody
	}
	b.body.SetPosition(vec(p))
	return nil
}

// SetSegment moves both endpoints of a segment body.
func (w *World) SetSegment(id types.EntityID, start, end types.Vec2) error {
	b, ok := w.bodies[id]
	if !ok {
		return ErrUnknownBody
	}
	seg, ok := b.shape.Class.(*cp.Segment)
	if !ok {
		return w.SetPosition(id, start)
	}
	b.body.SetPosition(vec(start))
	seg.SetEndpoints(cp.Vector{}, vec(end.Sub(start)))
	return nil
}

func (w *World) SetRadius(id types.EntityID, r float64) error {
	b, ok := w.bodies[id]
	if !ok {
		return ErrUnknownBody
	}
	if b.def.Radius == r {
		return nil
	}
	b.def.Radius = r
	switch c := b.shape.Class.(type) {
	case *cp.Segment:
		c.SetRadius(r)
	case *cp.Circle:
		c.SetRadius(r)
	}
	return nil
}

// SetForce sets the force applied during the next steps until changed.
func (w *World) SetForce(id types.EntityID, f types.Vec2) error {
	b, ok := w.bodies[id]
	if !ok {
		return ErrUnknownBody
	}
	b.force = f
	return nil
}

// ApplyImpulse changes velocity immediately by impulse/mass.
func (w *World) ApplyImpulse(id types.EntityID, impulse types.Vec2) error {
	b, ok := w.bodies[id]
	if !ok {
		return ErrUnknownBody
	}
	if b.def.Kinematic {
		return nil
	}
	b.body.ApplyImpulseAtWorldPoint(vec(impulse), b.body.Position())
	return nil
}

func (w *World) ids() []types.EntityID {
	if w.dirty {
		w.order = w.order[:0]
		for id := range w.bodies {
			w.order = append(w.order, id)
		}
		sort.Slice(w.order, func(i, j int) bool { return w.order[i] < w.order[j] })
		w.dirty = false
	}
	return w.order
}

// Step integrates dt seconds and returns the overlaps that started during
// it, ordered by (A, B) with A < B. Chipmunk ignores zero steps, so does
// this.
func (w *World) Step(dt float64) []Collision {
	if dt <= 0 {
		return nil
	}
	// chipmunk сбрасывает силы после каждого шага
	for _, id := range w.ids() {
		b := w.bodies[id]
		if b.def.Kinematic {
			continue
		}
		if b.def.Damping > 0 {
			b.body.SetVelocityVector(b.body.Velocity().Mult(1 / (1 + b.def.Damping*dt)))
		}
		b.body.SetForce(vec(b.force))
	}

	w.space.Step(dt)

	if len(w.started) == 0 {
		return nil
	}
	out := make([]Collision, 0, len(w.started))
	for c := range w.started {
		out = append(out, c)
	}
	clear(w.started)
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out
}
