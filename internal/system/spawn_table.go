// internal/system/spawn_table.go
package system

import (
	"errors"
	"fmt"

	"go-too-many/internal/defs"
	"go-too-many/internal/utils"
)

var (
	ErrEmptySpawnTable      = errors.New("spawn table has no archetypes")
	ErrWeightLengthMismatch = errors.New("spawn table weights and archetypes differ in length")
	ErrNegativeWeight       = errors.New("spawn weight is negative")
	ErrZeroTotalWeight      = errors.New("spawn table total weight is zero")
	ErrUnknownArchetype     = errors.New("archetype not in spawn table")
)

// WeightedSpawnTable picks enemy archetypes in proportion to mutable weights.
type WeightedSpawnTable struct {
	archetypes []defs.EnemyArchetype
	weights    []float64
	cumulative []float64
}

// NewWeightedSpawnTable validates the table once so Choose can never fail.
func NewWeightedSpawnTable(archetypes []defs.EnemyArchetype, weights []float64) (*WeightedSpawnTable, error) {
	if len(archetypes) == 0 {
		return nil, ErrEmptySpawnTable
	}
	if len(archetypes) != len(weights) {
		return nil, fmt.Errorf("%w: %d archetypes, %d weights", ErrWeightLengthMismatch, len(archetypes), len(weights))
	}
	for i, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("%w: %s has %v", ErrNegativeWeight, archetypes[i].Name, w)
		}
	}
	t := &WeightedSpawnTable{
		archetypes: append([]defs.EnemyArchetype(nil), archetypes...),
		weights:    append([]float64(nil), weights...),
		cumulative: make([]float64, len(weights)),
	}
	t.rebuild()
	if t.total() <= 0 {
		return nil, ErrZeroTotalWeight
	}
	return t, nil
}

// NewDefaultSpawnTable builds the table from the compiled-in archetypes and
// starting weights.
func NewDefaultSpawnTable() (*WeightedSpawnTable, error) {
	archetypes := make([]defs.EnemyArchetype, 0, len(defs.EnemyOrder))
	weights := make([]float64, 0, len(defs.EnemyOrder))
	for _, kind := range defs.EnemyOrder {
		archetypes = append(archetypes, defs.EnemyLibrary[kind])
		weights = append(weights, defs.InitialSpawnWeights[kind])
	}
	return NewWeightedSpawnTable(archetypes, weights)
}

func (t *WeightedSpawnTable) rebuild() {
	sum := 0.0
	for i, w := range t.weights {
		sum += w
		t.cumulative[i] = sum
	}
}

func (t *WeightedSpawnTable) total() float64 {
	return t.cumulative[len(t.cumulative)-1]
}

// Choose samples one archetype. Weight zero entries are never returned.
func (t *WeightedSpawnTable) Choose(rng *utils.PRNGService) defs.EnemyArchetype {
	idx := rng.ChooseCumulative(t.cumulative)
	if idx < 0 {
		// unreachable after construction, kept so Choose never panics
		idx = 0
	}
	return t.archetypes[idx]
}

// BumpWeight adds by to the weight of kind and rebuilds the distribution.
func (t *WeightedSpawnTable) BumpWeight(kind defs.EnemyKind, by float64) error {
	idx := t.indexOf(kind)
	if idx < 0 {
		return fmt.Errorf("%w: %v", ErrUnknownArchetype, kind)
	}
	next := t.weights[idx] + by
	if next < 0 {
		return fmt.Errorf("%w: %v would become %v", ErrNegativeWeight, kind, next)
	}
	prev := t.weights[idx]
	t.weights[idx] = next
	t.rebuild()
	if t.total() <= 0 {
		t.weights[idx] = prev
		t.rebuild()
		return ErrZeroTotalWeight
	}
	return nil
}

func (t *WeightedSpawnTable) Weight(kind defs.EnemyKind) float64 {
	if idx := t.indexOf(kind); idx >= 0 {
		return t.weights[idx]
	}
	return 0
}

// Weights returns a copy of the weights in table order.
func (t *WeightedSpawnTable) Weights() []float64 {
	return append([]float64(nil), t.weights...)
}

func (t *WeightedSpawnTable) Len() int { return len(t.archetypes) }

func (t *WeightedSpawnTable) indexOf(kind defs.EnemyKind) int {
	for i, a := range t.archetypes {
		if a.Kind == kind {
			return i
		}
	}
	return -1
}
