// internal/component/movement.go
package component

// Position - позиция сущности, синхронизируется из физики каждый тик.
type Position struct {
	X, Y float64
}
