// internal/defs/types.go
package defs

// BodyDefinition describes one planet of the catalog.
type BodyDefinition struct {
	ID            string  `json:"id"`
	Texture       string  `json:"texture"`
	Radius        float64 `json:"radius"`
	X             float64 `json:"x"`
	Z             float64 `json:"z"`
	RotationSpeed float64 `json:"rotation_speed"` // рад за шаг
}
