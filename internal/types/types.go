package types

// EntityID identifies one node of the scene.
type EntityID uint32
