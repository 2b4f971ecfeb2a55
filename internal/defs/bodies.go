package defs

import "go-planet-scroll/internal/config"

// DefaultBodies returns the fixed planet catalog in display order.
func DefaultBodies() []BodyDefinition {
	return []BodyDefinition{
		{ID: "mercury", Texture: "moon.jpg", Radius: 30, X: -200, Z: 0, RotationSpeed: 0.01},
		{ID: "venus", Texture: "venus.jpeg", Radius: 40, X: -100, Z: 0, RotationSpeed: 0.015},
		{ID: "earth", Texture: "earth.jpeg", Radius: 50, X: 0, Z: 0, RotationSpeed: 0.02},
		{ID: "mars", Texture: "mars.jpeg", Radius: 40, X: 100, Z: 0, RotationSpeed: 0.025},
		{ID: "jupiter", Texture: "jupiter.jpeg", Radius: 150, X: 400, Z: 0, RotationSpeed: 0.03},
		{ID: "saturn", Texture: "saturn.jpeg", Radius: 100, X: 600, Z: 0, RotationSpeed: 0.035},
		{ID: "uranus", Texture: "uranus.jpeg", Radius: 80, X: 700, Z: 0, RotationSpeed: 0.04},
		{ID: "neptune", Texture: "neptune.jpeg", Radius: 80, X: 800, Z: 0, RotationSpeed: 0.045},
	}
}

// AssetNames lists every image the scene needs: the background first, then
// each body texture in catalog order, then the shared normal map. Duplicates
// are dropped.
func AssetNames(bodies []BodyDefinition) []string {
	seen := make(map[string]struct{}, len(bodies)+2)
	names := make([]string, 0, len(bodies)+2)
	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	add(config.BackgroundTexture)
	for _, b := range bodies {
		add(b.Texture)
	}
	add(config.NormalTexture)
	return names
}
