package system

import (
	"go-planet-scroll/internal/component"
	"go-planet-scroll/internal/config"
	"go-planet-scroll/internal/entity"
	"go-planet-scroll/internal/utils"
)

// PopulateStars scatters count stars; every coordinate is drawn on its own
// from [-spread/2, spread/2).
func PopulateStars(scene *entity.Scene, rng *utils.PRNGService, count int, spread float64) {
	for i := 0; i < count; i++ {
		pos := component.Vec3{
			rng.FloatSpread(spread),
			rng.FloatSpread(spread),
			rng.FloatSpread(spread),
		}
		scene.AddStar(pos, component.Star{Radius: config.StarRadius, Color: config.StarColor})
	}
}
