package sim

import (
	"math"

	"github.com/golangdaddy/crossing/pkg/config"
	"github.com/golangdaddy/crossing/pkg/world"
)

// Collides reports whether a player at (x, z) overlaps obstacle o.
func Collides(x, z float64, o world.Obstacle) bool {
	return math.Abs(z-o.Z) < config.CollisionDepth &&
		math.Abs(x-o.X) < o.Width/2+config.PlayerHalfWidth
}
