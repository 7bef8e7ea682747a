package sim

import (
	"github.com/golangdaddy/crossing/pkg/config"
	"github.com/golangdaddy/crossing/pkg/world"
)

// cull applies the distance bands. There is no hysteresis; an object sitting
// exactly on a threshold flips every time the camera crosses it.
func cull(cam Vec3, scene *world.Scene) {
	for i := range scene.Decorations {
		d := &scene.Decorations[i]
		d.Visible = cam.Dist(Vec3{X: d.X, Y: d.Y, Z: d.Z}) < config.DecorationVisibleDistance
	}
	for i := range scene.Obstacles {
		o := &scene.Obstacles[i]
		dist := cam.Dist(Vec3{X: o.X, Z: o.Z})
		o.Visible = dist < config.ObstacleVisibleDistance
		o.CastShadow = dist < config.ObstacleShadowDistance
	}
}
