package sim

import (
	"github.com/golangdaddy/crossing/pkg/config"
	"github.com/golangdaddy/crossing/pkg/mathutil"
)

// Camera trails the player's target from a fixed offset and looks at the
// player.
type Camera struct {
	Pos    Vec3
	LookAt Vec3
	Zoom   float64
}

func NewCamera() Camera {
	return Camera{
		Pos:  Vec3{X: config.CameraOffsetX, Y: config.CameraHeight, Z: config.CameraOffsetZ},
		Zoom: 1,
	}
}

func (c *Camera) follow(target, player Vec3, k float64) {
	c.Pos.X = mathutil.Smooth(c.Pos.X, target.X+config.CameraOffsetX, config.CameraSmoothing, k)
	c.Pos.Z = mathutil.Smooth(c.Pos.Z, target.Z+config.CameraOffsetZ, config.CameraSmoothing, k)
	c.LookAt = Vec3{X: player.X, Z: player.Z}
}

// SetZoom clamps z to the supported range.
func (c *Camera) SetZoom(z float64) {
	c.Zoom = mathutil.ClampF(z, config.MinZoom, config.MaxZoom)
}

// Light is the shadow-casting light kept next to the player.
type Light struct {
	Pos    Vec3
	Target Vec3
}

func (l *Light) follow(player Vec3) {
	l.Pos.X = player.X + config.LightOffset
	l.Pos.Z = player.Z + config.LightOffset
	l.Target = player
}
