package world

import (
	"image/color"

	"github.com/golangdaddy/crossing/pkg/config"
)

type ObstacleKind int

const (
	ObstacleCar ObstacleKind = iota
	ObstacleTruck
	ObstacleTrain
)

func (k ObstacleKind) String() string {
	switch k {
	case ObstacleCar:
		return "car"
	case ObstacleTruck:
		return "truck"
	case ObstacleTrain:
		return "train"
	}
	return "unknown"
}

// Segment is one box of a composite obstacle, offset along X from the
// obstacle centre.
type Segment struct {
	OffsetX float64
	Width   float64
	Height  float64
	Color   color.RGBA
}

// Obstacle is a moving hazard pinned to its lane depth. Width and Depth
// describe the collision box centred on (X, Z).
type Obstacle struct {
	ID       string
	Kind     ObstacleKind
	X, Z     float64
	Speed    float64
	Width    float64
	Depth    float64
	Color    color.RGBA
	Segments []Segment

	Visible    bool
	CastShadow bool
}

// Advance moves the obstacle by k reference ticks and wraps it around the
// corridor.
func (o *Obstacle) Advance(k float64) {
	o.X = Wrap(o.X + o.Speed*k)
}

// Heading returns +1 or -1 for the direction of travel.
func (o *Obstacle) Heading() float64 {
	if o.Speed < 0 {
		return -1
	}
	return 1
}

// Wrap maps a lateral position that left the corridor onto the opposite
// edge. Positions inside the corridor are returned unchanged.
func Wrap(x float64) float64 {
	switch {
	case x > config.CorridorBound:
		return -config.CorridorBound
	case x < -config.CorridorBound:
		return config.CorridorBound
	}
	return x
}

