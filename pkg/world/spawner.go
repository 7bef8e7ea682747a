package world

import (
	"image/color"

	"github.com/google/uuid"

	"github.com/golangdaddy/crossing/pkg/config"
	"github.com/golangdaddy/crossing/pkg/mathutil"
)

const (
	carWidth       = 30.0
	truckWidth     = 60.0
	vehicleDepth   = 20.0
	vehicleHeight  = 20.0
	truckChance    = 0.3
	trainWidth     = 450.0
	trainDepth     = 25.0
	trainWagons    = 3
	engineLength   = 80.0
	wagonLength    = 100.0
	couplingLength = 10.0
)

var (
	trainGrey = color.RGBA{0xaa, 0xaa, 0xaa, 0xff}
	wagonGrey = color.RGBA{0x88, 0x88, 0x88, 0xff}
)

// Spawner creates obstacles with randomised looks.
type Spawner struct {
	rng *mathutil.Rand
}

func NewSpawner(rng *mathutil.Rand) *Spawner {
	return &Spawner{rng: rng}
}

// Offset draws a random starting position inside the spawn range.
func (s *Spawner) Offset() float64 {
	return s.rng.RangeF(-config.SpawnRange, config.SpawnRange)
}

// id draws an obstacle id from the level RNG so a seed reproduces ids.
func (s *Spawner) id() string {
	return uuid.Must(uuid.NewRandomFromReader(s.rng)).String()
}

// Vehicle creates a car or, less often, a truck at (x, z).
func (s *Spawner) Vehicle(z, speed, x float64) Obstacle {
	kind, width := ObstacleCar, carWidth
	if s.rng.Chance(truckChance) {
		kind, width = ObstacleTruck, truckWidth
	}
	rgb := s.rng.NextU64()
	return Obstacle{
		ID:    s.id(),
		Kind:  kind,
		X:     x,
		Z:     z,
		Speed: speed,
		Width: width,
		Depth: vehicleDepth,
		Color: color.RGBA{uint8(rgb >> 16), uint8(rgb >> 8), uint8(rgb), 0xff},
		Segments: []Segment{
			{Width: width, Height: vehicleHeight},
		},
		Visible:    true,
		CastShadow: true,
	}
}

// Train creates an engine pulling a fixed number of wagons. The engine sits on
// the side the train is heading to. The collision box covers the whole train.
func (s *Spawner) Train(z, speed, x float64) Obstacle {
	o := Obstacle{
		ID:         s.id(),
		Kind:       ObstacleTrain,
		X:          x,
		Z:          z,
		Speed:      speed,
		Width:      trainWidth,
		Depth:      trainDepth,
		Color:      trainGrey,
		Visible:    true,
		CastShadow: true,
	}
	dir := o.Heading()
	length := engineLength + trainWagons*(wagonLength+couplingLength)
	front := length / 2

	center := front - engineLength/2
	o.Segments = append(o.Segments, Segment{OffsetX: dir * center, Width: engineLength, Height: 30, Color: trainGrey})
	center -= engineLength/2 + couplingLength + wagonLength/2
	for i := 0; i < trainWagons; i++ {
		o.Segments = append(o.Segments, Segment{OffsetX: dir * center, Width: wagonLength, Height: 25, Color: wagonGrey})
		center -= wagonLength + couplingLength
	}
	return o
}
