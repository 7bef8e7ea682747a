package world

import (
	"image/color"

	"github.com/golangdaddy/crossing/pkg/config"
	"github.com/golangdaddy/crossing/pkg/mathutil"
)

type PropKind int

const (
	PropGuardRail PropKind = iota
	PropMedianStrip
	PropHighwaySign
	PropBuilding
	PropTrainStation
	PropPedestrianBridge
)

func (k PropKind) String() string {
	switch k {
	case PropGuardRail:
		return "guard_rail"
	case PropMedianStrip:
		return "median_strip"
	case PropHighwaySign:
		return "highway_sign"
	case PropBuilding:
		return "building"
	case PropTrainStation:
		return "train_station"
	case PropPedestrianBridge:
		return "pedestrian_bridge"
	}
	return "unknown"
}

// Part is a box in prop-local coordinates.
type Part struct {
	X, Y, Z              float64
	Width, Height, Depth float64
	Color                color.RGBA
}

// Prop is a static piece of scenery. It never takes part in collision.
type Prop struct {
	Kind    PropKind
	X, Y, Z float64
	Scale   float64
	Label   string
	Parts   []Part
}

var (
	railGrey     = color.RGBA{0xaa, 0xaa, 0xaa, 0xff}
	barrierGrey  = color.RGBA{0x88, 0x88, 0x88, 0xff}
	poleGrey     = color.RGBA{0x55, 0x55, 0x55, 0xff}
	signGreen    = color.RGBA{0x00, 0x66, 0x33, 0xff}
	stationBlue  = color.RGBA{0x00, 0x33, 0x66, 0xff}
	skyBlue      = color.RGBA{0x75, 0xaa, 0xdb, 0xff}
	platformGrey = color.RGBA{0xaa, 0xaa, 0xaa, 0xff}
	bridgeGrey   = color.RGBA{0xcc, 0xcc, 0xcc, 0xff}

	buildingColors = []color.RGBA{
		{0x8b, 0x45, 0x13, 0xff},
		{0xa0, 0x52, 0x2d, 0xff},
		{0xbc, 0x8f, 0x8f, 0xff},
		{0x69, 0x69, 0x69, 0xff},
		{0x77, 0x88, 0x99, 0xff},
	}
)

const corridorLength = 2 * config.CorridorBound

// NewGuardRail builds a rail spanning the corridor at depth z.
func NewGuardRail(z float64) Prop {
	return Prop{
		Kind:  PropGuardRail,
		Z:     z,
		Scale: 1,
		Parts: []Part{{Y: 7.5, Width: corridorLength, Height: 15, Depth: 5, Color: railGrey}},
	}
}

// NewMedianStrip builds the double barrier with lamp posts that separates
// the two carriageways of a highway.
func NewMedianStrip(z float64) Prop {
	barrier := config.LaneWidth / 4
	p := Prop{Kind: PropMedianStrip, Z: z, Scale: 1}
	for _, off := range []float64{-barrier, barrier} {
		p.Parts = append(p.Parts, Part{Y: 7.5, Z: off, Width: corridorLength, Height: 15, Depth: barrier, Color: barrierGrey})
		for x := -950.0; x < 950; x += 150 {
			p.Parts = append(p.Parts, Part{X: x, Y: 20, Z: off, Width: 4, Height: 40, Depth: 4, Color: poleGrey})
		}
	}
	return p
}

// NewHighwaySign builds an overhead gantry with a text panel.
func NewHighwaySign(z float64, label string, scale float64) Prop {
	return Prop{
		Kind:  PropHighwaySign,
		Z:     z,
		Scale: scale,
		Label: label,
		Parts: []Part{
			{X: -220 * scale, Y: 50 * scale, Width: 8 * scale, Height: 100 * scale, Depth: 8 * scale, Color: poleGrey},
			{X: 220 * scale, Y: 50 * scale, Width: 8 * scale, Height: 100 * scale, Depth: 8 * scale, Color: poleGrey},
			{Y: 120 * scale, Width: 450 * scale, Height: 8 * scale, Depth: 8 * scale, Color: poleGrey},
			{Y: 80 * scale, Width: 300 * scale, Height: 60 * scale, Depth: 2, Color: signGreen},
		},
	}
}

// NewBuilding builds a box building with random proportions and colour.
func NewBuilding(rng *mathutil.Rand, x, z float64) Prop {
	height := rng.Float64()*150 + 50
	width := rng.Float64()*80 + 60
	depth := rng.Float64()*80 + 60
	c := buildingColors[rng.Intn(len(buildingColors))]
	return Prop{
		Kind:  PropBuilding,
		X:     x,
		Y:     height / 2,
		Z:     z,
		Scale: 1,
		Parts: []Part{{Width: width, Height: height, Depth: depth, Color: c}},
	}
}

// NewTrainStation builds the platform and striped roof centred between two
// tracks at depth z.
func NewTrainStation(z float64) Prop {
	p := Prop{
		Kind:  PropTrainStation,
		Z:     z,
		Scale: 1,
		Label: "Ciudad Universitaria",
		Parts: []Part{
			{Y: -5.1, Width: 500, Height: 10, Depth: config.LaneWidth * 4, Color: platformGrey},
			{Y: 50, Width: 520, Height: 8, Depth: 150, Color: skyBlue},
			{Y: 65, Z: -75, Width: 200, Height: 50, Depth: 1, Color: stationBlue},
		},
	}
	for _, x := range []float64{-180, 180} {
		p.Parts = append(p.Parts,
			Part{X: x, Y: 20, Z: 60, Width: 8, Height: 50, Depth: 8, Color: poleGrey},
			Part{X: x, Y: 20, Z: -60, Width: 8, Height: 50, Depth: 8, Color: poleGrey},
		)
	}
	return p
}

// NewPedestrianBridge builds an overpass starting at zStart that clears the
// tracks beginning at tracksZ. It sits to one side of the station.
func NewPedestrianBridge(zStart, tracksZ float64) Prop {
	const (
		floor = 80.0
		ramp  = 200.0
	)
	length := ramp + config.LaneWidth*6
	mid := length / 2
	pillar1 := tracksZ + config.LaneWidth*3 - zStart
	pillar2 := pillar1 + config.LaneWidth*5
	return Prop{
		Kind:  PropPedestrianBridge,
		X:     -350,
		Z:     zStart,
		Scale: 1,
		Parts: []Part{
			{Y: floor + 5, Width: 100, Height: 10, Depth: 10, Color: skyBlue},
			{X: -45, Y: floor / 2, Width: 10, Height: floor + 10, Depth: 10, Color: skyBlue},
			{X: 45, Y: floor / 2, Width: 10, Height: floor + 10, Depth: 10, Color: skyBlue},
			{Y: floor, Z: mid, Width: 80, Height: 5, Depth: length, Color: bridgeGrey},
			{X: -38, Y: floor + 5, Z: mid, Width: 2, Height: 15, Depth: length, Color: poleGrey},
			{X: 38, Y: floor + 5, Z: mid, Width: 2, Height: 15, Depth: length, Color: poleGrey},
			{Y: floor / 2, Z: pillar1, Width: 20, Height: floor, Depth: 20, Color: barrierGrey},
			{Y: floor / 2, Z: pillar2, Width: 20, Height: floor, Depth: 20, Color: barrierGrey},
		},
	}
}
