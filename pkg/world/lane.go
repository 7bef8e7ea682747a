package world

// LaneKind tells whether a lane carries hazards.
type LaneKind int

const (
	LaneSafe LaneKind = iota
	LaneRoad
	LaneTrack
)

func (k LaneKind) String() string {
	switch k {
	case LaneSafe:
		return "safe"
	case LaneRoad:
		return "road"
	case LaneTrack:
		return "track"
	}
	return "unknown"
}

// Surface is the look of a lane. Only safe lanes vary.
type Surface int

const (
	SurfaceGrass Surface = iota
	SurfaceMedian
	SurfaceAsphalt
	SurfaceGravel
)

func (s Surface) String() string {
	switch s {
	case SurfaceGrass:
		return "grass"
	case SurfaceMedian:
		return "median"
	case SurfaceAsphalt:
		return "asphalt"
	case SurfaceGravel:
		return "gravel"
	}
	return "unknown"
}

// Lane is one strip of the corridor at a fixed depth.
type Lane struct {
	Index    int
	Z        float64
	Kind     LaneKind
	Surface  Surface
	Speed    float64 // signed, zero for safe lanes
	Capacity int     // max obstacles spawned into the lane
}

// Hazardous reports whether obstacles move along the lane.
func (l Lane) Hazardous() bool {
	return l.Kind != LaneSafe
}
