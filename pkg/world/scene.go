package world

import (
	"errors"
	"image"

	"github.com/samber/lo"
)

var ErrInvalidModel = errors.New("invalid model")

// Model is a loaded decorative asset.
type Model interface {
	Bounds() image.Rectangle
}

// Decoration is a large, purely visual object such as a stadium. It is
// placed once its model has loaded and is culled by distance.
type Decoration struct {
	Name    string
	Asset   string
	X, Y, Z float64
	Scale   float64
	Visible bool
	Model   Model
}

// Scene holds everything generated for the current level.
type Scene struct {
	Generation  uint64
	Lanes       []Lane
	Obstacles   []Obstacle
	Props       []Prop
	Decorations []Decoration
}

// Clear drops all generated content. Backing arrays are reused.
func (s *Scene) Clear() {
	s.Lanes = s.Lanes[:0]
	s.Obstacles = s.Obstacles[:0]
	s.Props = s.Props[:0]
	s.Decorations = s.Decorations[:0]
}

// DepthBounds returns the smallest and largest lane depth. ok is false when
// no lanes exist.
func (s *Scene) DepthBounds() (min, max float64, ok bool) {
	if len(s.Lanes) == 0 {
		return 0, 0, false
	}
	zs := lo.Map(s.Lanes, func(l Lane, _ int) float64 { return l.Z })
	return lo.Min(zs), lo.Max(zs), true
}

// HazardLanes returns the road and track lanes in depth order.
func (s *Scene) HazardLanes() []Lane {
	return lo.Filter(s.Lanes, func(l Lane, _ int) bool { return l.Hazardous() })
}

// LaneAt returns the lane whose strip contains depth z.
func (s *Scene) LaneAt(z float64, width float64) (Lane, bool) {
	return lo.Find(s.Lanes, func(l Lane) bool {
		return z >= l.Z-width/2 && z < l.Z+width/2
	})
}

// ObstaclesIn returns the obstacles travelling along the lane at depth z.
func (s *Scene) ObstaclesIn(z float64) []Obstacle {
	return lo.Filter(s.Obstacles, func(o Obstacle, _ int) bool { return o.Z == z })
}

// CountKind counts lanes of one kind.
func (s *Scene) CountKind(k LaneKind) int {
	return lo.CountBy(s.Lanes, func(l Lane) bool { return l.Kind == k })
}

// Stats summarises the lane registry of a scene.
type Stats struct {
	Safe      int `yaml:"safe"`
	Road      int `yaml:"road"`
	Track     int `yaml:"track"`
	Hazard    int `yaml:"hazard"`
	Obstacles int `yaml:"obstacles"`
	Busiest   int `yaml:"busiest"` // most obstacles sharing one hazard lane
}

func (s *Scene) Stats() Stats {
	hazards := s.HazardLanes()
	st := Stats{
		Safe:      s.CountKind(LaneSafe),
		Road:      s.CountKind(LaneRoad),
		Track:     s.CountKind(LaneTrack),
		Hazard:    len(hazards),
		Obstacles: len(s.Obstacles),
	}
	if len(hazards) > 0 {
		st.Busiest = lo.Max(lo.Map(hazards, func(l Lane, _ int) int { return len(s.ObstaclesIn(l.Z)) }))
	}
	return st
}

func (s *Scene) addDecoration(d Decoration, m Model) error {
	if m == nil || m.Bounds().Empty() {
		return ErrInvalidModel
	}
	d.Model = m
	d.Visible = true
	s.Decorations = append(s.Decorations, d)
	return nil
}
