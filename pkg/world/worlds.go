package world

import (
	"errors"
	"fmt"

	"github.com/golangdaddy/crossing/pkg/config"
)

var ErrUnknownWorld = errors.New("unknown world")

// Family is the layout a world is built from.
type Family int

const (
	FamilyHighway Family = iota
	FamilyUniversity
	FamilyFreeRoam
)

func (f Family) String() string {
	switch f {
	case FamilyHighway:
		return "highway"
	case FamilyUniversity:
		return "university"
	case FamilyFreeRoam:
		return "free_roam"
	}
	return "unknown"
}

// WorldInfo describes one selectable world.
type WorldInfo struct {
	ID          int
	Name        string
	Landmark    string
	Family      Family
	Decorations []Decoration
}

var worlds = []WorldInfo{
	{ID: 1, Name: "9 de Julio", Landmark: "obelisco", Family: FamilyHighway},
	{
		ID: 2, Name: "Ciudad Universitaria", Landmark: "monumental", Family: FamilyUniversity,
		Decorations: []Decoration{
			{Name: "stadium_main_monumental", Asset: "monumental.png", X: 400, Y: 10, Z: -1000, Scale: 0.3},
			{Name: "stadium_cancha_base_1", Asset: "canchabase.png", X: 500, Y: 10, Z: -200, Scale: 0.03},
			{Name: "stadium_cancha_base_2", Asset: "canchabase.png", X: 600, Y: 10, Z: -200, Scale: 0.03},
		},
	},
	{ID: 3, Name: "Avellaneda", Landmark: "cilindro", Family: FamilyHighway, Decorations: worldStadium(3, "cilindro")},
	{ID: 4, Name: "La Boca", Landmark: "bombonera", Family: FamilyHighway, Decorations: worldStadium(4, "bombonera")},
	{ID: 5, Name: "San Lorenzo", Landmark: "gasometro", Family: FamilyHighway, Decorations: worldStadium(5, "gasometro")},
}

func worldStadium(id int, model string) []Decoration {
	return []Decoration{
		{Name: fmt.Sprintf("stadium_world_%d", id), Asset: model + ".png", X: 300, Y: 10, Z: -800, Scale: 0.25},
	}
}

// Worlds returns the catalogue in play order.
func Worlds() []WorldInfo {
	return worlds
}

// Lookup returns the world with the given id.
func Lookup(id int) (WorldInfo, error) {
	if id < 1 || id > len(worlds) {
		return WorldInfo{}, fmt.Errorf("%w: %d", ErrUnknownWorld, id)
	}
	return worlds[id-1], nil
}

// Stadiums lists the free-roam venues.
var Stadiums = []string{"monumental", "bombonera", "cilindro", "gasometro"}

func stadiumDecorations(name string) []Decoration {
	d := []Decoration{{Name: "stadium_test_" + name, Asset: name + ".png", X: 0, Y: 10, Z: -200, Scale: 0.3}}
	if name == "monumental" {
		d = append(d, Decoration{Name: "stadium_test_canchabase", Asset: "canchabase.png", X: 500, Y: 10, Z: -200, Scale: 0.03})
	}
	return d
}

// Params identify the level to build.
type Params struct {
	World    int
	Level    int
	FreeRoam bool
	Stadium  string
}

// LevelConfig is the tuning a level is generated and played with.
type LevelConfig struct {
	Family      Family
	Difficulty  float64
	LevelSpeed  float64 // level-within-world multiplier
	BaseSpeed   float64 // lower bound of the random speed draw
	SpeedJitter float64 // width of the random speed draw
	MaxPerLane  int
	TrainSpeed  float64
	Sections    int
	Cityscape   bool
	Collisions  bool
	WinDepth    float64 // zero disables the goal
	Decorations []Decoration
}

// Difficulty grows by a fixed step per world. Free-roam is always 1.
func Difficulty(world int, freeRoam bool) float64 {
	if freeRoam {
		return 1
	}
	return 1 + float64(world-1)*config.DifficultyStep
}

// ConfigFor resolves the tuning for a level.
func ConfigFor(p Params) (LevelConfig, error) {
	if p.FreeRoam {
		return LevelConfig{
			Family:      FamilyFreeRoam,
			Difficulty:  1,
			LevelSpeed:  1,
			BaseSpeed:   1.5,
			SpeedJitter: 2,
			MaxPerLane:  4,
			Sections:    1,
			Decorations: stadiumDecorations(p.Stadium),
		}, nil
	}

	info, err := Lookup(p.World)
	if err != nil {
		return LevelConfig{}, err
	}
	if p.Level < 1 || p.Level > config.LevelsPerWorld {
		return LevelConfig{}, fmt.Errorf("world %d: invalid level %d", p.World, p.Level)
	}
	level2 := p.Level == 2

	cfg := LevelConfig{
		Family:      info.Family,
		Difficulty:  Difficulty(p.World, false),
		SpeedJitter: 2,
		MaxPerLane:  2,
		Sections:    1,
		Cityscape:   true,
		Collisions:  true,
		Decorations: info.Decorations,
	}
	switch info.Family {
	case FamilyUniversity:
		cfg.LevelSpeed = 1.0
		if level2 {
			cfg.LevelSpeed = 1.1
		}
		cfg.BaseSpeed = 2
		cfg.TrainSpeed = 15
		cfg.WinDepth = 13 * config.LaneWidth
	default:
		cfg.LevelSpeed = 1.0
		if level2 {
			cfg.LevelSpeed = 2.5
		}
		cfg.BaseSpeed = 1.5
		cfg.WinDepth = 10 * config.LaneWidth
	}
	return cfg, nil
}
