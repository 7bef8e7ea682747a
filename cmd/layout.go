package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/golangdaddy/crossing/pkg/config"
	"github.com/golangdaddy/crossing/pkg/mathutil"
	"github.com/golangdaddy/crossing/pkg/world"
)

type laneDoc struct {
	Z        float64 `yaml:"z"`
	Kind     string  `yaml:"kind"`
	Surface  string  `yaml:"surface"`
	Speed    float64 `yaml:"speed,omitempty"`
	Capacity int     `yaml:"capacity,omitempty"`
	Traffic  int     `yaml:"traffic,omitempty"`
}

type obstacleDoc struct {
	ID    string  `yaml:"id"`
	Kind  string  `yaml:"kind"`
	X     float64 `yaml:"x"`
	Z     float64 `yaml:"z"`
	Speed float64 `yaml:"speed"`
	Width float64 `yaml:"width"`
}

type propDoc struct {
	Kind  string  `yaml:"kind"`
	X     float64 `yaml:"x"`
	Z     float64 `yaml:"z"`
	Label string  `yaml:"label,omitempty"`
}

type layoutDoc struct {
	World       int           `yaml:"world,omitempty"`
	Level       int           `yaml:"level"`
	FreeRoam    bool          `yaml:"free_roam,omitempty"`
	Stadium     string        `yaml:"stadium,omitempty"`
	Family      string        `yaml:"family"`
	Seed        uint64        `yaml:"seed"`
	WinDepth    float64       `yaml:"win_depth,omitempty"`
	Stats       world.Stats   `yaml:"stats"`
	Lanes       []laneDoc     `yaml:"lanes"`
	Obstacles   []obstacleDoc `yaml:"obstacles"`
	Props       []propDoc     `yaml:"props"`
	Decorations []string      `yaml:"decorations,omitempty"`
}

func newLayoutCmd() *cobra.Command {
	var p world.Params
	var withBuildings bool
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Generate a level without opening a window and print it as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initLogging(); err != nil {
				return err
			}
			s := seed()
			m := world.NewManager(world.NewGenerator(mathutil.NewRand(s)))
			if _, err := m.Rebuild(p); err != nil {
				return err
			}
			doc := describe(m, s, withBuildings)
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(doc); err != nil {
				return fmt.Errorf("encode layout: %w", err)
			}
			return enc.Close()
		},
	}
	cmd.Flags().IntVar(&p.World, "world", 1, fmt.Sprintf("world to build (1-%d)", config.WorldCount))
	cmd.Flags().IntVar(&p.Level, "level", 1, "level within the world (1 or 2)")
	cmd.Flags().BoolVar(&p.FreeRoam, "free-roam", false, "build the free roam field")
	cmd.Flags().StringVar(&p.Stadium, "stadium", "monumental", "stadium shown in free roam")
	cmd.Flags().BoolVar(&withBuildings, "buildings", false, "include cityscape buildings")
	return cmd
}

func describe(m *world.Manager, s uint64, withBuildings bool) layoutDoc {
	scene, cfg, p := m.Scene(), m.Config(), m.Params()
	props := scene.Props
	if !withBuildings {
		props = lo.Reject(props, func(pr world.Prop, _ int) bool { return pr.Kind == world.PropBuilding })
	}
	return layoutDoc{
		World:    p.World,
		Level:    p.Level,
		FreeRoam: p.FreeRoam,
		Stadium:  lo.Ternary(p.FreeRoam, p.Stadium, ""),
		Family:   cfg.Family.String(),
		Seed:     s,
		WinDepth: cfg.WinDepth,
		Stats:    scene.Stats(),
		Lanes: lo.Map(scene.Lanes, func(l world.Lane, _ int) laneDoc {
			return laneDoc{
				Z:        l.Z,
				Kind:     l.Kind.String(),
				Surface:  l.Surface.String(),
				Speed:    l.Speed,
				Capacity: l.Capacity,
				Traffic:  len(scene.ObstaclesIn(l.Z)),
			}
		}),
		Obstacles: lo.Map(scene.Obstacles, func(o world.Obstacle, _ int) obstacleDoc {
			return obstacleDoc{ID: o.ID, Kind: o.Kind.String(), X: o.X, Z: o.Z, Speed: o.Speed, Width: o.Width}
		}),
		Props: lo.Map(props, func(pr world.Prop, _ int) propDoc {
			return propDoc{Kind: pr.Kind.String(), X: pr.X, Z: pr.Z, Label: pr.Label}
		}),
		Decorations: lo.Map(cfg.Decorations, func(d world.Decoration, _ int) string { return d.Asset }),
	}
}
