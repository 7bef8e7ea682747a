package world

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/crossing/pkg/config"
	"github.com/golangdaddy/crossing/pkg/mathutil"
)

func allParams() []Params {
	var ps []Params
	for w := 1; w <= config.WorldCount; w++ {
		for l := 1; l <= config.LevelsPerWorld; l++ {
			ps = append(ps, Params{World: w, Level: l})
		}
	}
	for _, s := range Stadiums {
		ps = append(ps, Params{FreeRoam: true, Stadium: s})
	}
	return ps
}

func generate(t *testing.T, seed uint64, p Params) (*Scene, LevelConfig) {
	t.Helper()
	cfg, err := ConfigFor(p)
	require.NoError(t, err)
	scene := &Scene{}
	NewGenerator(mathutil.NewRand(seed)).Generate(scene, cfg)
	return scene, cfg
}

func name(p Params) string {
	if p.FreeRoam {
		return "free_roam_" + p.Stadium
	}
	return fmt.Sprintf("world%d_level%d", p.World, p.Level)
}

func TestLanesAreEvenlySpaced(t *testing.T) {
	for _, p := range allParams() {
		t.Run(name(p), func(t *testing.T) {
			scene, _ := generate(t, 1, p)
			require.NotEmpty(t, scene.Lanes)
			assert.Equal(t, 0.0, scene.Lanes[0].Z)
			for i := 1; i < len(scene.Lanes); i++ {
				assert.Equal(t, config.LaneWidth, scene.Lanes[i].Z-scene.Lanes[i-1].Z, "lane %d", i)
				assert.Equal(t, i, scene.Lanes[i].Index)
			}
			assert.Equal(t, LaneSafe, scene.Lanes[0].Kind)
			assert.Equal(t, LaneSafe, scene.Lanes[len(scene.Lanes)-1].Kind)
		})
	}
}

func TestHazardLanesMoveAndSafeLanesAreEmpty(t *testing.T) {
	for _, p := range allParams() {
		for seed := uint64(1); seed <= 20; seed++ {
			scene, cfg := generate(t, seed, p)
			for _, l := range scene.Lanes {
				in := scene.ObstaclesIn(l.Z)
				if !l.Hazardous() {
					assert.Zero(t, l.Speed)
					assert.Empty(t, in, "%s lane %d", name(p), l.Index)
					continue
				}
				assert.NotZero(t, l.Speed)
				assert.GreaterOrEqual(t, len(in), 1)
				if l.Kind == LaneTrack {
					assert.Len(t, in, 1)
				} else {
					assert.LessOrEqual(t, len(in), cfg.MaxPerLane)
				}
				for _, o := range in {
					assert.Equal(t, l.Speed, o.Speed)
					assert.GreaterOrEqual(t, o.X, -config.SpawnRange)
					assert.Less(t, o.X, config.SpawnRange)
				}
			}
		}
	}
}

func TestLayouts(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		kinds  string
		win    float64
	}{
		{
			name:   "highway",
			params: Params{World: 1, Level: 1},
			kinds:  "SRRRRSRRRRS",
			win:    10 * config.LaneWidth,
		},
		{
			name:   "university",
			params: Params{World: 2, Level: 1},
			kinds:  "SRRRRSTTSRRRRS",
			win:    13 * config.LaneWidth,
		},
		{
			name:   "free roam",
			params: Params{FreeRoam: true, Stadium: "bombonera"},
			kinds:  "SRRRRSRRRRS",
		},
	}
	letter := map[LaneKind]byte{LaneSafe: 'S', LaneRoad: 'R', LaneTrack: 'T'}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene, cfg := generate(t, 3, tt.params)
			got := make([]byte, 0, len(scene.Lanes))
			for _, l := range scene.Lanes {
				got = append(got, letter[l.Kind])
			}
			assert.Equal(t, tt.kinds, string(got))
			assert.Equal(t, tt.win, cfg.WinDepth)
			if tt.win > 0 {
				assert.Equal(t, tt.win, scene.Lanes[len(scene.Lanes)-1].Z)
			}
		})
	}
}

func TestHighwayMedianIsRegistered(t *testing.T) {
	scene, _ := generate(t, 1, Params{World: 4, Level: 1})
	median := scene.Lanes[5]
	assert.Equal(t, LaneSafe, median.Kind)
	assert.Equal(t, SurfaceMedian, median.Surface)

	var medians, rails []Prop
	for _, p := range scene.Props {
		switch p.Kind {
		case PropMedianStrip:
			medians = append(medians, p)
		case PropGuardRail:
			rails = append(rails, p)
		}
	}
	require.Len(t, medians, 1)
	assert.Equal(t, median.Z, medians[0].Z)
	require.Len(t, rails, 2)
	assert.Equal(t, 25.0, rails[0].Z)
	assert.Equal(t, 475.0, rails[1].Z)
}

func TestUniversityProps(t *testing.T) {
	scene, cfg := generate(t, 1, Params{World: 2, Level: 2})
	assert.InDelta(t, 15*1.05*1.1, scene.Lanes[6].Speed, 1e-9)
	assert.InDelta(t, -15*1.05*1.1, scene.Lanes[7].Speed, 1e-9)

	byKind := map[PropKind][]Prop{}
	for _, p := range scene.Props {
		byKind[p.Kind] = append(byKind[p.Kind], p)
	}
	require.Len(t, byKind[PropTrainStation], 1)
	assert.Equal(t, 350.0, byKind[PropTrainStation][0].Z)
	require.Len(t, byKind[PropPedestrianBridge], 1)
	assert.Equal(t, 250.0, byKind[PropPedestrianBridge][0].Z)
	require.Len(t, byKind[PropHighwaySign], 2)
	assert.Equal(t, "AV. Leopoldo Lugones", byKind[PropHighwaySign][0].Label)
	assert.Equal(t, 0.0, byKind[PropHighwaySign][0].Z)
	assert.Equal(t, "AV. Int Cantilo", byKind[PropHighwaySign][1].Label)
	assert.Equal(t, 650.0, byKind[PropHighwaySign][1].Z)
	assert.Len(t, cfg.Decorations, 3)
}

func TestCityscapeFlanksCorridor(t *testing.T) {
	scene, _ := generate(t, 9, Params{World: 1, Level: 1})
	minZ, maxZ, ok := scene.DepthBounds()
	require.True(t, ok)

	buildings := 0
	for _, p := range scene.Props {
		if p.Kind != PropBuilding {
			continue
		}
		buildings++
		if p.Z < minZ {
			assert.LessOrEqual(t, p.Z, minZ-cityscapeMargin)
			assert.Greater(t, p.Z, minZ-cityscapeMargin-cityscapeJitter)
		} else {
			assert.GreaterOrEqual(t, p.Z, maxZ+cityscapeMargin)
			assert.Less(t, p.Z, maxZ+cityscapeMargin+cityscapeJitter)
		}
		h := p.Parts[0].Height
		assert.GreaterOrEqual(t, h, 50.0)
		assert.Less(t, h, 200.0)
	}
	// x runs from -1000 to 950 in steps of 150, two buildings per step
	assert.Equal(t, 28, buildings)

	freeRoam, _ := generate(t, 9, Params{FreeRoam: true, Stadium: "cilindro"})
	for _, p := range freeRoam.Props {
		assert.NotEqual(t, PropBuilding, p.Kind)
	}
}

func TestLevelTwoIsFaster(t *testing.T) {
	for w := 1; w <= config.WorldCount; w++ {
		one, _ := generate(t, 11, Params{World: w, Level: 1})
		two, cfg := generate(t, 11, Params{World: w, Level: 2})
		require.Equal(t, len(one.Lanes), len(two.Lanes))
		for i := range one.Lanes {
			if !one.Lanes[i].Hazardous() {
				continue
			}
			assert.InDelta(t, one.Lanes[i].Speed*cfg.LevelSpeed, two.Lanes[i].Speed, 1e-9)
			assert.Greater(t, abs(two.Lanes[i].Speed), abs(one.Lanes[i].Speed))
		}
	}
}

func TestDifficulty(t *testing.T) {
	assert.Equal(t, 1.0, Difficulty(1, false))
	assert.InDelta(t, 1.2, Difficulty(5, false), 1e-12)
	assert.Equal(t, 1.0, Difficulty(5, true))
}

func TestConfigForRejectsUnknown(t *testing.T) {
	_, err := ConfigFor(Params{World: 6, Level: 1})
	assert.ErrorIs(t, err, ErrUnknownWorld)
	_, err = ConfigFor(Params{World: 1, Level: 3})
	assert.Error(t, err)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func TestStats(t *testing.T) {
	tests := []struct {
		name              string
		p                 Params
		safe, road, track int
	}{
		{name: "highway", p: Params{World: 1, Level: 1}, safe: 3, road: 8},
		{name: "university", p: Params{World: 2, Level: 1}, safe: 4, road: 8, track: 2},
		{name: "free roam", p: Params{FreeRoam: true, Stadium: "cilindro"}, safe: 3, road: 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene, cfg := generate(t, 4, tt.p)
			st := scene.Stats()
			assert.Equal(t, tt.safe, st.Safe)
			assert.Equal(t, tt.road, st.Road)
			assert.Equal(t, tt.track, st.Track)
			assert.Equal(t, tt.road+tt.track, st.Hazard)
			assert.Equal(t, len(scene.Obstacles), st.Obstacles)
			assert.GreaterOrEqual(t, st.Busiest, 1)
			assert.LessOrEqual(t, st.Busiest, cfg.MaxPerLane)
		})
	}
	assert.Equal(t, Stats{}, (&Scene{}).Stats())
}

func TestLaneAt(t *testing.T) {
	scene, _ := generate(t, 1, Params{World: 1, Level: 1})

	l, ok := scene.LaneAt(0, config.LaneWidth)
	require.True(t, ok)
	assert.Equal(t, 0, l.Index)

	l, ok = scene.LaneAt(config.LaneWidth+config.LaneWidth/2-0.1, config.LaneWidth)
	require.True(t, ok)
	assert.Equal(t, 1, l.Index)
	assert.Equal(t, LaneRoad, l.Kind)

	_, ok = scene.LaneAt(-config.LaneWidth, config.LaneWidth)
	assert.False(t, ok)
}
