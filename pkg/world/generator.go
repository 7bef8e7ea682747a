package world

import (
	"go.uber.org/zap"

	"github.com/golangdaddy/crossing/pkg/config"
	"github.com/golangdaddy/crossing/pkg/log"
	"github.com/golangdaddy/crossing/pkg/mathutil"
)

const (
	roadsPerCarriageway = 4
	cityscapeMargin     = 250.0
	cityscapeJitter     = 300.0
	cityscapeStep       = 150.0
	cityscapeSpread     = 100.0
)

// Generator lays out levels into a Scene.
type Generator struct {
	rng     *mathutil.Rand
	spawner *Spawner
}

func NewGenerator(rng *mathutil.Rand) *Generator {
	return &Generator{rng: rng, spawner: NewSpawner(rng)}
}

// Generate appends the lanes, obstacles and props of one level to scene.
// Decorations are loaded separately and attached once ready.
func (g *Generator) Generate(scene *Scene, cfg LevelConfig) {
	b := &builder{g: g, scene: scene, cfg: cfg}
	switch cfg.Family {
	case FamilyUniversity:
		b.university()
	case FamilyFreeRoam:
		b.freeRoam()
	default:
		b.highway()
	}
	if cfg.Cityscape {
		g.cityscape(scene)
	}
	log.Logger.Debug("level generated",
		zap.Stringer("family", cfg.Family),
		zap.Int("lanes", len(scene.Lanes)),
		zap.Int("obstacles", len(scene.Obstacles)),
		zap.Int("props", len(scene.Props)))
}

// builder walks the corridor from depth 0, one lane width at a time.
type builder struct {
	g     *Generator
	scene *Scene
	cfg   LevelConfig
	z     float64
}

func (b *builder) push(l Lane) {
	l.Index = len(b.scene.Lanes)
	l.Z = b.z
	b.scene.Lanes = append(b.scene.Lanes, l)
	b.z += config.LaneWidth
}

func (b *builder) safe(surface Surface) {
	b.push(Lane{Kind: LaneSafe, Surface: surface})
}

// speed draws a lane speed for the given direction (+1 or -1).
func (b *builder) speed(dir float64) float64 {
	draw := b.g.rng.Float64()*b.cfg.SpeedJitter + b.cfg.BaseSpeed
	return draw * dir * config.SpeedFactor * b.cfg.Difficulty * b.cfg.LevelSpeed
}

func (b *builder) road(speed float64) {
	limit := b.cfg.MaxPerLane
	if limit < 1 {
		limit = 1
	}
	count := b.g.rng.Intn(limit) + 1
	for i := 0; i < count; i++ {
		b.scene.Obstacles = append(b.scene.Obstacles, b.g.spawner.Vehicle(b.z, speed, b.g.spawner.Offset()))
	}
	b.push(Lane{Kind: LaneRoad, Surface: SurfaceAsphalt, Speed: speed, Capacity: limit})
}

func (b *builder) track(speed float64) {
	b.scene.Obstacles = append(b.scene.Obstacles, b.g.spawner.Train(b.z, speed, b.g.spawner.Offset()))
	b.push(Lane{Kind: LaneTrack, Surface: SurfaceGravel, Speed: speed, Capacity: 1})
}

func (b *builder) carriageway(dir float64) {
	for i := 0; i < roadsPerCarriageway; i++ {
		b.road(b.speed(dir))
	}
}

func (b *builder) prop(p Prop) {
	b.scene.Props = append(b.scene.Props, p)
}

// guardRails closes the corridor one lane width inside each edge.
func (b *builder) guardRails() {
	b.prop(NewGuardRail(0.5 * config.LaneWidth))
	b.prop(NewGuardRail(b.z - 1.5*config.LaneWidth))
}

func (b *builder) highway() {
	b.safe(SurfaceGrass)
	b.carriageway(1)
	b.prop(NewMedianStrip(b.z))
	b.safe(SurfaceMedian)
	b.carriageway(-1)
	b.safe(SurfaceGrass)
	b.guardRails()
}

func (b *builder) university() {
	b.safe(SurfaceGrass)
	sections := b.cfg.Sections
	if sections < 1 {
		sections = 1
	}
	train := b.cfg.TrainSpeed * b.cfg.Difficulty * b.cfg.LevelSpeed
	for i := 0; i < sections; i++ {
		b.prop(NewHighwaySign(b.z-config.LaneWidth, "AV. Leopoldo Lugones", 0.9))
		b.carriageway(1)
		b.safe(SurfaceGrass)

		tracks := b.z
		b.track(train)
		b.track(-train)
		b.prop(NewTrainStation(tracks + config.LaneWidth))
		b.prop(NewPedestrianBridge(tracks-config.LaneWidth, tracks))

		b.safe(SurfaceGrass)
		b.carriageway(-1)
		b.prop(NewHighwaySign(b.z, "AV. Int Cantilo", 0.9))
		b.safe(SurfaceGrass)
	}
	b.guardRails()
}

func (b *builder) freeRoam() {
	b.safe(SurfaceGrass)
	b.carriageway(1)
	b.safe(SurfaceGrass)
	b.carriageway(-1)
	b.safe(SurfaceGrass)
	b.guardRails()
}

// cityscape lines both sides of the corridor with buildings.
func (g *Generator) cityscape(scene *Scene) {
	minZ, maxZ, ok := scene.DepthBounds()
	if !ok {
		return
	}
	for x := -config.CorridorBound; x < config.CorridorBound; x += cityscapeStep {
		near := minZ - cityscapeMargin - g.rng.Float64()*cityscapeJitter
		scene.Props = append(scene.Props, NewBuilding(g.rng, x+g.rng.Float64()*cityscapeSpread, near))
		far := maxZ + cityscapeMargin + g.rng.Float64()*cityscapeJitter
		scene.Props = append(scene.Props, NewBuilding(g.rng, x+g.rng.Float64()*cityscapeSpread, far))
	}
}
