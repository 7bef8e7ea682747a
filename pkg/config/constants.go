package config

// Corridor geometry
const (
	LaneWidth     = 50.0
	SpeedFactor   = 1.5
	CorridorBound = 1000.0 // obstacles wrap at +-CorridorBound
	SpawnRange    = 900.0  // initial offsets are drawn from [-SpawnRange, SpawnRange)
)

// Simulation tuning, expressed per reference tick
const (
	ReferenceTPS = 60.0
	MaxStep      = 0.1 // seconds

	CollisionDepth  = 15.0
	PlayerHalfWidth = 10.0

	PlayerSmoothing = 0.2
	SettleDistance  = 0.05
	HopHeight       = 15.0
	FallSpeed       = 5.0
	FallSpin        = 0.05
	FallDelay       = 2.0 // seconds

	CameraSmoothing = 0.1
	CameraOffsetX   = 100.0
	CameraOffsetZ   = 100.0
	CameraHeight    = 100.0
	LightOffset     = 50.0

	MinZoom = 0.5
	MaxZoom = 2.5
)

// Level-of-detail bands
const (
	DecorationVisibleDistance = 1200.0
	ObstacleVisibleDistance   = 600.0
	ObstacleShadowDistance    = 400.0
)

// Progression
const (
	WorldCount      = 5
	WinReward       = 10
	WorldUnlockCost = 20
	LevelsPerWorld  = 2
	FreeRoamCode    = "MLPMQTP"
	DifficultyStep  = 0.05
)
