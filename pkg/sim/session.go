package sim

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/golangdaddy/crossing/pkg/config"
	"github.com/golangdaddy/crossing/pkg/log"
	"github.com/golangdaddy/crossing/pkg/world"
)

// State of a play session.
type State int

const (
	Idle State = iota
	Running
	Collided
	Fallen
	WonLevel
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Collided:
		return "collided"
	case Fallen:
		return "fallen"
	case WonLevel:
		return "won"
	}
	return "unknown"
}

// Terminal reports whether the session has ended.
func (s State) Terminal() bool {
	return s == Collided || s == Fallen || s == WonLevel
}

// Session advances one level of play over a scene it does not own.
type Session struct {
	ID     string
	State  State
	Player *Player
	Camera Camera
	Light  Light
	Ticks  int
	HitBy  string // id of the obstacle that ended the run, if any

	scene *world.Scene
	cfg   world.LevelConfig
	fall  Deferred
	epoch uint64
}

func NewSession(scene *world.Scene, player *Player) *Session {
	return &Session{
		ID:     uuid.NewString(),
		Player: player,
		Camera: NewCamera(),
		scene:  scene,
	}
}

// Start resets the player and camera and begins running cfg. Any pending
// deferred transition from a previous run is discarded.
func (s *Session) Start(cfg world.LevelConfig) {
	s.epoch++
	s.fall.Cancel()
	s.cfg = cfg
	s.Player.Reset()
	s.Camera = NewCamera()
	s.Light = Light{}
	s.Ticks = 0
	s.HitBy = ""
	s.State = Running
	log.Logger.Debug("session started",
		zap.String("session", s.ID),
		zap.Stringer("family", cfg.Family),
		zap.Uint64("epoch", s.epoch))
}

// Stop halts the session without an outcome.
func (s *Session) Stop() {
	s.epoch++
	s.fall.Cancel()
	s.State = Idle
}

// Move forwards a movement command. Commands are ignored once the session
// has ended.
func (s *Session) Move(d Direction) bool {
	if s.State != Running {
		return false
	}
	s.Player.Move(d)
	return true
}

// FallPending reports whether the player is falling and the fall has not
// been declared yet.
func (s *Session) FallPending() bool {
	return s.fall.Armed()
}

// Lane returns the lane the player is hopping onto. ok is false once the
// player has left the corridor.
func (s *Session) Lane() (world.Lane, bool) {
	return s.scene.LaneAt(s.Player.Target.Z, config.LaneWidth)
}

// Step advances the session by dt seconds and returns the resulting state.
func (s *Session) Step(dt float64) State {
	if s.State != Running {
		return s.State
	}
	if dt > config.MaxStep {
		dt = config.MaxStep
	}
	if dt <= 0 {
		return s.State
	}
	k := dt * config.ReferenceTPS
	s.Ticks++

	var hit *world.Obstacle
	for i := range s.scene.Obstacles {
		o := &s.scene.Obstacles[i]
		o.Advance(k)
		if s.cfg.Collisions && hit == nil && Collides(s.Player.Pos.X, s.Player.Pos.Z, *o) {
			hit = o
		}
	}
	if hit != nil {
		s.HitBy = hit.ID
		return s.end(Collided, zap.String("obstacle", hit.ID), zap.Stringer("kind", hit.Kind))
	}

	s.Player.update(k)
	s.Camera.follow(s.Player.Target, s.Player.Pos, k)
	s.Light.follow(s.Player.Pos)
	cull(s.Camera.Pos, s.scene)

	if s.cfg.Family == world.FamilyFreeRoam {
		return s.State
	}
	if s.cfg.WinDepth > 0 && s.Player.Pos.Z >= s.cfg.WinDepth {
		return s.end(WonLevel)
	}
	if s.fall.Tick(dt, s.epoch) {
		return s.end(Fallen)
	}
	if !s.Player.Falling && s.Player.Pos.Z < -config.LaneWidth/4 {
		s.Player.Falling = true
		s.fall.Arm(config.FallDelay, s.epoch)
	}
	return s.State
}

func (s *Session) end(st State, fields ...zap.Field) State {
	s.State = st
	s.fall.Cancel()
	log.Logger.Info("session ended", append([]zap.Field{
		zap.String("session", s.ID),
		zap.Stringer("outcome", st),
		zap.Int("ticks", s.Ticks),
		zap.Float64("depth", s.Player.Pos.Z),
	}, fields...)...)
	return st
}
