package world

import (
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/golangdaddy/crossing/pkg/log"
)

// Request asks for a decoration model on behalf of one scene generation.
type Request struct {
	Generation uint64
	Decoration Decoration
}

// Manager owns the scene and rebuilds it on level transitions.
type Manager struct {
	gen    *Generator
	scene  Scene
	cfg    LevelConfig
	params Params
}

func NewManager(gen *Generator) *Manager {
	return &Manager{gen: gen}
}

func (m *Manager) Scene() *Scene {
	return &m.scene
}

func (m *Manager) Config() LevelConfig {
	return m.cfg
}

func (m *Manager) Params() Params {
	return m.params
}

// Teardown removes every generated object and invalidates outstanding
// decoration requests.
func (m *Manager) Teardown() {
	m.scene.Clear()
	m.scene.Generation++
}

// Rebuild tears down the current level and generates the one described by
// p. The returned requests should be handed to a loader; their results come
// back through Attach.
func (m *Manager) Rebuild(p Params) ([]Request, error) {
	cfg, err := ConfigFor(p)
	if err != nil {
		return nil, fmt.Errorf("rebuild level: %w", err)
	}
	m.Teardown()
	m.cfg, m.params = cfg, p
	m.gen.Generate(&m.scene, cfg)

	gen := m.scene.Generation
	reqs := lo.Map(cfg.Decorations, func(d Decoration, _ int) Request {
		return Request{Generation: gen, Decoration: d}
	})
	log.Logger.Info("level built",
		zap.Int("world", p.World),
		zap.Int("level", p.Level),
		zap.Bool("freeRoam", p.FreeRoam),
		zap.Uint64("generation", gen),
		zap.Int("decorations", len(reqs)))
	return reqs, nil
}

// Attach places a loaded decoration. Failed loads, invalid models and
// results for a torn-down generation are logged and dropped.
func (m *Manager) Attach(r Request, model Model, loadErr error) bool {
	fields := []zap.Field{zap.String("decoration", r.Decoration.Name), zap.String("asset", r.Decoration.Asset)}
	if r.Generation != m.scene.Generation {
		log.Logger.Debug("stale decoration dropped", append(fields, zap.Uint64("generation", r.Generation))...)
		return false
	}
	if loadErr != nil {
		log.Logger.Warn("decoration failed to load", append(fields, zap.Error(loadErr))...)
		return false
	}
	if err := m.scene.addDecoration(r.Decoration, model); err != nil {
		log.Logger.Warn("decoration discarded", append(fields, zap.Error(err))...)
		return false
	}
	return true
}
