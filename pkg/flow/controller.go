package flow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/golangdaddy/crossing/pkg/assets"
	"github.com/golangdaddy/crossing/pkg/config"
	"github.com/golangdaddy/crossing/pkg/log"
	"github.com/golangdaddy/crossing/pkg/models"
	"github.com/golangdaddy/crossing/pkg/sim"
	"github.com/golangdaddy/crossing/pkg/store"
	"github.com/golangdaddy/crossing/pkg/world"
)

var (
	ErrInvalidState      = errors.New("action not allowed here")
	ErrWorldLocked       = errors.New("world is locked")
	ErrInsufficientCoins = errors.New("not enough coins")
	ErrWrongCode         = errors.New("wrong unlock code")
	ErrNoMoreWorlds      = errors.New("no more worlds")
	ErrUnknownStadium    = errors.New("unknown stadium")
	ErrUnknownSkin       = errors.New("unknown skin")
)

const (
	MessageHit  = "YOU GOT HIT!"
	MessageFell = "YOU FELL!"
)

// DecorationLoader fetches decoration models in the background.
type DecorationLoader interface {
	Load(ctx context.Context, reqs []world.Request)
	Drain(fn func(assets.Result)) int
}

// Controller owns everything a running game mutates: progress, the scene,
// the play session and the current screen. Screens read it and call its
// actions; they never change state on their own.
type Controller struct {
	state    State
	progress *models.Progress
	kv       *store.Store
	worlds   *world.Manager
	loader   DecorationLoader
	session  *sim.Session
	bus      *EventBus

	offer   Offer
	message string
	cancel  context.CancelFunc
}

// NewController restores progress from kv and opens on the main menu.
// loader may be nil, in which case decorations are never loaded.
func NewController(kv *store.Store, worlds *world.Manager, loader DecorationLoader) (*Controller, error) {
	p, err := models.LoadProgress(kv)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	return &Controller{
		state:    MainMenu,
		progress: p,
		kv:       kv,
		worlds:   worlds,
		loader:   loader,
		bus:      NewEventBus(),
	}, nil
}

// Callback adapts action for callers that have nowhere to report its error,
// such as back buttons. A refused action is logged at debug level.
func Callback(name string, action func() error) func() {
	return func() {
		if err := action(); err != nil {
			log.Logger.Debug("action refused", zap.String("action", name), zap.Error(err))
		}
	}
}

func (c *Controller) State() State {
	return c.state
}

// Progress returns a snapshot of the player's progress.
func (c *Controller) Progress() models.Progress {
	return *c.progress
}

func (c *Controller) Events() *EventBus {
	return c.bus
}

// Session is nil until the first game starts.
func (c *Controller) Session() *sim.Session {
	return c.session
}

func (c *Controller) Scene() *world.Scene {
	return c.worlds.Scene()
}

func (c *Controller) Level() world.LevelConfig {
	return c.worlds.Config()
}

func (c *Controller) Offer() Offer {
	return c.offer
}

// Message is the text shown on the game over screens.
func (c *Controller) Message() string {
	return c.message
}

func (c *Controller) set(s State) {
	if s == c.state {
		return
	}
	log.Logger.Debug("state changed", zap.Stringer("from", c.state), zap.Stringer("to", s))
	c.state = s
	c.bus.Emit(Event{Type: EventStateChanged, State: s})
}

func (c *Controller) expect(states ...State) error {
	if lo.Contains(states, c.state) {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidState, c.state)
}

func (c *Controller) OpenWorldSelect() error {
	if err := c.expect(MainMenu); err != nil {
		return err
	}
	c.bus.Emit(Event{Type: EventMenuSelect})
	c.set(WorldSelect)
	return nil
}

func (c *Controller) ShowInfo() error {
	if err := c.expect(MainMenu); err != nil {
		return err
	}
	c.set(Info)
	return nil
}

// Back leaves a menu screen for the one before it.
func (c *Controller) Back() error {
	switch c.state {
	case Info, WorldSelect:
		c.set(MainMenu)
	case UnlockPrompt, StadiumSelect, CharacterSelect:
		c.set(WorldSelect)
	default:
		return fmt.Errorf("%w: %s", ErrInvalidState, c.state)
	}
	return nil
}

// SelectWorld picks a regular world and starts it from level 1.
func (c *Controller) SelectWorld(id int) error {
	if err := c.expect(WorldSelect); err != nil {
		return err
	}
	if _, err := world.Lookup(id); err != nil {
		return err
	}
	if !c.progress.IsWorldUnlocked(id) {
		return fmt.Errorf("world %d: %w", id, ErrWorldLocked)
	}
	c.progress.World = id
	c.progress.Level = 1
	c.progress.FreeRoam = false
	c.progress.Stadium = ""
	c.bus.Emit(Event{Type: EventMenuSelect})
	c.set(CharacterSelect)
	return nil
}

// RequestFreeRoam asks for the code once per run, then goes to stadium
// selection.
func (c *Controller) RequestFreeRoam() error {
	if err := c.expect(WorldSelect); err != nil {
		return err
	}
	if c.progress.FreeRoamUnlocked {
		c.set(StadiumSelect)
	} else {
		c.set(UnlockPrompt)
	}
	return nil
}

// SubmitCode checks an unlock code ignoring case and surrounding spaces.
// A wrong code leaves the prompt open.
func (c *Controller) SubmitCode(code string) error {
	if err := c.expect(UnlockPrompt); err != nil {
		return err
	}
	if strings.ToUpper(strings.TrimSpace(code)) != config.FreeRoamCode {
		log.Logger.Info("wrong free roam code")
		return ErrWrongCode
	}
	c.progress.FreeRoamUnlocked = true
	c.set(StadiumSelect)
	return nil
}

func (c *Controller) SelectStadium(name string) error {
	if err := c.expect(StadiumSelect); err != nil {
		return err
	}
	if !lo.Contains(world.Stadiums, name) {
		return fmt.Errorf("%q: %w", name, ErrUnknownStadium)
	}
	c.progress.FreeRoam = true
	c.progress.Stadium = name
	c.progress.World = 0
	c.progress.Level = 1
	c.bus.Emit(Event{Type: EventMenuSelect})
	c.set(CharacterSelect)
	return nil
}

// StartGame creates the player and builds the selected level.
func (c *Controller) StartGame(a sim.Animal) error {
	if err := c.expect(CharacterSelect); err != nil {
		return err
	}
	c.session = sim.NewSession(c.worlds.Scene(), sim.NewPlayer(a))
	log.Logger.Info("game started",
		zap.String("session", c.session.ID),
		zap.Stringer("animal", a),
		zap.Int("world", c.progress.World),
		zap.Bool("freeRoam", c.progress.FreeRoam))
	return c.startLevel()
}

func (c *Controller) params() world.Params {
	return world.Params{
		World:    c.progress.World,
		Level:    c.progress.Level,
		FreeRoam: c.progress.FreeRoam,
		Stadium:  c.progress.Stadium,
	}
}

// startLevel rebuilds the scene for the current progress and restarts the
// session on it. Loads still in flight for the old scene are cancelled.
func (c *Controller) startLevel() error {
	reqs, err := c.worlds.Rebuild(c.params())
	if err != nil {
		return err
	}
	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	if c.loader != nil && len(reqs) > 0 {
		c.loader.Load(ctx, reqs)
	}

	c.session.Player.ApplySkin(sim.Skin(c.progress.Skin))
	c.session.Start(c.worlds.Config())
	c.offer = OfferNone
	c.message = ""
	c.set(Playing)
	return nil
}

// Move forwards a movement command while playing.
func (c *Controller) Move(d sim.Direction) bool {
	if c.state != Playing {
		return false
	}
	return c.session.Move(d)
}

func (c *Controller) SetZoom(z float64) {
	if c.session != nil {
		c.session.Camera.SetZoom(z)
	}
}

// Update attaches finished decoration loads and advances play by dt
// seconds.
func (c *Controller) Update(dt float64) {
	if c.loader != nil {
		c.loader.Drain(func(r assets.Result) {
			c.worlds.Attach(r.Request, r.Model, r.Err)
		})
	}
	if c.state != Playing {
		return
	}
	switch c.session.Step(dt) {
	case sim.Collided:
		c.message = MessageHit
		c.bus.Emit(Event{Type: EventHit})
		c.set(GameOver)
	case sim.Fallen:
		c.message = MessageFell
		c.bus.Emit(Event{Type: EventFell})
		c.set(Fallen)
	case sim.WonLevel:
		c.win()
	}
}

func (c *Controller) win() {
	c.progress.AddCoins(config.WinReward)
	c.saveWallet()
	c.offer = c.nextOffer()
	log.Logger.Info("level won",
		zap.Int("world", c.progress.World),
		zap.Int("level", c.progress.Level),
		zap.Int("coins", c.progress.Coins),
		zap.Stringer("offer", c.offer))
	c.bus.Emit(Event{Type: EventLevelWon, Data: c.progress.Coins})
	if c.offer == OfferCompleted {
		c.set(Completed)
		return
	}
	c.set(Won)
}

func (c *Controller) nextOffer() Offer {
	switch {
	case c.progress.Level < config.LevelsPerWorld:
		return OfferNextLevel
	case c.progress.World >= config.WorldCount:
		return OfferCompleted
	case c.progress.Coins >= config.WorldUnlockCost:
		return OfferUnlockWorld
	}
	return OfferNeedCoins
}

// NextLevel follows the win screen's offer: level 2 of the same world, or
// the next world for a coin fee.
func (c *Controller) NextLevel() error {
	if err := c.expect(Won, Completed); err != nil {
		return err
	}
	switch c.offer {
	case OfferNextLevel:
		c.progress.Level++
	case OfferUnlockWorld:
		if !c.progress.SpendCoins(config.WorldUnlockCost) {
			return ErrInsufficientCoins
		}
		c.progress.World++
		c.progress.Level = 1
		if c.progress.UnlockWorld(c.progress.World) {
			if err := c.progress.SaveUnlocks(c.kv); err != nil {
				log.Logger.Warn("could not save unlocks", zap.Error(err))
			}
			c.bus.Emit(Event{Type: EventWorldUnlocked, Data: c.progress.World})
		}
		c.saveWallet()
	case OfferNeedCoins:
		return ErrInsufficientCoins
	case OfferCompleted:
		return ErrNoMoreWorlds
	default:
		return fmt.Errorf("%w: no offer", ErrInvalidState)
	}
	return c.startLevel()
}

// Retry replays the current world and level.
func (c *Controller) Retry() error {
	if err := c.expect(GameOver, Fallen, Won, Completed); err != nil {
		return err
	}
	return c.startLevel()
}

// FinishGame leaves the completed screen. Every world is unlocked on the
// next launch only.
func (c *Controller) FinishGame() error {
	if err := c.expect(Completed); err != nil {
		return err
	}
	if err := models.RequestUnlockAll(c.kv); err != nil {
		log.Logger.Warn("could not save unlock flag", zap.Error(err))
	}
	c.toMenu()
	return nil
}

// ReturnToMenu ends any play without reward.
func (c *Controller) ReturnToMenu() error {
	if c.state == MainMenu {
		return nil
	}
	c.toMenu()
	return nil
}

func (c *Controller) toMenu() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	if c.session != nil {
		c.session.Stop()
		c.session = nil
	}
	c.worlds.Teardown()
	c.offer = OfferNone
	c.message = ""
	c.set(MainMenu)
}

// EquipSkin changes the skin worn from the next level reset on.
func (c *Controller) EquipSkin(s sim.Skin) error {
	if err := c.expect(GameOver, Fallen, Won, Completed); err != nil {
		return err
	}
	if !lo.Contains(sim.Skins, s) {
		return fmt.Errorf("%q: %w", s, ErrUnknownSkin)
	}
	c.progress.Skin = string(s)
	c.saveWallet()
	return nil
}

func (c *Controller) saveWallet() {
	if err := c.progress.SaveWallet(c.kv); err != nil {
		log.Logger.Warn("could not save wallet", zap.Error(err))
	}
}
