package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/crossing/pkg/background"
	"github.com/golangdaddy/crossing/pkg/flow"
	"github.com/golangdaddy/crossing/pkg/log"
	"github.com/golangdaddy/crossing/pkg/ui"
	"github.com/golangdaddy/crossing/pkg/world"
)

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// Options configure the host window and effects.
type Options struct {
	Width  int
	Height int
	Seed   int64
	Mute   bool
}

// Game implements ebiten.Game. It shows the screen matching the
// controller's state and rebuilds it whenever that state changes.
type Game struct {
	ctrl     *flow.Controller
	opts     Options
	current  Screen
	shown    flow.State
	backdrop *ebiten.Image
	tiles    map[world.Surface]*ebiten.Image
}

func NewGame(ctrl *flow.Controller, opts Options) (*Game, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid window size %dx%d", opts.Width, opts.Height)
	}
	g := &Game{
		ctrl:     ctrl,
		opts:     opts,
		backdrop: ebiten.NewImageFromImage(background.NewGenerator(opts.Width/2, opts.Height/2).Meadow(opts.Seed)),
		tiles:    laneTiles(opts.Seed),
	}
	if opts.Mute {
		log.Logger.Info("sound muted")
	} else {
		NewSoundboard().Attach(ctrl.Events())
	}
	return g, nil
}

func (g *Game) screenFor(s flow.State) Screen {
	c := g.ctrl
	switch s {
	case flow.Info:
		return ui.NewInfoScreen(flow.Callback("back", c.Back))
	case flow.WorldSelect:
		return ui.NewWorldSelectScreen(g.backdrop, c)
	case flow.UnlockPrompt:
		return ui.NewUnlockScreen(c.SubmitCode, flow.Callback("back", c.Back))
	case flow.StadiumSelect:
		return ui.NewStadiumSelectScreen(g.backdrop, c)
	case flow.CharacterSelect:
		return ui.NewCharacterSelectionScreen(c.StartGame, flow.Callback("back", c.Back))
	case flow.Playing:
		return NewGameplayScreen(c, g.tiles)
	case flow.GameOver, flow.Fallen, flow.Won, flow.Completed:
		return ui.NewResultScreen(g.backdrop, c)
	}
	return ui.NewTitleScreen(g.backdrop, c.OpenWorldSelect, c.ShowInfo)
}

// Update handles input for the current screen, then advances play by one
// tick.
func (g *Game) Update() error {
	if g.current == nil || g.ctrl.State() != g.shown {
		g.shown = g.ctrl.State()
		g.current = g.screenFor(g.shown)
	}
	if err := g.current.Update(); err != nil {
		return err
	}
	g.ctrl.Update(1 / float64(ebiten.TPS()))
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.current != nil {
		g.current.Draw(screen)
	}
}

// Layout returns the game's logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.opts.Width, g.opts.Height
}

// Run opens the window and blocks until it is closed.
func Run(ctrl *flow.Controller, opts Options) error {
	g, err := NewGame(ctrl, opts)
	if err != nil {
		return err
	}
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle("Crossing")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
