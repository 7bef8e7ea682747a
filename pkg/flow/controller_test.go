package flow

import (
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/golangdaddy/crossing/pkg/assets"
	"github.com/golangdaddy/crossing/pkg/config"
	"github.com/golangdaddy/crossing/pkg/log"
	"github.com/golangdaddy/crossing/pkg/mathutil"
	"github.com/golangdaddy/crossing/pkg/models"
	"github.com/golangdaddy/crossing/pkg/sim"
	"github.com/golangdaddy/crossing/pkg/store"
	"github.com/golangdaddy/crossing/pkg/world"
)

const frame = 1.0 / 60

type fakeModel struct{}

func (fakeModel) Bounds() image.Rectangle { return image.Rect(0, 0, 64, 64) }

func newController(t *testing.T, kv *store.Store, loader DecorationLoader) *Controller {
	t.Helper()
	m := world.NewManager(world.NewGenerator(mathutil.NewRand(3)))
	c, err := NewController(kv, m, loader)
	require.NoError(t, err)
	return c
}

func play(t *testing.T, c *Controller, worldID int) {
	t.Helper()
	require.NoError(t, c.OpenWorldSelect())
	require.NoError(t, c.SelectWorld(worldID))
	require.NoError(t, c.StartGame(sim.Pig))
	require.Equal(t, Playing, c.State())
}

func run(c *Controller, n int) {
	for i := 0; i < n; i++ {
		c.Update(frame)
	}
}

func winLevel(t *testing.T, c *Controller) {
	t.Helper()
	c.Scene().Obstacles = nil
	for i := 0; c.State() == Playing && i < 20; i++ {
		require.True(t, c.Move(sim.Forward))
		run(c, 40)
	}
	require.NotEqual(t, Playing, c.State())
}

func TestMenuNavigation(t *testing.T) {
	c := newController(t, store.Memory(), nil)
	assert.Equal(t, MainMenu, c.State())

	require.NoError(t, c.ShowInfo())
	assert.Equal(t, Info, c.State())
	require.NoError(t, c.Back())
	assert.Equal(t, MainMenu, c.State())

	assert.ErrorIs(t, c.SelectWorld(1), ErrInvalidState)
	assert.ErrorIs(t, c.Back(), ErrInvalidState)

	require.NoError(t, c.OpenWorldSelect())
	require.NoError(t, c.SelectWorld(1))
	assert.Equal(t, CharacterSelect, c.State())
	require.NoError(t, c.Back())
	assert.Equal(t, WorldSelect, c.State())
	require.NoError(t, c.Back())
	assert.Equal(t, MainMenu, c.State())
}

func TestSelectWorldRules(t *testing.T) {
	c := newController(t, store.Memory(), nil)
	require.NoError(t, c.OpenWorldSelect())

	assert.ErrorIs(t, c.SelectWorld(2), ErrWorldLocked)
	assert.ErrorIs(t, c.SelectWorld(9), world.ErrUnknownWorld)
	assert.Equal(t, WorldSelect, c.State())

	c.progress.Level = 2
	require.NoError(t, c.SelectWorld(1))
	assert.Equal(t, 1, c.Progress().Level)
}

func TestFreeRoamUnlock(t *testing.T) {
	c := newController(t, store.Memory(), nil)
	require.NoError(t, c.OpenWorldSelect())
	require.NoError(t, c.RequestFreeRoam())
	assert.Equal(t, UnlockPrompt, c.State())

	assert.ErrorIs(t, c.SubmitCode("nope"), ErrWrongCode)
	assert.Equal(t, UnlockPrompt, c.State())

	require.NoError(t, c.SubmitCode("  mlpmqtp \n"))
	assert.Equal(t, StadiumSelect, c.State())
	assert.ErrorIs(t, c.SelectStadium("wembley"), ErrUnknownStadium)

	require.NoError(t, c.Back())
	require.NoError(t, c.RequestFreeRoam())
	assert.Equal(t, StadiumSelect, c.State(), "code is asked once per run")

	require.NoError(t, c.SelectStadium("bombonera"))
	require.NoError(t, c.StartGame(sim.Chicken))
	assert.Equal(t, world.FamilyFreeRoam, c.Level().Family)

	c.Scene().Obstacles = []world.Obstacle{{Kind: world.ObstacleCar, Width: 30, Depth: 20}}
	for i := 0; i < 3; i++ {
		c.Move(sim.Backward)
	}
	run(c, 600)
	assert.Equal(t, Playing, c.State(), "free roam has no collisions, falls or goal")
}

func TestWinAdvancesThroughLevels(t *testing.T) {
	kv := store.Memory()
	c := newController(t, kv, nil)
	won := 0
	c.Events().Subscribe(EventLevelWon, func(Event) { won++ })

	play(t, c, 1)
	winLevel(t, c)
	assert.Equal(t, Won, c.State())
	assert.Equal(t, OfferNextLevel, c.Offer())
	assert.Equal(t, config.WinReward, c.Progress().Coins)

	require.NoError(t, c.NextLevel())
	assert.Equal(t, Playing, c.State())
	assert.Equal(t, 2, c.Progress().Level)
	assert.Equal(t, config.WinReward, c.Progress().Coins, "level two is free")
	assert.Equal(t, 2.5, c.Level().LevelSpeed)

	winLevel(t, c)
	assert.Equal(t, OfferUnlockWorld, c.Offer())
	require.NoError(t, c.NextLevel())

	p := c.Progress()
	assert.Equal(t, 2, p.World)
	assert.Equal(t, 1, p.Level)
	assert.Zero(t, p.Coins)
	assert.Equal(t, 2, p.MaxUnlockedWorld)
	assert.Equal(t, 2, kv.Int(models.KeyMaxUnlockedWorld, 0))
	assert.Equal(t, world.FamilyUniversity, c.Level().Family)
	assert.Equal(t, 2, won)
}

func TestNeedCoinsBlocksAdvance(t *testing.T) {
	c := newController(t, store.Memory(), nil)
	play(t, c, 1)
	winLevel(t, c)
	require.NoError(t, c.NextLevel())

	c.progress.Coins = 0
	winLevel(t, c)
	assert.Equal(t, OfferNeedCoins, c.Offer())
	assert.ErrorIs(t, c.NextLevel(), ErrInsufficientCoins)
	assert.Equal(t, Won, c.State())
	assert.Equal(t, config.WinReward, c.Progress().Coins)
	assert.Equal(t, 1, c.Progress().World)
	assert.Equal(t, 1, c.Progress().MaxUnlockedWorld)
}

func TestCompletingLastWorld(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	kv, err := store.Open(path)
	require.NoError(t, err)
	require.NoError(t, kv.SetInt(models.KeyMaxUnlockedWorld, config.WorldCount))

	c := newController(t, kv, nil)
	play(t, c, config.WorldCount)
	winLevel(t, c)
	require.NoError(t, c.NextLevel())
	winLevel(t, c)

	assert.Equal(t, Completed, c.State())
	assert.Equal(t, OfferCompleted, c.Offer())
	assert.ErrorIs(t, c.NextLevel(), ErrNoMoreWorlds)

	// the last level can be replayed, wearing a newly equipped skin
	require.NoError(t, c.EquipSkin(sim.SkinBocaShirt))
	require.NoError(t, c.Retry())
	assert.Equal(t, Playing, c.State())
	assert.Equal(t, config.WorldCount, c.Progress().World)
	assert.Equal(t, config.LevelsPerWorld, c.Progress().Level)
	assert.Equal(t, sim.ShirtBoca, c.Session().Player.Look.Shirt)
	winLevel(t, c)
	require.Equal(t, Completed, c.State())

	require.NoError(t, c.FinishGame())
	assert.Equal(t, MainMenu, c.State())

	reopened, err := store.Open(path)
	require.NoError(t, err)
	next := newController(t, reopened, nil)
	assert.Equal(t, config.WorldCount, next.Progress().MaxUnlockedWorld)
	assert.Equal(t, 1, reopened.Int(models.KeyMaxUnlockedWorld, 0))
}

func TestCollisionEndsGame(t *testing.T) {
	c := newController(t, store.Memory(), nil)
	hits := 0
	c.Events().Subscribe(EventHit, func(Event) { hits++ })
	play(t, c, 1)

	c.Scene().Obstacles = []world.Obstacle{{Kind: world.ObstacleCar, Width: 30, Depth: 20}}
	c.Update(frame)

	assert.Equal(t, GameOver, c.State())
	assert.Equal(t, MessageHit, c.Message())
	assert.Zero(t, c.Progress().Coins)
	assert.Equal(t, 1, hits)
	assert.False(t, c.Move(sim.Forward))
}

func TestFallIsDeferred(t *testing.T) {
	c := newController(t, store.Memory(), nil)
	play(t, c, 1)
	c.Scene().Obstacles = nil

	c.Move(sim.Backward)
	ticks := 0
	for c.State() == Playing && ticks < 1000 {
		c.Update(frame)
		ticks++
	}
	assert.Equal(t, Fallen, c.State())
	assert.Equal(t, MessageFell, c.Message())
	assert.GreaterOrEqual(t, ticks, int(config.FallDelay*config.ReferenceTPS))
}

func TestRetryAppliesSkin(t *testing.T) {
	kv := store.Memory()
	c := newController(t, kv, nil)
	play(t, c, 1)
	c.Scene().Obstacles = []world.Obstacle{{Kind: world.ObstacleCar, Width: 30, Depth: 20}}
	c.Update(frame)
	require.Equal(t, GameOver, c.State())

	assert.ErrorIs(t, c.EquipSkin("tuxedo"), ErrUnknownSkin)
	require.NoError(t, c.EquipSkin(sim.SkinGala))
	saved, err := kv.Get(models.KeySkin)
	require.NoError(t, err)
	assert.Equal(t, "gala", saved)

	require.NoError(t, c.Retry())
	assert.Equal(t, Playing, c.State())
	assert.Equal(t, color.RGBA{0, 0, 0, 0xff}, c.Session().Player.Look.Body)
	assert.Equal(t, sim.Vec3{}, c.Session().Player.Pos)
	assert.Equal(t, 1.0, c.Session().Camera.Zoom)
}

func TestZoomResetsWithLevel(t *testing.T) {
	c := newController(t, store.Memory(), nil)
	play(t, c, 1)
	c.SetZoom(2)
	assert.Equal(t, 2.0, c.Session().Camera.Zoom)
	winLevel(t, c)
	require.NoError(t, c.NextLevel())
	assert.Equal(t, 1.0, c.Session().Camera.Zoom)
}

func TestReturnToMenuTearsDown(t *testing.T) {
	c := newController(t, store.Memory(), nil)
	play(t, c, 1)
	require.NotEmpty(t, c.Scene().Lanes)

	require.NoError(t, c.ReturnToMenu())
	assert.Equal(t, MainMenu, c.State())
	assert.Nil(t, c.Session())
	assert.Empty(t, c.Scene().Lanes)
	assert.Empty(t, c.Scene().Obstacles)
	assert.False(t, c.Move(sim.Forward))
	require.NoError(t, c.ReturnToMenu())
}

func TestDecorationsAttachAfterLoad(t *testing.T) {
	loader := assets.NewLoader("assets", func(string) (world.Model, error) { return fakeModel{}, nil })
	kv := store.Memory()
	require.NoError(t, kv.SetInt(models.KeyMaxUnlockedWorld, 2))
	c := newController(t, kv, loader)

	play(t, c, 2)
	assert.Empty(t, c.Scene().Decorations, "generation does not wait for decorations")
	loader.Wait()
	c.Update(frame)
	assert.Len(t, c.Scene().Decorations, 3)
}

func TestStaleDecorationsDropped(t *testing.T) {
	loader := assets.NewLoader("assets", func(string) (world.Model, error) { return fakeModel{}, nil })
	kv := store.Memory()
	require.NoError(t, kv.SetInt(models.KeyMaxUnlockedWorld, 2))
	c := newController(t, kv, loader)

	play(t, c, 2)
	require.NoError(t, c.ReturnToMenu())
	loader.Wait()
	c.Update(frame)
	assert.Empty(t, c.Scene().Decorations)
}

func TestFailedDecorationIsHarmless(t *testing.T) {
	loader := assets.NewLoader("assets", func(string) (world.Model, error) { return nil, errors.New("missing") })
	kv := store.Memory()
	require.NoError(t, kv.SetInt(models.KeyMaxUnlockedWorld, 2))
	c := newController(t, kv, loader)

	play(t, c, 2)
	lanes := len(c.Scene().Lanes)
	loader.Wait()
	c.Update(frame)
	assert.Empty(t, c.Scene().Decorations)
	assert.Equal(t, lanes, len(c.Scene().Lanes))
	assert.Equal(t, Playing, c.State())
}

func TestStateNames(t *testing.T) {
	assert.Equal(t, "character-select", CharacterSelect.String())
	assert.Equal(t, "unknown", State(99).String())
	assert.True(t, Fallen.Result())
	assert.False(t, Playing.Result())
	assert.Equal(t, "need-coins", OfferNeedCoins.String())
}

func TestCallbackLogsRefusal(t *testing.T) {
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })
	core, logs := observer.New(zapcore.DebugLevel)
	log.Logger = zap.New(core)

	c := newController(t, store.Memory(), nil)
	back := Callback("back", c.Back)

	back()
	assert.Equal(t, MainMenu, c.State())
	entries := logs.FilterMessage("action refused").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "back", entries[0].ContextMap()["action"])
	assert.Contains(t, entries[0].ContextMap()["error"], ErrInvalidState.Error())

	require.NoError(t, c.OpenWorldSelect())
	back()
	assert.Equal(t, MainMenu, c.State())
	assert.Equal(t, 1, logs.FilterMessage("action refused").Len())
}
