package game

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/golangdaddy/crossing/pkg/background"
	"github.com/golangdaddy/crossing/pkg/config"
	"github.com/golangdaddy/crossing/pkg/flow"
	"github.com/golangdaddy/crossing/pkg/sim"
	"github.com/golangdaddy/crossing/pkg/ui"
	"github.com/golangdaddy/crossing/pkg/world"
)

const zoomStep = 0.1

var (
	hudFace       = text.NewGoXFace(bitmapfont.Face)
	surfaceColors = map[world.Surface]color.RGBA{
		world.SurfaceGrass:   {0x7c, 0xc0, 0x5a, 0xff},
		world.SurfaceMedian:  {0x8a, 0x9a, 0x7a, 0xff},
		world.SurfaceAsphalt: {0x44, 0x44, 0x4c, 0xff},
		world.SurfaceGravel:  {0x8b, 0x73, 0x55, 0xff},
	}
	groundColor = color.RGBA{0x6a, 0xa8, 0x4c, 0xff}
	laneMarking = color.RGBA{0xee, 0xee, 0xee, 0xff}
	railColor   = color.RGBA{0x66, 0x55, 0x44, 0xff}
	shadowColor = color.RGBA{0, 0, 0, 0x50}
	finishColor = color.RGBA{0xff, 0xff, 0xff, 0xff}
	windowColor = color.RGBA{0x9c, 0xd0, 0xf0, 0xff}
)

// laneTiles paints one texture per lane surface.
func laneTiles(seed int64) map[world.Surface]*ebiten.Image {
	gen := background.NewGenerator(64, 16)
	tiles := make(map[world.Surface]*ebiten.Image, len(surfaceColors))
	for s, c := range surfaceColors {
		tiles[s] = ebiten.NewImageFromImage(gen.Tile(seed+int64(s), c))
	}
	return tiles
}

// GameplayScreen draws the level from above and turns keys into moves.
// The camera is the session's smoothed camera seen straight down.
type GameplayScreen struct {
	ctrl         *flow.Controller
	tiles        map[world.Surface]*ebiten.Image
	screenWidth  float64
	screenHeight float64
	centerX      float64
	centerZ      float64
	scale        float64
}

func NewGameplayScreen(ctrl *flow.Controller, tiles map[world.Surface]*ebiten.Image) *GameplayScreen {
	return &GameplayScreen{
		ctrl:         ctrl,
		tiles:        tiles,
		screenWidth:  1024,
		screenHeight: 600,
		scale:        1,
	}
}

var moveKeys = map[ebiten.Key]sim.Direction{
	ebiten.KeyArrowUp:    sim.Forward,
	ebiten.KeyArrowDown:  sim.Backward,
	ebiten.KeyArrowLeft:  sim.Left,
	ebiten.KeyArrowRight: sim.Right,
}

const (
	padSize = 44.0
	padGap  = 6.0
)

// padButton is one key of the on-screen movement pad.
type padButton struct {
	dir      sim.Direction
	label    string
	col, row int
}

var padButtons = []padButton{
	{dir: sim.Forward, label: "^", col: 1, row: 0},
	{dir: sim.Left, label: "<", col: 0, row: 1},
	{dir: sim.Backward, label: "v", col: 1, row: 1},
	{dir: sim.Right, label: ">", col: 2, row: 1},
}

// padRect places b in the bottom left corner.
func (gs *GameplayScreen) padRect(b padButton) (x, y float64) {
	x = 20 + float64(b.col)*(padSize+padGap)
	y = gs.screenHeight - 20 - padSize - float64(1-b.row)*(padSize+padGap)
	return x, y
}

// padPressed hit-tests fresh clicks and touches against the pad.
func (gs *GameplayScreen) padPressed() []sim.Direction {
	var points []image.Point
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		points = append(points, image.Pt(ebiten.CursorPosition()))
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		points = append(points, image.Pt(ebiten.TouchPosition(id)))
	}
	var dirs []sim.Direction
	for _, pt := range points {
		for _, b := range padButtons {
			x, y := gs.padRect(b)
			px, py := float64(pt.X), float64(pt.Y)
			if px >= x && px < x+padSize && py >= y && py < y+padSize {
				dirs = append(dirs, b.dir)
			}
		}
	}
	return dirs
}

// Update handles movement, zoom and quitting to the menu.
func (gs *GameplayScreen) Update() error {
	for key, dir := range moveKeys {
		if inpututil.IsKeyJustPressed(key) {
			gs.ctrl.Move(dir)
		}
	}
	for _, dir := range gs.padPressed() {
		gs.ctrl.Move(dir)
	}

	s := gs.ctrl.Session()
	if s == nil {
		return nil
	}
	zoom := s.Camera.Zoom
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		zoom += zoomStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		zoom -= zoomStep
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		zoom += dy * zoomStep
	}
	if zoom != s.Camera.Zoom {
		gs.ctrl.SetZoom(zoom)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return gs.ctrl.ReturnToMenu()
	}
	return nil
}

// toScreen maps a ground position to pixels. Forward is up.
func (gs *GameplayScreen) toScreen(x, z float64) (float64, float64) {
	return gs.screenWidth/2 + (x-gs.centerX)*gs.scale,
		gs.screenHeight*0.65 - (z-gs.centerZ)*gs.scale
}

func (gs *GameplayScreen) Draw(screen *ebiten.Image) {
	gs.screenWidth, gs.screenHeight = float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	screen.Fill(groundColor)

	s := gs.ctrl.Session()
	if s == nil {
		return
	}
	cam := s.Camera
	gs.centerX = cam.Pos.X - config.CameraOffsetX
	gs.centerZ = cam.Pos.Z - config.CameraOffsetZ
	gs.scale = cam.Zoom

	scene := gs.ctrl.Scene()
	for _, l := range scene.Lanes {
		gs.drawLane(screen, l)
	}
	if win := gs.ctrl.Level().WinDepth; win > 0 {
		gs.drawFinishLine(screen, win)
	}
	for _, p := range scene.Props {
		gs.drawProp(screen, p)
	}
	for _, d := range scene.Decorations {
		gs.drawDecoration(screen, d)
	}
	for _, o := range scene.Obstacles {
		gs.drawObstacle(screen, o)
	}
	gs.drawPlayer(screen, s.Player)
	gs.drawHUD(screen)
	gs.drawPad(screen)
}

func (gs *GameplayScreen) rect(screen *ebiten.Image, x, z, width, depth float64, clr color.Color) {
	sx, sy := gs.toScreen(x-width/2, z+depth/2)
	w, h := width*gs.scale, depth*gs.scale
	if sx > gs.screenWidth || sy > gs.screenHeight || sx+w < 0 || sy+h < 0 {
		return
	}
	vector.DrawFilledRect(screen, float32(sx), float32(sy), float32(w), float32(h), clr, false)
}

func (gs *GameplayScreen) drawLane(screen *ebiten.Image, l world.Lane) {
	_, top := gs.toScreen(0, l.Z+config.LaneWidth/2)
	height := config.LaneWidth * gs.scale
	if top > gs.screenHeight || top+height < 0 {
		return
	}
	if tile := gs.tiles[l.Surface]; tile != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(gs.screenWidth/float64(tile.Bounds().Dx()), height/float64(tile.Bounds().Dy()))
		op.GeoM.Translate(0, top)
		screen.DrawImage(tile, op)
	} else {
		vector.DrawFilledRect(screen, 0, float32(top), float32(gs.screenWidth), float32(height), surfaceColors[l.Surface], false)
	}

	switch l.Kind {
	case world.LaneRoad:
		// dashed edge towards the next lane
		for x := -config.CorridorBound; x < config.CorridorBound; x += 60 {
			gs.rect(screen, x, l.Z+config.LaneWidth/2, 30, 1.5, laneMarking)
		}
	case world.LaneTrack:
		for _, off := range []float64{-8, 8} {
			gs.rect(screen, 0, l.Z+off, 2*config.CorridorBound, 2, railColor)
		}
		for x := -config.CorridorBound; x < config.CorridorBound; x += 20 {
			gs.rect(screen, x, l.Z, 4, 24, railColor)
		}
	}
}

func (gs *GameplayScreen) drawFinishLine(screen *ebiten.Image, z float64) {
	for i, x := 0, -config.CorridorBound; x < config.CorridorBound; i, x = i+1, x+10 {
		if i%2 == 0 {
			gs.rect(screen, x, z+config.LaneWidth/2, 10, 4, finishColor)
		}
	}
}

func (gs *GameplayScreen) drawProp(screen *ebiten.Image, p world.Prop) {
	for _, part := range p.Parts {
		gs.rect(screen, p.X+part.X, p.Z+part.Z, part.Width, math.Max(part.Depth, 2), part.Color)
	}
	if p.Label != "" {
		sx, sy := gs.toScreen(p.X, p.Z)
		op := &text.DrawOptions{}
		op.GeoM.Translate(sx-text.Advance(p.Label, hudFace)/2, sy-20)
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, p.Label, hudFace, op)
	}
}

func (gs *GameplayScreen) drawDecoration(screen *ebiten.Image, d world.Decoration) {
	img, ok := d.Model.(*ebiten.Image)
	if !d.Visible || !ok || img == nil {
		return
	}
	iw, ih := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
	// scale 1 spans the whole corridor
	f := 2 * config.CorridorBound * d.Scale * gs.scale / iw
	sx, sy := gs.toScreen(d.X, d.Z)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(f, f)
	op.GeoM.Translate(sx-iw*f/2, sy-ih*f/2)
	screen.DrawImage(img, op)
}

func (gs *GameplayScreen) drawObstacle(screen *ebiten.Image, o world.Obstacle) {
	if !o.Visible {
		return
	}
	if o.CastShadow {
		gs.rect(screen, o.X+4, o.Z-4, o.Width, o.Depth, shadowColor)
	}
	if len(o.Segments) == 0 {
		gs.rect(screen, o.X, o.Z, o.Width, o.Depth, o.Color)
		// windscreen on the leading side
		gs.rect(screen, o.X+o.Heading()*o.Width/4, o.Z, o.Width/6, o.Depth*0.7, windowColor)
		return
	}
	for _, seg := range o.Segments {
		gs.rect(screen, o.X+seg.OffsetX, o.Z, seg.Width, o.Depth, seg.Color)
	}
}

func (gs *GameplayScreen) drawPlayer(screen *ebiten.Image, p *sim.Player) {
	sx, sy := gs.toScreen(p.Pos.X, p.Pos.Z)
	size := gs.scale
	if p.Falling {
		// shrink as it drops out of sight
		size *= math.Max(0.1, 1+p.Pos.Y/150)
	} else {
		vector.DrawFilledCircle(screen, float32(sx), float32(sy+4*gs.scale), float32(11*gs.scale), shadowColor, true)
	}
	ui.DrawPlayer(screen, p, float32(sx), float32(sy-p.Pos.Y*gs.scale), float32(size))
}

func (gs *GameplayScreen) drawHUD(screen *ebiten.Image) {
	p := gs.ctrl.Progress()
	var lines []string
	if p.FreeRoam {
		lines = append(lines, "FREE ROAM  "+p.Stadium)
	} else {
		name := fmt.Sprintf("WORLD %d", p.World)
		if w, err := world.Lookup(p.World); err == nil {
			name += "  " + w.Name
		}
		lines = append(lines, name, fmt.Sprintf("LEVEL %d/%d", p.Level, config.LevelsPerWorld))
	}
	lines = append(lines, fmt.Sprintf("COINS %d", p.Coins))
	if s := gs.ctrl.Session(); s != nil {
		if l, ok := s.Lane(); ok {
			lines = append(lines, fmt.Sprintf("LANE %d  %s", l.Index, strings.ToUpper(l.Kind.String())))
		}
		lines = append(lines, fmt.Sprintf("ZOOM %.1fx", s.Camera.Zoom))
	}

	vector.DrawFilledRect(screen, 10, 10, 260, float32(len(lines)*20+16), color.RGBA{15, 20, 35, 180}, false)
	for i, l := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(20, float64(18+i*20))
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, l, hudFace, op)
	}

	hint := "ARROWS or PAD move  +/- zoom  R menu"
	op := &text.DrawOptions{}
	op.GeoM.Translate(gs.screenWidth-text.Advance(hint, hudFace)-20, gs.screenHeight-30)
	op.ColorScale.ScaleWithColor(color.RGBA{230, 230, 230, 255})
	text.Draw(screen, hint, hudFace, op)
}

func (gs *GameplayScreen) drawPad(screen *ebiten.Image) {
	for _, b := range padButtons {
		x, y := gs.padRect(b)
		vector.DrawFilledRect(screen, float32(x), float32(y), padSize, padSize, color.RGBA{15, 20, 35, 160}, false)
		vector.StrokeRect(screen, float32(x), float32(y), padSize, padSize, 2, color.RGBA{230, 230, 230, 200}, false)
		op := &text.DrawOptions{}
		op.GeoM.Translate(x+(padSize-text.Advance(b.label, hudFace))/2, y+padSize/2-8)
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, b.label, hudFace, op)
	}
}
