package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/golangdaddy/crossing/pkg/sim"
)

type characterOption struct {
	Animal sim.Animal
	Name   string
}

// CharacterSelectionScreen picks the animal to play with. Both animals are
// drawn side by side; clicking one starts the game.
type CharacterSelectionScreen struct {
	onSelect      func(sim.Animal) error
	onBack        func()
	options       []characterOption
	selectedIndex int
	notice        string
	width, height float64
}

func NewCharacterSelectionScreen(onSelect func(sim.Animal) error, onBack func()) *CharacterSelectionScreen {
	return &CharacterSelectionScreen{
		onSelect: onSelect,
		onBack:   onBack,
		options: []characterOption{
			{Animal: sim.Pig, Name: "PIG"},
			{Animal: sim.Chicken, Name: "CHICKEN"},
		},
		width:  1024,
		height: 600,
	}
}

func (cs *CharacterSelectionScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		cs.selectedIndex = (cs.selectedIndex + 1) % len(cs.options)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && cs.onBack != nil {
		cs.onBack()
		return nil
	}

	chosen := -1
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		chosen = cs.selectedIndex
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		cx, cy := ebiten.CursorPosition()
		for i := range cs.options {
			x, y, w, h := cs.cell(i)
			if inside(float64(cx), float64(cy), x, y, w, h) {
				cs.selectedIndex, chosen = i, i
			}
		}
	}
	if chosen >= 0 {
		if err := cs.onSelect(cs.options[chosen].Animal); err != nil {
			cs.notice = err.Error()
		}
	}
	return nil
}

func (cs *CharacterSelectionScreen) cell(i int) (x, y, w, h float64) {
	w, h = 220, 260
	gap := 80.0
	left := cs.width/2 - w - gap/2
	return left + float64(i)*(w+gap), 150, w, h
}

func (cs *CharacterSelectionScreen) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 40, 255})
	cs.width, cs.height = float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	drawText(screen, "CHOOSE YOUR ANIMAL", cs.width/2, 70, 40, color.White)

	for i, opt := range cs.options {
		x, y, w, h := cs.cell(i)
		if i == cs.selectedIndex {
			vector.DrawFilledRect(screen, float32(x-6), float32(y-6), float32(w+12), float32(h+12), color.RGBA{255, 215, 0, 100}, false)
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), color.RGBA{40, 60, 40, 255}, false)

		p := sim.NewPlayer(opt.Animal)
		DrawPlayer(screen, p, float32(x+w/2), float32(y+h/2-20), 3)

		nameColor := color.Color(color.White)
		if i == cs.selectedIndex {
			nameColor = color.RGBA{255, 255, 0, 255}
		}
		drawText(screen, opt.Name, x+w/2, y+h-30, 24, nameColor)
	}

	if cs.notice != "" {
		drawText(screen, cs.notice, cs.width/2, cs.height-90, 20, colorNotice)
	}
	drawText(screen, "ARROWS to Select   ENTER or CLICK to Start   ESC Back", cs.width/2, cs.height-40, 16, colorHint)
}

// DrawPlayer draws the player's body, shirt and face at (cx, cy). One scale
// unit is one world unit.
func DrawPlayer(screen *ebiten.Image, p *sim.Player, cx, cy, scale float32) {
	body := p.Look.Body
	half := 10 * scale
	vector.DrawFilledRect(screen, cx-half, cy-half, 2*half, 2*half, body, true)

	switch p.Look.Shirt {
	case sim.ShirtBoca:
		vector.DrawFilledRect(screen, cx-half, cy-half/3, 2*half, 2*half/3, color.RGBA{0x00, 0x33, 0x99, 0xff}, false)
		vector.DrawFilledRect(screen, cx-half, cy-half/9, 2*half, 2*half/9, color.RGBA{0xff, 0xcc, 0x00, 0xff}, false)
	case sim.ShirtRiver:
		vector.DrawFilledRect(screen, cx-half, cy-half/3, 2*half, 2*half/3, color.White, false)
		vector.StrokeLine(screen, cx-half, cy+half/3, cx+half, cy-half/3, 3*scale, color.RGBA{0xcc, 0x00, 0x00, 0xff}, true)
	}

	eye := color.RGBA{0x10, 0x10, 0x10, 0xff}
	vector.DrawFilledCircle(screen, cx-half/2, cy-half*0.7, 1.5*scale, eye, true)
	vector.DrawFilledCircle(screen, cx+half/2, cy-half*0.7, 1.5*scale, eye, true)

	switch p.Animal {
	case sim.Pig:
		vector.DrawFilledCircle(screen, cx, cy-half, 3*scale, color.RGBA{0xff, 0x8f, 0xb1, 0xff}, true)
	case sim.Chicken:
		vector.DrawFilledRect(screen, cx-2*scale, cy-half-3*scale, 4*scale, 3*scale, color.RGBA{0xff, 0x99, 0x00, 0xff}, false)
		vector.DrawFilledRect(screen, cx-2*scale, cy-half+2*scale, 4*scale, 2*scale, color.RGBA{0xdd, 0x11, 0x11, 0xff}, false)
	}
}
