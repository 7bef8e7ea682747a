package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TitleScreen is the main menu.
type TitleScreen struct {
	startTime time.Time
	backdrop  *ebiten.Image
	menu      *Menu
}

func NewTitleScreen(backdrop *ebiten.Image, onPlay, onInfo func() error) *TitleScreen {
	menu := NewMenu("", func() []Option {
		return []Option{
			{Label: "Play", Action: onPlay},
			{Label: "Info", Action: onInfo},
		}
	})
	return &TitleScreen{
		startTime: time.Now(),
		backdrop:  backdrop,
		menu:      menu,
	}
}

func (ts *TitleScreen) Update() error {
	return ts.menu.Update()
}

func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	drawBackdrop(screen, ts.backdrop)

	elapsed := time.Since(ts.startTime).Seconds()
	centerX := float64(width) / 2

	// pulse between 1.0 and 1.1
	pulse := 1.0 + 0.1*sinWave(elapsed*2.0)
	titleScale := 5.0 * pulse
	title := "CROSSING"
	titleOp := &text.DrawOptions{}
	titleOp.GeoM.Scale(titleScale, titleScale)
	titleOp.GeoM.Translate(centerX-text.Advance(title, face)*titleScale/2, 30)
	brightness := math.Min(1.0, 1.0+0.2*sinWave(elapsed*1.5))
	titleOp.ColorScale.ScaleWithColor(color.RGBA{
		uint8(255 * brightness),
		uint8(200 * brightness),
		uint8(50 * brightness),
		255,
	})
	text.Draw(screen, title, face, titleOp)

	drawText(screen, "Buenos Aires, one lane at a time", centerX, 130, 20, color.RGBA{230, 230, 240, 255})
	ts.menu.Draw(screen)

	// blink every half second
	if int(elapsed*2)%2 == 0 {
		drawText(screen, "Press ENTER to play", centerX, float64(height)-90, 20, color.RGBA{150, 200, 255, 255})
	}
	drawFrameLines(screen, width, height)
}

// sinWave returns a sine wave value between -1 and 1
func sinWave(t float64) float64 {
	return math.Sin(t)
}

func drawBackdrop(screen, backdrop *ebiten.Image) {
	screen.Fill(color.RGBA{15, 20, 35, 255})
	if backdrop == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	bw, bh := backdrop.Bounds().Dx(), backdrop.Bounds().Dy()
	op.GeoM.Scale(float64(screen.Bounds().Dx())/float64(bw), float64(screen.Bounds().Dy())/float64(bh))
	op.ColorScale.Scale(0.6, 0.6, 0.6, 1)
	screen.DrawImage(backdrop, op)
}

func drawFrameLines(screen *ebiten.Image, width, height int) {
	lineColor := color.RGBA{50, 60, 80, 100}
	vector.DrawFilledRect(screen, 0, float32(height)/6-10, float32(width), 2, lineColor, false)
	vector.DrawFilledRect(screen, 0, float32(height)*5/6+20, float32(width), 2, lineColor, false)
}
