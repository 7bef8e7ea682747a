package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const maxCodeLength = 16

// UnlockScreen asks for the free roam code.
type UnlockScreen struct {
	onSubmit func(code string) error
	onBack   func()
	code     []rune
	runes    []rune
	notice   string
}

func NewUnlockScreen(onSubmit func(string) error, onBack func()) *UnlockScreen {
	return &UnlockScreen{onSubmit: onSubmit, onBack: onBack}
}

func (us *UnlockScreen) Update() error {
	us.runes = ebiten.AppendInputChars(us.runes[:0])
	for _, r := range us.runes {
		if len(us.code) < maxCodeLength {
			us.code = append(us.code, r)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(us.code) > 0 {
		us.code = us.code[:len(us.code)-1]
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		us.onBack()
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		if err := us.onSubmit(string(us.code)); err != nil {
			us.notice = strings.ToUpper(err.Error())
			us.code = us.code[:0]
		}
	}
	return nil
}

func (us *UnlockScreen) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{15, 20, 35, 255})
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	drawText(screen, "FREE ROAM IS LOCKED", w/2, 120, 40, colorTitle)
	drawText(screen, "Type the code to unlock it", w/2, 190, 20, color.White)

	boxW, boxH := 360.0, 56.0
	vector.DrawFilledRect(screen, float32(w/2-boxW/2), 240, float32(boxW), float32(boxH), color.RGBA{30, 30, 45, 255}, false)
	vector.StrokeRect(screen, float32(w/2-boxW/2), 240, float32(boxW), float32(boxH), 2, colorBorder, false)
	drawText(screen, string(us.code)+"_", w/2, 240+boxH/2, 28, color.White)

	if us.notice != "" {
		drawText(screen, us.notice, w/2, 340, 20, colorNotice)
	}
	drawText(screen, "Enter: Unlock | Esc: Back", w/2, h-40, 16, colorHint)
}
