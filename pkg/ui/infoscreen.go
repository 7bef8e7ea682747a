package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var infoLines = []string{
	"Cross every lane without getting hit.",
	"",
	"ARROWS   hop forward, back, left, right",
	"+ / -    zoom (mouse wheel works too)",
	"R        back to the menu",
	"",
	"Each finished level pays 10 coins.",
	"Finishing level 2 of a world costs 20 coins",
	"to unlock the next one.",
	"",
	"Stepping back off the start line is a long fall.",
}

// InfoScreen shows how to play.
type InfoScreen struct {
	onBack func()
}

func NewInfoScreen(onBack func()) *InfoScreen {
	return &InfoScreen{onBack: onBack}
}

func (is *InfoScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		is.onBack()
	}
	return nil
}

func (is *InfoScreen) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{15, 20, 35, 255})
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	drawText(screen, "HOW TO PLAY", w/2, 70, 40, colorTitle)
	drawLines(screen, infoLines, w/2-220, 140, 24, color.White)
	drawText(screen, "Press ENTER to go back", w/2, h-40, 16, colorHint)
}
