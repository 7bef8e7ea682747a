package ui

import (
	"image/color"
	"strings"
	"time"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var face = text.NewGoXFace(bitmapfont.Face)

var (
	colorButton     = color.RGBA{40, 40, 60, 230}
	colorButtonHot  = color.RGBA{60, 100, 140, 240}
	colorButtonText = color.RGBA{255, 255, 255, 255}
	colorButtonDim  = color.RGBA{130, 130, 140, 255}
	colorBorder     = color.RGBA{80, 80, 100, 255}
	colorTitle      = color.RGBA{255, 200, 50, 255}
	colorHint       = color.RGBA{150, 150, 150, 255}
	colorNotice     = color.RGBA{255, 110, 90, 255}
	colorPanel      = color.RGBA{15, 20, 35, 200}
	noticeDuration  = 2 * time.Second
	buttonWidth     = 340.0
	buttonHeight    = 40.0
	buttonSpacing   = 48.0
	menuTop         = 150.0
)

// Option is one button of a Menu. Dim options are still selectable; their
// action decides what happens.
type Option struct {
	Label  string
	Dim    bool
	Action func() error
}

// Menu is a vertical list of buttons driven by arrow keys, enter or the
// mouse. An action error is shown as a short notice under the list.
type Menu struct {
	Title    string
	Subtitle func() string
	OnBack   func()

	items    func() []Option
	selected int
	notice   string
	noticeAt time.Time
	width    float64
	height   float64
}

func NewMenu(title string, items func() []Option) *Menu {
	return &Menu{Title: title, items: items, width: 1024, height: 600}
}

func (m *Menu) Update() error {
	opts := m.items()
	if len(opts) == 0 {
		return nil
	}
	if m.selected >= len(opts) {
		m.selected = len(opts) - 1
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		m.selected = (m.selected + len(opts) - 1) % len(opts)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		m.selected = (m.selected + 1) % len(opts)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && m.OnBack != nil {
		m.OnBack()
		return nil
	}

	chosen := -1
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		chosen = m.selected
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		cx, cy := ebiten.CursorPosition()
		for i := range opts {
			x, y := m.buttonPos(i)
			if inside(float64(cx), float64(cy), x, y, buttonWidth, buttonHeight) {
				m.selected, chosen = i, i
			}
		}
	}
	if chosen >= 0 && opts[chosen].Action != nil {
		if err := opts[chosen].Action(); err != nil {
			m.notice = strings.ToUpper(err.Error())
			m.noticeAt = time.Now()
		}
	}
	return nil
}

func (m *Menu) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	m.width, m.height = float64(w), float64(h)

	if m.Title != "" {
		drawText(screen, m.Title, m.width/2, 70, 40, colorTitle)
	}
	if m.Subtitle != nil {
		drawText(screen, m.Subtitle(), m.width/2, 118, 20, colorButtonText)
	}

	for i, opt := range m.items() {
		x, y := m.buttonPos(i)
		bg, fg := colorButton, colorButtonText
		if i == m.selected {
			bg = colorButtonHot
		}
		if opt.Dim {
			fg = colorButtonDim
		}
		drawButton(screen, opt.Label, x, y, buttonWidth, buttonHeight, bg, fg)
	}

	if m.notice != "" && time.Since(m.noticeAt) < noticeDuration {
		drawText(screen, m.notice, m.width/2, m.height-90, 20, colorNotice)
	}
	drawText(screen, "Arrows: Navigate | Enter: Select | Esc: Back", m.width/2, m.height-40, 16, colorHint)
}

func (m *Menu) buttonPos(i int) (float64, float64) {
	return m.width/2 - buttonWidth/2, menuTop + float64(i)*buttonSpacing
}

func inside(px, py, x, y, w, h float64) bool {
	return px >= x && px < x+w && py >= y && py < y+h
}

// drawButton draws a bordered box with a centred label.
func drawButton(screen *ebiten.Image, label string, x, y, width, height float64, bg, fg color.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), bg, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(width), float32(height), 2, colorBorder, false)

	textX := x + width/2 - text.Advance(label, face)/2
	// bitmap font is 16px tall
	textY := y + height/2 - 8

	op := &text.DrawOptions{}
	op.GeoM.Translate(textX, textY)
	op.ColorScale.ScaleWithColor(fg)
	text.Draw(screen, label, face, op)
}

// drawText draws str centred on (centerX, centerY) at the given pixel size.
func drawText(screen *ebiten.Image, str string, centerX, centerY float64, size float64, clr color.Color) {
	scale := size / 16.0
	textX := centerX - text.Advance(str, face)*scale/2
	textY := centerY - 8*scale

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(textX, textY)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// drawLines draws left-aligned lines inside a translucent panel.
func drawLines(screen *ebiten.Image, lines []string, x, y, lineHeight float64, clr color.Color) {
	widest := 0.0
	for _, l := range lines {
		widest = max(widest, text.Advance(l, face))
	}
	vector.DrawFilledRect(screen, float32(x-12), float32(y-12), float32(widest+24), float32(float64(len(lines))*lineHeight+24), colorPanel, false)
	for i, l := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y+float64(i)*lineHeight)
		op.ColorScale.ScaleWithColor(clr)
		text.Draw(screen, l, face, op)
	}
}
