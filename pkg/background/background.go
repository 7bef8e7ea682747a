package background

import (
	"image"
	"image/color"
	"math"
	"math/rand"
)

// Generator paints procedural textures. Output is a plain RGBA image so the
// host can upload it once with ebiten.NewImageFromImage.
type Generator struct {
	Width  int
	Height int
}

func NewGenerator(width, height int) *Generator {
	return &Generator{
		Width:  width,
		Height: height,
	}
}

// Meadow paints the menu backdrop: speckled grass with rows of trees and
// bushes, thinning toward a road band across the middle.
func (g *Generator) Meadow(seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	rng := rand.New(rand.NewSource(seed))

	g.fill(img, color.RGBA{0x5d, 0xb3, 0x4a, 0xff})
	g.speckle(img, rng, g.Width*g.Height/10, func() color.RGBA {
		return color.RGBA{0x4a, uint8(150 + rng.Intn(50)), 0x3c, 0xff}
	})

	roadTop, roadBottom := g.Height*2/5, g.Height*3/5
	g.rect(img, 0, roadTop, g.Width, roadBottom, color.RGBA{0x55, 0x55, 0x5c, 0xff})
	for x := 0; x < g.Width; x += 40 {
		g.rect(img, x, (roadTop+roadBottom)/2-2, x+20, (roadTop+roadBottom)/2+2, color.RGBA{0xf0, 0xf0, 0xf0, 0xff})
	}

	for y := 10; y < g.Height; y += 12 {
		if y > roadTop-10 && y < roadBottom+20 {
			continue
		}
		density := 0.35 + 0.25*math.Sin(float64(y)*0.02)
		for x := 0; x < g.Width; x += 8 + rng.Intn(18) {
			if rng.Float64() > density {
				continue
			}
			px, py := x+rng.Intn(10)-5, y+rng.Intn(10)-5
			if rng.Float64() < 0.3 {
				g.tree(img, px, py, rng)
			} else {
				g.bush(img, px, py, rng)
			}
		}
	}
	return img
}

// Tile paints a lane surface texture: base colour with light and dark
// speckles.
func (g *Generator) Tile(seed int64, base color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	rng := rand.New(rand.NewSource(seed))
	g.fill(img, base)
	g.speckle(img, rng, g.Width*g.Height/8, func() color.RGBA {
		return shade(base, 0.85+rng.Float64()*0.3)
	})
	return img
}

func (g *Generator) fill(img *image.RGBA, c color.RGBA) {
	g.rect(img, 0, 0, g.Width, g.Height, c)
}

func (g *Generator) rect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	for y := max(y0, 0); y < min(y1, g.Height); y++ {
		for x := max(x0, 0); x < min(x1, g.Width); x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func (g *Generator) speckle(img *image.RGBA, rng *rand.Rand, n int, pick func() color.RGBA) {
	if g.Width == 0 || g.Height == 0 {
		return
	}
	for i := 0; i < n; i++ {
		img.SetRGBA(rng.Intn(g.Width), rng.Intn(g.Height), pick())
	}
}

func (g *Generator) set(img *image.RGBA, x, y int, c color.RGBA) {
	if x >= 0 && x < g.Width && y >= 0 && y < g.Height {
		img.SetRGBA(x, y, c)
	}
}

// tree draws a trunk under three stacked triangles.
func (g *Generator) tree(img *image.RGBA, x, y int, rng *rand.Rand) {
	height := 30 + rng.Intn(24)
	width := 16 + rng.Intn(12)

	trunk := color.RGBA{0x6b, 0x45, 0x23, 0xff}
	trunkW := 3 + rng.Intn(3)
	for ty := 0; ty < height/3; ty++ {
		for tx := -trunkW / 2; tx <= trunkW/2; tx++ {
			g.set(img, x+tx, y-ty, trunk)
		}
	}

	leaves := color.RGBA{uint8(30 + rng.Intn(30)), uint8(110 + rng.Intn(60)), uint8(30 + rng.Intn(30)), 0xff}
	for l := 0; l < 3; l++ {
		baseY := y - height/3 - l*height/4
		layerW := max(width-l*5, 5)
		for ly := 0; ly < height/3; ly++ {
			rowW := layerW * (height/3 - ly) / (height / 3)
			for lx := -rowW / 2; lx < rowW/2; lx++ {
				g.set(img, x+lx, baseY-ly, leaves)
			}
		}
	}
}

func (g *Generator) bush(img *image.RGBA, x, y int, rng *rand.Rand) {
	r := 4 + rng.Intn(8)
	c := color.RGBA{uint8(50 + rng.Intn(40)), uint8(120 + rng.Intn(50)), uint8(40 + rng.Intn(40)), 0xff}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				g.set(img, x+dx, y+dy, c)
			}
		}
	}
}

func shade(c color.RGBA, f float64) color.RGBA {
	scale := func(v uint8) uint8 {
		return uint8(math.Min(255, float64(v)*f))
	}
	return color.RGBA{scale(c.R), scale(c.G), scale(c.B), c.A}
}
