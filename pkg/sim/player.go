package sim

import (
	"image/color"
	"math"

	"github.com/golangdaddy/crossing/pkg/config"
	"github.com/golangdaddy/crossing/pkg/mathutil"
)

type Animal int

const (
	Pig Animal = iota
	Chicken
)

func (a Animal) String() string {
	if a == Chicken {
		return "chicken"
	}
	return "pig"
}

// Skin is a cosmetic applied on level reset.
type Skin string

const (
	SkinDefault    Skin = "default"
	SkinBocaShirt  Skin = "camiseta_futbol"
	SkinRiverShirt Skin = "camiseta_river"
	SkinGala       Skin = "gala"
)

var Skins = []Skin{SkinDefault, SkinBocaShirt, SkinRiverShirt, SkinGala}

type Shirt int

const (
	ShirtNone Shirt = iota
	ShirtBoca
	ShirtRiver
)

// Appearance is the mutable look of the player's body parts.
type Appearance struct {
	Body  color.RGBA
	Shirt Shirt
}

var bodyColors = map[Animal]color.RGBA{
	Pig:     {0xff, 0xae, 0xc9, 0xff},
	Chicken: {0xea, 0xea, 0xea, 0xff},
}

type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

// Player is the controlled animal. Target moves in whole lane widths, Pos
// chases it.
type Player struct {
	Animal  Animal
	Pos     Vec3
	Target  Vec3
	Pitch   float64
	Falling bool
	Look    Appearance

	drop float64
}

func NewPlayer(a Animal) *Player {
	p := &Player{Animal: a}
	p.ApplySkin(SkinDefault)
	return p
}

// ApplySkin resets the body to the animal's colours, then applies s.
func (p *Player) ApplySkin(s Skin) {
	p.Look = Appearance{Body: bodyColors[p.Animal]}
	switch s {
	case SkinBocaShirt:
		p.Look.Shirt = ShirtBoca
	case SkinRiverShirt:
		p.Look.Shirt = ShirtRiver
	case SkinGala:
		p.Look.Body = color.RGBA{0, 0, 0, 0xff}
	}
}

// Reset puts the player back on the origin, upright.
func (p *Player) Reset() {
	p.Pos, p.Target = Vec3{}, Vec3{}
	p.Pitch = 0
	p.Falling = false
	p.drop = 0
}

// Move shifts the target by one lane width. Moving backwards past the start
// is allowed; that is how the player falls off.
func (p *Player) Move(d Direction) {
	switch d {
	case Forward:
		p.Target.Z += config.LaneWidth
	case Backward:
		p.Target.Z -= config.LaneWidth
	case Left:
		p.Target.X -= config.LaneWidth
	case Right:
		p.Target.X += config.LaneWidth
	}
}

func (p *Player) update(k float64) {
	if p.Pos.PlanarDist(p.Target) <= config.SettleDistance {
		p.Pos.X, p.Pos.Z = p.Target.X, p.Target.Z
	} else {
		p.Pos.X = mathutil.Smooth(p.Pos.X, p.Target.X, config.PlayerSmoothing, k)
		p.Pos.Z = mathutil.Smooth(p.Pos.Z, p.Target.Z, config.PlayerSmoothing, k)
	}

	p.Pos.Y = 0
	if d := p.Pos.PlanarDist(p.Target); d > 1 {
		progress := mathutil.ClampF(1-d/config.LaneWidth, 0, 1)
		p.Pos.Y = math.Sin(progress*math.Pi) * config.HopHeight
	}

	if p.Falling {
		p.drop += config.FallSpeed * k
		p.Pitch += config.FallSpin * k
		p.Pos.Y -= p.drop
	}
}
