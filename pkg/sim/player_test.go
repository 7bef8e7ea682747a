package sim

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/golangdaddy/crossing/pkg/config"
)

func TestMoveIsLaneQuantised(t *testing.T) {
	p := NewPlayer(Chicken)
	p.Move(Forward)
	p.Move(Forward)
	p.Move(Left)
	assert.Equal(t, Vec3{X: -config.LaneWidth, Z: 2 * config.LaneWidth}, p.Target)
	p.Move(Right)
	p.Move(Backward)
	assert.Equal(t, Vec3{Z: config.LaneWidth}, p.Target)
	assert.Equal(t, Vec3{}, p.Pos)
}

func TestHopArc(t *testing.T) {
	p := NewPlayer(Pig)
	p.update(1)
	assert.Zero(t, p.Pos.Y)

	p.Move(Forward)
	var peak float64
	for i := 0; i < 40; i++ {
		p.update(1)
		assert.GreaterOrEqual(t, p.Pos.Y, 0.0)
		assert.LessOrEqual(t, p.Pos.Y, config.HopHeight)
		if p.Pos.Y > peak {
			peak = p.Pos.Y
		}
	}
	assert.Greater(t, peak, config.HopHeight/2)
	assert.Zero(t, p.Pos.Y)
	assert.Equal(t, config.LaneWidth, p.Pos.Z)
}

func TestSmoothingRate(t *testing.T) {
	p := NewPlayer(Pig)
	p.Move(Forward)
	p.update(1)
	assert.InDelta(t, 0.2*config.LaneWidth, p.Pos.Z, 1e-9)
}

func TestSkins(t *testing.T) {
	black := color.RGBA{0, 0, 0, 0xff}
	tests := []struct {
		animal Animal
		skin   Skin
		body   color.RGBA
		shirt  Shirt
	}{
		{Pig, SkinDefault, bodyColors[Pig], ShirtNone},
		{Chicken, SkinDefault, bodyColors[Chicken], ShirtNone},
		{Pig, SkinBocaShirt, bodyColors[Pig], ShirtBoca},
		{Chicken, SkinRiverShirt, bodyColors[Chicken], ShirtRiver},
		{Pig, SkinGala, black, ShirtNone},
	}
	for _, tt := range tests {
		t.Run(tt.animal.String()+"/"+string(tt.skin), func(t *testing.T) {
			p := NewPlayer(tt.animal)
			p.ApplySkin(SkinGala)
			p.ApplySkin(tt.skin)
			assert.Equal(t, tt.body, p.Look.Body)
			assert.Equal(t, tt.shirt, p.Look.Shirt)
		})
	}
}
