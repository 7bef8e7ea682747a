package game

import (
	"fmt"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/golangdaddy/crossing/pkg/world"
)

// DecodeImage loads a decoration sprite from disk.
func DecodeImage(path string) (world.Model, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load image: %w", err)
	}
	return img, nil
}
