package ui

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/crossing/pkg/config"
	"github.com/golangdaddy/crossing/pkg/flow"
	"github.com/golangdaddy/crossing/pkg/models"
	"github.com/golangdaddy/crossing/pkg/sim"
	"github.com/golangdaddy/crossing/pkg/world"
)

// Navigator is the part of the game controller the selection menus drive.
type Navigator interface {
	Progress() models.Progress
	Back() error
	SelectWorld(id int) error
	RequestFreeRoam() error
	SelectStadium(name string) error
}

// Results is the part of the game controller the end-of-level screens
// read and drive.
type Results interface {
	State() flow.State
	Offer() flow.Offer
	Message() string
	Progress() models.Progress
	NextLevel() error
	Retry() error
	FinishGame() error
	ReturnToMenu() error
	EquipSkin(s sim.Skin) error
}

var skinNames = map[sim.Skin]string{
	sim.SkinDefault:    "Default",
	sim.SkinBocaShirt:  "Boca shirt",
	sim.SkinRiverShirt: "River shirt",
	sim.SkinGala:       "Gala",
}

// MenuScreen is a Menu over a backdrop.
type MenuScreen struct {
	*Menu
	backdrop *ebiten.Image
}

func (ms *MenuScreen) Draw(screen *ebiten.Image) {
	drawBackdrop(screen, ms.backdrop)
	ms.Menu.Draw(screen)
}

func back(nav Navigator) func() {
	return flow.Callback("back", nav.Back)
}

func NewWorldSelectScreen(backdrop *ebiten.Image, nav Navigator) *MenuScreen {
	menu := NewMenu("SELECT A WORLD", func() []Option {
		p := nav.Progress()
		opts := make([]Option, 0, len(world.Worlds())+2)
		for _, w := range world.Worlds() {
			id := w.ID
			label := fmt.Sprintf("%d. %s", w.ID, w.Name)
			locked := !p.IsWorldUnlocked(w.ID)
			if locked {
				label += "  [LOCKED]"
			}
			opts = append(opts, Option{Label: label, Dim: locked, Action: func() error { return nav.SelectWorld(id) }})
		}
		opts = append(opts,
			Option{Label: "Free roam", Action: nav.RequestFreeRoam},
			Option{Label: "Back", Action: nav.Back},
		)
		return opts
	})
	menu.Subtitle = func() string {
		p := nav.Progress()
		return fmt.Sprintf("COINS: %d   WORLDS: %d/%d", p.Coins, p.MaxUnlockedWorld, config.WorldCount)
	}
	menu.OnBack = back(nav)
	return &MenuScreen{Menu: menu, backdrop: backdrop}
}

func NewStadiumSelectScreen(backdrop *ebiten.Image, nav Navigator) *MenuScreen {
	menu := NewMenu("PICK A STADIUM", func() []Option {
		opts := make([]Option, 0, len(world.Stadiums)+1)
		for _, name := range world.Stadiums {
			name := name
			opts = append(opts, Option{Label: strings.ToUpper(name), Action: func() error { return nav.SelectStadium(name) }})
		}
		return append(opts, Option{Label: "Back", Action: nav.Back})
	})
	menu.Subtitle = func() string { return "Free roam: no traffic deaths, no finish line" }
	menu.OnBack = back(nav)
	return &MenuScreen{Menu: menu, backdrop: backdrop}
}

// NewResultScreen builds the game over, fell, won and completed screens.
func NewResultScreen(backdrop *ebiten.Image, res Results) *MenuScreen {
	menu := NewMenu(resultTitle(res), func() []Option {
		var opts []Option
		switch res.Offer() {
		case flow.OfferNextLevel:
			opts = append(opts, Option{Label: "Next level", Action: res.NextLevel})
		case flow.OfferUnlockWorld:
			next := res.Progress().World + 1
			name := fmt.Sprintf("world %d", next)
			if w, err := world.Lookup(next); err == nil {
				name = w.Name
			}
			opts = append(opts, Option{Label: fmt.Sprintf("Unlock %s (%d coins)", name, config.WorldUnlockCost), Action: res.NextLevel})
		case flow.OfferNeedCoins:
			opts = append(opts, Option{Label: fmt.Sprintf("Need %d coins to go on", config.WorldUnlockCost), Dim: true, Action: res.NextLevel})
		case flow.OfferCompleted:
			opts = append(opts, Option{Label: "Finish", Action: res.FinishGame})
		}
		opts = append(opts, Option{Label: "Play again", Action: res.Retry})
		equipped := sim.Skin(res.Progress().Skin)
		for _, s := range sim.Skins {
			s := s
			label := "Skin: " + skinNames[s]
			if s == equipped {
				label += " *"
			}
			opts = append(opts, Option{Label: label, Action: func() error { return res.EquipSkin(s) }})
		}
		return append(opts, Option{Label: "Main menu", Action: res.ReturnToMenu})
	})
	menu.Subtitle = func() string {
		p := res.Progress()
		if p.FreeRoam {
			return fmt.Sprintf("COINS: %d", p.Coins)
		}
		return fmt.Sprintf("COINS: %d   WORLD %d - LEVEL %d", p.Coins, p.World, p.Level)
	}
	menu.OnBack = flow.Callback("return to menu", res.ReturnToMenu)
	return &MenuScreen{Menu: menu, backdrop: backdrop}
}

func resultTitle(res Results) string {
	switch res.State() {
	case flow.Won:
		return "LEVEL COMPLETE!"
	case flow.Completed:
		return "YOU CROSSED THEM ALL!"
	}
	if m := res.Message(); m != "" {
		return m
	}
	return "GAME OVER"
}
