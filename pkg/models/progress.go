package models

import (
	"go.uber.org/zap"

	"github.com/golangdaddy/crossing/pkg/config"
	"github.com/golangdaddy/crossing/pkg/log"
	"github.com/golangdaddy/crossing/pkg/store"
)

// Keys in the persistent store.
const (
	KeyMaxUnlockedWorld = "maxUnlockedWorld"
	KeyTempUnlockAll    = "tempUnlockAll"
	KeyCoins            = "coins"
	KeySkin             = "equippedSkin"
)

// Progress is the player's standing across levels.
type Progress struct {
	World            int    `json:"world"`
	Level            int    `json:"level"`
	Coins            int    `json:"coins"`
	MaxUnlockedWorld int    `json:"max_unlocked_world"`
	Skin             string `json:"skin"`
	Stadium          string `json:"stadium"`
	FreeRoam         bool   `json:"free_roam"`
	FreeRoamUnlocked bool   `json:"free_roam_unlocked"`
}

// NewProgress creates a fresh progress with only the first world unlocked.
func NewProgress() *Progress {
	return &Progress{
		World:            1,
		Level:            1,
		MaxUnlockedWorld: 1,
		Skin:             "default",
	}
}

// LoadProgress restores progress from kv. A pending unlock-all flag opens
// every world for this run only: the flag is cleared and the saved unlock
// level is reset to the first world.
func LoadProgress(kv *store.Store) (*Progress, error) {
	p := NewProgress()
	p.MaxUnlockedWorld = clampWorld(kv.Int(KeyMaxUnlockedWorld, 1))
	p.Coins = kv.Int(KeyCoins, 0)
	if p.Coins < 0 {
		p.Coins = 0
	}
	if skin, err := kv.Get(KeySkin); err == nil {
		p.Skin = skin
	}

	if flag, err := kv.Get(KeyTempUnlockAll); err == nil && flag == "true" {
		p.MaxUnlockedWorld = config.WorldCount
		if err := kv.Delete(KeyTempUnlockAll); err != nil {
			return p, err
		}
		if err := kv.SetInt(KeyMaxUnlockedWorld, 1); err != nil {
			return p, err
		}
		log.Logger.Info("all worlds unlocked for this run")
	}
	return p, nil
}

// AddCoins adds a reward.
func (p *Progress) AddCoins(n int) {
	p.Coins += n
}

// SpendCoins deducts n if affordable.
func (p *Progress) SpendCoins(n int) bool {
	if p.Coins < n {
		return false
	}
	p.Coins -= n
	return true
}

// IsWorldUnlocked reports whether world w can be selected.
func (p *Progress) IsWorldUnlocked(w int) bool {
	return w >= 1 && w <= p.MaxUnlockedWorld
}

// UnlockWorld raises the unlock level to w. It never lowers it.
func (p *Progress) UnlockWorld(w int) bool {
	w = clampWorld(w)
	if w <= p.MaxUnlockedWorld {
		return false
	}
	p.MaxUnlockedWorld = w
	return true
}

// SaveUnlocks writes the unlock level.
func (p *Progress) SaveUnlocks(kv *store.Store) error {
	return kv.SetInt(KeyMaxUnlockedWorld, p.MaxUnlockedWorld)
}

// SaveWallet writes coins and skin.
func (p *Progress) SaveWallet(kv *store.Store) error {
	if err := kv.SetInt(KeyCoins, p.Coins); err != nil {
		return err
	}
	if err := kv.Set(KeySkin, p.Skin); err != nil {
		return err
	}
	log.Logger.Debug("wallet saved", zap.Int("coins", p.Coins), zap.String("skin", p.Skin))
	return nil
}

// RequestUnlockAll arms the one-shot unlock for the next run.
func RequestUnlockAll(kv *store.Store) error {
	return kv.Set(KeyTempUnlockAll, "true")
}

func clampWorld(w int) int {
	if w < 1 {
		return 1
	}
	if w > config.WorldCount {
		return config.WorldCount
	}
	return w
}
