package game

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"

	"github.com/golangdaddy/crossing/pkg/flow"
	"github.com/golangdaddy/crossing/pkg/log"
	"github.com/golangdaddy/crossing/pkg/sound"
)

const (
	sfxVolume   = 0.6
	musicVolume = 0.35
)

// Soundboard plays the procedural effects through ebiten's audio context.
type Soundboard struct {
	ctx     *audio.Context
	samples map[sound.Kind][]byte
	music   *audio.Player
}

// NewSoundboard renders every effect up front. Only one audio context may
// exist per process.
func NewSoundboard() *Soundboard {
	sb := &Soundboard{
		ctx:     audio.NewContext(sound.SampleRate),
		samples: make(map[sound.Kind][]byte, len(sound.Kinds)),
	}
	for _, k := range sound.Kinds {
		sb.samples[k] = sound.Generate(k)
	}
	tune := sound.MusicLoop()
	music, err := sb.ctx.NewPlayer(audio.NewInfiniteLoop(bytes.NewReader(tune), int64(len(tune))))
	if err != nil {
		log.Logger.Warn("music disabled", zap.Error(err))
		return sb
	}
	music.SetVolume(musicVolume)
	sb.music = music
	return sb
}

func (sb *Soundboard) Play(k sound.Kind) {
	buf := sb.samples[k]
	if len(buf) == 0 {
		return
	}
	p := sb.ctx.NewPlayerFromBytes(buf)
	p.SetVolume(sfxVolume)
	p.Play()
}

// Attach plays an effect for each gameplay event on bus.
func (sb *Soundboard) Attach(bus *flow.EventBus) {
	for ev, k := range map[flow.EventType]sound.Kind{
		flow.EventHit:           sound.Hit,
		flow.EventFell:          sound.Fall,
		flow.EventLevelWon:      sound.Win,
		flow.EventWorldUnlocked: sound.Unlock,
		flow.EventMenuSelect:    sound.Blip,
	} {
		k := k
		bus.Subscribe(ev, func(flow.Event) { sb.Play(k) })
	}
	bus.Subscribe(flow.EventStateChanged, func(e flow.Event) { sb.playMusic(e.State == flow.Playing) })
}

// playMusic loops the tune while a level runs and pauses it elsewhere.
func (sb *Soundboard) playMusic(on bool) {
	if sb.music == nil {
		return
	}
	if on {
		sb.music.Play()
	} else {
		sb.music.Pause()
	}
}
