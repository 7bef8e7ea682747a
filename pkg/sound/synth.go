package sound

import (
	"encoding/binary"
	"math"
)

// SampleRate of every generated effect.
const SampleRate = 44100

// Kind identifies a sound effect.
type Kind int

const (
	Hit Kind = iota
	Fall
	Win
	Unlock
	Blip
)

var kindNames = []string{"hit", "fall", "win", "unlock", "blip"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Kinds lists every effect.
var Kinds = []Kind{Hit, Fall, Win, Unlock, Blip}

// Generate renders k as 16-bit signed little-endian stereo PCM, the format
// ebiten's audio players consume.
func Generate(k Kind) []byte {
	switch k {
	case Hit:
		return render(0.35, func(t, p float64, seed *uint64) float64 {
			crunch := noise(seed) * (1 - p) * (1 - p)
			thud := math.Sin(2*math.Pi*(90-50*p)*t) * (1 - p)
			return 0.6*crunch + 0.5*thud
		})
	case Fall:
		return render(0.9, func(t, p float64, _ *uint64) float64 {
			freq := 660 * math.Pow(0.25, p)
			return 0.5 * math.Sin(2*math.Pi*freq*t) * envelope(p, 0.02, 0.1, 0.7, 0.3)
		})
	case Win:
		return arpeggio([]float64{523.25, 659.25, 783.99, 1046.5}, 0.12)
	case Unlock:
		return arpeggio([]float64{392, 523.25, 783.99}, 0.1)
	case Blip:
		return render(0.06, func(t, p float64, _ *uint64) float64 {
			return 0.4 * square(880*t) * (1 - p)
		})
	}
	return nil
}

// MusicLoop renders the background tune. Every note fades to silence, so the
// buffer loops without a click.
func MusicLoop() []byte {
	melody := []float64{392, 440, 523.25, 440, 392, 329.63, 293.66, 329.63}
	bass := []float64{98, 98, 130.81, 130.81, 110, 110, 98, 98}
	return render(musicStep*float64(len(melody)), func(t, _ float64, _ *uint64) float64 {
		i := min(int(t/musicStep), len(melody)-1)
		local := (t - float64(i)*musicStep) / musicStep
		env := envelope(local, 0.05, 0.2, 0.5, 0.3)
		return (0.12*math.Sin(2*math.Pi*melody[i]*t) + 0.08*square(bass[i]*t)) * env
	})
}

const musicStep = 0.25

// render samples fn over d seconds. p is the progress in [0,1].
func render(d float64, fn func(t, p float64, seed *uint64) float64) []byte {
	n := int(d * SampleRate)
	buf := make([]byte, n*4)
	seed := uint64(0x9e3779b97f4a7c15)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		putStereo(buf, i, fn(t, float64(i)/float64(n), &seed))
	}
	return buf
}

func arpeggio(notes []float64, step float64) []byte {
	total := step * float64(len(notes))
	return render(total, func(t, _ float64, _ *uint64) float64 {
		i := min(int(t/step), len(notes)-1)
		local := (t - float64(i)*step) / step
		return 0.35 * math.Sin(2*math.Pi*notes[i]*t) * envelope(local, 0.05, 0.2, 0.6, 0.3)
	})
}

func putStereo(buf []byte, i int, sample float64) {
	v := uint16(int16(softClip(sample) * math.MaxInt16))
	binary.LittleEndian.PutUint16(buf[i*4:], v)
	binary.LittleEndian.PutUint16(buf[i*4+2:], v)
}

func softClip(x float64) float64 {
	switch {
	case x > 1:
		return 1
	case x < -1:
		return -1
	}
	return x
}

// envelope is an ADSR shape over normalised progress.
func envelope(p, attack, decay, sustain, release float64) float64 {
	switch {
	case p < attack:
		return p / attack
	case p < attack+decay:
		return 1 - (p-attack)/decay*(1-sustain)
	case p < 1-release:
		return sustain
	case p < 1:
		return sustain * (1 - (p-(1-release))/release)
	}
	return 0
}

func square(phase float64) float64 {
	if math.Mod(phase, 1) < 0.5 {
		return 1
	}
	return -1
}

func noise(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}
