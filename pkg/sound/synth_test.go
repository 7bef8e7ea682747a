package sound

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateEveryKind(t *testing.T) {
	for _, k := range Kinds {
		t.Run(k.String(), func(t *testing.T) {
			buf := Generate(k)
			require.NotEmpty(t, buf)
			assert.Zero(t, len(buf)%4, "whole stereo frames")

			loud := false
			for i := 0; i < len(buf); i += 4 {
				l := binary.LittleEndian.Uint16(buf[i:])
				r := binary.LittleEndian.Uint16(buf[i+2:])
				require.Equal(t, l, r)
				if l != 0 {
					loud = true
				}
			}
			assert.True(t, loud)
		})
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	assert.Equal(t, Generate(Hit), Generate(Hit))
}

func TestUnknownKind(t *testing.T) {
	assert.Nil(t, Generate(Kind(42)))
	assert.Equal(t, "unknown", Kind(42).String())
}

func TestEnvelope(t *testing.T) {
	assert.Zero(t, envelope(0, 0.1, 0.1, 0.5, 0.2))
	assert.InDelta(t, 1, envelope(0.1, 0.1, 0.1, 0.5, 0.2), 1e-9)
	assert.InDelta(t, 0.5, envelope(0.5, 0.1, 0.1, 0.5, 0.2), 1e-9)
	assert.Zero(t, envelope(1, 0.1, 0.1, 0.5, 0.2))
}

func TestMusicLoop(t *testing.T) {
	buf := MusicLoop()
	require.Len(t, buf, int(8*musicStep*SampleRate)*4)

	first := int16(binary.LittleEndian.Uint16(buf))
	last := int16(binary.LittleEndian.Uint16(buf[len(buf)-4:]))
	assert.Zero(t, first)
	assert.InDelta(t, 0, last, 200, "the loop seam is near silence")
}
