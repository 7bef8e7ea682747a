package world

import (
	"errors"
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/crossing/pkg/mathutil"
)

type fakeModel struct{ w, h int }

func (m fakeModel) Bounds() image.Rectangle { return image.Rect(0, 0, m.w, m.h) }

func TestRebuildIsIdempotent(t *testing.T) {
	for _, p := range allParams() {
		t.Run(name(p), func(t *testing.T) {
			fresh := NewManager(NewGenerator(mathutil.NewRand(5)))
			_, err := fresh.Rebuild(p)
			require.NoError(t, err)

			m := NewManager(NewGenerator(mathutil.NewRand(6)))
			_, err = m.Rebuild(p)
			require.NoError(t, err)
			first := append([]Lane(nil), m.Scene().Lanes...)
			_, err = m.Rebuild(p)
			require.NoError(t, err)

			ignoreSpeed := cmpopts.IgnoreFields(Lane{}, "Speed")
			assert.Empty(t, cmp.Diff(first, m.Scene().Lanes, ignoreSpeed))
			assert.Empty(t, cmp.Diff(fresh.Scene().Lanes, m.Scene().Lanes, ignoreSpeed))

			perLane := 0
			for _, l := range m.Scene().Lanes {
				perLane += len(m.Scene().ObstaclesIn(l.Z))
			}
			assert.Equal(t, perLane, len(m.Scene().Obstacles))
			assert.LessOrEqual(t, len(m.Scene().Obstacles), len(m.Scene().HazardLanes())*max(m.Config().MaxPerLane, 1))
		})
	}
}

func TestRebuildRequestsDecorations(t *testing.T) {
	m := NewManager(NewGenerator(mathutil.NewRand(1)))

	reqs, err := m.Rebuild(Params{World: 1, Level: 1})
	require.NoError(t, err)
	assert.Empty(t, reqs)

	reqs, err = m.Rebuild(Params{World: 4, Level: 2})
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, "bombonera.png", reqs[0].Decoration.Asset)
	assert.Equal(t, m.Scene().Generation, reqs[0].Generation)

	reqs, err = m.Rebuild(Params{FreeRoam: true, Stadium: "monumental"})
	require.NoError(t, err)
	assert.Len(t, reqs, 2)
}

func TestAttach(t *testing.T) {
	m := NewManager(NewGenerator(mathutil.NewRand(1)))
	reqs, err := m.Rebuild(Params{World: 2, Level: 1})
	require.NoError(t, err)
	require.Len(t, reqs, 3)

	assert.True(t, m.Attach(reqs[0], fakeModel{64, 64}, nil))
	assert.False(t, m.Attach(reqs[1], nil, errors.New("missing file")))
	assert.False(t, m.Attach(reqs[2], fakeModel{0, 0}, nil))
	require.Len(t, m.Scene().Decorations, 1)
	assert.True(t, m.Scene().Decorations[0].Visible)

	// a result arriving after the level was rebuilt belongs to the old world
	_, err = m.Rebuild(Params{World: 2, Level: 2})
	require.NoError(t, err)
	assert.Empty(t, m.Scene().Decorations)
	assert.False(t, m.Attach(reqs[0], fakeModel{64, 64}, nil))
	assert.Empty(t, m.Scene().Decorations)
}

func TestRebuildUnknownWorldKeepsScene(t *testing.T) {
	m := NewManager(NewGenerator(mathutil.NewRand(1)))
	_, err := m.Rebuild(Params{World: 1, Level: 1})
	require.NoError(t, err)
	lanes := len(m.Scene().Lanes)

	_, err = m.Rebuild(Params{World: 9, Level: 1})
	assert.ErrorIs(t, err, ErrUnknownWorld)
	assert.Len(t, m.Scene().Lanes, lanes)
}

func TestTeardown(t *testing.T) {
	m := NewManager(NewGenerator(mathutil.NewRand(1)))
	_, err := m.Rebuild(Params{World: 3, Level: 1})
	require.NoError(t, err)
	gen := m.Scene().Generation

	m.Teardown()
	assert.Empty(t, m.Scene().Lanes)
	assert.Empty(t, m.Scene().Obstacles)
	assert.Empty(t, m.Scene().Props)
	assert.Equal(t, gen+1, m.Scene().Generation)
}
