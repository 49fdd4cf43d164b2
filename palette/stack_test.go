package palette

import (
	"testing"

	"github.com/mmuldo/chromatic/color"
	"github.com/mmuldo/chromatic/format"
	"github.com/mmuldo/chromatic/gradient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hexes(s *StackPalette) []string {
	out := make([]string, s.Len())
	for i := range out {
		r, _ := s.Render(i)
		out[i] = r.Text
	}
	return out
}

func TestStack(t *testing.T) {
	s, err := NewStack(format.Web, "#ff0000", "#00ff00")
	require.NoError(t, err)
	require.NoError(t, s.Append("#0000ff"))
	require.NoError(t, s.Insert(0, color.MustNew(color.RGB, 0, 0, 0)))
	assert.Equal(t, []string{"#000000", "#ff0000", "#00ff00", "#0000ff"}, hexes(s))

	require.NoError(t, s.Set(0, "#ffffff"))
	require.NoError(t, s.Remove(1))
	assert.Equal(t, []string{"#ffffff", "#00ff00", "#0000ff"}, hexes(s))

	c, err := s.At(2)
	require.NoError(t, err)
	assert.Equal(t, color.Hex, c.System())

	assert.ErrorIs(t, s.Insert(9, "#000000"), ErrIndex)
	assert.ErrorIs(t, s.Set(3, "#000000"), ErrIndex)
	assert.ErrorIs(t, s.Remove(-1), ErrIndex)
	_, err = s.At(3)
	assert.ErrorIs(t, err, ErrIndex)

	_, err = NewStack(format.Web, "#ff0000", []int{1, 2, 3})
	assert.ErrorIs(t, err, color.ErrParse)
	assert.ErrorIs(t, s.Append("#ff0000", "#xyz"), color.ErrParse)
	assert.Equal(t, 3, s.Len())
}

func TestStackIndex(t *testing.T) {
	s, err := NewStack(format.New(color.RGB), "#ff0000", "#00ff00", "#ff0000")
	require.NoError(t, err)
	i, err := s.Index(color.MustNew(color.HSL, 0, 1, 0.5))
	require.NoError(t, err)
	assert.Equal(t, 0, i)

	i, err = s.Index("#123456")
	require.NoError(t, err)
	assert.Equal(t, -1, i)

	j, c, err := s.FindClosest("#10e010")
	require.NoError(t, err)
	assert.Equal(t, 1, j)
	assert.Equal(t, []float64{0, 1, 0}, c.Values())
}

func TestStackSlicing(t *testing.T) {
	s, err := NewStack(format.Web, "#ff0000", "#00ff00", "#0000ff")
	require.NoError(t, err)

	sub, err := s.Slice(1, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"#00ff00", "#0000ff"}, hexes(sub))
	_, err = s.Slice(2, 1)
	assert.ErrorIs(t, err, ErrIndex)

	other, err := NewStack(format.New(color.HSL), "#ffffff")
	require.NoError(t, err)
	cat := s.Concat(other)
	assert.Equal(t, 4, cat.Len())
	assert.Equal(t, []string{"#ff0000", "#00ff00", "#0000ff", "#ffffff"}, hexes(cat))
	last, _ := cat.At(3)
	assert.Equal(t, color.Hex, last.System())

	assert.Equal(t, []string{"#0000ff", "#00ff00", "#ff0000"}, hexes(s.Reversed()))
	assert.Equal(t, 3, s.Len())

	var idx []int
	for i := range s.All() {
		idx = append(idx, i)
	}
	assert.Equal(t, []int{0, 1, 2}, idx)
}

func TestResize(t *testing.T) {
	s, err := NewStack(format.New(color.RGB255), "#ff0000", "#0000ff")
	require.NoError(t, err)

	r, err := s.Resize(3, gradient.WithSpace(color.RGB255))
	require.NoError(t, err)
	require.Equal(t, 3, r.Len())
	want := [][]float64{{255, 0, 0}, {128, 0, 128}, {0, 0, 255}}
	for i := range want {
		got, err := r.Render(i)
		require.NoError(t, err)
		assert.Equal(t, want[i], got.Values)
	}

	r, err = s.Resize(5)
	require.NoError(t, err)
	assert.Equal(t, 5, r.Len())
	c, _ := r.At(2)
	assert.Equal(t, color.RGB255, c.System())

	one, err := NewStack(format.Web, "#abcdef")
	require.NoError(t, err)
	r, err = one.Resize(3)
	require.NoError(t, err)
	assert.Equal(t, []string{"#abcdef", "#abcdef", "#abcdef"}, hexes(r))

	_, err = (&StackPalette{format: format.Web}).Resize(3)
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = s.Resize(0)
	assert.Error(t, err)
}

func TestStackTransforms(t *testing.T) {
	s, err := NewStack(format.Web, "#ff0000", "#00ffff")
	require.NoError(t, err)
	assert.Equal(t, []string{"#00ffff", "#ff0000"}, hexes(s.Invert()))

	for _, c := range s.Grayscale().Colors() {
		v := c.Values()
		assert.InDelta(t, v[0], v[1], 1e-6)
		assert.InDelta(t, v[1], v[2], 1e-6)
	}

	clone := s.Clone()
	clone.SetFormat(format.New(color.HSV))
	c, _ := clone.At(1)
	assert.Equal(t, color.HSV, c.System())
	assert.InDeltaSlice(t, []float64{180, 1, 1}, c.Values(), 1e-9)
	c, _ = s.At(1)
	assert.Equal(t, color.Hex, c.System())
}
