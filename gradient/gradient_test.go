package gradient

import (
	"math"
	"testing"

	"github.com/mmuldo/chromatic/color"
	"github.com/mmuldo/chromatic/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red   = color.MustNew(color.RGB, 1, 0, 0)
	green = color.MustNew(color.RGB, 0, 1, 0)
	blue  = color.MustNew(color.RGB, 0, 0, 1)
)

func TestRedToBlueBytes(t *testing.T) {
	f := format.New(color.RGB255)
	g, err := FromInputs([]any{"#ff0000", "#0000ff"}, f, WithSpace(color.RGB255))
	require.NoError(t, err)

	samples, err := g.SampleN(3)
	require.NoError(t, err)
	require.Len(t, samples, 3)

	want := [][]float64{{255, 0, 0}, {128, 0, 128}, {0, 0, 255}}
	for i, s := range samples {
		assert.Equal(t, want[i], format.Render(s, f).Values)
	}
}

func TestEndpoints(t *testing.T) {
	stops := []color.Color{red, color.MustNew(color.HSL, 120, 0.5, 0.5), blue}
	for _, sys := range []color.System{color.CIELuv, color.RGB, color.HCLab, color.OkLab} {
		t.Run(sys.String(), func(t *testing.T) {
			g, err := New(stops, WithSpace(sys))
			require.NoError(t, err)

			first, err := g.Sample(0)
			require.NoError(t, err)
			last, err := g.Sample(1)
			require.NoError(t, err)
			assert.Equal(t, color.Convert(stops[0], sys), first)
			assert.Equal(t, color.Convert(stops[2], sys), last)

			samples, err := g.SampleN(7)
			require.NoError(t, err)
			assert.Equal(t, first, samples[0])
			assert.Equal(t, last, samples[6])
		})
	}
}

func TestDefaultSpace(t *testing.T) {
	g, err := New([]color.Color{red, blue})
	require.NoError(t, err)
	assert.Equal(t, color.CIELuv, g.Space())

	g, err = New([]color.Color{red, blue}, WithMode(Polar))
	require.NoError(t, err)
	assert.Equal(t, color.HCLuv, g.Space())

	// purple, close to #be0090
	mid, err := New([]color.Color{red, blue})
	require.NoError(t, err)
	c, err := mid.Sample(0.5)
	require.NoError(t, err)
	std := c.Std()
	assert.InDelta(t, 0xbe, float64(std.R), 2)
	assert.InDelta(t, 0x00, float64(std.G), 2)
	assert.InDelta(t, 0x90, float64(std.B), 2)
}

func hsl(h float64) color.Color {
	return color.MustNew(color.HSL, h, 1, 0.5)
}

func TestPolarShortestPath(t *testing.T) {
	g, err := New([]color.Color{hsl(10), hsl(350)}, WithSpace(color.HSL), WithMode(Polar))
	require.NoError(t, err)
	c, err := g.Sample(0.5)
	require.NoError(t, err)
	assert.Equal(t, 0.0, c.Value(0))

	g, err = New([]color.Color{hsl(10), hsl(350)}, WithSpace(color.HSL))
	require.NoError(t, err)
	c, err = g.Sample(0.5)
	require.NoError(t, err)
	assert.Equal(t, 180.0, c.Value(0))
}

func TestHueLerp(t *testing.T) {
	tests := []struct {
		name     string
		hl       HueLerp
		from, to float64
		want     float64
	}{
		{"shortest", Shortest, 10, 350, 0},
		{"shortest up", Shortest, 350, 10, 0},
		{"longest", Longest, 10, 350, 180},
		{"increasing", Increasing, 350, 10, 0},
		{"increasing long", Increasing, 10, 350, 180},
		{"decreasing", Decreasing, 350, 10, 180},
		{"decreasing short", Decreasing, 10, 350, 0},
		{"tie", Shortest, 0, 180, 90},
		{"tie reversed", Shortest, 180, 0, 270},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g, err := New([]color.Color{hsl(test.from), hsl(test.to)}, WithSpace(color.HSL), WithHueLerp(test.hl))
			require.NoError(t, err)
			c, err := g.Sample(0.5)
			require.NoError(t, err)
			assert.InDelta(t, test.want, c.Value(0), 1e-9)
		})
	}
}

func TestHueDeltaRange(t *testing.T) {
	for ha := 0.0; ha < 360; ha += 15 {
		for hb := 0.0; hb < 360; hb += 15 {
			d := hueDelta(ha, hb, Shortest)
			assert.Greater(t, d, -180.0)
			assert.LessOrEqual(t, d, 180.0)
			assert.InDelta(t, 0, wrap(ha+d)-hb, 1e-9)
		}
	}
}

func TestYellowMagentaKeepsSaturation(t *testing.T) {
	g, err := FromInputs([]any{"#ffff00", "#ff00ff"}, format.New(color.HSL), WithSpace(color.HSL), WithMode(Polar))
	require.NoError(t, err)
	c, err := g.Sample(0.5)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 1, 0.5}, c.Values(), 1e-9)

	g, err = FromInputs([]any{"#ffff00", "#ff00ff"}, format.New(color.RGB), WithMode(Polar))
	require.NoError(t, err)
	c, err = g.Sample(0.5)
	require.NoError(t, err)
	ends := g.Stops()
	minChroma := math.Min(color.Convert(ends[0], color.HCLuv).Value(1), color.Convert(ends[1], color.HCLuv).Value(1))
	assert.GreaterOrEqual(t, c.Value(1), minChroma-1e-9)
}

func TestAchromaticBorrowsHue(t *testing.T) {
	white := color.MustNew(color.HSL, 0, 0, 1)
	g, err := New([]color.Color{white, hsl(240)}, WithSpace(color.HSL), WithMode(Polar))
	require.NoError(t, err)
	c, err := g.Sample(0.5)
	require.NoError(t, err)
	assert.Equal(t, 240.0, c.Value(0))
}

func TestCoords(t *testing.T) {
	g, err := New([]color.Color{red, green, blue}, WithSpace(color.RGB), WithCoords([]float64{0, 0.75, 1}))
	require.NoError(t, err)
	c, err := g.At(0.75)
	require.NoError(t, err)
	assert.Equal(t, green, c)

	c, err = g.At(0.375)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.5, 0.5, 0}, c.Values(), 1e-12)
	assert.Equal(t, []float64{0, 0.75, 1}, g.Coords())
}

func TestDomain(t *testing.T) {
	g, err := New([]color.Color{red, blue}, WithSpace(color.RGB), WithDomain(4, 8))
	require.NoError(t, err)

	at, err := g.At(6)
	require.NoError(t, err)
	mid, err := g.Sample(0.5)
	require.NoError(t, err)
	assert.Equal(t, mid, at)

	clamped, err := g.At(10)
	require.NoError(t, err)
	assert.Equal(t, blue, clamped)

	clamped, err = g.Sample(-1)
	require.NoError(t, err)
	assert.Equal(t, red, clamped)
}

func TestStrict(t *testing.T) {
	g, err := New([]color.Color{red, blue}, WithSpace(color.RGB), Strict())
	require.NoError(t, err)

	_, err = g.Sample(1.5)
	assert.ErrorIs(t, err, ErrDomain)
	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 1.5, de.X)

	_, err = g.At(math.NaN())
	assert.ErrorIs(t, err, ErrDomain)

	_, err = g.Sample(1)
	assert.NoError(t, err)
}

func TestDiscrete(t *testing.T) {
	g, err := New([]color.Color{red, green, blue}, WithSpace(color.RGB), Discrete())
	require.NoError(t, err)

	tests := []struct {
		x    float64
		want color.Color
	}{
		{0, red}, {0.2, red}, {0.3, green}, {0.7, green}, {0.8, blue}, {1, blue},
	}
	for _, test := range tests {
		c, err := g.At(test.x)
		require.NoError(t, err)
		assert.Equal(t, test.want, c, "x = %g", test.x)
	}
}

func TestInvalid(t *testing.T) {
	tests := []struct {
		name  string
		stops []color.Color
		opts  []Option
	}{
		{"one stop", []color.Color{red}, nil},
		{"coords length", []color.Color{red, blue}, []Option{WithCoords([]float64{0})}},
		{"coords order", []color.Color{red, green, blue}, []Option{WithCoords([]float64{0, 1, 0.5})}},
		{"empty domain", []color.Color{red, blue}, []Option{WithDomain(1, 1)}},
		{"polar without hue", []color.Color{red, blue}, []Option{WithSpace(color.CIELab), WithMode(Polar)}},
		{"hex", []color.Color{red, blue}, []Option{WithSpace(color.Hex)}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := New(test.stops, test.opts...)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}

	_, err := FromInputs([]any{"#ff0000", "nope"}, format.Web)
	assert.ErrorIs(t, err, color.ErrParse)
}

func TestSampling(t *testing.T) {
	g, err := New([]color.Color{red, blue}, WithSpace(color.RGB))
	require.NoError(t, err)

	one, err := g.SampleN(1)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.5, 0, 0.5}, one[0].Values(), 1e-12)

	inner, err := g.SampleInner(2)
	require.NoError(t, err)
	require.Len(t, inner, 2)
	assert.InDeltaSlice(t, []float64{2.0 / 3, 0, 1.0 / 3}, inner[0].Values(), 1e-12)
	assert.InDeltaSlice(t, []float64{1.0 / 3, 0, 2.0 / 3}, inner[1].Values(), 1e-12)

	_, err = g.SampleN(0)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestAlpha(t *testing.T) {
	g, err := New([]color.Color{red.WithAlpha(0), blue}, WithSpace(color.RGB))
	require.NoError(t, err)
	c, err := g.Sample(0.25)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, c.Alpha(), 1e-12)
}

func TestInvertGrayscale(t *testing.T) {
	g, err := New([]color.Color{red, blue}, WithSpace(color.RGB))
	require.NoError(t, err)

	inv := g.Invert()
	stops := inv.Stops()
	assert.Equal(t, []float64{0, 1, 1}, stops[0].Values())
	assert.Equal(t, []float64{1, 1, 0}, stops[1].Values())
	assert.Equal(t, g.Coords(), inv.Coords())

	gray := g.Grayscale()
	for _, s := range gray.Stops() {
		v := s.Values()
		assert.InDelta(t, v[0], v[1], 1e-9)
		assert.InDelta(t, v[1], v[2], 1e-9)
	}
	// original untouched
	assert.Equal(t, red, g.Stops()[0])
}

func TestBlend(t *testing.T) {
	c := Blend(red, blue, 0.5, color.RGB)
	assert.Equal(t, color.RGB, c.System())
	assert.InDeltaSlice(t, []float64{0.5, 0, 0.5}, c.Values(), 1e-12)

	c = Blend(hsl(10), hsl(350), 0.5, color.HSL)
	assert.Equal(t, 0.0, c.Value(0))

	m := Mix(color.MustNew(color.RGB255, 255, 0, 0), blue)
	assert.Equal(t, color.RGB255, m.System())
	assert.InDelta(t, 0xbe, m.Value(0), 2)
}

func TestParseHueLerp(t *testing.T) {
	for _, h := range []HueLerp{Shortest, Longest, Increasing, Decreasing} {
		got, err := ParseHueLerp(h.String())
		require.NoError(t, err)
		assert.Equal(t, h, got)
	}
	got, err := ParseHueLerp("LONGEST")
	require.NoError(t, err)
	assert.Equal(t, Longest, got)

	_, err = ParseHueLerp("sideways")
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Equal(t, "HueLerp(7)", HueLerp(7).String())
}
