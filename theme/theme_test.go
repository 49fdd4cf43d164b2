package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mmuldo/chromatic/color"
	"github.com/mmuldo/chromatic/format"
	"github.com/mmuldo/chromatic/image"
	"github.com/mmuldo/chromatic/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func swatch(t *testing.T, hex string, n int) image.Swatch {
	t.Helper()
	c, err := color.ParseHex(hex)
	require.NoError(t, err)
	return image.Swatch{Color: c, Count: n}
}

func hexes(s *palette.StackPalette) []string {
	var out []string
	for _, c := range s.All() {
		out = append(out, format.Web.Render(c).Text)
	}
	return out
}

func TestDelegate(t *testing.T) {
	s, err := Delegate([]image.Swatch{
		swatch(t, "#ffffff", 1),
		swatch(t, "#000000", 2),
		swatch(t, "#202020", 9),
		swatch(t, "#e0e0e0", 5),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"#202020", "#000000", "#e0e0e0", "#ffffff"}, hexes(s))

	_, err = Delegate(nil)
	assert.ErrorIs(t, err, ErrNoColors)
}

func TestCreate(t *testing.T) {
	var inputs []any
	for _, h := range []string{"#000000", "#111111", "#222222", "#333333", "#444444",
		"#555555", "#666666", "#777777", "#888888", "#999999"} {
		inputs = append(inputs, h)
	}
	s, err := palette.NewStack(format.Web, inputs...)
	require.NoError(t, err)

	th, err := Create(s, map[string]any{"transparency": 0.8})
	require.NoError(t, err)
	assert.Equal(t, "#000000", th["color0"])
	assert.Equal(t, "#999999", th["color9"])
	assert.Equal(t, "#000000", th["background"])
	assert.Equal(t, "#888888", th["foreground"])
	assert.Equal(t, 0.8, th["transparency"])

	short, err := palette.NewStack(format.New(color.RGB), "#ff0000", "#00ff00", "#0000ff")
	require.NoError(t, err)
	th, err = Create(short, map[string]any{"background": "#123456"})
	require.NoError(t, err)
	assert.Equal(t, "#123456", th["background"])
	assert.Equal(t, "#0000ff", th["foreground"])
	assert.Equal(t, 1.0, th["transparency"])
}

func TestFromPalette(t *testing.T) {
	p := palette.New("p", format.New(color.HSL))
	require.NoError(t, p.Add("accent", "#ff8000"))
	require.NoError(t, p.Add("text", "#eeeeee"))

	th, err := FromPalette(p, nil)
	require.NoError(t, err)
	assert.Equal(t, "#ff8000", th["accent"])
	assert.Equal(t, "#ff8000", th["background"])
	assert.Equal(t, "#eeeeee", th["foreground"])

	_, err = FromPalette(palette.New("", format.Web), nil)
	assert.ErrorIs(t, err, ErrNoColors)
}

func TestRender(t *testing.T) {
	th := Theme{"background": "#101010", "color1": "#ff0000"}
	out, err := Render("bg={{ background }} c1={{ color1 }}", th)
	require.NoError(t, err)
	assert.Equal(t, "bg=#101010 c1=#ff0000", out)

	_, err = Render("{% if %}", th)
	assert.Error(t, err)
}

func TestApplyApp(t *testing.T) {
	templates, home := t.TempDir(), t.TempDir()
	tpl := filepath.Join(templates, Apps["termite"])
	require.NoError(t, os.MkdirAll(filepath.Dir(tpl), 0o755))
	require.NoError(t, os.WriteFile(tpl, []byte("[colors]\nforeground = {{ foreground }}\n"), 0o644))

	out, err := ApplyApp("termite", templates, home, Theme{"foreground": "#eeeeee"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "termite", "config"), out)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "[colors]\nforeground = #eeeeee\n", string(data))

	_, err = ApplyApp("notepad", templates, home, Theme{})
	assert.ErrorIs(t, err, ErrUnknownApp)
	_, err = ApplyApp("kitty", templates, home, Theme{})
	assert.Error(t, err)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "themes", "dusk.json")
	th := Theme{"color0": "#000000", "transparency": 0.9}
	require.NoError(t, Save(path, th))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, th, got)

	_, err = Load(filepath.Join(t.TempDir(), "none.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
