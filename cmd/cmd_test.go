package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/mmuldo/chromatic/color"
	"github.com/mmuldo/chromatic/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOutput(&buf)
	rootCmd.SetArgs(args)
	e := rootCmd.Execute()
	return buf.String(), e
}

// sandbox points HOME and every configured directory at temporary ones.
func sandbox(t *testing.T) (home string) {
	t.Helper()
	homedir.DisableCache = true
	home = t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("CHROMATIC_PALETTES_DIR", filepath.Join(home, "palettes"))
	t.Setenv("CHROMATIC_THEMES_DIR", filepath.Join(home, "themes"))
	t.Setenv("CHROMATIC_TEMPLATES_DIR", filepath.Join(home, "templates"))
	return home
}

func TestParseInput(t *testing.T) {
	in, err := parseInput("#ff0000")
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", in)

	in, err = parseInput("0.5, 1,0")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1, 0}, in)

	_, err = parseInput("1,x,2")
	assert.ErrorIs(t, err, color.ErrParse)
}

func TestConvert(t *testing.T) {
	sandbox(t)
	out, err := run(t, "convert", "#ff0000", "-f", "hsl", "--from", "rgb255")
	require.NoError(t, err)
	assert.Contains(t, out, "(0, 1, 0.5)")
	assert.Contains(t, out, "\033[38;2;255;0;0m")

	out, err = run(t, "convert", "0,1,0.5", "--from", "hsl", "-f", "pygame")
	require.NoError(t, err)
	assert.Contains(t, out, "(255, 0, 0)")

	_, err = run(t, "convert", "#zz", "-f", "web", "--from", "rgb255")
	assert.ErrorIs(t, err, color.ErrParse)

	_, err = run(t, "convert", "#fff", "-f", "crayon", "--from", "rgb255")
	assert.ErrorIs(t, err, color.ErrUnsupportedSystem)
}

func TestConvertRandom(t *testing.T) {
	sandbox(t)
	t.Cleanup(func() { convertRandom, convertRandomAlpha = 0, false })

	out, err := run(t, "convert", "--random", "2", "-f", "web", "--from", "rgb255")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	for _, l := range lines {
		assert.Regexp(t, `m #[0-9a-f]{6}$`, l)
	}

	convertRandom = 0
	_, err = run(t, "convert", "-f", "web", "--from", "rgb255")
	assert.Error(t, err)
}

func TestGrad(t *testing.T) {
	sandbox(t)
	out, err := run(t, "grad", "#ff0000", "#0000ff", "-n", "3", "-s", "rgb255", "-f", "pygame", "--from", "rgb255")
	require.NoError(t, err)
	assert.Contains(t, out, "(255, 0, 0)")
	assert.Contains(t, out, "(128, 0, 128)")
	assert.Contains(t, out, "(0, 0, 255)")

	_, err = run(t, "grad", "#ff0000", "#0000ff", "-n", "3", "-s", "rgb255", "-f", "pygame", "--from", "rgb255", "--hue", "sideways")
	assert.Error(t, err)
}

func TestPalette(t *testing.T) {
	home := sandbox(t)

	_, err := run(t, "palette", "add", "basic", "red", "#ff0000", "-f", "web", "--from", "rgb255")
	require.NoError(t, err)
	_, err = run(t, "palette", "add", "basic", "blue", "0,0,255", "-f", "web", "--from", "rgb255")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(home, "palettes", "basic"+store.Ext))

	_, err = run(t, "palette", "add", "basic", "red", "#000000", "-f", "web", "--from", "rgb255")
	assert.Error(t, err)

	out, err := run(t, "palette", "list", "-f", "web")
	require.NoError(t, err)
	assert.Equal(t, "basic\n", out)

	out, err = run(t, "palette", "show", "basic", "-f", "web")
	require.NoError(t, err)
	assert.Contains(t, out, "red = #ff0000")
	assert.Contains(t, out, "blue = #0000ff")

	out, err = run(t, "palette", "closest", "basic", "#1010c0", "-f", "web", "--from", "rgb255")
	require.NoError(t, err)
	assert.Contains(t, out, "blue (ΔE")

	_, err = run(t, "palette", "rm", "basic", "red", "-f", "web")
	require.NoError(t, err)
	out, err = run(t, "palette", "show", "basic", "-f", "web")
	require.NoError(t, err)
	assert.NotContains(t, out, "red")

	_, err = run(t, "palette", "rm", "basic", "-f", "web")
	require.NoError(t, err)
	out, err = run(t, "palette", "list", "-f", "web")
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = run(t, "palette", "rm", "basic", "-f", "web")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSwitchPalette(t *testing.T) {
	home := sandbox(t)
	tpl := filepath.Join(home, "templates", ".config", "termite", "config")
	require.NoError(t, os.MkdirAll(filepath.Dir(tpl), 0o755))
	require.NoError(t, os.WriteFile(tpl, []byte("fg={{ fg }} bg={{ background }}\n"), 0o644))

	_, err := run(t, "palette", "add", "dusk", "fg", "#eeeeee", "-f", "web", "--from", "rgb255")
	require.NoError(t, err)
	_, err = run(t, "palette", "add", "dusk", "bg", "#101010", "-f", "web", "--from", "rgb255")
	require.NoError(t, err)

	out, err := run(t, "switch", "dusk", "--palette", "--app", "termite", "-f", "web")
	require.NoError(t, err)
	written := filepath.Join(home, ".config", "termite", "config")
	assert.Contains(t, out, written)

	data, err := os.ReadFile(written)
	require.NoError(t, err)
	assert.Equal(t, "fg=#eeeeee bg=#eeeeee\n", string(data))

	_, err = run(t, "switch", "dusk", "--palette", "--app", "notepad", "-f", "web")
	assert.Error(t, err)
}

func TestCreateMissingImage(t *testing.T) {
	home := sandbox(t)
	_, err := run(t, "create", filepath.Join(home, "missing.png"), "-f", "web")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
