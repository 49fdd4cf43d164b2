// Package theme turns palettes into desktop themes and renders them through
// application config templates.
package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/flosch/pongo2"
	"github.com/mmuldo/chromatic/color"
	"github.com/mmuldo/chromatic/format"
	"github.com/mmuldo/chromatic/image"
	"github.com/mmuldo/chromatic/palette"
)

var (
	ErrNoColors   = errors.New("theme: no colors")
	ErrUnknownApp = errors.New("theme: unsupported app")
)

// Theme maps template variables (color0, background, ...) to values.
type Theme map[string]any

// Apps maps the supported applications to their config file, relative to
// both the templates directory and the home directory.
var Apps = map[string]string{
	"termite": filepath.Join(".config", "termite", "config"),
	"kitty":   filepath.Join(".config", "kitty", "theme.conf"),
	"xterm":   ".Xresources",
}

type byCount []image.Swatch

func (s byCount) Len() int           { return len(s) }
func (s byCount) Less(i, j int) bool { return s[i].Count > s[j].Count }
func (s byCount) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

type byDarkness []image.Swatch

func (s byDarkness) Len() int { return len(s) }
func (s byDarkness) Less(i, j int) bool {
	return lightness(s[i].Color) < lightness(s[j].Color)
}
func (s byDarkness) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

func lightness(c color.Color) float64 {
	return color.Convert(c, color.CIELab).Value(0)
}

// Delegate assigns swatches to palette slots: the darker half comes first,
// then the lighter half, each ordered by prevalence.
func Delegate(swatches []image.Swatch) (*palette.StackPalette, error) {
	if len(swatches) == 0 {
		return nil, ErrNoColors
	}
	s := append([]image.Swatch(nil), swatches...)

	sort.Stable(byDarkness(s))
	d := s[:len(s)/2]
	l := s[len(s)/2:]
	sort.Stable(byCount(d))
	sort.Stable(byCount(l))

	inputs := make([]any, len(s))
	for i, sw := range s {
		inputs[i] = sw.Color
	}
	return palette.NewStack(format.Web, inputs...)
}

// Create builds a theme with color0..colorN from the stack, rendered as web
// hex. Entries in opts override the generated ones.
func Create(s *palette.StackPalette, opts map[string]any) (Theme, error) {
	if s.Len() == 0 {
		return nil, ErrNoColors
	}
	t := make(Theme)
	for i, c := range s.All() {
		t["color"+strconv.Itoa(i)] = format.Web.Render(c).Text
	}
	for k, v := range opts {
		t[k] = v
	}

	fg := "color8"
	if s.Len() <= 8 {
		fg = "color" + strconv.Itoa(s.Len()-1)
	}
	setDefaults(t, t["color0"], t[fg])
	return t, nil
}

// FromPalette builds a theme whose keys are the palette's color names.
func FromPalette(p *palette.Palette, opts map[string]any) (Theme, error) {
	if p.Len() == 0 {
		return nil, ErrNoColors
	}
	t := make(Theme)
	for name, c := range p.All() {
		t[name] = format.Web.Render(c).Text
	}
	for k, v := range opts {
		t[k] = v
	}

	cs := p.Colors()
	setDefaults(t, format.Web.Render(cs[0]).Text, format.Web.Render(cs[len(cs)-1]).Text)
	return t, nil
}

func setDefaults(t Theme, bg, fg any) {
	if _, ok := t["background"]; !ok {
		t["background"] = bg
	}
	if _, ok := t["transparency"]; !ok {
		t["transparency"] = 1.0
	}
	if _, ok := t["foreground"]; !ok {
		t["foreground"] = fg
	}
}

// Render executes a pongo2 template with the theme as context.
func Render(tpl string, t Theme) (string, error) {
	p, e := pongo2.FromString(tpl)
	if e != nil {
		return "", e
	}
	return p.Execute(pongo2.Context(t))
}

// RenderFile is like Render for a template stored at path.
func RenderFile(path string, t Theme) (string, error) {
	p, e := pongo2.FromFile(path)
	if e != nil {
		return "", e
	}
	return p.Execute(pongo2.Context(t))
}

// Apply renders the template at tplPath and writes the result to outPath.
func Apply(tplPath, outPath string, t Theme) error {
	o, e := RenderFile(tplPath, t)
	if e != nil {
		return e
	}
	if e = os.MkdirAll(filepath.Dir(outPath), 0o755); e != nil {
		return e
	}
	return os.WriteFile(outPath, []byte(o), 0o644)
}

// ApplyApp renders the template of app found under templatesDir into the
// app's config file under home, and returns the written path.
func ApplyApp(app, templatesDir, home string, t Theme) (string, error) {
	rel, ok := Apps[app]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownApp, app)
	}
	out := filepath.Join(home, rel)
	return out, Apply(filepath.Join(templatesDir, rel), out, t)
}

// Save writes t to path as JSON.
func Save(path string, t Theme) error {
	data, e := json.MarshalIndent(t, "", "  ")
	if e != nil {
		return e
	}
	if e = os.MkdirAll(filepath.Dir(path), 0o755); e != nil {
		return e
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// Load reads a theme written by Save.
func Load(path string) (Theme, error) {
	data, e := os.ReadFile(path)
	if e != nil {
		return nil, e
	}
	t := make(Theme)
	if e = json.Unmarshal(data, &t); e != nil {
		return nil, fmt.Errorf("%s: %w", path, e)
	}
	return t, nil
}
