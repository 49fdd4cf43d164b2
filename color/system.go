package color

import (
	"fmt"
	"strings"
)

// System identifies a color model. Every system has three or four channels
// plus an alpha value held separately in [0,1].
type System int

const (
	RGB System = iota
	RGB255
	LinearRGB
	Hex
	HSL
	HSV
	CMY
	CMYK
	CIELab
	CIELuv
	HCLab
	HCLuv
	OkLab
	OkLCh

	numSystems
)

type bounds struct {
	lo, hi float64
}

type systemInfo struct {
	name     string
	channels []string
	ranges   []bounds
	hue      int
	chroma   int
}

var (
	unit  = bounds{0, 1}
	octet = bounds{0, 255}
	deg   = bounds{0, 360}
)

var systems = [numSystems]systemInfo{
	RGB:       {"rgb", []string{"r", "g", "b"}, []bounds{unit, unit, unit}, -1, -1},
	RGB255:    {"rgb255", []string{"r", "g", "b"}, []bounds{octet, octet, octet}, -1, -1},
	LinearRGB: {"linear-rgb", []string{"r", "g", "b"}, []bounds{unit, unit, unit}, -1, -1},
	Hex:       {"hex", []string{"r", "g", "b"}, []bounds{octet, octet, octet}, -1, -1},
	HSL:       {"hsl", []string{"h", "s", "l"}, []bounds{deg, unit, unit}, 0, 1},
	HSV:       {"hsv", []string{"h", "s", "v"}, []bounds{deg, unit, unit}, 0, 1},
	CMY:       {"cmy", []string{"c", "m", "y"}, []bounds{unit, unit, unit}, -1, -1},
	CMYK:      {"cmyk", []string{"c", "m", "y", "k"}, []bounds{unit, unit, unit, unit}, -1, -1},
	CIELab:    {"cielab", []string{"l", "a", "b"}, []bounds{{0, 100}, {-128, 128}, {-128, 128}}, -1, -1},
	CIELuv:    {"cieluv", []string{"l", "u", "v"}, []bounds{{0, 100}, {-134, 224}, {-140, 122}}, -1, -1},
	HCLab:     {"hclab", []string{"h", "c", "l"}, []bounds{deg, {0, 150}, {0, 100}}, 0, 1},
	HCLuv:     {"hcluv", []string{"h", "c", "l"}, []bounds{deg, {0, 180}, {0, 100}}, 0, 1},
	OkLab:     {"oklab", []string{"l", "a", "b"}, []bounds{unit, {-0.5, 0.5}, {-0.5, 0.5}}, -1, -1},
	OkLCh:     {"oklch", []string{"l", "c", "h"}, []bounds{unit, {0, 0.5}, deg}, 2, 1},
}

// Systems returns every supported system in declaration order.
func Systems() []System {
	out := make([]System, numSystems)
	for i := range out {
		out[i] = System(i)
	}
	return out
}

// ParseSystem looks a system up by its name. Matching ignores case.
func ParseSystem(name string) (System, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, info := range systems {
		if info.name == n {
			return System(i), nil
		}
	}
	return 0, &ConversionError{From: -1, To: -1, Name: name}
}

// Valid reports whether s is a declared system.
func (s System) Valid() bool {
	return s >= 0 && s < numSystems
}

func (s System) String() string {
	if !s.Valid() {
		return fmt.Sprintf("System(%d)", int(s))
	}
	return systems[s].name
}

// Channels returns the number of channels, alpha excluded.
func (s System) Channels() int {
	if !s.Valid() {
		return 0
	}
	return len(systems[s].channels)
}

// ChannelNames returns the short channel names, e.g. "h", "s", "l".
func (s System) ChannelNames() []string {
	if !s.Valid() {
		return nil
	}
	return append([]string(nil), systems[s].channels...)
}

// Range returns the valid interval of channel i. Hue channels report
// [0,360] although 360 itself is stored as 0.
func (s System) Range(i int) (lo, hi float64) {
	b := systems[s].ranges[i]
	return b.lo, b.hi
}

// HueIndex returns the index of the cyclic hue channel, or -1.
func (s System) HueIndex() int {
	if !s.Valid() {
		return -1
	}
	return systems[s].hue
}

// ChromaIndex returns the index of the saturation or chroma channel, or -1.
func (s System) ChromaIndex() int {
	if !s.Valid() {
		return -1
	}
	return systems[s].chroma
}

// IsPolar reports whether s has a hue channel.
func (s System) IsPolar() bool {
	return s.HueIndex() >= 0
}

// IsByte reports whether the channels of s are 0..255 integers when rendered.
func (s System) IsByte() bool {
	return s == RGB255 || s == Hex
}

func (s System) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, &ConversionError{From: s, To: s}
	}
	return []byte(s.String()), nil
}

func (s *System) UnmarshalText(text []byte) error {
	v, e := ParseSystem(string(text))
	if e != nil {
		return e
	}
	*s = v
	return nil
}

// rgbDerived systems convert through sRGB without visiting XYZ.
func (s System) rgbDerived() bool {
	switch s {
	case RGB, RGB255, LinearRGB, Hex, HSL, HSV, CMY, CMYK:
		return true
	}
	return false
}
