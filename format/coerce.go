package format

import (
	"fmt"
	stdcolor "image/color"

	"github.com/mmuldo/chromatic/color"
)

// Coerce turns input into a color expressed in f.System. Accepted inputs:
//
//   - color.Color and *color.Color, converted to f.System
//   - Rendered, read back the way it was written
//   - hex strings, with or without '#', 3, 6 or 8 digits
//   - numeric tuples ([]float64, []int, []uint8 and their 3, 4 and 5
//     element arrays) in f's scale, with optional trailing alpha
//   - any image/color.Color
//
// Tuples are rejected by Hex formats since their scale is ambiguous.
func Coerce(input any, f Format) (color.Color, error) {
	if !f.System.Valid() {
		return color.Color{}, &color.ConversionError{From: f.System, To: f.System}
	}
	switch v := input.(type) {
	case color.Color:
		return convert(v, f)
	case *color.Color:
		if v == nil {
			return color.Color{}, &color.ParseError{Reason: "nil color"}
		}
		return convert(*v, f)
	case Rendered:
		if v.IsText() {
			return coerceHex(v.Text, f)
		}
		return coerceTuple(v.Values, f)
	case string:
		return coerceHex(v, f)
	case []float64:
		return coerceTuple(v, f)
	case [3]float64:
		return coerceTuple(v[:], f)
	case [4]float64:
		return coerceTuple(v[:], f)
	case [5]float64:
		return coerceTuple(v[:], f)
	case []int:
		return coerceTuple(floats(v), f)
	case [3]int:
		return coerceTuple(floats(v[:]), f)
	case [4]int:
		return coerceTuple(floats(v[:]), f)
	case []uint8:
		return coerceTuple(floats(v), f)
	case [3]uint8:
		return coerceTuple(floats(v[:]), f)
	case [4]uint8:
		return coerceTuple(floats(v[:]), f)
	case stdcolor.Color:
		return convert(color.FromStd(v), f)
	case nil:
		return color.Color{}, &color.ParseError{Reason: "nil input"}
	}
	return color.Color{}, &color.ParseError{Input: fmt.Sprint(input), Reason: fmt.Sprintf("cannot interpret %T as a color", input)}
}

// MustCoerce is like Coerce but panics on error.
func MustCoerce(input any, f Format) color.Color {
	c, e := Coerce(input, f)
	if e != nil {
		panic(e)
	}
	return c
}

func convert(c color.Color, f Format) (color.Color, error) {
	return color.ConvertChecked(c, f.System)
}

func coerceHex(s string, f Format) (color.Color, error) {
	c, e := color.ParseHex(s)
	if e != nil {
		return color.Color{}, e
	}
	return convert(c, f)
}

func coerceTuple(values []float64, f Format) (color.Color, error) {
	if f.System == color.Hex {
		return color.Color{}, &color.ParseError{
			Input:  fmt.Sprint(values),
			Reason: "a hex format cannot interpret a numeric tuple",
		}
	}
	n := f.System.Channels()
	if len(values) != n && len(values) != n+1 {
		return color.Color{}, &color.ParseError{
			Input:  fmt.Sprint(values),
			Reason: fmt.Sprintf("%v takes %d or %d values, got %d", f.System, n, n+1, len(values)),
		}
	}

	native := make([]float64, len(values))
	for i := 0; i < n; i++ {
		native[i] = values[i] / f.scale(i)
	}
	if len(values) == n+1 {
		native[n] = values[n] / f.alphaMax()
	}

	if f.Policy == Clamp {
		return color.Clamped(f.System, native...)
	}
	return color.New(f.System, native...)
}

func floats[T int | uint8](v []T) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}
