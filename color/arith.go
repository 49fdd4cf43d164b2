package color

import "math"

// The binary operators below work in the system of their left operand: the
// right operand is converted to it, channels are combined one by one and the
// result is clamped to the left operand's ranges. Hue channels combine
// modulo 360 and are never clamped. Alpha comes from the left operand.

// Add returns a + b.
func Add(a, b Color) Color {
	return combine(a, b, func(x, y, _ float64) float64 { return x + y })
}

// Subtract returns a - b.
func Subtract(a, b Color) Color {
	return combine(a, b, func(x, y, _ float64) float64 { return x - y })
}

// Scale multiplies every channel of a by the matching channel of factor.
// Scaling an HSL color by HSL (1, 0.5, 1) halves its saturation and leaves
// hue and lightness alone.
func Scale(a, factor Color) Color {
	return combine(a, factor, func(x, y, _ float64) float64 { return x * y })
}

// Divide divides every channel of a by the matching channel of divisor.
// A zero divisor yields the channel's upper bound for a positive dividend
// and 0 otherwise.
func Divide(a, divisor Color) Color {
	return combine(a, divisor, func(x, y, hi float64) float64 {
		if y == 0 {
			if x > 0 {
				return hi
			}
			return 0
		}
		return x / y
	})
}

// ScaleValues multiplies channel i of a by factors[i] without any
// conversion. It needs exactly one factor per channel.
func ScaleValues(a Color, factors ...float64) (Color, error) {
	return combineValues(a, factors, func(x, y float64) float64 { return x * y })
}

// OffsetValues adds deltas[i] to channel i of a without any conversion.
func OffsetValues(a Color, deltas ...float64) (Color, error) {
	return combineValues(a, deltas, func(x, y float64) float64 { return x + y })
}

func combine(a, b Color, op func(x, y, hi float64) float64) Color {
	b = Convert(b, a.sys)
	var v [4]float64
	for i := 0; i < a.sys.Channels(); i++ {
		_, hi := a.sys.Range(i)
		v[i] = op(a.v[i], b.v[i], hi)
	}
	return Color{sys: a.sys, v: settle(a.sys, v), a: a.a}
}

func combineValues(a Color, values []float64, op func(x, y float64) float64) (Color, error) {
	n := a.sys.Channels()
	if len(values) != n {
		return Color{}, parseErrorf(formatValues(values), "%v takes %d values, got %d", a.sys, n, len(values))
	}
	var v [4]float64
	for i := 0; i < n; i++ {
		if math.IsNaN(values[i]) {
			return Color{}, parseErrorf(formatValues(values), "value %d is not a number", i)
		}
		v[i] = op(a.v[i], values[i])
	}
	return Color{sys: a.sys, v: settle(a.sys, v), a: a.a}, nil
}
