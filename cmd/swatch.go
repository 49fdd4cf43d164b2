/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mmuldo/chromatic/color"
	"github.com/mmuldo/chromatic/format"
)

// printSwatch writes a truecolor block followed by label and the rendered
// color.
func printSwatch(w io.Writer, label string, c color.Color, f format.Format) {
	n := c.Std()
	if label != "" {
		label += " = "
	}
	fmt.Fprintf(w, "\033[38;2;%d;%d;%dm██\033[0m %s%s\n", n.R, n.G, n.B, label, f.Render(c))
}

// parseInput turns a command line argument into something format.Coerce
// accepts: comma separated numbers become a tuple, anything else is read
// as hex.
func parseInput(arg string) (any, error) {
	if !strings.Contains(arg, ",") {
		return arg, nil
	}
	parts := strings.Split(arg, ",")
	values := make([]float64, len(parts))
	for i, p := range parts {
		v, e := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if e != nil {
			return nil, &color.ParseError{Input: arg, Reason: fmt.Sprintf("%q is not a number", p)}
		}
		values[i] = v
	}
	return values, nil
}

func coerceArgs(args []string, f format.Format) ([]color.Color, error) {
	out := make([]color.Color, len(args))
	for i, arg := range args {
		in, e := parseInput(arg)
		if e != nil {
			return nil, e
		}
		if out[i], e = f.Coerce(in); e != nil {
			return nil, e
		}
	}
	return out, nil
}

// inputFormat is the format tuples on the command line are read in.
func inputFormat(name string) (format.Format, error) {
	if name == "" {
		return format.New(color.RGB255), nil
	}
	return format.Lookup(name)
}
