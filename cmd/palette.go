/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/mmuldo/chromatic/palette"
	"github.com/mmuldo/chromatic/store"
	"github.com/spf13/cobra"
)

var paletteFrom string

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Manage saved palettes",
}

var paletteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved palettes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, e := dir("palettes_dir")
		if e != nil {
			return e
		}
		names, e := store.List(d)
		if e != nil {
			return e
		}
		for _, n := range names {
			fmt.Fprintln(cmd.OutOrStdout(), n)
		}
		return nil
	},
}

var paletteShowCmd = &cobra.Command{
	Use:   "show [palette]...",
	Short: "Print the colors of one or more palettes, merged",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, e := dir("palettes_dir")
		if e != nil {
			return e
		}
		f, e := outputFormat()
		if e != nil {
			return e
		}
		p, e := store.Load(d, &f, args...)
		if e != nil {
			return e
		}
		for name, c := range p.All() {
			printSwatch(cmd.OutOrStdout(), name, c, f)
		}
		return nil
	},
}

var paletteAddCmd = &cobra.Command{
	Use:   "add <palette> <name> <color>",
	Short: "Add a color to a palette, creating the palette if needed",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, e := dir("palettes_dir")
		if e != nil {
			return e
		}
		in, e := inputFormat(paletteFrom)
		if e != nil {
			return e
		}
		cs, e := coerceArgs(args[2:], in)
		if e != nil {
			return e
		}

		p, e := store.Load(d, nil, args[0])
		if errors.Is(e, store.ErrNotFound) {
			f, fe := outputFormat()
			if fe != nil {
				return fe
			}
			p, e = palette.New(args[0], f), nil
		}
		if e != nil {
			return e
		}
		if e = p.Add(args[1], cs[0]); e != nil {
			return e
		}
		return store.Save(d, p)
	},
}

var paletteRmCmd = &cobra.Command{
	Use:   "rm <palette> [name]",
	Short: "Remove a color from a palette, or the whole palette",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, e := dir("palettes_dir")
		if e != nil {
			return e
		}
		if len(args) == 1 {
			return store.Remove(d, args[0])
		}
		p, e := store.Load(d, nil, args[0])
		if e != nil {
			return e
		}
		if e = p.Remove(args[1]); e != nil {
			return e
		}
		return store.Save(d, p)
	},
}

var paletteClosestCmd = &cobra.Command{
	Use:   "closest <palette> <color>",
	Short: "Find the palette color perceptually closest to a color",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, e := dir("palettes_dir")
		if e != nil {
			return e
		}
		in, e := inputFormat(paletteFrom)
		if e != nil {
			return e
		}
		cs, e := coerceArgs(args[1:], in)
		if e != nil {
			return e
		}
		f, e := outputFormat()
		if e != nil {
			return e
		}
		p, e := store.Load(d, &f, args[0])
		if e != nil {
			return e
		}
		name, c, e := p.FindClosest(cs[0])
		if e != nil {
			return e
		}
		printSwatch(cmd.OutOrStdout(), fmt.Sprintf("%s (ΔE %.2f)", name, palette.DeltaE(c, cs[0])), c, f)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(paletteCmd)
	paletteCmd.AddCommand(paletteListCmd, paletteShowCmd, paletteAddCmd, paletteRmCmd, paletteClosestCmd)

	paletteCmd.PersistentFlags().StringVar(&paletteFrom, "from", "", "format numeric input is read in (default rgb255)")
}
