/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"github.com/mmuldo/chromatic/color"
	"github.com/mmuldo/chromatic/gradient"
	"github.com/spf13/cobra"
)

var (
	gradN     int
	gradInner bool
	gradFrom  string
	gradSpace string
	gradHue   string
	gradPolar bool
)

var gradCmd = &cobra.Command{
	Use:   "grad <color> <color>...",
	Short: "Sample a gradient through two or more colors",
	Example: `  chromatic grad '#ff0000' '#0000ff' -n 5
  chromatic grad ff0 f0f --hue longest -n 7`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, e := inputFormat(gradFrom)
		if e != nil {
			return e
		}
		out, e := outputFormat()
		if e != nil {
			return e
		}
		stops, e := coerceArgs(args, in)
		if e != nil {
			return e
		}

		var opts []gradient.Option
		if gradSpace != "" {
			sys, e := color.ParseSystem(gradSpace)
			if e != nil {
				return e
			}
			opts = append(opts, gradient.WithSpace(sys))
		}
		if gradPolar {
			opts = append(opts, gradient.WithMode(gradient.Polar))
		}
		if gradHue != "" {
			h, e := gradient.ParseHueLerp(gradHue)
			if e != nil {
				return e
			}
			opts = append(opts, gradient.WithHueLerp(h))
		}

		g, e := gradient.New(stops, opts...)
		if e != nil {
			return e
		}
		sample := g.SampleN
		if gradInner {
			sample = g.SampleInner
		}
		cs, e := sample(gradN)
		if e != nil {
			return e
		}
		for _, c := range cs {
			printSwatch(cmd.OutOrStdout(), "", c, out)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(gradCmd)

	gradCmd.Flags().IntVarP(&gradN, "number", "n", 5, "number of colors to sample")
	gradCmd.Flags().BoolVar(&gradInner, "inner", false, "leave out both ends")
	gradCmd.Flags().StringVar(&gradFrom, "from", "", "format numeric input is read in (default rgb255)")
	gradCmd.Flags().StringVarP(&gradSpace, "space", "s", "", "interpolation color system (default cieluv, hcluv when polar)")
	gradCmd.Flags().BoolVarP(&gradPolar, "polar", "p", false, "interpolate hue as an angle")
	gradCmd.Flags().StringVar(&gradHue, "hue", "", "hue arc when polar: shortest, longest, increasing or decreasing")
}
