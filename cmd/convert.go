/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"errors"

	"github.com/mmuldo/chromatic/color"
	"github.com/mmuldo/chromatic/format"
	"github.com/spf13/cobra"
)

var (
	convertFrom        string
	convertRandom      int
	convertRandomAlpha bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <color>...",
	Short: "Convert colors to the output format",
	Example: `  chromatic convert '#ff8000' -f hsl
  chromatic convert 30,1,0.5 --from hsl -f pygame
  chromatic convert --random 3 -f hsl`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && convertRandom == 0 {
			return errors.New("convert needs a color or --random")
		}
		in, e := inputFormat(convertFrom)
		if e != nil {
			return e
		}
		out, e := outputFormat()
		if e != nil {
			return e
		}
		cs, e := coerceArgs(args, in)
		if e != nil {
			return e
		}
		for i := 0; i < convertRandom; i++ {
			cs = append(cs, format.Random(format.New(color.RGB255), convertRandomAlpha))
		}
		for _, c := range cs {
			printSwatch(cmd.OutOrStdout(), "", c, out)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&convertFrom, "from", "", "format numeric input is read in (default rgb255)")
	convertCmd.Flags().IntVarP(&convertRandom, "random", "r", 0, "also print this many random colors")
	convertCmd.Flags().BoolVar(&convertRandomAlpha, "random-alpha", false, "randomize alpha of random colors")
}
