/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"

	"github.com/mmuldo/chromatic/format"
	"github.com/mmuldo/chromatic/image"
	"github.com/mmuldo/chromatic/store"
	"github.com/mmuldo/chromatic/theme"
	"github.com/spf13/cobra"
)

var (
	createN            int
	createName         string
	createTransparency float64
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create <image>",
	Short: "Creates a new theme from an image",
	Long: `Creates a new theme from the most representative colors of an image.

The darker half of the colors becomes color0 onwards and the lighter half
follows, each ordered by how much of the image they cover. With --name the
colors are saved as a stack palette and the theme is saved for switch.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		swatches, e := image.Extract(args[0], createN)
		if e != nil {
			return e
		}
		slog.Debug("extracted colors", "image", args[0], "count", len(swatches))

		s, e := theme.Delegate(swatches)
		if e != nil {
			return e
		}
		opts := make(map[string]any)
		if cmd.Flags().Changed("transparency") {
			opts["transparency"] = createTransparency
		}
		t, e := theme.Create(s, opts)
		if e != nil {
			return e
		}
		for i, c := range s.All() {
			printSwatch(cmd.OutOrStdout(), "color"+strconv.Itoa(i), c, format.Web)
		}

		if createName == "" {
			return nil
		}
		pd, e := dir("palettes_dir")
		if e != nil {
			return e
		}
		if e = store.SaveStack(pd, createName, s); e != nil {
			return e
		}
		td, e := dir("themes_dir")
		if e != nil {
			return e
		}
		path := filepath.Join(td, createName+".json")
		if e = theme.Save(path, t); e != nil {
			return e
		}
		fmt.Fprintln(cmd.OutOrStdout(), "saved", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().IntVarP(&createN, "number", "n", 16, "number of colors to extract")
	createCmd.Flags().StringVar(&createName, "name", "", "save the palette and theme under this name")
	createCmd.Flags().Float64Var(&createTransparency, "transparency", 1, "theme transparency")
}
