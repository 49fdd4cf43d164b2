/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/mmuldo/chromatic/store"
	"github.com/mmuldo/chromatic/theme"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var switchPalette bool

// switchCmd represents the switch command
var switchCmd = &cobra.Command{
	Use:   "switch <theme>",
	Short: "Renders a theme into an app's config file",
	Long: `Renders a saved theme through the app's template, found under the
templates directory at the same relative path as the app's config file
under $HOME. With --palette the theme is built from a saved palette whose
color names become the template variables.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := viper.GetString("app")
		if app == "" {
			return fmt.Errorf("%w: none given, use --app", theme.ErrUnknownApp)
		}

		t, e := loadTheme(args[0])
		if e != nil {
			return e
		}
		home, e := homedir.Dir()
		if e != nil {
			return e
		}
		tpl, e := dir("templates_dir")
		if e != nil {
			return e
		}
		out, e := theme.ApplyApp(app, tpl, home, t)
		if e != nil {
			return e
		}
		fmt.Fprintln(cmd.OutOrStdout(), "wrote", out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(switchCmd)

	switchCmd.Flags().StringP("app", "a", "", "app to configure: termite, kitty or xterm")
	switchCmd.Flags().BoolVar(&switchPalette, "palette", false, "build the theme from a saved palette")
	viper.BindPFlag("app", switchCmd.Flags().Lookup("app"))
}

func loadTheme(name string) (theme.Theme, error) {
	if switchPalette {
		d, e := dir("palettes_dir")
		if e != nil {
			return nil, e
		}
		p, e := store.Load(d, nil, name)
		if e != nil {
			return nil, e
		}
		return theme.FromPalette(p, nil)
	}
	d, e := dir("themes_dir")
	if e != nil {
		return nil, e
	}
	return theme.Load(filepath.Join(d, name+".json"))
}
