/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/

// Package cmd implements the chromatic command line.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/mmuldo/chromatic/format"
	"github.com/mmuldo/chromatic/store"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "chromatic",
	Short: "Convert colors, build gradients and manage palettes and themes",
	Long: `chromatic converts colors between color systems, samples gradients,
keeps named palettes on disk and turns images into desktop themes.

Colors are given as hex strings (#ff8000, f80) or as comma separated
values read in the --from format (0.5,1,0.5).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits with status 1 on error.
func Execute() {
	if e := rootCmd.Execute(); e != nil {
		fmt.Fprintln(os.Stderr, "chromatic:", e)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.chromatic.yaml)")
	pf.String("palettes-dir", "", "directory holding saved palettes")
	pf.String("themes-dir", "", "directory holding saved themes")
	pf.String("templates-dir", "", "directory holding app config templates")
	pf.StringP("format", "f", "web", "output format: web, tkinter, matplotlib, pygame, kivy or a system name")
	pf.BoolP("verbose", "v", false, "log debug output to stderr")

	viper.BindPFlag("palettes_dir", pf.Lookup("palettes-dir"))
	viper.BindPFlag("themes_dir", pf.Lookup("themes-dir"))
	viper.BindPFlag("templates_dir", pf.Lookup("templates-dir"))
	viper.BindPFlag("format", pf.Lookup("format"))
	viper.BindPFlag("verbose", pf.Lookup("verbose"))
}

func initConfig() {
	home, e := homedir.Dir()
	if e != nil {
		fmt.Fprintln(os.Stderr, "chromatic:", e)
		os.Exit(1)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(home)
		viper.SetConfigName(".chromatic")
	}

	base := filepath.Join(home, ".config", "chromatic")
	viper.SetDefault("palettes_dir", filepath.Join(base, "palettes"))
	viper.SetDefault("themes_dir", filepath.Join(base, "themes"))
	viper.SetDefault("templates_dir", filepath.Join(base, "templates"))
	viper.SetDefault("format", "web")

	viper.SetEnvPrefix("chromatic")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	readErr := viper.ReadInConfig()
	setupLogging(viper.GetBool("verbose"))
	if readErr == nil {
		slog.Debug("using config file", "path", viper.ConfigFileUsed())
		return
	}
	if _, ok := readErr.(viper.ConfigFileNotFoundError); !ok {
		fmt.Fprintln(os.Stderr, "chromatic:", readErr)
		os.Exit(1)
	}
}

func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(l)
	store.SetLogger(l)
}

// dir returns a directory setting with a leading ~ expanded.
func dir(key string) (string, error) {
	return homedir.Expand(viper.GetString(key))
}

func outputFormat() (format.Format, error) {
	return format.Lookup(viper.GetString("format"))
}
