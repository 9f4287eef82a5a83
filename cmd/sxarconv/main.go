// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the sxarconv CLI. The root command is
// the drag-and-drop launcher: dropping a ZIP file onto the executable
// supplies its path as the single argument and converts it to SXAR.
// Subcommands cover batch conversion, archive inspection, extraction, and
// the conversion history.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command; with no subcommand it runs the launcher flow.
var rootCmd = &cobra.Command{
	Use:   "sxarconv [input.zip]",
	Short: "Convert ZIP archives to SXAR (StarfallEx Archive) format",
	Long: `sxarconv converts ZIP archives to the SXAR archive format. The usual way
to use it is to drag and drop a ZIP file onto the executable; the dropped
file's path arrives as the single argument and is converted in place, with
the console window held open long enough to read the outcome.

When a converter command (default "zip-to-sxar") is found next to the
sxarconv executable or on PATH it is invoked as a child process with the
input path as its sole argument and judged by its exit status. Otherwise
the built-in conversion engine is used.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runLaunch,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./sxarconv.yaml or ~/.config/sxarconv/config.yaml)")
	rootCmd.Flags().Bool("no-pause", false, "disable the press-Enter prompts and success delay")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("sxarconv")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "sxarconv"))
		}
	}

	viper.SetDefault("launcher.converter_cmd", "zip-to-sxar")
	viper.SetDefault("launcher.success_delay", "3s")
	viper.SetDefault("launcher.no_pause", false)
	viper.SetDefault("convert.output_dir", "")
	viper.SetDefault("history.enabled", true)
	viper.SetDefault("history.dir", "")
	viper.SetDefault("history.max_results", 20)

	viper.SetEnvPrefix("SXARCONV")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
