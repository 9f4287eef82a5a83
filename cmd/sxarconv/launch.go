// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/sxarconv/internal/convert"
	"github.com/pdiddy/sxarconv/internal/history"
	"github.com/pdiddy/sxarconv/internal/launch"
	"github.com/pdiddy/sxarconv/pkg/types"
)

func launcherConfig(cmd *cobra.Command) types.LauncherConfig {
	cfg := types.LauncherConfig{
		ConverterCmd: viper.GetString("launcher.converter_cmd"),
		SuccessDelay: viper.GetDuration("launcher.success_delay"),
		NoPause:      viper.GetBool("launcher.no_pause"),
	}
	if noPause, _ := cmd.Flags().GetBool("no-pause"); noPause {
		cfg.NoPause = true
	}
	return cfg
}

func historyConfig() types.HistoryConfig {
	return types.HistoryConfig{
		Enabled:    viper.GetBool("history.enabled"),
		Dir:        viper.GetString("history.dir"),
		MaxResults: viper.GetInt("history.max_results"),
	}
}

// recordHistory appends a conversion record, best effort. History problems
// never change the launcher outcome.
func recordHistory(rec types.ConversionRecord) {
	cfg := historyConfig()
	if !cfg.Enabled || rec.InputPath == "" {
		return
	}
	store, err := history.NewStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history unavailable: %v\n", err)
		return
	}
	defer store.Close()
	if err := store.Record(context.Background(), rec); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record history: %v\n", err)
	}
}

func runLaunch(cmd *cobra.Command, args []string) error {
	input := ""
	if len(args) > 0 {
		input = args[0]
	}

	sess := &launch.Session{
		Launcher: launch.NewLauncher(),
		Engine: func(inputPath string, w io.Writer) (types.ConversionRecord, error) {
			return convert.ConvertZip(inputPath, "", w)
		},
		Config: launcherConfig(cmd),
		In:     os.Stdin,
		Out:    os.Stdout,
		ErrOut: os.Stderr,
	}

	rec, err := sess.Run(input)
	if errors.Is(err, launch.ErrNoInput) {
		os.Exit(1)
	}
	recordHistory(rec)
	return err
}
