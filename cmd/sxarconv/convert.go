// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/sxarconv/internal/convert"
	"github.com/pdiddy/sxarconv/internal/history"
)

var convertCmd = &cobra.Command{
	Use:   "convert [zips...]",
	Short: "Convert one or more ZIP archives to SXAR",
	Long: `Convert runs the built-in ZIP-to-SXAR engine over each input. Inputs
whose output archive already exists are skipped. Use --manifest to write a
YAML report of the run.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("output-dir", "", "directory for .sxar output (default: next to each input)")
	convertCmd.Flags().String("manifest", "", "write a YAML run report to this file")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	outDir, _ := cmd.Flags().GetString("output-dir")
	if outDir == "" {
		outDir = viper.GetString("convert.output_dir")
	}
	manifestPath, _ := cmd.Flags().GetString("manifest")

	result, records := convert.ConvertBatch(args, outDir, os.Stdout)

	if cfg := historyConfig(); cfg.Enabled {
		if store, err := history.NewStore(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "warning: history unavailable: %v\n", err)
		} else {
			for _, rec := range records {
				if err := store.Record(context.Background(), rec); err != nil {
					fmt.Fprintf(os.Stderr, "warning: could not record history: %v\n", err)
					break
				}
			}
			store.Close()
		}
	}

	if manifestPath != "" {
		if err := convert.WriteManifest(manifestPath, args, records, result); err != nil {
			return err
		}
		fmt.Printf("Manifest written: %s\n", manifestPath)
	}

	if result.HasFailures() {
		return fmt.Errorf("%d archive(s) failed conversion", result.Failed)
	}
	return nil
}
