// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/sxarconv/internal/sxar"
)

var extractCmd = &cobra.Command{
	Use:   "extract <archive.sxar>",
	Short: "Unpack an SXAR archive into a directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().String("output-dir", "", "directory to extract into (default: archive name without extension)")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	archivePath := args[0]
	outDir, _ := cmd.Flags().GetString("output-dir")
	if outDir == "" {
		outDir = strings.TrimSuffix(archivePath, filepath.Ext(archivePath))
	}

	a, err := sxar.Open(archivePath)
	if err != nil {
		return err
	}

	for _, e := range a.Entries {
		rel := strings.TrimPrefix(e.Name, "/")
		if rel == "" || strings.Contains(rel, "..") {
			return fmt.Errorf("refusing to extract unsafe entry name %q", e.Name)
		}
		target := filepath.Join(outDir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", e.Name, err)
		}
		if err := os.WriteFile(target, a.Data(e), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", target, err)
		}
		fmt.Printf("  Extracted: %s (%d bytes)\n", e.Name, e.Size)
	}

	fmt.Printf("\n%d files extracted to %s\n", len(a.Entries), outDir)
	return nil
}
