// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/sxarconv/internal/sxar"
)

var listCmd = &cobra.Command{
	Use:   "list <archive.sxar>",
	Short: "List the entries of an SXAR archive",
	Args:  cobra.ExactArgs(1),
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := sxar.Open(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "%-50s  %10s  %10s\n", "Name", "Size", "Offset")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 74))
	for _, e := range a.Entries {
		fmt.Fprintf(os.Stdout, "%-50s  %10d  %10d\n", e.Name, e.Size, e.Offset)
	}
	fmt.Fprintf(os.Stdout, "\n%d files, %d bytes\n", len(a.Entries), a.TotalBytes())
	return nil
}
