// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/sxarconv/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent conversions",
	Long: `History lists recent conversion outcomes recorded in the local SQLite
history database, newest first.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 0, "maximum records to show (default: history.max_results)")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := history.NewStore(historyConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.Recent(context.Background(), limit)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("No conversions recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-19s  %-9s  %-10s  %6s  %10s  %s\n",
		"When", "Status", "Engine", "Files", "Bytes", "Input")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 90))
	for _, rec := range records {
		fmt.Fprintf(os.Stdout, "%-19s  %-9s  %-10s  %6d  %10d  %s\n",
			rec.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			rec.Status, rec.Engine, rec.Files, rec.Bytes, rec.InputPath)
	}
	return nil
}
