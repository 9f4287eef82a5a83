// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the configuration structs and record types shared
// between the CLI surface and the internal packages.
package types

import "time"

// LauncherConfig holds settings for the drag-and-drop launcher flow.
type LauncherConfig struct {
	// ConverterCmd is the name of the external converter command. It is
	// resolved relative to the sxarconv executable first, then on PATH.
	// When it cannot be resolved, the built-in engine is used instead.
	ConverterCmd string `json:"converter_cmd" yaml:"converter_cmd"`

	// SuccessDelay is how long the window stays open after a successful
	// conversion before the process exits (default 3s).
	SuccessDelay time.Duration `json:"success_delay" yaml:"success_delay"`

	// NoPause disables both the success delay and the press-Enter prompts,
	// for scripted or non-interactive use.
	NoPause bool `json:"no_pause" yaml:"no_pause"`
}

// ConversionConfig holds settings for the convert subcommand.
type ConversionConfig struct {
	// OutputDir is the directory for .sxar output. Empty means "next to the
	// input, with the extension swapped to .sxar".
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// HistoryConfig holds settings for the conversion history store.
type HistoryConfig struct {
	// Enabled controls whether conversion outcomes are recorded.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Dir is the directory holding history.db. Empty means
	// <user config dir>/sxarconv.
	Dir string `json:"dir" yaml:"dir"`

	// MaxResults is the default number of records shown by the history
	// subcommand (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// Config groups all tool configuration.
type Config struct {
	Launcher LauncherConfig   `json:"launcher" yaml:"launcher"`
	Convert  ConversionConfig `json:"convert" yaml:"convert"`
	History  HistoryConfig    `json:"history" yaml:"history"`
}
