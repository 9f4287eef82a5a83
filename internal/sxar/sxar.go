// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sxar reads and writes SXAR (StarfallEx Archive) files.
//
// An SXAR file is little-endian throughout: a 16-byte header (magic, file
// count, entry table start, data start), an entry table (1-byte name length,
// UTF-8 name, u32 data offset relative to the data start, u32 size per file),
// and the raw file contents concatenated in entry order. Entry names use
// forward slashes and always carry a leading slash.
package sxar

import (
	"path/filepath"
	"strings"
)

// Ext is the conventional file extension for SXAR archives.
const Ext = ".sxar"

// OutputPath returns the conventional archive path for an input file: the
// same path with its extension replaced by .sxar.
func OutputPath(inputPath string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + Ext
}

// Magic is "SXAR" interpreted as a little-endian u32.
const Magic uint32 = 0x52415853

const (
	headerSize = 16
	// maxNameLen is the largest name the 1-byte length field can describe.
	maxNameLen = 255
	// maxEntrySize is the largest file the u32 size field can describe.
	maxEntrySize = 1<<32 - 1
)

// NormalizeName converts an archive member name to SXAR form: backslashes
// folded to forward slashes and a leading slash forced.
func NormalizeName(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	if !strings.HasPrefix(name, "/") {
		name = "/" + name
	}
	return name
}
