// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ConversionStatus indicates the outcome of a ZIP-to-SXAR conversion.
type ConversionStatus string

const (
	ConversionDone    ConversionStatus = "converted"
	ConversionSkipped ConversionStatus = "skipped"
	ConversionFailed  ConversionStatus = "failed"
)

// EngineBuiltin is the engine name recorded for conversions done by the
// built-in engine; external conversions record the converter command name.
const EngineBuiltin = "builtin"

// ConversionRecord describes one conversion attempt. Records are appended to
// the history store and serialized into batch manifests.
type ConversionRecord struct {
	// InputPath is the ZIP archive that was converted.
	InputPath string `json:"input_path" yaml:"input_path"`

	// OutputPath is the SXAR archive that was (or would have been) written.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Files is the number of files packed into the archive. Zero when the
	// conversion was delegated to an external converter.
	Files int `json:"files" yaml:"files"`

	// Bytes is the size of the written archive in bytes.
	Bytes int64 `json:"bytes" yaml:"bytes"`

	// Status is the conversion outcome.
	Status ConversionStatus `json:"status" yaml:"status"`

	// Engine identifies what performed the conversion: "builtin" or the
	// name of the external converter command.
	Engine string `json:"engine" yaml:"engine"`

	// CreatedAt is when the conversion finished.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}
