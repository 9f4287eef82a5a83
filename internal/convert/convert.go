// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements the built-in ZIP-to-SXAR conversion engine and
// batch conversion over it.
package convert

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/sxarconv/internal/sxar"
	"github.com/pdiddy/sxarconv/pkg/types"
)

// OutputPath returns the default SXAR output path for a ZIP input.
func OutputPath(zipPath string) string {
	return sxar.OutputPath(zipPath)
}

// ConvertZip converts the ZIP archive at zipPath into an SXAR archive.
// An empty outPath means OutputPath(zipPath). Per-file progress is printed
// to w. The returned record describes the outcome even on failure.
func ConvertZip(zipPath, outPath string, w io.Writer) (types.ConversionRecord, error) {
	if outPath == "" {
		outPath = OutputPath(zipPath)
	}
	rec := types.ConversionRecord{
		InputPath:  zipPath,
		OutputPath: outPath,
		Status:     types.ConversionFailed,
		Engine:     types.EngineBuiltin,
		CreatedAt:  time.Now().UTC(),
	}

	if _, err := os.Stat(zipPath); err != nil {
		return rec, fmt.Errorf("file not found: %s", zipPath)
	}

	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		if errors.Is(err, zip.ErrFormat) {
			return rec, fmt.Errorf("not a valid ZIP file: %s", zipPath)
		}
		return rec, fmt.Errorf("opening %s: %w", zipPath, err)
	}
	defer zr.Close()

	fmt.Fprintf(w, "Converting %d files from ZIP to SXAR...\n", len(zr.File))

	sw := sxar.NewWriter()
	for _, zf := range zr.File {
		if strings.HasSuffix(zf.Name, "/") {
			continue
		}
		data, err := readZipFile(zf)
		if err != nil {
			fmt.Fprintf(w, "  Warning: could not read %s: %v\n", zf.Name, err)
			continue
		}
		if err := sw.AddFile(zf.Name, data); err != nil {
			return rec, err
		}
		fmt.Fprintf(w, "  Added: %s (%d bytes)\n", zf.Name, len(data))
	}

	n, err := sw.WriteFile(outPath)
	if err != nil {
		return rec, err
	}

	fmt.Fprintf(w, "\nSuccess! SXAR archive created: %s\n", outPath)
	fmt.Fprintf(w, "Total files: %d\n", sw.Count())
	fmt.Fprintf(w, "Archive size: %d bytes\n", n)

	rec.Files = sw.Count()
	rec.Bytes = n
	rec.Status = types.ConversionDone
	rec.CreatedAt = time.Now().UTC()
	return rec, nil
}

func readZipFile(zf *zip.File) ([]byte, error) {
	rc, err := zf.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int
}

// Total returns the total number of inputs processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any input failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ConvertBatch converts each ZIP path, printing per-file status to w and
// returning a summary plus the per-input records. Inputs whose output
// already exists are skipped. A non-empty outDir redirects output there.
func ConvertBatch(zipPaths []string, outDir string, w io.Writer) (BatchResult, []types.ConversionRecord) {
	var result BatchResult
	records := make([]types.ConversionRecord, 0, len(zipPaths))

	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			fmt.Fprintf(w, "failed: creating %s (%v)\n", outDir, err)
			result.Failed = len(zipPaths)
			return result, records
		}
	}

	for _, zp := range zipPaths {
		outPath := OutputPath(zp)
		if outDir != "" {
			outPath = filepath.Join(outDir, filepath.Base(outPath))
		}

		if _, err := os.Stat(outPath); err == nil {
			fmt.Fprintf(w, "skipped: %s (already exists)\n", outPath)
			result.Skipped++
			records = append(records, types.ConversionRecord{
				InputPath:  zp,
				OutputPath: outPath,
				Status:     types.ConversionSkipped,
				Engine:     types.EngineBuiltin,
				CreatedAt:  time.Now().UTC(),
			})
			continue
		}

		rec, err := ConvertZip(zp, outPath, w)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", zp, err)
			result.Failed++
		} else {
			fmt.Fprintf(w, "converted: %s -> %s (%d files, %d bytes)\n",
				zp, rec.OutputPath, rec.Files, rec.Bytes)
			result.Converted++
		}
		records = append(records, rec)
	}

	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return result, records
}
