// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sxar

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Writer accumulates files and serializes them as an SXAR archive.
// The zero value is not usable; call NewWriter.
type Writer struct {
	files []memberFile
	total int64 // cumulative data size, bounded by the u32 offset space
}

type memberFile struct {
	name string
	data []byte
}

// NewWriter returns an empty archive writer.
func NewWriter() *Writer {
	return &Writer{}
}

// AddFile appends a file to the archive under the normalized form of name.
// The data slice is retained until the archive is written.
func (w *Writer) AddFile(name string, data []byte) error {
	name = NormalizeName(name)
	if len(name) > maxNameLen {
		return fmt.Errorf("entry name %q exceeds %d bytes", name, maxNameLen)
	}
	if uint64(len(data)) > maxEntrySize {
		return fmt.Errorf("entry %q exceeds the 4 GiB format limit", name)
	}
	if uint64(w.total)+uint64(len(data)) > maxEntrySize {
		return fmt.Errorf("adding entry %q would push the archive data past the 4 GiB format limit", name)
	}
	w.total += int64(len(data))
	w.files = append(w.files, memberFile{name: name, data: data})
	return nil
}

// Count returns the number of files added so far.
func (w *Writer) Count() int {
	return len(w.files)
}

// entryTableSize returns the serialized size of the entry table.
func (w *Writer) entryTableSize() int {
	size := 0
	for _, f := range w.files {
		size += 1 + len(f.name) + 4 + 4
	}
	return size
}

// WriteTo serializes the archive. It implements io.WriterTo.
func (w *Writer) WriteTo(out io.Writer) (int64, error) {
	bw := bufio.NewWriter(out)
	var written int64

	put32 := func(v uint32) error {
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], v)
		n, err := bw.Write(buf[:])
		written += int64(n)
		return err
	}

	dataStart := headerSize + w.entryTableSize()

	// Header.
	if err := put32(Magic); err != nil {
		return written, err
	}
	if err := put32(uint32(len(w.files))); err != nil {
		return written, err
	}
	if err := put32(headerSize); err != nil {
		return written, err
	}
	if err := put32(uint32(dataStart)); err != nil {
		return written, err
	}

	// Entry table. Offsets are relative to the data start.
	offset := uint32(0)
	for _, f := range w.files {
		if err := bw.WriteByte(byte(len(f.name))); err != nil {
			return written, err
		}
		written++
		n, err := bw.WriteString(f.name)
		written += int64(n)
		if err != nil {
			return written, err
		}
		if err := put32(offset); err != nil {
			return written, err
		}
		if err := put32(uint32(len(f.data))); err != nil {
			return written, err
		}
		offset += uint32(len(f.data))
	}

	// Data section.
	for _, f := range w.files {
		n, err := bw.Write(f.data)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}

	return written, bw.Flush()
}

// WriteFile serializes the archive to path, replacing any existing file.
func (w *Writer) WriteFile(path string) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", path, err)
	}
	n, err := w.WriteTo(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, fmt.Errorf("writing %s: %w", path, err)
	}
	return n, nil
}
