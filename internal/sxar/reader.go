// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sxar

import (
	"encoding/binary"
	"fmt"
	"os"
)

// Entry describes one file in an SXAR archive.
type Entry struct {
	// Name is the archive member name, always with a leading slash.
	Name string

	// Offset is the position of the file data relative to the data start.
	Offset uint32

	// Size is the file size in bytes.
	Size uint32
}

// Archive is a decoded SXAR file held in memory.
type Archive struct {
	Entries []Entry

	data []byte // the data section
}

// Open reads and decodes the SXAR archive at path.
func Open(path string) (*Archive, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	a, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return a, nil
}

// Decode parses a serialized SXAR archive.
func Decode(raw []byte) (*Archive, error) {
	if len(raw) < headerSize {
		return nil, fmt.Errorf("file too short for SXAR header (%d bytes)", len(raw))
	}

	magic := binary.LittleEndian.Uint32(raw[0:4])
	if magic != Magic {
		return nil, fmt.Errorf("bad magic 0x%08x, want 0x%08x", magic, Magic)
	}
	count := binary.LittleEndian.Uint32(raw[4:8])
	tableStart := binary.LittleEndian.Uint32(raw[8:12])
	dataStart := binary.LittleEndian.Uint32(raw[12:16])

	if tableStart != headerSize {
		return nil, fmt.Errorf("unexpected entry table start %d, want %d", tableStart, headerSize)
	}
	if int64(dataStart) > int64(len(raw)) {
		return nil, fmt.Errorf("data start %d beyond file end %d", dataStart, len(raw))
	}

	a := &Archive{
		Entries: make([]Entry, 0, count),
		data:    raw[dataStart:],
	}

	pos := int(tableStart)
	for i := uint32(0); i < count; i++ {
		if pos >= int(dataStart) {
			return nil, fmt.Errorf("entry table truncated at entry %d", i)
		}
		nameLen := int(raw[pos])
		pos++
		if pos+nameLen+8 > int(dataStart) {
			return nil, fmt.Errorf("entry table truncated at entry %d", i)
		}
		name := string(raw[pos : pos+nameLen])
		pos += nameLen
		offset := binary.LittleEndian.Uint32(raw[pos : pos+4])
		size := binary.LittleEndian.Uint32(raw[pos+4 : pos+8])
		pos += 8

		if int64(offset)+int64(size) > int64(len(a.data)) {
			return nil, fmt.Errorf("entry %q data [%d:%d) beyond data section end %d",
				name, offset, int64(offset)+int64(size), len(a.data))
		}
		a.Entries = append(a.Entries, Entry{Name: name, Offset: offset, Size: size})
	}

	return a, nil
}

// Data returns the contents of an entry.
func (a *Archive) Data(e Entry) []byte {
	return a.data[e.Offset : int64(e.Offset)+int64(e.Size)]
}

// TotalBytes returns the sum of all entry sizes.
func (a *Archive) TotalBytes() int64 {
	var total int64
	for _, e := range a.Entries {
		total += int64(e.Size)
	}
	return total
}
