// Package table implements the binary codec of the level select table.
package table

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/retroenv/levelshuffle/internal/gba"
)

// RecordSize is the size in bytes of an encoded record.
const RecordSize = 20

// Record is a single entry of the level select table.
type Record struct {
	ID         int16       // level ID, -1 for an unused slot
	DisplayReq gba.Pointer // requirements to show the level
	UnlockReq  gba.Pointer // requirements to unlock the level
	Targets    gba.Pointer
	Flags      uint8
	Delay      int16 // frames

	// padding bytes as found in the image, encoded unchanged
	padding [3]byte
}

// rawRecord is the packed little endian layout of a record:
// i16 id | 2 pad | 4 display | 4 unlock | 4 targets | u8 flags | i16 delay | 1 pad
type rawRecord struct {
	ID         int16
	Pad0       [2]byte
	DisplayReq gba.Pointer
	UnlockReq  gba.Pointer
	Targets    gba.Pointer
	Flags      uint8
	Delay      int16
	Pad1       uint8
}

// DecodeRecord decodes a single record from its binary form.
func DecodeRecord(data []byte) (Record, error) {
	if len(data) != RecordSize {
		return Record{}, fmt.Errorf("invalid record size %d, expected %d", len(data), RecordSize)
	}

	var raw rawRecord
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &raw); err != nil {
		return Record{}, fmt.Errorf("reading record: %w", err)
	}

	return Record{
		ID:         raw.ID,
		DisplayReq: raw.DisplayReq,
		UnlockReq:  raw.UnlockReq,
		Targets:    raw.Targets,
		Flags:      raw.Flags,
		Delay:      raw.Delay,
		padding:    [3]byte{raw.Pad0[0], raw.Pad0[1], raw.Pad1},
	}, nil
}

// Encode returns the binary form of the record.
func (r Record) Encode() []byte {
	raw := rawRecord{
		ID:         r.ID,
		Pad0:       [2]byte{r.padding[0], r.padding[1]},
		DisplayReq: r.DisplayReq,
		UnlockReq:  r.UnlockReq,
		Targets:    r.Targets,
		Flags:      r.Flags,
		Delay:      r.Delay,
		Pad1:       r.padding[2],
	}

	buf := bytes.NewBuffer(make([]byte, 0, RecordSize))
	// writing a fixed size struct into a buffer can not fail
	_ = binary.Write(buf, binary.LittleEndian, raw)
	return buf.Bytes()
}

// WithID returns a copy of the record with a different level ID.
func (r Record) WithID(id int16) Record {
	r.ID = id
	return r
}
