package table

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/retroenv/levelshuffle/internal/gba"
	"github.com/retroenv/retrogolib/assert"
)

func testRecords() []Record {
	return []Record{
		{
			ID:         0,
			DisplayReq: gba.Pointer{0x10, 0x20, 0x3D, 0x08},
			UnlockReq:  gba.Pointer{0x40, 0x20, 0x3D, 0x08},
			Targets:    gba.Pointer{0x00, 0x30, 0x3D, 0x08},
			Flags:      0x05,
			Delay:      30,
		},
		{ID: -1},
		{
			ID:    43,
			Flags: 0x7F,
			Delay: -2,
		},
		{
			ID:      40,
			Targets: gba.Pointer{0xFF, 0xFF, 0xFF, 0xFF},
			Flags:   0x80,
			Delay:   0x7FFF,
		},
	}
}

func TestRecordLayout(t *testing.T) {
	record := Record{
		ID:         0x0102,
		DisplayReq: gba.Pointer{0x11, 0x12, 0x13, 0x08},
		UnlockReq:  gba.Pointer{0x21, 0x22, 0x23, 0x08},
		Targets:    gba.Pointer{0x31, 0x32, 0x33, 0x08},
		Flags:      0x41,
		Delay:      -1,
	}

	expected := []byte{
		0x02, 0x01, // id
		0x00, 0x00, // padding
		0x11, 0x12, 0x13, 0x08, // display requirement
		0x21, 0x22, 0x23, 0x08, // unlock requirement
		0x31, 0x32, 0x33, 0x08, // targets
		0x41,       // flags
		0xFF, 0xFF, // delay
		0x00, // padding
	}

	data := record.Encode()
	assert.Equal(t, RecordSize, len(data))
	assert.True(t, bytes.Equal(expected, data))

	decoded, err := DecodeRecord(expected)
	assert.NoError(t, err)
	assert.Equal(t, record, decoded)
}

func TestRecordPaddingIsKept(t *testing.T) {
	data := make([]byte, RecordSize)
	data[2], data[3], data[19] = 0xAA, 0xBB, 0xCC

	record, err := DecodeRecord(data)
	assert.NoError(t, err)
	assert.True(t, bytes.Equal(data, record.Encode()))
}

func TestDecodeRecordInvalidSize(t *testing.T) {
	_, err := DecodeRecord(make([]byte, RecordSize-1))
	assert.Error(t, err)
}

func TestRecordWithID(t *testing.T) {
	record := testRecords()[0]
	changed := record.WithID(12)

	assert.Equal(t, int16(12), changed.ID)
	assert.Equal(t, int16(0), record.ID)
	assert.Equal(t, record, changed.WithID(record.ID))
}

func TestRoundTrip(t *testing.T) {
	records := testRecords()

	data := Encode(records)
	assert.Equal(t, len(records)*RecordSize, len(data))

	decoded, err := Decode(bytes.NewReader(data), len(records))
	assert.NoError(t, err)
	assert.Equal(t, records, decoded)
}

func TestDecodeStopsAtCount(t *testing.T) {
	records := testRecords()
	data := append(Encode(records), 0x01, 0x02, 0x03)
	reader := bytes.NewReader(data)

	decoded, err := Decode(reader, 2)
	assert.NoError(t, err)
	assert.Equal(t, records[:2], decoded)
	assert.Equal(t, len(data)-2*RecordSize, reader.Len())
}

func TestDecodeShortRead(t *testing.T) {
	data := Encode(testRecords())

	_, err := Decode(bytes.NewReader(data[:len(data)-1]), len(testRecords()))
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
}

func TestLayout(t *testing.T) {
	layout := DefaultLayout()
	assert.Equal(t, 180, layout.Count())
	assert.Equal(t, 180*RecordSize, layout.Size())
	assert.Equal(t, DefaultOffset+180*RecordSize, layout.End())

	tests := []struct {
		name      string
		layout    Layout
		imageSize int
		wantErr   bool
		bounds    bool
	}{
		{
			name:      "fits exactly",
			layout:    Layout{Offset: 0x10, Rows: 1, Columns: 2},
			imageSize: 0x10 + 2*RecordSize,
		},
		{
			name:      "image too small",
			layout:    Layout{Offset: 0x10, Rows: 1, Columns: 2},
			imageSize: 0x10 + 2*RecordSize - 1,
			wantErr:   true,
			bounds:    true,
		},
		{
			name:      "negative offset",
			layout:    Layout{Offset: -1, Rows: 1, Columns: 1},
			imageSize: 0x100,
			wantErr:   true,
		},
		{
			name:      "offset beyond image",
			layout:    Layout{Offset: 0x200, Rows: 1, Columns: 1},
			imageSize: 0x100,
			wantErr:   true,
			bounds:    true,
		},
		{
			name:      "overflowing dimensions",
			layout:    Layout{Offset: 0x10, Rows: 1 << 62, Columns: 1},
			imageSize: 0x100,
			wantErr:   true,
			bounds:    true,
		},
		{
			name:      "overflowing product",
			layout:    Layout{Offset: 0x10, Rows: 1 << 32, Columns: 1 << 32},
			imageSize: 0x100,
			wantErr:   true,
			bounds:    true,
		},
		{
			name:      "empty table",
			layout:    Layout{Offset: 0, Rows: 0, Columns: 12},
			imageSize: 0x100,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.layout.Validate(tt.imageSize)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Equal(t, tt.bounds, errors.Is(err, ErrTableBounds))
		})
	}
}
