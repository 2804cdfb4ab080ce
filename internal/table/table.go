package table

import (
	"errors"
	"fmt"
	"io"
)

// Default location of the level select table in Rhythm Tengoku (J).
const (
	DefaultOffset  = 0x9CEAFC
	DefaultRows    = 15
	DefaultColumns = 12
)

// ErrTableBounds is returned when the table does not fit into the image.
var ErrTableBounds = errors.New("table exceeds image bounds")

// Layout describes the location of the table inside the ROM image.
type Layout struct {
	Offset  int
	Rows    int
	Columns int
}

// DefaultLayout returns the layout of the level select table.
func DefaultLayout() Layout {
	return Layout{
		Offset:  DefaultOffset,
		Rows:    DefaultRows,
		Columns: DefaultColumns,
	}
}

// Count returns the number of records of the table.
func (l Layout) Count() int {
	return l.Rows * l.Columns
}

// Size returns the size in bytes of the encoded table.
func (l Layout) Size() int {
	return l.Count() * RecordSize
}

// End returns the offset of the first byte following the table.
func (l Layout) End() int {
	return l.Offset + l.Size()
}

// Validate checks that the layout is usable for an image of the given size.
func (l Layout) Validate(imageSize int) error {
	if l.Offset < 0 || l.Rows <= 0 || l.Columns <= 0 {
		return fmt.Errorf("invalid table layout: offset %d, %dx%d records", l.Offset, l.Rows, l.Columns)
	}
	if l.Offset > imageSize {
		return fmt.Errorf("%w: table offset 0x%X, image size 0x%X", ErrTableBounds, l.Offset, imageSize)
	}
	// bound the record count before multiplying so that huge dimensions can not overflow
	maxRecords := (imageSize - l.Offset) / RecordSize
	if l.Rows > maxRecords/l.Columns {
		return fmt.Errorf("%w: %dx%d records at offset 0x%X, image size 0x%X",
			ErrTableBounds, l.Rows, l.Columns, l.Offset, imageSize)
	}
	return nil
}

// Decode reads count records from the reader.
func Decode(reader io.Reader, count int) ([]Record, error) {
	records := make([]Record, 0, count)
	chunk := make([]byte, RecordSize)

	for i := range count {
		if _, err := io.ReadFull(reader, chunk); err != nil {
			return nil, fmt.Errorf("reading record %d: %w", i, err)
		}
		record, err := DecodeRecord(chunk)
		if err != nil {
			return nil, fmt.Errorf("decoding record %d: %w", i, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// Encode returns the binary form of all records in order.
func Encode(records []Record) []byte {
	data := make([]byte, 0, len(records)*RecordSize)
	for _, record := range records {
		data = append(data, record.Encode()...)
	}

	if len(data) != len(records)*RecordSize {
		panic(fmt.Sprintf("encoded table size %d does not match %d records", len(data), len(records)))
	}
	return data
}
