// Package loader handles ROM file loading operations.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/levelshuffle/internal/table"
)

// Loader handles loading ROM files from disk.
type Loader struct {
	tempDir string
}

// New creates a new ROM loader. Transient files are created in the default
// temp directory.
func New() *Loader {
	return &Loader{}
}

// Load reads the complete ROM image.
func (l *Loader) Load(fileName string) ([]byte, error) {
	image, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", fileName, err)
	}
	return image, nil
}

// ExtractTable copies the table region of the image to a transient file and
// decodes the records from it. The transient file is removed on return.
func (l *Loader) ExtractTable(image []byte, layout table.Layout) ([]table.Record, error) {
	if err := layout.Validate(len(image)); err != nil {
		return nil, err
	}

	file, err := os.CreateTemp(l.tempDir, "table.*.bin")
	if err != nil {
		return nil, fmt.Errorf("creating temp file: %w", err)
	}
	defer func() {
		_ = file.Close()
		_ = os.Remove(file.Name())
	}()

	if _, err := file.Write(image[layout.Offset:layout.End()]); err != nil {
		return nil, fmt.Errorf("writing table to temp file: %w", err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking temp file: %w", err)
	}

	records, err := table.Decode(file, layout.Count())
	if err != nil {
		return nil, fmt.Errorf("decoding table: %w", err)
	}
	return records, nil
}
