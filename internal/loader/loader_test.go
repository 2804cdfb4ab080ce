package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/levelshuffle/internal/table"
	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	t.Run("load file", func(t *testing.T) {
		tmpFile := createTempFile(t, []byte{0x01, 0x02, 0x03, 0x04})

		image, err := New().Load(tmpFile)
		assert.NoError(t, err)
		assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, image)
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		_, err := New().Load("/nonexistent/file.gba")
		assert.Error(t, err)
	})
}

func TestExtractTable(t *testing.T) {
	records := []table.Record{
		{ID: 5, Flags: 1, Delay: 3},
		{ID: -1},
		{ID: 44, Delay: 8},
		{ID: 0, Targets: [4]byte{1, 2, 3, 8}},
	}
	layout := table.Layout{Offset: 0x30, Rows: 2, Columns: 2}

	image := make([]byte, 0x30)
	for i := range image {
		image[i] = byte(i)
	}
	image = append(image, table.Encode(records)...)
	image = append(image, 0xEE, 0xEE)

	dir := t.TempDir()
	ldr := &Loader{tempDir: dir}

	t.Run("decode records", func(t *testing.T) {
		decoded, err := ldr.ExtractTable(image, layout)
		assert.NoError(t, err)
		assert.Equal(t, records, decoded)

		entries, err := os.ReadDir(dir)
		assert.NoError(t, err)
		assert.Len(t, entries, 0, "transient file should be removed")
	})

	t.Run("table outside of image", func(t *testing.T) {
		_, err := ldr.ExtractTable(image[:layout.End()-1], layout)
		assert.True(t, errors.Is(err, table.ErrTableBounds))

		entries, err := os.ReadDir(dir)
		assert.NoError(t, err)
		assert.Len(t, entries, 0)
	})
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()

	fileName := filepath.Join(t.TempDir(), "rom.gba")
	assert.NoError(t, os.WriteFile(fileName, data, 0o600))
	return fileName
}
