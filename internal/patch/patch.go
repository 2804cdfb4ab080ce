// Package patch writes modified table data back into a ROM image.
package patch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrRunLength is returned when the replacement data does not have the
// size of the region it replaces.
var ErrRunLength = errors.New("replacement size mismatch")

// Splice returns a copy of the image with the region starting at offset
// replaced by run. The input image is not modified.
func Splice(image []byte, offset int, run []byte, expectedLen int) ([]byte, error) {
	if len(run) != expectedLen {
		return nil, fmt.Errorf("%w: got %d bytes, expected %d", ErrRunLength, len(run), expectedLen)
	}
	if offset < 0 || offset+len(run) > len(image) {
		return nil, fmt.Errorf("region 0x%X-0x%X outside of image size 0x%X", offset, offset+len(run), len(image))
	}

	patched := make([]byte, len(image))
	copy(patched, image)
	copy(patched[offset:], run)
	return patched, nil
}

// WriteFile writes the data to a temporary file in the target directory and
// renames it to the target name once all data is written. On error no file
// is left at the target path.
func WriteFile(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	file, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempName := file.Name()
	defer func() {
		if err != nil {
			_ = file.Close()
			_ = os.Remove(tempName)
		}
	}()

	if _, err = file.Write(data); err != nil {
		return fmt.Errorf("writing file '%s': %w", tempName, err)
	}
	if err = file.Sync(); err != nil {
		return fmt.Errorf("syncing file '%s': %w", tempName, err)
	}
	if err = file.Close(); err != nil {
		return fmt.Errorf("closing file '%s': %w", tempName, err)
	}
	if err = os.Chmod(tempName, 0o644); err != nil {
		return fmt.Errorf("setting file mode: %w", err)
	}
	if err = os.Rename(tempName, path); err != nil {
		return fmt.Errorf("renaming '%s' to '%s': %w", tempName, path, err)
	}
	return nil
}
