// Package detector reads the cartridge header of a GBA ROM image.
package detector

import (
	"bytes"

	"github.com/retroenv/retrogolib/log"
)

// Cartridge header fields.
const (
	titleOffset    = 0xA0
	titleSize      = 12
	gameCodeOffset = 0xAC
	gameCodeSize   = 4
	headerSize     = 0xC0
)

// Header contains the identification fields of a GBA cartridge header.
type Header struct {
	Title    string
	GameCode string
}

// Detector handles identification of the ROM image.
type Detector struct {
	logger *log.Logger
}

// New creates a new ROM detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect returns the header of the image. The header is informational only,
// images without a complete header return false.
func (d *Detector) Detect(image []byte) (Header, bool) {
	if len(image) < headerSize {
		d.logger.Debug("Image too small for a GBA header", log.Int("size", len(image)))
		return Header{}, false
	}

	header := Header{
		Title:    headerString(image[titleOffset : titleOffset+titleSize]),
		GameCode: headerString(image[gameCodeOffset : gameCodeOffset+gameCodeSize]),
	}
	d.logger.Debug("Detected cartridge header",
		log.String("title", header.Title),
		log.String("game_code", header.GameCode))
	return header, true
}

// headerString returns the printable part of a zero padded header field.
func headerString(data []byte) string {
	if idx := bytes.IndexByte(data, 0); idx >= 0 {
		data = data[:idx]
	}
	return string(bytes.TrimSpace(data))
}
