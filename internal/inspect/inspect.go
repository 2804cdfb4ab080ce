// Package inspect prints the decoded content of the level select table.
package inspect

import (
	"errors"
	"fmt"

	"github.com/retroenv/levelshuffle/internal/gba"
	"github.com/retroenv/levelshuffle/internal/levels"
	"github.com/retroenv/levelshuffle/internal/table"
	"github.com/retroenv/retrogolib/log"
)

// Inspector logs decoded table records. Requirement chains are resolved
// inside the image the records were read from.
type Inspector struct {
	logger *log.Logger
	image  []byte
}

// Entry is the decoded view of a single record.
type Entry struct {
	Index      int
	Level      string
	DisplayReq levels.RequirementChain
	UnlockReq  levels.RequirementChain
	Targets    gba.Pointer
	Flags      levels.Flags
	Delay      int16
}

// New returns a new inspector for records of the given image.
func New(logger *log.Logger, image []byte) *Inspector {
	return &Inspector{
		logger: logger,
		image:  image,
	}
}

// Decode returns the decoded view of a record. Requirement chains that can
// not be decoded are returned as error, the remaining fields are still set.
func (in *Inspector) Decode(index int, record table.Record) (Entry, error) {
	entry := Entry{
		Index:   index,
		Level:   levels.LevelName(record.ID),
		Targets: record.Targets,
		Flags:   levels.DecodeFlags(record.Flags),
		Delay:   record.Delay,
	}

	var displayErr, unlockErr error
	entry.DisplayReq, displayErr = levels.DecodeRequirements(in.image, record.DisplayReq)
	if displayErr != nil {
		displayErr = fmt.Errorf("display requirements: %w", displayErr)
	}
	entry.UnlockReq, unlockErr = levels.DecodeRequirements(in.image, record.UnlockReq)
	if unlockErr != nil {
		unlockErr = fmt.Errorf("unlock requirements: %w", unlockErr)
	}
	return entry, errors.Join(displayErr, unlockErr)
}

// Dump logs all records.
func (in *Inspector) Dump(records []table.Record) {
	for i, record := range records {
		entry, err := in.Decode(i, record)
		if err != nil {
			in.logger.Warn("Decoding requirements failed",
				log.Int("index", i),
				log.String("level", entry.Level),
				log.Err(err))
		}

		in.logger.Info("Level entry",
			log.Int("index", entry.Index),
			log.Int("id", int(record.ID)),
			log.String("level", entry.Level),
			log.String("display_req", entry.DisplayReq.String()),
			log.String("unlock_req", entry.UnlockReq.String()),
			log.Stringer("targets", entry.Targets),
			log.String("flags", entry.Flags.String()),
			log.Int("delay", int(entry.Delay)),
		)
	}
}
