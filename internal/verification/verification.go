// Package verification verifies that a patched ROM only differs from the
// input in the shuffled level IDs.
package verification

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/retroenv/levelshuffle/internal/levels"
	"github.com/retroenv/levelshuffle/internal/table"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

const maxReportedDiffs = 10

// idSize is the size of the level ID field at the start of a record.
const idSize = 2

// VerifyOutput verifies the patched image against the original image.
func VerifyOutput(logger *log.Logger, original, patched []byte, layout table.Layout) error {
	if len(original) != len(patched) {
		return fmt.Errorf("mismatched lengths, %d != %d", len(original), len(patched))
	}
	if err := layout.Validate(len(original)); err != nil {
		return err
	}

	if err := checkBufferEqual(logger, original[:layout.Offset], patched[:layout.Offset], 0); err != nil {
		return fmt.Errorf("data before table mismatch: %w", err)
	}
	if err := checkBufferEqual(logger, original[layout.End():], patched[layout.End():], layout.End()); err != nil {
		return fmt.Errorf("data after table mismatch: %w", err)
	}

	if err := checkRecords(logger, original[layout.Offset:layout.End()], patched[layout.Offset:layout.End()], layout); err != nil {
		return fmt.Errorf("table mismatch: %w", err)
	}
	return nil
}

// checkRecords verifies that only the IDs of game records changed and that
// the new IDs are unique game IDs.
func checkRecords(logger *log.Logger, original, patched []byte, layout table.Layout) error {
	before, err := table.Decode(bytes.NewReader(original), layout.Count())
	if err != nil {
		return fmt.Errorf("decoding original table: %w", err)
	}
	after, err := table.Decode(bytes.NewReader(patched), layout.Count())
	if err != nil {
		return fmt.Errorf("decoding patched table: %w", err)
	}

	seen := set.New[int16]()
	var errs []error
	for i := range before {
		start := i * table.RecordSize
		end := start + table.RecordSize
		recordOffset := layout.Offset + start

		if !levels.IsGame(before[i].ID) {
			if err := checkBufferEqual(logger, original[start:end], patched[start:end], recordOffset); err != nil {
				errs = append(errs, fmt.Errorf("record %d: %w", i, err))
			}
			continue
		}

		if err := checkBufferEqual(logger, original[start+idSize:end], patched[start+idSize:end], recordOffset+idSize); err != nil {
			errs = append(errs, fmt.Errorf("record %d: %w", i, err))
		}

		id := after[i].ID
		if !levels.IsGame(id) {
			errs = append(errs, fmt.Errorf("record %d: level ID %d is not a game", i, id))
			continue
		}
		if seen.Contains(id) {
			errs = append(errs, fmt.Errorf("record %d: level ID %d already used", i, id))
			continue
		}
		seen.Add(id)
	}

	return errors.Join(errs...)
}

func checkBufferEqual(logger *log.Logger, input, output []byte, baseOffset int) error {
	if len(input) != len(output) {
		return fmt.Errorf("mismatched lengths, %d != %d", len(input), len(output))
	}

	var diffs uint64
	for i := range input {
		if input[i] == output[i] {
			continue
		}

		diffs++
		if diffs <= maxReportedDiffs {
			logger.Error("Offset mismatch",
				log.Hex("offset", baseOffset+i),
				log.Hex("expected", input[i]),
				log.Hex("got", output[i]))
		}
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%d offset mismatches", diffs)
}
