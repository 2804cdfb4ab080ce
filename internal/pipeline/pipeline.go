// Package pipeline orchestrates the level shuffle workflow stages.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/retroenv/levelshuffle/internal/config"
	"github.com/retroenv/levelshuffle/internal/detector"
	"github.com/retroenv/levelshuffle/internal/inspect"
	"github.com/retroenv/levelshuffle/internal/levels"
	"github.com/retroenv/levelshuffle/internal/loader"
	"github.com/retroenv/levelshuffle/internal/options"
	"github.com/retroenv/levelshuffle/internal/patch"
	"github.com/retroenv/levelshuffle/internal/shuffle"
	"github.com/retroenv/levelshuffle/internal/table"
	"github.com/retroenv/levelshuffle/internal/verification"
	"github.com/retroenv/retrogolib/log"
)

// ErrOutputIsInput is returned when the output file would overwrite the input ROM.
var ErrOutputIsInput = errors.New("output file is the input file")

// Pipeline orchestrates the complete shuffle workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// New creates a new shuffle pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
	}
}

// Execute runs the complete pipeline: the input ROM is loaded, shuffled and
// written to the output file.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program) error {
	same, err := sameFile(opts.Input, opts.Output)
	if err != nil {
		return fmt.Errorf("checking output file: %w", err)
	}
	if same {
		return fmt.Errorf("%w: %s", ErrOutputIsInput, opts.Output)
	}

	layout, err := config.LoadLayout(opts.Config)
	if err != nil {
		return fmt.Errorf("loading table layout: %w", err)
	}

	image, err := p.loader.Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}
	p.printInfo(opts, image, layout)

	patched, err := p.ExecuteWithImage(ctx, image, layout, opts)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := patch.WriteFile(opts.Output, patched); err != nil {
		return fmt.Errorf("writing ROM: %w", err)
	}
	p.logger.Info("Patched ROM written", log.String("file", opts.Output))

	if opts.Verify {
		written, err := p.loader.Load(opts.Output)
		if err != nil {
			return fmt.Errorf("loading written ROM: %w", err)
		}
		if err := verification.VerifyOutput(p.logger, image, written, layout); err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
		p.logger.Info("Verification successful")
	}

	return nil
}

// ExecuteWithImage runs the shuffle on an image that is already in memory
// and returns the patched image. The input image is not modified.
func (p *Pipeline) ExecuteWithImage(ctx context.Context, image []byte, layout table.Layout,
	opts options.Program) ([]byte, error) {

	records, err := p.loader.ExtractTable(image, layout)
	if err != nil {
		return nil, fmt.Errorf("extracting table: %w", err)
	}

	if opts.Dump {
		inspect.New(p.logger, image).Dump(records)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	shuffled, err := p.shuffle(records, opts)
	if err != nil {
		return nil, err
	}

	patched, err := patch.Splice(image, layout.Offset, table.Encode(shuffled), layout.Size())
	if err != nil {
		return nil, fmt.Errorf("patching table: %w", err)
	}
	return patched, nil
}

// shuffle reassigns the level IDs of all game records.
func (p *Pipeline) shuffle(records []table.Record, opts options.Program) ([]table.Record, error) {
	if opts.Seed != nil {
		p.logger.Debug("Using random seed", log.String("seed", fmt.Sprint(*opts.Seed)))
	}

	engine := shuffle.New(shuffle.NewRand(opts.Seed))
	shuffled, stats, err := engine.Shuffle(records)
	if err != nil {
		return nil, fmt.Errorf("shuffling levels: %w", err)
	}

	p.logger.Debug("Shuffled levels", log.Int("levels", stats.Shuffled))
	if len(stats.Unused) > 0 {
		p.logger.Warn("Not all level IDs were assigned, the table contains fewer game slots than levels",
			log.Int("game_slots", stats.Shuffled),
			log.Int("unused", len(stats.Unused)))
	}
	return shuffled, nil
}

// printInfo prints information about the ROM being processed.
func (p *Pipeline) printInfo(opts options.Program, image []byte, layout table.Layout) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Processing GBA ROM",
		log.String("file", opts.Input),
		log.Hex("table_offset", layout.Offset),
		log.Int("records", layout.Count()),
	)
	if header, ok := p.detector.Detect(image); ok {
		p.logger.Info("Cartridge",
			log.String("title", header.Title),
			log.String("game_code", header.GameCode))
	}
	p.logger.Debug("Level table",
		log.Int("games", levels.GameCount),
		log.Int("size", layout.Size()))
}

// sameFile returns whether both paths refer to the same file, either by their
// cleaned absolute path or, when both exist, by the file system identity.
func sameFile(input, output string) (bool, error) {
	inputPath, err := filepath.Abs(input)
	if err != nil {
		return false, fmt.Errorf("resolving input path: %w", err)
	}
	outputPath, err := filepath.Abs(output)
	if err != nil {
		return false, fmt.Errorf("resolving output path: %w", err)
	}
	if inputPath == outputPath {
		return true, nil
	}

	inputInfo, err := os.Stat(inputPath)
	if err != nil {
		return false, nil //nolint:nilerr // a missing input is reported when loading it
	}
	outputInfo, err := os.Stat(outputPath)
	if err != nil {
		return false, nil //nolint:nilerr // the output does not exist yet
	}
	return os.SameFile(inputInfo, outputInfo), nil
}
