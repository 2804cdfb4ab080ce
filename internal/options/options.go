// Package options contains the program options.
package options

// DefaultInput is the ROM file name used when no input is given.
const DefaultInput = "2462 - Rhythm Tengoku (J)(WRG).gba"

// DefaultOutput is the name of the patched ROM file.
const DefaultOutput = "new_rom.gba"

// Parameters contains file path options.
type Parameters struct {
	Input  string `flag:"i" usage:"input ROM file"`
	Output string `flag:"o" usage:"output ROM file"`
	Config string `flag:"c" usage:"ini file describing the table layout"`
}

// Flags contains behavior options.
type Flags struct {
	Seed   *int64 `flag:"seed" usage:"random seed for a reproducible shuffle"`
	Dump   bool   `flag:"dump" usage:"print the decoded level table"`
	Verify bool   `flag:"verify" usage:"verify the written ROM against the input"`
	Debug  bool   `flag:"debug" usage:"enable debug logging"`
	Quiet  bool   `flag:"q" usage:"quiet mode"`
}

// Program options of the shuffler.
type Program struct {
	Parameters
	Flags
}
