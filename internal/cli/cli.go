// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/retroenv/levelshuffle/internal/options"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flags.Usage = func() {} // usage is printed by the caller
	var opts options.Program
	readOptionFlags(flags, &opts)

	if err := flags.Parse(os.Args[1:]); err != nil {
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}

	args := flags.Args()
	if err := validateArgs(args, opts); err != nil {
		err.flags = flags
		return opts, err
	}
	if len(args) == 1 {
		opts.Input = args[0]
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: levelshuffle [options] [ROM file]\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks that at most one input file is passed and that it is
// passed as last argument
func validateArgs(args []string, opts options.Program) *UsageError {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	if len(args) > 1 {
		return &UsageError{msg: fmt.Sprintf("only one ROM file can be processed, got %d", len(args))}
	}
	if len(args) == 1 && opts.Input != "" {
		return &UsageError{msg: "ROM file passed both by -i and as argument"}
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.Output, "o", "", "name of the output ROM file (default \""+options.DefaultOutput+"\")")
	flags.StringVar(&opts.Config, "c", "", "ini file describing the level table layout (offset, rows, columns)")
	flags.Func("seed", "random seed for a reproducible shuffle", func(s string) error {
		seed, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return fmt.Errorf("invalid seed: %w", err)
		}
		opts.Seed = &seed
		return nil
	})
	flags.BoolVar(&opts.Dump, "dump", false, "print the decoded level table")
	flags.BoolVar(&opts.Verify, "verify", false, "verify that the written ROM only differs in the shuffled level IDs")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
