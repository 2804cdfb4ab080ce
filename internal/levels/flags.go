package levels

import "strings"

// FlagNames lists the names of the level entry flags in bit order.
var FlagNames = [...]string{
	"UNLOCK_ANIM",
	"CLEAR_ANIM",
	"MEDAL_ANIM",
	"SKIP_CAMPAIGN",
	"HIDE_TITLE",
	"REMIX",
	"FINAL_LEVEL",
}

// Flags is the list of flag names that are set in a flags byte.
// A nil value means that no known flag is set.
type Flags []string

// DecodeFlags returns the names of all known flags set in the bitmask.
// Bits above the known flags are ignored.
func DecodeFlags(value uint8) Flags {
	var flags Flags
	for i, name := range FlagNames {
		if (value>>i)&1 == 1 {
			flags = append(flags, name)
		}
	}
	return flags
}

// IsNone returns whether no known flag is set.
func (f Flags) IsNone() bool {
	return len(f) == 0
}

func (f Flags) String() string {
	if f.IsNone() {
		return "0"
	}
	return strings.Join(f, "|")
}
