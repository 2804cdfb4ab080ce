package levels

import (
	"errors"
	"fmt"
	"strings"

	"github.com/retroenv/levelshuffle/internal/gba"
)

// RequirementSize is the size in bytes of a single requirement entry.
const RequirementSize = 3

const (
	requirementEnd = 0xFF // state byte value -1 terminating a chain
	endReqName     = "END_REQ"
)

// StateNames lists the level states, indexed by state value + 1.
var StateNames = [...]string{
	"NULL",
	"HIDDEN",
	"APPEARING",
	"CLOSED",
	"OPEN",
	"CLEARED",
	"HAS_MEDAL",
}

var (
	// ErrMissingSentinel is returned when a requirement chain is not terminated
	// before the end of the ROM image.
	ErrMissingSentinel = errors.New("requirement chain terminator not found")
	// ErrAddressOutOfRange is returned when a pointer references data outside of the ROM image.
	ErrAddressOutOfRange = errors.New("pointer address outside of image")
	// ErrUnknownState is returned for a state value without a known name.
	ErrUnknownState = errors.New("unknown level state")
)

// Requirement is a single entry of a requirement chain.
type Requirement struct {
	State int8 // -1 marks the end of the chain
	Arg1  uint8
	Arg2  uint8
}

// IsEnd returns whether the entry terminates the chain.
func (r Requirement) IsEnd() bool {
	return r.State == -1
}

// StateName returns the name of the required level state.
func (r Requirement) StateName() string {
	if r.IsEnd() {
		return endReqName
	}
	return StateNames[int(r.State)+1]
}

func (r Requirement) String() string {
	if r.IsEnd() {
		return "[" + endReqName + "]"
	}
	return fmt.Sprintf("[%s %d %d]", r.StateName(), r.Arg1, r.Arg2)
}

// RequirementChain is the list of requirements to show or unlock a level,
// including the terminating entry. A nil chain means that the level has no
// requirement.
type RequirementChain []Requirement

// IsNone returns whether the level has no requirement.
func (c RequirementChain) IsNone() bool {
	return c == nil
}

func (c RequirementChain) String() string {
	if c.IsNone() {
		return "0"
	}
	parts := make([]string, len(c))
	for i, req := range c {
		parts[i] = req.String()
	}
	return strings.Join(parts, " ")
}

// DecodeRequirements decodes the requirement chain that the given pointer
// field references inside the ROM image. A null pointer returns a nil chain
// without accessing the image.
//
// The chain is scanned in whole 3 byte entries and only the state byte of an
// entry is compared against the 0xFF terminator. An argument byte of 0xFF
// therefore does not end the chain, unlike a plain byte search for the first
// 0xFF that would cut the chain inside an entry.
func DecodeRequirements(image []byte, field [gba.PointerSize]byte) (RequirementChain, error) {
	if gba.IsNullPointer(field) {
		return nil, nil
	}

	address := gba.ResolvePointer(field)
	if uint64(address) >= uint64(len(image)) {
		return nil, fmt.Errorf("%w: address 0x%06X, image size 0x%X", ErrAddressOutOfRange, address, len(image))
	}

	data, err := scanChain(image[address:])
	if err != nil {
		return nil, fmt.Errorf("chain at 0x%06X: %w", address, err)
	}

	chain := make(RequirementChain, 0, len(data)/RequirementSize+1)
	for i := 0; i < len(data); i += RequirementSize {
		state := int8(data[i])
		if state == -1 {
			chain = append(chain, Requirement{State: -1})
			break
		}
		if int(state)+1 >= len(StateNames) || state < -1 {
			return nil, fmt.Errorf("%w: %d at 0x%06X", ErrUnknownState, state, int(address)+i)
		}
		chain = append(chain, Requirement{
			State: state,
			Arg1:  data[i+1],
			Arg2:  data[i+2],
		})
	}
	return chain, nil
}

// scanChain returns the bytes of a chain up to and including the state byte
// of the terminator entry. Only state bytes are checked for the terminator,
// the scan is limited to the remaining image data.
func scanChain(data []byte) ([]byte, error) {
	for i := 0; i < len(data); i += RequirementSize {
		if data[i] == requirementEnd {
			return data[:i+1], nil
		}
	}
	return nil, ErrMissingSentinel
}
