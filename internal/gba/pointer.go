// Package gba handles Game Boy Advance specific pointer encodings.
package gba

import (
	"encoding/binary"
	"fmt"
)

// PointerSize is the size in bytes of a stored pointer field.
const PointerSize = 4

// Pointer is a raw 4 byte pointer field as stored in the ROM.
// The low 3 bytes are a little endian offset, the high byte is the
// memory region tag, for example 0x08 for the cartridge ROM.
type Pointer [PointerSize]byte

// ResolvePointer returns the offset of a pointer inside the ROM image.
// The region tag byte is dropped and replaced by zero.
// An all zero pointer resolves to 0, callers have to check IsNullPointer first.
func ResolvePointer(p [PointerSize]byte) uint32 {
	raw := [PointerSize]byte{p[0], p[1], p[2], 0}
	return binary.LittleEndian.Uint32(raw[:])
}

// IsNullPointer returns whether the pointer field marks a missing reference.
func IsNullPointer(p [PointerSize]byte) bool {
	return p == [PointerSize]byte{}
}

// Address returns the resolved ROM offset of the pointer.
func (p Pointer) Address() uint32 {
	return ResolvePointer(p)
}

// Region returns the memory region tag of the pointer.
func (p Pointer) Region() uint8 {
	return p[3]
}

// IsNull returns whether the pointer is not set.
func (p Pointer) IsNull() bool {
	return IsNullPointer(p)
}

func (p Pointer) String() string {
	if p.IsNull() {
		return "NULL"
	}
	return fmt.Sprintf("$%02X:%06X", p.Region(), p.Address())
}
