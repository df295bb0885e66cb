// Package resource parses ADVENT.IDX into a lookup table and loads the
// resources it describes out of ADVENT.RES.
package resource

import "github.com/adventcore/advent/internal/byteio"

// Type is the resource-type namespace a ResourceId belongs to. The engine
// recognizes a closed set of types; anything else is stored but never
// decoded.
type Type uint32

const (
	TypePalette    Type = 0x03
	TypeScript     Type = 0x04
	TypeBackground Type = 0x06
	TypeAnimation  Type = 0x07 // also used for cursors
	TypeVideo      Type = 0x10
)

// Id identifies a resource by its (type, name) pair, mirroring the
// original engine's ResourceId: equality is component-wise and the hash
// XORs the type, shifted into the high bits, with the full 32-bit name hash.
type Id struct {
	Type Type
	Name string
}

// Hash reproduces (type << 16) ^ hash(name), the original engine's mixer,
// substituting an equivalent stable hash for the name component.
func (id Id) Hash() uint32 {
	return (uint32(id.Type) << 16) ^ byteio.HashName(id.Name)
}

// Entry is a region of ADVENT.RES: an absolute offset and exact length.
type Entry struct {
	Offset uint32
	Length uint32
}
