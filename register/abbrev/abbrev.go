// Package abbrev provides short names for register declarations.
//
//	layout := register.MustLayout[uint8](abbrev.Bits(Mode, 2), abbrev.Bits(Speed, 6))
package abbrev

import (
	"github.com/ezrec/smallreg/register"
)

// B is a bitfield declaration.
type B[ID comparable] = register.Bitfield[ID]

// BF is a field value or mask.
type BF[ID comparable, T register.Unsigned] = register.FieldValue[ID, T]

// E is an address map entry.
type E[A comparable] = register.Entry[A]

// Bits declares a bitfield of size bits.
func Bits[ID comparable](id ID, size uint) B[ID] {
	return B[ID]{Id: id, Size: size}
}

// Val pairs a field with a value.
func Val[ID comparable, T register.Unsigned](id ID, value T) BF[ID, T] {
	return BF[ID, T]{Id: id, Value: value}
}
