// Package testregs declares bitfield ids used by the register tests.
package testregs

// Reg names up to eight bitfields of a test register.
type Reg int

//go:generate go tool stringer -linecomment -type=Reg
const (
	One   = Reg(0) // one
	Two   = Reg(1) // two
	Three = Reg(2) // three
	Four  = Reg(3) // four
	Five  = Reg(4) // five
	Six   = Reg(5) // six
	Seven = Reg(6) // seven
	Eight = Reg(7) // eight
)

// Alt is a second id type, distinct from Reg.
type Alt int

//go:generate go tool stringer -linecomment -type=Alt
const (
	AltOne = Alt(0) // one
	AltTwo = Alt(1) // two
)
