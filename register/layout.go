// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package register

import (
	"fmt"
	"math/bits"
	"slices"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/ezrec/smallreg/internal"
)

// Unsigned is the set of storage types a register can be built on.
type Unsigned = constraints.Unsigned

// Layout is the validated, immutable placement of bitfields in a register of
// storage type T. Layouts are safe to share between goroutines.
type Layout[T Unsigned, ID comparable] struct {
	width  uint
	fields []Bitfield[ID]
	ids    []ID
	sizes  []uint
	shifts []uint
	masks  []T
}

var _ Descriptor = (*Layout[uint8, int])(nil)

// WidthOf returns the width in bits of the storage type T.
func WidthOf[T Unsigned]() uint {
	return uint(bits.Len64(uint64(^T(0))))
}

// NewLayout computes the layout of fields in T. Fields are given from the most
// significant to the least significant.
func NewLayout[T Unsigned, ID comparable](fields ...Bitfield[ID]) (layout *Layout[T, ID], err error) {
	width := WidthOf[T]()

	ids := make([]ID, len(fields))
	sizes := make([]uint, len(fields))
	dynamic := make([]any, len(fields))
	for n, field := range fields {
		if field.Size == 0 {
			err = &ErrField{Field: fmt.Sprint(field.Id), Err: ErrFieldSize}
			return
		}
		// Bounds the sum below, which could otherwise wrap.
		if field.Size > width {
			err = &ErrWidth{Width: width, Total: field.Size}
			return
		}
		ids[n] = field.Id
		sizes[n] = field.Size
		dynamic[n] = field.Id
	}

	// Only interface typed ids can disagree here.
	if !internal.SameType(dynamic...) {
		err = ErrFieldIdType
		return
	}

	total := internal.Accumulate(sizes, 0)
	if total != width {
		err = &ErrWidth{Width: width, Total: total}
		return
	}

	if !internal.HasUnique(ids) {
		for n, id := range ids {
			if internal.Find(ids[n+1:], id) < len(ids[n+1:]) {
				err = &ErrField{Field: fmt.Sprint(id), Err: ErrFieldDuplicate}
				return
			}
		}
	}

	layout = &Layout[T, ID]{
		width:  width,
		fields: slices.Clone(fields),
		ids:    ids,
		sizes:  sizes,
		shifts: make([]uint, len(fields)),
		masks:  make([]T, len(fields)),
	}

	for n := range fields {
		layout.shifts[n] = internal.Accumulate(sizes[n+1:], 0)
		layout.masks[n] = ^T(0) >> (width - sizes[n])
	}

	return
}

// MustLayout is like NewLayout but panics if the layout is invalid. It is
// meant for package level layouts, so that a bad layout stops the program
// during initialization.
func MustLayout[T Unsigned, ID comparable](fields ...Bitfield[ID]) *Layout[T, ID] {
	layout, err := NewLayout[T](fields...)
	if err != nil {
		panic(err)
	}
	return layout
}

// New creates a register holding the raw initial value. The value is not
// checked against the layout.
func (l *Layout[T, ID]) New(initial T) *Register[T, ID] {
	return &Register[T, ID]{layout: l, value: initial}
}

// Width of the register in bits.
func (l *Layout[T, ID]) Width() uint {
	return l.width
}

// Bitfields returns a copy of the declared fields.
func (l *Layout[T, ID]) Bitfields() []Bitfield[ID] {
	return slices.Clone(l.fields)
}

// Shift returns the bit position of the least significant bit of a field.
func (l *Layout[T, ID]) Shift(id ID) (shift uint, err error) {
	n, err := l.index(id)
	if err != nil {
		return
	}
	shift = l.shifts[n]
	return
}

// Mask returns the largest value a field can hold.
func (l *Layout[T, ID]) Mask(id ID) (mask T, err error) {
	n, err := l.index(id)
	if err != nil {
		return
	}
	mask = l.masks[n]
	return
}

// Fields describes every field, in declaration order.
func (l *Layout[T, ID]) Fields() (infos []FieldInfo) {
	infos = make([]FieldInfo, len(l.fields))
	for n, field := range l.fields {
		infos[n] = FieldInfo{
			Name:  fmt.Sprint(field.Id),
			Size:  l.sizes[n],
			Shift: l.shifts[n],
			Mask:  uint64(l.masks[n]),
		}
	}
	return
}

// String lists the fields with their bit ranges, most significant first.
func (l *Layout[T, ID]) String() string {
	var sb strings.Builder
	for n, info := range l.Fields() {
		if n > 0 {
			sb.WriteByte(' ')
		}
		top := info.Shift + info.Size - 1
		if info.Size == 1 {
			fmt.Fprintf(&sb, "%v[%d]", info.Name, top)
		} else {
			fmt.Fprintf(&sb, "%v[%d:%d]", info.Name, top, info.Shift)
		}
	}
	return sb.String()
}

// index finds the position of a field.
func (l *Layout[T, ID]) index(id ID) (n int, err error) {
	n = internal.Find(l.ids, id)
	if n == len(l.ids) {
		err = &ErrField{Field: fmt.Sprint(id), Err: ErrFieldUnknown}
	}
	return
}

// bound checks that value fits the field at position n.
func (l *Layout[T, ID]) bound(n int, value T, sentinel error) error {
	if value > l.masks[n] {
		return &ErrValue{
			Field: fmt.Sprint(l.ids[n]),
			Value: uint64(value),
			Max:   uint64(l.masks[n]),
			Err:   sentinel,
		}
	}
	return nil
}
