// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package register

import (
	"fmt"
	"strings"
)

// Register is one raw register value interpreted through a Layout.
//
// Registers are created with Layout.New. Copying a Register copies its value;
// the layout is shared.
type Register[T Unsigned, ID comparable] struct {
	layout *Layout[T, ID]
	value  T
}

// Layout returns the layout of the register.
func (r *Register[T, ID]) Layout() *Layout[T, ID] {
	return r.layout
}

// Value returns the raw register value, exactly as stored.
func (r *Register[T, ID]) Value() T {
	return r.value
}

// Fill sets every bit of a field.
func (r *Register[T, ID]) Fill(id ID) (err error) {
	n, err := r.layout.index(id)
	if err != nil {
		return
	}

	r.value |= r.layout.masks[n] << r.layout.shifts[n]
	return
}

// Set ORs value into a field. Bits already set in the field stay set; use
// Clear first for an overwrite.
func (r *Register[T, ID]) Set(id ID, value T) (err error) {
	n, err := r.layout.index(id)
	if err != nil {
		return
	}

	err = r.layout.bound(n, value, ErrOverflow)
	if err != nil {
		return
	}

	r.value |= value << r.layout.shifts[n]
	return
}

// Get returns the current value of a field.
func (r *Register[T, ID]) Get(id ID) (value T, err error) {
	n, err := r.layout.index(id)
	if err != nil {
		return
	}

	value = (r.value >> r.layout.shifts[n]) & r.layout.masks[n]
	return
}

// Clear zeroes every bit of the given fields. Nothing is cleared if any id
// is unknown.
func (r *Register[T, ID]) Clear(ids ...ID) (err error) {
	var clear T
	for _, id := range ids {
		var n int
		n, err = r.layout.index(id)
		if err != nil {
			return
		}
		clear |= r.layout.masks[n] << r.layout.shifts[n]
	}

	r.value &^= clear
	return
}

// ClearMask zeroes the bits of a field selected by mask.
func (r *Register[T, ID]) ClearMask(id ID, mask T) (err error) {
	n, err := r.layout.index(id)
	if err != nil {
		return
	}

	err = r.layout.bound(n, mask, ErrMask)
	if err != nil {
		return
	}

	r.value &^= mask << r.layout.shifts[n]
	return
}

// SetFields ORs each value into its field. Every value is checked before the
// register is modified, so either all fields are set or none are.
func (r *Register[T, ID]) SetFields(values ...FieldValue[ID, T]) (err error) {
	set, err := r.fold(values, ErrOverflow)
	if err != nil {
		return
	}

	r.value |= set
	return
}

// ClearMasks zeroes the bits of each field selected by its mask. Every mask
// is checked before the register is modified.
func (r *Register[T, ID]) ClearMasks(masks ...FieldValue[ID, T]) (err error) {
	clear, err := r.fold(masks, ErrMask)
	if err != nil {
		return
	}

	r.value &^= clear
	return
}

// fold shifts each field value into position and ORs them together.
func (r *Register[T, ID]) fold(values []FieldValue[ID, T], sentinel error) (bits T, err error) {
	for _, fv := range values {
		var n int
		n, err = r.layout.index(fv.Id)
		if err != nil {
			return
		}
		err = r.layout.bound(n, fv.Value, sentinel)
		if err != nil {
			return
		}
		bits |= fv.Value << r.layout.shifts[n]
	}
	return
}

// String renders every field as name=value, most significant first.
func (r *Register[T, ID]) String() string {
	var sb strings.Builder
	for n, id := range r.layout.ids {
		if n > 0 {
			sb.WriteByte(' ')
		}
		value := (r.value >> r.layout.shifts[n]) & r.layout.masks[n]
		fmt.Fprintf(&sb, "%v=%#x", id, uint64(value))
	}
	return sb.String()
}
