// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package register

import (
	"iter"

	"github.com/ezrec/smallreg/internal"
)

// Entry associates a bus address with a register layout.
type Entry[A comparable] struct {
	Address A
	Name    string
	Layout  Descriptor
}

// Map resolves bus addresses to register layouts. Addresses are not required
// to be unique; a lookup resolves to the first entry declared with the
// address.
type Map[A comparable] struct {
	addresses []A
	entries   []Entry[A]
}

// NewMap creates a map from entries, in declaration order.
func NewMap[A comparable](entries ...Entry[A]) (m *Map[A]) {
	m = &Map[A]{
		addresses: make([]A, len(entries)),
		entries:   make([]Entry[A], len(entries)),
	}

	for n, entry := range entries {
		m.addresses[n] = entry.Address
		m.entries[n] = entry
	}

	return
}

// Len returns the number of entries.
func (m *Map[A]) Len() int {
	return len(m.entries)
}

// Lookup returns the first entry declared for address.
func (m *Map[A]) Lookup(address A) (entry Entry[A], err error) {
	n := internal.Find(m.addresses, address)
	if n == len(m.addresses) {
		err = &ErrAddress{Address: address, Err: ErrAddressUnknown}
		return
	}

	entry = m.entries[n]
	return
}

// All iterates over the entries in declaration order.
func (m *Map[A]) All() iter.Seq2[A, Entry[A]] {
	return func(yield func(A, Entry[A]) bool) {
		for _, entry := range m.entries {
			if !yield(entry.Address, entry) {
				return
			}
		}
	}
}

// Duplicates returns every address declared more than once, in the order
// they are first seen.
func (m *Map[A]) Duplicates() (dups []A) {
	if internal.HasUnique(m.addresses) {
		return
	}

	for n, address := range m.addresses {
		first := internal.Find(m.addresses, address) == n
		later := internal.Find(m.addresses[n+1:], address) < len(m.addresses[n+1:])
		if first && later {
			dups = append(dups, address)
		}
	}

	return
}

// Resolve returns the layout at address, as its concrete type.
func Resolve[T Unsigned, ID comparable, A comparable](m *Map[A], address A) (layout *Layout[T, ID], err error) {
	entry, err := m.Lookup(address)
	if err != nil {
		return
	}

	layout, ok := entry.Layout.(*Layout[T, ID])
	if !ok {
		err = &ErrAddress{Address: address, Err: ErrRegisterType}
	}

	return
}

// NewAt creates a zeroed register for the layout at address.
func NewAt[T Unsigned, ID comparable, A comparable](m *Map[A], address A) (reg *Register[T, ID], err error) {
	layout, err := Resolve[T, ID](m, address)
	if err != nil {
		return
	}

	reg = layout.New(0)
	return
}
