// Package internal holds the sequence helpers shared by the layout and map
// lookups.
package internal

import (
	"reflect"

	"golang.org/x/exp/constraints"
)

// Find returns the index of the first element of seq equal to value, or
// len(seq) if there is none.
func Find[T comparable](seq []T, value T) int {
	for n, elem := range seq {
		if elem == value {
			return n
		}
	}
	return len(seq)
}

// Accumulate sums seq onto init, left to right.
func Accumulate[T constraints.Integer](seq []T, init T) T {
	for _, elem := range seq {
		init += elem
	}
	return init
}

// HasUnique reports whether no two elements of seq are equal.
func HasUnique[T comparable](seq []T) bool {
	for n := range seq {
		for _, other := range seq[n+1:] {
			if other == seq[n] {
				return false
			}
		}
	}
	return true
}

// SameType reports whether all values share one dynamic type.
func SameType(values ...any) bool {
	if len(values) == 0 {
		return true
	}

	first := reflect.TypeOf(values[0])
	for _, value := range values[1:] {
		if reflect.TypeOf(value) != first {
			return false
		}
	}
	return true
}
