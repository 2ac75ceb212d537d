package register

import (
	"errors"

	"github.com/ezrec/smallreg/translate"
)

var f = translate.From

var (
	// Bitfield access errors
	ErrOverflow     = errors.New(f("value overflows bitfield"))
	ErrMask         = errors.New(f("mask exceeds bitfield"))
	ErrFieldUnknown = errors.New(f("bitfield id not found"))

	// Layout errors
	ErrFieldSize      = errors.New(f("bitfield size must be at least 1"))
	ErrFieldDuplicate = errors.New(f("bitfield ids must be unique"))
	ErrFieldIdType    = errors.New(f("bitfield id types shall be the same"))
	ErrLayoutWidth    = errors.New(f("whole register must be allocated"))

	// Map errors
	ErrAddressUnknown = errors.New(f("register address not found"))
	ErrRegisterType   = errors.New(f("register type mismatch"))
)

// ErrField reports an error attributed to a single bitfield.
type ErrField struct {
	Field string
	Err   error
}

func (err *ErrField) Error() string {
	return f("bitfield %v: %v", err.Field, err.Err)
}

func (err *ErrField) Unwrap() error {
	return err.Err
}

// ErrValue reports a value or mask that does not fit its bitfield.
type ErrValue struct {
	Field string
	Value uint64
	Max   uint64
	Err   error
}

func (err *ErrValue) Error() string {
	return f("bitfield %v: %#x > %#x: %v", err.Field, err.Value, err.Max, err.Err)
}

func (err *ErrValue) Unwrap() error {
	return err.Err
}

// ErrWidth reports a layout that does not cover its storage type exactly.
type ErrWidth struct {
	Width uint
	Total uint
}

func (err *ErrWidth) Error() string {
	return f("%v bits allocated in a %v bit register: %v", err.Total, err.Width, ErrLayoutWidth)
}

func (err *ErrWidth) Unwrap() error {
	return ErrLayoutWidth
}

// ErrAddress reports a map lookup failure.
type ErrAddress struct {
	Address any
	Err     error
}

func (err *ErrAddress) Error() string {
	return f("address %#v: %v", err.Address, err.Err)
}

func (err *ErrAddress) Unwrap() error {
	return err.Err
}
