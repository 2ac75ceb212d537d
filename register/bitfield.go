package register

// Bitfield declares one named, sized field of a register layout.
type Bitfield[ID comparable] struct {
	Id   ID   // Field identity, unique within a layout.
	Size uint // Width in bits, at least 1.
}

// FieldValue pairs a field with a value or mask, for the multi-field calls.
type FieldValue[ID comparable, T Unsigned] struct {
	Id    ID
	Value T
}

// FieldInfo is the untyped description of one field of a layout.
type FieldInfo struct {
	Name  string // fmt.Sprint of the field id
	Size  uint   // Width in bits.
	Shift uint   // Position of the least significant bit.
	Mask  uint64 // (1 << Size) - 1
}

// Descriptor is implemented by every Layout, whatever its storage and id types.
type Descriptor interface {
	Width() uint
	Fields() []FieldInfo
}
