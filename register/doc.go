// Package register packs named bitfields into a single fixed-width unsigned
// register value.
//
// A Layout is declared once per register from an ordered list of Bitfield
// descriptors. Fields are packed most-significant first: the first declared
// field occupies the top bits, and a field's shift is the sum of the sizes of
// every field declared after it. NewLayout rejects layouts whose sizes do not
// add up to the width of the storage type, whose ids repeat, or whose ids do
// not share one type.
//
// A Register holds one raw value for a Layout. Set and Fill OR bits into a
// field, Clear and ClearMask remove them, and Get extracts a field. Values
// and masks wider than a field are rejected with ErrOverflow and ErrMask.
//
// A Map associates bus addresses with layouts, for code that needs to know
// which register lives at a given address.
//
// Code produced by the smallreg generator wraps these layouts in named types
// with one method per field, so unknown fields and bad layouts become build
// errors instead of runtime ones.
package register
