package register

// Chain applies a sequence of register operations, stopping at the first
// error. Operations before the failing one stay applied.
//
//	err := r.Edit().Set(Mode, 2).Fill(Enable).Clear(Speed).Err()
type Chain[T Unsigned, ID comparable] struct {
	reg *Register[T, ID]
	err error
}

// Edit starts a chain of operations on r.
func (r *Register[T, ID]) Edit() *Chain[T, ID] {
	return &Chain[T, ID]{reg: r}
}

func (c *Chain[T, ID]) apply(op func() error) *Chain[T, ID] {
	if c.err == nil {
		c.err = op()
	}
	return c
}

// Set ORs value into a field.
func (c *Chain[T, ID]) Set(id ID, value T) *Chain[T, ID] {
	return c.apply(func() error { return c.reg.Set(id, value) })
}

// Fill sets every bit of a field.
func (c *Chain[T, ID]) Fill(id ID) *Chain[T, ID] {
	return c.apply(func() error { return c.reg.Fill(id) })
}

// Clear zeroes the given fields.
func (c *Chain[T, ID]) Clear(ids ...ID) *Chain[T, ID] {
	return c.apply(func() error { return c.reg.Clear(ids...) })
}

// ClearMask zeroes the masked bits of a field.
func (c *Chain[T, ID]) ClearMask(id ID, mask T) *Chain[T, ID] {
	return c.apply(func() error { return c.reg.ClearMask(id, mask) })
}

// SetFields ORs several field values at once.
func (c *Chain[T, ID]) SetFields(values ...FieldValue[ID, T]) *Chain[T, ID] {
	return c.apply(func() error { return c.reg.SetFields(values...) })
}

// ClearMasks zeroes masked bits of several fields at once.
func (c *Chain[T, ID]) ClearMasks(masks ...FieldValue[ID, T]) *Chain[T, ID] {
	return c.apply(func() error { return c.reg.ClearMasks(masks...) })
}

// Err returns the first error of the chain, if any.
func (c *Chain[T, ID]) Err() error {
	return c.err
}

// Value returns the raw value of the register.
func (c *Chain[T, ID]) Value() T {
	return c.reg.value
}

// Register returns the register being edited.
func (c *Chain[T, ID]) Register() *Register[T, ID] {
	return c.reg
}
