package register

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/ezrec/smallreg/internal/testregs"
)

func FuzzRegister(f *testing.F) {
	f.Add(uint32(0), uint8(1), uint8(3), uint32(0), uint32(0))
	f.Add(uint32(0xffffffff), uint8(31), uint8(0), uint32(0x7fffffff), uint32(1))
	f.Add(uint32(0xdeadbeef), uint8(8), uint8(8), uint32(0xff), uint32(0xffff))

	f.Fuzz(func(t *testing.T, raw uint32, sizeA uint8, sizeB uint8, a uint32, b uint32) {
		assert := assert.New(t)

		// Three fields: A, B and whatever is left in C.
		sa := uint(sizeA%30) + 1
		sb := uint(sizeB)%(31-sa) + 1
		sc := 32 - sa - sb

		layout := MustLayout[uint32](Bitfield[Reg]{One, sa}, Bitfield[Reg]{Two, sb}, Bitfield[Reg]{Three, sc})
		maxA, _ := layout.Mask(One)
		maxB, _ := layout.Mask(Two)

		// Out of range values must be rejected without side effects.
		r := layout.New(raw)
		if a > maxA {
			assert.ErrorIs(r.Set(One, a), ErrOverflow)
			assert.Equal(raw, r.Value())
			a &= maxA
		}
		if b > maxB {
			assert.ErrorIs(r.ClearMask(Two, b), ErrMask)
			assert.Equal(raw, r.Value())
			b &= maxB
		}

		// Round trip on a cleared field.
		assert.NoError(r.Clear(One))
		assert.NoError(r.Set(One, a))
		got, err := r.Get(One)
		assert.NoError(err)
		assert.Equal(a, got)

		// Field independence.
		ab := layout.New(raw)
		assert.NoError(ab.Edit().Set(One, a).Set(Two, b).Err())
		ba := layout.New(raw)
		assert.NoError(ba.Edit().Set(Two, b).Set(One, a).Err())
		assert.Equal(ab.Value(), ba.Value())

		// Clearing is idempotent and leaves other fields alone.
		c := layout.New(raw)
		assert.NoError(c.Clear(Two))
		once := c.Value()
		assert.NoError(c.Clear(Two))
		assert.Equal(once, c.Value())
		shift, _ := layout.Shift(Two)
		assert.Equal(raw&^(maxB<<shift), once)
	})
}
