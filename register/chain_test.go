package register

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/ezrec/smallreg/internal/testregs"
)

func TestChain_Simple(t *testing.T) {
	assert := assert.New(t)

	chained := threeFields.New(0)
	c := chained.Edit().Set(One, 0b10).Set(Three, 0b110).ClearMask(Three, 0b010)
	assert.NoError(c.Err())
	assert.Equal(uint8(0b10000100), c.Value())

	stepped := threeFields.New(0)
	assert.NoError(stepped.Set(One, 0b10))
	assert.NoError(stepped.Set(Three, 0b110))
	assert.NoError(stepped.ClearMask(Three, 0b010))
	assert.Equal(chained.Value(), stepped.Value())
}

func TestChain_Long(t *testing.T) {
	assert := assert.New(t)

	r := threeFields.New(0)
	err := r.Edit().
		Set(One, 0b11).
		Set(Two, 0b010).
		Set(Three, 0b101).
		ClearMask(One, 0b01).
		ClearMask(Three, 0b001).
		Set(Two, 0b001).
		Set(Three, 0b011).
		ClearMask(Two, 0b100).
		ClearMask(Three, 0b100).
		Err()

	assert.NoError(err)
	assert.Equal(uint8(0b10011011), r.Value())
}

func TestChain_Mixed(t *testing.T) {
	assert := assert.New(t)

	r := MustLayout[uint8](eightBits()...).New(0)
	c := r.Edit().
		SetFields(FieldValue[Reg, uint8]{One, 1}, FieldValue[Reg, uint8]{Two, 1}).
		Fill(Eight).
		Clear(Two).
		ClearMasks(FieldValue[Reg, uint8]{Eight, 1}).
		Fill(Four)

	assert.NoError(c.Err())
	assert.Equal(uint8(0b10010000), c.Value())
	assert.Same(r, c.Register())
}

func TestChain_StopsAtError(t *testing.T) {
	assert := assert.New(t)

	r := threeFields.New(0)
	c := r.Edit().Set(One, 0b01).Set(Two, 0b1000).Set(Three, 0b111)

	assert.ErrorIs(c.Err(), ErrOverflow)
	assert.Equal(uint8(0b01000000), r.Value())

	c.Fill(Two)
	assert.Equal(uint8(0b01000000), r.Value())
}
