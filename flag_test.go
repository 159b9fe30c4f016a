package bitflag

import (
	"testing"

	assertion "github.com/stretchr/testify/assert"
)

func TestBits(t *testing.T) {
	assert := assertion.New(t)
	assert.Equal(uint32(0x5), setBit(0x1, 2))
	assert.Equal(uint32(0x1), clearBit(0x5, 2))
	assert.Equal(uint32(0x1), clearBit(0x1, 2))
	assert.Equal(uint32(0x4), toggleBit(0x0, 2))
	assert.Equal(uint32(0x0), toggleBit(0x4, 2))
	assert.True(hasBit(0x80000000, 31))
	assert.False(hasBit(0x7FFFFFFF, 31))
	assert.Equal(uint32(0x3), assignBit(0x1, 1, true))
	assert.Equal(uint32(0x1), assignBit(0x3, 1, false))
}

func TestLowMask(t *testing.T) {
	assert := assertion.New(t)
	assert.Equal(uint32(0), lowMask(0))
	assert.Equal(uint32(0x3), lowMask(2))
	assert.Equal(uint32(0xFF), lowMask(8))
	assert.Equal(uint32(0xFFFFFFFF), lowMask(32))
}
