package cpu

import (
	"testing"

	"github.com/mattock/dmgcore/memory"
	"github.com/stretchr/testify/assert"
)

func TestCPU_registerPairs(t *testing.T) {
	cpu := New(memory.New())

	cpu.setBC(0x1234)
	assert.Equal(t, uint8(0x12), cpu.b)
	assert.Equal(t, uint8(0x34), cpu.c)
	assert.Equal(t, uint16(0x1234), cpu.getBC())

	cpu.setHL(0xABCD)
	assert.Equal(t, uint16(0xABCD), cpu.getHL())
}

func TestCPU_afDiscardsLowNibble(t *testing.T) {
	cpu := New(memory.New())

	cpu.setAF(0x12FF)

	assert.Equal(t, uint8(0x12), cpu.a)
	assert.Equal(t, uint8(0xF0), cpu.f)
	assert.Equal(t, uint16(0x12F0), cpu.getAF())
}

func TestCPU_flagBottomNibbleAlwaysZero(t *testing.T) {
	cpu := New(memory.New())

	cpu.setFlag(flagZ, true)
	cpu.setFlag(flagN, true)
	cpu.setFlag(flagH, true)
	cpu.setFlag(flagC, true)

	assert.Equal(t, uint8(0), cpu.f&0x0F)
	assert.Equal(t, uint8(0xF0), cpu.f)
}
