package cpu

import (
	"testing"

	"github.com/mattock/dmgcore/memory"
	"github.com/stretchr/testify/assert"
)

func TestCPU_applyALU_add(t *testing.T) {
	cpu := New(memory.New())

	testCases := []struct {
		desc  string
		a, n  uint8
		want  uint8
		flags uint8
	}{
		{desc: "half carry", a: 0x0F, n: 0x01, want: 0x10, flags: flagH},
		{desc: "full carry and zero", a: 0xFF, n: 0x01, want: 0x00, flags: flagZ | flagH | flagC},
		{desc: "no flags", a: 0x01, n: 0x01, want: 0x02},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			cpu.f = 0
			cpu.a = tC.a
			cpu.applyALU(aluADD, tC.n)
			assert.Equal(t, tC.want, cpu.a)
			assert.Equal(t, tC.flags, cpu.f)
		})
	}
}

func TestCPU_applyALU_sub(t *testing.T) {
	cpu := New(memory.New())

	testCases := []struct {
		desc  string
		a, n  uint8
		want  uint8
		flags uint8
	}{
		{desc: "borrow", a: 0x10, n: 0x01, want: 0x0F, flags: flagN | flagH},
		{desc: "zero", a: 0x01, n: 0x01, want: 0x00, flags: flagZ | flagN},
		{desc: "full borrow", a: 0x00, n: 0x01, want: 0xFF, flags: flagN | flagH | flagC},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			cpu.f = 0
			cpu.a = tC.a
			cpu.applyALU(aluSUB, tC.n)
			assert.Equal(t, tC.want, cpu.a)
			assert.Equal(t, tC.flags, cpu.f)
		})
	}
}

func TestCPU_applyALU_andOrXor(t *testing.T) {
	cpu := New(memory.New())

	cpu.a = 0xFF
	cpu.applyALU(aluAND, 0x0F)
	assert.Equal(t, uint8(0x0F), cpu.a)
	assert.Equal(t, flagH, cpu.f)

	cpu.a = 0x00
	cpu.applyALU(aluOR, 0x00)
	assert.Equal(t, uint8(0), cpu.a)
	assert.Equal(t, flagZ, cpu.f)

	cpu.a = 0xFF
	cpu.applyALU(aluXOR, 0xFF)
	assert.Equal(t, uint8(0), cpu.a)
	assert.Equal(t, flagZ, cpu.f)
}

func TestCPU_applyALU_cpDoesNotModifyA(t *testing.T) {
	cpu := New(memory.New())
	cpu.a = 0x10

	cpu.applyALU(aluCP, 0x10)

	assert.Equal(t, uint8(0x10), cpu.a)
	assert.Equal(t, flagZ|flagN, cpu.f)
}

func TestCPU_inc8(t *testing.T) {
	cpu := New(memory.New())

	testCases := []struct {
		desc  string
		v     uint8
		want  uint8
		flags uint8
	}{
		{desc: "increases", v: 0x0A, want: 0x0B},
		{desc: "half carry", v: 0x0F, want: 0x10, flags: flagH},
		{desc: "wraps and sets zero", v: 0xFF, want: 0x00, flags: flagZ | flagH},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			cpu.f = 0
			assert.Equal(t, tC.want, cpu.inc8(tC.v))
			assert.Equal(t, tC.flags, cpu.f)
		})
	}
}

func TestCPU_dec8(t *testing.T) {
	cpu := New(memory.New())

	testCases := []struct {
		desc  string
		v     uint8
		want  uint8
		flags uint8
	}{
		{desc: "decreases", v: 0x0A, want: 0x09, flags: flagN},
		{desc: "half carry", v: 0x00, want: 0xFF, flags: flagN | flagH},
		{desc: "sets zero", v: 0x01, want: 0x00, flags: flagN | flagZ},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			cpu.f = 0
			assert.Equal(t, tC.want, cpu.dec8(tC.v))
			assert.Equal(t, tC.flags, cpu.f)
		})
	}
}

func TestCPU_addHL16(t *testing.T) {
	cpu := New(memory.New())

	cpu.setHL(0x8A23)
	cpu.f = 0
	cpu.addHL16(0x0605)

	assert.Equal(t, uint16(0x9028), cpu.getHL())
	assert.Equal(t, flagH, cpu.f)
}

func TestCPU_addHLHLShiftsLeft(t *testing.T) {
	cpu := New(memory.New())
	cpu.setHL(0xC000)

	cpu.addHL16(cpu.getHL())

	assert.Equal(t, uint16(0x8000), cpu.getHL())
	assert.True(t, cpu.getFlag(flagC))
}

func TestCPU_daaAfterAdd(t *testing.T) {
	cpu := New(memory.New())

	// 0x45 + 0x38 = 0x7D in binary, which is not valid BCD (should read 83).
	cpu.a = 0x45
	cpu.applyALU(aluADD, 0x38)
	cpu.daa()

	assert.Equal(t, uint8(0x83), cpu.a)
	assert.False(t, cpu.getFlag(flagC))
}

func TestCPU_daaAfterSub(t *testing.T) {
	cpu := New(memory.New())

	cpu.a = 0x50
	cpu.applyALU(aluSUB, 0x15)
	cpu.daa()

	assert.Equal(t, uint8(0x35), cpu.a)
}

func TestCPU_xorASetsAllFlagsCorrectly(t *testing.T) {
	cpu := New(memory.New())
	cpu.a = 0x5A
	cpu.f = 0xF0

	cpu.applyALU(aluXOR, cpu.a)

	assert.Equal(t, uint8(0), cpu.a)
	assert.True(t, cpu.getFlag(flagZ))
	assert.False(t, cpu.getFlag(flagN))
	assert.False(t, cpu.getFlag(flagH))
	assert.False(t, cpu.getFlag(flagC))
}
