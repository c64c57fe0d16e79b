package cpu

import (
	"testing"

	"github.com/mattock/dmgcore/memory"
	"github.com/stretchr/testify/assert"
)

func TestCPU_applyShift_rlc(t *testing.T) {
	cpu := New(memory.New())

	testCases := []struct {
		desc  string
		v     uint8
		want  uint8
		flags uint8
	}{
		{desc: "rotates left", v: 0x01, want: 0x02},
		{desc: "wraps carry into bit 0", v: 0x80, want: 0x01, flags: flagC},
		{desc: "sets zero", v: 0x00, want: 0x00, flags: flagZ},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			cpu.f = 0
			got := cpu.applyShift(shRLC, tC.v)
			assert.Equal(t, tC.want, got)
			assert.Equal(t, tC.flags, cpu.f)
		})
	}
}

func TestCPU_applyShift_rl(t *testing.T) {
	cpu := New(memory.New())

	cpu.f = flagC
	got := cpu.applyShift(shRL, 0x01)

	assert.Equal(t, uint8(0x03), got)
	assert.Equal(t, uint8(0), cpu.f)
}

func TestCPU_applyShift_sra(t *testing.T) {
	cpu := New(memory.New())
	cpu.f = 0

	got := cpu.applyShift(shSRA, 0x81)

	assert.Equal(t, uint8(0xC0), got)
	assert.Equal(t, flagC, cpu.f)
}

func TestCPU_applyShift_swap(t *testing.T) {
	cpu := New(memory.New())

	got := cpu.applyShift(shSWAP, 0xA5)

	assert.Equal(t, uint8(0x5A), got)
	assert.Equal(t, uint8(0), cpu.f)
}

func TestCPU_applyShift_swapTwiceIsIdentity(t *testing.T) {
	cpu := New(memory.New())

	v := cpu.applyShift(shSWAP, 0x3C)
	v = cpu.applyShift(shSWAP, v)

	assert.Equal(t, uint8(0x3C), v)
}

func TestCPU_rotateA_clearsZeroUnconditionally(t *testing.T) {
	cpu := New(memory.New())
	cpu.a = 0x00

	cpu.rotateA(shRLC)

	assert.Equal(t, uint8(0), cpu.a)
	assert.False(t, cpu.getFlag(flagZ))
}

func TestCPU_bitTest(t *testing.T) {
	cpu := New(memory.New())

	bitTest(cpu, 7, 0x80)
	assert.False(t, cpu.getFlag(flagZ))
	assert.True(t, cpu.getFlag(flagH))
	assert.False(t, cpu.getFlag(flagN))

	bitTest(cpu, 7, 0x00)
	assert.True(t, cpu.getFlag(flagZ))
}

func TestBitSetAndRes(t *testing.T) {
	assert.Equal(t, uint8(0x80), bitSet(7, 0x00))
	assert.Equal(t, uint8(0x00), bitRes(7, 0x80))
}

func TestCPU_cplTwiceIsIdentity(t *testing.T) {
	cpu := New(memory.New())
	cpu.a = 0x5A

	_, _ = baseTable[0x2F](cpu) // CPL
	_, _ = baseTable[0x2F](cpu)

	assert.Equal(t, uint8(0x5A), cpu.a)
}
