package cpu

// shiftKind enumerates the eight CB-prefixed rotate/shift operations in
// table order (spec §9): RLC, RRC, RL, RR, SLA, SRA, SWAP, SRL.
type shiftKind uint8

const (
	shRLC shiftKind = iota
	shRRC
	shRL
	shRR
	shSLA
	shSRA
	shSWAP
	shSRL
)

// applyShift performs one CB-prefixed rotate/shift, setting Z from the
// result (unlike the non-CB accumulator forms, which always clear Z).
func (c *CPU) applyShift(kind shiftKind, v uint8) uint8 {
	var result uint8
	var carryOut bool

	switch kind {
	case shRLC:
		carryOut = v&0x80 != 0
		result = v<<1 | v>>7
	case shRRC:
		carryOut = v&0x01 != 0
		result = v>>1 | v<<7
	case shRL:
		carryOut = v&0x80 != 0
		result = v<<1 | c.carryBit()
	case shRR:
		carryOut = v&0x01 != 0
		result = v>>1 | c.carryBit()<<7
	case shSLA:
		carryOut = v&0x80 != 0
		result = v << 1
	case shSRA:
		carryOut = v&0x01 != 0
		result = v>>1 | v&0x80
	case shSWAP:
		result = v<<4 | v>>4
		c.setFlag(flagC, false)
		c.setFlag(flagN, false)
		c.setFlag(flagH, false)
		c.setFlag(flagZ, result == 0)
		return result
	case shSRL:
		carryOut = v&0x01 != 0
		result = v >> 1
	}

	c.setFlag(flagC, carryOut)
	c.setFlag(flagN, false)
	c.setFlag(flagH, false)
	c.setFlag(flagZ, result == 0)
	return result
}

// rotateA performs the non-CB accumulator rotate forms (RLCA/RLA/RRCA/RRA),
// which clear Z unconditionally regardless of the result (spec §4.7).
func (c *CPU) rotateA(kind shiftKind) {
	c.a = c.applyShift(kind, c.a)
	c.setFlag(flagZ, false)
}

func bitTest(c *CPU, bit, v uint8) {
	c.setFlag(flagZ, v&(1<<bit) == 0)
	c.setFlag(flagN, false)
	c.setFlag(flagH, true)
}

func bitSet(bit, v uint8) uint8 { return v | 1<<bit }
func bitRes(bit, v uint8) uint8 { return v &^ (1 << bit) }
