package cpu

// opcodeFunc executes one decoded instruction and returns its declared
// cycle cost in T-states (spec §4.6).
type opcodeFunc func(c *CPU) (uint8, error)

var baseTable [256]opcodeFunc
var cbTable [256]opcodeFunc

// The base and CB tables are built at init time from the same systematic
// index arithmetic the source uses (spec §9): regular rows are generated
// by formula over the register list [B,C,D,E,H,L,(HL),A], and the
// remaining ~80 irregular opcodes are registered individually.
func init() {
	for dst := 0; dst < 8; dst++ {
		for src := 0; src < 8; src++ {
			if dst == 6 && src == 6 {
				continue // 0x76 is HALT, not LD (HL),(HL)
			}
			d, s := dst, src
			baseTable[uint8(0x40+d*8+s)] = ldRR(d, s)
		}
	}

	aluKinds := [8]aluKind{aluADD, aluADC, aluSUB, aluSBC, aluAND, aluXOR, aluOR, aluCP}
	for k, kind := range aluKinds {
		for r := 0; r < 8; r++ {
			baseTable[uint8(0x80+k*8+r)] = aluReg(kind, r)
		}
		baseTable[uint8(0xC6+k*8)] = aluImm(kind)
	}

	for r := 0; r < 8; r++ {
		row := uint8(r * 8)
		baseTable[row+4] = incReg(r)
		baseTable[row+5] = decReg(r)
		baseTable[row+6] = ldImm(r)
	}

	shiftKinds := [8]shiftKind{shRLC, shRRC, shRL, shRR, shSLA, shSRA, shSWAP, shSRL}
	for k, kind := range shiftKinds {
		for r := 0; r < 8; r++ {
			cbTable[uint8(k*8+r)] = cbShift(kind, r)
		}
	}
	for b := 0; b < 8; b++ {
		for r := 0; r < 8; r++ {
			bit, reg := uint8(b), r
			cbTable[uint8(0x40+b*8+r)] = cbBit(bit, reg)
			cbTable[uint8(0x80+b*8+r)] = cbRes(bit, reg)
			cbTable[uint8(0xC0+b*8+r)] = cbSet(bit, reg)
		}
	}

	registerIrregularOpcodes()
}

func ldRR(dst, src int) opcodeFunc {
	return func(c *CPU) (uint8, error) {
		reg8Set[dst](c, reg8Get[src](c))
		if dst == 6 || src == 6 {
			return 8, nil
		}
		return 4, nil
	}
}

func aluReg(kind aluKind, src int) opcodeFunc {
	return func(c *CPU) (uint8, error) {
		c.applyALU(kind, reg8Get[src](c))
		if src == 6 {
			return 8, nil
		}
		return 4, nil
	}
}

func aluImm(kind aluKind) opcodeFunc {
	return func(c *CPU) (uint8, error) {
		c.applyALU(kind, c.fetch8())
		return 8, nil
	}
}

func incReg(r int) opcodeFunc {
	return func(c *CPU) (uint8, error) {
		reg8Set[r](c, c.inc8(reg8Get[r](c)))
		if r == 6 {
			return 12, nil
		}
		return 4, nil
	}
}

func decReg(r int) opcodeFunc {
	return func(c *CPU) (uint8, error) {
		reg8Set[r](c, c.dec8(reg8Get[r](c)))
		if r == 6 {
			return 12, nil
		}
		return 4, nil
	}
}

func ldImm(r int) opcodeFunc {
	return func(c *CPU) (uint8, error) {
		n := c.fetch8()
		reg8Set[r](c, n)
		if r == 6 {
			return 12, nil
		}
		return 8, nil
	}
}

func cbShift(kind shiftKind, r int) opcodeFunc {
	return func(c *CPU) (uint8, error) {
		reg8Set[r](c, c.applyShift(kind, reg8Get[r](c)))
		if r == 6 {
			return 16, nil
		}
		return 8, nil
	}
}

func cbBit(bit uint8, r int) opcodeFunc {
	return func(c *CPU) (uint8, error) {
		bitTest(c, bit, reg8Get[r](c))
		if r == 6 {
			return 12, nil
		}
		return 8, nil
	}
}

func cbRes(bit uint8, r int) opcodeFunc {
	return func(c *CPU) (uint8, error) {
		reg8Set[r](c, bitRes(bit, reg8Get[r](c)))
		if r == 6 {
			return 16, nil
		}
		return 8, nil
	}
}

func cbSet(bit uint8, r int) opcodeFunc {
	return func(c *CPU) (uint8, error) {
		reg8Set[r](c, bitSet(bit, reg8Get[r](c)))
		if r == 6 {
			return 16, nil
		}
		return 8, nil
	}
}

// registerIrregularOpcodes fills in every opcode that does not fit the
// regular row/column formulas above: 16-bit loads, stack ops, control
// flow, and the handful of standalone single-byte instructions.
func registerIrregularOpcodes() {
	baseTable[0x00] = func(c *CPU) (uint8, error) { return 4, nil } // NOP

	for i := 0; i < 4; i++ {
		idx := i
		baseTable[uint8(0x01+i*0x10)] = func(c *CPU) (uint8, error) {
			reg16Set[idx](c, c.fetch16())
			return 12, nil
		}
		baseTable[uint8(0x03+i*0x10)] = func(c *CPU) (uint8, error) {
			reg16Set[idx](c, reg16Get[idx](c)+1)
			return 8, nil
		}
		baseTable[uint8(0x0B+i*0x10)] = func(c *CPU) (uint8, error) {
			reg16Set[idx](c, reg16Get[idx](c)-1)
			return 8, nil
		}
		baseTable[uint8(0x09+i*0x10)] = func(c *CPU) (uint8, error) {
			c.addHL16(reg16Get[idx](c))
			return 8, nil
		}
		baseTable[uint8(0xC1+i*0x10)] = func(c *CPU) (uint8, error) {
			reg16StackSet[idx](c, c.popStack())
			return 12, nil
		}
		baseTable[uint8(0xC5+i*0x10)] = func(c *CPU) (uint8, error) {
			c.pushStack(reg16StackGet[idx](c))
			return 16, nil
		}
	}

	baseTable[0x02] = func(c *CPU) (uint8, error) { c.mmu.Write(c.getBC(), c.a); return 8, nil }
	baseTable[0x12] = func(c *CPU) (uint8, error) { c.mmu.Write(c.getDE(), c.a); return 8, nil }
	baseTable[0x0A] = func(c *CPU) (uint8, error) { c.a = c.mmu.Read(c.getBC()); return 8, nil }
	baseTable[0x1A] = func(c *CPU) (uint8, error) { c.a = c.mmu.Read(c.getDE()); return 8, nil }

	baseTable[0x07] = func(c *CPU) (uint8, error) { c.rotateA(shRLC); return 4, nil }
	baseTable[0x0F] = func(c *CPU) (uint8, error) { c.rotateA(shRRC); return 4, nil }
	baseTable[0x17] = func(c *CPU) (uint8, error) { c.rotateA(shRL); return 4, nil }
	baseTable[0x1F] = func(c *CPU) (uint8, error) { c.rotateA(shRR); return 4, nil }

	baseTable[0x08] = func(c *CPU) (uint8, error) {
		nn := c.fetch16()
		c.mmu.Write(nn, uint8(c.sp))
		c.mmu.Write(nn+1, uint8(c.sp>>8))
		return 20, nil
	}

	baseTable[0x10] = func(c *CPU) (uint8, error) {
		c.fetch8() // STOP's mandatory padding byte
		c.stop()
		return 4, nil
	}

	baseTable[0x18] = func(c *CPU) (uint8, error) {
		c.jr(c.fetchSigned8())
		return 12, nil
	}

	for cc := 0; cc < 4; cc++ {
		code := condCode(cc)
		baseTable[uint8(0x20+cc*8)] = func(c *CPU) (uint8, error) {
			e := c.fetchSigned8()
			if c.condMet(code) {
				c.jr(e)
			}
			return 8, nil // not-taken base cost always (spec §9)
		}
		baseTable[uint8(0xC0+cc*8)] = func(c *CPU) (uint8, error) {
			if c.condMet(code) {
				c.pc = c.popStack()
			}
			return 8, nil
		}
		baseTable[uint8(0xC2+cc*8)] = func(c *CPU) (uint8, error) {
			nn := c.fetch16()
			if c.condMet(code) {
				c.pc = nn
			}
			return 12, nil
		}
		baseTable[uint8(0xC4+cc*8)] = func(c *CPU) (uint8, error) {
			nn := c.fetch16()
			if c.condMet(code) {
				c.pushStack(c.pc)
				c.pc = nn
			}
			return 12, nil
		}
	}

	baseTable[0x22] = func(c *CPU) (uint8, error) {
		c.mmu.Write(c.getHL(), c.a)
		c.setHL(c.getHL() + 1)
		return 8, nil
	}
	baseTable[0x2A] = func(c *CPU) (uint8, error) {
		c.a = c.mmu.Read(c.getHL())
		c.setHL(c.getHL() + 1)
		return 8, nil
	}
	baseTable[0x32] = func(c *CPU) (uint8, error) {
		c.mmu.Write(c.getHL(), c.a)
		c.setHL(c.getHL() - 1)
		return 8, nil
	}
	baseTable[0x3A] = func(c *CPU) (uint8, error) {
		c.a = c.mmu.Read(c.getHL())
		c.setHL(c.getHL() - 1)
		return 8, nil
	}

	baseTable[0x27] = func(c *CPU) (uint8, error) { c.daa(); return 4, nil }
	baseTable[0x2F] = func(c *CPU) (uint8, error) {
		c.a = ^c.a
		c.setFlag(flagN, true)
		c.setFlag(flagH, true)
		return 4, nil
	}
	baseTable[0x37] = func(c *CPU) (uint8, error) {
		c.setFlag(flagC, true)
		c.setFlag(flagN, false)
		c.setFlag(flagH, false)
		return 4, nil
	}
	baseTable[0x3F] = func(c *CPU) (uint8, error) {
		c.setFlag(flagC, !c.getFlag(flagC))
		c.setFlag(flagN, false)
		c.setFlag(flagH, false)
		return 4, nil
	}

	baseTable[0x76] = func(c *CPU) (uint8, error) { c.halt(); return 4, nil }

	baseTable[0xC3] = func(c *CPU) (uint8, error) { c.pc = c.fetch16(); return 16, nil }
	baseTable[0xC9] = func(c *CPU) (uint8, error) { c.pc = c.popStack(); return 16, nil }
	baseTable[0xCD] = func(c *CPU) (uint8, error) {
		nn := c.fetch16()
		c.pushStack(c.pc)
		c.pc = nn
		return 24, nil
	}
	baseTable[0xD9] = func(c *CPU) (uint8, error) {
		c.pc = c.popStack()
		c.ime = true
		return 16, nil
	}

	for k := 0; k < 8; k++ {
		n := uint16(k * 8)
		baseTable[uint8(0xC7+k*8)] = func(c *CPU) (uint8, error) {
			c.pushStack(c.pc)
			c.pc = n
			return 16, nil
		}
	}

	baseTable[0xE0] = func(c *CPU) (uint8, error) {
		n := c.fetch8()
		c.mmu.Write(0xFF00+uint16(n), c.a)
		return 12, nil
	}
	baseTable[0xE2] = func(c *CPU) (uint8, error) {
		c.mmu.Write(0xFF00+uint16(c.c), c.a)
		return 8, nil
	}
	baseTable[0xE8] = func(c *CPU) (uint8, error) {
		c.sp = c.addSPSigned(c.fetchSigned8())
		return 16, nil
	}
	baseTable[0xE9] = func(c *CPU) (uint8, error) { c.pc = c.getHL(); return 4, nil }
	baseTable[0xEA] = func(c *CPU) (uint8, error) {
		c.mmu.Write(c.fetch16(), c.a)
		return 16, nil
	}

	baseTable[0xF0] = func(c *CPU) (uint8, error) {
		n := c.fetch8()
		c.a = c.mmu.Read(0xFF00 + uint16(n))
		return 12, nil
	}
	baseTable[0xF2] = func(c *CPU) (uint8, error) {
		c.a = c.mmu.Read(0xFF00 + uint16(c.c))
		return 8, nil
	}
	baseTable[0xF3] = func(c *CPU) (uint8, error) {
		c.ime = false
		c.eiPending = -1
		return 4, nil
	}
	baseTable[0xF8] = func(c *CPU) (uint8, error) {
		c.setHL(c.addSPSigned(c.fetchSigned8()))
		return 12, nil
	}
	baseTable[0xF9] = func(c *CPU) (uint8, error) { c.sp = c.getHL(); return 8, nil }
	baseTable[0xFA] = func(c *CPU) (uint8, error) {
		c.a = c.mmu.Read(c.fetch16())
		return 16, nil
	}
	baseTable[0xFB] = func(c *CPU) (uint8, error) {
		setEI(c, c.Config.DelayedEI)
		return 4, nil
	}

	baseTable[0xFC] = func(c *CPU) (uint8, error) { return 4, UnitTestPassed{} }
	baseTable[0xFD] = func(c *CPU) (uint8, error) { return 4, UnitTestFailed{} }

	for _, op := range []uint8{0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4} {
		opcode := op
		baseTable[op] = func(c *CPU) (uint8, error) {
			return 4, UnimplementedOpcode{Opcode: opcode}
		}
	}
}
