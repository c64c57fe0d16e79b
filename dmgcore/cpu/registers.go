package cpu

// Flag bit positions within F (spec §3): only the top nibble is live, the
// bottom nibble always reads as zero.
const (
	flagZ uint8 = 0x80
	flagN uint8 = 0x40
	flagH uint8 = 0x20
	flagC uint8 = 0x10
)

func (c *CPU) getFlag(flag uint8) bool {
	return c.f&flag != 0
}

func (c *CPU) setFlag(flag uint8, set bool) {
	if set {
		c.f |= flag
	} else {
		c.f &^= flag
	}
}

func (c *CPU) carryBit() uint8 {
	if c.getFlag(flagC) {
		return 1
	}
	return 0
}

// Register pairs are views over their 8-bit halves, never stored
// independently (spec §3, §9).

func (c *CPU) getAF() uint16 {
	return uint16(c.a)<<8 | uint16(c.f&0xF0)
}

func (c *CPU) setAF(v uint16) {
	c.a = uint8(v >> 8)
	c.f = uint8(v) & 0xF0
}

func (c *CPU) getBC() uint16 { return uint16(c.b)<<8 | uint16(c.c) }
func (c *CPU) setBC(v uint16) {
	c.b = uint8(v >> 8)
	c.c = uint8(v)
}

func (c *CPU) getDE() uint16 { return uint16(c.d)<<8 | uint16(c.e) }
func (c *CPU) setDE(v uint16) {
	c.d = uint8(v >> 8)
	c.e = uint8(v)
}

func (c *CPU) getHL() uint16 { return uint16(c.h)<<8 | uint16(c.l) }
func (c *CPU) setHL(v uint16) {
	c.h = uint8(v >> 8)
	c.l = uint8(v)
}

// reg8 resolves one of the eight encoding slots used throughout the
// opcode map: B, C, D, E, H, L, (HL), A (spec §9 "register list"). Index 6,
// "memory at HL", forwards through the address space.
type reg8get func(c *CPU) uint8
type reg8set func(c *CPU, v uint8)

var reg8Get = [8]reg8get{
	func(c *CPU) uint8 { return c.b },
	func(c *CPU) uint8 { return c.c },
	func(c *CPU) uint8 { return c.d },
	func(c *CPU) uint8 { return c.e },
	func(c *CPU) uint8 { return c.h },
	func(c *CPU) uint8 { return c.l },
	func(c *CPU) uint8 { return c.mmu.Read(c.getHL()) },
	func(c *CPU) uint8 { return c.a },
}

var reg8Set = [8]reg8set{
	func(c *CPU, v uint8) { c.b = v },
	func(c *CPU, v uint8) { c.c = v },
	func(c *CPU, v uint8) { c.d = v },
	func(c *CPU, v uint8) { c.e = v },
	func(c *CPU, v uint8) { c.h = v },
	func(c *CPU, v uint8) { c.l = v },
	func(c *CPU, v uint8) { c.mmu.Write(c.getHL(), v) },
	func(c *CPU, v uint8) { c.a = v },
}

// reg16 resolves the four BC/DE/HL/SP pairs used by 16-bit group
// instructions (LD rr,nn / INC rr / DEC rr / ADD HL,rr / PUSH/POP via a
// separate table since PUSH/POP use AF instead of SP).
type reg16get func(c *CPU) uint16
type reg16set func(c *CPU, v uint16)

var reg16Get = [4]reg16get{
	func(c *CPU) uint16 { return c.getBC() },
	func(c *CPU) uint16 { return c.getDE() },
	func(c *CPU) uint16 { return c.getHL() },
	func(c *CPU) uint16 { return c.sp },
}

var reg16Set = [4]reg16set{
	func(c *CPU, v uint16) { c.setBC(v) },
	func(c *CPU, v uint16) { c.setDE(v) },
	func(c *CPU, v uint16) { c.setHL(v) },
	func(c *CPU, v uint16) { c.sp = v },
}

var reg16StackGet = [4]reg16get{
	func(c *CPU) uint16 { return c.getBC() },
	func(c *CPU) uint16 { return c.getDE() },
	func(c *CPU) uint16 { return c.getHL() },
	func(c *CPU) uint16 { return c.getAF() },
}

var reg16StackSet = [4]reg16set{
	func(c *CPU, v uint16) { c.setBC(v) },
	func(c *CPU, v uint16) { c.setDE(v) },
	func(c *CPU, v uint16) { c.setHL(v) },
	func(c *CPU, v uint16) { c.setAF(v) },
}
