package cpu

// condCode enumerates the four branch conditions in the order the
// conditional JR/JP/CALL/RET rows index them: NZ, Z, NC, C.
type condCode uint8

const (
	condNZ condCode = iota
	condZ
	condNC
	condC
)

func (c *CPU) condMet(cc condCode) bool {
	switch cc {
	case condNZ:
		return !c.getFlag(flagZ)
	case condZ:
		return c.getFlag(flagZ)
	case condNC:
		return !c.getFlag(flagC)
	case condC:
		return c.getFlag(flagC)
	}
	return false
}

func (c *CPU) jr(e int8) {
	c.pc = uint16(int32(c.pc) + int32(e))
}

func (c *CPU) halt() {
	// If IME is clear and an interrupt is already pending, real hardware
	// skips HALT and suffers the halt bug instead; not emulated (spec §9).
	c.halted = true
}

func (c *CPU) stop() {
	c.stopped = true
}
