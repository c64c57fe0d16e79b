package memory

import "github.com/mattock/dmgcore/addr"

// Timer implements the DIV/TIMA/TMA/TAC registers (spec §4.4). DIV
// increments once every 64 M-cycles; TIMA increments once every N
// M-cycles, N selected by TAC's low two bits, and reloads from TMA on
// overflow while raising the TIMER interrupt.
type Timer struct {
	div  uint8
	tima uint8
	tma  uint8
	tac  uint8

	divCounter  uint16
	timaCounter uint16

	// RequestInterrupt is called whenever TIMA overflows. Wired by the
	// owning AddressSpace to its own RequestInterrupt(addr.Timer).
	RequestInterrupt func()
}

var timaPeriods = [4]uint16{256, 4, 16, 64}

// Tick advances the timer by one M-cycle.
func (t *Timer) Tick() {
	t.divCounter++
	if t.divCounter == 64 {
		t.divCounter = 0
		t.div++
	}

	if t.tac&0x04 == 0 {
		return
	}

	t.timaCounter++
	period := timaPeriods[t.tac&0x03]
	if t.timaCounter < period {
		return
	}
	t.timaCounter = 0

	if t.tima == 0xFF {
		t.tima = t.tma
		if t.RequestInterrupt != nil {
			t.RequestInterrupt()
		}
	} else {
		t.tima++
	}
}

func (t *Timer) Read(address uint16) uint8 {
	switch address {
	case addr.DIV:
		return t.div
	case addr.TIMA:
		return t.tima
	case addr.TMA:
		return t.tma
	case addr.TAC:
		return t.tac
	default:
		return 0xFF
	}
}

func (t *Timer) Write(address uint16, value uint8) {
	switch address {
	case addr.DIV:
		// Any write resets the divider, regardless of value written.
		t.div = 0
		t.divCounter = 0
	case addr.TIMA:
		t.tima = value
	case addr.TMA:
		t.tma = value
	case addr.TAC:
		t.tac = value & 0x07
	}
}
