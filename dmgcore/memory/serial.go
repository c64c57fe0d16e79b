package memory

import "github.com/mattock/dmgcore/addr"

// Serial models the minimal SB/SC surface the core exposes. Real link-cable
// transfer timing is an external collaborator's concern; this core only
// stores the two registers and, as a test-harness convenience, mirrors
// every SB write to an injectable sink (spec §4.1, §9 open question).
type Serial struct {
	sb, sc uint8

	// OnByte is called with the value written to SB, if non-nil. The
	// library itself never wires this to stdout; only the cmd harness does.
	OnByte func(byte)
}

func (s *Serial) Read(address uint16) uint8 {
	switch address {
	case addr.SB:
		return s.sb
	case addr.SC:
		return s.sc
	default:
		return 0xFF
	}
}

func (s *Serial) Write(address uint16, value uint8) {
	switch address {
	case addr.SB:
		s.sb = value
		if s.OnByte != nil {
			s.OnByte(value)
		}
	case addr.SC:
		s.sc = value
	}
}
