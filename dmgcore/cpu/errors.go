package cpu

import "fmt"

// UnitTestPassed is returned when opcode FC executes, the test-harness
// sentinel for "this ROM's self-check passed."
type UnitTestPassed struct{}

func (UnitTestPassed) Error() string { return "unit test passed (0xFC)" }

// UnitTestFailed is returned when opcode FD executes.
type UnitTestFailed struct{}

func (UnitTestFailed) Error() string { return "unit test failed (0xFD)" }

// UnimplementedOpcode is returned for the nine opcodes the LR35902 never
// defines (D3, DB, DD, E3, E4, EB, EC, ED, F4).
type UnimplementedOpcode struct {
	Opcode uint8
}

func (e UnimplementedOpcode) Error() string {
	return fmt.Sprintf("unimplemented opcode 0x%02X", e.Opcode)
}

// Timeout is returned by the pacer when a configured frame-profile limit
// is exceeded.
type Timeout struct {
	Frames  int
	Seconds float64
}

func (e Timeout) Error() string {
	return fmt.Sprintf("timeout after %d frames (%.3fs)", e.Frames, e.Seconds)
}
