// Package cpu implements the Sharp LR35902 instruction interpreter fused
// with interrupt dispatch: the CPU register file, decode tables, and the
// per-tick control flow that services DMA, advances the timer, and
// dispatches interrupts before executing (or continuing to pay for) one
// instruction.
package cpu

import (
	"log/slog"

	"github.com/mattock/dmgcore/addr"
	"github.com/mattock/dmgcore/memory"
)

// Config exposes the conformance knobs left open by the reference
// behavior this core targets.
type Config struct {
	// DelayedEI makes EI take effect after the instruction following it,
	// matching real hardware, instead of immediately.
	DelayedEI bool
}

// CPU holds the full architectural state: the register file, the
// interrupt master enable flag, HALT/STOP latches, and the owed-cycles
// pacing counter (spec §3, §4.6).
type CPU struct {
	a, b, c, d, e, f, h, l uint8
	sp, pc                 uint16

	ime       bool
	eiPending int // ticks remaining before a pending EI takes effect, -1 if none
	halted    bool
	stopped   bool

	cycle      uint64
	owed       int
	instrCount uint64

	mmu *memory.AddressSpace

	Config Config
	Log    *slog.Logger
}

// New creates a CPU wired to the given address space. All registers,
// flags, SP and PC start at zero and IME starts false (spec §6 "Reset
// state") — this core does not emulate the boot ROM.
func New(mmu *memory.AddressSpace) *CPU {
	return &CPU{
		mmu:       mmu,
		eiPending: -1,
		Log:       slog.Default(),
	}
}

// PC returns the current program counter, mainly for host-harness tracing.
func (c *CPU) PC() uint16 { return c.pc }

// Cycle returns the monotonically increasing M-cycle tick counter.
func (c *CPU) Cycle() uint64 { return c.cycle }

// InstructionCount returns the number of instructions fully fetched and
// executed so far. The cycle pacer (spec §4.8) counts frame boundaries
// against this, not against the M-cycle tick counter — the source counts
// one "cycle" per instruction, retained here under its own name to avoid
// conflating the two units.
func (c *CPU) InstructionCount() uint64 { return c.instrCount }

func (c *CPU) fetch8() uint8 {
	v := c.mmu.Read(c.pc)
	c.pc++
	return v
}

func (c *CPU) fetch16() uint16 {
	lo := c.mmu.Read(c.pc)
	hi := c.mmu.Read(c.pc + 1)
	c.pc += 2
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) fetchSigned8() int8 {
	return int8(c.fetch8())
}

func (c *CPU) pushStack(v uint16) {
	c.sp -= 2
	c.mmu.Write(c.sp, uint8(v))
	c.mmu.Write(c.sp+1, uint8(v>>8))
}

func (c *CPU) popStack() uint16 {
	lo := c.mmu.Read(c.sp)
	hi := c.mmu.Read(c.sp + 1)
	c.sp += 2
	return uint16(hi)<<8 | uint16(lo)
}

// Tick advances the system by one M-cycle, per the control flow in
// spec §2: service DMA, advance the timer, dispatch an interrupt if one
// is pending and enabled, early-return on HALT/STOP, drain owed cycles,
// and otherwise execute exactly one instruction.
func (c *CPU) Tick() error {
	c.mmu.ServiceDMA()
	c.mmu.TickTimer()
	c.cycle++

	c.resolveEIDelay()

	if c.dispatchInterrupt() {
		return nil
	}

	if c.halted || c.stopped {
		return nil
	}

	if c.owed > 0 {
		c.owed -= 4
		return nil
	}

	return c.step()
}

// resolveEIDelay advances the one-instruction delay for EI when
// Config.DelayedEI is set (spec §9 open question). EI sets eiPending to 2
// and it counts down once per Tick: the first decrement happens on the
// tick that executes the instruction following EI, and the second, on the
// next tick, sets IME before that tick's dispatch check.
func (c *CPU) resolveEIDelay() {
	if c.eiPending < 0 {
		return
	}
	c.eiPending--
	if c.eiPending == 0 {
		c.ime = true
		c.eiPending = -1
	}
}

// dispatchInterrupt implements spec §4.3: wakes HALT on any pending
// interrupt regardless of IME, then, if IME is set and something is
// pending, services the highest-priority source in-line.
func (c *CPU) dispatchInterrupt() bool {
	ie := c.mmu.Read(addr.IE)
	iflag := c.mmu.Read(addr.IF)
	pending := ie & iflag & 0x1F

	if pending != 0 {
		c.halted = false
		c.stopped = false
	}

	if !c.ime || pending == 0 {
		return false
	}

	for bit := uint8(0); bit < 5; bit++ {
		mask := uint8(1) << bit
		if pending&mask == 0 {
			continue
		}
		c.mmu.Write(addr.IF, iflag&^mask)
		c.ime = false
		c.pushStack(c.pc)
		c.pc = addr.Interrupt(bit).Vector()
		// Dispatch costs 5 M-cycles (20 T-states); one is "this" tick.
		c.owed += 16
		return true
	}
	return false
}

func (c *CPU) step() error {
	pc := c.pc
	opcode := c.fetch8()
	var handler opcodeFunc
	var name string
	if opcode == 0xCB {
		cb := c.fetch8()
		handler = cbTable[cb]
		name = MnemonicCB(cb)
	} else {
		handler = baseTable[opcode]
		name = Mnemonic(opcode)
	}
	c.Log.Debug("step", "pc", pc, "opcode", opcode, "mnemonic", name)

	cycles, err := handler(c)
	c.instrCount++
	if err != nil {
		return err
	}
	c.owed = int(cycles) - 4
	return nil
}

func setEI(c *CPU, delayed bool) {
	if delayed {
		c.eiPending = 2
	} else {
		c.ime = true
	}
}
