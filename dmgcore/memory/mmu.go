// Package memory implements the Address Space component (spec §4.1): the
// flat 16-bit memory map, its region semantics, the DIV/TIMA timer, and
// the OAM DMA engine. The PPU, APU, and joypad matrix are external
// collaborators; this package only stores the registers they read/write.
package memory

import (
	"fmt"

	"github.com/mattock/dmgcore/addr"
)

type region uint8

const (
	regionROM region = iota
	regionVRAM
	regionExtRAM
	regionWRAM
	regionEcho
	regionOAM
	regionUnused
	regionIO
	regionHRAM
)

// AddressSpace is the single point of memory-mapped coordination the CPU,
// timer, DMA engine, and interrupt controller all read and write through.
type AddressSpace struct {
	rom    []uint8
	vram   [0x2000]uint8
	extRAM [0x2000]uint8
	wram   [0x2000]uint8
	oam    [0xA0]uint8
	io     [0x80]uint8
	hram   [0x7F]uint8
	ie     uint8

	regionMap [256]region

	timer  Timer
	serial Serial
}

// New creates an address space with an empty cartridge loaded.
func New() *AddressSpace {
	return NewWithCartridge(NewCartridge())
}

// NewWithCartridge creates an address space with the given flat ROM image.
func NewWithCartridge(rom []uint8) *AddressSpace {
	m := &AddressSpace{rom: rom}
	m.timer.RequestInterrupt = func() { m.RequestInterrupt(addr.Timer) }
	initRegionMap(&m.regionMap)
	return m
}

func initRegionMap(rm *[256]region) {
	for i := 0x00; i <= 0x7F; i++ {
		rm[i] = regionROM
	}
	for i := 0x80; i <= 0x9F; i++ {
		rm[i] = regionVRAM
	}
	for i := 0xA0; i <= 0xBF; i++ {
		rm[i] = regionExtRAM
	}
	for i := 0xC0; i <= 0xDF; i++ {
		rm[i] = regionWRAM
	}
	for i := 0xE0; i <= 0xFD; i++ {
		rm[i] = regionEcho
	}
	rm[0xFE] = regionOAM
	rm[0xFF] = regionIO
}

// SetSerialSink installs the callback invoked on every write to SB (FF01).
func (m *AddressSpace) SetSerialSink(fn func(byte)) {
	m.serial.OnByte = fn
}

// Read returns the byte stored at address, resolving region semantics.
func (m *AddressSpace) Read(address uint16) uint8 {
	switch m.regionMap[address>>8] {
	case regionROM:
		if int(address) < len(m.rom) {
			return m.rom[address]
		}
		return 0xFF
	case regionVRAM:
		return m.vram[address-addr.VRAMStart]
	case regionExtRAM:
		return m.extRAM[address-addr.ExtStart]
	case regionWRAM:
		return m.wram[address-addr.WRAMStart]
	case regionEcho:
		return m.wram[address-addr.EchoStart]
	case regionOAM:
		if address <= addr.OAMEnd {
			return m.oam[address-addr.OAMStart]
		}
		return 0xFF // unused 0xFEA0-0xFEFF
	case regionIO:
		return m.readIO(address)
	default:
		panic(fmt.Sprintf("dmgcore/memory: read from unmapped address 0x%04X", address))
	}
}

// Write stores value at address, resolving region semantics and side effects.
func (m *AddressSpace) Write(address uint16, value uint8) {
	switch m.regionMap[address>>8] {
	case regionROM:
		// ROM is read-only from the CPU's perspective; MBC emulation
		// (which would interpret these writes as bank-switch commands)
		// is a non-goal, so writes are simply dropped.
	case regionVRAM:
		m.vram[address-addr.VRAMStart] = value
	case regionExtRAM:
		m.extRAM[address-addr.ExtStart] = value
	case regionWRAM:
		m.wram[address-addr.WRAMStart] = value
	case regionEcho:
		m.wram[address-addr.EchoStart] = value
	case regionOAM:
		if address <= addr.OAMEnd {
			m.oam[address-addr.OAMStart] = value
		}
	case regionIO:
		m.writeIO(address, value)
	default:
		panic(fmt.Sprintf("dmgcore/memory: write to unmapped address 0x%04X", address))
	}
}

func (m *AddressSpace) readIO(address uint16) uint8 {
	if address == addr.IE {
		return m.ie
	}
	switch address {
	case addr.SB, addr.SC:
		return m.serial.Read(address)
	case addr.DIV, addr.TIMA, addr.TMA, addr.TAC:
		return m.timer.Read(address)
	case addr.IF:
		return m.io[address-addr.IOStart] | 0xE0 // top 3 bits always read 1
	default:
		if address >= addr.HRAMStart {
			return m.hram[address-addr.HRAMStart]
		}
		return m.io[address-addr.IOStart]
	}
}

func (m *AddressSpace) writeIO(address uint16, value uint8) {
	if address == addr.IE {
		m.ie = value
		return
	}
	switch address {
	case addr.SB, addr.SC:
		m.serial.Write(address, value)
	case addr.DIV, addr.TIMA, addr.TMA, addr.TAC:
		m.timer.Write(address, value)
	case addr.DMA:
		m.io[address-addr.IOStart] = value
	default:
		if address >= addr.HRAMStart {
			m.hram[address-addr.HRAMStart] = value
			return
		}
		m.io[address-addr.IOStart] = value
	}
}

// RequestInterrupt sets the given interrupt's bit in the IF register. Any
// collaborator (timer, DMA, or an external PPU/joypad/serial driver) can
// call this to raise an interrupt.
func (m *AddressSpace) RequestInterrupt(i addr.Interrupt) {
	idx := addr.IF - addr.IOStart
	m.io[idx] |= i.Mask()
}

// TickTimer advances the timer by one M-cycle. Called once per CPU tick.
func (m *AddressSpace) TickTimer() {
	m.timer.Tick()
}

// ServiceDMA performs the one-shot 160-byte OAM copy if the DMA register
// holds a nonzero value, then clears it (spec §4.5).
func (m *AddressSpace) ServiceDMA() {
	idx := addr.DMA - addr.IOStart
	v := m.io[idx]
	if v == 0 {
		return
	}

	src := uint16(v) << 8
	for i := uint16(0); i < 160; i++ {
		m.oam[i] = m.Read(src + i)
	}
	m.io[idx] = 0
}
