package regfile

import "github.com/remogatto/z80"

// flatMemory is the smallest MemoryAccessor the remogatto/z80 core
// will accept: a flat 64K byte array with no ROM protection or
// contention modelling.
type flatMemory struct {
	data [65536]byte
}

func (m *flatMemory) ReadByte(address uint16) byte          { return m.data[address] }
func (m *flatMemory) WriteByte(address uint16, value byte)   { m.data[address] = value }
func (m *flatMemory) ReadByteInternal(address uint16) byte    { return m.ReadByte(address) }
func (m *flatMemory) WriteByteInternal(address uint16, v byte) { m.WriteByte(address, v) }
func (m *flatMemory) ContendRead(address uint16, time int)              {}
func (m *flatMemory) ContendReadNoMreq(address uint16, time int)        {}
func (m *flatMemory) ContendReadNoMreq_loop(address uint16, time int, count uint) {}
func (m *flatMemory) ContendWriteNoMreq(address uint16, time int)       {}
func (m *flatMemory) ContendWriteNoMreq_loop(address uint16, time int, count uint) {}
func (m *flatMemory) Read(address uint16) byte                { return m.ReadByte(address) }
func (m *flatMemory) Write(address uint16, value byte, protectROM bool) {
	m.WriteByte(address, value)
}
func (m *flatMemory) Data() []byte { return m.data[:] }

// silentPorts answers every port read with 0xFF and discards writes.
type silentPorts struct{}

func (silentPorts) ReadPort(address uint16) byte                          { return 0xff }
func (silentPorts) WritePort(address uint16, b byte)                      {}
func (silentPorts) ReadPortInternal(address uint16, contend bool) byte    { return 0xff }
func (silentPorts) WritePortInternal(address uint16, b byte, contend bool) {}
func (silentPorts) ContendPortPreio(address uint16)                       {}
func (silentPorts) ContendPortPostio(address uint16)                     {}

// NewZ80CPU constructs a live remogatto/z80 CPU with a flat,
// unprotected 64K address space, suitable for deriving a register
// file description or for single-stepping real Z80 opcodes.
func NewZ80CPU() *z80.Z80 {
	return z80.NewZ80(&flatMemory{}, silentPorts{})
}

// Z80 returns the register-file description for the Z80 ISA: the six
// 16-bit register pairs plus the program counter and stack pointer,
// and their 8-bit halves where the Z80 exposes one (AF/BC/DE/HL, but
// not IX/IY/SP/PC). The layout is fixed by the instruction set, not
// by any particular CPU instance, so unlike AMD64 it takes no
// parameter; LiveRegisters reads the actual values out of a running
// remogatto/z80 core.
func Z80() *RegisterFile {
	pairs := []struct {
		pair, hi, lo string
	}{
		{"af", "a", "f"},
		{"bc", "b", "c"},
		{"de", "d", "e"},
		{"hl", "h", "l"},
	}
	var descs []Descriptor
	for i, p := range pairs {
		base := i * 16
		descs = append(descs,
			Descriptor{Name: p.pair, From: base, To: base + 15},
			Descriptor{Name: p.hi, From: base + 8, To: base + 15},
			Descriptor{Name: p.lo, From: base, To: base + 7},
		)
	}
	base := len(pairs) * 16
	descs = append(descs,
		Descriptor{Name: "ix", From: base, To: base + 15},
		Descriptor{Name: "iy", From: base + 16, To: base + 31},
		Descriptor{Name: "sp", From: base + 32, To: base + 47},
		Descriptor{Name: "pc", From: base + 48, To: base + 63},
	)
	return NewFromDescriptors(descs...)
}

// LiveValues is a snapshot of a running remogatto/z80 core's
// general-purpose registers, read through its own accessor methods
// and fields.
type LiveValues struct {
	AF, BC, DE, HL, IX, IY, SP, PC uint16
}

// LiveRegisters reads the current register contents out of a live
// remogatto/z80 CPU, the same accessors (A/F fields, BC()/DE()/HL()/
// IX()/IY()/SP()/PC() methods) used to snapshot CPU state for
// save-state and exit-code handling elsewhere in the corpus.
func LiveRegisters(cpu *z80.Z80) LiveValues {
	return LiveValues{
		AF: uint16(cpu.A)<<8 | uint16(cpu.F),
		BC: cpu.BC(),
		DE: cpu.DE(),
		HL: cpu.HL(),
		IX: cpu.IX(),
		IY: cpu.IY(),
		SP: cpu.SP(),
		PC: cpu.PC(),
	}
}
