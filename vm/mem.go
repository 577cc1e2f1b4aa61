package vm

// Memory-mapped register addresses. Any address other than these two is
// plain RAM.
const (
	KBSR uint16 = 0xFE00 // keyboard status register; bit 15 set => key ready
	KBDR uint16 = 0xFE02 // keyboard data register; low 8 bits are the char
)

// MemSize is the number of addressable words.
const MemSize = 1 << 16

// Read loads the word at addr. Reading KBSR is not a pure load: it polls
// the host for a ready key and publishes the result into KBSR/KBDR before
// returning, so that a program observing KBSR always sees a coherent
// status/data pair. Every other address, including KBDR itself, is a
// plain load.
func (m *Machine) Read(addr uint16) uint16 {
	if addr == KBSR {
		if b, ok := m.host.PollKey(); ok {
			m.Mem[KBSR] = 0x8000
			m.Mem[KBDR] = uint16(b)
		} else {
			m.Mem[KBSR] = 0
		}
	}
	return m.Mem[addr]
}

// Write stores word at addr unconditionally. Every 16-bit address is a
// valid location; writes never fault.
func (m *Machine) Write(addr uint16, word uint16) {
	m.Mem[addr] = word
}
