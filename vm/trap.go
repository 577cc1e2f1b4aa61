package vm

import "fmt"

// Trap vectors recognized by this implementation. Any other vector yields
// ErrInvalidTrapVect, which is fatal.
const (
	TrapGETC  uint16 = 0x20
	TrapOUT   uint16 = 0x21
	TrapPUTS  uint16 = 0x22
	TrapIN    uint16 = 0x23
	TrapPUTSP uint16 = 0x24
	TrapHALT  uint16 = 0x25
)

// execTRAP saves return linkage into R7, then dispatches the service
// routine. Trap routines do not touch PC: execution resumes at the
// instruction following the TRAP once the routine returns.
func (m *Machine) execTRAP(inst Instruction) error {
	m.Set(R7, m.Get(RPC))

	switch inst.TrapVect {
	case TrapGETC:
		return m.trapGETC()
	case TrapOUT:
		return m.trapOUT()
	case TrapPUTS:
		return m.trapPUTS()
	case TrapIN:
		return m.trapIN()
	case TrapPUTSP:
		return m.trapPUTSP()
	case TrapHALT:
		return m.trapHALT()
	default:
		return fmt.Errorf("%w: 0x%02X", ErrInvalidTrapVect, inst.TrapVect)
	}
}

func (m *Machine) trapGETC() error {
	b, err := m.host.ReadChar()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrHostIO, err)
	}
	m.Set(R0, uint16(b))
	m.UpdateCondFrom(R0)
	return nil
}

func (m *Machine) trapOUT() error {
	if err := m.host.WriteChar(byte(m.Get(R0))); err != nil {
		return fmt.Errorf("%w: %v", ErrHostIO, err)
	}
	return nil
}

func (m *Machine) trapPUTS() error {
	addr := m.Get(R0)
	var out []byte
	for {
		c := m.Read(addr)
		if c == 0 {
			break
		}
		out = append(out, byte(c))
		addr++
	}
	if err := m.host.WriteString(string(out)); err != nil {
		return fmt.Errorf("%w: %v", ErrHostIO, err)
	}
	return nil
}

func (m *Machine) trapIN() error {
	if err := m.host.WriteString("Enter a character: "); err != nil {
		return fmt.Errorf("%w: %v", ErrHostIO, err)
	}
	b, err := m.host.ReadChar()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrHostIO, err)
	}
	if err := m.host.WriteChar(b); err != nil {
		return fmt.Errorf("%w: %v", ErrHostIO, err)
	}
	m.Set(R0, uint16(b))
	m.UpdateCondFrom(R0)
	return nil
}

func (m *Machine) trapPUTSP() error {
	addr := m.Get(R0)
	var out []byte
	for {
		w := m.Read(addr)
		if w == 0 {
			break
		}
		lo := byte(w & 0xFF)
		hi := byte(w >> 8)
		out = append(out, lo)
		if hi != 0 {
			out = append(out, hi)
		}
		addr++
	}
	if err := m.host.WriteString(string(out)); err != nil {
		return fmt.Errorf("%w: %v", ErrHostIO, err)
	}
	return nil
}

func (m *Machine) trapHALT() error {
	if err := m.host.WriteString("HALT\n"); err != nil {
		return fmt.Errorf("%w: %v", ErrHostIO, err)
	}
	m.running = false
	return nil
}
