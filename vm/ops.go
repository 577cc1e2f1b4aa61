package vm

// execute dispatches a decoded instruction to its handler. PC has already
// been incremented past the fetched word, so every "PC + offset" below
// uses that post-increment value.
func (m *Machine) execute(inst Instruction) error {
	switch inst.Op {
	case OpADD:
		m.execADD(inst)
	case OpAND:
		m.execAND(inst)
	case OpNOT:
		m.execNOT(inst)
	case OpBR:
		m.execBR(inst)
	case OpJMP:
		m.execJMP(inst)
	case OpJSR:
		m.execJSR(inst)
	case OpLD:
		m.execLD(inst)
	case OpLDI:
		m.execLDI(inst)
	case OpLDR:
		m.execLDR(inst)
	case OpLEA:
		m.execLEA(inst)
	case OpST:
		m.execST(inst)
	case OpSTI:
		m.execSTI(inst)
	case OpSTR:
		m.execSTR(inst)
	case OpRTI, OpRES:
		// Intentionally inert: no supervisor mode, no reserved-opcode
		// fault. Executing either is a documented no-op.
	case OpTRAP:
		return m.execTRAP(inst)
	}
	return nil
}

func (m *Machine) execADD(inst Instruction) {
	a := m.Get(inst.SR1)
	var b uint16
	if inst.ImmMode {
		b = inst.Imm5
	} else {
		b = m.Get(inst.SR2)
	}
	m.Set(inst.DR, a+b) // wraps modulo 2^16
	m.UpdateCondFrom(inst.DR)
}

func (m *Machine) execAND(inst Instruction) {
	a := m.Get(inst.SR1)
	var b uint16
	if inst.ImmMode {
		b = inst.Imm5
	} else {
		b = m.Get(inst.SR2)
	}
	m.Set(inst.DR, a&b)
	m.UpdateCondFrom(inst.DR)
}

func (m *Machine) execNOT(inst Instruction) {
	m.Set(inst.DR, ^m.Get(inst.SR1))
	m.UpdateCondFrom(inst.DR)
}

func (m *Machine) execBR(inst Instruction) {
	if inst.CondMask&m.Get(RCOND) != 0 {
		m.Set(RPC, m.Get(RPC)+inst.Offset9)
	}
}

func (m *Machine) execJMP(inst Instruction) {
	// BaseR == R7 is the architectural RET; no special-casing needed since
	// it is simply a jump through whatever R7 holds.
	m.Set(RPC, m.Get(inst.SR1))
}

func (m *Machine) execJSR(inst Instruction) {
	m.Set(R7, m.Get(RPC)) // return linkage, captured post-increment
	if inst.JSRMode {
		m.Set(RPC, m.Get(RPC)+inst.Offset11)
	} else {
		m.Set(RPC, m.Get(inst.SR1))
	}
}

func (m *Machine) execLD(inst Instruction) {
	addr := m.Get(RPC) + inst.Offset9
	m.Set(inst.DR, m.Read(addr))
	m.UpdateCondFrom(inst.DR)
}

func (m *Machine) execLDI(inst Instruction) {
	addr := m.Get(RPC) + inst.Offset9
	m.Set(inst.DR, m.Read(m.Read(addr)))
	m.UpdateCondFrom(inst.DR)
}

func (m *Machine) execLDR(inst Instruction) {
	addr := m.Get(inst.SR1) + inst.Offset6
	m.Set(inst.DR, m.Read(addr))
	m.UpdateCondFrom(inst.DR)
}

func (m *Machine) execLEA(inst Instruction) {
	// This port updates COND after LEA, matching the reference
	// implementation rather than the 2019 LC-3 ISA revision, which
	// dropped the update.
	m.Set(inst.DR, m.Get(RPC)+inst.Offset9)
	m.UpdateCondFrom(inst.DR)
}

func (m *Machine) execST(inst Instruction) {
	addr := m.Get(RPC) + inst.Offset9
	m.Write(addr, m.Get(inst.DR))
}

func (m *Machine) execSTI(inst Instruction) {
	addr := m.Get(RPC) + inst.Offset9
	m.Write(m.Read(addr), m.Get(inst.DR))
}

func (m *Machine) execSTR(inst Instruction) {
	addr := m.Get(inst.SR1) + inst.Offset6
	m.Write(addr, m.Get(inst.DR))
}
