package vm

// Register identifies one of the ten words in the register file. It is a
// plain enumeration with no knowledge of the machine it indexes; reads and
// writes go through Machine.Get/Set instead.
type Register int

// The eight general-purpose registers, the program counter, and the
// condition register. Order matches the 3-bit DR/SR/BaseR encoding so
// Register(word) is a valid conversion for decoded operand fields.
const (
	R0 Register = iota
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	RPC
	RCOND
	numRegisters
)

// Flag is one of the three condition-code masks. Exactly one is set in
// RCOND at all times.
type Flag uint16

const (
	FlagN Flag = 1 << 2 // negative
	FlagZ Flag = 1 << 1 // zero
	FlagP Flag = 1 << 0 // positive
)

// Get returns the current value of reg.
func (m *Machine) Get(reg Register) uint16 {
	return m.Reg[reg]
}

// Set stores word into reg. It does not touch COND; callers that need the
// COND-follows-last-write invariant call UpdateCondFrom afterwards.
func (m *Machine) Set(reg Register, word uint16) {
	m.Reg[reg] = word
}

// SetCond forces COND to flag directly, bypassing the value-derivation
// rule. Used only at reset, where the invariant (COND=Z) precedes any
// register write.
func (m *Machine) SetCond(flag Flag) {
	m.Reg[RCOND] = uint16(flag)
}

// UpdateCondFrom derives N/Z/P from the word currently held in reg and
// stores it into COND. Called at the end of every instruction whose
// definition ends "...and set the condition codes".
func (m *Machine) UpdateCondFrom(reg Register) {
	v := m.Reg[reg]
	switch {
	case v == 0:
		m.SetCond(FlagZ)
	case v>>15 == 1:
		m.SetCond(FlagN)
	default:
		m.SetCond(FlagP)
	}
}
