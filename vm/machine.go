package vm

import "context"

// PCStart is the address execution begins at after reset; addresses below
// it are conventionally reserved for OS/trap code.
const PCStart uint16 = 0x3000

// Machine is one LC-3 virtual machine instance: memory, register file, and
// run state, with no package-level globals. Operations are methods on a
// *Machine value so multiple machines can run side by side, e.g. in
// parallel tests.
type Machine struct {
	Mem [MemSize]uint16
	Reg [numRegisters]uint16

	running  bool
	host     Host
	maxSteps uint64 // 0 = unlimited
	steps    uint64
	trace    func(pc, word uint16, inst Instruction)
}

// Option configures a Machine at construction time.
type Option func(*Machine)

// WithHost supplies the host I/O collaborator used for KBSR polling and
// TRAP routines. If omitted, the machine panics on the first access that
// needs one; a machine is not useful without a host.
func WithHost(h Host) Option {
	return func(m *Machine) { m.host = h }
}

// WithMaxSteps bounds the number of fetch/dispatch cycles Run will
// execute before returning ErrMaxStepsReached. Zero (the default) means
// unlimited, which is the production behavior; a finite bound exists only
// for tests so a malformed program cannot hang them.
func WithMaxSteps(n uint64) Option {
	return func(m *Machine) { m.maxSteps = n }
}

// WithTrace installs a callback invoked once per Step, after fetch and
// decode but before dispatch, with the pre-increment PC, the raw word,
// and its decoded view. Used by the CLI's -v flag; nil (the default)
// disables tracing entirely.
func WithTrace(fn func(pc, word uint16, inst Instruction)) Option {
	return func(m *Machine) { m.trace = fn }
}

// New returns a Machine reset to its initial state: zeroed memory and
// registers, COND=Z, PC=PCStart.
func New(opts ...Option) *Machine {
	m := &Machine{}
	for _, opt := range opts {
		opt(m)
	}
	m.reset()
	return m
}

func (m *Machine) reset() {
	m.Reg = [numRegisters]uint16{}
	m.SetCond(FlagZ)
	m.Set(RPC, PCStart)
	m.running = true
	m.steps = 0
}

// Running reports whether the machine has not yet executed a HALT.
func (m *Machine) Running() bool {
	return m.running
}

// Step fetches, decodes, and dispatches exactly one instruction. PC is
// always incremented exactly once, before the handler runs, so PC-relative
// offsets inside the handler are measured from the already-incremented PC.
func (m *Machine) Step() error {
	pc := m.Get(RPC)
	word := m.Read(pc)
	m.Set(RPC, pc+1)

	inst := Decode(word)
	if m.trace != nil {
		m.trace(pc, word, inst)
	}
	return m.execute(inst)
}

// Run drives Step until the machine halts, ctx is cancelled, or (if
// WithMaxSteps was given) the step budget is exhausted. It returns nil on
// a normal HALT, ErrInterrupted if ctx was cancelled first, or the error
// of the last failing Step.
func (m *Machine) Run(ctx context.Context) error {
	for m.running {
		select {
		case <-ctx.Done():
			return ErrInterrupted
		default:
		}

		if m.maxSteps != 0 && m.steps >= m.maxSteps {
			return ErrMaxStepsReached
		}
		m.steps++

		if err := m.Step(); err != nil {
			return err
		}
	}
	return nil
}
