package vm

import "errors"

// Sentinel errors returned by the machine and its collaborators.
var (
	// ErrImageUnreadable indicates the object file could not be opened or read.
	ErrImageUnreadable = errors.New("vm: image unreadable")

	// ErrInvalidTrapVect indicates a TRAP instruction used a vector outside
	// the recognized 0x20..0x25 range.
	ErrInvalidTrapVect = errors.New("vm: invalid trap vector")

	// ErrInterrupted indicates the run loop was stopped by a host interrupt
	// rather than a HALT.
	ErrInterrupted = errors.New("vm: interrupted")

	// ErrHostIO indicates a read or write of the host terminal failed.
	ErrHostIO = errors.New("vm: host I/O error")

	// ErrMaxStepsReached indicates WithMaxSteps bounded the run before the
	// program halted on its own. Used by tests only; the CLI, with or
	// without -v, leaves the step budget unlimited.
	ErrMaxStepsReached = errors.New("vm: max steps reached")
)
