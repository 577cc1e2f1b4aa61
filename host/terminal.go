// Package host provides the external I/O collaborators the vm core
// requires: a real terminal implementation and a deterministic fake used
// by tests.
package host

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/sarchlab/lc3vm/vm"
)

var _ vm.Host = (*Terminal)(nil)

// Terminal is the real vm.Host implementation, backed by the process's
// stdin/stdout. Non-blocking key polling is implemented with a background
// reader goroutine feeding a buffered channel, since a raw terminal fd
// otherwise only offers blocking reads.
type Terminal struct {
	in     *os.File
	out    io.Writer
	reader *bufio.Reader

	keys chan byte
}

// NewTerminal constructs a Terminal over the given input file and output
// writer. Callers must call EnableRawMode before running a machine and
// invoke the returned restore function on every exit path.
func NewTerminal(in *os.File, out io.Writer) *Terminal {
	t := &Terminal{
		in:     in,
		out:    out,
		reader: bufio.NewReader(in),
		keys:   make(chan byte, 1),
	}
	go t.pump()
	return t
}

// pump continuously reads single bytes from stdin and forwards them to
// the keys channel, giving PollKey something to check without blocking.
func (t *Terminal) pump() {
	for {
		b, err := t.reader.ReadByte()
		if err != nil {
			close(t.keys)
			return
		}
		t.keys <- b
	}
}

// EnableRawMode disables canonical mode and echo on the terminal and
// returns a function that restores the prior mode. It is safe to defer
// the returned function unconditionally.
func EnableRawMode(fd int) (restore func() error, err error) {
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("vm: enabling raw mode: %w", err)
	}
	return func() error {
		return term.Restore(fd, oldState)
	}, nil
}

// PollKey implements vm.Host. It never blocks: if the background reader
// has not yet delivered a byte, it reports no key ready.
func (t *Terminal) PollKey() (byte, bool) {
	select {
	case b, ok := <-t.keys:
		if !ok {
			return 0, false
		}
		return b, true
	default:
		return 0, false
	}
}

// ReadChar implements vm.Host, blocking until a byte is available.
func (t *Terminal) ReadChar() (byte, error) {
	b, ok := <-t.keys
	if !ok {
		return 0, io.EOF
	}
	return b, nil
}

// WriteChar implements vm.Host.
func (t *Terminal) WriteChar(b byte) error {
	_, err := t.out.Write([]byte{b})
	return err
}

// WriteString implements vm.Host.
func (t *Terminal) WriteString(s string) error {
	_, err := io.WriteString(t.out, s)
	return err
}
