package host

import (
	"bytes"
	"errors"

	"github.com/sarchlab/lc3vm/vm"
)

var _ vm.Host = (*Fake)(nil)

// Fake is a deterministic, in-memory vm.Host used by tests. Keys queued
// via Feed are returned in order by both PollKey and ReadChar; all
// written output is captured in Output.
type Fake struct {
	keys   []byte
	Output bytes.Buffer

	// ReadErr, if set, is returned by ReadChar once the key queue is
	// exhausted, letting tests exercise the HostIO error path.
	ReadErr error
}

// NewFake returns a Fake with no queued keys.
func NewFake() *Fake {
	return &Fake{}
}

// Feed appends keys to the queue consumed by PollKey/ReadChar.
func (f *Fake) Feed(keys ...byte) {
	f.keys = append(f.keys, keys...)
}

// PollKey implements vm.Host: true only if a queued key remains.
func (f *Fake) PollKey() (byte, bool) {
	if len(f.keys) == 0 {
		return 0, false
	}
	b := f.keys[0]
	f.keys = f.keys[1:]
	return b, true
}

// ReadChar implements vm.Host, blocking conceptually but in practice just
// consuming the next queued key (or failing if the queue is empty).
func (f *Fake) ReadChar() (byte, error) {
	if len(f.keys) == 0 {
		if f.ReadErr != nil {
			return 0, f.ReadErr
		}
		return 0, errors.New("host: fake key queue exhausted")
	}
	b := f.keys[0]
	f.keys = f.keys[1:]
	return b, nil
}

// WriteChar implements vm.Host.
func (f *Fake) WriteChar(b byte) error {
	f.Output.WriteByte(b)
	return nil
}

// WriteString implements vm.Host.
func (f *Fake) WriteString(s string) error {
	f.Output.WriteString(s)
	return nil
}
