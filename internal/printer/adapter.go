package printer

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tillworks/receiptd/internal/discovery"
)

// ErrNotOpenable is returned for transports that carry no device node path.
// A bus-enumerated candidate identifies a device but not a byte stream; on
// hosts with a printer-class namespace the same device also surfaces as a
// node candidate, which is the one to print through.
var ErrNotOpenable = errors.New("transport has no openable device node")

// Adapter is a byte-stream connection to a printer. The protocol layer that
// writes ESC/POS through it never sees discovery confidence or notes.
type Adapter interface {
	io.ReadWriter
	Close() error
}

// fileAdapter talks to a device node through a plain file handle. Both
// printer-class nodes and serial nodes accept raw writes this way.
type fileAdapter struct {
	f *os.File
}

func (a *fileAdapter) Read(p []byte) (int, error)  { return a.f.Read(p) }
func (a *fileAdapter) Write(p []byte) (int, error) { return a.f.Write(p) }
func (a *fileAdapter) Close() error                { return a.f.Close() }

// OpenNode opens a device node for read/write printer traffic.
func OpenNode(path string) (Adapter, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open printer node %s: %w", path, err)
	}
	return &fileAdapter{f: f}, nil
}

// OpenTransport opens a byte-stream connection to a discovered candidate's
// transport locator.
func OpenTransport(t discovery.Transport) (Adapter, error) {
	path, ok := t.Path()
	if !ok {
		return nil, fmt.Errorf("%s: %w", t, ErrNotOpenable)
	}
	return OpenNode(path)
}
