package printer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/tillworks/receiptd/internal/discovery"
)

func TestOpenTransport_BusTransportNotOpenable(t *testing.T) {
	_, err := OpenTransport(discovery.USBDevice(0x04b8, 0x0e28, "X7A001"))
	if !errors.Is(err, ErrNotOpenable) {
		t.Errorf("error = %v, want ErrNotOpenable", err)
	}
}

func TestOpenTransport_MissingNode(t *testing.T) {
	_, err := OpenTransport(discovery.PrinterNode("/dev/usb/lp99-does-not-exist"))
	if err == nil {
		t.Error("expected error opening a missing device node")
	}
}

// statusConn scripts the printer side of a real-time status exchange.
type statusConn struct {
	responses []byte
	writes    bytes.Buffer
}

func (c *statusConn) Write(p []byte) (int, error) {
	return c.writes.Write(p)
}

func (c *statusConn) Read(p []byte) (int, error) {
	if len(c.responses) == 0 {
		return 0, errors.New("no response scripted")
	}
	p[0] = c.responses[0]
	c.responses = c.responses[1:]
	return 1, nil
}

func TestQueryStatus(t *testing.T) {
	tests := []struct {
		name     string
		printer  byte
		paper    byte
		online   bool
		paperOut bool
	}{
		{"online with paper", 0x16, 0x12, true, false},
		{"offline", 0x1e, 0x12, false, false},
		{"paper out", 0x16, 0x72, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := &statusConn{responses: []byte{tt.printer, tt.paper}}

			st, err := QueryStatus(conn)
			if err != nil {
				t.Fatalf("QueryStatus() error = %v", err)
			}
			if st.Online != tt.online {
				t.Errorf("Online = %v, want %v", st.Online, tt.online)
			}
			if st.PaperOut != tt.paperOut {
				t.Errorf("PaperOut = %v, want %v", st.PaperOut, tt.paperOut)
			}

			// Both DLE EOT requests must have gone out
			sent := conn.writes.Bytes()
			if !bytes.Contains(sent, statusRequestPrinter) || !bytes.Contains(sent, statusRequestPaper) {
				t.Errorf("status requests not written: % x", sent)
			}
		})
	}
}

func TestPrintTestPage_WritesCutCommand(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintTestPage(&buf, "/dev/usb/lp0"); err != nil {
		t.Fatalf("PrintTestPage() error = %v", err)
	}

	out := buf.Bytes()
	if len(out) == 0 {
		t.Fatal("nothing was written")
	}
	if !bytes.Contains(out, []byte("receiptd")) {
		t.Error("test page missing banner text")
	}
	// GS V is the paper cut command
	if !bytes.Contains(out, []byte{0x1d, 0x56}) {
		t.Error("test page missing cut command")
	}
}
