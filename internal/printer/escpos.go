package printer

import (
	"fmt"
	"io"

	"github.com/hennedo/escpos"
)

// PrintTestPage sends a short formatted test page through the adapter so an
// operator can confirm the right physical printer was picked.
func PrintTestPage(rw io.ReadWriter, label string) error {
	p := escpos.New(rw)

	p.Justify(escpos.JustifyCenter)
	p.Bold(true).Size(2, 2).Write("receiptd")
	p.LineFeed()
	p.Bold(false).Size(1, 1).Write("printer test page")
	p.LineFeed()
	p.LineFeed()

	p.Justify(escpos.JustifyLeft)
	if label != "" {
		p.Write("device: " + label)
		p.LineFeed()
	}
	p.Write("if you can read this, the transport works")
	p.LineFeed()

	if err := p.PrintAndCut(); err != nil {
		return fmt.Errorf("failed to print test page: %w", err)
	}
	return nil
}

// Real-time status request (DLE EOT n): n=1 asks for printer status, n=4 for
// roll paper sensor status. The printer answers each with a single byte out
// of band.
var (
	statusRequestPrinter = []byte{0x10, 0x04, 0x01}
	statusRequestPaper   = []byte{0x10, 0x04, 0x04}
)

// Status is a decoded real-time printer status byte.
type Status struct {
	Online   bool
	PaperOut bool
}

// QueryStatus polls the printer's real-time status over the adapter. It
// blocks until the printer answers, so callers should only use it on a
// transport that just accepted a write.
func QueryStatus(rw io.ReadWriter) (Status, error) {
	var st Status

	online, err := queryStatusByte(rw, statusRequestPrinter)
	if err != nil {
		return st, err
	}
	// Bit 3 set means offline
	st.Online = online&0x08 == 0

	paper, err := queryStatusByte(rw, statusRequestPaper)
	if err != nil {
		return st, err
	}
	// Bits 5-6 set mean the roll paper end sensor tripped
	st.PaperOut = paper&0x60 != 0

	return st, nil
}

func queryStatusByte(rw io.ReadWriter, req []byte) (byte, error) {
	if _, err := rw.Write(req); err != nil {
		return 0, fmt.Errorf("failed to send status request: %w", err)
	}
	var buf [1]byte
	if _, err := io.ReadFull(rw, buf[:]); err != nil {
		return 0, fmt.Errorf("failed to read status response: %w", err)
	}
	return buf[0], nil
}
