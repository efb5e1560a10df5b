package discovery

import (
	"context"
	"errors"
	"testing"
)

// fakeBackend scripts a scan result for provider tests.
type fakeBackend struct {
	cands []Candidate
	index PropertyIndex
	err   error
}

func (fakeBackend) Name() string { return "fake" }

func (b fakeBackend) Scan(context.Context, Options) ([]Candidate, PropertyIndex, error) {
	return b.cands, b.index, b.err
}

func TestProvider_DiscoverRunsFullPipeline(t *testing.T) {
	backend := fakeBackend{
		cands: []Candidate{
			{
				Transport:  SerialNode("/dev/ttyUSB0"),
				Confidence: 40,
				Notes:      []string{"found serial device node (/dev/ttyUSB*)"},
			},
			{
				Transport:  PrinterNode("/dev/usb/lp0"),
				Confidence: 80,
				Notes:      []string{"found in USB printer-class device namespace (/dev/usb/lp*)"},
			},
			{
				Transport:  PrinterNode("/dev/usb/lp0"),
				Confidence: 80,
				Notes:      []string{"duplicate sighting"},
			},
		},
		index: mapIndex{
			"/dev/usb/lp0": Properties{
				"ID_VENDOR_FROM_DATABASE": "Epson",
				"ID_MODEL":                "TM-T20",
				"ID_USB_INTERFACES":       ":0701:",
			},
		},
	}

	p := NewProviderWithBackend(backend, DefaultOptions())
	out, err := p.Discover(context.Background())
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(out) != 2 {
		t.Fatalf("got %d candidates, want 2 after dedup", len(out))
	}

	// Enriched printer node ranks first
	if out[0].Confidence != 90 || out[0].DisplayName != "Epson TM-T20" {
		t.Errorf("top candidate = %q/%d, want Epson TM-T20/90", out[0].DisplayName, out[0].Confidence)
	}
	if out[1].Confidence != 40 {
		t.Errorf("second candidate confidence = %d, want 40", out[1].Confidence)
	}

	for _, c := range out {
		if c.Confidence < 0 || c.Confidence > 100 {
			t.Errorf("confidence %d out of range", c.Confidence)
		}
	}
}

func TestProvider_BackendErrorPropagates(t *testing.T) {
	scanErr := errors.New("udev unavailable")
	p := NewProviderWithBackend(fakeBackend{err: scanErr}, DefaultOptions())

	out, err := p.Discover(context.Background())
	if !errors.Is(err, scanErr) {
		t.Errorf("Discover() error = %v, want wrapped scan error", err)
	}
	if out != nil {
		t.Errorf("Discover() returned a partial list alongside an error")
	}
}

// No printers is a result, not a failure.
func TestProvider_EmptyResultIsNotAnError(t *testing.T) {
	p := NewProviderWithBackend(nullBackend{}, DefaultOptions())

	out, err := p.Discover(context.Background())
	if err != nil {
		t.Fatalf("Discover() on null backend error = %v", err)
	}
	if len(out) != 0 {
		t.Errorf("null backend returned %d candidates", len(out))
	}
}

func TestOptions_StringReadTimeoutDefault(t *testing.T) {
	var o Options
	if o.stringReadTimeout() != DefaultStringReadTimeout {
		t.Errorf("zero timeout should default to %v", DefaultStringReadTimeout)
	}
}
