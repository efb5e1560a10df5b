package discovery

import (
	"reflect"
	"testing"
)

func TestTransport_DedupKey(t *testing.T) {
	tests := []struct {
		name      string
		transport Transport
		expected  string
	}{
		{
			name:      "printer node keyed by path",
			transport: PrinterNode("/dev/usb/lp0"),
			expected:  "/dev/usb/lp0",
		},
		{
			name:      "serial node keyed by path",
			transport: SerialNode("/dev/ttyUSB3"),
			expected:  "/dev/ttyUSB3",
		},
		{
			name:      "bus device keyed by vid/pid/serial",
			transport: USBDevice(0x04b8, 0x0e28, "X7A001"),
			expected:  "usb:04b8:0e28:X7A001",
		},
		{
			name:      "bus device without serial",
			transport: USBDevice(0x04b8, 0x0e28, ""),
			expected:  "usb:04b8:0e28:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.transport.DedupKey(); got != tt.expected {
				t.Errorf("DedupKey() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestTransport_Path(t *testing.T) {
	if _, ok := USBDevice(1, 2, "s").Path(); ok {
		t.Error("bus transport should not expose a node path")
	}
	if p, ok := PrinterNode("/dev/usb/lp1").Path(); !ok || p != "/dev/usb/lp1" {
		t.Errorf("Path() = %q, %v, want /dev/usb/lp1, true", p, ok)
	}
}

func TestCandidate_Raise(t *testing.T) {
	c := Candidate{Confidence: 80, Notes: []string{"initial"}}

	c.Raise(60, "weaker evidence")
	if c.Confidence != 80 {
		t.Errorf("Raise lowered confidence to %d", c.Confidence)
	}

	c.Raise(90, "stronger evidence")
	if c.Confidence != 90 {
		t.Errorf("Raise to 90 gave confidence %d", c.Confidence)
	}

	// Notes are appended for every piece of evidence, raising or not
	expected := []string{"initial", "weaker evidence", "stronger evidence"}
	if !reflect.DeepEqual(c.Notes, expected) {
		t.Errorf("Notes = %v, want %v", c.Notes, expected)
	}
}

func TestCombine(t *testing.T) {
	a := Evidence{Confidence: 40, Notes: []string{"a"}}
	b := Evidence{Confidence: 80, Notes: []string{"b"}}
	c := Evidence{Confidence: 60, Notes: []string{"c"}}

	got := Combine(a, b)
	if got.Confidence != 80 {
		t.Errorf("Combine confidence = %d, want 80", got.Confidence)
	}
	if !reflect.DeepEqual(got.Notes, []string{"a", "b"}) {
		t.Errorf("Combine notes = %v, want [a b]", got.Notes)
	}

	// Associativity: (a+b)+c == a+(b+c)
	left := Combine(Combine(a, b), c)
	right := Combine(a, Combine(b, c))
	if !reflect.DeepEqual(left, right) {
		t.Errorf("Combine not associative: %v vs %v", left, right)
	}

	// Idempotence on confidence: combining evidence with itself never
	// inflates the estimate
	self := Combine(a, a)
	if self.Confidence != a.Confidence {
		t.Errorf("Combine(a, a).Confidence = %d, want %d", self.Confidence, a.Confidence)
	}
}

func TestMatchBrandKeyword(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"epson model", "Epson TM-T20", "epson"},
		{"case insensitive", "BIXOLON SRP-350", "bixolon"},
		{"substring pos", "SomePOS Terminal", "pos"},
		{"generic thermal", "58mm Thermal Printer", "thermal"},
		{"no match", "Arduino Uno", ""},
		{"empty name", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchBrandKeyword(tt.input); got != tt.expected {
				t.Errorf("matchBrandKeyword(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
