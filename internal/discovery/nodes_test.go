package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestScanPrinterClassNodes(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "lp0"))
	touch(t, filepath.Join(dir, "lp1"))
	touch(t, filepath.Join(dir, "hiddev0")) // not a printer node

	out, err := scanPrinterClassNodes(filepath.Join(dir, "lp*"))
	if err != nil {
		t.Fatalf("scanPrinterClassNodes() error = %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d candidates, want 2", len(out))
	}

	for _, c := range out {
		if c.Transport.Kind() != TransportPrinterNode {
			t.Errorf("candidate kind = %v, want printer node", c.Transport.Kind())
		}
		if c.Confidence != 80 {
			t.Errorf("confidence = %d, want 80", c.Confidence)
		}
		if len(c.Notes) != 1 {
			t.Errorf("notes = %v, want exactly one scanner note", c.Notes)
		}
	}
}

func TestScanSerialNodes(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "ttyUSB0"))
	touch(t, filepath.Join(dir, "ttyACM0"))
	touch(t, filepath.Join(dir, "ttyS0")) // onboard UART, not matched

	patterns := []string{
		filepath.Join(dir, "ttyUSB*"),
		filepath.Join(dir, "ttyACM*"),
	}
	out, err := scanSerialNodes(patterns)
	if err != nil {
		t.Fatalf("scanSerialNodes() error = %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d candidates, want 2", len(out))
	}

	for _, c := range out {
		if c.Transport.Kind() != TransportSerialNode {
			t.Errorf("candidate kind = %v, want serial node", c.Transport.Kind())
		}
		if c.Confidence != 40 {
			t.Errorf("confidence = %d, want 40", c.Confidence)
		}
	}
}

func TestScanNodes_EmptyNamespace(t *testing.T) {
	dir := t.TempDir()

	out, err := scanPrinterClassNodes(filepath.Join(dir, "lp*"))
	if err != nil {
		t.Fatalf("scanPrinterClassNodes() error = %v", err)
	}
	if len(out) != 0 {
		t.Errorf("got %d candidates from empty namespace", len(out))
	}
}
