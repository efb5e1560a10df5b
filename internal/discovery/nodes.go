package discovery

import (
	"fmt"
	"path/filepath"
)

// scanPrinterClassNodes enumerates device nodes in the OS's reserved
// printer-class namespace. The node existing at all is strong evidence: the
// kernel driver that created it already classified the device as a USB
// printer.
func scanPrinterClassNodes(pattern string) ([]Candidate, error) {
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("scanning printer-class namespace %q: %w", pattern, err)
	}

	var out []Candidate
	for _, p := range paths {
		out = append(out, Candidate{
			Transport:  PrinterNode(p),
			Confidence: 80,
			Notes:      []string{fmt.Sprintf("found in USB printer-class device namespace (%s)", pattern)},
		})
	}
	return out, nil
}

// scanSerialNodes enumerates generic USB-serial and ACM device nodes. These
// namespaces are shared by modems, dev boards and all sorts of adapters, so
// a bare match starts with low confidence.
func scanSerialNodes(patterns []string) ([]Candidate, error) {
	var out []Candidate
	for _, pattern := range patterns {
		paths, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("scanning serial namespace %q: %w", pattern, err)
		}
		for _, p := range paths {
			out = append(out, Candidate{
				Transport:  SerialNode(p),
				Confidence: 40,
				Notes:      []string{fmt.Sprintf("found serial device node (%s)", pattern)},
			})
		}
	}
	return out, nil
}
