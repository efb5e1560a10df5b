package discovery

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TransportKind discriminates how a candidate printer is reached.
type TransportKind int

const (
	// TransportPrinterNode is a USB printer-class device node created by the
	// kernel printer driver (e.g., /dev/usb/lp0)
	TransportPrinterNode TransportKind = iota

	// TransportSerialNode is a generic USB-serial or ACM device node
	// (e.g., /dev/ttyUSB0, /dev/ttyACM0)
	TransportSerialNode

	// TransportUSBDevice is a device reached only through USB bus enumeration,
	// identified by its vendor/product IDs and serial number
	TransportUSBDevice
)

// Transport is the locator for a candidate printer endpoint. Exactly one
// variant is populated; the fields are fixed at construction and never change.
type Transport struct {
	kind TransportKind

	// Path is set for node-based transports
	path string

	// VID/PID/Serial are set for bus-enumerated transports
	vid    uint16
	pid    uint16
	serial string
}

// PrinterNode returns a transport for a USB printer-class device node.
func PrinterNode(path string) Transport {
	return Transport{kind: TransportPrinterNode, path: path}
}

// SerialNode returns a transport for a generic serial device node.
func SerialNode(path string) Transport {
	return Transport{kind: TransportSerialNode, path: path}
}

// USBDevice returns a transport for a bus-enumerated USB device.
func USBDevice(vid, pid uint16, serial string) Transport {
	return Transport{kind: TransportUSBDevice, vid: vid, pid: pid, serial: serial}
}

// Kind returns the transport discriminant.
func (t Transport) Kind() TransportKind { return t.kind }

// String names the discriminant for logs and API payloads.
func (k TransportKind) String() string {
	switch k {
	case TransportPrinterNode:
		return "usb-printer-node"
	case TransportSerialNode:
		return "serial-node"
	case TransportUSBDevice:
		return "usb-device"
	default:
		return fmt.Sprintf("TransportKind(%d)", int(k))
	}
}

// Path returns the device node path and true for node-based transports, or
// "" and false for bus-enumerated transports.
func (t Transport) Path() (string, bool) {
	if t.kind == TransportUSBDevice {
		return "", false
	}
	return t.path, true
}

// String returns a human-readable locator.
func (t Transport) String() string {
	if t.kind == TransportUSBDevice {
		return fmt.Sprintf("usb %04x:%04x (serial %q)", t.vid, t.pid, t.serial)
	}
	return t.path
}

// MarshalJSON encodes the locator with its discriminant so API consumers can
// tell node paths from bus tuples.
func (t Transport) MarshalJSON() ([]byte, error) {
	if t.kind == TransportUSBDevice {
		return json.Marshal(struct {
			Kind   string `json:"kind"`
			VID    string `json:"vid"`
			PID    string `json:"pid"`
			Serial string `json:"serial,omitempty"`
		}{t.kind.String(), fmt.Sprintf("%04x", t.vid), fmt.Sprintf("%04x", t.pid), t.serial})
	}
	return json.Marshal(struct {
		Kind string `json:"kind"`
		Path string `json:"path"`
	}{t.kind.String(), t.path})
}

// DedupKey returns the canonical identity used to merge duplicate discoveries
// of the same physical endpoint: the node path for node-based transports, the
// vid/pid/serial tuple for bus-enumerated ones. A path-keyed and a bus-keyed
// sighting of the same physical device intentionally do not share a key.
func (t Transport) DedupKey() string {
	if t.kind == TransportUSBDevice {
		return fmt.Sprintf("usb:%04x:%04x:%s", t.vid, t.pid, t.serial)
	}
	return t.path
}

// Candidate is one possible printer found during a discovery pass.
//
// A candidate is created by exactly one scanner with a provisional confidence,
// may have its gaps filled and its confidence raised by the enricher, and is
// immutable once fusion has run. Nothing survives beyond a single pass.
type Candidate struct {
	Transport Transport

	// DisplayName is the resolved vendor/model text, if any
	DisplayName string

	// Serial is the device serial number, if known
	Serial string

	// VendorID and ProductID are 4-digit lowercase hex strings, if known
	VendorID  string
	ProductID string

	// Confidence estimates, 0-100, how likely this is a genuine receipt
	// printer. Only Raise may change it after construction.
	Confidence int

	// Notes records, in order, every piece of evidence that contributed to
	// this candidate. Append-only.
	Notes []string
}

// Raise lifts the confidence to at least floor and appends a note describing
// the evidence. It never lowers confidence; this is the only confidence
// mutation path.
func (c *Candidate) Raise(floor int, note string) {
	if floor > c.Confidence {
		c.Confidence = floor
	}
	c.Notes = append(c.Notes, note)
}

// Summary returns a one-line description for logs and CLI output.
func (c *Candidate) Summary() string {
	name := c.DisplayName
	if name == "" {
		name = "unknown device"
	}
	return fmt.Sprintf("%s at %s (confidence %d)", name, c.Transport, c.Confidence)
}

// Evidence is a (confidence, notes) pair independent of any transport. It
// exists so that the merge law used throughout discovery can be stated and
// tested on its own.
type Evidence struct {
	Confidence int
	Notes      []string
}

// Combine merges two pieces of evidence: the confidence is the maximum of the
// two and the notes are concatenated in argument order. Combine is associative
// and idempotent, which is what makes "apply every applicable floor, in any
// grouping" well defined.
func Combine(a, b Evidence) Evidence {
	conf := a.Confidence
	if b.Confidence > conf {
		conf = b.Confidence
	}
	notes := make([]string, 0, len(a.Notes)+len(b.Notes))
	notes = append(notes, a.Notes...)
	notes = append(notes, b.Notes...)
	return Evidence{Confidence: conf, Notes: notes}
}

// brandKeywords are vendor and product terms that strongly suggest a receipt
// or thermal printer. Matching is a case-insensitive substring check and only
// ever boosts confidence; it never gates a candidate out.
var brandKeywords = []string{
	"epson", "star", "bixolon", "citizen", "sewoo", "zjiang", "xprinter",
	"pos", "receipt", "thermal",
}

// matchBrandKeyword returns the first matching brand keyword in name, or ""
// if none match.
func matchBrandKeyword(name string) string {
	lower := strings.ToLower(name)
	for _, kw := range brandKeywords {
		if strings.Contains(lower, kw) {
			return kw
		}
	}
	return ""
}
