// Package discovery locates locally attached receipt/label printers without
// manual configuration.
//
// # Discovery Process
//
// One discovery pass works as follows:
//  1. The platform backend runs its scanners sequentially. Each scanner
//     enumerates one evidence source (a device-node namespace or the USB bus)
//     and produces raw candidates with a provisional confidence.
//  2. The enricher cross-references node-based candidates against a platform
//     property index (udev on Linux), filling optional fields the scanner
//     left empty and raising confidence floors for the evidence found.
//  3. Fusion merges candidates that share a transport identity and
//     stable-sorts the result by confidence, highest first.
//
// # Confidence
//
// Confidence is a 0-100 heuristic estimate that a candidate is a genuine
// ESC/POS-class printer, not a protocol handshake. It only ever goes up:
// every adjustment is "raise to at least X" plus a note recording the
// evidence, so the note trail explains exactly why a candidate ranks where
// it does. The floors in use:
//
//	35-40  bare serial device node (namespace shared with non-printers)
//	60     USB-backed serial device with a resolved display name
//	70     display name matches a receipt-printer brand keyword
//	80     printer-class device node, or printer-class USB interface
//	85     bus-scanned device whose name descriptors were readable
//	90     property service confirms a printer-class interface
//
// # Known Limitation
//
// The same physical printer can surface once through a device-node scanner
// (keyed by path) and once through the bus scanner (keyed by vid/pid/serial).
// The two keys cannot be correlated without guessing, so both candidates are
// returned and the caller picks one.
//
// # Error Model
//
// A failure of an enumeration API (glob, udev, libusb) aborts the pass and
// surfaces to the caller. A failure to read one device's string descriptors
// only degrades that device's candidate; the pass continues. An unsupported
// host platform yields an empty list, which is not an error.
//
// # Thread Safety
//
// Discovery is a synchronous, stateless, read-only pass with no cache and no
// cross-call state. Concurrent passes are safe; each pays the full
// enumeration cost.
package discovery
