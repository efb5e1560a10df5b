// Package printer connects discovered candidates to the ESC/POS protocol
// layer.
//
// The discovery side of receiptd hands over a transport locator; this package
// turns it into a byte stream (a device-node file handle) and drives the
// external ESC/POS library over it for the two operations the CLI and API
// expose: printing a test page and polling real-time printer status.
//
// Bus-enumerated transports carry no device node and cannot be opened
// directly; OpenTransport returns ErrNotOpenable for those. This mirrors the
// documented discovery limitation - the same physical printer usually also
// appears as a node candidate, and that one is printable.
package printer
