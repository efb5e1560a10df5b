// Package server exposes receiptd's HTTP API.
//
// The API is a thin layer over discovery and the printer transport:
//
//	GET  /health          liveness, including a best-effort database probe
//	GET  /api/printers    run one discovery pass, return the ranked candidates
//	POST /api/print/test  send a test page to an explicit device node
//
// A discovery failure (the enumeration layer itself broke) returns 502 with
// "could not enumerate printers on this host". An empty result returns 200
// with "no printers found" - the two are deliberately distinct.
//
// Discovery blocks on hardware I/O; it runs on the request goroutine, which
// is fine for an API of this size. The server holds no discovery state
// between requests.
package server
