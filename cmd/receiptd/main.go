// Receiptd is a print-serving backend for locally attached receipt printers.
//
// It discovers candidate printers across the host's hardware namespaces and
// the USB bus, ranks them by confidence, and serves the result over a small
// HTTP API. The same discovery engine backs the CLI commands for detecting,
// test-printing and status-polling printers directly.
//
// Usage:
//
//	receiptd serve [flags]
//	receiptd detect [flags]
//	receiptd print --device /dev/usb/lp0
//	receiptd status --device /dev/usb/lp0
//
// See 'receiptd --help' for available options.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tillworks/receiptd/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "receiptd",
	Short: "Receipt printer discovery and printing backend",
	Long: `Receiptd locates locally attached receipt/label printers without manual
configuration and serves the ranked candidates to a print-serving frontend.

Discovery merges several imperfect evidence sources - device-node namespaces,
USB bus descriptors and the platform property database - into one ranked,
deduplicated candidate list. Confidence is a heuristic, not a handshake:
verify the chosen device with a test print.`,
	Version: version.Version,
}
