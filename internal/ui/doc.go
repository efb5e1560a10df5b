// Package ui renders discovery results for the terminal.
//
// It provides the styled candidate listing used by 'receiptd detect' and an
// interactive bubbletea picker ('receiptd detect --pick') that runs a
// discovery pass behind a spinner and lets the operator choose a candidate
// for a test print.
//
// Confidence scores are color coded: green at 80 and above (strong evidence,
// class-level matches), orange from 60 (plausible, named USB serial devices)
// and gray below that (bare serial nodes).
package ui
