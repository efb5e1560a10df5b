//go:build darwin

package discovery

import (
	"context"
	"fmt"
	"strings"

	"go.bug.st/serial/enumerator"
	"go.uber.org/zap"

	"github.com/tillworks/receiptd/internal/logging"
)

func newPlatformBackend() Backend { return darwinBackend{} }

// darwinBackend has no printer-class device namespace to glob, so it combines
// a serial-port enumeration with a full USB bus descriptor scan.
type darwinBackend struct{}

func (darwinBackend) Name() string { return "darwin" }

func (darwinBackend) Scan(ctx context.Context, opts Options) ([]Candidate, PropertyIndex, error) {
	var cands []Candidate

	if opts.IncludeSerial {
		serial, err := scanSerialPorts()
		if err != nil {
			return nil, nil, err
		}
		cands = append(cands, serial...)
	}

	bus, err := openUSBBus()
	if err != nil {
		return nil, nil, fmt.Errorf("opening USB bus: %w", err)
	}
	defer bus.Close()

	usb, err := scanUSBBus(ctx, bus, opts.stringReadTimeout())
	if err != nil {
		return nil, nil, err
	}
	cands = append(cands, usb...)

	logging.Debug("darwin scan complete", zap.Int("candidates", len(cands)))

	// No property service on this platform; the scanners carry all the
	// metadata themselves.
	return cands, nil, nil
}

// scanSerialPorts enumerates serial ports (typically /dev/cu.* here). The
// namespace is shared with every USB-serial gadget in existence, so a bare
// port is weak evidence; USB-backed ports with a resolved product name and
// brand keywords earn their floors immediately since there is no enricher to
// do it later.
func scanSerialPorts() ([]Candidate, error) {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, fmt.Errorf("enumerating serial ports: %w", err)
	}

	var out []Candidate
	for _, port := range ports {
		c := Candidate{
			Transport:  SerialNode(port.Name),
			Confidence: 35,
			Notes:      []string{fmt.Sprintf("found serial port (%s)", port.Name)},
		}

		if port.IsUSB {
			c.VendorID = strings.ToLower(port.VID)
			c.ProductID = strings.ToLower(port.PID)
			c.Serial = port.SerialNumber

			if name := strings.TrimSpace(port.Product); name != "" {
				c.DisplayName = name
				c.Raise(60, "USB-backed serial device with resolved display name")
			}
			if kw := matchBrandKeyword(c.DisplayName); kw != "" {
				c.Raise(70, "display name contains keyword '"+kw+"'")
			}
		}

		out = append(out, c)
	}
	return out, nil
}
