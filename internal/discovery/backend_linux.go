//go:build linux

package discovery

import (
	"context"
	"fmt"

	"github.com/jochenvg/go-udev"
	"go.uber.org/zap"

	"github.com/tillworks/receiptd/internal/logging"
)

// Linux printers show up in two namespaces: the usblp driver creates
// /dev/usb/lp* for printer-class devices, and USB-serial adapters land in
// /dev/ttyUSB* or /dev/ttyACM*.
const printerNodePattern = "/dev/usb/lp*"

var serialNodePatterns = []string{"/dev/ttyUSB*", "/dev/ttyACM*"}

func newPlatformBackend() Backend { return linuxBackend{} }

// linuxBackend scans device-node namespaces and hands back a udev property
// index for enrichment.
type linuxBackend struct{}

func (linuxBackend) Name() string { return "linux" }

func (linuxBackend) Scan(ctx context.Context, opts Options) ([]Candidate, PropertyIndex, error) {
	cands, err := scanPrinterClassNodes(printerNodePattern)
	if err != nil {
		return nil, nil, err
	}

	if opts.IncludeSerial {
		serial, err := scanSerialNodes(serialNodePatterns)
		if err != nil {
			return nil, nil, err
		}
		cands = append(cands, serial...)
	}

	index, err := buildUdevIndex()
	if err != nil {
		return nil, nil, fmt.Errorf("enumerating udev: %w", err)
	}

	logging.Debug("linux scan complete",
		zap.Int("candidates", len(cands)),
	)

	return cands, index, nil
}

// usefulIdentityKeys are the udev properties worth indexing a device for.
// Records with none of them cannot tell us anything a scanner did not
// already know.
var usefulIdentityKeys = []string{
	"ID_MODEL", "ID_MODEL_FROM_DATABASE",
	"ID_VENDOR", "ID_VENDOR_FROM_DATABASE",
	"ID_USB_INTERFACES",
}

// buildUdevIndex enumerates udev once and maps device node -> properties.
// Multiple subsystems are matched because distros vary in where printer and
// tty nodes are registered.
func buildUdevIndex() (PropertyIndex, error) {
	u := udev.Udev{}
	e := u.NewEnumerate()
	for _, subsystem := range []string{"usb", "tty", "usbmisc", "printer", "lp"} {
		if err := e.AddMatchSubsystem(subsystem); err != nil {
			return nil, err
		}
	}

	devices, err := e.Devices()
	if err != nil {
		return nil, err
	}

	index := make(mapIndex)
	for _, dev := range devices {
		node := dev.Devnode()
		if node == "" {
			continue
		}
		props := dev.Properties()
		if !hasUsefulIdentity(props) {
			continue
		}
		index[node] = Properties(props)
	}

	logging.Debug("udev index built", zap.Int("records", len(index)))
	return index, nil
}

func hasUsefulIdentity(props map[string]string) bool {
	for _, k := range usefulIdentityKeys {
		if props[k] != "" {
			return true
		}
	}
	return false
}
