package discovery

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tillworks/receiptd/internal/logging"
)

// StringField names a USB string descriptor of interest.
type StringField int

const (
	FieldManufacturer StringField = iota
	FieldProduct
	FieldSerial
)

// ReadStatus is the outcome of a bounded string-descriptor read. Timeouts and
// device errors are kept distinct from "read fine but empty" so callers (and
// tests) can tell "not queried" from "queried and failed".
type ReadStatus int

const (
	// ReadOK means the descriptor was read; Value may still be empty.
	ReadOK ReadStatus = iota

	// ReadTimedOut means the device did not answer within the bound.
	ReadTimedOut

	// ReadFailed means the device answered with an error or could not be
	// opened for the read.
	ReadFailed
)

// StringRead is the result of one string-descriptor read attempt.
type StringRead struct {
	Value  string
	Status ReadStatus
}

// BusDevice is one enumerated USB device. Descriptor fields are read during
// enumeration and always available; string reads go to the device and are
// best-effort.
type BusDevice interface {
	VendorID() uint16
	ProductID() uint16

	// HasPrinterInterface reports whether any interface descriptor in the
	// device's active configuration declares class 0x07 (Printer).
	HasPrinterInterface() bool

	// ReadString performs a bounded read of one string descriptor.
	ReadString(field StringField, timeout time.Duration) StringRead
}

// Bus is a USB bus access layer. A Devices error means the bus itself could
// not be enumerated and is fatal for the discovery pass.
type Bus interface {
	Devices(ctx context.Context) ([]BusDevice, error)
	Close() error
}

// scanUSBBus enumerates the bus and keeps every device that exposes a USB
// printer-class interface. String descriptors are read with a bounded timeout
// to fill the display name and serial; a read that times out or fails leaves
// the candidate at its class-based confidence and the scan moves on.
func scanUSBBus(ctx context.Context, bus Bus, timeout time.Duration) ([]Candidate, error) {
	devices, err := bus.Devices(ctx)
	if err != nil {
		return nil, fmt.Errorf("enumerating USB bus: %w", err)
	}

	var out []Candidate
	for _, dev := range devices {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if !dev.HasPrinterInterface() {
			continue
		}

		serial := dev.ReadString(FieldSerial, timeout)

		c := Candidate{
			Transport:  USBDevice(dev.VendorID(), dev.ProductID(), serial.Value),
			VendorID:   fmt.Sprintf("%04x", dev.VendorID()),
			ProductID:  fmt.Sprintf("%04x", dev.ProductID()),
			Serial:     serial.Value,
			Confidence: 80,
			Notes:      []string{"exposes USB printer-class interface (0x07)"},
		}

		mfg := dev.ReadString(FieldManufacturer, timeout)
		prod := dev.ReadString(FieldProduct, timeout)
		if mfg.Status == ReadOK || prod.Status == ReadOK {
			if name := joinName(mfg.Value, prod.Value); name != "" {
				c.DisplayName = name
				c.Raise(85, "read manufacturer/product string descriptors")
			}
		} else {
			// Partial-evidence result: the class match stands on its own.
			logging.Debug("string descriptor read failed",
				zap.String("device", c.Transport.String()),
				zap.Bool("timed_out", mfg.Status == ReadTimedOut || prod.Status == ReadTimedOut),
			)
		}

		out = append(out, c)
	}

	return out, nil
}

func joinName(vendor, model string) string {
	switch {
	case vendor == "":
		return model
	case model == "":
		return vendor
	default:
		return vendor + " " + model
	}
}
