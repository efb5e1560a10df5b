package discovery

import (
	"context"
	"errors"
	"time"

	"github.com/google/gousb"
	"go.uber.org/zap"

	"github.com/tillworks/receiptd/internal/logging"
)

// gousbBus adapts libusb (via gousb) to the Bus interface. Devices are opened
// during enumeration so their string descriptors can be read later; Close
// releases all of them along with the libusb context.
type gousbBus struct {
	ctx    *gousb.Context
	opened []*gousb.Device
}

// openUSBBus opens a libusb context for one discovery pass.
func openUSBBus() (Bus, error) {
	return &gousbBus{ctx: gousb.NewContext()}, nil
}

func (b *gousbBus) Devices(ctx context.Context) ([]BusDevice, error) {
	devs, err := b.ctx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		return true
	})
	b.opened = append(b.opened, devs...)

	if err != nil && len(devs) == 0 {
		// Nothing could be enumerated at all: the bus access layer itself is
		// broken, which aborts the pass.
		return nil, err
	}
	if err != nil {
		// Some devices refused to open. Those we did get are still usable.
		logging.Warn("some USB devices could not be opened", zap.Error(err))
	}

	out := make([]BusDevice, 0, len(devs))
	for _, d := range devs {
		out = append(out, &gousbDevice{dev: d})
	}
	return out, nil
}

func (b *gousbBus) Close() error {
	for _, d := range b.opened {
		_ = d.Close()
	}
	return b.ctx.Close()
}

type gousbDevice struct {
	dev *gousb.Device
}

func (d *gousbDevice) VendorID() uint16  { return uint16(d.dev.Desc.Vendor) }
func (d *gousbDevice) ProductID() uint16 { return uint16(d.dev.Desc.Product) }

func (d *gousbDevice) HasPrinterInterface() bool {
	cfgs := d.dev.Desc.Configs

	// Prefer the active configuration; fall back to all of them if the
	// device won't say which is active.
	if num, err := d.dev.ActiveConfigNum(); err == nil {
		if cfg, ok := cfgs[num]; ok {
			return configHasPrinterInterface(cfg)
		}
	}
	for _, cfg := range cfgs {
		if configHasPrinterInterface(cfg) {
			return true
		}
	}
	return false
}

func configHasPrinterInterface(cfg gousb.ConfigDesc) bool {
	for _, intf := range cfg.Interfaces {
		for _, alt := range intf.AltSettings {
			if alt.Class == gousb.ClassPrinter {
				return true
			}
		}
	}
	return false
}

func (d *gousbDevice) ReadString(field StringField, timeout time.Duration) StringRead {
	d.dev.ControlTimeout = timeout

	var (
		value string
		err   error
	)
	switch field {
	case FieldManufacturer:
		value, err = d.dev.Manufacturer()
	case FieldProduct:
		value, err = d.dev.Product()
	case FieldSerial:
		value, err = d.dev.SerialNumber()
	}

	switch {
	case err == nil:
		return StringRead{Value: value, Status: ReadOK}
	case errors.Is(err, gousb.ErrorTimeout):
		return StringRead{Status: ReadTimedOut}
	default:
		return StringRead{Status: ReadFailed}
	}
}
