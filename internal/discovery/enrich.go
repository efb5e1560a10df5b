package discovery

import (
	"strings"

	"go.uber.org/zap"

	"github.com/tillworks/receiptd/internal/logging"
)

// Properties is one device's property record from the platform property
// service. Keys follow udev naming (ID_VENDOR, ID_MODEL_FROM_DATABASE, ...).
type Properties map[string]string

// PropertyIndex resolves a device node path to its property record. The index
// is built once per discovery pass by enumerating the property service
// directory, not queried per candidate. Absence of a record is normal.
type PropertyIndex interface {
	Lookup(devnode string) (Properties, bool)
}

// mapIndex is a PropertyIndex over a plain map. The linux backend builds one
// from udev; tests build them directly.
type mapIndex map[string]Properties

func (m mapIndex) Lookup(devnode string) (Properties, bool) {
	p, ok := m[devnode]
	return p, ok
}

// first returns the value of the first key present and non-empty.
func (p Properties) first(keys ...string) string {
	for _, k := range keys {
		if v := p[k]; v != "" {
			return v
		}
	}
	return ""
}

// enrich cross-references node-transport candidates against the property
// index, filling optional fields the scanner left empty and raising
// confidence floors for the evidence found. A field set by a scanner is never
// overwritten; confidence only ever goes up. Bus-enumerated candidates have
// no node path to look up and are skipped — the bus scanner already enriched
// them from string descriptors.
func enrich(cands []Candidate, index PropertyIndex) {
	if index == nil {
		return
	}

	for i := range cands {
		c := &cands[i]

		devnode, ok := c.Transport.Path()
		if !ok {
			continue
		}
		props, ok := index.Lookup(devnode)
		if !ok {
			continue
		}

		if c.DisplayName == "" {
			vendor := props.first("ID_VENDOR_FROM_DATABASE", "ID_VENDOR")
			model := props.first("ID_MODEL_FROM_DATABASE", "ID_MODEL")
			if name := joinName(vendor, model); name != "" {
				c.DisplayName = name
			}
		}
		if c.Serial == "" {
			c.Serial = props.first("ID_SERIAL_SHORT", "ID_SERIAL")
		}
		if c.VendorID == "" {
			c.VendorID = props["ID_VENDOR_ID"]
		}
		if c.ProductID == "" {
			c.ProductID = props["ID_MODEL_ID"]
		}

		// The interface list usually reads like ":0701:" for the printer
		// class/subclass pair.
		if ifaces := props["ID_USB_INTERFACES"]; strings.Contains(ifaces, "07") {
			c.Raise(90, "property service: interface list declares USB printer class (07)")
		}

		if kw := matchBrandKeyword(c.DisplayName); kw != "" {
			c.Raise(70, "display name contains keyword '"+kw+"'")
		}

		// A serial node that the property service could name at all is
		// USB-backed, which already rules out most bare UARTs.
		if c.Transport.Kind() == TransportSerialNode && c.DisplayName != "" {
			c.Raise(60, "USB-backed serial device with resolved display name")
		}

		logging.Debug("enriched candidate",
			zap.String("devnode", devnode),
			zap.String("display_name", c.DisplayName),
			zap.Int("confidence", c.Confidence),
		)
	}
}
