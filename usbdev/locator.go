package usbdev

import "github.com/google/gousb"

// Omen Sequencer vendor and product identifiers.
const (
	VendorHP      gousb.ID = 0x03f0
	ProductOmenKB gousb.ID = 0x1f41
)

// Locate scans the bus once for a device matching vid/pid and opens it. The
// scan fails open: enumeration errors, unreadable descriptors and failed
// opens all count as "not found" rather than aborting. The first device that
// opens wins; auto-detach is enabled on it so the kernel driver is released
// while an interface is claimed and restored when it is closed.
func Locate(ctx *gousb.Context, vid, pid gousb.ID) (*gousb.Device, error) {
	devs, _ := ctx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		return desc.Vendor == vid && desc.Product == pid
	})

	var found *gousb.Device
	for _, dev := range devs {
		if found == nil {
			if err := dev.SetAutoDetach(true); err == nil {
				found = dev
				continue
			}
		}
		_ = dev.Close()
	}
	if found == nil {
		return nil, ErrDeviceNotFound
	}
	return found, nil
}
