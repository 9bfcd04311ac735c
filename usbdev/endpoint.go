// Package usbdev binds the report protocol to real hardware: it locates the
// keyboard on the bus, resolves a writable endpoint from its descriptor tree
// and executes the report transfers.
package usbdev

import (
	"fmt"
	"maps"
	"slices"

	"github.com/google/gousb"
)

// TransferKind selects the endpoint transfer type used for report writes.
type TransferKind int

const (
	TransferInterrupt TransferKind = iota
	TransferBulk
)

// ParseTransferKind maps a CLI token to a TransferKind.
func ParseTransferKind(s string) (TransferKind, error) {
	switch s {
	case "interrupt":
		return TransferInterrupt, nil
	case "bulk":
		return TransferBulk, nil
	default:
		return 0, fmt.Errorf("unknown transfer kind %q", s)
	}
}

func (k TransferKind) String() string {
	switch k {
	case TransferInterrupt:
		return "interrupt"
	case TransferBulk:
		return "bulk"
	default:
		return fmt.Sprintf("TransferKind(%d)", int(k))
	}
}

// usbType maps a TransferKind to the gousb transfer type, rejecting
// unrecognized kinds instead of silently doing nothing.
func (k TransferKind) usbType() (gousb.TransferType, error) {
	switch k {
	case TransferInterrupt:
		return gousb.TransferTypeInterrupt, nil
	case TransferBulk:
		return gousb.TransferTypeBulk, nil
	default:
		return 0, fmt.Errorf("unknown transfer kind %d", int(k))
	}
}

// Endpoint is the minimal coordinate set needed to claim and address one
// writable endpoint: configuration, interface, alternate setting and the
// endpoint itself.
type Endpoint struct {
	Config    int
	Interface int
	Alt       int
	Number    int
	Address   gousb.EndpointAddress
}

func (e Endpoint) String() string {
	return fmt.Sprintf("cfg %d intf %d alt %d addr %s", e.Config, e.Interface, e.Alt, e.Address)
}

// FindWritable walks every configuration, interface, alternate setting and
// endpoint of a descriptor tree, in index order, and returns the first OUT
// endpoint of the requested transfer kind. The walk is deterministic; there
// is no scoring beyond first match.
func FindWritable(desc *gousb.DeviceDesc, kind TransferKind) (Endpoint, error) {
	tt, err := kind.usbType()
	if err != nil {
		return Endpoint{}, err
	}

	for _, cfgNum := range slices.Sorted(maps.Keys(desc.Configs)) {
		cfg := desc.Configs[cfgNum]
		for _, intf := range cfg.Interfaces {
			for _, alt := range intf.AltSettings {
				eps := slices.SortedFunc(maps.Values(alt.Endpoints),
					func(a, b gousb.EndpointDesc) int { return a.Number - b.Number })
				for _, ep := range eps {
					if ep.Direction == gousb.EndpointDirectionOut && ep.TransferType == tt {
						return Endpoint{
							Config:    cfg.Number,
							Interface: intf.Number,
							Alt:       alt.Alternate,
							Number:    ep.Number,
							Address:   ep.Address,
						}, nil
					}
				}
			}
		}
	}
	return Endpoint{}, ErrEndpointNotFound
}
