package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/google/gousb"

	"github.com/openomen/omenctl/internal/log"
	"github.com/openomen/omenctl/protocol"
	"github.com/openomen/omenctl/usbdev"
)

// Paint encodes the override pairs into the ten-report sequence and sends it
// to the keyboard.
type Paint struct {
	Pairs []string `arg:"" optional:"" help:"Alternating key-or-group name and RRGGBB hex color, e.g. 'pkeys ff0000 home 00ff00'"`

	VID      string        `name:"vid" help:"Vendor id of the target device, hex" default:"03f0" env:"OMENCTL_VID"`
	PID      string        `name:"pid" help:"Product id of the target device, hex" default:"1f41" env:"OMENCTL_PID"`
	Transfer string        `help:"Endpoint transfer type" enum:"interrupt,bulk" default:"interrupt" env:"OMENCTL_TRANSFER"`
	Timeout  time.Duration `help:"Per-report transfer timeout" default:"1s" env:"OMENCTL_TIMEOUT"`
	DryRun   bool          `help:"Encode and print the reports without touching the device"`
}

// Run is called by kong when the paint command is executed.
func (p *Paint) Run(logger *slog.Logger, raw log.RawLogger) error {
	overrides, err := protocol.ResolveOverrides(p.Pairs)
	if err != nil {
		var perr *protocol.ParseError
		if errors.As(err, &perr) {
			return fmt.Errorf("%w (run 'omenctl keys' to list key and group names)", err)
		}
		return err
	}
	reports := protocol.Encode(overrides)

	if p.DryRun {
		dump := log.NewRaw(os.Stdout)
		for i, r := range reports {
			dump.Log(i, r)
		}
		return nil
	}

	kind, err := usbdev.ParseTransferKind(p.Transfer)
	if err != nil {
		return err
	}
	vid, err := parseID(p.VID)
	if err != nil {
		return fmt.Errorf("invalid vendor id %q: %w", p.VID, err)
	}
	pid, err := parseID(p.PID)
	if err != nil {
		return fmt.Errorf("invalid product id %q: %w", p.PID, err)
	}

	usbCtx := gousb.NewContext()
	defer usbCtx.Close()

	dev, err := usbdev.Locate(usbCtx, vid, pid)
	if errors.Is(err, usbdev.ErrDeviceNotFound) {
		// The vendor tool exits silently here; surface the status instead,
		// but keep absence of the keyboard non-fatal.
		logger.Warn("no matching keyboard attached", "vid", vid, "pid", pid)
		return nil
	}
	if err != nil {
		return err
	}
	defer dev.Close()

	logger.Debug("keyboard located", "vid", vid, "pid", pid)
	sender := usbdev.NewSender(dev, kind, p.Timeout, logger, raw)
	return sender.Send(context.Background(), reports)
}

func parseID(s string) (gousb.ID, error) {
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, err
	}
	return gousb.ID(v), nil
}
