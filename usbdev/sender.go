package usbdev

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/gousb"

	"github.com/openomen/omenctl/internal/log"
)

// DefaultTimeout bounds a single report write.
const DefaultTimeout = time.Second

// Sender delivers encoded reports to an open device. The endpoint is
// re-resolved from the descriptor tree before every report; the device
// re-enumerates configuration state between writes, so nothing is cached.
type Sender struct {
	dev     *gousb.Device
	kind    TransferKind
	timeout time.Duration
	logger  *slog.Logger
	raw     log.RawLogger

	// write performs one full per-report cycle; overridable in tests.
	write func(ctx context.Context, index int, report []byte) error
}

// NewSender wraps an open device. A zero timeout falls back to DefaultTimeout.
func NewSender(dev *gousb.Device, kind TransferKind, timeout time.Duration, logger *slog.Logger, raw log.RawLogger) *Sender {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	s := &Sender{dev: dev, kind: kind, timeout: timeout, logger: logger, raw: raw}
	s.write = s.writeReport
	return s
}

// Send writes each report in order. A failed report is logged and skipped;
// the remaining reports are still attempted, since the hardware intermittently
// NAKs single transfers. Send only fails outright on a canceled context.
func (s *Sender) Send(ctx context.Context, reports [][]byte) error {
	for i, report := range reports {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.write(ctx, i, report); err != nil {
			s.logger.Error("report not delivered", "report", i, "error", err)
		}
	}
	return nil
}

// writeReport runs the full per-report cycle: resolve endpoint, activate
// configuration, claim interface, select alternate setting, write with a
// bounded timeout, release. Releasing the interface reattaches the kernel
// driver on every exit path.
func (s *Sender) writeReport(ctx context.Context, index int, report []byte) error {
	ep, err := FindWritable(s.dev.Desc, s.kind)
	if err != nil {
		return err
	}

	cfg, err := s.dev.Config(ep.Config)
	if err != nil {
		return &ConfigError{Endpoint: ep, Err: err}
	}
	defer cfg.Close()

	intf, err := cfg.Interface(ep.Interface, ep.Alt)
	if err != nil {
		return &ConfigError{Endpoint: ep, Err: err}
	}
	defer intf.Close()

	out, err := intf.OutEndpoint(ep.Number)
	if err != nil {
		return &ConfigError{Endpoint: ep, Err: err}
	}

	wctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	n, err := out.WriteContext(wctx, report)
	if err != nil {
		return &TransferError{Endpoint: ep, Err: err}
	}

	s.logger.Debug("report written", "report", index, "bytes", n, "endpoint", ep.String())
	s.raw.Log(index, report)
	return nil
}
