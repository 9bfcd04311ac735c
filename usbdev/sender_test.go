package usbdev

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openomen/omenctl/internal/log"
)

func testSender() *Sender {
	return NewSender(nil, TransferInterrupt, time.Second, slog.New(slog.DiscardHandler), log.NewRaw(nil))
}

func TestSendContinuesPastFailedReports(t *testing.T) {
	s := testSender()
	var attempted []int
	s.write = func(ctx context.Context, index int, report []byte) error {
		attempted = append(attempted, index)
		switch index {
		case 2:
			return ErrEndpointNotFound
		case 5:
			return &ConfigError{Err: errors.New("claim failed")}
		case 7:
			return &TransferError{Err: errors.New("transfer timed out")}
		default:
			return nil
		}
	}

	reports := make([][]byte, 10)
	require.NoError(t, s.Send(context.Background(), reports))
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, attempted)
}

func TestSendAttemptsEveryReportOnce(t *testing.T) {
	s := testSender()
	var attempted []int
	s.write = func(ctx context.Context, index int, report []byte) error {
		attempted = append(attempted, index)
		return ErrEndpointNotFound
	}

	// Every report failing must still walk the whole sequence, no retries.
	require.NoError(t, s.Send(context.Background(), make([][]byte, 10)))
	assert.Len(t, attempted, 10)
}

func TestSendStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := testSender()
	attempted := 0
	s.write = func(ctx context.Context, index int, report []byte) error {
		attempted++
		if index == 3 {
			cancel()
		}
		return nil
	}

	err := s.Send(ctx, make([][]byte, 10))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 4, attempted)
}

func TestNewSenderDefaultTimeout(t *testing.T) {
	s := NewSender(nil, TransferInterrupt, 0, slog.New(slog.DiscardHandler), log.NewRaw(nil))
	assert.Equal(t, DefaultTimeout, s.timeout)
}
