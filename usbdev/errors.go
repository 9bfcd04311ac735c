package usbdev

import (
	"errors"
	"fmt"
)

// ErrDeviceNotFound is returned when no attached device matches the target
// vendor/product pair, or none of the matching devices could be opened.
var ErrDeviceNotFound = errors.New("no matching device found")

// ErrEndpointNotFound is returned when the descriptor tree holds no writable
// endpoint of the requested transfer kind.
var ErrEndpointNotFound = errors.New("no writable endpoint found")

// ConfigError reports a failure while activating the configuration, claiming
// the interface or selecting the alternate setting for a transfer.
type ConfigError struct {
	Endpoint Endpoint
	Err      error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("could not configure endpoint %s: %v", e.Endpoint, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// TransferError reports a failed or timed-out write on a configured endpoint.
type TransferError struct {
	Endpoint Endpoint
	Err      error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("could not write to endpoint %s: %v", e.Endpoint, e.Err)
}

func (e *TransferError) Unwrap() error { return e.Err }
