// Package faults defines the stable error taxonomy for device operations.
// Transport code wraps these sentinels exactly once at the session boundary;
// everything above matches with errors.Is and never inspects raw transport
// errors.
package faults

import "errors"

var (
	// ErrConnect marks a host that could not be reached at all
	ErrConnect = errors.New("connect error")

	// ErrAuth marks credentials the device rejected
	ErrAuth = errors.New("authentication error")

	// ErrTimeout marks a device that stopped answering within the deadline
	ErrTimeout = errors.New("timeout error")

	// ErrInvalidInput marks a malformed or empty command set
	ErrInvalidInput = errors.New("invalid input")
)
