package gateway

import "errors"

var (
	// ErrForbidden is returned when the caller is neither the configured
	// transport endpoint (inbound) nor the configured admin (admin ops)
	ErrForbidden = errors.New("forbidden")

	// ErrNoTrustedRemote is returned when no trusted path is registered for
	// a chain, or the presented source path mismatches the registered one
	ErrNoTrustedRemote = errors.New("no trusted remote")

	// ErrMinGasLimitNotSet is returned when no gas floor is configured for a
	// (destination chain, message type) pair. Absence of a floor fails closed.
	ErrMinGasLimitNotSet = errors.New("min gas limit not set")

	// ErrGasLimitTooLow is returned when the adapter params carry a gas limit
	// below the configured floor plus the per-message extra
	ErrGasLimitTooLow = errors.New("gas limit too low")

	// ErrInvalidAdapterParams is returned when the adapter params buffer is
	// too short to contain a version tag and a gas limit field
	ErrInvalidAdapterParams = errors.New("invalid adapter params")

	// ErrInvalidMinGas is returned when registering a zero minimum gas value
	ErrInvalidMinGas = errors.New("invalid min gas")

	// ErrClosed is returned on operations against a closed gateway
	ErrClosed = errors.New("gateway closed")
)
