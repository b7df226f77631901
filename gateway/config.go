package gateway

import (
	"errors"

	"github.com/hashicorp/go-multierror"

	"github.com/lz-asia/layerzero-foundation/types"
)

// Config holds the identities and storage location a Gateway is built from
type Config struct {
	// LocalAddress is this application's own address, appended when
	// constructing wire level identities
	LocalAddress types.Address

	// Endpoint is the transport identity. Inbound deliveries are accepted
	// from this caller only.
	Endpoint types.Address

	// Admin is the administrator identity. Mutating operations are accepted
	// from this caller only.
	Admin types.Address

	// DataDir is the directory holding the persistent registries.
	// Left empty, the gateway keeps its registries in memory only.
	DataDir string
}

func (c *Config) validate() error {
	var result error

	if c.LocalAddress == types.ZeroAddress {
		result = multierror.Append(result, errors.New("local address not set"))
	}

	if c.Endpoint == types.ZeroAddress {
		result = multierror.Append(result, errors.New("endpoint identity not set"))
	}

	if c.Admin == types.ZeroAddress {
		result = multierror.Append(result, errors.New("admin identity not set"))
	}

	return result
}
