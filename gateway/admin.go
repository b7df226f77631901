package gateway

import (
	"fmt"
	"math/big"

	"github.com/lz-asia/layerzero-foundation/types"
)

// Admin operations take the caller identity as an explicit capability and
// compare it against the configured administrator. Queries are open;
// mutations are not.

func (g *Gateway) requireAdmin(caller types.Address) error {
	if caller != g.config.Admin {
		return fmt.Errorf("%w: caller %s is not the admin", ErrForbidden, caller)
	}

	return nil
}

// SetTrustedPath overwrites the trusted path for the given remote chain
func (g *Gateway) SetTrustedPath(caller types.Address, chainID uint16, path []byte) error {
	if err := g.requireAdmin(caller); err != nil {
		return err
	}

	return g.paths.SetTrustedPath(chainID, path)
}

// SetTrustedRemoteAddress registers the remote application address for the
// given chain, synthesizing the full path with the local address
func (g *Gateway) SetTrustedRemoteAddress(caller types.Address, chainID uint16, remoteAddress []byte) error {
	if err := g.requireAdmin(caller); err != nil {
		return err
	}

	return g.paths.SetTrustedRemoteAddress(chainID, remoteAddress)
}

// TrustedPath returns the registered path for the chain, nil if untrusted
func (g *Gateway) TrustedPath(chainID uint16) []byte {
	return g.paths.TrustedPath(chainID)
}

// SetMinGas overwrites the gas floor for the (chain, type) pair
func (g *Gateway) SetMinGas(caller types.Address, dstChainID, messageType uint16, minGas *big.Int) error {
	if err := g.requireAdmin(caller); err != nil {
		return err
	}

	return g.gas.SetMinGas(dstChainID, messageType, minGas)
}

// MinGas returns the configured gas floor, nil if the policy is not configured
func (g *Gateway) MinGas(dstChainID, messageType uint16) *big.Int {
	return g.gas.MinGas(dstChainID, messageType)
}

// SetPrecrime records the auditor address used by an external monitoring
// collaborator. The value is opaque to the gateway.
func (g *Gateway) SetPrecrime(caller types.Address, auditor types.Address) error {
	if err := g.requireAdmin(caller); err != nil {
		return err
	}

	g.precrimeLock.Lock()
	g.precrime = auditor
	g.precrimeLock.Unlock()

	g.logger.Info("precrime auditor set", "address", auditor)

	g.events.fireEvent(&Event{
		Type:  EventPrecrimeSet,
		Value: auditor.Bytes(),
	})

	return nil
}

// Precrime returns the recorded auditor address
func (g *Gateway) Precrime() types.Address {
	g.precrimeLock.RLock()
	defer g.precrimeLock.RUnlock()

	return g.precrime
}

// GetConfig forwards a configuration read to the transport verbatim
func (g *Gateway) GetConfig(version uint16, chainID uint16, configType uint64) ([]byte, error) {
	return g.transport.GetConfig(version, chainID, configType)
}

// SetConfig forwards a configuration write to the transport verbatim
func (g *Gateway) SetConfig(
	caller types.Address,
	version uint16,
	chainID uint16,
	configType uint64,
	config []byte,
) error {
	if err := g.requireAdmin(caller); err != nil {
		return err
	}

	return g.transport.SetConfig(version, chainID, configType, config)
}

// SetSendVersion forwards the outbound version selection to the transport
func (g *Gateway) SetSendVersion(caller types.Address, version uint16) error {
	if err := g.requireAdmin(caller); err != nil {
		return err
	}

	return g.transport.SetSendVersion(version)
}

// SetReceiveVersion forwards the inbound version selection to the transport
func (g *Gateway) SetReceiveVersion(caller types.Address, version uint16) error {
	if err := g.requireAdmin(caller); err != nil {
		return err
	}

	return g.transport.SetReceiveVersion(version)
}

// ForceResumeReceive asks the transport to unblock a stuck inbound channel
func (g *Gateway) ForceResumeReceive(caller types.Address, srcChainID uint16, srcAddress []byte) error {
	if err := g.requireAdmin(caller); err != nil {
		return err
	}

	return g.transport.ForceResumeReceive(srcChainID, srcAddress)
}
