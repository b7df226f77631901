package gateway

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/lz-asia/layerzero-foundation/helper/hex"
)

const (
	// adapterParamsVersionLength is the size of the version/type tag
	// at the start of the adapter params buffer
	adapterParamsVersionLength = 2

	// adapterParamsGasLength is the size of the fixed width gas limit field
	// that follows the version tag
	adapterParamsGasLength = 32

	// adapterParamsMinLength is the minimum buffer size required to contain
	// a version tag plus a gas limit field
	adapterParamsMinLength = adapterParamsVersionLength + adapterParamsGasLength
)

// GasPolicyKey addresses a single gas floor entry
type GasPolicyKey struct {
	DstChainID  uint16
	MessageType uint16
}

// GasPolicy owns the mapping from (destination chain, message type) pairs to
// a minimum destination gas allowance, and validates caller supplied adapter
// params against it
type GasPolicy struct {
	logger hclog.Logger

	lock   sync.RWMutex
	floors map[GasPolicyKey]*big.Int

	// store is the optional write-through persistence
	store *GasStore

	// events receives a notification on every write
	events *eventManager
}

// NewGasPolicy creates the policy registry, loading any persisted floors from the store
func NewGasPolicy(logger hclog.Logger, store *GasStore, events *eventManager) (*GasPolicy, error) {
	policy := &GasPolicy{
		logger: logger.Named("gas-policy"),
		floors: map[GasPolicyKey]*big.Int{},
		store:  store,
		events: events,
	}

	if store != nil {
		floors, err := store.getAllMinGas()
		if err != nil {
			return nil, fmt.Errorf("failed to load gas floors: %w", err)
		}

		policy.floors = floors
	}

	return policy, nil
}

// SetMinGas overwrites the gas floor for the given (chain, type) pair.
// A zero floor would be indistinguishable from an unset one and is rejected.
func (p *GasPolicy) SetMinGas(dstChainID, messageType uint16, minGas *big.Int) error {
	if minGas == nil || minGas.Sign() <= 0 {
		return fmt.Errorf("%w: floor must be greater than zero", ErrInvalidMinGas)
	}

	p.lock.Lock()
	defer p.lock.Unlock()

	stored := new(big.Int).Set(minGas)

	if p.store != nil {
		if err := p.store.insertMinGas(dstChainID, messageType, stored); err != nil {
			return fmt.Errorf("failed to persist gas floor: %w", err)
		}
	}

	p.floors[GasPolicyKey{DstChainID: dstChainID, MessageType: messageType}] = stored

	p.logger.Info("gas floor set",
		"chain", dstChainID,
		"type", messageType,
		"min gas", hex.EncodeBig(stored),
	)

	if p.events != nil {
		p.events.fireEvent(&Event{
			Type:        EventMinGasSet,
			ChainID:     dstChainID,
			MessageType: messageType,
			Value:       stored.Bytes(),
		})
	}

	return nil
}

// MinGas returns a copy of the configured floor for the given pair,
// nil if the policy is not configured
func (p *GasPolicy) MinGas(dstChainID, messageType uint16) *big.Int {
	p.lock.RLock()
	defer p.lock.RUnlock()

	floor, ok := p.floors[GasPolicyKey{DstChainID: dstChainID, MessageType: messageType}]
	if !ok {
		return nil
	}

	return new(big.Int).Set(floor)
}

// RequireSufficient validates that the gas limit carried by the adapter
// params covers the configured floor plus the caller supplied extra.
// An absent floor fails closed with ErrMinGasLimitNotSet rather than
// permitting unlimited gas.
func (p *GasPolicy) RequireSufficient(
	dstChainID uint16,
	messageType uint16,
	adapterParams []byte,
	extraGas *big.Int,
) error {
	provided, err := DecodeGasLimit(adapterParams)
	if err != nil {
		return err
	}

	floor := p.MinGas(dstChainID, messageType)
	if floor == nil || floor.Sign() == 0 {
		return fmt.Errorf("%w: chain %d, type %d", ErrMinGasLimitNotSet, dstChainID, messageType)
	}

	required := new(big.Int).Set(floor)
	if extraGas != nil {
		required.Add(required, extraGas)
	}

	if provided.Cmp(required) < 0 {
		return fmt.Errorf("%w: provided %s, required %s", ErrGasLimitTooLow, provided, required)
	}

	return nil
}

// DecodeGasLimit reads the fixed width gas limit field from the adapter
// params buffer. The length precondition is checked before any read, and
// trailing bytes past the gas limit field are ignored.
func DecodeGasLimit(adapterParams []byte) (*big.Int, error) {
	if len(adapterParams) < adapterParamsMinLength {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d",
			ErrInvalidAdapterParams, len(adapterParams), adapterParamsMinLength)
	}

	return new(big.Int).SetBytes(
		adapterParams[adapterParamsVersionLength:adapterParamsMinLength],
	), nil
}
