package gateway

import (
	"fmt"
	"math/big"
	"sync"
	"sync/atomic"

	"github.com/armon/go-metrics"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"

	"github.com/lz-asia/layerzero-foundation/types"
)

// Transport is the external endpoint that physically relays messages across
// chains. Delivery, retry and fee accounting are its sole responsibility.
type Transport interface {
	// Dispatch hands a validated outbound message to the transport
	Dispatch(
		dstChainID uint16,
		destination []byte,
		payload []byte,
		refundAddress types.Address,
		zroPaymentAddress types.Address,
		adapterParams []byte,
		nativeFee *big.Int,
	) error

	// GetConfig reads a transport configuration blob
	GetConfig(version uint16, chainID uint16, configType uint64) ([]byte, error)

	// SetConfig writes a transport configuration blob
	SetConfig(version uint16, chainID uint16, configType uint64, config []byte) error

	// SetSendVersion selects the transport's outbound messaging version
	SetSendVersion(version uint16) error

	// SetReceiveVersion selects the transport's inbound messaging version
	SetReceiveVersion(version uint16) error

	// ForceResumeReceive unblocks a stuck inbound channel on the transport
	ForceResumeReceive(srcChainID uint16, srcAddress []byte) error
}

// Receiver is the application hook invoked with every authenticated inbound
// message, exactly once per successful Receive, after verification and never
// before. Ordering and blocking semantics are the implementation's contract.
type Receiver interface {
	OnReceive(srcChainID uint16, srcAddress []byte, nonce uint64, payload []byte) error
}

// Gateway is the trust boundary between a local application and the
// cross-chain transport. It verifies inbound sender authenticity before
// forwarding to the application hook, and gates outbound dispatch on a
// registered trusted path. Send and Receive never mutate the registries.
type Gateway struct {
	logger hclog.Logger
	config *Config

	transport Transport
	receiver  Receiver

	paths *PathRegistry
	gas   *GasPolicy

	events *eventManager
	state  *State

	closed atomic.Bool

	// precrime is the opaque auditor address, recorded for off-path
	// monitoring and never interpreted locally
	precrimeLock sync.RWMutex
	precrime     types.Address
}

// NewGateway wires the registries, persistence and event plumbing around the
// given transport and receive hook
func NewGateway(
	logger hclog.Logger,
	config *Config,
	transport Transport,
	receiver Receiver,
) (*Gateway, error) {
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid gateway config: %w", err)
	}

	if transport == nil {
		return nil, fmt.Errorf("invalid gateway config: no transport")
	}

	if receiver == nil {
		return nil, fmt.Errorf("invalid gateway config: no receive hook")
	}

	gatewayLogger := logger.Named("gateway")

	var (
		state     *State
		pathStore *PathStore
		gasStore  *GasStore
	)

	if config.DataDir != "" {
		var err error

		state, err = NewState(config.DataDir, gatewayLogger)
		if err != nil {
			return nil, err
		}

		pathStore = state.PathStore
		gasStore = state.GasStore
	}

	events := newEventManager(gatewayLogger)

	paths, err := NewPathRegistry(gatewayLogger, config.LocalAddress, pathStore, events)
	if err != nil {
		return nil, err
	}

	gas, err := NewGasPolicy(gatewayLogger, gasStore, events)
	if err != nil {
		return nil, err
	}

	return &Gateway{
		logger:    gatewayLogger,
		config:    config,
		transport: transport,
		receiver:  receiver,
		paths:     paths,
		gas:       gas,
		events:    events,
		state:     state,
	}, nil
}

// Close releases the event subscriptions and the state store. Further
// Receive and Send calls fail with ErrClosed. Closing twice is a no-op.
func (g *Gateway) Close() error {
	if !g.closed.CompareAndSwap(false, true) {
		return nil
	}

	var result error

	g.events.close()

	if g.state != nil {
		if err := g.state.Close(); err != nil {
			result = multierror.Append(result, err)
		}
	}

	return result
}

// PathRegistry exposes the trusted path registry for read access
func (g *Gateway) PathRegistry() *PathRegistry {
	return g.paths
}

// GasPolicy exposes the gas floor registry for read access
func (g *Gateway) GasPolicy() *GasPolicy {
	return g.gas
}

// LocalAddress returns this application's own address
func (g *Gateway) LocalAddress() types.Address {
	return g.config.LocalAddress
}

// Subscribe registers a listener for configuration change events.
// An empty filter subscribes to every event type.
func (g *Gateway) Subscribe(eventTypes []EventType) *SubscribeResult {
	return g.events.subscribe(eventTypes)
}

// Unsubscribe cancels a change event subscription
func (g *Gateway) Unsubscribe(id string) {
	g.events.cancelSubscription(id)
}

// Receive is the inbound entry point, callable by the transport identity
// only. The source path is verified against the registry before the payload
// is forwarded, unmodified, to the application hook. A rejected message is
// never partially processed.
func (g *Gateway) Receive(
	caller types.Address,
	srcChainID uint16,
	srcAddress []byte,
	nonce uint64,
	payload []byte,
) error {
	if g.closed.Load() {
		return ErrClosed
	}

	if caller != g.config.Endpoint {
		metrics.IncrCounter([]string{gatewayMetrics, "inbound_forbidden"}, 1)

		return fmt.Errorf("%w: inbound caller %s is not the transport", ErrForbidden, caller)
	}

	if !g.paths.Verify(srcChainID, srcAddress) {
		metrics.IncrCounter([]string{gatewayMetrics, "inbound_untrusted"}, 1)

		g.logger.Warn("dropped inbound message from untrusted source",
			"chain", srcChainID,
			"source", types.HexBytes(srcAddress),
			"nonce", nonce,
		)

		return fmt.Errorf("%w: chain %d", ErrNoTrustedRemote, srcChainID)
	}

	metrics.IncrCounter([]string{gatewayMetrics, "inbound_delivered"}, 1)

	g.logger.Debug("delivering inbound message",
		"chain", srcChainID,
		"nonce", nonce,
		"payload bytes", len(payload),
	)

	return g.receiver.OnReceive(srcChainID, srcAddress, nonce, payload)
}

// Send validates the destination chain against the trusted path registry and
// hands the payload to the transport. The wire level destination identity is
// the destination address concatenated with the local application address,
// mirroring the inbound verification shape.
//
// Gas floor enforcement is a separate precondition: call sites that want it
// invoke GasPolicy().RequireSufficient before Send. Send does not fuse it in,
// since some send paths intentionally bypass per-type gas floors.
func (g *Gateway) Send(
	dstChainID uint16,
	dstAddress []byte,
	payload []byte,
	refundAddress types.Address,
	zroPaymentAddress types.Address,
	adapterParams []byte,
	nativeFee *big.Int,
) error {
	if g.closed.Load() {
		return ErrClosed
	}

	if _, err := g.paths.RequireTrusted(dstChainID); err != nil {
		metrics.IncrCounter([]string{gatewayMetrics, "outbound_gated"}, 1)

		return err
	}

	destination := make([]byte, 0, len(dstAddress)+types.AddressLength)
	destination = append(destination, dstAddress...)
	destination = append(destination, g.config.LocalAddress.Bytes()...)

	g.logger.Debug("dispatching outbound message",
		"chain", dstChainID,
		"destination", types.HexBytes(destination),
		"payload bytes", len(payload),
	)

	if err := g.transport.Dispatch(
		dstChainID,
		destination,
		payload,
		refundAddress,
		zroPaymentAddress,
		adapterParams,
		nativeFee,
	); err != nil {
		return fmt.Errorf("transport dispatch failed: %w", err)
	}

	metrics.IncrCounter([]string{gatewayMetrics, "outbound_dispatched"}, 1)

	return nil
}

const gatewayMetrics = "gateway"
