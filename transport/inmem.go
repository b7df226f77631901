package transport

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/lz-asia/layerzero-foundation/gateway"
	"github.com/lz-asia/layerzero-foundation/types"
)

type route struct {
	srcChainID uint16
	dstChainID uint16
}

type configKey struct {
	chainID    uint16
	configType uint64
}

type node struct {
	gateway *gateway.Gateway
	local   types.Address
}

// Network is an in-process transport joining any number of gateways, one per
// chain id. It delivers dispatched messages synchronously to the destination
// gateway's Receive, tracking a per-route nonce. Useful for tests and for
// exercising a full round trip without an external endpoint.
type Network struct {
	logger hclog.Logger

	// identity is the caller address the network presents to every gateway
	identity types.Address

	lock   sync.RWMutex
	nodes  map[uint16]*node
	nonces map[route]uint64
}

// NewNetwork creates an empty in-memory network with the given endpoint identity
func NewNetwork(logger hclog.Logger, identity types.Address) *Network {
	return &Network{
		logger:   logger.Named("inmem-network"),
		identity: identity,
		nodes:    map[uint16]*node{},
		nonces:   map[route]uint64{},
	}
}

// Identity returns the caller address gateways must configure as their endpoint
func (n *Network) Identity() types.Address {
	return n.identity
}

// Endpoint creates the per-chain transport handle a gateway is built around
func (n *Network) Endpoint(chainID uint16) *Endpoint {
	return &Endpoint{
		network: n,
		chainID: chainID,
		configs: map[configKey][]byte{},
	}
}

// Register attaches a constructed gateway to its chain. Must be called before
// any message is dispatched toward that chain.
func (n *Network) Register(chainID uint16, g *gateway.Gateway) {
	n.lock.Lock()
	defer n.lock.Unlock()

	n.nodes[chainID] = &node{
		gateway: g,
		local:   g.LocalAddress(),
	}
}

// deliver routes a dispatched message into the destination gateway.
// The destination identity arrives as remote application address ++ sender
// application address; the source path presented to the receiving gateway is
// the same pair in inbound orientation.
func (n *Network) deliver(srcChainID, dstChainID uint16, destination, payload []byte) error {
	n.lock.Lock()

	dst, ok := n.nodes[dstChainID]
	if !ok {
		n.lock.Unlock()

		return fmt.Errorf("no gateway registered for chain %d", dstChainID)
	}

	r := route{srcChainID: srcChainID, dstChainID: dstChainID}
	n.nonces[r]++
	nonce := n.nonces[r]

	n.lock.Unlock()

	if len(destination) < types.AddressLength {
		return fmt.Errorf("destination identity too short: %d bytes", len(destination))
	}

	// flip remoteAddr ++ senderAddr into senderAddr ++ remoteAddr
	remote := destination[:len(destination)-types.AddressLength]
	sender := destination[len(destination)-types.AddressLength:]

	srcAddress := make([]byte, 0, len(destination))
	srcAddress = append(srcAddress, sender...)
	srcAddress = append(srcAddress, remote...)

	n.logger.Debug("delivering message",
		"src", srcChainID,
		"dst", dstChainID,
		"nonce", nonce,
	)

	return dst.gateway.Receive(n.identity, srcChainID, srcAddress, nonce, payload)
}

// Endpoint is the per-chain gateway.Transport implementation of a Network
type Endpoint struct {
	network *Network
	chainID uint16

	lock        sync.Mutex
	sendVersion uint16
	recvVersion uint16
	configs     map[configKey][]byte
}

// Dispatch delivers the message to the destination gateway in-process.
// Fees are ignored, the in-memory network has no fee accounting.
func (e *Endpoint) Dispatch(
	dstChainID uint16,
	destination []byte,
	payload []byte,
	refundAddress types.Address,
	zroPaymentAddress types.Address,
	adapterParams []byte,
	nativeFee *big.Int,
) error {
	return e.network.deliver(e.chainID, dstChainID, destination, payload)
}

func (e *Endpoint) GetConfig(version uint16, chainID uint16, configType uint64) ([]byte, error) {
	e.lock.Lock()
	defer e.lock.Unlock()

	return e.configs[configKey{chainID: chainID, configType: configType}], nil
}

func (e *Endpoint) SetConfig(version uint16, chainID uint16, configType uint64, config []byte) error {
	e.lock.Lock()
	defer e.lock.Unlock()

	e.configs[configKey{chainID: chainID, configType: configType}] = config

	return nil
}

func (e *Endpoint) SetSendVersion(version uint16) error {
	e.lock.Lock()
	defer e.lock.Unlock()

	e.sendVersion = version

	return nil
}

func (e *Endpoint) SetReceiveVersion(version uint16) error {
	e.lock.Lock()
	defer e.lock.Unlock()

	e.recvVersion = version

	return nil
}

func (e *Endpoint) ForceResumeReceive(srcChainID uint16, srcAddress []byte) error {
	// the in-memory network delivers synchronously and never blocks a channel
	return nil
}
