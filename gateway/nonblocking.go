package gateway

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/lz-asia/layerzero-foundation/helper/keccak"
	"github.com/lz-asia/layerzero-foundation/types"
)

type failedMessageKey struct {
	srcChainID uint16
	srcAddress string
	nonce      uint64
}

// NonblockingReceiver wraps an application hook so that a failing payload
// never blocks the inbound channel. Failures are recorded as a payload hash
// keyed by (source chain, source address, nonce) and can be retried with the
// exact original message. The bare hook itself is the blocking variant.
type NonblockingReceiver struct {
	logger hclog.Logger
	inner  Receiver

	lock   sync.RWMutex
	failed map[failedMessageKey]types.Hash
}

// NewNonblockingReceiver wraps the given application hook
func NewNonblockingReceiver(logger hclog.Logger, inner Receiver) *NonblockingReceiver {
	return &NonblockingReceiver{
		logger: logger.Named("nonblocking-receiver"),
		inner:  inner,
		failed: map[failedMessageKey]types.Hash{},
	}
}

// OnReceive invokes the wrapped hook. On failure the payload hash is stored
// for a later retry and nil is returned, keeping the channel open.
func (r *NonblockingReceiver) OnReceive(
	srcChainID uint16,
	srcAddress []byte,
	nonce uint64,
	payload []byte,
) error {
	err := r.inner.OnReceive(srcChainID, srcAddress, nonce, payload)
	if err == nil {
		return nil
	}

	hash := types.BytesToHash(keccak.Keccak256(nil, payload))

	r.lock.Lock()
	r.failed[failedMessageKey{
		srcChainID: srcChainID,
		srcAddress: string(srcAddress),
		nonce:      nonce,
	}] = hash
	r.lock.Unlock()

	r.logger.Warn("stored failed inbound message",
		"chain", srcChainID,
		"nonce", nonce,
		"hash", hash,
		"err", err,
	)

	return nil
}

// FailedHash returns the stored payload hash for the given message,
// reporting whether a failure is recorded at all
func (r *NonblockingReceiver) FailedHash(srcChainID uint16, srcAddress []byte, nonce uint64) (types.Hash, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	hash, ok := r.failed[failedMessageKey{
		srcChainID: srcChainID,
		srcAddress: string(srcAddress),
		nonce:      nonce,
	}]

	return hash, ok
}

// Retry re-invokes the wrapped hook with a previously failed message. The
// supplied payload must hash to the stored value. A successful retry clears
// the stored failure.
func (r *NonblockingReceiver) Retry(
	srcChainID uint16,
	srcAddress []byte,
	nonce uint64,
	payload []byte,
) error {
	key := failedMessageKey{
		srcChainID: srcChainID,
		srcAddress: string(srcAddress),
		nonce:      nonce,
	}

	r.lock.RLock()
	stored, ok := r.failed[key]
	r.lock.RUnlock()

	if !ok {
		return fmt.Errorf("no failed message for chain %d, nonce %d", srcChainID, nonce)
	}

	if !bytes.Equal(stored.Bytes(), keccak.Keccak256(nil, payload)) {
		return fmt.Errorf("payload does not match stored message hash %s", stored)
	}

	if err := r.inner.OnReceive(srcChainID, srcAddress, nonce, payload); err != nil {
		return err
	}

	r.lock.Lock()
	delete(r.failed, key)
	r.lock.Unlock()

	r.logger.Info("retried failed inbound message", "chain", srcChainID, "nonce", nonce)

	return nil
}
