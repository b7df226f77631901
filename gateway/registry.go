package gateway

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/lz-asia/layerzero-foundation/types"
)

// PathRegistry owns the mapping from a remote chain id to the expected
// encoded remote sender identity for that chain. A chain with no configured
// path is untrusted and every verification against it fails closed.
type PathRegistry struct {
	logger hclog.Logger

	// localAddress is appended when synthesizing a path from a bare remote address
	localAddress types.Address

	lock  sync.RWMutex
	paths map[uint16][]byte

	// store is the optional write-through persistence
	store *PathStore

	// events receives a notification on every write
	events *eventManager
}

// NewPathRegistry creates the registry, loading any persisted paths from the store
func NewPathRegistry(
	logger hclog.Logger,
	localAddress types.Address,
	store *PathStore,
	events *eventManager,
) (*PathRegistry, error) {
	registry := &PathRegistry{
		logger:       logger.Named("path-registry"),
		localAddress: localAddress,
		paths:        map[uint16][]byte{},
		store:        store,
		events:       events,
	}

	if store != nil {
		paths, err := store.getAllPaths()
		if err != nil {
			return nil, fmt.Errorf("failed to load trusted paths: %w", err)
		}

		registry.paths = paths
	}

	return registry, nil
}

// SetTrustedPath unconditionally overwrites the trusted path for the given
// chain. Byte length is the caller's responsibility. Writing an empty path
// re-establishes the untrusted state.
func (r *PathRegistry) SetTrustedPath(chainID uint16, path []byte) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	stored := make([]byte, len(path))
	copy(stored, path)

	if r.store != nil {
		if err := r.store.insertPath(chainID, stored); err != nil {
			return fmt.Errorf("failed to persist trusted path: %w", err)
		}
	}

	r.paths[chainID] = stored

	r.logger.Info("trusted path set", "chain", chainID, "path", types.HexBytes(stored))

	if r.events != nil {
		r.events.fireEvent(&Event{
			Type:    EventTrustedPathSet,
			ChainID: chainID,
			Value:   stored,
		})
	}

	return nil
}

// SetTrustedRemoteAddress synthesizes the path as the remote application
// address concatenated with the local application address
func (r *PathRegistry) SetTrustedRemoteAddress(chainID uint16, remoteAddress []byte) error {
	path := make([]byte, 0, len(remoteAddress)+types.AddressLength)
	path = append(path, remoteAddress...)
	path = append(path, r.localAddress.Bytes()...)

	return r.SetTrustedPath(chainID, path)
}

// Verify reports whether the candidate path matches the registered path for
// the chain exactly. A zero length registered path (unset) always fails, even
// against a zero length candidate.
func (r *PathRegistry) Verify(chainID uint16, candidatePath []byte) bool {
	r.lock.RLock()
	defer r.lock.RUnlock()

	registered, ok := r.paths[chainID]
	if !ok || len(registered) == 0 {
		return false
	}

	return len(registered) == len(candidatePath) && bytes.Equal(registered, candidatePath)
}

// RequireTrusted returns the registered path for the chain, or
// ErrNoTrustedRemote if none is registered
func (r *PathRegistry) RequireTrusted(chainID uint16) ([]byte, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	registered, ok := r.paths[chainID]
	if !ok || len(registered) == 0 {
		return nil, fmt.Errorf("%w: chain %d", ErrNoTrustedRemote, chainID)
	}

	path := make([]byte, len(registered))
	copy(path, registered)

	return path, nil
}

// TrustedPath returns a copy of the registered path for the chain,
// nil if the chain is untrusted
func (r *PathRegistry) TrustedPath(chainID uint16) []byte {
	r.lock.RLock()
	defer r.lock.RUnlock()

	registered, ok := r.paths[chainID]
	if !ok || len(registered) == 0 {
		return nil
	}

	path := make([]byte, len(registered))
	copy(path, registered)

	return path
}
