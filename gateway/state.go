package gateway

import (
	"fmt"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	bolt "go.etcd.io/bbolt"
)

/*
The gateway has a boltDB backed state store. The schema looks as follows:

trusted paths/
|--> chainID (big endian uint16) -> path bytes (raw)

min gas/
|--> chainID+messageType (big endian uint16 pair) -> min gas (big endian big.Int bytes)
*/

const stateFileName = "gateway.db"

// State is the bbolt backed persistence for the gateway registries,
// so configured trust and policy survive restarts
type State struct {
	db     *bolt.DB
	logger hclog.Logger

	PathStore *PathStore
	GasStore  *GasStore
}

// NewState creates or opens the state store inside the given data directory
func NewState(dataDir string, logger hclog.Logger) (*State, error) {
	db, err := bolt.Open(filepath.Join(dataDir, stateFileName), 0666, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open state db: %w", err)
	}

	state := &State{
		db:        db,
		logger:    logger.Named("state"),
		PathStore: &PathStore{db: db},
		GasStore:  &GasStore{db: db},
	}

	if err = db.Update(func(tx *bolt.Tx) error {
		if err := state.PathStore.initialize(tx); err != nil {
			return err
		}

		return state.GasStore.initialize(tx)
	}); err != nil {
		return nil, err
	}

	return state, nil
}

// Close closes the underlying bolt handle
func (s *State) Close() error {
	return s.db.Close()
}
