package gateway

import (
	"fmt"

	"github.com/lz-asia/layerzero-foundation/helper/common"
	bolt "go.etcd.io/bbolt"
)

// bucket to store trusted paths, keyed by remote chain id
var trustedPathsBucket = []byte("trustedPaths")

// PathStore persists the trusted path registry
type PathStore struct {
	db *bolt.DB
}

// initialize creates necessary buckets in DB if they don't already exist
func (s *PathStore) initialize(tx *bolt.Tx) error {
	if _, err := tx.CreateBucketIfNotExists(trustedPathsBucket); err != nil {
		return fmt.Errorf("failed to create bucket=%s: %w", string(trustedPathsBucket), err)
	}

	return nil
}

// insertPath writes the trusted path for the given chain.
// An empty path re-establishes the untrusted state.
func (s *PathStore) insertPath(chainID uint16, path []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(trustedPathsBucket).Put(common.EncodeUint16ToBytes(chainID), path)
	})
}

// getPath returns the trusted path stored for the given chain, nil if none
func (s *PathStore) getPath(chainID uint16) ([]byte, error) {
	var path []byte

	err := s.db.View(func(tx *bolt.Tx) error {
		value := tx.Bucket(trustedPathsBucket).Get(common.EncodeUint16ToBytes(chainID))
		if value != nil {
			path = make([]byte, len(value))
			copy(path, value)
		}

		return nil
	})

	return path, err
}

// getAllPaths returns the full chain id to trusted path mapping
func (s *PathStore) getAllPaths() (map[uint16][]byte, error) {
	paths := map[uint16][]byte{}

	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(trustedPathsBucket).ForEach(func(k, v []byte) error {
			path := make([]byte, len(v))
			copy(path, v)

			paths[common.EncodeBytesToUint16(k)] = path

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return paths, nil
}
