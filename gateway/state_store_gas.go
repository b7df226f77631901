package gateway

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/lz-asia/layerzero-foundation/helper/common"
	bolt "go.etcd.io/bbolt"
)

// bucket to store gas floors, keyed by (destination chain id, message type)
var minGasBucket = []byte("minGas")

// GasStore persists the min gas policy registry
type GasStore struct {
	db *bolt.DB
}

// initialize creates necessary buckets in DB if they don't already exist
func (s *GasStore) initialize(tx *bolt.Tx) error {
	if _, err := tx.CreateBucketIfNotExists(minGasBucket); err != nil {
		return fmt.Errorf("failed to create bucket=%s: %w", string(minGasBucket), err)
	}

	return nil
}

func minGasKey(dstChainID, messageType uint16) []byte {
	return bytes.Join([][]byte{
		common.EncodeUint16ToBytes(dstChainID),
		common.EncodeUint16ToBytes(messageType),
	}, nil)
}

// insertMinGas writes the gas floor for the given (chain, type) pair
func (s *GasStore) insertMinGas(dstChainID, messageType uint16, minGas *big.Int) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(minGasBucket).Put(minGasKey(dstChainID, messageType), minGas.Bytes())
	})
}

// getMinGas returns the gas floor stored for the given pair, nil if none
func (s *GasStore) getMinGas(dstChainID, messageType uint16) (*big.Int, error) {
	var minGas *big.Int

	err := s.db.View(func(tx *bolt.Tx) error {
		value := tx.Bucket(minGasBucket).Get(minGasKey(dstChainID, messageType))
		if value != nil {
			minGas = new(big.Int).SetBytes(value)
		}

		return nil
	})

	return minGas, err
}

// getAllMinGas returns the full (chain, type) to gas floor mapping
func (s *GasStore) getAllMinGas() (map[GasPolicyKey]*big.Int, error) {
	floors := map[GasPolicyKey]*big.Int{}

	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(minGasBucket).ForEach(func(k, v []byte) error {
			key := GasPolicyKey{
				DstChainID:  common.EncodeBytesToUint16(k[:2]),
				MessageType: common.EncodeBytesToUint16(k[2:]),
			}

			floors[key] = new(big.Int).SetBytes(v)

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return floors, nil
}
