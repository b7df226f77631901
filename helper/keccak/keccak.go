package keccak

import (
	"hash"

	"golang.org/x/crypto/sha3"
)

// Keccak is the sha256 keccak hash
type Keccak struct {
	buf  []byte // buffer to store intermediate hash values
	hash hash.Hash
}

// NewKeccak256 returns a new keccak 256 hash
func NewKeccak256() *Keccak {
	return &Keccak{
		hash: sha3.NewLegacyKeccak256(),
	}
}

// Write implements the hash interface
func (k *Keccak) Write(b []byte) (int, error) {
	return k.hash.Write(b)
}

// Reset implements the hash interface
func (k *Keccak) Reset() {
	k.buf = k.buf[:0]
	k.hash.Reset()
}

// Sum implements the hash interface
func (k *Keccak) Sum(dst []byte) []byte {
	return k.hash.Sum(dst)
}
