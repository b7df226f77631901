package types

import (
	"encoding/hex"
	"fmt"
	"strings"

	hexhelper "github.com/lz-asia/layerzero-foundation/helper/hex"
)

var ZeroAddress = Address{}
var ZeroHash = Hash{}

const (
	HashLength    = 32
	AddressLength = 20
)

// Hash is a fixed size 32 byte value, used for payload digests
type Hash [HashLength]byte

// Address is a fixed size 20 byte application address
type Address [AddressLength]byte

func min(i, j int) int {
	if i < j {
		return i
	}

	return j
}

// BytesToHash converts a byte slice to a Hash, left padded with zeroes
func BytesToHash(b []byte) Hash {
	var h Hash

	size := len(b)
	min := min(size, HashLength)

	copy(h[HashLength-min:], b[len(b)-min:])

	return h
}

func (h Hash) Bytes() []byte {
	return h[:]
}

func (h Hash) String() string {
	return hexhelper.EncodeToHex(h[:])
}

func (a Address) String() string {
	return hexhelper.EncodeToHex(a[:])
}

func (a Address) Bytes() []byte {
	return a[:]
}

// BytesToAddress converts a byte slice to an Address, left padded with zeroes
func BytesToAddress(b []byte) Address {
	var a Address

	size := len(b)
	min := min(size, AddressLength)

	copy(a[AddressLength-min:], b[len(b)-min:])

	return a
}

func StringToAddress(str string) Address {
	return BytesToAddress(stringToBytes(str))
}

// IsValidAddress checks that the given string is a full length,
// hex encoded address
func IsValidAddress(address string) error {
	trimmed := strings.TrimPrefix(address, "0x")
	if len(trimmed) != 2*AddressLength {
		return fmt.Errorf("invalid address length: %s", address)
	}

	if _, err := hex.DecodeString(trimmed); err != nil {
		return fmt.Errorf("address is not a valid hex string: %s", address)
	}

	return nil
}

func stringToBytes(str string) []byte {
	str = strings.TrimPrefix(str, "0x")
	if len(str)%2 == 1 {
		str = "0" + str
	}

	b, _ := hex.DecodeString(str)

	return b
}

// UnmarshalText parses a hash in hex syntax.
func (h *Hash) UnmarshalText(input []byte) error {
	*h = BytesToHash(stringToBytes(string(input)))

	return nil
}

// UnmarshalText parses an address in hex syntax.
func (a *Address) UnmarshalText(input []byte) error {
	buf := stringToBytes(string(input))
	if len(buf) != AddressLength {
		return fmt.Errorf("incorrect length")
	}

	*a = BytesToAddress(buf)

	return nil
}

func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// HexBytes is an opaque byte slice that renders as 0x prefixed hex
type HexBytes []byte

func (h HexBytes) String() string {
	return hexhelper.EncodeToHex(h)
}

func (h HexBytes) Bytes() []byte {
	return h[:]
}

func (h HexBytes) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *HexBytes) UnmarshalText(input []byte) error {
	*h = stringToBytes(string(input))

	return nil
}
