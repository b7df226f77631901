package hex

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDecodeUint64 verifies that uint64 values
// are properly decoded from hex
func TestDecodeUint64(t *testing.T) {
	t.Parallel()

	uint64Array := []uint64{
		0,
		1,
		11,
		67312,
		80604,
		^uint64(0), // max uint64
	}

	toHexArr := func(nums []uint64) []string {
		numbers := make([]string, len(nums))

		for index, num := range nums {
			numbers[index] = fmt.Sprintf("0x%x", num)
		}

		return numbers
	}

	for index, value := range toHexArr(uint64Array) {
		decodedValue, err := DecodeUint64(value)
		assert.NoError(t, err)

		assert.Equal(t, uint64Array[index], decodedValue)
	}
}

// TestDecodeHex verifies that both prefixed and raw
// hex strings decode to the same bytes
func TestDecodeHex(t *testing.T) {
	t.Parallel()

	prefixed, err := DecodeHex("0xaabb")
	assert.NoError(t, err)

	raw, err := DecodeHex("aabb")
	assert.NoError(t, err)

	assert.Equal(t, prefixed, raw)
	assert.Equal(t, []byte{0xaa, 0xbb}, prefixed)
}

func TestMustDecodeHex(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []byte{0xaa, 0xbb}, MustDecodeHex("0xaabb"))

	assert.Panics(t, func() {
		MustDecodeHex("0xzz")
	})
}

// TestEncodeBig verifies the 0x encoding of big integers,
// including the zero special case
func TestEncodeBig(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0x0", EncodeBig(big.NewInt(0)))
	assert.Equal(t, "0x1", EncodeBig(big.NewInt(1)))
	assert.Equal(t, "0x30d40", EncodeBig(big.NewInt(200000)))
}
