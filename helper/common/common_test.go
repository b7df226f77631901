package common

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeUint16ToBytes_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, value := range []uint16{0, 1, 101, 0xffff} {
		assert.Equal(t, value, EncodeBytesToUint16(EncodeUint16ToBytes(value)))
	}
}

func TestEncodeUint64ToBytes_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, value := range []uint64{0, 1, 200000, ^uint64(0)} {
		assert.Equal(t, value, EncodeBytesToUint64(EncodeUint64ToBytes(value)))
	}
}

func TestParseUint256orHex(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input    string
		expected *big.Int
	}{
		{"200000", big.NewInt(200000)},
		{"0x30d40", big.NewInt(200000)},
		{"0x0", big.NewInt(0)},
	}

	for _, c := range cases {
		c := c

		value, err := ParseUint256orHex(&c.input)
		require.NoError(t, err)
		assert.Zero(t, c.expected.Cmp(value))
	}

	badInput := "not-a-number"
	_, err := ParseUint256orHex(&badInput)
	require.Error(t, err)
}
