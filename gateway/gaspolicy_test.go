package gateway

import (
	"math/big"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGasPolicy(t *testing.T) *GasPolicy {
	t.Helper()

	policy, err := NewGasPolicy(hclog.NewNullLogger(), nil, nil)
	require.NoError(t, err)

	return policy
}

func TestDecodeGasLimit(t *testing.T) {
	t.Parallel()

	t.Run("rejects short buffers", func(t *testing.T) {
		t.Parallel()

		for _, size := range []int{0, 1, 2, 33} {
			_, err := DecodeGasLimit(make([]byte, size))
			require.ErrorIs(t, err, ErrInvalidAdapterParams)
		}
	})

	t.Run("reads the fixed offset", func(t *testing.T) {
		t.Parallel()

		params := buildAdapterParams(1, big.NewInt(200000))

		gasLimit, err := DecodeGasLimit(params)
		require.NoError(t, err)
		assert.Zero(t, big.NewInt(200000).Cmp(gasLimit))
	})

	t.Run("ignores trailing bytes", func(t *testing.T) {
		t.Parallel()

		params := buildAdapterParams(2, big.NewInt(150000))
		extended := append(params, 0xff, 0xff, 0xff)

		gasLimit, err := DecodeGasLimit(extended)
		require.NoError(t, err)
		assert.Zero(t, big.NewInt(150000).Cmp(gasLimit))
	})
}

func TestGasPolicy_SetMinGas(t *testing.T) {
	t.Parallel()

	policy := newTestGasPolicy(t)

	t.Run("rejects zero floor", func(t *testing.T) {
		require.ErrorIs(t, policy.SetMinGas(200, 1, big.NewInt(0)), ErrInvalidMinGas)
		require.ErrorIs(t, policy.SetMinGas(200, 1, nil), ErrInvalidMinGas)

		// no partial update on failure
		assert.Nil(t, policy.MinGas(200, 1))
	})

	t.Run("stores and overwrites", func(t *testing.T) {
		require.NoError(t, policy.SetMinGas(200, 1, big.NewInt(200000)))
		assert.Zero(t, big.NewInt(200000).Cmp(policy.MinGas(200, 1)))

		require.NoError(t, policy.SetMinGas(200, 1, big.NewInt(300000)))
		assert.Zero(t, big.NewInt(300000).Cmp(policy.MinGas(200, 1)))
	})

	t.Run("separate entries per message type", func(t *testing.T) {
		require.NoError(t, policy.SetMinGas(200, 2, big.NewInt(50000)))

		assert.Zero(t, big.NewInt(300000).Cmp(policy.MinGas(200, 1)))
		assert.Zero(t, big.NewInt(50000).Cmp(policy.MinGas(200, 2)))
		assert.Nil(t, policy.MinGas(201, 1))
	})
}

func TestGasPolicy_RequireSufficient(t *testing.T) {
	t.Parallel()

	policy := newTestGasPolicy(t)
	require.NoError(t, policy.SetMinGas(200, 1, big.NewInt(200000)))

	t.Run("fails closed when the floor is not set", func(t *testing.T) {
		t.Parallel()

		params := buildAdapterParams(1, big.NewInt(1000000))

		err := policy.RequireSufficient(200, 9, params, nil)
		require.ErrorIs(t, err, ErrMinGasLimitNotSet)

		// extra gas does not change the outcome
		err = policy.RequireSufficient(200, 9, params, big.NewInt(5000))
		require.ErrorIs(t, err, ErrMinGasLimitNotSet)
	})

	t.Run("rejects a gas limit below the floor", func(t *testing.T) {
		t.Parallel()

		params := buildAdapterParams(1, big.NewInt(150000))

		err := policy.RequireSufficient(200, 1, params, nil)
		require.ErrorIs(t, err, ErrGasLimitTooLow)
	})

	t.Run("succeeds exactly at the floor", func(t *testing.T) {
		t.Parallel()

		params := buildAdapterParams(1, big.NewInt(200000))

		require.NoError(t, policy.RequireSufficient(200, 1, params, nil))
	})

	t.Run("extra gas is additive", func(t *testing.T) {
		t.Parallel()

		params := buildAdapterParams(1, big.NewInt(200000))

		// floor + extra exceeds the provided limit
		err := policy.RequireSufficient(200, 1, params, big.NewInt(1))
		require.ErrorIs(t, err, ErrGasLimitTooLow)

		// exact equality with the extra included
		params = buildAdapterParams(1, big.NewInt(205000))
		require.NoError(t, policy.RequireSufficient(200, 1, params, big.NewInt(5000)))
	})

	t.Run("accepts a gas limit above the floor", func(t *testing.T) {
		t.Parallel()

		params := buildAdapterParams(1, big.NewInt(250000))

		require.NoError(t, policy.RequireSufficient(200, 1, params, nil))
	})

	t.Run("rejects malformed adapter params before arithmetic", func(t *testing.T) {
		t.Parallel()

		err := policy.RequireSufficient(200, 1, []byte{0x00, 0x01}, nil)
		require.ErrorIs(t, err, ErrInvalidAdapterParams)
	})
}
