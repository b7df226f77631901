package gateway

import (
	"math/big"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestState(t *testing.T) *State {
	t.Helper()

	state, err := NewState(t.TempDir(), hclog.NewNullLogger())
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, state.Close())
	})

	return state
}

func TestState_PathStore(t *testing.T) {
	t.Parallel()

	state := newTestState(t)

	t.Run("missing path is nil", func(t *testing.T) {
		path, err := state.PathStore.getPath(101)
		require.NoError(t, err)
		assert.Nil(t, path)
	})

	t.Run("insert and get", func(t *testing.T) {
		require.NoError(t, state.PathStore.insertPath(101, []byte{0xaa, 0xbb}))

		path, err := state.PathStore.getPath(101)
		require.NoError(t, err)
		assert.Equal(t, []byte{0xaa, 0xbb}, path)
	})

	t.Run("overwrite is whole value", func(t *testing.T) {
		require.NoError(t, state.PathStore.insertPath(101, []byte{0xcc}))

		path, err := state.PathStore.getPath(101)
		require.NoError(t, err)
		assert.Equal(t, []byte{0xcc}, path)
	})

	t.Run("get all", func(t *testing.T) {
		require.NoError(t, state.PathStore.insertPath(102, []byte{0xdd}))

		paths, err := state.PathStore.getAllPaths()
		require.NoError(t, err)
		assert.Len(t, paths, 2)
		assert.Equal(t, []byte{0xcc}, paths[101])
		assert.Equal(t, []byte{0xdd}, paths[102])
	})
}

func TestState_GasStore(t *testing.T) {
	t.Parallel()

	state := newTestState(t)

	t.Run("missing floor is nil", func(t *testing.T) {
		floor, err := state.GasStore.getMinGas(200, 1)
		require.NoError(t, err)
		assert.Nil(t, floor)
	})

	t.Run("insert and get", func(t *testing.T) {
		require.NoError(t, state.GasStore.insertMinGas(200, 1, big.NewInt(200000)))

		floor, err := state.GasStore.getMinGas(200, 1)
		require.NoError(t, err)
		assert.Zero(t, big.NewInt(200000).Cmp(floor))
	})

	t.Run("keys do not collide across pairs", func(t *testing.T) {
		require.NoError(t, state.GasStore.insertMinGas(200, 2, big.NewInt(1)))
		require.NoError(t, state.GasStore.insertMinGas(201, 1, big.NewInt(2)))

		floors, err := state.GasStore.getAllMinGas()
		require.NoError(t, err)
		assert.Len(t, floors, 3)
		assert.Zero(t, big.NewInt(200000).Cmp(floors[GasPolicyKey{DstChainID: 200, MessageType: 1}]))
		assert.Zero(t, big.NewInt(1).Cmp(floors[GasPolicyKey{DstChainID: 200, MessageType: 2}]))
		assert.Zero(t, big.NewInt(2).Cmp(floors[GasPolicyKey{DstChainID: 201, MessageType: 1}]))
	})
}
