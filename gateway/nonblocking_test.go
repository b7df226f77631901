package gateway

import (
	"errors"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lz-asia/layerzero-foundation/types"
)

func TestNonblockingReceiver_SwallowsHookFailure(t *testing.T) {
	t.Parallel()

	inner := &mockReceiver{hookErr: errors.New("application failure")}
	receiver := NewNonblockingReceiver(hclog.NewNullLogger(), inner)

	// the channel stays open, the failure is recorded
	require.NoError(t, receiver.OnReceive(101, []byte{0xaa}, 1, []byte("payload")))

	hash, ok := receiver.FailedHash(101, []byte{0xaa}, 1)
	require.True(t, ok)
	assert.NotEqual(t, types.ZeroHash, hash)
}

func TestNonblockingReceiver_Retry(t *testing.T) {
	t.Parallel()

	inner := &mockReceiver{hookErr: errors.New("application failure")}
	receiver := NewNonblockingReceiver(hclog.NewNullLogger(), inner)

	require.NoError(t, receiver.OnReceive(101, []byte{0xaa}, 1, []byte("payload")))

	t.Run("unknown message", func(t *testing.T) {
		require.Error(t, receiver.Retry(101, []byte{0xaa}, 99, []byte("payload")))
	})

	t.Run("payload mismatch", func(t *testing.T) {
		require.Error(t, receiver.Retry(101, []byte{0xaa}, 1, []byte("other payload")))
	})

	t.Run("hook still failing", func(t *testing.T) {
		require.Error(t, receiver.Retry(101, []byte{0xaa}, 1, []byte("payload")))

		_, ok := receiver.FailedHash(101, []byte{0xaa}, 1)
		assert.True(t, ok)
	})

	t.Run("successful retry clears the record", func(t *testing.T) {
		inner.hookErr = nil

		require.NoError(t, receiver.Retry(101, []byte{0xaa}, 1, []byte("payload")))

		_, ok := receiver.FailedHash(101, []byte{0xaa}, 1)
		assert.False(t, ok)
		assert.Equal(t, 1, inner.receivedCount())
	})
}

func TestNonblockingReceiver_SuccessPassesThrough(t *testing.T) {
	t.Parallel()

	inner := &mockReceiver{}
	receiver := NewNonblockingReceiver(hclog.NewNullLogger(), inner)

	require.NoError(t, receiver.OnReceive(101, []byte{0xaa}, 1, []byte("payload")))

	assert.Equal(t, 1, inner.receivedCount())

	_, ok := receiver.FailedHash(101, []byte{0xaa}, 1)
	assert.False(t, ok)
}
