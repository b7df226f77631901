package gateway

import (
	"math/big"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lz-asia/layerzero-foundation/types"
)

var (
	testLocal    = types.StringToAddress("0x11")
	testEndpoint = types.StringToAddress("0x22")
	testAdmin    = types.StringToAddress("0x33")
	testStranger = types.StringToAddress("0x44")
)

func newTestGateway(t *testing.T) (*Gateway, *mockTransport, *mockReceiver) {
	t.Helper()

	transport := newMockTransport()
	receiver := &mockReceiver{}

	g, err := NewGateway(
		hclog.NewNullLogger(),
		&Config{
			LocalAddress: testLocal,
			Endpoint:     testEndpoint,
			Admin:        testAdmin,
		},
		transport,
		receiver,
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = g.Close()
	})

	return g, transport, receiver
}

func TestGateway_NewGatewayValidation(t *testing.T) {
	t.Parallel()

	transport := newMockTransport()
	receiver := &mockReceiver{}

	cases := []struct {
		name      string
		config    *Config
		transport Transport
		receiver  Receiver
	}{
		{
			name:      "missing identities",
			config:    &Config{},
			transport: transport,
			receiver:  receiver,
		},
		{
			name: "missing transport",
			config: &Config{
				LocalAddress: testLocal,
				Endpoint:     testEndpoint,
				Admin:        testAdmin,
			},
			transport: nil,
			receiver:  receiver,
		},
		{
			name: "missing receiver",
			config: &Config{
				LocalAddress: testLocal,
				Endpoint:     testEndpoint,
				Admin:        testAdmin,
			},
			transport: transport,
			receiver:  nil,
		},
	}

	for _, c := range cases {
		c := c

		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewGateway(hclog.NewNullLogger(), c.config, c.transport, c.receiver)
			require.Error(t, err)
		})
	}
}

func TestGateway_ReceiveTrustedPath(t *testing.T) {
	t.Parallel()

	g, _, receiver := newTestGateway(t)

	require.NoError(t, g.SetTrustedPath(testAdmin, 101, []byte{0xaa, 0xbb}))

	payload := []byte("payload")

	// matching path reaches the hook
	require.NoError(t, g.Receive(testEndpoint, 101, []byte{0xaa, 0xbb}, 1, payload))
	require.Equal(t, 1, receiver.receivedCount())
	assert.Equal(t, payload, receiver.received[0].payload)
	assert.Equal(t, uint64(1), receiver.received[0].nonce)

	// mismatching path is dropped with no partial processing
	err := g.Receive(testEndpoint, 101, []byte{0xaa, 0xbc, 0xcc}, 1, payload)
	require.ErrorIs(t, err, ErrNoTrustedRemote)
	assert.Equal(t, 1, receiver.receivedCount())
}

func TestGateway_ReceiveForbiddenCaller(t *testing.T) {
	t.Parallel()

	g, _, receiver := newTestGateway(t)

	require.NoError(t, g.SetTrustedPath(testAdmin, 101, []byte{0xaa, 0xbb}))

	// a non-transport caller never reaches the hook,
	// even with a valid source path
	err := g.Receive(testStranger, 101, []byte{0xaa, 0xbb}, 1, []byte("payload"))
	require.ErrorIs(t, err, ErrForbidden)
	assert.Zero(t, receiver.receivedCount())
}

func TestGateway_SendRequiresTrustedPath(t *testing.T) {
	t.Parallel()

	g, transport, _ := newTestGateway(t)

	// no path registered for chain 102, the transport is never called
	err := g.Send(102, []byte{0x55}, []byte("payload"), testLocal, types.ZeroAddress, nil, nil)
	require.ErrorIs(t, err, ErrNoTrustedRemote)
	assert.Zero(t, transport.dispatchCount())
}

func TestGateway_SendConstructsDestination(t *testing.T) {
	t.Parallel()

	g, transport, _ := newTestGateway(t)

	require.NoError(t, g.SetTrustedPath(testAdmin, 102, []byte{0x01}))

	dstAddress := []byte{0xde, 0xad}
	require.NoError(t, g.Send(102, dstAddress, []byte("payload"), testLocal, types.ZeroAddress, nil, big.NewInt(7)))

	require.Equal(t, 1, transport.dispatchCount())

	dispatch := transport.dispatches[0]
	assert.Equal(t, uint16(102), dispatch.dstChainID)

	// destination identity mirrors the inbound verification shape
	expected := append(append([]byte{}, dstAddress...), testLocal.Bytes()...)
	assert.Equal(t, expected, dispatch.destination)
	assert.Equal(t, big.NewInt(7), dispatch.nativeFee)
}

func TestGateway_SendDoesNotEnforceGasFloor(t *testing.T) {
	t.Parallel()

	g, transport, _ := newTestGateway(t)

	require.NoError(t, g.SetTrustedPath(testAdmin, 102, []byte{0x01}))

	// gas enforcement is an explicit precondition at the call site,
	// Send alone passes with no floor configured
	require.NoError(t, g.Send(102, []byte{0x55}, []byte("payload"), testLocal, types.ZeroAddress, nil, nil))
	assert.Equal(t, 1, transport.dispatchCount())

	// a disciplined call site performs the check first and stops on failure
	params := buildAdapterParams(1, big.NewInt(1000))
	err := g.GasPolicy().RequireSufficient(102, 1, params, nil)
	require.ErrorIs(t, err, ErrMinGasLimitNotSet)
}

func TestGateway_EndToEndGasPolicy(t *testing.T) {
	t.Parallel()

	g, _, _ := newTestGateway(t)

	require.NoError(t, g.SetMinGas(testAdmin, 200, 1, big.NewInt(200000)))

	lowParams := buildAdapterParams(1, big.NewInt(150000))
	err := g.GasPolicy().RequireSufficient(200, 1, lowParams, nil)
	require.ErrorIs(t, err, ErrGasLimitTooLow)

	okParams := buildAdapterParams(1, big.NewInt(250000))
	require.NoError(t, g.GasPolicy().RequireSufficient(200, 1, okParams, nil))
}

func TestGateway_AdminAuthority(t *testing.T) {
	t.Parallel()

	g, _, _ := newTestGateway(t)

	t.Run("stranger is rejected on every mutation", func(t *testing.T) {
		t.Parallel()

		require.ErrorIs(t, g.SetTrustedPath(testStranger, 101, []byte{0xaa}), ErrForbidden)
		require.ErrorIs(t, g.SetTrustedRemoteAddress(testStranger, 101, []byte{0xaa}), ErrForbidden)
		require.ErrorIs(t, g.SetMinGas(testStranger, 200, 1, big.NewInt(1)), ErrForbidden)
		require.ErrorIs(t, g.SetPrecrime(testStranger, testStranger), ErrForbidden)
		require.ErrorIs(t, g.SetConfig(testStranger, 1, 101, 0, nil), ErrForbidden)
		require.ErrorIs(t, g.SetSendVersion(testStranger, 2), ErrForbidden)
		require.ErrorIs(t, g.SetReceiveVersion(testStranger, 2), ErrForbidden)
		require.ErrorIs(t, g.ForceResumeReceive(testStranger, 101, []byte{0xaa}), ErrForbidden)
	})

	t.Run("admin mutations land", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, g.SetPrecrime(testAdmin, testStranger))
		assert.Equal(t, testStranger, g.Precrime())
	})
}

func TestGateway_TransportPassthrough(t *testing.T) {
	t.Parallel()

	g, transport, _ := newTestGateway(t)

	require.NoError(t, g.SetConfig(testAdmin, 1, 101, 3, []byte{0x01, 0x02}))

	blob, err := g.GetConfig(1, 101, 3)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02}, blob)

	require.NoError(t, g.SetSendVersion(testAdmin, 2))
	require.NoError(t, g.SetReceiveVersion(testAdmin, 3))
	assert.Equal(t, uint16(2), transport.sendVersion)
	assert.Equal(t, uint16(3), transport.recvVersion)

	require.NoError(t, g.ForceResumeReceive(testAdmin, 101, []byte{0xaa, 0xbb}))
	require.Len(t, transport.resumedPaths, 1)
	assert.Equal(t, []byte{0xaa, 0xbb}, transport.resumedPaths[0])
}

func TestGateway_ChangeEvents(t *testing.T) {
	t.Parallel()

	g, _, _ := newTestGateway(t)

	sub := g.Subscribe([]EventType{EventTrustedPathSet})
	defer g.Unsubscribe(sub.SubscriptionID)

	require.NoError(t, g.SetTrustedPath(testAdmin, 101, []byte{0xaa, 0xbb}))

	select {
	case event := <-sub.SubscriptionChannel:
		assert.Equal(t, EventTrustedPathSet, event.Type)
		assert.Equal(t, uint16(101), event.ChainID)
		assert.Equal(t, types.HexBytes{0xaa, 0xbb}, event.Value)
	case <-time.After(time.Second):
		t.Fatal("no change event received")
	}
}

func TestGateway_PersistenceAcrossRestarts(t *testing.T) {
	t.Parallel()

	dataDir := t.TempDir()

	config := &Config{
		LocalAddress: testLocal,
		Endpoint:     testEndpoint,
		Admin:        testAdmin,
		DataDir:      dataDir,
	}

	g, err := NewGateway(hclog.NewNullLogger(), config, newMockTransport(), &mockReceiver{})
	require.NoError(t, err)

	require.NoError(t, g.SetTrustedPath(testAdmin, 101, []byte{0xaa, 0xbb}))
	require.NoError(t, g.SetMinGas(testAdmin, 200, 1, big.NewInt(200000)))
	require.NoError(t, g.Close())

	reopened, err := NewGateway(hclog.NewNullLogger(), config, newMockTransport(), &mockReceiver{})
	require.NoError(t, err)

	defer func() {
		require.NoError(t, reopened.Close())
	}()

	assert.True(t, reopened.PathRegistry().Verify(101, []byte{0xaa, 0xbb}))
	assert.Zero(t, big.NewInt(200000).Cmp(reopened.MinGas(200, 1)))
}

func TestGateway_ClosedGatewayRejectsTraffic(t *testing.T) {
	t.Parallel()

	g, transport, receiver := newTestGateway(t)

	require.NoError(t, g.SetTrustedPath(testAdmin, 101, []byte{0xaa, 0xbb}))
	require.NoError(t, g.Close())

	// closing twice is a no-op
	require.NoError(t, g.Close())

	err := g.Receive(testEndpoint, 101, []byte{0xaa, 0xbb}, 1, []byte("payload"))
	require.ErrorIs(t, err, ErrClosed)
	assert.Zero(t, receiver.receivedCount())

	err = g.Send(101, []byte{0x55}, []byte("payload"), testLocal, types.ZeroAddress, nil, nil)
	require.ErrorIs(t, err, ErrClosed)
	assert.Zero(t, transport.dispatchCount())
}
