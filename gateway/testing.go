package gateway

import (
	"math/big"
	"sync"

	"github.com/lz-asia/layerzero-foundation/helper/common"
	"github.com/lz-asia/layerzero-foundation/types"
)

// test doubles shared by the package tests

type dispatchCall struct {
	dstChainID    uint16
	destination   []byte
	payload       []byte
	refundAddress types.Address
	adapterParams []byte
	nativeFee     *big.Int
}

type mockTransport struct {
	lock sync.Mutex

	dispatches   []dispatchCall
	configs      map[uint64][]byte
	sendVersion  uint16
	recvVersion  uint16
	resumedPaths [][]byte

	dispatchErr error
}

func newMockTransport() *mockTransport {
	return &mockTransport{
		configs: map[uint64][]byte{},
	}
}

func (m *mockTransport) Dispatch(
	dstChainID uint16,
	destination []byte,
	payload []byte,
	refundAddress types.Address,
	zroPaymentAddress types.Address,
	adapterParams []byte,
	nativeFee *big.Int,
) error {
	if m.dispatchErr != nil {
		return m.dispatchErr
	}

	m.lock.Lock()
	defer m.lock.Unlock()

	m.dispatches = append(m.dispatches, dispatchCall{
		dstChainID:    dstChainID,
		destination:   destination,
		payload:       payload,
		refundAddress: refundAddress,
		adapterParams: adapterParams,
		nativeFee:     nativeFee,
	})

	return nil
}

func (m *mockTransport) GetConfig(version uint16, chainID uint16, configType uint64) ([]byte, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	return m.configs[configType], nil
}

func (m *mockTransport) SetConfig(version uint16, chainID uint16, configType uint64, config []byte) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.configs[configType] = config

	return nil
}

func (m *mockTransport) SetSendVersion(version uint16) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.sendVersion = version

	return nil
}

func (m *mockTransport) SetReceiveVersion(version uint16) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.recvVersion = version

	return nil
}

func (m *mockTransport) ForceResumeReceive(srcChainID uint16, srcAddress []byte) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.resumedPaths = append(m.resumedPaths, srcAddress)

	return nil
}

func (m *mockTransport) dispatchCount() int {
	m.lock.Lock()
	defer m.lock.Unlock()

	return len(m.dispatches)
}

type receivedMessage struct {
	srcChainID uint16
	srcAddress []byte
	nonce      uint64
	payload    []byte
}

type mockReceiver struct {
	lock sync.Mutex

	received []receivedMessage
	hookErr  error
}

func (m *mockReceiver) OnReceive(srcChainID uint16, srcAddress []byte, nonce uint64, payload []byte) error {
	if m.hookErr != nil {
		return m.hookErr
	}

	m.lock.Lock()
	defer m.lock.Unlock()

	m.received = append(m.received, receivedMessage{
		srcChainID: srcChainID,
		srcAddress: srcAddress,
		nonce:      nonce,
		payload:    payload,
	})

	return nil
}

func (m *mockReceiver) receivedCount() int {
	m.lock.Lock()
	defer m.lock.Unlock()

	return len(m.received)
}

// buildAdapterParams encodes a version tag and a fixed width gas limit the
// way transport adapter params carry them
func buildAdapterParams(version uint16, gasLimit *big.Int) []byte {
	params := make([]byte, adapterParamsMinLength)
	copy(params[:adapterParamsVersionLength], common.EncodeUint16ToBytes(version))

	gasBytes := gasLimit.Bytes()
	copy(params[adapterParamsMinLength-len(gasBytes):], gasBytes)

	return params
}
