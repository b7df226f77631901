package transport

import (
	"context"
	"math/big"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/sethvargo/go-retry"

	"github.com/lz-asia/layerzero-foundation/gateway"
	"github.com/lz-asia/layerzero-foundation/types"
)

const (
	defaultMaxRetries     = 3
	defaultInitialBackoff = 100 * time.Millisecond
)

// RetryConfig tunes the backoff applied to failed dispatches
type RetryConfig struct {
	// MaxRetries is the number of re-attempts after the initial dispatch
	MaxRetries uint64

	// InitialBackoff seeds the fibonacci backoff between attempts
	InitialBackoff time.Duration
}

// DefaultRetryConfig returns the backoff tuning used when none is supplied
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:     defaultMaxRetries,
		InitialBackoff: defaultInitialBackoff,
	}
}

// Retry decorates a transport with dispatch retries. Retry is the transport
// side's concern: the gateway core itself never re-attempts a failed call.
// Administrative and configuration calls pass through without retries.
type Retry struct {
	logger hclog.Logger
	inner  gateway.Transport
	config RetryConfig
}

// NewRetry wraps the given transport with the configured dispatch backoff
func NewRetry(logger hclog.Logger, inner gateway.Transport, config RetryConfig) *Retry {
	if config.MaxRetries == 0 {
		config = DefaultRetryConfig()
	}

	return &Retry{
		logger: logger.Named("retry-transport"),
		inner:  inner,
		config: config,
	}
}

func (t *Retry) Dispatch(
	dstChainID uint16,
	destination []byte,
	payload []byte,
	refundAddress types.Address,
	zroPaymentAddress types.Address,
	adapterParams []byte,
	nativeFee *big.Int,
) error {
	backoff := retry.WithMaxRetries(
		t.config.MaxRetries,
		retry.NewFibonacci(t.config.InitialBackoff),
	)

	return retry.Do(context.Background(), backoff, func(_ context.Context) error {
		err := t.inner.Dispatch(
			dstChainID,
			destination,
			payload,
			refundAddress,
			zroPaymentAddress,
			adapterParams,
			nativeFee,
		)
		if err != nil {
			t.logger.Warn("dispatch failed, backing off", "chain", dstChainID, "err", err)

			return retry.RetryableError(err)
		}

		return nil
	})
}

func (t *Retry) GetConfig(version uint16, chainID uint16, configType uint64) ([]byte, error) {
	return t.inner.GetConfig(version, chainID, configType)
}

func (t *Retry) SetConfig(version uint16, chainID uint16, configType uint64, config []byte) error {
	return t.inner.SetConfig(version, chainID, configType, config)
}

func (t *Retry) SetSendVersion(version uint16) error {
	return t.inner.SetSendVersion(version)
}

func (t *Retry) SetReceiveVersion(version uint16) error {
	return t.inner.SetReceiveVersion(version)
}

func (t *Retry) ForceResumeReceive(srcChainID uint16, srcAddress []byte) error {
	return t.inner.ForceResumeReceive(srcChainID, srcAddress)
}
