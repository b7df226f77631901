package gateway

import (
	"github.com/lz-asia/layerzero-foundation/types"
)

// EventType is the kind of configuration change an event describes
type EventType int

const (
	// EventTrustedPathSet fires when a trusted path is written for a chain
	EventTrustedPathSet EventType = iota

	// EventMinGasSet fires when a gas floor is written for a (chain, type) pair
	EventMinGasSet

	// EventPrecrimeSet fires when the precrime auditor address changes
	EventPrecrimeSet
)

func (t EventType) String() string {
	switch t {
	case EventTrustedPathSet:
		return "trusted path set"
	case EventMinGasSet:
		return "min gas set"
	case EventPrecrimeSet:
		return "precrime set"
	default:
		return "unknown"
	}
}

// Event is a change notification emitted on every registry or config write,
// carrying the new value for external auditability
type Event struct {
	// Type is the kind of change
	Type EventType

	// ChainID is the remote chain the change applies to,
	// unused for EventPrecrimeSet
	ChainID uint16

	// MessageType is the message discriminator, set only for EventMinGasSet
	MessageType uint16

	// Value is the new value: the path bytes, the big endian min gas bytes,
	// or the auditor address bytes
	Value types.HexBytes
}
