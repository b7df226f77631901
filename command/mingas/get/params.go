package get

import (
	"github.com/lz-asia/layerzero-foundation/command/helper"
)

const (
	chainFlag   = "chain"
	msgTypeFlag = "msg-type"
)

type getParams struct {
	dataDir     string
	chainID     uint16
	messageType uint16
}

func (p *getParams) validateFlags() error {
	return helper.ValidateDataDir(p.dataDir)
}
