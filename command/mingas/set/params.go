package set

import (
	"errors"
	"math/big"

	"github.com/lz-asia/layerzero-foundation/helper/common"
)

const (
	chainFlag   = "chain"
	msgTypeFlag = "msg-type"
	valueFlag   = "value"
)

type setParams struct {
	dataDir     string
	chainID     uint16
	messageType uint16
	rawValue    string

	minGas *big.Int
}

func (p *setParams) validateFlags() error {
	if p.dataDir == "" {
		return errors.New("data directory not provided")
	}

	minGas, err := common.ParseUint256orHex(&p.rawValue)
	if err != nil {
		return errors.New("value is not a valid number")
	}

	p.minGas = minGas

	return nil
}
