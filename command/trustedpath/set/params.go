package set

import (
	"errors"

	"github.com/lz-asia/layerzero-foundation/helper/common"
)

const (
	chainFlag = "chain"
	pathFlag  = "path"
)

type setParams struct {
	dataDir string
	chainID uint16
	rawPath string

	path []byte
}

func (p *setParams) validateFlags() error {
	if p.dataDir == "" {
		return errors.New("data directory not provided")
	}

	path, err := common.ParseBytes(&p.rawPath)
	if err != nil {
		return errors.New("path is not a valid hex string")
	}

	p.path = path

	return nil
}
