package set

import (
	"bytes"
	"fmt"

	"github.com/lz-asia/layerzero-foundation/command/helper"
)

type SetResult struct {
	ChainID     uint16 `json:"chainId"`
	MessageType uint16 `json:"messageType"`
	MinGas      string `json:"minGas"`
}

func (r *SetResult) GetOutput() string {
	var buffer bytes.Buffer

	buffer.WriteString("\n[MIN GAS SET]\n")
	buffer.WriteString(helper.FormatKV([]string{
		fmt.Sprintf("Chain ID|%d", r.ChainID),
		fmt.Sprintf("Message Type|%d", r.MessageType),
		fmt.Sprintf("Min Gas|%s", r.MinGas),
	}))

	return buffer.String()
}
