package get

import (
	"bytes"
	"fmt"

	"github.com/lz-asia/layerzero-foundation/command/helper"
)

type GetResult struct {
	ChainID     uint16 `json:"chainId"`
	MessageType uint16 `json:"messageType"`
	MinGas      string `json:"minGas,omitempty"`
}

func (r *GetResult) GetOutput() string {
	var buffer bytes.Buffer

	minGas := r.MinGas
	if minGas == "" {
		minGas = "<none>"
	}

	buffer.WriteString("\n[MIN GAS]\n")
	buffer.WriteString(helper.FormatKV([]string{
		fmt.Sprintf("Chain ID|%d", r.ChainID),
		fmt.Sprintf("Message Type|%d", r.MessageType),
		fmt.Sprintf("Min Gas|%s", minGas),
	}))

	return buffer.String()
}
