package set

import (
	"bytes"
	"fmt"

	"github.com/lz-asia/layerzero-foundation/command/helper"
)

type SetResult struct {
	ChainID uint16 `json:"chainId"`
	Path    string `json:"path"`
}

func (r *SetResult) GetOutput() string {
	var buffer bytes.Buffer

	buffer.WriteString("\n[TRUSTED PATH SET]\n")
	buffer.WriteString(helper.FormatKV([]string{
		fmt.Sprintf("Chain ID|%d", r.ChainID),
		fmt.Sprintf("Path|%s", r.Path),
	}))

	return buffer.String()
}
