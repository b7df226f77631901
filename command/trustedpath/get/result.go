package get

import (
	"bytes"
	"fmt"

	"github.com/lz-asia/layerzero-foundation/command/helper"
)

type GetResult struct {
	ChainID uint16 `json:"chainId"`
	Path    string `json:"path,omitempty"`
}

func (r *GetResult) GetOutput() string {
	var buffer bytes.Buffer

	path := r.Path
	if path == "" {
		path = "<none>"
	}

	buffer.WriteString("\n[TRUSTED PATH]\n")
	buffer.WriteString(helper.FormatKV([]string{
		fmt.Sprintf("Chain ID|%d", r.ChainID),
		fmt.Sprintf("Path|%s", path),
	}))

	return buffer.String()
}
