package main

import (
	"github.com/lz-asia/layerzero-foundation/command/root"
)

func main() {
	root.NewRootCommand().Execute()
}
