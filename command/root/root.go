package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lz-asia/layerzero-foundation/command/helper"
	"github.com/lz-asia/layerzero-foundation/command/mingas"
	"github.com/lz-asia/layerzero-foundation/command/trustedpath"
	"github.com/lz-asia/layerzero-foundation/command/version"
)

type RootCommand struct {
	baseCmd *cobra.Command
}

func NewRootCommand() *RootCommand {
	rootCommand := &RootCommand{
		baseCmd: &cobra.Command{
			Short: "A trust and policy gateway between local applications and a cross-chain transport",
		},
	}

	helper.RegisterJSONOutputFlag(rootCommand.baseCmd)

	rootCommand.registerSubCommands()

	return rootCommand
}

func (rc *RootCommand) registerSubCommands() {
	rc.baseCmd.AddCommand(
		version.GetCommand(),
		trustedpath.GetCommand(),
		mingas.GetCommand(),
	)
}

func (rc *RootCommand) Execute() {
	if err := rc.baseCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)

		os.Exit(1)
	}
}
