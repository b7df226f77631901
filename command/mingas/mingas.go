package mingas

import (
	"github.com/spf13/cobra"

	"github.com/lz-asia/layerzero-foundation/command/mingas/get"
	"github.com/lz-asia/layerzero-foundation/command/mingas/set"
)

// GetCommand returns the top level command for managing gas floors
func GetCommand() *cobra.Command {
	minGasCmd := &cobra.Command{
		Use:   "min-gas",
		Short: "Top level command for managing gateway gas floors",
	}

	minGasCmd.AddCommand(
		set.GetCommand(),
		get.GetCommand(),
	)

	return minGasCmd
}
