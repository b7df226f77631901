package trustedpath

import (
	"github.com/spf13/cobra"

	"github.com/lz-asia/layerzero-foundation/command/trustedpath/get"
	"github.com/lz-asia/layerzero-foundation/command/trustedpath/set"
)

// GetCommand returns the top level command for managing trusted paths
func GetCommand() *cobra.Command {
	trustedPathCmd := &cobra.Command{
		Use:   "trusted-path",
		Short: "Top level command for managing gateway trusted paths",
	}

	trustedPathCmd.AddCommand(
		set.GetCommand(),
		get.GetCommand(),
	)

	return trustedPathCmd
}
