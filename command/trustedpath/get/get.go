package get

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/lz-asia/layerzero-foundation/command"
	"github.com/lz-asia/layerzero-foundation/command/helper"
	"github.com/lz-asia/layerzero-foundation/gateway"
	"github.com/lz-asia/layerzero-foundation/types"
)

var (
	params getParams
)

// GetCommand returns the trusted path get command
func GetCommand() *cobra.Command {
	getCmd := &cobra.Command{
		Use:     "get",
		Short:   "Reads the trusted path for a remote chain from the gateway state",
		PreRunE: preRunCommand,
		Run:     runCommand,
	}

	setFlags(getCmd)

	return getCmd
}

func preRunCommand(_ *cobra.Command, _ []string) error {
	return params.validateFlags()
}

func setFlags(cmd *cobra.Command) {
	helper.RegisterDataDirFlag(&params.dataDir, cmd)

	cmd.Flags().Uint16Var(
		&params.chainID,
		chainFlag,
		0,
		"the remote chain id to look up",
	)

	_ = cmd.MarkFlagRequired(chainFlag)
}

func runCommand(cmd *cobra.Command, _ []string) {
	outputter := command.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	logger := hclog.NewNullLogger()

	state, err := gateway.NewState(params.dataDir, logger)
	if err != nil {
		outputter.SetError(fmt.Errorf("failed to open gateway state: %w", err))

		return
	}

	defer func() {
		_ = state.Close()
	}()

	registry, err := gateway.NewPathRegistry(logger, types.ZeroAddress, state.PathStore, nil)
	if err != nil {
		outputter.SetError(err)

		return
	}

	result := &GetResult{
		ChainID: params.chainID,
	}

	if path := registry.TrustedPath(params.chainID); path != nil {
		result.Path = types.HexBytes(path).String()
	}

	outputter.SetCommandResult(result)
}
