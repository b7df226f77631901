package get

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/lz-asia/layerzero-foundation/command"
	"github.com/lz-asia/layerzero-foundation/command/helper"
	"github.com/lz-asia/layerzero-foundation/gateway"
)

var (
	params getParams
)

// GetCommand returns the min gas get command
func GetCommand() *cobra.Command {
	getCmd := &cobra.Command{
		Use:     "get",
		Short:   "Reads the gas floor for a destination chain and message type from the gateway state",
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
		"the destination chain id to look up",
	)

	cmd.Flags().Uint16Var(
		&params.messageType,
		msgTypeFlag,
		0,
		"the application message type to look up",
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

	policy, err := gateway.NewGasPolicy(logger, state.GasStore, nil)
	if err != nil {
		outputter.SetError(err)

		return
	}

	result := &GetResult{
		ChainID:     params.chainID,
		MessageType: params.messageType,
	}

	if minGas := policy.MinGas(params.chainID, params.messageType); minGas != nil {
		result.MinGas = minGas.String()
	}

	outputter.SetCommandResult(result)
}
