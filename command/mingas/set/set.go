package set

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/lz-asia/layerzero-foundation/command"
	"github.com/lz-asia/layerzero-foundation/command/helper"
	"github.com/lz-asia/layerzero-foundation/gateway"
	"github.com/lz-asia/layerzero-foundation/helper/common"
)

var (
	params setParams
)

// GetCommand returns the min gas set command
func GetCommand() *cobra.Command {
	setCmd := &cobra.Command{
		Use:     "set",
		Short:   "Writes the gas floor for a destination chain and message type into the gateway state",
		PreRunE: preRunCommand,
		Run:     runCommand,
	}

	setFlags(setCmd)

	return setCmd
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
		"the destination chain id the floor applies to",
	)

	cmd.Flags().Uint16Var(
		&params.messageType,
		msgTypeFlag,
		0,
		"the application message type the floor applies to",
	)

	cmd.Flags().StringVar(
		&params.rawValue,
		valueFlag,
		"",
		"the minimum destination gas, decimal or hex",
	)

	_ = cmd.MarkFlagRequired(chainFlag)
	_ = cmd.MarkFlagRequired(valueFlag)
}

func runCommand(cmd *cobra.Command, _ []string) {
	outputter := command.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	if err := common.SetupDataDir(params.dataDir, nil); err != nil {
		outputter.SetError(err)

		return
	}

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

	if err := policy.SetMinGas(params.chainID, params.messageType, params.minGas); err != nil {
		outputter.SetError(err)

		return
	}

	outputter.SetCommandResult(&SetResult{
		ChainID:     params.chainID,
		MessageType: params.messageType,
		MinGas:      params.minGas.String(),
	})
}
