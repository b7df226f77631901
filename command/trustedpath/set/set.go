package set

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/lz-asia/layerzero-foundation/command"
	"github.com/lz-asia/layerzero-foundation/command/helper"
	"github.com/lz-asia/layerzero-foundation/gateway"
	"github.com/lz-asia/layerzero-foundation/helper/common"
	"github.com/lz-asia/layerzero-foundation/types"
)

var (
	params setParams
)

// GetCommand returns the trusted path set command
func GetCommand() *cobra.Command {
	setCmd := &cobra.Command{
		Use:     "set",
		Short:   "Writes the trusted path for a remote chain into the gateway state",
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
		"the remote chain id the path applies to",
	)

	cmd.Flags().StringVar(
		&params.rawPath,
		pathFlag,
		"",
		"the hex encoded remote sender identity, an empty value revokes trust",
	)

	_ = cmd.MarkFlagRequired(chainFlag)
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

	registry, err := gateway.NewPathRegistry(logger, types.ZeroAddress, state.PathStore, nil)
	if err != nil {
		outputter.SetError(err)

		return
	}

	if err := registry.SetTrustedPath(params.chainID, params.path); err != nil {
		outputter.SetError(err)

		return
	}

	outputter.SetCommandResult(&SetResult{
		ChainID: params.chainID,
		Path:    types.HexBytes(params.path).String(),
	})
}
