package helper

import (
	"errors"

	"github.com/ryanuber/columnize"
	"github.com/spf13/cobra"

	"github.com/lz-asia/layerzero-foundation/command"
	"github.com/lz-asia/layerzero-foundation/helper/common"
)

// RegisterJSONOutputFlag registers the --json output setting for all child commands
func RegisterJSONOutputFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().Bool(
		command.JSONOutputFlag,
		false,
		"get all outputs in json format (default false)",
	)
}

// RegisterDataDirFlag registers the --data-dir flag pointing at a gateway state directory
func RegisterDataDirFlag(dataDir *string, cmd *cobra.Command) {
	cmd.Flags().StringVar(
		dataDir,
		command.DataDirFlag,
		"",
		"the directory holding the gateway state",
	)

	_ = cmd.MarkFlagRequired(command.DataDirFlag)
}

// ValidateDataDir checks that the given state directory exists
func ValidateDataDir(dataDir string) error {
	if dataDir == "" {
		return errors.New("data directory not provided")
	}

	if !common.DirectoryExists(dataDir) {
		return errors.New("data directory does not exist")
	}

	return nil
}

// FormatKV formats key value pairs:
//
// Key = Value
//
// Note that the separator is |
func FormatKV(in []string) string {
	columnConf := columnize.DefaultConfig()
	columnConf.Empty = "<none>"
	columnConf.Glue = " = "

	return columnize.Format(in, columnConf)
}
