package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mouse-blink/mutmap/internal/domain"
)

const runLongDescription = `Extract condition blocks and map mutants to them in one go.

The condition dump is written to --blocks and then read back for mapping.

` + excludeHelp

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [source-root]",
		Short: "Extract condition blocks and map mutants",
		Long:  runLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return currentWorkflow(cmd).Run(cmd.Context(), domain.RunArgs{
				Extract: extractArgs(args),
				Map:     mapArgs(),
			})
		},
	}

	cmd.Flags().StringP(sourceFlagName, "s", viper.GetString(sourceConfigKey), "root directory of the Java sources")
	addExtractionFlags(cmd)
	configureMapFlags(cmd)

	bindOnRun(cmd, append(mapBindings(),
		flagBinding{sourceFlagName, sourceConfigKey},
		flagBinding{strictFlagName, strictConfigKey},
		flagBinding{maxFileSizeFlagName, maxFileSizeConfigKey},
	)...)

	return cmd
}

func init() {
	rootCmd.AddCommand(newRunCmd())
}
