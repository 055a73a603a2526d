package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mouse-blink/mutmap/internal/domain"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Convert a mutation log into a mutants table",
		Long: `Read a mutation tool log (id:operator:class@method:line:original |==> mutated)
and write it as a CSV table. Malformed records are skipped and counted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return currentWorkflow(cmd).Parse(cmd.Context(), domain.ParseArgs{
				Log:    configPath(logInputConfigKey),
				Output: configPath(mutantsConfigKey),
			})
		},
	}

	cmd.Flags().StringP(logInputFlagName, "l", viper.GetString(logInputConfigKey), "mutation log to read")
	cmd.Flags().StringP(outputFlagName, "o", viper.GetString(mutantsConfigKey), "mutants table to write")

	bindOnRun(cmd,
		flagBinding{logInputFlagName, logInputConfigKey},
		flagBinding{outputFlagName, mutantsConfigKey},
	)

	return cmd
}

func init() {
	rootCmd.AddCommand(newParseCmd())
}
