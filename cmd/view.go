package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mouse-blink/mutmap/internal/domain"
)

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View a previously mapped table",
		Long: `Print the mapping summary of a mapped table. With --verbose the
unmapped mutants are listed with a diff of their original and mutated text.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return currentWorkflow(cmd).View(cmd.Context(), domain.ViewArgs{
				Mapped:  configPath(mappedConfigKey),
				Summary: configPath(summaryConfigKey),
				Metrics: configPath(metricsConfigKey),
				Verbose: viper.GetBool(logVerboseKey),
			})
		},
	}

	cmd.Flags().StringP(mappedFlagName, "i", viper.GetString(mappedConfigKey), "mapped table to read")
	cmd.Flags().String(summaryFlagName, viper.GetString(summaryConfigKey), "optional YAML summary to write")
	cmd.Flags().String(metricsFlagName, viper.GetString(metricsConfigKey), "optional Prometheus textfile to write")

	bindOnRun(cmd,
		flagBinding{mappedFlagName, mappedConfigKey},
		flagBinding{summaryFlagName, summaryConfigKey},
		flagBinding{metricsFlagName, metricsConfigKey},
	)

	return cmd
}

func init() {
	rootCmd.AddCommand(newViewCmd())
}
