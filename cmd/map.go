package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mouse-blink/mutmap/internal/domain"
)

const mapLongDescription = `Annotate every mutant with the condition block it alters.

A mutant whose class and line match exactly one block is an exact match.
Several blocks on that line give a multiple match, resolved by --tie-break.
Otherwise the nearest block within two lines is used (nearby), and the
mutant is left unmapped when none exists.

--mutants accepts either a mutants table or a raw mutation log (.log).`

func newMapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map",
		Short: "Map mutants to condition blocks",
		Long:  mapLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return currentWorkflow(cmd).Map(cmd.Context(), mapArgs())
		},
	}

	configureMapFlags(cmd)

	bindOnRun(cmd, mapBindings()...)

	return cmd
}

func init() {
	rootCmd.AddCommand(newMapCmd())
}

// configureMapFlags registers the flags shared by map and run.
func configureMapFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(blocksFlagName, "b", viper.GetString(blocksConfigKey), "condition dump to read")
	cmd.Flags().StringP(mutantsFlagName, "m", viper.GetString(mutantsConfigKey), "mutants table or mutation log to read")
	cmd.Flags().StringP(outputFlagName, "o", viper.GetString(mappedConfigKey), "mapped table to write")
	cmd.Flags().String(summaryFlagName, viper.GetString(summaryConfigKey), "optional YAML summary to write")
	cmd.Flags().String(metricsFlagName, viper.GetString(metricsConfigKey), "optional Prometheus textfile to write")
	cmd.Flags().String(tieBreakFlagName, viper.GetString(tieBreakConfigKey), "block chosen on multiple matches: first or innermost")
	cmd.Flags().IntP(parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of concurrent mapping workers")

	if cmd.Flags().Lookup(ternaryFlagName) == nil {
		cmd.Flags().Bool(ternaryFlagName, viper.GetBool(ternaryConfigKey), "include ternary conditions")
	}
}

func mapBindings() []flagBinding {
	return []flagBinding{
		{blocksFlagName, blocksConfigKey},
		{mutantsFlagName, mutantsConfigKey},
		{outputFlagName, mappedConfigKey},
		{summaryFlagName, summaryConfigKey},
		{metricsFlagName, metricsConfigKey},
		{tieBreakFlagName, tieBreakConfigKey},
		{parallelFlagName, parallelConfigKey},
		{ternaryFlagName, ternaryConfigKey},
	}
}

func mapArgs() domain.MapArgs {
	return domain.MapArgs{
		Blocks:         configPath(blocksConfigKey),
		Mutants:        configPath(mutantsConfigKey),
		Output:         configPath(mappedConfigKey),
		Summary:        configPath(summaryConfigKey),
		Metrics:        configPath(metricsConfigKey),
		IncludeTernary: viper.GetBool(ternaryConfigKey),
		TieBreak:       tieBreakArg(),
		Parallel:       viper.GetInt(parallelConfigKey),
		Verbose:        viper.GetBool(logVerboseKey),
	}
}

// tieBreakArg normalises the configured policy so that " Innermost " and
// "FIRST" validate like their lower-case forms.
func tieBreakArg() domain.TieBreak {
	return domain.TieBreak(strings.ToLower(strings.TrimSpace(viper.GetString(tieBreakConfigKey))))
}
