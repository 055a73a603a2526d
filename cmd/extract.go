package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mouse-blink/mutmap/internal/domain"
	m "github.com/mouse-blink/mutmap/internal/model"
)

const excludeHelp = `Files are selected recursively by extension. Use --exclude/-x with a
regular expression to skip paths, for example -x '/generated/' -x 'Test\.java$'.`

const extractLongDescription = `Parse every Java file under the source root and write one line per
if/while/for/do/switch condition to the condition dump:

  class:line:node_type:condition

Files that fail to parse are recorded in the dump as error markers and
reported at the end; they do not stop the extraction.

` + excludeHelp

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract [source-root]",
		Short: "Extract condition blocks from Java sources",
		Long:  extractLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return currentWorkflow(cmd).Extract(cmd.Context(), extractArgs(args))
		},
	}

	configureExtractFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(newExtractCmd())
}

func configureExtractFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(sourceFlagName, "s", viper.GetString(sourceConfigKey), "root directory of the Java sources")
	cmd.Flags().StringP(outputFlagName, "o", viper.GetString(blocksConfigKey), "condition dump to write")
	cmd.Flags().IntP(parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of files parsed concurrently")
	addExtractionFlags(cmd)

	bindOnRun(cmd,
		flagBinding{sourceFlagName, sourceConfigKey},
		flagBinding{outputFlagName, blocksConfigKey},
		flagBinding{parallelFlagName, parallelConfigKey},
		flagBinding{strictFlagName, strictConfigKey},
		flagBinding{ternaryFlagName, ternaryConfigKey},
		flagBinding{maxFileSizeFlagName, maxFileSizeConfigKey},
	)
}

// addExtractionFlags registers the flags that configure the Java parser.
func addExtractionFlags(cmd *cobra.Command) {
	cmd.Flags().Bool(strictFlagName, viper.GetBool(strictConfigKey), "treat files with syntax errors as failures")
	cmd.Flags().Bool(ternaryFlagName, viper.GetBool(ternaryConfigKey), "include ternary conditions")
	cmd.Flags().Int64(maxFileSizeFlagName, viper.GetInt64(maxFileSizeConfigKey), "skip source files larger than this many bytes")
}

// extractArgs resolves the extraction arguments. A positional source root
// takes precedence over --source.
func extractArgs(args []string) domain.ExtractArgs {
	root := configPath(sourceConfigKey)
	if len(args) > 0 {
		root = m.Path(args[0])
	}

	return domain.ExtractArgs{
		Root:     root,
		Output:   configPath(blocksConfigKey),
		Exclude:  viper.GetStringSlice(excludeConfigKey),
		Parallel: viper.GetInt(parallelConfigKey),
	}
}
