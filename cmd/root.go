// Package cmd provides the root command and CLI setup for mutmap.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mouse-blink/mutmap/internal/adapter"
	"github.com/mouse-blink/mutmap/internal/controller"
	"github.com/mouse-blink/mutmap/internal/domain"
	m "github.com/mouse-blink/mutmap/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var tableStore adapter.TableStore
var metricsWriter adapter.MetricsWriter
var mapper domain.Mapper

// workflow is built on first use so that extraction options given as
// flags reach the Java adapter. Tests replace it with a mock.
var workflow domain.Workflow

// excludePatterns is a root-level flag that filters source files.
var excludePatterns []string

var verboseFlag bool
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)
	configureRootHooks(rootCmd)

	// Initialize shared dependencies.
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	tableStore = adapter.NewLocalTableStore(fsAdapter)
	metricsWriter = adapter.NewTextfileMetricsWriter()
	mapper = domain.NewMapper()
}

const rootLongDescription = `mutmap links mutation testing results to the condition blocks of a Java
code base. It extracts if/while/for/do/switch conditions with tree-sitter,
turns a mutation log into a table and annotates every mutant with the
condition block it most likely altered.

Typical pipeline:
  mutmap extract --source src/main/java
  mutmap parse --log mutants.log
  mutmap map
  mutmap view`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "mutmap",
		Short:        "Map mutants to the condition blocks they alter",
		Long:         rootLongDescription,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)
	configureRootHooks(cmd)

	return cmd
}

func configureRootHooks(cmd *cobra.Command) {
	cmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "debug logging and unmapped mutation details")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// newWorkflow wires the adapters for a single command execution using the
// resolved configuration.
func newWorkflow(cmd *cobra.Command) domain.Workflow {
	javaAdapter := adapter.NewLocalJavaFileAdapter(
		adapter.WithStrict(viper.GetBool(strictConfigKey)),
		adapter.WithTernary(viper.GetBool(ternaryConfigKey)),
		adapter.WithMaxFileSize(viper.GetInt64(maxFileSizeConfigKey)),
	)

	useTTY := viper.GetBool(interactiveConfigKey) && controller.IsTTY(cmd.OutOrStdout())
	ui := controller.NewUI(cmd, useTTY)

	return domain.NewWorkflow(
		fsAdapter,
		tableStore,
		metricsWriter,
		ui,
		domain.NewConditionExtractor(fsAdapter, javaAdapter),
		mapper,
	)
}

// currentWorkflow returns the shared workflow, building it on first use.
func currentWorkflow(cmd *cobra.Command) domain.Workflow {
	if workflow == nil {
		workflow = newWorkflow(cmd)
	}

	return workflow
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// flagBinding pairs a command-local flag with its config key.
type flagBinding struct {
	flag string
	key  string
}

// bindOnRun binds the command's flags when it runs. Several commands share
// config keys, and viper keeps only the last binding per key.
func bindOnRun(cmd *cobra.Command, bindings ...flagBinding) {
	cmd.PreRun = func(cmd *cobra.Command, _ []string) {
		for _, b := range bindings {
			bindFlagToConfig(cmd.Flags().Lookup(b.flag), b.key)
		}
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func configPath(key string) m.Path {
	return m.Path(viper.GetString(key))
}
