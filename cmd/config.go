package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/mouse-blink/mutmap/internal/adapter"
	"github.com/mouse-blink/mutmap/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "mutmap"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	envPrefix = "MUTMAP"

	sourceFlagName      = "source"
	logInputFlagName    = "log"
	outputFlagName      = "output"
	blocksFlagName      = "blocks"
	mutantsFlagName     = "mutants"
	mappedFlagName      = "mapped"
	summaryFlagName     = "summary"
	metricsFlagName     = "metrics"
	excludeFlagName     = "exclude"
	parallelFlagName    = "parallel"
	strictFlagName      = "strict"
	ternaryFlagName     = "ternary"
	tieBreakFlagName    = "tie-break"
	maxFileSizeFlagName = "max-file-size"
	verboseFlagName     = "verbose"
	logFileFlagName     = "log-file"

	sourceConfigKey      = "paths.source"
	logInputConfigKey    = "paths.log"
	blocksConfigKey      = "paths.blocks"
	mutantsConfigKey     = "paths.mutants"
	mappedConfigKey      = "paths.mapped"
	summaryConfigKey     = "paths.summary"
	metricsConfigKey     = "paths.metrics"
	excludeConfigKey     = "paths.exclude"
	strictConfigKey      = "extract.strict"
	maxFileSizeConfigKey = "extract.max_file_size"
	ternaryConfigKey     = "blocks.include_ternary"
	tieBreakConfigKey    = "map.tie_break"
	parallelConfigKey    = "run.parallel"
	interactiveConfigKey = "ui.interactive"

	defaultSource      = "."
	defaultLogInput    = "mutants.log"
	defaultBlocks      = "data/all_condition_blocks.txt"
	defaultMutants     = "data/mutants_dataframe.csv"
	defaultMapped      = "data/mutants_mapped.csv"
	defaultSummary     = ""
	defaultMetrics     = ""
	defaultStrict      = true
	defaultTernary     = false
	defaultTieBreak    = string(domain.TieBreakFirst)
	defaultParallel    = 1
	defaultInteractive = true

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".mutmap.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(sourceConfigKey, defaultSource)
	viper.SetDefault(logInputConfigKey, defaultLogInput)
	viper.SetDefault(blocksConfigKey, defaultBlocks)
	viper.SetDefault(mutantsConfigKey, defaultMutants)
	viper.SetDefault(mappedConfigKey, defaultMapped)
	viper.SetDefault(summaryConfigKey, defaultSummary)
	viper.SetDefault(metricsConfigKey, defaultMetrics)
	viper.SetDefault(excludeConfigKey, []string{})
	viper.SetDefault(strictConfigKey, defaultStrict)
	viper.SetDefault(maxFileSizeConfigKey, adapter.DefaultMaxFileSize)
	viper.SetDefault(ternaryConfigKey, defaultTernary)
	viper.SetDefault(tieBreakConfigKey, defaultTieBreak)
	viper.SetDefault(parallelConfigKey, defaultParallel)
	viper.SetDefault(interactiveConfigKey, defaultInteractive)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	// A missing config file is fine; a broken one is reported and ignored.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return
		}

		fmt.Fprintf(os.Stderr, "mutmap: ignoring config %s: %v\n", viper.ConfigFileUsed(), err)
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
