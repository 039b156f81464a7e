package cmd

import (
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "crusher"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName           = "output"
	inputFileFlagName        = "input-file"
	inputDirFlagName         = "input-dir"
	extensionFlagName        = "extension"
	recursiveFlagName        = "recursive"
	strategyFlagName         = "strategy"
	keepGoingFlagName        = "keep-going"
	parallelFlagName         = "parallel"
	prefixFlagName           = "prefix"
	manifestFlagName         = "manifest"
	declarationNamesFlagName = "include-declaration-names"
	diffFlagName             = "diff"
	logFileFlagName          = "log-file"
	verboseFlagName          = "verbose"

	extensionConfigKey        = "input.extension"
	recursiveConfigKey        = "input.recursive"
	strategyConfigKey         = "crush.strategy"
	keepGoingConfigKey        = "crush.keep_going"
	parallelConfigKey         = "crush.parallel"
	prefixConfigKey           = "crush.prefix"
	manifestConfigKey         = "crush.manifest"
	declarationNamesConfigKey = "crush.include_declaration_names"

	defaultOutputDir        = ""
	defaultExtension        = "rs"
	defaultRecursive        = true
	defaultStrategy         = "struct"
	defaultKeepGoing        = false
	defaultParallel         = 1
	defaultPrefix           = "crushed_"
	defaultManifest         = false
	defaultDeclarationNames = false

	envPrefix = "CRUSHER"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".crusher.log"
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
	viper.SetDefault(outputFlagName, defaultOutputDir)
	viper.SetDefault(extensionConfigKey, defaultExtension)
	viper.SetDefault(recursiveConfigKey, defaultRecursive)
	viper.SetDefault(strategyConfigKey, defaultStrategy)
	viper.SetDefault(keepGoingConfigKey, defaultKeepGoing)
	viper.SetDefault(parallelConfigKey, defaultParallel)
	viper.SetDefault(prefixConfigKey, defaultPrefix)
	viper.SetDefault(manifestConfigKey, defaultManifest)
	viper.SetDefault(declarationNamesConfigKey, defaultDeclarationNames)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("Failed to read config file", "path", configFileName, "error", err)
		}
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
	if verbose || viper.GetBool(logVerboseKey) {
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
