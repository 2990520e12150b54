package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
	"pluginscout.dev/pkg/pluginscout/internal/adapter"
	"pluginscout.dev/pkg/pluginscout/internal/controller"
	"pluginscout.dev/pkg/pluginscout/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "pluginscout"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	isolationFlagName     = "isolation"
	watchChangesFlagName  = "watch-changes"
	filterFlagName        = "filter"
	cancelTimeoutFlagName = "cancel-timeout"
	loaderFlagName        = "loader"
	symbolFlagName        = "symbol"
	formatFlagName        = "format"
	searchFlagName        = "search"
	debounceFlagName      = "debounce"
	refreshFlagName       = "refresh"
	logFileFlagName       = "log-file"
	verboseFlagName       = "verbose"

	cacheIsolationKey     = "cache.isolation"
	cacheWatchChangesKey  = "cache.watch_changes"
	cacheFilterKey        = "cache.filter"
	cacheCancelTimeoutKey = "cache.cancel_timeout"
	loaderKindKey         = "loader.kind"
	loaderSymbolKey       = "loader.symbol"
	watchDebounceKey      = "watch.debounce"
	watchRefreshKey       = "watch.refresh"
	resolveSearchKey      = "resolve.search"
	outputFormatKey       = "output.format"

	defaultIsolation     = false
	defaultWatchChanges  = true
	defaultFilter        = ""
	defaultCancelTimeout = domain.DefaultCancelTimeout
	defaultLoaderKind    = loaderGoPlugin
	defaultSymbol        = adapter.DefaultCapabilitySymbol
	defaultDebounce      = 200 * time.Millisecond
	defaultRefresh       = 500 * time.Millisecond
	defaultOutputFormat  = controller.FormatTable

	envPrefix = "PLUGINSCOUT"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".pluginscout.log"
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
	viper.SetDefault(cacheIsolationKey, defaultIsolation)
	viper.SetDefault(cacheWatchChangesKey, defaultWatchChanges)
	viper.SetDefault(cacheFilterKey, defaultFilter)
	viper.SetDefault(cacheCancelTimeoutKey, defaultCancelTimeout)
	viper.SetDefault(loaderKindKey, defaultLoaderKind)
	viper.SetDefault(loaderSymbolKey, defaultSymbol)
	viper.SetDefault(watchDebounceKey, defaultDebounce)
	viper.SetDefault(watchRefreshKey, defaultRefresh)
	viper.SetDefault(resolveSearchKey, []string{})
	viper.SetDefault(outputFormatKey, defaultOutputFormat)

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
		if !errors.As(err, &notFound) {
			slog.Debug("Failed to read config file", "error", err)
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
