package bootstrap

import (
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/osse101/SaleBadge_Go/internal/config"
	"github.com/osse101/SaleBadge_Go/internal/logger"
)

// SetupLogger initializes the application logger from the loaded
// configuration and logs the startup banner.
func SetupLogger(cfg *config.Config) *slog.Logger {
	return SetupLoggerWithWriter(cfg, os.Stdout)
}

// SetupLoggerWithWriter is SetupLogger writing to w.
func SetupLoggerWithWriter(cfg *config.Config, w io.Writer) *slog.Logger {
	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		logger.DefaultServiceName,
		cfg.Version,
		cfg.Environment,
		slices.Contains(sourceLoggingEnvironments, cfg.Environment),
	)
	log := logger.InitLoggerWithWriter(loggerConfig, w)

	log.Info(LogMsgLoggingInitialized, "level", loggerConfig.LogLevel())
	log.Info(LogMsgStartingService,
		"environment", cfg.Environment,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)

	log.Debug(LogMsgConfigurationLoaded,
		"store_driver", cfg.StoreDriver,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"default_language", cfg.DefaultLanguage)

	return log
}
