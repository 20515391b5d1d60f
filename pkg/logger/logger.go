package logger

import (
	"storefront-service/pkg/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger

// InitLogger initializes the logger with configuration
func InitLogger(cfg *config.Config) error {
	var level zapcore.Level
	switch cfg.Log.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var err error
	if cfg.Server.Env == "production" {
		// Production logger configuration
		prodConfig := zap.NewProductionConfig()
		prodConfig.Level = zap.NewAtomicLevelAt(level)
		prodConfig.EncoderConfig.TimeKey = "timestamp"
		prodConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

		log, err = prodConfig.Build(zap.Fields(
			zap.String("service", cfg.ServiceName),
			zap.String("environment", cfg.Server.Env),
		))
	} else {
		// Development logger configuration with colors and human-friendly output
		devConfig := zap.NewDevelopmentConfig()
		devConfig.Level = zap.NewAtomicLevelAt(level)
		devConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

		log, err = devConfig.Build(zap.Fields(
			zap.String("service", cfg.ServiceName),
			zap.String("environment", cfg.Server.Env),
		))
	}

	if err != nil {
		return err
	}

	// Replace the global logger
	zap.ReplaceGlobals(log)
	return nil
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if log == nil {
		log = zap.NewNop()
	}
	return log
}
