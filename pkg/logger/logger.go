package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Log struct {
	LogLevel zapcore.Level `yaml:"level" envconfig:"LOG_LEVEL" default:"info"`
	Sink     string        `yaml:"sink" envconfig:"LOG_SINK"`
}

// NewLogger builds a named zap logger. An empty Sink keeps the default
// stderr output.
func NewLogger(cfg Log, name string) *zap.Logger {
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.Sink != "" {
		zapCfg.OutputPaths = []string{cfg.Sink}
	}

	log, err := zapCfg.Build()
	if err != nil {
		panic(err)
	}
	return log.Named(name)
}
