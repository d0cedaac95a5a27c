package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/perpusid/circulation-service/config"
)

func TestNewConfig_OptionsWinOverEnvDefaults(t *testing.T) {
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)

	// LOG_LEVEL carries default:"info"; the option must not be clobbered by it.
	require.Equal(t, zapcore.DebugLevel, cfg.Log.LogLevel)
	require.Equal(t, time.Minute, cfg.Server.WriteTimeout)
}
