package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"

	"github.com/perpusid/circulation-service/pkg/kafka"
	"github.com/perpusid/circulation-service/pkg/logger"
	"github.com/perpusid/circulation-service/pkg/postgres"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration
}

type Config struct {
	Server   HTTPServer      `yaml:"server"`
	Database postgres.Config `yaml:"database"`
	Kafka    kafka.Config
	Log      logger.Log `yaml:"log"`
}

type Option func(*Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(c *Config) {
		c.Log.LogLevel = level
	}
}

func WithWriteTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Server.WriteTimeout = d
	}
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment. Options apply after the env pass
// so they win over envconfig defaults such as LOG_LEVEL's "info".
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		if err := envconfig.Process("", &config); err != nil {
			log.Fatal("NewConfig ", err)
		}
		for _, op := range ops {
			op(&config)
		}
		cfg = config
		printConfig(cfg)
	})

	return &cfg
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
