package server

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultAddr            = ":8080"
	DefaultShutdownTimeout = 10 * time.Second
)

// Config holds the runtime parameters of the HTTP front end.
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
}

// LoadConfig reads the server configuration from the given file (any format
// viper understands) and the GRUNDSTEUER_* environment, env taking
// precedence. A missing file falls back to defaults without error.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("addr", DefaultAddr)
	v.SetDefault("shutdown_timeout", DefaultShutdownTimeout.String())
	v.SetEnvPrefix("GRUNDSTEUER")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to read server config %s: %w", path, err)
			}
		}
	}

	timeout, err := time.ParseDuration(v.GetString("shutdown_timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	if timeout <= 0 {
		timeout = DefaultShutdownTimeout
	}

	cfg := &Config{
		Addr:            v.GetString("addr"),
		ShutdownTimeout: timeout,
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	return cfg, nil
}
