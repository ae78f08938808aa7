package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server  ServerConfig
	Compile CompileConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// CompileConfig bounds a single compile request. MaxSourceBytes caps the
// request body; MaxConditionDepth caps WHERE-clause nesting so pathological
// input cannot exhaust the stack.
type CompileConfig struct {
	MaxSourceBytes    int64
	MaxConditionDepth int
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvInt("SERVER_PORT", 8080),
			ReadTimeout:  time.Duration(getEnvInt("SERVER_READ_TIMEOUT_SECS", 30)) * time.Second,
			WriteTimeout: time.Duration(getEnvInt("SERVER_WRITE_TIMEOUT_SECS", 60)) * time.Second,
		},
		Compile: CompileConfig{
			MaxSourceBytes:    int64(getEnvInt("COMPILE_MAX_SOURCE_BYTES", 1<<20)),
			MaxConditionDepth: getEnvInt("COMPILE_MAX_CONDITION_DEPTH", 200),
		},
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
