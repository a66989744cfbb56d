package config

import (
	"os"
	"strconv"
)

type Config struct {
	App     AppConfig
	Logger  LoggerConfig
	Storage StorageConfig
}

type AppConfig struct {
	Env string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type StorageConfig struct {
	// DataDir holds the snapshot files, one JSON file per collection.
	DataDir string
}

func LoadEnv() *Config {
	return &Config{
		App: AppConfig{
			Env: getEnv("APP_ENV", "dev"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Storage: StorageConfig{
			DataDir: getEnv("STORAGE_DATA_DIR", "./data"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
