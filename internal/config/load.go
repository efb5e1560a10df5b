package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file values.
const (
	BindAddrEnvVar = "RECEIPTD_BIND_ADDR"
	DatabaseEnvVar = "RECEIPTD_DATABASE"
	LogLevelEnvVar = "RECEIPTD_LOG_LEVEL"
)

// Load reads the configuration from path, layering environment overrides on
// top. A missing file is not an error: defaults plus environment apply. A
// .env file in the working directory is loaded first, if present, so local
// deployments can keep their settings next to the binary.
func Load(path string) (*Config, error) {
	// Best effort, exactly like the usual dotenv behavior: absence is fine.
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to defaults + env
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	applyEnv(cfg)

	if cfg.BindAddr == "" {
		cfg.BindAddr = Default().BindAddr
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(BindAddrEnvVar); v != "" {
		cfg.BindAddr = v
	}
	if v := os.Getenv(DatabaseEnvVar); v != "" {
		cfg.Database = v
	}
	if v := os.Getenv(LogLevelEnvVar); v != "" {
		cfg.LogLevel = v
	}
}
