package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	BackendSQLite = "sqlite"
	BackendMemory = "memory"

	BiometricNone    = "none"
	BiometricTrusted = "trusted"

	defaultEnv       = EnvLocal
	defaultConfigDir = ".pronotes"
)

type Config struct {
	Env           string `mapstructure:"app_env"`
	LogLevel      string `mapstructure:"log_level"`
	DataDir       string `mapstructure:"data_dir"`
	DataPath      string `mapstructure:"data_path"`
	StoreBackend  string `mapstructure:"store_backend"`
	BiometricMode string `mapstructure:"biometric_mode"`
}

// MustLoad builds the configuration from an env file plus the environment,
// resolves the data directory under the user's home and creates it. An
// explicit path must exist; with an empty path a ./.env file is picked up
// when present. It panics on an invalid configuration since nothing can
// run without one.
func MustLoad(path string) *Config {
	if path == "" {
		if _, err := os.Stat(".env"); err == nil {
			path = ".env"
		}
	}
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(fmt.Sprintf("failed to load config file %s: %v", path, err))
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("STORE_BACKEND", BackendSQLite)
	viper.SetDefault("BIOMETRIC_MODE", BiometricNone)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	dataDir := viper.GetString("DATA_DIR")
	if dataDir == "" {
		dataDir = filepath.Join(homeDir, defaultConfigDir)
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		fmt.Printf("failed to create data directory: %v\n", err)
	}

	env := viper.GetString("APP_ENV")

	logLevel := viper.GetString("LOG_LEVEL")
	if logLevel == "" {
		logLevel = defaultLogLevel(env)
	}

	config := &Config{
		Env:           env,
		LogLevel:      logLevel,
		DataDir:       dataDir,
		DataPath:      filepath.Join(dataDir, "pronotes.db"),
		StoreBackend:  viper.GetString("STORE_BACKEND"),
		BiometricMode: viper.GetString("BIOMETRIC_MODE"),
	}

	if err := config.validate(); err != nil {
		panic(fmt.Sprintf("invalid configuration: %v", err))
	}

	return config
}

// defaultLogLevel keeps local and dev environments verbose unless
// LOG_LEVEL says otherwise.
func defaultLogLevel(env string) string {
	switch env {
	case EnvLocal, EnvDev:
		return "debug"
	default:
		return "info"
	}
}

func (c *Config) validate() error {
	switch c.StoreBackend {
	case BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("unknown store backend %q", c.StoreBackend)
	}

	switch c.BiometricMode {
	case BiometricNone, BiometricTrusted:
	default:
		return fmt.Errorf("unknown biometric mode %q", c.BiometricMode)
	}

	return nil
}

// IsProd reports whether the environment is prod.
func (c *Config) IsProd() bool {
	return c.Env == EnvProd
}

// IsLocal reports whether the environment is local.
func (c *Config) IsLocal() bool {
	return c.Env == EnvLocal || c.Env == ""
}
