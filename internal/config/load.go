package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/console-banking-ledger/internal/domain/ledger"
)

// LoadConfig loads configuration from a .env file using the provided base name.
// A missing file is not an error: defaults and environment variables still apply.
func LoadConfig(configName string) (*Config, error) {
	return loadConfig(viper.New(), fmt.Sprintf("%s.env", configName), "env")
}

// LoadConfigWithName loads configuration using the specified name, auto-detecting the file type
func LoadConfigWithName(configName string) (*Config, error) {
	return loadConfig(viper.New(), configName, "")
}

// LoadFromViper builds the configuration from an already prepared viper instance.
// Callers use it to layer command line flags over files and environment.
func LoadFromViper(v *viper.Viper, configName string) (*Config, error) {
	return loadConfig(v, fmt.Sprintf("%s.env", configName), "env")
}

// loadConfig layers configuration sources:
// 1. Defaults
// 2. Config file values (if found)
// 3. Environment variables
// 4. Values explicitly set on v by the caller (flags)
// and validates the result.
func loadConfig(v *viper.Viper, configName, configType string) (*Config, error) {
	setDefaults(v)

	v.SetConfigName(configName)
	if configType != "" {
		v.SetConfigType(configType)
	}

	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	source := ""
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file %s: %w", v.ConfigFileUsed(), err)
		}
	} else {
		source = v.ConfigFileUsed()
	}

	v.AutomaticEnv()

	config := &Config{
		Application: ApplicationConfig{
			Env:  v.GetString("APP_ENV"),
			Name: v.GetString("APP_NAME"),
		},
		Logging: LoggingConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Output: strings.ToLower(v.GetString("LOG_OUTPUT")),
		},
		Ledger: LedgerConfig{
			AccountIDUniqueness: ledger.Uniqueness(strings.ToLower(strings.TrimSpace(v.GetString("LEDGER_ACCOUNT_ID_UNIQUENESS")))),
		},
		Shell: ShellConfig{
			ClearScreen: v.GetBool("SHELL_CLEAR_SCREEN"),
			Pause:       v.GetBool("SHELL_PAUSE"),
		},
		Source: source,
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults initializes configuration with default values used when no
// configuration file or environment variables are present.
func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "banking-ledger")

	// Logs go to stderr so they never interleave with the menus on stdout
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_OUTPUT", LogOutputStderr)

	v.SetDefault("LEDGER_ACCOUNT_ID_UNIQUENESS", string(ledger.UniquenessClient))

	v.SetDefault("SHELL_CLEAR_SCREEN", true)
	v.SetDefault("SHELL_PAUSE", true)
}
