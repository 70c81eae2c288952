// Package config provides configuration structures and validation for the application.
// It handles environment-based configuration for the ledger, the interactive shell
// and the logger.
package config

import (
	"errors"
	"strings"

	"github.com/console-banking-ledger/internal/domain/ledger"
)

// Log outputs
const (
	LogOutputStderr = "stderr"
	LogOutputStdout = "stdout"
	LogOutputNone   = "none"
)

// Config holds the complete application configuration.
// Each field represents a subsystem's configuration and is validated during startup.
type Config struct {
	Application ApplicationConfig
	Logging     LoggingConfig
	Ledger      LedgerConfig
	Shell       ShellConfig

	// Source is the config file that was read, empty when only defaults and
	// environment variables were used.
	Source string
}

// ApplicationConfig contains general application configuration
type ApplicationConfig struct {
	Env  string
	Name string
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string
	Output string // stderr, stdout or none
}

// LedgerConfig contains ledger behaviour settings
type LedgerConfig struct {
	AccountIDUniqueness ledger.Uniqueness // permissive, client or global
}

// ShellConfig contains interactive shell settings
type ShellConfig struct {
	ClearScreen bool // Emit an ANSI clear sequence before each menu
	Pause       bool // Wait for Enter after every action
}

func (c *Config) validate() error {
	var validationErrors []string

	switch strings.ToLower(c.Logging.Output) {
	case LogOutputStderr, LogOutputStdout, LogOutputNone:
	default:
		validationErrors = append(validationErrors, "LOG_OUTPUT must be one of stderr, stdout, none")
	}

	if _, err := ledger.ParseUniqueness(string(c.Ledger.AccountIDUniqueness)); err != nil {
		validationErrors = append(validationErrors, "LEDGER_ACCOUNT_ID_UNIQUENESS must be one of permissive, client, global")
	}

	if c.Application.Name == "" {
		validationErrors = append(validationErrors, "APP_NAME is required")
	}

	if len(validationErrors) > 0 {
		return errors.New(strings.Join(validationErrors, ", "))
	}

	return nil
}
