// Package cli wires configuration, logging, the ledger and the interactive
// shell behind the bank command.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/console-banking-ledger/internal/config"
	"github.com/console-banking-ledger/internal/domain/ledger"
	"github.com/console-banking-ledger/internal/logger"
	"github.com/console-banking-ledger/internal/shell"
)

const defaultConfigName = "bank"

// NewRootCommand creates the bank command
func NewRootCommand() *cobra.Command {
	var (
		configName string
		logLevel   string
		uniqueness string
		noPause    bool
	)

	cmd := &cobra.Command{
		Use:           "bank",
		Short:         "Interactive in-memory banking ledger",
		Long:          "bank runs a single-operator text menu over an in-memory ledger of clients and accounts.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Flags take precedence over the config file and environment
			v := viper.New()
			if cmd.Flags().Changed("log-level") {
				v.Set("LOG_LEVEL", logLevel)
			}
			if cmd.Flags().Changed("uniqueness") {
				v.Set("LEDGER_ACCOUNT_ID_UNIQUENESS", uniqueness)
			}
			if noPause {
				v.Set("SHELL_PAUSE", false)
				v.Set("SHELL_CLEAR_SCREEN", false)
			}

			cfg, err := config.LoadFromViper(v, configName)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			return run(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&configName, "config", defaultConfigName, "base name of the .env config file looked up in ./configs and .")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	cmd.Flags().StringVar(&uniqueness, "uniqueness", "", "account id uniqueness: permissive, client or global")
	cmd.Flags().BoolVar(&noPause, "no-pause", false, "disable screen clearing and the pause after each action")

	return cmd
}

func run(cmd *cobra.Command, cfg *config.Config) error {
	log := logger.NewLoggerWithWriter(cfg, logWriter(cmd, cfg.Logging.Output))
	if cfg.Source != "" {
		log.Debug("Configuration loaded", "file", cfg.Source)
	}

	bank := ledger.New(ledger.WithUniqueness(cfg.Ledger.AccountIDUniqueness))
	log.Info("Ledger initialized", "uniqueness", string(cfg.Ledger.AccountIDUniqueness))

	sh := shell.New(bank, cmd.InOrStdin(), cmd.OutOrStdout(), log, shell.Options{
		ClearScreen: cfg.Shell.ClearScreen,
		Pause:       cfg.Shell.Pause,
	})
	if err := sh.Run(cmd.Context()); err != nil {
		return err
	}

	log.Info("Shutdown completed",
		"clients", bank.ClientCount(),
		"accounts", bank.AccountCount(),
		"total_balance", bank.TotalBalance().String(),
	)
	return nil
}

func logWriter(cmd *cobra.Command, output string) io.Writer {
	switch output {
	case config.LogOutputStdout:
		return cmd.OutOrStdout()
	case config.LogOutputNone:
		return io.Discard
	default:
		return cmd.ErrOrStderr()
	}
}

// Execute runs the bank command until the operator exits or input ends
func Execute() error {
	return NewRootCommand().Execute()
}
