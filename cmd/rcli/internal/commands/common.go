package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luffy2025/rcli/internal/domain/textsign"
	"github.com/luffy2025/rcli/internal/pkg/config"
	"github.com/luffy2025/rcli/internal/pkg/logger"
)

func setupLogger() (logger.Logger, error) {
	if err := logger.InitLogger(config.NewCLILoggerSettings()); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// InitCommands registers every command group on rootCmd.
func InitCommands(rootCmd *cobra.Command) error {
	loggerInstance, err := setupLogger()
	if err != nil {
		return err
	}

	if err := InitTextCommands(rootCmd, loggerInstance); err != nil {
		return fmt.Errorf("failed to initialize text commands: %w", err)
	}
	if err := InitJWTCommands(rootCmd, loggerInstance); err != nil {
		return fmt.Errorf("failed to initialize jwt commands: %w", err)
	}
	if err := InitBase64Commands(rootCmd, loggerInstance); err != nil {
		return fmt.Errorf("failed to initialize base64 commands: %w", err)
	}
	return nil
}

func formatFlag(cmd *cobra.Command) (textsign.Format, error) {
	value, err := cmd.Flags().GetString("format")
	if err != nil {
		return "", fmt.Errorf("invalid format flag: %w", err)
	}
	return textsign.ParseFormat(value)
}
