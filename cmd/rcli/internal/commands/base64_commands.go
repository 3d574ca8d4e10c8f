package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/luffy2025/rcli/internal/app"
	"github.com/luffy2025/rcli/internal/domain/codec"
	"github.com/luffy2025/rcli/internal/pkg/fileutil"
	"github.com/luffy2025/rcli/internal/pkg/logger"
)

// Base64CommandHandler encapsulates logic for base64 encoding and decoding via CLI.
type Base64CommandHandler struct {
	base64Service codec.Base64Service
	logger        logger.Logger
}

// NewBase64CommandHandler initializes a Base64CommandHandler.
func NewBase64CommandHandler(loggerInstance logger.Logger) (*Base64CommandHandler, error) {
	base64Service, err := app.NewBase64Service(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create base64 service: %w", err)
	}

	return &Base64CommandHandler{
		base64Service: base64Service,
		logger:        loggerInstance,
	}, nil
}

// EncodeBase64Cmd encodes the input and prints or writes the result
func (commandHandler *Base64CommandHandler) EncodeBase64Cmd(cmd *cobra.Command, _ []string) error {
	input, format, output, err := base64Flags(cmd)
	if err != nil {
		return err
	}

	encoded, err := commandHandler.base64Service.Encode(cmd.Context(), input, format)
	if err != nil {
		return err
	}

	if output != "" {
		return commandHandler.writeOutput(output, []byte(encoded))
	}
	fmt.Fprintln(cmd.OutOrStdout(), encoded)
	return nil
}

// DecodeBase64Cmd decodes the input and prints or writes the result
func (commandHandler *Base64CommandHandler) DecodeBase64Cmd(cmd *cobra.Command, _ []string) error {
	input, format, output, err := base64Flags(cmd)
	if err != nil {
		return err
	}

	decoded, err := commandHandler.base64Service.Decode(cmd.Context(), input, format)
	if err != nil {
		return err
	}

	if output != "" {
		return commandHandler.writeOutput(output, decoded)
	}
	_, err = cmd.OutOrStdout().Write(decoded)
	return err
}

func (commandHandler *Base64CommandHandler) writeOutput(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	commandHandler.logger.Info(fmt.Sprintf("Wrote %d bytes to %s", len(data), path))
	return nil
}

func base64Flags(cmd *cobra.Command) (string, codec.Base64Format, string, error) {
	input, err := cmd.Flags().GetString("input")
	if err != nil {
		return "", "", "", fmt.Errorf("invalid input flag: %w", err)
	}
	value, err := cmd.Flags().GetString("format")
	if err != nil {
		return "", "", "", fmt.Errorf("invalid format flag: %w", err)
	}
	format, err := codec.ParseBase64Format(value)
	if err != nil {
		return "", "", "", err
	}
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return "", "", "", fmt.Errorf("invalid output flag: %w", err)
	}
	return input, format, output, nil
}

// InitBase64Commands registers the base64 command group
func InitBase64Commands(rootCmd *cobra.Command, loggerInstance logger.Logger) error {
	handler, err := NewBase64CommandHandler(loggerInstance)
	if err != nil {
		return fmt.Errorf("failed to create base64 command handler: %w", err)
	}

	base64Cmd := &cobra.Command{
		Use:   "base64",
		Short: "Encode and decode base64",
	}

	encodeCmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode the input as base64",
		RunE:  handler.EncodeBase64Cmd,
	}
	decodeCmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode base64 input",
		RunE:  handler.DecodeBase64Cmd,
	}

	for _, c := range []*cobra.Command{encodeCmd, decodeCmd} {
		c.Flags().StringP("input", "i", fileutil.StdinRef, "Input file path, - for stdin")
		c.Flags().StringP("output", "o", "", "Output file path, stdout when empty")
		c.Flags().String("format", string(codec.Base64Standard), "Base64 format (standard, urlsafe)")
	}

	base64Cmd.AddCommand(encodeCmd, decodeCmd)
	rootCmd.AddCommand(base64Cmd)
	return nil
}
