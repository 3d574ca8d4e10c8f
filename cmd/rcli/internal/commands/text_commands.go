package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/luffy2025/rcli/internal/app"
	"github.com/luffy2025/rcli/internal/domain/textsign"
	"github.com/luffy2025/rcli/internal/infrastructure/cryptography"
	"github.com/luffy2025/rcli/internal/pkg/fileutil"
	"github.com/luffy2025/rcli/internal/pkg/logger"
)

// TextCommandHandler encapsulates logic for signing, verifying and generating keys via CLI.
type TextCommandHandler struct {
	textService textsign.TextService
	logger      logger.Logger
}

// NewTextCommandHandler initializes a TextCommandHandler backed by the text service.
func NewTextCommandHandler(loggerInstance logger.Logger, opts ...cryptography.Option) (*TextCommandHandler, error) {
	generator := cryptography.NewKeyGenerator(loggerInstance, opts...)

	textService, err := app.NewTextService(generator, loggerInstance, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create text service: %w", err)
	}

	return &TextCommandHandler{
		textService: textService,
		logger:      loggerInstance,
	}, nil
}

// SignTextCmd signs the input and prints the signature
func (commandHandler *TextCommandHandler) SignTextCmd(cmd *cobra.Command, _ []string) error {
	format, err := formatFlag(cmd)
	if err != nil {
		return err
	}
	input, err := cmd.Flags().GetString("input")
	if err != nil {
		return fmt.Errorf("invalid input flag: %w", err)
	}
	keyPath, err := cmd.Flags().GetString("key")
	if err != nil {
		return fmt.Errorf("invalid key flag: %w", err)
	}

	signature, err := commandHandler.textService.Sign(cmd.Context(), input, keyPath, format)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), signature)
	return nil
}

// VerifyTextCmd verifies a signature over the input and prints the result
func (commandHandler *TextCommandHandler) VerifyTextCmd(cmd *cobra.Command, _ []string) error {
	format, err := formatFlag(cmd)
	if err != nil {
		return err
	}
	input, err := cmd.Flags().GetString("input")
	if err != nil {
		return fmt.Errorf("invalid input flag: %w", err)
	}
	keyPath, err := cmd.Flags().GetString("key")
	if err != nil {
		return fmt.Errorf("invalid key flag: %w", err)
	}
	signature, err := cmd.Flags().GetString("sig")
	if err != nil {
		return fmt.Errorf("invalid sig flag: %w", err)
	}

	valid, err := commandHandler.textService.Verify(cmd.Context(), input, keyPath, signature, format)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), valid)
	return nil
}

// GenerateTextKeysCmd generates a key set and persists it in the output directory
func (commandHandler *TextCommandHandler) GenerateTextKeysCmd(cmd *cobra.Command, _ []string) error {
	format, err := formatFlag(cmd)
	if err != nil {
		return err
	}
	outputDir, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("invalid output flag: %w", err)
	}
	keyMode, err := cmd.Flags().GetString("key-mode")
	if err != nil {
		return fmt.Errorf("invalid key-mode flag: %w", err)
	}

	mode := textsign.KeyMaterialMode(strings.ToLower(keyMode))
	if mode != textsign.KeyMaterialCharset && mode != textsign.KeyMaterialFullRange {
		return fmt.Errorf("key mode %q not supported, use %s or %s", keyMode, textsign.KeyMaterialCharset, textsign.KeyMaterialFullRange)
	}

	keys, err := commandHandler.textService.Generate(cmd.Context(), format, textsign.GenerateOptions{KeyMode: mode})
	if err != nil {
		return err
	}

	paths, err := fileutil.WriteFiles(outputDir, format.KeyFileNames(), keys)
	if err != nil {
		return err
	}

	for _, path := range paths {
		commandHandler.logger.Info(fmt.Sprintf("Wrote %s key to %s", format, path))
	}
	return nil
}

// InitTextCommands registers the text command group
func InitTextCommands(rootCmd *cobra.Command, loggerInstance logger.Logger) error {
	handler, err := NewTextCommandHandler(loggerInstance)
	if err != nil {
		return fmt.Errorf("failed to create text command handler: %w", err)
	}

	formats := make([]string, 0, len(textsign.Formats()))
	for _, f := range textsign.Formats() {
		formats = append(formats, f.String())
	}
	formatUsage := "Signing format (" + strings.Join(formats, ", ") + ")"

	textCmd := &cobra.Command{
		Use:   "text",
		Short: "Sign, verify and generate keys for text",
	}

	signCmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign the input with a private or shared key",
		RunE:  handler.SignTextCmd,
	}
	signCmd.Flags().StringP("input", "i", fileutil.StdinRef, "Input file path, - for stdin")
	signCmd.Flags().StringP("key", "k", "", "Key file path")
	signCmd.Flags().StringP("format", "f", textsign.FormatBlake3.String(), formatUsage)
	_ = signCmd.MarkFlagRequired("key")

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature over the input",
		RunE:  handler.VerifyTextCmd,
	}
	verifyCmd.Flags().StringP("input", "i", fileutil.StdinRef, "Input file path, - for stdin")
	verifyCmd.Flags().StringP("key", "k", "", "Key file path (public key for ed25519)")
	verifyCmd.Flags().StringP("sig", "s", "", "Signature as URL-safe base64 without padding")
	verifyCmd.Flags().StringP("format", "f", textsign.FormatBlake3.String(), formatUsage)
	_ = verifyCmd.MarkFlagRequired("key")
	_ = verifyCmd.MarkFlagRequired("sig")

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a key or key pair",
		RunE:  handler.GenerateTextKeysCmd,
	}
	generateCmd.Flags().StringP("format", "f", textsign.FormatBlake3.String(), formatUsage)
	generateCmd.Flags().StringP("output", "o", "", "Directory to write the key files to")
	generateCmd.Flags().String("key-mode", string(textsign.KeyMaterialCharset), "blake3 key material: charset or random")
	_ = generateCmd.MarkFlagRequired("output")

	textCmd.AddCommand(signCmd, verifyCmd, generateCmd)
	rootCmd.AddCommand(textCmd)
	return nil
}
