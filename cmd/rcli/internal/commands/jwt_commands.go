package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/luffy2025/rcli/internal/domain/textsign"
	"github.com/luffy2025/rcli/internal/infrastructure/cryptography"
	"github.com/luffy2025/rcli/internal/infrastructure/jwtauth"
	"github.com/luffy2025/rcli/internal/pkg/fileutil"
	"github.com/luffy2025/rcli/internal/pkg/logger"
)

const (
	defaultSecretPath = "fixtures/jwt.secret"
	secretFileName    = "jwt.secret"
)

// JWTCommandHandler encapsulates logic for issuing and verifying HS256 tokens via CLI.
type JWTCommandHandler struct {
	passwords  textsign.PasswordGenerator
	logger     logger.Logger
	jwtOptions []jwtauth.ProcessorOption
}

// NewJWTCommandHandler initializes a JWTCommandHandler.
func NewJWTCommandHandler(loggerInstance logger.Logger, opts ...cryptography.Option) *JWTCommandHandler {
	return &JWTCommandHandler{
		passwords: cryptography.NewPasswordGenerator(loggerInstance, opts...),
		logger:    loggerInstance,
	}
}

// SignJWTCmd issues a token and prints it
func (commandHandler *JWTCommandHandler) SignJWTCmd(cmd *cobra.Command, _ []string) error {
	sub, err := cmd.Flags().GetString("sub")
	if err != nil {
		return fmt.Errorf("invalid sub flag: %w", err)
	}
	aud, err := cmd.Flags().GetString("aud")
	if err != nil {
		return fmt.Errorf("invalid aud flag: %w", err)
	}
	exp, err := cmd.Flags().GetDuration("exp")
	if err != nil {
		return fmt.Errorf("invalid exp flag: %w", err)
	}
	secretPath, err := cmd.Flags().GetString("secret-file")
	if err != nil {
		return fmt.Errorf("invalid secret-file flag: %w", err)
	}

	processor, err := jwtauth.LoadJWTProcessor(secretPath, commandHandler.logger, commandHandler.jwtOptions...)
	if err != nil {
		return err
	}

	signed, err := processor.Sign(sub, aud, exp)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), signed)
	return nil
}

// VerifyJWTCmd verifies a token and prints the result
func (commandHandler *JWTCommandHandler) VerifyJWTCmd(cmd *cobra.Command, _ []string) error {
	tokenString, err := cmd.Flags().GetString("token")
	if err != nil {
		return fmt.Errorf("invalid token flag: %w", err)
	}
	aud, err := cmd.Flags().GetString("aud")
	if err != nil {
		return fmt.Errorf("invalid aud flag: %w", err)
	}
	secretPath, err := cmd.Flags().GetString("secret")
	if err != nil {
		return fmt.Errorf("invalid secret flag: %w", err)
	}

	// "-" reads the token from stdin, anything else is the token itself
	if tokenString == fileutil.StdinRef {
		if tokenString, err = fileutil.ReadTrimmed(fileutil.StdinRef); err != nil {
			return err
		}
	}

	processor, err := jwtauth.LoadJWTProcessor(secretPath, commandHandler.logger, commandHandler.jwtOptions...)
	if err != nil {
		return err
	}

	valid, err := processor.Verify(tokenString, aud)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), valid)
	return nil
}

// GenerateJWTSecretCmd writes a fresh secret to <output>/jwt.secret
func (commandHandler *JWTCommandHandler) GenerateJWTSecretCmd(cmd *cobra.Command, _ []string) error {
	length, err := cmd.Flags().GetInt("len")
	if err != nil {
		return fmt.Errorf("invalid len flag: %w", err)
	}
	outputDir, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("invalid output flag: %w", err)
	}

	secret, err := jwtauth.GenerateSecret(commandHandler.passwords, length)
	if err != nil {
		return err
	}

	if _, err := fileutil.WriteFiles(outputDir, []string{secretFileName}, [][]byte{[]byte(secret)}); err != nil {
		return err
	}

	commandHandler.logger.Info(fmt.Sprintf("Wrote JWT secret to %s", filepath.Join(outputDir, secretFileName)))
	return nil
}

// InitJWTCommands registers the jwt command group
func InitJWTCommands(rootCmd *cobra.Command, loggerInstance logger.Logger) error {
	handler := NewJWTCommandHandler(loggerInstance)

	jwtCmd := &cobra.Command{
		Use:   "jwt",
		Short: "Issue and verify HS256 JSON web tokens",
	}

	signCmd := &cobra.Command{
		Use:   "sign",
		Short: "Issue a token with sub, aud and exp claims",
		RunE:  handler.SignJWTCmd,
	}
	signCmd.Flags().String("sub", "", "Subject claim")
	signCmd.Flags().String("aud", "", "Audience claim")
	signCmd.Flags().Duration("exp", 0, "Token lifetime, e.g. 30m or 336h")
	signCmd.Flags().String("secret-file", defaultSecretPath, "Secret file path")
	_ = signCmd.MarkFlagRequired("sub")
	_ = signCmd.MarkFlagRequired("aud")
	_ = signCmd.MarkFlagRequired("exp")

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a token's signature, expiry and audience",
		RunE:  handler.VerifyJWTCmd,
	}
	verifyCmd.Flags().StringP("token", "t", fileutil.StdinRef, "Token, - for stdin")
	verifyCmd.Flags().String("aud", "", "Expected audience")
	verifyCmd.Flags().String("secret", defaultSecretPath, "Secret file path")
	_ = verifyCmd.MarkFlagRequired("aud")

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a secret file",
		RunE:  handler.GenerateJWTSecretCmd,
	}
	generateCmd.Flags().IntP("len", "l", 32, "Secret length")
	generateCmd.Flags().StringP("output", "o", filepath.Dir(defaultSecretPath), "Directory to write jwt.secret to")

	jwtCmd.AddCommand(signCmd, verifyCmd, generateCmd)
	rootCmd.AddCommand(jwtCmd)
	return nil
}
