// Package main is the entry point for the rcli application.
// It registers the text, jwt and base64 command groups and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/luffy2025/rcli/cmd/rcli/internal/commands"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "rcli",
		Short: "Text signing CLI tool",
		Long: `rcli signs and verifies text with BLAKE3 keyed hashes, Ed25519 signatures and
ChaCha20-Poly1305 sealed envelopes. It also issues HS256 JWTs and encodes or decodes base64.

Signatures are printed as URL-safe base64 without padding. Set RCLI_LOG_LEVEL to change the
log level; logs are written to stderr.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Initialize all command groups BEFORE executing
	if err := commands.InitCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
}
