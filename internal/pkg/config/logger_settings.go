package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// LoggerSettings holds configuration settings for logging, including log level, type and file path
type LoggerSettings struct {
	LogLevel   string `toml:"log_level" validate:"required,oneof=info debug error warning critical"`
	LogType    string `toml:"log_type" validate:"required,oneof=console file"`
	FilePath   string `toml:"file_path"`
	MaxSize    int    `toml:"max_size"`
	MaxBackups int    `toml:"max_backups"`
	MaxAge     int    `toml:"max_age"`
}

// NewCLILoggerSettings returns console settings for the CLI. The level is taken from
// RCLI_LOG_LEVEL when set and defaults to info.
func NewCLILoggerSettings() *LoggerSettings {
	level := os.Getenv(EnvLogLevel)
	if level == "" {
		level = LogLevelInfo
	}
	return &LoggerSettings{
		LogLevel: level,
		LogType:  LogTypeConsole,
	}
}

// Validate checks that all fields in LoggerSettings are valid
func (s *LoggerSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}

	if s.LogType != LogTypeFile {
		return nil
	}

	// lumberjack rotation bounds
	if s.FilePath == "" {
		return fmt.Errorf("file path is required for file logger")
	}
	if s.MaxSize < 1 || s.MaxSize > 100 {
		return fmt.Errorf("max size must be between 1 and 100 MB")
	}
	if s.MaxBackups < 1 || s.MaxBackups > 10 {
		return fmt.Errorf("max backups must be between 1 and 10")
	}
	if s.MaxAge < 1 || s.MaxAge > 365 {
		return fmt.Errorf("max age must be between 1 and 365 days")
	}

	return nil
}
