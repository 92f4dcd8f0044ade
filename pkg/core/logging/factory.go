// ============================================================================
// numlab - Complex number laboratory
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating session loggers
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	nllog "github.com/msto63/numlab/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name shown in every entry
	Name string

	// Log level (trace, debug, info, warn, error), default: info
	Level string

	// Output format: json, text, console or logfmt (default: text)
	Format string

	// Output writer (default: stderr)
	Output io.Writer

	// Session correlation id, generated when empty
	CorrelationID string

	// Record file and line of the call site
	EnableCaller bool
}

// NewLogger creates a foundation logger tagged with a session correlation id
func NewLogger(cfg LoggerConfig) *nllog.Logger {
	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	correlationID := cfg.CorrelationID
	if correlationID == "" {
		correlationID = NewSessionID()
	}

	return nllog.NewWithConfig(nllog.Config{
		Level:        parseLevel(cfg.Level),
		Format:       parseFormat(cfg.Format),
		Output:       output,
		Name:         cfg.Name,
		EnableCaller: cfg.EnableCaller,
	}).WithCorrelationID(correlationID)
}

// NewSessionID returns a fresh random id for correlating one run's entries
func NewSessionID() string {
	return uuid.NewString()
}

// parseLevel converts a string level, falling back to info
func parseLevel(level string) nllog.Level {
	l, err := nllog.ParseLevel(level)
	if err != nil {
		return nllog.LevelInfo
	}
	return l
}

// parseFormat converts a string format, falling back to text
func parseFormat(format string) nllog.Format {
	if strings.TrimSpace(format) == "" {
		return nllog.FormatText
	}
	f, err := nllog.ParseFormat(format)
	if err != nil {
		return nllog.FormatText
	}
	return f
}
