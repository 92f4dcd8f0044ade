// Package log provides structured logging for numlab.
//
// Package: log
// Title: numlab Structured Logging Framework
// Description: Leveled structured logger with JSON, text, console and logfmt
//              formatters. Loggers are immutable: every With* call returns a
//              clone. LogError understands the foundation error type and picks
//              the level from the error's severity.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-12 v0.2.0: Removed async buffering and request/user context
//
// Usage:
//   import nllog "github.com/msto63/numlab/foundation/core/log"
//
//   logger := nllog.NewWithConfig(nllog.Config{
//     Level:  nllog.LevelDebug,
//     Format: nllog.FormatText,
//     Output: os.Stderr,
//   }).WithCorrelationID(sessionID)
//
//   logger.Debug("value accepted", nllog.Fields{"index": 3, "value": "1.00 + 2.00i"})
//   logger.LogError(err)
//
//   timer := logger.StartTimer("collect")
//   // ... read input
//   timer.Stop()
package log
