// ============================================================================
// numlab - Complex number laboratory
// ============================================================================
//
// Package:     collector
// Description: Line-oriented prompting for a list of complex values
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package collector

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	nlerror "github.com/msto63/numlab/foundation/core/error"
	nlerrors "github.com/msto63/numlab/foundation/core/errors"
	nllog "github.com/msto63/numlab/foundation/core/log"
	"github.com/msto63/numlab/foundation/utils/listx"
	"github.com/msto63/numlab/foundation/utils/mathx"
	"github.com/msto63/numlab/internal/tui"
)

// MaxLineLength is the longest input line accepted. Longer lines are
// consumed and rejected as invalid input.
const MaxLineLength = 64 * 1024

// Prompts written before each line is read
const (
	PromptCount  = "Input number of complex: "
	PromptPair   = "Input real and imaginary part of complex #%d: "
	PromptOutput = "Output file (empty to skip): "
)

// Config controls validation and retry behaviour
type Config struct {
	// MaxCount is the largest accepted element count
	MaxCount int

	// MaxAttempts caps consecutive failures per prompt, 0 means unlimited
	MaxAttempts int

	// Precision is used when logging accepted values
	Precision int
}

// DefaultConfig returns the default collector configuration
func DefaultConfig() Config {
	return Config{
		MaxCount:    1000,
		MaxAttempts: 0,
		Precision:   mathx.DefaultPrecision,
	}
}

// Collector reads values from a line-oriented input, writing prompts and
// error messages to out. Invalid lines are reported and re-prompted.
type Collector struct {
	reader  *bufio.Reader
	out     io.Writer
	theme   tui.Theme
	logger  *nllog.Logger
	config  Config
}

// New creates a collector reading from in and prompting on out
func New(in io.Reader, out io.Writer, logger *nllog.Logger, cfg Config) *Collector {
	if logger == nil {
		logger = nllog.Discard()
	}
	if cfg.MaxCount < 1 {
		cfg.MaxCount = DefaultConfig().MaxCount
	}

	return &Collector{
		reader:  bufio.NewReader(in),
		out:     out,
		theme:   tui.ThemeFor(out),
		logger:  logger.WithField("component", "collector"),
		config:  cfg,
	}
}

// Collect reads a count followed by that many value pairs and returns them
// in input order
func (c *Collector) Collect(ctx context.Context) (*listx.List[mathx.Complex], error) {
	timer := c.logger.StartTimer("collect")

	n, err := c.ReadCount(ctx)
	if err != nil {
		return nil, err
	}

	values := listx.New[mathx.Complex]()
	for i := 1; i <= n; i++ {
		v, err := c.ReadPair(ctx, i)
		if err != nil {
			return nil, err
		}
		values.Add(v)
	}

	timer.WithField("count", values.Len()).Stop()
	return values, nil
}

// ReadCount prompts for the number of values
func (c *Collector) ReadCount(ctx context.Context) (int, error) {
	var n int
	err := c.prompt(ctx, "ReadCount", PromptCount, func(line string) error {
		var err error
		n, err = ParseCount(line, c.config.MaxCount)
		return err
	})
	return n, err
}

// ReadPair prompts for the real and imaginary part of value #index
func (c *Collector) ReadPair(ctx context.Context, index int) (mathx.Complex, error) {
	return c.ReadValue(ctx, fmt.Sprintf(PromptPair, index))
}

// ReadValue prompts with prompt until a valid pair is entered
func (c *Collector) ReadValue(ctx context.Context, prompt string) (mathx.Complex, error) {
	var v mathx.Complex
	err := c.prompt(ctx, "ReadValue", prompt, func(line string) error {
		var err error
		v, err = ParsePair(line)
		return err
	})
	if err == nil {
		c.logger.Debug("value accepted", nllog.Field("value", v.Format(c.config.Precision)))
	}
	return v, err
}

// ReadOutputPath asks for an optional output file. An empty line or the end
// of input means no file.
func (c *Collector) ReadOutputPath(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprint(c.out, PromptOutput)
	line, err := c.readLine("ReadOutputPath")
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			fmt.Fprintln(c.out)
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// prompt writes text, reads a line and hands it to accept until accept
// succeeds. Recoverable errors are shown and re-prompted; anything else,
// or reaching MaxAttempts, ends the prompt.
func (c *Collector) prompt(ctx context.Context, operation, text string, accept func(string) error) error {
	attempts := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(c.out, text)
		line, err := c.readLine(operation)
		if err == nil {
			if err = accept(line); err == nil {
				return nil
			}
		} else if errors.Is(err, io.ErrUnexpectedEOF) {
			return err
		}
		if !nlerrors.IsRecoverable(err) {
			return err
		}

		attempts++
		c.logger.Debug("input rejected", nllog.Fields{
			"operation":  operation,
			"error_code": nlerror.GetCode(err).String(),
			"attempt":    attempts,
		})
		fmt.Fprintln(c.out, c.theme.RenderError(err.Error()))

		if c.config.MaxAttempts > 0 && attempts >= c.config.MaxAttempts {
			return nlerror.Wrap(err, fmt.Sprintf("giving up after %d invalid attempts", attempts)).
				WithSeverity(nlerror.SeverityHigh).
				WithDetail("attempts", attempts)
		}
	}
}

// readLine returns the next input line without its line ending. End of
// input is an invalid input error wrapping io.ErrUnexpectedEOF; a line
// longer than MaxLineLength is an invalid input error as well.
func (c *Collector) readLine(operation string) (string, error) {
	var (
		line    []byte
		tooLong bool
	)
	for {
		chunk, err := c.reader.ReadSlice('\n')
		if len(line)+len(chunk) > MaxLineLength {
			tooLong = true
		} else {
			line = append(line, chunk...)
		}

		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if errors.Is(err, io.EOF) {
			if len(line) == 0 && !tooLong {
				return "", nlerrors.NewErrorBuilder(nlerrors.ModuleCollector).
					Operation(operation).
					Message("unexpected end of input").
					Cause(io.ErrUnexpectedEOF).
					Code(nlerror.CodeInvalidInput).
					Severity(nlerror.SeverityHigh).
					Build()
			}
			break
		}
		if err != nil {
			return "", nlerrors.IOFailure(nlerrors.ModuleCollector, operation, "input", err)
		}
		break
	}

	if tooLong {
		return "", nlerrors.InvalidInput(nlerrors.ModuleCollector, operation,
			fmt.Sprintf("line longer than %d bytes", MaxLineLength),
			fmt.Sprintf("a line of at most %d bytes", MaxLineLength))
	}

	text := strings.TrimSuffix(string(line), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}
