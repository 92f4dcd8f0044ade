// ============================================================================
// numlab - Complex number laboratory
// ============================================================================
//
// Package:     output
// Description: Console rendering and plain-text file dump of value lists
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	nlerrors "github.com/msto63/numlab/foundation/core/errors"
	"github.com/msto63/numlab/foundation/utils/listx"
	"github.com/msto63/numlab/foundation/utils/mathx"
	"github.com/msto63/numlab/internal/tui"
)

// Options controls how values and lists are rendered
type Options struct {
	Precision  int
	Separator  string
	Terminator string
}

// DefaultOptions returns two decimals, " -> " and "<end>"
func DefaultOptions() Options {
	return Options{
		Precision:  mathx.DefaultPrecision,
		Separator:  listx.DefaultSeparator,
		Terminator: listx.DefaultTerminator,
	}
}

func (o Options) renderOptions() listx.RenderOptions[mathx.Complex] {
	prec := o.Precision
	return listx.RenderOptions[mathx.Complex]{
		Separator:  o.Separator,
		Terminator: o.Terminator,
		Format:     func(c mathx.Complex) string { return c.Format(prec) },
	}
}

// Render writes the list as a single unstyled line without a newline
func Render(w io.Writer, values *listx.List[mathx.Complex], opts Options) error {
	return values.RenderWith(w, opts.renderOptions())
}

// WriteFile creates or truncates path and writes the rendered list followed
// by a newline
func WriteFile(path string, values *listx.List[mathx.Complex], opts Options) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return nlerrors.IOFailure(nlerrors.ModuleOutput, "create", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = nlerrors.IOFailure(nlerrors.ModuleOutput, "close", path, closeErr)
		}
	}()

	if err := Render(f, values, opts); err != nil {
		return nlerrors.IOFailure(nlerrors.ModuleOutput, "write", path, err)
	}
	if _, err := io.WriteString(f, "\n"); err != nil {
		return nlerrors.IOFailure(nlerrors.ModuleOutput, "write", path, err)
	}
	return nil
}

// Console prints lists and status lines to a terminal or plain writer
type Console struct {
	out   io.Writer
	theme tui.Theme
	opts  Options
}

// NewConsole creates a console printer for out
func NewConsole(out io.Writer, opts Options) *Console {
	return &Console{
		out:   out,
		theme: tui.ThemeFor(out),
		opts:  opts,
	}
}

// PrintList writes the rendered list on its own line
func (c *Console) PrintList(values *listx.List[mathx.Complex]) error {
	var sb strings.Builder
	if err := Render(&sb, values, c.opts); err != nil {
		return err
	}
	_, err := fmt.Fprintln(c.out, c.theme.Value.Render(sb.String()))
	return err
}

// PrintSaved reports a successful file write
func (c *Console) PrintSaved(path string, count int) {
	fmt.Fprintln(c.out, c.theme.Success.Render(fmt.Sprintf("Saved %d values to %s", count, path)))
}

// PrintError reports err without aborting
func (c *Console) PrintError(err error) {
	fmt.Fprintln(c.out, c.theme.RenderError(err.Error()))
}

// PrintLabel writes "label: value"
func (c *Console) PrintLabel(label, value string) {
	fmt.Fprintln(c.out, c.theme.RenderLabel(label, value))
}

// PrintLabelError writes "label: Error: message"
func (c *Console) PrintLabelError(label string, err error) {
	fmt.Fprintln(c.out, c.theme.Label.Render(label+":")+" "+c.theme.RenderError(err.Error()))
}

// PrintNotice writes a muted informational line
func (c *Console) PrintNotice(msg string) {
	fmt.Fprintln(c.out, c.theme.Muted.Render(msg))
}

// Format renders a single value with the configured precision
func (c *Console) Format(v mathx.Complex) string {
	return v.Format(c.opts.Precision)
}
