// ============================================================================
// numlab - Complex number laboratory
// ============================================================================
//
// Package:     entry
// Description: Bubble Tea form for entering a list of complex values
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package entry

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	nlerror "github.com/msto63/numlab/foundation/core/error"
	"github.com/msto63/numlab/foundation/utils/listx"
	"github.com/msto63/numlab/foundation/utils/mathx"
	"github.com/msto63/numlab/internal/collector"
)

// Stage is the step of the form currently shown
type Stage int

const (
	StageCount Stage = iota
	StagePairs
	StageOutput
	StageDone
)

// String returns the stage name
func (s Stage) String() string {
	switch s {
	case StageCount:
		return "count"
	case StagePairs:
		return "pairs"
	case StageOutput:
		return "output"
	case StageDone:
		return "done"
	default:
		return "unknown"
	}
}

// Config holds the configuration for the entry form
type Config struct {
	MaxCount  int
	Precision int

	// AskOutput adds the output path step after the last value
	AskOutput bool
}

// Result is what the form collected
type Result struct {
	Values     *listx.List[mathx.Complex]
	OutputPath string
	Aborted    bool
}

// Model is the Bubble Tea model of the entry form
type Model struct {
	config Config

	stage   Stage
	count   int
	index   int
	values  *listx.List[mathx.Complex]
	output  string
	aborted bool
	err     error

	input textinput.Model
}

// NewModel creates a new entry form
func NewModel(cfg Config) Model {
	if cfg.MaxCount < 1 {
		cfg.MaxCount = collector.DefaultConfig().MaxCount
	}

	input := textinput.New()
	input.Placeholder = "3"
	input.CharLimit = 256
	input.Width = 40
	input.Focus()

	return Model{
		config: cfg,
		stage:  StageCount,
		values: listx.New[mathx.Complex](),
		input:  input,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit validates the current input and advances the form
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()

	switch m.stage {
	case StageCount:
		n, err := collector.ParseCount(line, m.config.MaxCount)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.count = n
		m.index = 1
		m.stage = StagePairs
		m.input.Placeholder = "1.5 -2"

	case StagePairs:
		v, err := collector.ParsePair(line)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.values.Add(v)
		m.index++
		if m.index <= m.count {
			break
		}
		if !m.config.AskOutput {
			return m.finish()
		}
		m.stage = StageOutput
		m.input.Placeholder = "values.txt"

	case StageOutput:
		m.output = strings.TrimSpace(line)
		return m.finish()
	}

	m.err = nil
	m.input.Reset()
	return m, nil
}

func (m Model) finish() (tea.Model, tea.Cmd) {
	m.stage = StageDone
	m.err = nil
	m.input.Reset()
	m.input.Blur()
	return m, tea.Quit
}

// Stage returns the current step
func (m Model) Stage() Stage {
	return m.stage
}

// Err returns the validation error shown inline, if any
func (m Model) Err() error {
	return m.err
}

// Result returns what the form collected so far
func (m Model) Result() Result {
	return Result{
		Values:     m.values,
		OutputPath: m.output,
		Aborted:    m.aborted,
	}
}

// View implements tea.Model
func (m Model) View() string {
	if m.stage == StageDone {
		return ""
	}

	var b strings.Builder

	b.WriteString(TitleStyle.Render("numlab · value entry"))
	b.WriteString("\n")

	if m.values.Len() > 0 {
		b.WriteString(ListStyle.Render(m.renderValues()))
		b.WriteString("\n\n")
	}

	b.WriteString(PromptStyle.Render(m.promptText()))
	b.WriteString("\n")
	b.WriteString(BoxStyle.Render(m.input.View()))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(ErrorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(HelpStyle.Render("enter: confirm • esc: cancel"))
	return b.String()
}

func (m Model) promptText() string {
	switch m.stage {
	case StageCount:
		return collector.PromptCount
	case StagePairs:
		return fmt.Sprintf(collector.PromptPair, m.index)
	case StageOutput:
		return collector.PromptOutput
	default:
		return ""
	}
}

func (m Model) renderValues() string {
	prec := m.config.Precision
	var b strings.Builder
	_ = m.values.Render(&b, func(c mathx.Complex) string { return c.Format(prec) })
	return b.String()
}

// Run shows the form until it completes or is cancelled. in and out replace
// the terminal when non-nil.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) (Result, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if in != nil {
		opts = append(opts, tea.WithInput(in))
	}
	if out != nil {
		opts = append(opts, tea.WithOutput(out))
	}

	final, err := tea.NewProgram(NewModel(cfg), opts...).Run()
	if err != nil {
		return Result{}, err
	}

	m, ok := final.(Model)
	if !ok {
		return Result{}, nlerror.Newf("unexpected model type %T", final).WithCode(nlerror.CodeInternal)
	}
	return m.Result(), nil
}
