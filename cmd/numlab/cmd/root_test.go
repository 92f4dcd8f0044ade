package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	nlerror "github.com/msto63/numlab/foundation/core/error"
	nlerrors "github.com/msto63/numlab/foundation/core/errors"
	"github.com/msto63/numlab/pkg/core/config"
)

// resetFlags restores every flag to its default between runs
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// run executes the root command in a scratch directory with built-in defaults
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvConfigPath, "")
	t.Setenv(config.EnvLogLevel, "")

	resetFlags(rootCmd)
	logOutput = io.Discard
	t.Cleanup(func() { logOutput = os.Stderr })

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestBuildWritesFile(t *testing.T) {
	out, err := run(t, "2\n1 2\n3 -4\nvalues.txt\n", "build")
	if err != nil {
		t.Fatalf("build error = %v\n%s", err, out)
	}

	for _, want := range []string{
		"Input number of complex: ",
		"Input real and imaginary part of complex #2: ",
		"1.00 + 2.00i -> 3.00 - 4.00i -> <end>\n",
		"Output file (empty to skip): ",
		"Saved 2 values to values.txt",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	data, err := os.ReadFile("values.txt")
	if err != nil {
		t.Fatalf("output file not written: %v", err)
	}
	if string(data) != "1.00 + 2.00i -> 3.00 - 4.00i -> <end>\n" {
		t.Errorf("file content = %q", data)
	}
}

func TestBuildSkipOutput(t *testing.T) {
	out, err := run(t, "1\n0 -1\n", "build", "--no-output")
	if err != nil {
		t.Fatalf("build error = %v\n%s", err, out)
	}
	if strings.Contains(out, "Output file") {
		t.Errorf("--no-output should not prompt for a file:\n%s", out)
	}
	if !strings.Contains(out, "0.00 - 1.00i -> <end>") {
		t.Errorf("list missing:\n%s", out)
	}
}

func TestBuildEmptyOutputAnswer(t *testing.T) {
	out, err := run(t, "1\n1 1\n\n", "build")
	if err != nil {
		t.Fatalf("build error = %v\n%s", err, out)
	}
	if strings.Contains(out, "Saved") {
		t.Errorf("empty answer should skip the file:\n%s", out)
	}
}

func TestBuildOutputFailure(t *testing.T) {
	out, err := run(t, "1\n1 1\n", "build", "--output", filepath.Join("missing", "values.txt"))
	if !nlerrors.IsIOFailure(err) {
		t.Fatalf("build error = %v, want I/O failure", err)
	}
	if !strings.Contains(out, "1.00 + 1.00i -> <end>") {
		t.Errorf("list should be printed before the write fails:\n%s", out)
	}
}

func TestPrintErrorVerboseDetails(t *testing.T) {
	err := nlerrors.IOFailure(nlerrors.ModuleOutput, "create", "/tmp/x/values.txt", os.ErrPermission)

	t.Cleanup(func() { verbose = false })
	for _, tt := range []struct {
		verbose bool
		want    bool
	}{{false, false}, {true, true}} {
		verbose = tt.verbose
		var buf bytes.Buffer
		printError(&buf, err)

		if !strings.HasPrefix(buf.String(), "Error: ") {
			t.Errorf("verbose=%v: output = %q", tt.verbose, buf.String())
		}
		if got := strings.Contains(buf.String(), "  path: /tmp/x/values.txt\n"); got != tt.want {
			t.Errorf("verbose=%v: path detail shown = %v, want %v\n%s", tt.verbose, got, tt.want, buf.String())
		}
	}
}

func TestBuildUnexpectedEOF(t *testing.T) {
	_, err := run(t, "3\n1 1\n", "build")
	if !nlerrors.IsInvalidInput(err) {
		t.Errorf("build error = %v, want invalid input", err)
	}
}

func TestBuildInputFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "answers.txt")
	if err := os.WriteFile(path, []byte("1\n2.5 2.5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "", "build", "--input", path, "--no-output")
	if err != nil {
		t.Fatalf("build error = %v\n%s", err, out)
	}
	if !strings.Contains(out, "2.50 + 2.50i -> <end>") {
		t.Errorf("list missing:\n%s", out)
	}
}

func TestBuildWithConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "numlab.yaml")
	content := "render:\n  precision: 1\n  separator: \", \"\n  terminator: \"nil\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "2\n1 2\n3 4\n", "build", "--config", path, "--no-output")
	if err != nil {
		t.Fatalf("build error = %v\n%s", err, out)
	}
	if !strings.Contains(out, "1.0 + 2.0i, 3.0 + 4.0i, nil") {
		t.Errorf("configured rendering not used:\n%s", out)
	}
}

func TestInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(path, []byte("[render]\nprecision = 20\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := run(t, "", "version", "--config", path)
	if !nlerror.HasCode(err, nlerror.CodeInvalidConfig) {
		t.Errorf("error = %v, want INVALID_CONFIG", err)
	}
}

func TestCalcFlags(t *testing.T) {
	out, err := run(t, "", "calc", "--lhs", "1 2", "--rhs", "3 -4")
	if err != nil {
		t.Fatalf("calc error = %v\n%s", err, out)
	}

	want := strings.Join([]string{
		"Complex1: 1.00 + 2.00i",
		"Complex2: 3.00 - 4.00i",
		"Sum: 4.00 - 2.00i",
		"Diff: -2.00 + 6.00i",
		"Mult: 11.00 + 2.00i",
		"Div: -0.20 + 0.40i",
		"Greater: false",
		"Equals: false",
		"Less: true",
	}, "\n") + "\n"
	if out != want {
		t.Errorf("calc output =\n%s\nwant\n%s", out, want)
	}
}

func TestCalcPromptsAndDivisionByZero(t *testing.T) {
	out, err := run(t, "nope\n2 0\n0 0\n", "calc")
	if err != nil {
		t.Fatalf("calc error = %v\n%s", err, out)
	}

	for _, want := range []string{
		promptLHS,
		"Error: invalid input",
		promptRHS,
		"Div: Error: division by zero",
		"Greater: true",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCalcBadFlag(t *testing.T) {
	_, err := run(t, "", "calc", "--lhs", "1")
	if !nlerrors.IsInvalidInput(err) {
		t.Errorf("calc error = %v, want invalid input", err)
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(out, "numlab v") {
		t.Errorf("version output = %q", out)
	}
}
