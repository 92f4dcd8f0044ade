package output

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	nlerror "github.com/msto63/numlab/foundation/core/error"
	nlerrors "github.com/msto63/numlab/foundation/core/errors"
	"github.com/msto63/numlab/foundation/utils/listx"
	"github.com/msto63/numlab/foundation/utils/mathx"
)

func sampleList() *listx.List[mathx.Complex] {
	l := listx.New[mathx.Complex]()
	l.Add(mathx.MustNewComplex(1, 2))
	l.Add(mathx.MustNewComplex(3, -4))
	return l
}

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		list *listx.List[mathx.Complex]
		want string
	}{
		{"defaults", DefaultOptions(), sampleList(), "1.00 + 2.00i -> 3.00 - 4.00i -> <end>"},
		{"empty", DefaultOptions(), listx.New[mathx.Complex](), "<end>"},
		{"custom", Options{Precision: 0, Separator: " | ", Terminator: "nil"}, sampleList(), "1 + 2i | 3 - 4i | nil"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Render(&buf, tt.list, tt.opts); err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("Render() = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.txt")
	if err := os.WriteFile(path, []byte("stale content that is longer than the new line\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := WriteFile(path, sampleList(), DefaultOptions()); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "1.00 + 2.00i -> 3.00 - 4.00i -> <end>\n"
	if string(data) != want {
		t.Errorf("file content = %q, want %q", data, want)
	}
}

func TestWriteFileError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "values.txt")

	err := WriteFile(path, sampleList(), DefaultOptions())
	if !nlerrors.IsIOFailure(err) {
		t.Fatalf("WriteFile() error = %v, want I/O failure", err)
	}
	nlErr, _ := nlerror.As(err)
	if p, _ := nlErr.Detail("path"); p != path {
		t.Errorf("path detail = %v, want %v", p, path)
	}
	if nlErr.Operation() != "output.create" {
		t.Errorf("operation = %q", nlErr.Operation())
	}
}

func TestConsole(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(&buf, DefaultOptions())

	if err := console.PrintList(sampleList()); err != nil {
		t.Fatalf("PrintList() error = %v", err)
	}
	console.PrintSaved("out.txt", 2)
	console.PrintError(nlerrors.DivisionByZero(nlerrors.ModuleCalc, "Evaluate", "0.00 + 0.00i"))
	console.PrintLabel("Sum", console.Format(mathx.MustNewComplex(4, -2)))
	console.PrintLabelError("Div", nlerrors.DivisionByZero(nlerrors.ModuleCalc, "Evaluate", "0.00 + 0.00i"))
	console.PrintNotice("Entry cancelled")

	want := strings.Join([]string{
		"1.00 + 2.00i -> 3.00 - 4.00i -> <end>",
		"Saved 2 values to out.txt",
		"Error: division by zero",
		"Sum: 4.00 - 2.00i",
		"Div: Error: division by zero",
		"Entry cancelled",
	}, "\n") + "\n"
	if buf.String() != want {
		t.Errorf("console output = %q, want %q", buf.String(), want)
	}
}
