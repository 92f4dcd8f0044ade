package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	nlerrors "github.com/msto63/numlab/foundation/core/errors"
	nllog "github.com/msto63/numlab/foundation/core/log"
	"github.com/msto63/numlab/foundation/utils/listx"
	"github.com/msto63/numlab/foundation/utils/mathx"
	"github.com/msto63/numlab/internal/collector"
	"github.com/msto63/numlab/internal/output"
	"github.com/msto63/numlab/internal/tui/entry"
)

var (
	buildTUI      bool
	buildInput    string
	buildOutput   string
	buildNoOutput bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Enter a list of complex numbers",
	Long: `Reads a count and that many complex numbers, each as a real and an
imaginary part, and prints the list.

Invalid lines are reported and asked again. Afterwards the list can be
written to a file.

Examples:
  numlab build
  numlab build --output values.txt
  numlab build --input values.in --no-output
  numlab build --tui`,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().BoolVar(&buildTUI, "tui", false, "use the interactive form")
	buildCmd.Flags().StringVar(&buildInput, "input", "", "read answers from a file instead of stdin")
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "write the list to this file")
	buildCmd.Flags().BoolVar(&buildNoOutput, "no-output", false, "do not write or ask for an output file")
	buildCmd.MarkFlagsMutuallyExclusive("output", "no-output")
	buildCmd.MarkFlagsMutuallyExclusive("tui", "input")
}

func runBuild(cmd *cobra.Command, args []string) error {
	console := output.NewConsole(cmd.OutOrStdout(), renderOptions())

	// An explicit path or --no-output settles the output step up front
	path := buildOutput
	if path == "" && !buildNoOutput {
		path = appConfig.Output.Path
	}
	askOutput := path == "" && !buildNoOutput

	if buildTUI {
		return buildWithForm(cmd, console, path, askOutput)
	}
	return buildWithPrompts(cmd, console, path, askOutput)
}

func buildWithPrompts(cmd *cobra.Command, console *output.Console, path string, askOutput bool) error {
	ctx := cmd.Context()

	in, closeIn, err := openInput(cmd)
	if err != nil {
		return err
	}
	defer closeIn()

	c := collector.New(in, cmd.OutOrStdout(), logger, collector.Config{
		MaxCount:    appConfig.Input.MaxCount,
		MaxAttempts: appConfig.Input.MaxAttempts,
		Precision:   appConfig.Render.Precision,
	})

	values, err := c.Collect(ctx)
	if err != nil {
		return err
	}
	if err := console.PrintList(values); err != nil {
		return err
	}

	if askOutput {
		if path, err = c.ReadOutputPath(ctx); err != nil {
			return err
		}
	}
	return save(console, path, values)
}

func buildWithForm(cmd *cobra.Command, console *output.Console, path string, askOutput bool) error {
	res, err := entry.Run(cmd.Context(), entry.Config{
		MaxCount:  appConfig.Input.MaxCount,
		Precision: appConfig.Render.Precision,
		AskOutput: askOutput,
	}, nil, nil)
	if err != nil {
		return err
	}
	if res.Aborted {
		console.PrintNotice("Entry cancelled")
		return nil
	}

	if err := console.PrintList(res.Values); err != nil {
		return err
	}
	if askOutput {
		path = res.OutputPath
	}
	return save(console, path, res.Values)
}

// save writes values to path; an empty path skips the step
func save(console *output.Console, path string, values *listx.List[mathx.Complex]) error {
	if path == "" {
		logger.Debug("output skipped")
		return nil
	}

	timer := logger.StartTimer("write output").WithField("path", path)
	if err := output.WriteFile(path, values, renderOptions()); err != nil {
		timer.StopWithError(err)
		return err
	}
	timer.Stop()

	console.PrintSaved(path, values.Len())
	return nil
}

func openInput(cmd *cobra.Command) (io.Reader, func(), error) {
	if buildInput == "" {
		return cmd.InOrStdin(), func() {}, nil
	}

	f, err := os.Open(buildInput)
	if err != nil {
		return nil, nil, nlerrors.IOFailure(nlerrors.ModuleCollector, "open", buildInput, err)
	}
	logger.Debug("reading input file", nllog.Field("path", buildInput))
	return f, func() { _ = f.Close() }, nil
}
