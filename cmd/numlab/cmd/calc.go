package cmd

import (
	"context"

	"github.com/spf13/cobra"

	nllog "github.com/msto63/numlab/foundation/core/log"
	"github.com/msto63/numlab/foundation/utils/mathx"
	"github.com/msto63/numlab/internal/calc"
	"github.com/msto63/numlab/internal/collector"
	"github.com/msto63/numlab/internal/output"
)

const (
	promptLHS = "Input real and imaginary part of complex: "
	promptRHS = "Input real and imaginary part of another complex: "
)

var (
	calcLHS string
	calcRHS string
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Arithmetic report for two complex numbers",
	Long: `Computes sum, difference, product and quotient of two complex numbers
and compares their magnitudes.

Operands not given as flags are asked for on stdin.

Examples:
  numlab calc --lhs "1 2" --rhs "3 -4"
  echo "1 2\n0 0" | numlab calc`,
	RunE: runCalc,
}

func init() {
	rootCmd.AddCommand(calcCmd)

	calcCmd.Flags().StringVar(&calcLHS, "lhs", "", `first operand as "RE IM"`)
	calcCmd.Flags().StringVar(&calcRHS, "rhs", "", `second operand as "RE IM"`)
}

func runCalc(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	c := collector.New(cmd.InOrStdin(), cmd.OutOrStdout(), logger, collector.Config{
		MaxCount:    appConfig.Input.MaxCount,
		MaxAttempts: appConfig.Input.MaxAttempts,
		Precision:   appConfig.Render.Precision,
	})

	lhs, err := operand(ctx, c, calcLHS, promptLHS)
	if err != nil {
		return err
	}
	rhs, err := operand(ctx, c, calcRHS, promptRHS)
	if err != nil {
		return err
	}

	report := calc.Evaluate(lhs, rhs)
	printReport(output.NewConsole(cmd.OutOrStdout(), renderOptions()), report)
	return nil
}

// operand parses flag when set and prompts otherwise
func operand(ctx context.Context, c *collector.Collector, flag, prompt string) (mathx.Complex, error) {
	if flag == "" {
		return c.ReadValue(ctx, prompt)
	}
	return collector.ParsePair(flag)
}

func printReport(console *output.Console, report calc.Report) {
	for _, line := range report.Lines(appConfig.Render.Precision) {
		if line.Err != nil {
			logger.LogError(line.Err, nllog.Field("operation", line.Label))
			console.PrintLabelError(line.Label, line.Err)
			continue
		}
		console.PrintLabel(line.Label, line.Value)
	}
}
