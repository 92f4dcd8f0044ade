package cmd

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/spf13/cobra"

	nlerrors "github.com/msto63/numlab/foundation/core/errors"
	nllog "github.com/msto63/numlab/foundation/core/log"
	"github.com/msto63/numlab/internal/output"
	"github.com/msto63/numlab/pkg/core/config"
	"github.com/msto63/numlab/pkg/core/logging"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string

	appConfig *config.Config
	logger    *nllog.Logger

	// logOutput receives log entries, stderr unless replaced in tests
	logOutput io.Writer = os.Stderr
)

var rootCmd = &cobra.Command{
	Use:   "numlab",
	Short: "numlab - complex number laboratory",
	Long: `numlab reads complex numbers, keeps them in a linked list and prints
or saves the result.

Commands:
  build    - enter a list of complex numbers
  calc     - arithmetic report for two complex numbers
  version  - show version information`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and cancels on SIGINT or SIGTERM
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./configs/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text, json, console or logfmt")
}

// setup loads the configuration and builds the session logger
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Resolve(cfgFile)
	if err != nil {
		return err
	}
	if logFormat != "" {
		cfg.General.LogFormat = logFormat
	}
	if verbose {
		cfg.General.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	appConfig = cfg
	logger = logging.NewLogger(logging.LoggerConfig{
		Name:   cfg.General.Name,
		Level:  cfg.General.LogLevel,
		Format: cfg.General.LogFormat,
		Output: logOutput,
	})
	logger.Debug("configuration loaded", nllog.Fields{
		"path":      cfg.Path,
		"command":   cmd.Name(),
		"precision": cfg.Render.Precision,
	})
	return nil
}

// renderOptions returns the output options from the loaded configuration
func renderOptions() output.Options {
	return output.Options{
		Precision:  appConfig.Render.Precision,
		Separator:  appConfig.Render.Separator,
		Terminator: appConfig.Render.Terminator,
	}
}

// printError writes err and, with --verbose, the details it carries
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	if !verbose {
		return
	}

	details := nlerrors.ExtractDetails(err)
	for _, k := range slices.Sorted(maps.Keys(details)) {
		fmt.Fprintf(w, "  %s: %v\n", k, details[k])
	}
}
