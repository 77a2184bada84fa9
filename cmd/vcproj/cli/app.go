// cmd/vcproj/cli/app.go
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/willibrandon/vcproj/cmd/vcproj/output"
	"github.com/willibrandon/vcproj/observability"
)

var rootCmd = &cobra.Command{
	Use:   "vcproj",
	Short: "Visual C++ project file interpreter",
	Long: `vcproj reads Visual Studio C/C++ project files (.vcproj from VS2005, .vcxproj from
VS2010 through VS2015, with the companion .vcxproj.filters) and reports their build
targets, files, filter tree and the command lines that build or clean them.

The toolchain is located through the VSxxxCOMNTOOLS environment variables.`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setupGlobals,
	PersistentPostRunE: teardownGlobals,
	Run: func(cmd *cobra.Command, args []string) {
		// Show help when no command is provided
		_ = cmd.Help()
	},
}

// Console is the global console for CLI commands
var Console *output.Console

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	verbosity    string
	trace        string
	otlpEndpoint string
}

var (
	globals        globalOptions
	tracerProvider *sdktrace.TracerProvider
)

// Execute runs the root command
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	// Initialize console
	Console = output.DefaultConsole()

	rootCmd.PersistentFlags().StringVar(&globals.verbosity, "verbosity", "normal",
		"Display verbosity (quiet, normal, detailed, diagnostic)")
	rootCmd.PersistentFlags().StringVar(&globals.trace, "trace", observability.ExporterNone,
		"Trace exporter (none, stdout, otlp)")
	rootCmd.PersistentFlags().StringVar(&globals.otlpEndpoint, "otlp-endpoint",
		observability.DefaultTracerConfig().OTLPEndpoint, "OTLP collector endpoint used with --trace otlp")
}

// setupGlobals applies the persistent flags before any command runs.
func setupGlobals(cmd *cobra.Command, args []string) error {
	verbosity, err := output.ParseVerbosity(globals.verbosity)
	if err != nil {
		return err
	}
	Console.SetVerbosity(verbosity)
	Console.SetLogger(observability.NewLogger(os.Stderr, verbosity.LogLevel()))

	cfg := observability.DefaultTracerConfig()
	cfg.ServiceVersion = GetVersion()
	cfg.ExporterType = globals.trace
	cfg.OTLPEndpoint = globals.otlpEndpoint

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	tp, err := observability.SetupTracing(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	tracerProvider = tp
	return nil
}

// teardownGlobals flushes pending spans.
func teardownGlobals(cmd *cobra.Command, args []string) error {
	if tracerProvider == nil {
		return nil
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	err := observability.ShutdownTracing(ctx, tracerProvider)
	tracerProvider = nil
	return err
}

// SetupVersion configures version information after variables are set
func SetupVersion() {
	rootCmd.SetVersionTemplate(GetFullVersion() + "\n")
	rootCmd.Version = GetVersion()
}

// AddCommand adds a command to the root command
func AddCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}

// RootCommand returns the root command, for tests that execute the full tree.
func RootCommand() *cobra.Command {
	return rootCmd
}
