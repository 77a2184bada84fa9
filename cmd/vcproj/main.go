// cmd/vcproj/main.go
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/willibrandon/vcproj/cmd/vcproj/cli"
	"github.com/willibrandon/vcproj/cmd/vcproj/commands"
)

// Version information (set via ldflags during build)
var (
	version = "0.0.0-dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	// Set version info
	cli.Version = version
	cli.Commit = commit
	cli.Date = date
	cli.BuiltBy = builtBy

	// Setup version after variables are set
	cli.SetupVersion()

	// Register commands
	cli.AddCommand(commands.NewVersionCommand(cli.Console))
	cli.AddCommand(commands.NewTargetsCommand(cli.Console))
	cli.AddCommand(commands.NewConfigurationsCommand(cli.Console))
	cli.AddCommand(commands.NewFilesCommand(cli.Console))
	cli.AddCommand(commands.NewTreeCommand(cli.Console))
	cli.AddCommand(commands.NewBuildCmdCommand(cli.Console))
	cli.AddCommand(commands.NewCleanCmdCommand(cli.Console))
	cli.AddCommand(commands.NewCompletionCommand())

	commands.SetupCustomErrorHandler(cli.RootCommand())

	// Handle signals for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		os.Exit(130) // 128 + SIGINT
	}()

	// Execute CLI
	if err := cli.Execute(); err != nil {
		// Print error to stderr since SilenceErrors is true in rootCmd
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
