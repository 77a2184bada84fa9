package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// Words users commonly type in place of a vcproj command
var commandSuggestions = map[string]string{
	"build":   "vcproj build-cmd",
	"rebuild": "vcproj build-cmd",
	"clean":   "vcproj clean-cmd",
	"list":    "vcproj targets",
	"ls":      "vcproj files",
	"filters": "vcproj tree",
	"info":    "vcproj targets",
}

// SetupCustomErrorHandler makes the root command reject unknown commands with a suggestion
func SetupCustomErrorHandler(rootCmd *cobra.Command) {
	rootCmd.SilenceErrors = true // Prevent Cobra's default error output

	rootCmd.Args = func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return nil
		}
		return HandleUnknownCommand(cmd, args)
	}
}

// HandleUnknownCommand provides suggestions for unknown commands
func HandleUnknownCommand(cmd *cobra.Command, args []string) error {
	if suggestion, ok := commandSuggestions[strings.ToLower(args[0])]; ok {
		return fmt.Errorf("unknown command %q. Try: %s", args[0], suggestion)
	}

	if suggestions := cmd.SuggestionsFor(args[0]); len(suggestions) > 0 {
		return fmt.Errorf("unknown command %q for %q. Did you mean %s?", args[0], cmd.CommandPath(), strings.Join(suggestions, ", "))
	}
	return fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())
}
