package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/willibrandon/vcproj/project"
)

// projectFileExtensions are offered when completing a project path
var projectFileExtensions = []string{"vcproj", "vcxproj"}

// completeProjectFiles completes the positional PROJECT argument and --project.
func completeProjectFiles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return projectFileExtensions, cobra.ShellCompDirectiveFilterFileExt
}

// completeConfigurations provides dynamic completion for --configuration from the
// project named on the command line (or found in the current directory).
func completeConfigurations(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	arg, _ := cmd.Flags().GetString("project")
	if len(args) > 0 {
		arg = args[0]
	}

	path, err := project.ResolveProjectPath(arg)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	p, err := project.LoadContext(ctx, path)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var matches []string
	for _, c := range p.Configurations() {
		if strings.HasPrefix(strings.ToLower(c), strings.ToLower(toComplete)) {
			matches = append(matches, c)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// registerCompletions wires project and configuration completion into a command that
// uses projectOptions.
func registerCompletions(cmd *cobra.Command) {
	cmd.ValidArgsFunction = completeProjectFiles
	_ = cmd.RegisterFlagCompletionFunc("project", completeProjectFiles)
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{formatConsole, formatJSON}, cobra.ShellCompDirectiveNoFileComp))
	if cmd.Flags().Lookup("configuration") != nil {
		_ = cmd.RegisterFlagCompletionFunc("configuration", completeConfigurations)
	}
}
