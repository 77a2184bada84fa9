package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/willibrandon/vcproj/cmd/vcproj/output"
	"github.com/willibrandon/vcproj/project"
)

// Output formats accepted by --format.
const (
	formatConsole = "console"
	formatJSON    = "json"
)

// projectOptions are the options every project query command shares.
type projectOptions struct {
	projectPath string
	format      string
}

func (o *projectOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.projectPath, "project", "", "The project file or directory to operate on (defaults to current directory)")
	cmd.Flags().StringVar(&o.format, "format", formatConsole, "Output format: console or json")
}

// bindArgs lets the project be given positionally as well as through --project.
func (o *projectOptions) bindArgs(args []string) {
	if len(args) == 1 {
		o.projectPath = args[0]
	}
}

func (o *projectOptions) validate() error {
	switch o.format {
	case formatConsole, formatJSON:
		return nil
	default:
		return fmt.Errorf("invalid format %q (expected console or json)", o.format)
	}
}

func (o *projectOptions) json() bool {
	return o.format == formatJSON
}

// loadProject resolves the project argument and loads it with the console's logger.
func loadProject(ctx context.Context, console *output.Console, arg string) (project.Project, error) {
	path, err := project.ResolveProjectPath(arg)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	p, err := project.LoadContext(ctx, path, project.WithLogger(console.Logger()))
	if err != nil {
		return nil, fmt.Errorf("failed to load project %s: %w", path, err)
	}
	console.Debug("Loaded %s (%s, %s) in %dms", p.Path(), p.Schema(), p.Toolchain().Name, output.MeasureElapsed(start))
	return p, nil
}

// selectConfiguration returns configuration if the project declares it, or the first
// declared configuration when configuration is empty.
func selectConfiguration(p project.Project, configuration string) (string, error) {
	declared := p.Configurations()
	if len(declared) == 0 {
		return "", fmt.Errorf("project %s declares no configurations", p.Path())
	}
	if configuration == "" {
		return declared[0], nil
	}
	for _, c := range declared {
		if c == configuration {
			return c, nil
		}
	}
	if matches := p.TargetsFor(configuration); len(matches) == 1 {
		return matches[0].Configuration, nil
	}
	return "", fmt.Errorf("configuration %q not found in %s (available: %s)",
		configuration, p.Path(), strings.Join(declared, ", "))
}

// relativeTo shortens file for display when it lies under dir.
func relativeTo(dir, file string) string {
	if rel, ok := strings.CutPrefix(file, strings.TrimSuffix(dir, "/")+"/"); ok {
		return rel
	}
	return file
}
