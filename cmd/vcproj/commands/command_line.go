package commands

import (
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/willibrandon/vcproj/cmd/vcproj/output"
	"github.com/willibrandon/vcproj/project"
)

type commandLineOptions struct {
	projectOptions
	configuration string
}

// NewBuildCmdCommand creates the build-cmd command
func NewBuildCmdCommand(console *output.Console) *cobra.Command {
	return newCommandLineCommand(console, project.ModeBuild)
}

// NewCleanCmdCommand creates the clean-cmd command
func NewCleanCmdCommand(console *output.Console) *cobra.Command {
	return newCommandLineCommand(console, project.ModeClean)
}

func newCommandLineCommand(console *output.Console, mode project.BuildMode) *cobra.Command {
	opts := &commandLineOptions{}

	cmd := &cobra.Command{
		Use:   mode.String() + "-cmd [PROJECT]",
		Short: "Print the command line that " + mode.String() + "s a configuration",
		Long: heredoc.Docf(`
			Print the shell command line that sets up the toolchain environment and runs the
			Visual Studio build tool (vcbuild for .vcproj, msbuild for .vcxproj) to %s one
			configuration. Without --configuration the first declared configuration is used.

			The command is printed, never run.
		`, mode),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.bindArgs(args)
			return runCommandLine(cmd, console, opts, mode)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVar(&opts.configuration, "configuration", "", `Configuration key, e.g. "Debug|Win32"`)
	registerCompletions(cmd)
	return cmd
}

func runCommandLine(cmd *cobra.Command, console *output.Console, opts *commandLineOptions, mode project.BuildMode) error {
	start := time.Now()
	if err := opts.validate(); err != nil {
		return err
	}

	p, err := loadProject(cmd.Context(), console, opts.projectPath)
	if err != nil {
		return err
	}

	configuration, err := selectConfiguration(p, opts.configuration)
	if err != nil {
		return err
	}

	line := p.BuildCmd(configuration)
	if mode == project.ModeClean {
		line = p.CleanCmd(configuration)
	}

	if opts.json() {
		return console.WriteJSON(&output.CommandOutput{
			SchemaVersion: output.CurrentSchemaVersion,
			Project:       p.Path(),
			Configuration: configuration,
			Mode:          mode.String(),
			Program:       line.Program,
			Args:          line.Args,
			CommandLine:   line.String(),
			ElapsedMs:     output.MeasureElapsed(start),
		})
	}

	if !p.Toolchain().Located() {
		console.Warning("%s is not set; the command references a relative vcvarsall.bat", p.Toolchain().EnvVar)
	}
	console.Println(line.String())
	return nil
}
