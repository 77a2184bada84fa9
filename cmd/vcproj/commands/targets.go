package commands

import (
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/willibrandon/vcproj/cmd/vcproj/output"
	"github.com/willibrandon/vcproj/project"
)

type targetsOptions struct {
	projectOptions
	configuration string
	runnable      bool
}

// NewTargetsCommand creates the targets command
func NewTargetsCommand(console *output.Console) *cobra.Command {
	opts := &targetsOptions{}

	cmd := &cobra.Command{
		Use:   "targets [PROJECT]",
		Short: "List the build targets of a project",
		Long: heredoc.Doc(`
			List one build target per configuration with its output, directories, runtime
			library and compiler options. Detailed verbosity adds include directories and the
			preprocessor definitions.

			Examples:
			  vcproj targets
			  vcproj targets app.vcxproj --configuration Debug
			  vcproj targets --runnable --format json
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.bindArgs(args)
			return runTargets(cmd, console, opts)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVar(&opts.configuration, "configuration", "", `Only show this configuration ("Debug|x64", or "Debug" for every platform)`)
	cmd.Flags().BoolVar(&opts.runnable, "runnable", false, "Only show executable targets")
	registerCompletions(cmd)

	return cmd
}

func runTargets(cmd *cobra.Command, console *output.Console, opts *targetsOptions) error {
	start := time.Now()
	if err := opts.validate(); err != nil {
		return err
	}

	p, err := loadProject(cmd.Context(), console, opts.projectPath)
	if err != nil {
		return err
	}

	targets := selectTargets(p, opts)

	if opts.json() {
		doc := &output.TargetsOutput{
			SchemaVersion: output.CurrentSchemaVersion,
			Project:       p.Path(),
			Schema:        p.Schema().String(),
			Toolchain:     p.Toolchain().Name,
			Targets:       make([]output.Target, 0, len(targets)),
		}
		for _, t := range targets {
			doc.Targets = append(doc.Targets, targetJSON(t))
		}
		doc.ElapsedMs = output.MeasureElapsed(start)
		return console.WriteJSON(doc)
	}

	console.Printf("Project '%s' (%s, %s) has %d target(s):\n", p.Name(), p.Schema(), p.Toolchain().Name, len(targets))
	for _, t := range targets {
		console.Println()
		console.Header("%s  %s", t.Configuration, t.TargetType)
		if t.Output != "" {
			console.Printf("  Output:   %s\n", t.Output)
		}
		console.Printf("  OutDir:   %s\n", t.OutDir)
		console.Printf("  IntDir:   %s\n", t.IntDir)
		console.Printf("  Runtime:  %s\n", t.RuntimeLibrary)
		console.Printf("  Charset:  %s\n", t.CharacterSet)
		for _, dir := range t.IncludeDirectories {
			console.Detail("  Include:  %s", dir)
		}
		for _, name := range t.DefineNames() {
			if value, _ := t.DefineValue(name); value != "" {
				console.Detail("  Define:   %s=%s", name, value)
			} else {
				console.Detail("  Define:   %s", name)
			}
		}
	}
	return nil
}

func selectTargets(p project.Project, opts *targetsOptions) []project.BuildTarget {
	targets := p.Targets()
	if opts.runnable {
		targets = p.RunnableTargets()
	}
	if opts.configuration == "" {
		return targets
	}

	wanted := make(map[string]bool)
	for _, t := range p.TargetsFor(opts.configuration) {
		wanted[t.Configuration] = true
	}
	var out []project.BuildTarget
	for _, t := range targets {
		if wanted[t.Configuration] {
			out = append(out, t)
		}
	}
	return out
}

func targetJSON(t project.BuildTarget) output.Target {
	out := output.Target{
		Configuration:      t.Configuration,
		Title:              t.Title,
		Type:               t.TargetType.String(),
		Output:             t.Output,
		OutDir:             t.OutDir,
		IntDir:             t.IntDir,
		RuntimeLibrary:     t.RuntimeLibrary.String(),
		CharacterSet:       t.CharacterSet.String(),
		SharedMFC:          t.SharedMFC,
		CompilerOptions:    append([]string{}, t.CompilerOptions...),
		IncludeDirectories: append([]string{}, t.IncludeDirectories...),
		Defines:            []output.Define{},
		FileCount:          len(t.Files),
	}
	for _, name := range t.DefineNames() {
		value, _ := t.DefineValue(name)
		out.Defines = append(out.Defines, output.Define{Name: name, Value: value})
	}
	return out
}
