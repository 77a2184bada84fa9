package commands

import (
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/willibrandon/vcproj/cmd/vcproj/output"
	"github.com/willibrandon/vcproj/project"
)

type filesOptions struct {
	projectOptions
	configuration string
	watch         bool
}

// NewFilesCommand creates the files command
func NewFilesCommand(console *output.Console) *cobra.Command {
	opts := &filesOptions{}

	cmd := &cobra.Command{
		Use:   "files [PROJECT]",
		Short: "List the files of a project",
		Long: heredoc.Doc(`
			List every file the project builds, sorted and without duplicates.

			With --configuration only the files built in that configuration are listed. With
			--watch the files whose modification requires the model to be reloaded are listed
			instead (the project file and its .filters companion).
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.bindArgs(args)
			return runFiles(cmd, console, opts)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVar(&opts.configuration, "configuration", "", `Only list files built in this configuration ("Debug|Win32")`)
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "List the files to watch for changes instead")
	registerCompletions(cmd)

	return cmd
}

func runFiles(cmd *cobra.Command, console *output.Console, opts *filesOptions) error {
	start := time.Now()
	if err := opts.validate(); err != nil {
		return err
	}

	p, err := loadProject(cmd.Context(), console, opts.projectPath)
	if err != nil {
		return err
	}

	var files []string
	configuration := ""
	switch {
	case opts.watch:
		files = p.FilesToWatch()
	case opts.configuration != "":
		configuration, err = selectConfiguration(p, opts.configuration)
		if err != nil {
			return err
		}
		files = p.TargetsFor(configuration)[0].Files
	default:
		files = p.Files()
	}

	if opts.json() {
		doc := &output.FilesOutput{
			SchemaVersion: output.CurrentSchemaVersion,
			Project:       p.Path(),
			Configuration: configuration,
			Watch:         opts.watch,
			Files:         make([]output.File, 0, len(files)),
		}
		for _, f := range files {
			doc.Files = append(doc.Files, output.File{Path: f, Type: project.ClassifyFile(f).String()})
		}
		doc.ElapsedMs = output.MeasureElapsed(start)
		return console.WriteJSON(doc)
	}

	detailed := console.GetVerbosity() >= output.VerbosityDetailed
	for _, f := range files {
		if detailed {
			console.Printf("%-8s  %s\n", project.ClassifyFile(f), f)
		} else {
			console.Println(f)
		}
	}
	return nil
}
