package commands

import (
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/willibrandon/vcproj/cmd/vcproj/output"
	"github.com/willibrandon/vcproj/folder"
)

// NewTreeCommand creates the tree command
func NewTreeCommand(console *output.Console) *cobra.Command {
	opts := &projectOptions{}

	cmd := &cobra.Command{
		Use:   "tree [PROJECT]",
		Short: "Show the filter folder tree of a project",
		Long: heredoc.Doc(`
			Show the virtual folders ("filters") Visual Studio displays for the project and
			the files in each. Files are shown relative to the project directory.
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.bindArgs(args)
			return runTree(cmd, console, opts)
		},
	}

	opts.addFlags(cmd)
	registerCompletions(cmd)
	return cmd
}

func runTree(cmd *cobra.Command, console *output.Console, opts *projectOptions) error {
	start := time.Now()
	if err := opts.validate(); err != nil {
		return err
	}

	p, err := loadProject(cmd.Context(), console, opts.projectPath)
	if err != nil {
		return err
	}

	root := p.Root()
	folders, files := root.Count()

	if opts.json() {
		return console.WriteJSON(&output.TreeOutput{
			SchemaVersion: output.CurrentSchemaVersion,
			Project:       p.Path(),
			Root:          output.NewFolderNode(root),
			FolderCount:   folders,
			FileCount:     files,
			ElapsedMs:     output.MeasureElapsed(start),
		})
	}

	console.Header("%s", p.Name())
	printFolder(console, p.Dir(), root, 1)
	console.Info("%d folder(s), %d file(s)", folders, files)
	return nil
}

func printFolder(console *output.Console, dir string, f *folder.Folder, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, child := range f.Children() {
		console.Folder("%s%s/", indent, child.Name())
		printFolder(console, dir, child, depth+1)
	}
	for _, file := range f.Files() {
		console.Printf("%s%s\n", indent, relativeTo(dir, file))
	}
}
