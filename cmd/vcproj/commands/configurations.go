package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/willibrandon/vcproj/cmd/vcproj/output"
)

// NewConfigurationsCommand creates the configurations command
func NewConfigurationsCommand(console *output.Console) *cobra.Command {
	opts := &projectOptions{}

	cmd := &cobra.Command{
		Use:     "configurations [PROJECT]",
		Aliases: []string{"configs"},
		Short:   "List the configurations a project declares",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.bindArgs(args)
			return runConfigurations(cmd, console, opts)
		},
	}

	opts.addFlags(cmd)
	registerCompletions(cmd)
	return cmd
}

func runConfigurations(cmd *cobra.Command, console *output.Console, opts *projectOptions) error {
	start := time.Now()
	if err := opts.validate(); err != nil {
		return err
	}

	p, err := loadProject(cmd.Context(), console, opts.projectPath)
	if err != nil {
		return err
	}

	configurations := p.Configurations()
	if opts.json() {
		return console.WriteJSON(&output.ConfigurationsOutput{
			SchemaVersion:  output.CurrentSchemaVersion,
			Project:        p.Path(),
			Configurations: append([]string{}, configurations...),
			ElapsedMs:      output.MeasureElapsed(start),
		})
	}

	if len(configurations) == 0 {
		console.Warning("Project '%s' declares no configurations", p.Name())
		return nil
	}
	for _, c := range configurations {
		console.Println(c)
	}
	return nil
}
