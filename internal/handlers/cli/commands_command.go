package cli

import (
	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/AntonioJCosta/minish/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewCommandsCommand creates the 'commands' subcommand.
func NewCommandsCommand() *cobra.Command {
	var color bool

	cmd := &cobra.Command{
		Use:   "commands",
		Short: "List the commands the shell understands.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommandsCmd(cmd, ui.NewPalette(color))
		},
	}
	cmd.Flags().BoolVar(&color, "color", false, "Colorize command names.")
	return cmd
}

func runCommandsCmd(cmd *cobra.Command, palette ui.Palette) error {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Command", "Usage", "Description"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, b := range command.Builtins {
		table.Append([]string{palette.Name(b.Name), b.Usage, palette.Detail(b.Description)})
	}
	table.Render()
	return nil
}
