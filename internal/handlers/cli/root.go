package cli

import (
	"io"

	"github.com/spf13/cobra"
)

// Streams are the standard streams the shell runs on.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
	// IsTerminal reports whether In is an interactive terminal.
	IsTerminal bool
}

func NewRootCommand(version string, streams Streams) *cobra.Command {
	flags := &shellFlags{}

	rootCmd := &cobra.Command{
		Use:   "minish",
		Short: "minish is a tiny interactive shell with echo, fi and exit.",
		Long: `minish reads one command per line and runs it:

  echo [args...]   print the arguments
  fi <path>        report whether the path exists and whether it can be read, written or executed
  exit             leave the shell

Any other command is ignored. The shell also stops at the end of input.`,
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, flags, streams)
		},
	}
	rootCmd.SetIn(streams.In)
	rootCmd.SetOut(streams.Out)
	rootCmd.SetErr(streams.Err)

	rootCmd.Flags().StringVar(&flags.configPath, "config", "", "Path to a YAML settings file.")
	rootCmd.Flags().StringVar(&flags.prompt, "prompt", "", "Prompt shown before each line. Without it the prompt is \"?> \" on a terminal and empty otherwise.")
	rootCmd.Flags().StringVar(&flags.split, "split", "single", "How lines are split: 'single' (every space) or 'fields' (runs of whitespace).")
	rootCmd.Flags().BoolVar(&flags.color, "color", false, "Colorize fi reports.")
	rootCmd.Flags().StringVar(&flags.logLevel, "log-level", "", "Write diagnostics to stderr at this level: debug, info, warn or error.")

	rootCmd.AddCommand(NewCommandsCommand())

	return rootCmd
}
