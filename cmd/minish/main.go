package main

import (
	"os"

	"github.com/AntonioJCosta/minish/internal/handlers/cli"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Version is set at build time
var Version = "dev"

func main() {
	fd := os.Stdin.Fd()
	streams := cli.Streams{
		In:         os.Stdin,
		Out:        colorable.NewColorableStdout(),
		Err:        colorable.NewColorableStderr(),
		IsTerminal: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
	}

	rootCmd := cli.NewRootCommand(Version, streams)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
