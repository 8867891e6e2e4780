package cli

import (
	"fmt"
	"io"

	"github.com/AntonioJCosta/minish/internal/adapters/inputparsing"
	"github.com/AntonioJCosta/minish/internal/adapters/linereader"
	"github.com/AntonioJCosta/minish/internal/adapters/osaccess"
	"github.com/AntonioJCosta/minish/internal/config"
	"github.com/AntonioJCosta/minish/internal/core/ports"
	"github.com/AntonioJCosta/minish/internal/core/services/dispatch"
	"github.com/AntonioJCosta/minish/internal/core/services/fileinspection"
	"github.com/AntonioJCosta/minish/internal/core/services/repl"
	"github.com/AntonioJCosta/minish/internal/handlers/ui"
	"github.com/AntonioJCosta/minish/internal/logging"
	"github.com/spf13/cobra"
)

const defaultPrompt = "?> "

type shellFlags struct {
	configPath string
	prompt     string
	split      string
	color      bool
	logLevel   string
}

// resolveSettings layers explicitly set flags over the config file.
func resolveSettings(cmd *cobra.Command, flags *shellFlags, isTerminal bool) (config.Config, string, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return config.Config{}, "", err
	}

	changed := cmd.Flags().Changed
	if changed("split") {
		cfg.Split = flags.split
	}
	if changed("color") {
		cfg.Color = flags.color
	}
	if changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, "", err
	}

	var prompt string
	switch {
	case changed("prompt"):
		prompt = flags.prompt
	case cfg.Prompt != nil:
		prompt = *cfg.Prompt
	case isTerminal:
		prompt = defaultPrompt
	}
	return cfg, prompt, nil
}

func newLineReader(streams Streams, prompt string) (ports.LineReader, error) {
	if !streams.IsTerminal {
		return linereader.NewStreamReader(streams.In, streams.Out, prompt), nil
	}
	in, ok := streams.In.(io.ReadCloser)
	if !ok {
		in = io.NopCloser(streams.In)
	}
	return linereader.NewTerminalReader(in, streams.Out, prompt)
}

func runShell(cmd *cobra.Command, flags *shellFlags, streams Streams) error {
	cfg, prompt, err := resolveSettings(cmd, flags, streams.IsTerminal)
	if err != nil {
		return fmt.Errorf("could not load settings: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel, streams.Err)
	if err != nil {
		return fmt.Errorf("could not set up logging: %w", err)
	}

	mode, err := inputparsing.ParseMode(cfg.Split)
	if err != nil {
		return err
	}

	reader, err := newLineReader(streams, prompt)
	if err != nil {
		return err
	}
	defer reader.Close()

	files := fileinspection.NewService(osaccess.NewChecker(), fileinspection.Options{
		ShowSize:     cfg.FileInfo.ShowSize,
		ShowContents: cfg.FileInfo.ShowContents,
	}, logger)
	renderer := ui.NewReportPrinter(ui.NewPalette(cfg.Color))
	dispatcher := dispatch.NewService(streams.Out, files, renderer, logger)
	shell := repl.NewService(reader, inputparsing.NewSpaceParser(mode), dispatcher, logger)

	logger.Debug("shell starting", "split", mode, "terminal", streams.IsTerminal)
	if err := shell.Run(); err != nil {
		return fmt.Errorf("shell stopped: %w", err)
	}
	return nil
}
