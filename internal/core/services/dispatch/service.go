package dispatch

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/AntonioJCosta/minish/internal/core/ports"
	"github.com/AntonioJCosta/minish/internal/logging"
)

type service struct {
	out      io.Writer
	files    ports.FileInfoService
	renderer ports.ReportRenderer
	logger   *slog.Logger
}

// NewService creates a dispatcher writing to out.
// It panics if any collaborator other than logger is nil.
func NewService(out io.Writer, files ports.FileInfoService, renderer ports.ReportRenderer, logger *slog.Logger) ports.Dispatcher {
	if out == nil {
		panic("output writer cannot be nil")
	}
	if files == nil {
		panic("file info service cannot be nil")
	}
	if renderer == nil {
		panic("report renderer cannot be nil")
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &service{out: out, files: files, renderer: renderer, logger: logger}
}

// Dispatch runs the behavior selected by the command name. Unrecognized
// names, the empty name included, do nothing.
func (s *service) Dispatch(cmd command.Command) ports.Outcome {
	kind := cmd.Kind()
	s.logger.Debug("dispatching command", "name", cmd.Name, "kind", kind, "args", len(cmd.Args))

	switch kind {
	case command.Echo:
		s.echo(cmd.Args)
	case command.FileInfo:
		s.fileInfo(cmd.Args)
	case command.Exit:
		return ports.Stop
	case command.Unknown:
	}
	return ports.Continue
}

func (s *service) echo(args []string) {
	fmt.Fprintln(s.out, strings.Join(args, " "))
}

// fileInfo rejoins the arguments with single spaces to recover the path, so
// a path typed with runs of spaces only survives in single-split mode.
func (s *service) fileInfo(args []string) {
	path := strings.Join(args, " ")
	s.renderer.Render(s.out, s.files.Inspect(path))
}
