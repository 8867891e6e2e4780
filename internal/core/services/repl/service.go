package repl

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/AntonioJCosta/minish/internal/core/ports"
	"github.com/AntonioJCosta/minish/internal/logging"
)

type service struct {
	reader     ports.LineReader
	parser     ports.InputParser
	dispatcher ports.Dispatcher
	logger     *slog.Logger
}

// NewService creates the command loop. It panics if reader, parser or dispatcher is nil.
func NewService(reader ports.LineReader, parser ports.InputParser, dispatcher ports.Dispatcher, logger *slog.Logger) ports.ReplService {
	if reader == nil {
		panic("line reader cannot be nil")
	}
	if parser == nil {
		panic("input parser cannot be nil")
	}
	if dispatcher == nil {
		panic("dispatcher cannot be nil")
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &service{reader: reader, parser: parser, dispatcher: dispatcher, logger: logger}
}

/*
Run reads, parses and dispatches lines until the exit command or the end of
input, both of which return nil. Empty lines are skipped without output. Any
other read failure ends the loop and is returned.
*/
func (s *service) Run() error {
	for {
		line, err := s.reader.ReadLine()
		if errors.Is(err, io.EOF) {
			s.logger.Debug("input closed, leaving loop")
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading command: %w", err)
		}

		cmd, err := s.parser.Parse(line)
		if err != nil {
			if !errors.Is(err, command.ErrEmptyInput) {
				s.logger.Warn("discarding unparsable line", "error", err)
			}
			continue
		}

		if s.dispatcher.Dispatch(cmd) == ports.Stop {
			s.logger.Debug("exit requested, leaving loop")
			return nil
		}
	}
}
