package fileinspection

import (
	"log/slog"

	"github.com/AntonioJCosta/minish/internal/core/domain/fileinfo"
	"github.com/AntonioJCosta/minish/internal/core/ports"
	"github.com/AntonioJCosta/minish/internal/logging"
)

// Options selects the optional parts of a report.
type Options struct {
	ShowSize     bool // Add the file size for existing paths
	ShowContents bool // Add the file text for existing, readable paths
}

type service struct {
	checker ports.AccessChecker
	opts    Options
	logger  *slog.Logger
}

// NewService creates a file info service. It panics if checker is nil.
func NewService(checker ports.AccessChecker, opts Options, logger *slog.Logger) ports.FileInfoService {
	if checker == nil {
		panic("access checker cannot be nil")
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &service{checker: checker, opts: opts, logger: logger}
}

/*
Inspect builds the permission report for path. Existence is checked first and
a missing path short-circuits the rest. Read, write and execute are then
asked separately, so the report may mix states if the file changes between
the calls.
*/
func (s *service) Inspect(path string) fileinfo.Report {
	report := fileinfo.Report{Path: path}
	if !s.checker.Exists(path) {
		return report
	}
	report.Exists = true

	abs, err := s.checker.Abs(path)
	if err != nil {
		s.logger.Warn("falling back to the path as typed", "path", path, "error", err)
		abs = path
	}
	report.AbsPath = abs
	report.Read = s.checker.CanRead(path)
	report.Write = s.checker.CanWrite(path)
	report.Execute = s.checker.CanExecute(path)

	if s.opts.ShowSize {
		size, err := s.checker.Size(path)
		if err != nil {
			s.logger.Warn("could not determine file size", "path", path, "error", err)
		} else {
			report.Size = size
			report.HasSize = true
		}
	}

	if s.opts.ShowContents && report.Read {
		contents, err := s.checker.Contents(path)
		if err != nil {
			s.logger.Warn("could not read file contents", "path", path, "error", err)
		} else {
			report.Contents = contents
			report.HasContents = true
		}
	}
	return report
}
