package ports

import "github.com/AntonioJCosta/minish/internal/core/domain/fileinfo"

// FileInfoService builds permission reports.
type FileInfoService interface {
	Inspect(path string) fileinfo.Report
}
