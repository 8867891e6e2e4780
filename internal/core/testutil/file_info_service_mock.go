package testutil

import (
	"github.com/AntonioJCosta/minish/internal/core/domain/fileinfo"
	"github.com/AntonioJCosta/minish/internal/core/ports"
)

// MockFileInfoService is a mock implementation of ports.FileInfoService.
type MockFileInfoService struct {
	InspectFunc func(path string) fileinfo.Report
	Calls       []string
}

// Inspect records the path and calls InspectFunc. Without InspectFunc the
// path is reported as missing.
func (m *MockFileInfoService) Inspect(path string) fileinfo.Report {
	m.Calls = append(m.Calls, path)
	if m.InspectFunc != nil {
		return m.InspectFunc(path)
	}
	return fileinfo.Report{Path: path}
}

var _ ports.FileInfoService = (*MockFileInfoService)(nil)
