package testutil

import (
	"errors"

	"github.com/AntonioJCosta/minish/internal/core/ports"
)

// MockAccessChecker is a mock implementation of ports.AccessChecker.
type MockAccessChecker struct {
	ExistsFunc     func(path string) bool
	CanReadFunc    func(path string) bool
	CanWriteFunc   func(path string) bool
	CanExecuteFunc func(path string) bool
	AbsFunc        func(path string) (string, error)
	SizeFunc       func(path string) (int64, error)
	ContentsFunc   func(path string) (string, error)
}

func (m *MockAccessChecker) Exists(path string) bool {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(path)
	}
	return false
}

func (m *MockAccessChecker) CanRead(path string) bool {
	if m.CanReadFunc != nil {
		return m.CanReadFunc(path)
	}
	return false
}

func (m *MockAccessChecker) CanWrite(path string) bool {
	if m.CanWriteFunc != nil {
		return m.CanWriteFunc(path)
	}
	return false
}

func (m *MockAccessChecker) CanExecute(path string) bool {
	if m.CanExecuteFunc != nil {
		return m.CanExecuteFunc(path)
	}
	return false
}

func (m *MockAccessChecker) Abs(path string) (string, error) {
	if m.AbsFunc != nil {
		return m.AbsFunc(path)
	}
	return "", errors.New("MockAccessChecker: AbsFunc not implemented")
}

func (m *MockAccessChecker) Size(path string) (int64, error) {
	if m.SizeFunc != nil {
		return m.SizeFunc(path)
	}
	return 0, errors.New("MockAccessChecker: SizeFunc not implemented")
}

func (m *MockAccessChecker) Contents(path string) (string, error) {
	if m.ContentsFunc != nil {
		return m.ContentsFunc(path)
	}
	return "", errors.New("MockAccessChecker: ContentsFunc not implemented")
}

var _ ports.AccessChecker = (*MockAccessChecker)(nil)
