package testutil

import (
	"errors"

	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/AntonioJCosta/minish/internal/core/ports"
)

// MockInputParser is a mock implementation of ports.InputParser.
type MockInputParser struct {
	ParseFunc func(text string) (command.Command, error)
}

func (m *MockInputParser) Parse(text string) (command.Command, error) {
	if m.ParseFunc != nil {
		return m.ParseFunc(text)
	}
	return command.Command{}, errors.New("MockInputParser: ParseFunc not implemented")
}

var _ ports.InputParser = (*MockInputParser)(nil)
