package testutil

import (
	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/AntonioJCosta/minish/internal/core/ports"
)

// MockDispatcher records every dispatched command.
type MockDispatcher struct {
	DispatchFunc func(cmd command.Command) ports.Outcome
	Dispatched   []command.Command
}

func (m *MockDispatcher) Dispatch(cmd command.Command) ports.Outcome {
	m.Dispatched = append(m.Dispatched, cmd)
	if m.DispatchFunc != nil {
		return m.DispatchFunc(cmd)
	}
	return ports.Continue
}

var _ ports.Dispatcher = (*MockDispatcher)(nil)
