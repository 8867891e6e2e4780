package ports

import "github.com/AntonioJCosta/minish/internal/core/domain/command"

// Outcome tells the loop whether to keep reading input.
type Outcome int

const (
	Continue Outcome = iota
	Stop
)

// Dispatcher executes a parsed command. It never fails; all of its
// results are written to its output.
type Dispatcher interface {
	Dispatch(cmd command.Command) Outcome
}
