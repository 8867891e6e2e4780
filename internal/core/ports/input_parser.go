package ports

import "github.com/AntonioJCosta/minish/internal/core/domain/command"

/*
InputParser defines the contract for turning one raw input line into a
command. This is a driven port, implemented by the inputparsing adapter.
*/
type InputParser interface {
	// Parse returns the command for text, or an error when text yields no tokens.
	Parse(text string) (command.Command, error)
}
