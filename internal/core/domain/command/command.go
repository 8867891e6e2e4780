/*
Package command defines the core domain entities for a parsed input line
and the closed set of commands the loop understands.
*/
package command

import (
	"errors"
	"strings"
)

// ErrEmptyInput indicates that an input line produced no tokens.
var ErrEmptyInput = errors.New("empty input")

// Command holds one parsed input line.
type Command struct {
	Name string   // First token of the line, as typed
	Args []string // Remaining tokens in original order, empty strings included
}

// Kind identifies which built-in behavior a command name maps to.
type Kind int

const (
	Unknown Kind = iota
	Echo
	FileInfo
	Exit
)

// Builtin describes a command the dispatcher recognizes.
type Builtin struct {
	Name        string
	Kind        Kind
	Usage       string
	Description string
}

// Builtins lists every recognized command in display order.
var Builtins = []Builtin{
	{Name: "echo", Kind: Echo, Usage: "echo [args...]", Description: "Print the arguments joined by single spaces."},
	{Name: "fi", Kind: FileInfo, Usage: "fi <path>", Description: "Report existence and read/write/execute access for a path."},
	{Name: "exit", Kind: Exit, Usage: "exit", Description: "Leave the shell with status 0."},
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(Builtins))
	for _, b := range Builtins {
		m[b.Name] = b.Kind
	}
	return m
}()

// Lookup resolves a command name case-insensitively. Names outside the
// table, including the empty string, resolve to Unknown.
func Lookup(name string) Kind {
	if k, ok := kindsByName[strings.ToLower(name)]; ok {
		return k
	}
	return Unknown
}

// Kind returns the behavior this command dispatches to.
func (c Command) Kind() Kind {
	return Lookup(c.Name)
}

func (k Kind) String() string {
	switch k {
	case Echo:
		return "echo"
	case FileInfo:
		return "fi"
	case Exit:
		return "exit"
	default:
		return "unknown"
	}
}
