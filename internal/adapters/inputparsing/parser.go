package inputparsing

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/AntonioJCosta/minish/internal/core/ports"
)

// Mode selects how a line is split into tokens.
type Mode string

const (
	// ModeSingle splits on every single space; consecutive spaces produce empty tokens.
	ModeSingle Mode = "single"
	// ModeFields splits on runs of whitespace and drops empty tokens.
	ModeFields Mode = "fields"
)

// ParseMode converts a configuration string into a Mode. The empty string selects ModeSingle.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(s)) {
	case "", ModeSingle:
		return ModeSingle, nil
	case ModeFields:
		return ModeFields, nil
	}
	return "", fmt.Errorf("unknown split mode %q (want %q or %q)", s, ModeSingle, ModeFields)
}

// SpaceParser implements ports.InputParser.
type SpaceParser struct {
	mode Mode
}

// NewSpaceParser creates a parser for the given mode.
func NewSpaceParser(mode Mode) ports.InputParser {
	if mode == "" {
		mode = ModeSingle
	}
	return &SpaceParser{mode: mode}
}

// Parse splits text into a command name and its arguments.
func (p *SpaceParser) Parse(text string) (command.Command, error) {
	tokens := p.tokenize(text)
	if len(tokens) == 0 {
		return command.Command{}, command.ErrEmptyInput
	}
	return command.Command{
		Name: tokens[0],
		Args: tokens[1:],
	}, nil
}

func (p *SpaceParser) tokenize(text string) []string {
	if p.mode == ModeFields {
		return strings.Fields(text)
	}
	// strings.Split returns [""] for "", which is still an empty line here.
	if text == "" {
		return nil
	}
	return strings.Split(text, " ")
}
