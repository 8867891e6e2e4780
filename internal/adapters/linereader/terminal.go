package linereader

import (
	"errors"
	"fmt"
	"io"

	"github.com/AntonioJCosta/minish/internal/core/ports"
	"github.com/chzyer/readline"
)

// TerminalReader reads lines from an interactive terminal with line editing.
// History is kept in memory only.
type TerminalReader struct {
	rl *readline.Instance
}

// NewTerminalReader creates a TerminalReader on the given streams.
func NewTerminalReader(in io.ReadCloser, out io.Writer, prompt string) (ports.LineReader, error) {
	return newTerminalReader(&readline.Config{
		Prompt:          prompt,
		Stdin:           in,
		Stdout:          out,
		InterruptPrompt: "^C",
	})
}

func newTerminalReader(cfg *readline.Config) (*TerminalReader, error) {
	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize terminal line editor: %w", err)
	}
	return &TerminalReader{rl: rl}, nil
}

// ReadLine returns the next line. Ctrl-D on an empty line yields io.EOF;
// Ctrl-C discards the current line and prompts again.
func (r *TerminalReader) ReadLine() (string, error) {
	for {
		line, err := r.rl.Readline()
		if err == nil {
			return line, nil
		}
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", fmt.Errorf("failed to read terminal line: %w", err)
	}
}

// Close restores the terminal and releases the line editor.
func (r *TerminalReader) Close() error {
	return r.rl.Close()
}
