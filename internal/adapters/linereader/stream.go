/*
Package linereader provides the input sources for the command loop: a plain
stream reader for pipes and files, and a line-editing reader for terminals.
*/
package linereader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/minish/internal/core/ports"
)

// StreamReader reads newline-terminated lines from any io.Reader. Lines have
// no length limit.
type StreamReader struct {
	in     *bufio.Reader
	out    io.Writer
	prompt string
}

// NewStreamReader creates a StreamReader. When prompt is not empty it is
// written to out before every read.
func NewStreamReader(in io.Reader, out io.Writer, prompt string) ports.LineReader {
	return &StreamReader{in: bufio.NewReader(in), out: out, prompt: prompt}
}

// ReadLine returns the next line without its "\n" or "\r\n" terminator, or
// io.EOF when the input is exhausted. A final line lacking a newline is
// still returned.
func (r *StreamReader) ReadLine() (string, error) {
	if r.prompt != "" && r.out != nil {
		fmt.Fprint(r.out, r.prompt)
	}
	line, err := r.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input line: %w", err)
		}
		if line == "" {
			return "", io.EOF
		}
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// Close is a no-op; the underlying reader belongs to the caller.
func (r *StreamReader) Close() error {
	return nil
}
