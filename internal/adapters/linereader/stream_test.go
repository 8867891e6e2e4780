package linereader

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var longText = strings.Repeat("x", 2*1024*1024)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device unplugged")
}

func readAll(t *testing.T, r interface{ ReadLine() (string, error) }) []string {
	t.Helper()
	var lines []string
	for {
		line, err := r.ReadLine()
		if errors.Is(err, io.EOF) {
			return lines
		}
		if err != nil {
			t.Fatalf("ReadLine() unexpected error: %v", err)
		}
		lines = append(lines, line)
	}
}

func TestStreamReader_ReadLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "no input", input: "", want: nil},
		{name: "single line", input: "echo hi\n", want: []string{"echo hi"}},
		{name: "final line without newline", input: "echo a\nexit", want: []string{"echo a", "exit"}},
		{name: "blank lines are kept", input: "\n\necho\n", want: []string{"", "", "echo"}},
		{name: "crlf terminators are stripped", input: "echo a\r\nfi x\r\n", want: []string{"echo a", "fi x"}},
		{name: "spaces are untouched", input: "  echo  \n", want: []string{"  echo  "}},
		{name: "lone carriage return line", input: "\r\n", want: []string{""}},
		{name: "line longer than any scanner buffer", input: "echo " + longText + "\necho after\n", want: []string{"echo " + longText, "echo after"}},
		{name: "long final line without newline", input: longText, want: []string{longText}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := NewStreamReader(strings.NewReader(tt.input), nil, "")
			got := readAll(t, reader)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("lines mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStreamReader_WritesPromptBeforeEachRead(t *testing.T) {
	var out bytes.Buffer
	reader := NewStreamReader(strings.NewReader("a\nb\n"), &out, "?> ")
	_ = readAll(t, reader)

	// Two lines plus the read that observes EOF.
	if got, want := out.String(), "?> ?> ?> "; got != want {
		t.Errorf("prompt output = %q, want %q", got, want)
	}
}

func TestStreamReader_EOFIsSticky(t *testing.T) {
	reader := NewStreamReader(strings.NewReader(""), nil, "")
	for i := 0; i < 2; i++ {
		if _, err := reader.ReadLine(); !errors.Is(err, io.EOF) {
			t.Fatalf("ReadLine() call %d error = %v, want io.EOF", i, err)
		}
	}
}

func TestStreamReader_PropagatesReadErrors(t *testing.T) {
	reader := NewStreamReader(failingReader{}, nil, "")
	_, err := reader.ReadLine()
	if err == nil || errors.Is(err, io.EOF) {
		t.Fatalf("ReadLine() error = %v, want a non-EOF error", err)
	}
	if !strings.Contains(err.Error(), "device unplugged") {
		t.Errorf("ReadLine() error = %q, want it to wrap the read failure", err)
	}
}

func TestStreamReader_Close(t *testing.T) {
	reader := NewStreamReader(strings.NewReader(""), nil, "")
	if err := reader.Close(); err != nil {
		t.Errorf("Close() unexpected error: %v", err)
	}
}
