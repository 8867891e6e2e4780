package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		level      string
		wantErr    bool
		wantDebug  bool
		wantOutput bool
	}{
		{name: "empty level discards", level: ""},
		{name: "debug", level: "debug", wantDebug: true, wantOutput: true},
		{name: "upper case info", level: "INFO", wantOutput: true},
		{name: "error hides info", level: "error"},
		{name: "unknown level", level: "verbose", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := New(tt.level, &buf)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New(%q) error = %v, wantErr %v", tt.level, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			logger.Debug("debug line")
			logger.Info("info line")

			out := buf.String()
			if got := strings.Contains(out, "debug line"); got != tt.wantDebug {
				t.Errorf("debug record present = %v, want %v (output %q)", got, tt.wantDebug, out)
			}
			if got := strings.Contains(out, "info line"); got != tt.wantOutput {
				t.Errorf("info record present = %v, want %v (output %q)", got, tt.wantOutput, out)
			}
		})
	}
}
