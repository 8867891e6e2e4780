package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func strPtr(s string) *string { return &s }

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "minish.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name                string
		content             *string // nil means the file is not created
		want                Config
		wantErr             bool
		wantErrorMsgSnippet string
	}{
		{
			name:    "missing file gives defaults",
			content: nil,
			want:    Default(),
		},
		{
			name:    "empty file gives defaults",
			content: strPtr(""),
			want:    Default(),
		},
		{
			name:    "comments only gives defaults",
			content: strPtr("# nothing here\n"),
			want:    Default(),
		},
		{
			name: "all settings",
			content: strPtr(`
prompt: "$ "
split: fields
color: true
logLevel: debug
fileInfo:
  showSize: true
  showContents: true
`),
			want: Config{
				Prompt:   strPtr("$ "),
				Split:    "fields",
				Color:    true,
				LogLevel: "debug",
				FileInfo: FileInfo{ShowSize: true, ShowContents: true},
			},
		},
		{
			name:    "empty prompt is kept",
			content: strPtr(`prompt: ""`),
			want:    Config{Prompt: strPtr(""), Split: "single"},
		},
		{
			name:    "log level in any case",
			content: strPtr("logLevel: WARN\n"),
			want:    Config{Split: "single", LogLevel: "WARN"},
		},
		{
			name:                "unknown key",
			content:             strPtr("history: true\n"),
			wantErr:             true,
			wantErrorMsgSnippet: "failed to parse config file",
		},
		{
			name:                "bad split mode",
			content:             strPtr("split: regex\n"),
			wantErr:             true,
			wantErrorMsgSnippet: "unknown split mode",
		},
		{
			name:                "bad log level",
			content:             strPtr("logLevel: loud\n"),
			wantErr:             true,
			wantErrorMsgSnippet: "unknown log level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "absent.yaml")
			if tt.content != nil {
				path = writeConfig(t, *tt.content)
			}

			got, err := Load(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !strings.Contains(err.Error(), tt.wantErrorMsgSnippet) {
					t.Errorf("Load() error = %q, want error to contain %q", err.Error(), tt.wantErrorMsgSnippet)
				}
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Load() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	got, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") unexpected error: %v", err)
	}
	if diff := cmp.Diff(Default(), got); diff != "" {
		t.Errorf("Load(\"\") mismatch (-want +got):\n%s", diff)
	}
}
