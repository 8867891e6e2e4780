package command

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		want Kind
	}{
		{name: "echo", want: Echo},
		{name: "ECHO", want: Echo},
		{name: "fi", want: FileInfo},
		{name: "Fi", want: FileInfo},
		{name: "exit", want: Exit},
		{name: "EXIT", want: Exit},
		{name: "Exit", want: Exit},
		{name: "", want: Unknown},
		{name: "foobar", want: Unknown},
		{name: " echo", want: Unknown},
		{name: "echo ", want: Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lookup(tt.name); got != tt.want {
				t.Errorf("Lookup(%q) = %v, want %v", tt.name, got, tt.want)
			}
			if got := (Command{Name: tt.name}).Kind(); got != tt.want {
				t.Errorf("Command{Name: %q}.Kind() = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestBuiltinsCoverEveryKnownKind(t *testing.T) {
	seen := map[Kind]bool{}
	for _, b := range Builtins {
		if b.Kind == Unknown {
			t.Errorf("builtin %q maps to Unknown", b.Name)
		}
		if seen[b.Kind] {
			t.Errorf("kind %v registered twice", b.Kind)
		}
		seen[b.Kind] = true
		if b.Kind.String() != b.Name {
			t.Errorf("Kind(%d).String() = %q, want %q", b.Kind, b.Kind.String(), b.Name)
		}
	}
	for _, k := range []Kind{Echo, FileInfo, Exit} {
		if !seen[k] {
			t.Errorf("kind %v has no builtin entry", k)
		}
	}
}
