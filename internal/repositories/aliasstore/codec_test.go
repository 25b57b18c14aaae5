package aliasstore

import (
	"errors"
	"strings"
	"testing"

	"github.com/AntonioJCosta/brewalias/internal/core/domain/alias"
)

func TestReadCommandLine(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		wantErr error
	}{
		{
			name:    "simple script",
			content: "#! /bin/bash\n# alias: brew ll\nbrew list $*\n",
			want:    "brew list $*",
		},
		{
			name:    "help comments skipped",
			content: "#! /bin/bash\n# alias: brew ll\n#:  * `ll` [args...]\n#:    `brew ll` is an alias for `brew list`\nbrew list $*\n",
			want:    "brew list $*",
		},
		{
			name:    "header lines ignored even when not comments",
			content: "shebang\nmeta\nls -la\n",
			want:    "ls -la",
		},
		{
			name:    "crlf line endings",
			content: "#! /bin/bash\r\n# alias\r\nbrew doctor\r\n",
			want:    "brew doctor",
		},
		{
			name:    "tab only line skipped",
			content: "#!\n#\n\t\nls\n",
			want:    "ls",
		},
		{
			name:    "only header",
			content: "#! /bin/bash\n# alias: brew x\n",
			wantErr: alias.ErrMalformedAlias,
		},
		{
			name:    "empty file",
			content: "",
			wantErr: alias.ErrMalformedAlias,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readCommandLine(strings.NewReader(tt.content))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("readCommandLine() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("readCommandLine() unexpected error = %v", err)
			}
			if got != tt.want {
				t.Errorf("readCommandLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeScript(t *testing.T) {
	got := string(encodeScript("/bin/bash", "brew", "ll", "brew list $*"))
	want := "#! /bin/bash\n" +
		"# alias: brew ll\n" +
		"#:  * `ll` [args...]\n" +
		"#:    `brew ll` is an alias for `brew list`\n" +
		"brew list $*\n"
	if got != want {
		t.Errorf("encodeScript() =\n%s\nwant\n%s", got, want)
	}

	line, err := readCommandLine(strings.NewReader(got))
	if err != nil || line != "brew list $*" {
		t.Errorf("readCommandLine(encodeScript()) = %q, %v", line, err)
	}
}

func TestEncodeTemplate(t *testing.T) {
	got := string(encodeTemplate("/bin/bash", "brew", "hi"))
	if !strings.HasPrefix(got, "#! /bin/bash\n# alias: brew hi\n") {
		t.Errorf("encodeTemplate() header = %q", got)
	}
	line, err := readCommandLine(strings.NewReader(got))
	if err != nil {
		t.Fatalf("readCommandLine(encodeTemplate()) error = %v", err)
	}
	if !strings.HasPrefix(line, "echo ") {
		t.Errorf("template command line = %q, want echo placeholder", line)
	}
}

func TestValidFileName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"ll", true},
		{"brew_outdated", true},
		{"a.b", true},
		{"", false},
		{".", false},
		{"..", false},
		{"a/b", false},
		{`a\b`, false},
		{"backup~", false},
	}
	for _, tt := range tests {
		if got := validFileName(tt.name); got != tt.want {
			t.Errorf("validFileName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
