package reservednames

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewYAMLProvider(t *testing.T) {
	provider := NewYAMLProvider()
	if provider == nil {
		t.Fatal("NewYAMLProvider() returned nil")
	}
	if _, ok := provider.(*YAMLProvider); !ok {
		t.Errorf("NewYAMLProvider() did not return a *YAMLProvider, got %T", provider)
	}
}

func TestYAMLProvider_EmbeddedList(t *testing.T) {
	reserved, err := NewYAMLProvider("mine", "").ReservedNames()
	if err != nil {
		t.Fatalf("ReservedNames() unexpected error = %v", err)
	}

	for _, name := range []string{"alias", "unalias", "install", "list", "ls", "rm", "audit", "mine"} {
		if _, ok := reserved[name]; !ok {
			t.Errorf("ReservedNames() missing %q", name)
		}
	}
	for _, name := range []string{"ll", "", "my-upgrade"} {
		if _, ok := reserved[name]; ok {
			t.Errorf("ReservedNames() unexpectedly contains %q", name)
		}
	}
}

func TestYAMLProvider_FileOverride(t *testing.T) {
	validYAML := `
commands:
  - one
developer_commands:
  - two
command_aliases:
  - three
`
	tests := []struct {
		name                string
		content             *string
		wantNames           []string
		wantMissing         []string
		wantErr             bool
		wantErrorMsgSnippet string
	}{
		{
			name:        "valid file",
			content:     &validYAML,
			wantNames:   []string{"one", "two", "three", "alias", "unalias"},
			wantMissing: []string{"install"},
		},
		{
			name:        "missing file keeps only the fixed names",
			content:     nil,
			wantNames:   []string{"alias", "unalias"},
			wantMissing: []string{"install"},
		},
		{
			name:      "comments only",
			content:   ptr("# nothing here\n"),
			wantNames: []string{"alias", "unalias"},
		},
		{
			name:                "unknown field",
			content:             ptr("commands: [a]\nbogus: [b]\n"),
			wantErr:             true,
			wantErrorMsgSnippet: "failed to unmarshal",
		},
		{
			name:                "not a mapping",
			content:             ptr("- a\n- b\n"),
			wantErr:             true,
			wantErrorMsgSnippet: "failed to unmarshal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "reserved.yaml")
			if tt.content != nil {
				if err := os.WriteFile(path, []byte(*tt.content), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			provider, err := NewYAMLFileProvider(path)
			if err != nil {
				t.Fatalf("NewYAMLFileProvider() error = %v", err)
			}

			reserved, err := provider.ReservedNames()
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReservedNames() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !strings.Contains(err.Error(), tt.wantErrorMsgSnippet) {
					t.Errorf("ReservedNames() error = %q, want it to contain %q", err, tt.wantErrorMsgSnippet)
				}
				return
			}
			for _, name := range tt.wantNames {
				if _, ok := reserved[name]; !ok {
					t.Errorf("ReservedNames() missing %q", name)
				}
			}
			for _, name := range tt.wantMissing {
				if _, ok := reserved[name]; ok {
					t.Errorf("ReservedNames() unexpectedly contains %q", name)
				}
			}
		})
	}
}

func TestNewYAMLFileProvider_EmptyPath(t *testing.T) {
	if _, err := NewYAMLFileProvider(""); err == nil {
		t.Error("NewYAMLFileProvider(\"\") expected an error")
	}
}

func ptr(s string) *string { return &s }
