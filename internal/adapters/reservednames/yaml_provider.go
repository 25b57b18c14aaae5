package reservednames

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AntonioJCosta/brewalias/internal/core/ports"
	"gopkg.in/yaml.v3"
)

//go:embed reserved_names.yaml
var embeddedReservedNames []byte

// reservedNamesFile mirrors the layout of reserved_names.yaml.
type reservedNamesFile struct {
	Commands          []string `yaml:"commands"`
	DeveloperCommands []string `yaml:"developer_commands"`
	CommandAliases    []string `yaml:"command_aliases"`
}

func (f reservedNamesFile) all() []string {
	names := make([]string, 0, len(f.Commands)+len(f.DeveloperCommands)+len(f.CommandAliases))
	names = append(names, f.Commands...)
	names = append(names, f.DeveloperCommands...)
	return append(names, f.CommandAliases...)
}

// YAMLProvider implements the ReservedNameProvider interface
// by reading the embedded list of built-in commands.
type YAMLProvider struct {
	extra []string
	// overridePath, when set, replaces the embedded list with a file on disk.
	overridePath string
}

// NewYAMLProvider creates a new YAMLProvider.
// extra names, typically from the user's configuration, are reserved as well.
func NewYAMLProvider(extra ...string) ports.ReservedNameProvider {
	return &YAMLProvider{extra: extra}
}

// NewYAMLFileProvider creates a YAMLProvider that reads filePath instead of the embedded list.
func NewYAMLFileProvider(filePath string, extra ...string) (ports.ReservedNameProvider, error) {
	if filePath == "" {
		return nil, fmt.Errorf("YAML file path cannot be empty")
	}
	return &YAMLProvider{extra: extra, overridePath: filePath}, nil
}

// ReservedNames parses the reserved-name list. "alias" and "unalias" are always reserved.
func (p *YAMLProvider) ReservedNames() (map[string]struct{}, error) {
	data := embeddedReservedNames
	source := "embedded reserved names"
	if p.overridePath != "" {
		fileData, err := os.ReadFile(p.overridePath)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read reserved names file %s: %w", p.overridePath, err)
		}
		data = fileData
		source = p.overridePath
	}

	var parsed reservedNamesFile
	if len(data) > 0 {
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		// A document with only comments decodes to io.EOF; treat it as empty.
		if err := decoder.Decode(&parsed); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to unmarshal %s: %w", source, err)
		}
	}

	reserved := map[string]struct{}{"alias": {}, "unalias": {}}
	for _, name := range parsed.all() {
		reserved[name] = struct{}{}
	}
	for _, name := range p.extra {
		if name != "" {
			reserved[name] = struct{}{}
		}
	}
	return reserved, nil
}
