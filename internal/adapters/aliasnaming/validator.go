package aliasnaming

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/AntonioJCosta/brewalias/internal/core/domain/alias"
	"github.com/AntonioJCosta/brewalias/internal/core/domain/command"
	"github.com/AntonioJCosta/brewalias/internal/core/ports"
)

// Regex for names usable both as a script file name and as a host subcommand.
var validAliasNameRegex = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_.-]*$`)

// Characters replaced by Sanitize.
var invalidAliasCharsRegex = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// Validator checks alias names against the reserved-name set and the
// external commands already reachable on PATH.
type Validator struct {
	host       string
	aliasesDir string
	provider   ports.ReservedNameProvider
	reserved   map[string]struct{}
	lookPath   func(file string) (string, error)
}

// NewValidator creates a new Validator.
// It panics if the reserved-name provider is nil.
func NewValidator(host, aliasesDir string, provider ports.ReservedNameProvider) ports.AliasNameValidator {
	if provider == nil {
		panic("reserved name provider cannot be nil")
	}
	if host == "" {
		host = command.DefaultHost
	}
	return &Validator{
		host:       host,
		aliasesDir: aliasesDir,
		provider:   provider,
		lookPath:   exec.LookPath,
	}
}

/*
Sanitize normalizes a user-supplied name: surrounding whitespace and a
leading "<host>-" are removed, and characters that cannot appear in an alias
name are replaced with underscores.

Example:

	v.Sanitize(" brew-my alias ") // "my_alias"
*/
func (v *Validator) Sanitize(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimPrefix(name, v.host+"-")
	return invalidAliasCharsRegex.ReplaceAllString(name, "_")
}

// Validate implements the ports.AliasNameValidator interface.
func (v *Validator) Validate(name string) error {
	if !validAliasNameRegex.MatchString(name) {
		return fmt.Errorf("%w: %q", alias.ErrInvalidName, name)
	}

	reserved, err := v.reservedNames()
	if err != nil {
		return err
	}
	if _, ok := reserved[name]; ok {
		return fmt.Errorf("%w: '%s' is a reserved command. Sorry", alias.ErrReservedName, name)
	}

	if path, ok := v.externalCommand(name); ok {
		return fmt.Errorf("%w: '%s %s' is provided by %s", alias.ErrCommandExists, v.host, name, path)
	}
	return nil
}

func (v *Validator) reservedNames() (map[string]struct{}, error) {
	if v.reserved != nil {
		return v.reserved, nil
	}
	reserved, err := v.provider.ReservedNames()
	if err != nil {
		return nil, fmt.Errorf("failed to load reserved names: %w", err)
	}
	v.reserved = reserved
	return reserved, nil
}

/*
externalCommand looks for "<host>-<name>" and "<host>-<name>.rb" on PATH.
A match that resolves into the aliases directory is one of our own aliases
and does not count.
*/
func (v *Validator) externalCommand(name string) (string, bool) {
	for _, candidate := range []string{v.host + "-" + name + ".rb", v.host + "-" + name} {
		path, err := v.lookPath(candidate)
		if err != nil {
			continue
		}
		if v.isOwnAlias(path) {
			continue
		}
		return path, true
	}
	return "", false
}

func (v *Validator) isOwnAlias(path string) bool {
	if v.aliasesDir == "" {
		return false
	}
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return false
	}
	aliasesDir, err := filepath.EvalSymlinks(v.aliasesDir)
	if err != nil {
		aliasesDir = filepath.Clean(v.aliasesDir)
	}
	return filepath.Dir(resolved) == aliasesDir
}
