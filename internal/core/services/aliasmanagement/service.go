package aliasmanagement

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/AntonioJCosta/brewalias/internal/core/domain/alias"
	"github.com/AntonioJCosta/brewalias/internal/core/domain/command"
	"github.com/AntonioJCosta/brewalias/internal/core/ports"
	"github.com/AntonioJCosta/brewalias/internal/logging"
	"github.com/rs/zerolog"
)

type service struct {
	store      ports.AliasStore
	validator  ports.AliasNameValidator
	editor     ports.Editor
	normalizer command.Normalizer
	logger     zerolog.Logger
}

// NewService creates a new alias management service for the given host CLI.
// It panics if any collaborator is nil.
func NewService(host string, store ports.AliasStore, validator ports.AliasNameValidator, editor ports.Editor) ports.AliasManagementService {
	if store == nil {
		panic("store cannot be nil")
	}
	if validator == nil {
		panic("validator cannot be nil")
	}
	if editor == nil {
		panic("editor cannot be nil")
	}
	return &service{
		store:      store,
		validator:  validator,
		editor:     editor,
		normalizer: command.Normalizer{Host: host},
		logger:     logging.GetLogger("aliasmanagement"),
	}
}

// Init prepares the aliases directory.
func (s *service) Init() error {
	if err := s.store.Init(); err != nil {
		return fmt.Errorf("failed to initialize alias store: %w", err)
	}
	return nil
}

// AddAlias validates name and stores userCommand in script form.
// Reserved names are rejected here; the store itself accepts any valid file name.
func (s *service) AddAlias(name, userCommand string) (alias.Alias, error) {
	name, err := s.checkedName(name, false)
	if err != nil {
		return alias.Alias{}, err
	}
	if strings.TrimSpace(userCommand) == "" {
		return alias.Alias{}, fmt.Errorf("%w: no command given for '%s'", alias.ErrMalformedAlias, name)
	}
	line, err := s.scriptLine(name, userCommand)
	if err != nil {
		return alias.Alias{}, err
	}

	added, err := s.store.Add(name, line)
	if err != nil {
		return alias.Alias{}, fmt.Errorf("failed to add alias '%s': %w", name, err)
	}
	s.logger.Info().Str("alias", name).Str("command", added.Command).Msg("Alias added")
	return added, nil
}

// RemoveAlias deletes the alias and its symlink.
func (s *service) RemoveAlias(name string) error {
	name = s.validator.Sanitize(name)
	if err := s.store.Remove(name); err != nil {
		return fmt.Errorf("failed to remove alias '%s': %w", name, err)
	}
	s.logger.Info().Str("alias", name).Msg("Alias removed")
	return nil
}

/*
ShowAliases prints the requested aliases, or all of them when names is empty,
linking any that are not linked yet. Requested names the store cannot read
back, because there is no script or the script has no command line, are
reported as alias.ErrNotFound after the others have been shown.
*/
func (s *service) ShowAliases(w io.Writer, names ...string) error {
	if len(names) == 0 {
		if err := s.store.Show(w); err != nil {
			return fmt.Errorf("failed to show aliases: %w", err)
		}
		return nil
	}

	requested := make([]string, 0, len(names))
	for _, name := range names {
		requested = append(requested, s.validator.Sanitize(name))
	}
	readable := make(map[string]bool, len(requested))
	for a, err := range s.store.Enumerate(requested...) {
		if err != nil {
			return fmt.Errorf("failed to show aliases: %w", err)
		}
		readable[a.Name] = true
	}

	var found, missing []string
	for _, name := range requested {
		if readable[name] {
			found = append(found, name)
		} else {
			missing = append(missing, name)
		}
	}
	if len(found) > 0 {
		if err := s.store.Show(w, found...); err != nil {
			return fmt.Errorf("failed to show aliases: %w", err)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", alias.ErrNotFound, strings.Join(missing, ", "))
	}
	return nil
}

// ListAliases returns every alias sorted by name.
func (s *service) ListAliases() ([]alias.Alias, error) {
	var aliases []alias.Alias
	for a, err := range s.store.Enumerate() {
		if err != nil {
			return nil, fmt.Errorf("failed to list aliases: %w", err)
		}
		aliases = append(aliases, a)
	}
	sort.Slice(aliases, func(i, j int) bool { return aliases[i].Name < aliases[j].Name })
	return aliases, nil
}

/*
EditAlias opens the alias script in the editor. A non-empty userCommand
first overwrites the script; without one, a missing script is created from
a template. Symlinks are left as they are. Existing aliases can be edited
even if their name has since become reserved.
*/
func (s *service) EditAlias(name, userCommand string) error {
	name, err := s.checkedName(name, true)
	if err != nil {
		return err
	}

	var target alias.Alias
	switch {
	case strings.TrimSpace(userCommand) != "":
		var line string
		if line, err = s.scriptLine(name, userCommand); err != nil {
			return err
		}
		target, err = s.store.Write(name, line)
	case s.store.Exists(name):
		target = s.store.Lookup(name)
	default:
		target, err = s.store.WriteTemplate(name)
	}
	if err != nil {
		return fmt.Errorf("failed to prepare alias '%s' for editing: %w", name, err)
	}

	s.logger.Debug().Str("alias", name).Str("script", target.ScriptPath).Msg("Opening editor")
	if err := s.editor.Edit(target.ScriptPath); err != nil {
		return fmt.Errorf("failed to edit alias '%s': %w", name, err)
	}
	return nil
}

// EditAll opens every alias script in one editor invocation.
func (s *service) EditAll() error {
	paths, err := s.store.ScriptPaths()
	if err != nil {
		return fmt.Errorf("failed to collect alias scripts: %w", err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("%w: no aliases to edit", alias.ErrNotFound)
	}
	if err := s.editor.Edit(paths...); err != nil {
		return fmt.Errorf("failed to edit aliases: %w", err)
	}
	return nil
}

// checkedName sanitizes name and rejects reserved or invalid names.
// With allowExisting, a name that already has a script skips validation.
func (s *service) checkedName(name string, allowExisting bool) (string, error) {
	name = s.validator.Sanitize(name)
	if allowExisting && s.store.Exists(name) {
		return name, nil
	}
	if err := s.validator.Validate(name); err != nil {
		return "", err
	}
	return name, nil
}

// scriptLine converts userCommand to its script form and rejects shell
// commands that are empty or would be read back as a comment.
func (s *service) scriptLine(name, userCommand string) (string, error) {
	line := s.normalizer.ScriptLine(userCommand)
	body := strings.TrimSuffix(line, command.Splat)
	if strings.TrimSpace(body) == "" || strings.HasPrefix(body, "#") {
		return "", fmt.Errorf("%w: %q has nothing to run for '%s'", alias.ErrMalformedAlias, userCommand, name)
	}
	return line, nil
}
