package aliasstore

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"sort"

	"github.com/AntonioJCosta/brewalias/internal/core/domain/alias"
	"github.com/AntonioJCosta/brewalias/internal/core/domain/command"
	"github.com/AntonioJCosta/brewalias/internal/core/ports"
	"github.com/AntonioJCosta/brewalias/internal/logging"
	"github.com/rs/zerolog"
)

// Store keeps one executable script per alias in a flat directory and
// links them into a bin directory as "<host>-<name>".
type Store struct {
	dir        string
	binDir     string
	host       string
	shell      string
	normalizer command.Normalizer
	logger     zerolog.Logger
}

// NewStore creates a Store rooted at aliasesDir. Symlinks are created in binDir.
func NewStore(aliasesDir, binDir, host string) (ports.AliasStore, error) {
	if aliasesDir == "" {
		return nil, fmt.Errorf("aliases directory cannot be empty")
	}
	if binDir == "" {
		return nil, fmt.Errorf("bin directory cannot be empty")
	}
	if host == "" {
		host = command.DefaultHost
	}
	absDir, err := filepath.Abs(aliasesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve aliases directory %s: %w", aliasesDir, err)
	}
	absBin, err := filepath.Abs(binDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve bin directory %s: %w", binDir, err)
	}
	return &Store{
		dir:        absDir,
		binDir:     absBin,
		host:       host,
		shell:      findShell(),
		normalizer: command.Normalizer{Host: host},
		logger:     logging.GetLogger("aliasstore"),
	}, nil
}

// Init implements the ports.AliasStore interface.
func (s *Store) Init() error {
	if err := os.MkdirAll(s.dir, aliasesDirMode); err != nil {
		return fmt.Errorf("failed to create aliases directory %s: %w", s.dir, err)
	}
	return nil
}

// Lookup implements the ports.AliasStore interface.
func (s *Store) Lookup(name string) alias.Alias {
	return alias.Alias{
		Name:        name,
		ScriptPath:  filepath.Join(s.dir, name),
		SymlinkPath: filepath.Join(s.binDir, s.host+"-"+name),
	}
}

// Exists implements the ports.AliasStore interface.
func (s *Store) Exists(name string) bool {
	if !validFileName(name) {
		return false
	}
	info, err := os.Stat(s.Lookup(name).ScriptPath)
	return err == nil && !info.IsDir()
}

// Add implements the ports.AliasStore interface.
// The script is created exclusively, so a concurrent Add of the same name fails instead of overwriting.
func (s *Store) Add(name, cmd string) (alias.Alias, error) {
	a, err := s.prepare(name, cmd)
	if err != nil {
		return alias.Alias{}, err
	}
	err = s.writeFile(a.ScriptPath, encodeScript(s.shell, s.host, name, cmd), os.O_CREATE|os.O_EXCL|os.O_WRONLY)
	if errors.Is(err, fs.ErrExist) {
		return alias.Alias{}, fmt.Errorf("%w: '%s %s'", alias.ErrAlreadyExists, s.host, name)
	}
	if err != nil {
		return alias.Alias{}, err
	}
	s.logger.Debug().Str("alias", name).Str("script", a.ScriptPath).Msg("Alias added")
	return a, nil
}

// Write implements the ports.AliasStore interface.
func (s *Store) Write(name, cmd string) (alias.Alias, error) {
	a, err := s.prepare(name, cmd)
	if err != nil {
		return alias.Alias{}, err
	}
	if err := s.writeFile(a.ScriptPath, encodeScript(s.shell, s.host, name, cmd), os.O_CREATE|os.O_TRUNC|os.O_WRONLY); err != nil {
		return alias.Alias{}, err
	}
	s.logger.Debug().Str("alias", name).Str("script", a.ScriptPath).Msg("Alias written")
	return a, nil
}

// WriteTemplate implements the ports.AliasStore interface.
func (s *Store) WriteTemplate(name string) (alias.Alias, error) {
	if !validFileName(name) {
		return alias.Alias{}, fmt.Errorf("%w: %q", alias.ErrInvalidName, name)
	}
	a := s.Lookup(name)
	err := s.writeFile(a.ScriptPath, encodeTemplate(s.shell, s.host, name), os.O_CREATE|os.O_EXCL|os.O_WRONLY)
	if err != nil && !errors.Is(err, fs.ErrExist) {
		return alias.Alias{}, err
	}
	return a, nil
}

func (s *Store) prepare(name, cmd string) (alias.Alias, error) {
	if !validFileName(name) {
		return alias.Alias{}, fmt.Errorf("%w: %q", alias.ErrInvalidName, name)
	}
	if err := checkCommand(cmd); err != nil {
		return alias.Alias{}, fmt.Errorf("%w: no command line in %q for '%s'", alias.ErrMalformedAlias, cmd, name)
	}
	if err := s.Init(); err != nil {
		return alias.Alias{}, err
	}
	a := s.Lookup(name)
	a.Command = cmd
	return a, nil
}

func (s *Store) writeFile(path string, content []byte, flag int) error {
	file, err := os.OpenFile(path, flag, scriptFileMode)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return err
		}
		return fmt.Errorf("failed to open alias script %s: %w", path, err)
	}
	if _, err := file.Write(content); err != nil {
		file.Close()
		return fmt.Errorf("failed to write alias script %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close alias script %s: %w", path, err)
	}
	// OpenFile keeps the mode of an existing file and is subject to umask.
	if err := os.Chmod(path, scriptFileMode); err != nil {
		return fmt.Errorf("failed to make alias script %s executable: %w", path, err)
	}
	return nil
}

// Remove implements the ports.AliasStore interface.
// It returns alias.ErrNotFound if there was neither a script nor a symlink to delete.
func (s *Store) Remove(name string) error {
	if !validFileName(name) {
		return fmt.Errorf("%w: %q", alias.ErrInvalidName, name)
	}
	a := s.Lookup(name)
	removed := false

	// Directories and links to them are not aliases and are left alone.
	if info, err := os.Lstat(a.ScriptPath); err == nil && !skipEntry(a.ScriptPath, fs.FileInfoToDirEntry(info)) {
		if err := os.Remove(a.ScriptPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to remove alias script %s: %w", a.ScriptPath, err)
		}
		removed = true
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to inspect alias script %s: %w", a.ScriptPath, err)
	}

	if s.ownsSymlink(a.SymlinkPath) {
		if err := os.Remove(a.SymlinkPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to remove alias symlink %s: %w", a.SymlinkPath, err)
		}
		removed = true
	}

	if !removed {
		return fmt.Errorf("%w: '%s %s' is not aliased to anything", alias.ErrNotFound, s.host, name)
	}
	s.logger.Debug().Str("alias", name).Msg("Alias removed")
	return nil
}

// ownsSymlink reports whether path is a symlink pointing into the aliases directory.
func (s *Store) ownsSymlink(path string) bool {
	info, err := os.Lstat(path)
	if err != nil || info.Mode()&fs.ModeSymlink == 0 {
		return false
	}
	target, err := os.Readlink(path)
	if err != nil {
		return false
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(path), target)
	}
	targetDir := filepath.Dir(filepath.Clean(target))
	if targetDir == s.dir {
		return true
	}
	resolvedTarget, errTarget := filepath.EvalSymlinks(targetDir)
	resolvedDir, errDir := filepath.EvalSymlinks(s.dir)
	return errTarget == nil && errDir == nil && resolvedTarget == resolvedDir
}

// Enumerate implements the ports.AliasStore interface.
// Scripts without a command line are skipped with a warning. A missing
// aliases directory yields nothing.
func (s *Store) Enumerate(only ...string) iter.Seq2[alias.Alias, error] {
	filter := make(map[string]struct{}, len(only))
	for _, name := range only {
		filter[name] = struct{}{}
	}

	return func(yield func(alias.Alias, error) bool) {
		entries, err := os.ReadDir(s.dir)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				yield(alias.Alias{}, fmt.Errorf("failed to read aliases directory %s: %w", s.dir, err))
			}
			return
		}

		for _, entry := range entries {
			name := entry.Name()
			if len(filter) > 0 {
				if _, ok := filter[name]; !ok {
					continue
				}
			}
			path := filepath.Join(s.dir, name)
			if skipEntry(path, entry) {
				continue
			}

			a, err := s.read(name)
			if errors.Is(err, alias.ErrMalformedAlias) {
				s.logger.Warn().Str("alias", name).Str("script", path).Msg("Skipping alias script without a command line")
				continue
			}
			if !yield(a, err) {
				return
			}
		}
	}
}

func (s *Store) read(name string) (alias.Alias, error) {
	a := s.Lookup(name)
	file, err := os.Open(a.ScriptPath)
	if err != nil {
		return a, fmt.Errorf("failed to open alias script %s: %w", a.ScriptPath, err)
	}
	defer file.Close()

	line, err := readCommandLine(file)
	if err != nil {
		return a, fmt.Errorf("failed to parse alias script %s: %w", a.ScriptPath, err)
	}
	a.Resolved = s.normalizer.Normalize(line)
	return a, nil
}

// Show implements the ports.AliasStore interface.
// Aliases whose symlink is missing or dangling are linked after being printed.
func (s *Store) Show(w io.Writer, names ...string) error {
	for a, err := range s.Enumerate(names...) {
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s alias %s='%s'\n", s.host, a.Name, a.Resolved); err != nil {
			return fmt.Errorf("failed to write alias '%s': %w", a.Name, err)
		}
		if _, err := os.Stat(a.SymlinkPath); err == nil {
			continue
		}
		if err := s.link(a); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) link(a alias.Alias) error {
	if err := os.MkdirAll(s.binDir, aliasesDirMode); err != nil {
		return fmt.Errorf("failed to create bin directory %s: %w", s.binDir, err)
	}
	if info, err := os.Lstat(a.SymlinkPath); err == nil {
		if info.Mode()&fs.ModeSymlink == 0 {
			return fmt.Errorf("cannot link alias '%s': %s exists and is not a symlink: %w", a.Name, a.SymlinkPath, fs.ErrExist)
		}
		if err := os.Remove(a.SymlinkPath); err != nil {
			return fmt.Errorf("failed to replace symlink %s: %w", a.SymlinkPath, err)
		}
	}
	if err := os.Symlink(a.ScriptPath, a.SymlinkPath); err != nil {
		return fmt.Errorf("failed to link alias '%s': %w", a.Name, err)
	}
	s.logger.Debug().Str("alias", a.Name).Str("symlink", a.SymlinkPath).Msg("Alias linked")
	return nil
}

// ScriptPaths implements the ports.AliasStore interface.
func (s *Store) ScriptPaths() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read aliases directory %s: %w", s.dir, err)
	}
	var paths []string
	for _, entry := range entries {
		path := filepath.Join(s.dir, entry.Name())
		if !skipEntry(path, entry) {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)
	return paths, nil
}
