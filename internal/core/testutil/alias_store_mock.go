package testutil

import (
	"errors"
	"io"
	"iter"
	"path/filepath"

	"github.com/AntonioJCosta/brewalias/internal/core/domain/alias"
)

// MockAliasStore is a mock implementation of ports.AliasStore for testing.
type MockAliasStore struct {
	InitFunc          func() error
	AddFunc           func(name, command string) (alias.Alias, error)
	WriteFunc         func(name, command string) (alias.Alias, error)
	WriteTemplateFunc func(name string) (alias.Alias, error)
	RemoveFunc        func(name string) error
	EnumerateFunc     func(only ...string) iter.Seq2[alias.Alias, error]
	ShowFunc          func(w io.Writer, names ...string) error
	ExistsFunc        func(name string) bool
	ScriptPathsFunc   func() ([]string, error)
}

func (m *MockAliasStore) Init() error {
	if m.InitFunc != nil {
		return m.InitFunc()
	}
	return nil
}

func (m *MockAliasStore) Add(name, command string) (alias.Alias, error) {
	if m.AddFunc != nil {
		return m.AddFunc(name, command)
	}
	return alias.Alias{}, errors.New("MockAliasStore: AddFunc not implemented")
}

func (m *MockAliasStore) Write(name, command string) (alias.Alias, error) {
	if m.WriteFunc != nil {
		return m.WriteFunc(name, command)
	}
	return alias.Alias{}, errors.New("MockAliasStore: WriteFunc not implemented")
}

func (m *MockAliasStore) WriteTemplate(name string) (alias.Alias, error) {
	if m.WriteTemplateFunc != nil {
		return m.WriteTemplateFunc(name)
	}
	return alias.Alias{}, errors.New("MockAliasStore: WriteTemplateFunc not implemented")
}

func (m *MockAliasStore) Remove(name string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(name)
	}
	return errors.New("MockAliasStore: RemoveFunc not implemented")
}

func (m *MockAliasStore) Enumerate(only ...string) iter.Seq2[alias.Alias, error] {
	if m.EnumerateFunc != nil {
		return m.EnumerateFunc(only...)
	}
	return func(yield func(alias.Alias, error) bool) {}
}

func (m *MockAliasStore) Show(w io.Writer, names ...string) error {
	if m.ShowFunc != nil {
		return m.ShowFunc(w, names...)
	}
	return errors.New("MockAliasStore: ShowFunc not implemented")
}

// Lookup mirrors the real layout under /aliases and /bin.
func (m *MockAliasStore) Lookup(name string) alias.Alias {
	return alias.Alias{
		Name:        name,
		ScriptPath:  filepath.Join("/aliases", name),
		SymlinkPath: filepath.Join("/bin", "brew-"+name),
	}
}

func (m *MockAliasStore) Exists(name string) bool {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(name)
	}
	return false
}

func (m *MockAliasStore) ScriptPaths() ([]string, error) {
	if m.ScriptPathsFunc != nil {
		return m.ScriptPathsFunc()
	}
	return nil, errors.New("MockAliasStore: ScriptPathsFunc not implemented")
}

// AliasSeq builds an Enumerate result from fixed aliases.
func AliasSeq(aliases ...alias.Alias) iter.Seq2[alias.Alias, error] {
	return func(yield func(alias.Alias, error) bool) {
		for _, a := range aliases {
			if !yield(a, nil) {
				return
			}
		}
	}
}
