package testutil

import "strings"

// MockAliasNameValidator is a mock implementation of ports.AliasNameValidator.
type MockAliasNameValidator struct {
	SanitizeFunc func(name string) string
	ValidateFunc func(name string) error
}

// Sanitize implements the ports.AliasNameValidator interface.
func (m *MockAliasNameValidator) Sanitize(name string) string {
	if m.SanitizeFunc != nil {
		return m.SanitizeFunc(name)
	}
	return strings.TrimSpace(name)
}

// Validate implements the ports.AliasNameValidator interface.
func (m *MockAliasNameValidator) Validate(name string) error {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(name)
	}
	return nil // Default to valid if not implemented
}

// MockReservedNameProvider is a mock implementation of ports.ReservedNameProvider.
type MockReservedNameProvider struct {
	ReservedNamesFunc func() (map[string]struct{}, error)
}

func (m *MockReservedNameProvider) ReservedNames() (map[string]struct{}, error) {
	if m.ReservedNamesFunc != nil {
		return m.ReservedNamesFunc()
	}
	return nil, nil // Default behavior
}
