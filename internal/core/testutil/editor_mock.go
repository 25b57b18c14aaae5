package testutil

// MockEditor is a mock implementation of ports.Editor.
// Calls records the paths of every Edit call.
type MockEditor struct {
	EditFunc func(paths ...string) error
	Calls    [][]string
}

// Edit records the call and delegates to EditFunc.
func (m *MockEditor) Edit(paths ...string) error {
	m.Calls = append(m.Calls, paths)
	if m.EditFunc != nil {
		return m.EditFunc(paths...)
	}
	return nil
}
