package ports

// ReservedNameProvider defines the interface for sourcing the names of
// built-in host commands that aliases must not shadow.
type ReservedNameProvider interface {
	// ReservedNames returns the set of reserved names.
	ReservedNames() (map[string]struct{}, error)
}
