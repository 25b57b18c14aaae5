package ports

/*
AliasNameValidator defines the contract for checking names before an alias
is created. This is a driven port, representing a domain capability.
*/
type AliasNameValidator interface {
	// Sanitize normalizes a user-supplied name into the name used on disk.
	Sanitize(name string) string

	// Validate returns nil if name may be used for a new alias.
	Validate(name string) error
}
