package ports

// Editor defines an interface for opening files in the user's text editor.
type Editor interface {
	Edit(paths ...string) error
}
