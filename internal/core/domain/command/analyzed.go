package command

/*
AnalyzedCommand is a history line that invokes the host CLI, split into
the host subcommand and its arguments.
*/
type AnalyzedCommand struct {
	Original   string
	Subcommand string
	Args       []string
	// Command is the line without the host word, quoting preserved.
	// It is what an alias for this line stores.
	Command   string
	IsComplex bool
}
