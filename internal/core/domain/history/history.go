/*
Package history defines the entities derived from the user's shell history.
*/
package history

/*
CommandFrequency is one distinct history line and how often it was run.
*/
type CommandFrequency struct {
	Command string
	Count   int
}

/*
Suggestion is a proposed alias for a frequently run host invocation.
Command is in resolved form ("install --cask"), ready to be added as is.
Count is how many history entries it would have replaced.
*/
type Suggestion struct {
	Name    string
	Command string
	Count   int
}
