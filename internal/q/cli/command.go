// Package cli runs a single command as a CLI program: typed flags interspersed with positional args, generated help, and errors mapped to exit codes
// (0 success, 1 failure, 2 usage).
package cli

// RunFunc is a command handler.
type RunFunc func(c *Context) error

// ArgsFunc validates positional args. It should return a UsageError (or any
// ExitCoder with code 2) for user-facing usage mistakes.
type ArgsFunc func(args []string) error

// Command defines a CLI program.
type Command struct {
	// Name is the program name shown in help and usage.
	Name string

	Short   string
	Long    string
	Example string

	// Usage is the positional-arg synopsis shown after the flags in the usage line (e.g. "[file1] [file2]"). If empty, "[args]" is shown.
	Usage string

	Args ArgsFunc // optional
	Run  RunFunc  // required

	flags *FlagSet
}

// Flags returns c's flags.
func (c *Command) Flags() *FlagSet {
	if c.flags == nil {
		c.flags = newFlagSet()
	}
	return c.flags
}
