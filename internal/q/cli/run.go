package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

type Options struct {
	// Args is the argv excluding the program name (typically os.Args[1:]).
	Args []string

	// In/Out/Err override standard I/O. If nil, defaults are used.
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Context is passed to a command handler.
//
// Positional args are in Args. Flag values are typically read via variables bound
// at command construction time (e.g. fs.Bool(...)).
type Context struct {
	context.Context

	Command *Command
	Args    []string

	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// FlagChanged reports whether the named flag was set on the command line.
func (c *Context) FlagChanged(name string) bool {
	return c.Command.Flags().Changed(name)
}

// Run executes cmd as a CLI program and returns a process exit code.
//
// Flags may appear anywhere among the positional args; "--" ends flag parsing. -h/--help prints help to Out and returns 0. Usage errors print the
// message and help to Err and return 2. Other handler errors print their message to Err and return their ExitCode (or 1).
func Run(ctx context.Context, cmd *Command, opts Options) int {
	if cmd == nil {
		panic("cli: Run called with nil command")
	}
	if cmd.Name == "" {
		panic("cli: Run called with cmd.Name empty")
	}
	if cmd.Run == nil {
		panic("cli: Run called with nil cmd.Run")
	}

	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := opts.Err
	if errOut == nil {
		errOut = os.Stderr
	}

	args, parseErr := parseArgv(cmd, opts.Args, out)
	if parseErr != nil {
		if errors.Is(parseErr, errHelpPrinted) {
			return 0
		}
		printUsageError(cmd, parseErr, errOut)
		return 2
	}

	if cmd.Args != nil {
		if err := cmd.Args(args); err != nil {
			return exitForError(cmd, err, errOut, 2)
		}
	}

	c := &Context{
		Context: ctx,
		Command: cmd,
		Args:    args,
		In:      in,
		Out:     out,
		Err:     errOut,
	}
	if err := cmd.Run(c); err != nil {
		return exitForError(cmd, err, errOut, 1)
	}
	return 0
}

var errHelpPrinted = errors.New("help printed")

func parseArgv(cmd *Command, argv []string, out io.Writer) ([]string, error) {
	flags := cmd.Flags()
	var positional []string

	for i := 0; i < len(argv); i++ {
		token := argv[i]

		if token == "--" {
			positional = append(positional, argv[i+1:]...)
			break
		}

		if token == "-h" || token == "--help" {
			writeHelp(out, cmd)
			return nil, errHelpPrinted
		}

		if isFlagToken(token) {
			consumed, err := parseFlagToken(flags, token, argv, i)
			if err != nil {
				return nil, err
			}
			i += consumed
			continue
		}

		positional = append(positional, token)
	}
	return positional, nil
}

func isFlagToken(token string) bool {
	return strings.HasPrefix(token, "-") && token != "-" // "-" is a valid positional arg.
}

// parseFlagToken sets the flag named by argv[idx] and returns how many following tokens it consumed (0 or 1).
func parseFlagToken(flags *FlagSet, token string, argv []string, idx int) (int, error) {
	nextValue, hasNext := nextTokenValue(argv, idx)
	hasDashDash := hasNext && nextValue == "--"
	nextPtr := (*string)(nil)
	if hasNext {
		nextPtr = &nextValue
	}

	var (
		name      string
		shorthand rune
		valuePtr  *string
	)
	switch {
	case strings.HasPrefix(token, "--"):
		// Long flag: --name or --name=value
		n, v, ok := splitFlagValue(token[2:])
		name = n
		if ok {
			valuePtr = &v
		}
	case len(token) >= 3 && token[2] != '=':
		// Single-dash long flag: -name or -name=value
		n, v, ok := splitFlagValue(token[1:])
		name = n
		if ok {
			valuePtr = &v
		}
	default:
		// Short flag: -n or -n=value
		shorthand = rune(token[1])
		if len(token) >= 3 {
			v := token[3:]
			valuePtr = &v
		}
	}

	consumeNext, err := flags.parseAndSet(token, hasDashDash, name, shorthand, valuePtr, nextPtr)
	if err != nil {
		return 0, err
	}
	if consumeNext {
		return 1, nil
	}
	return 0, nil
}

func splitFlagValue(s string) (name, value string, ok bool) {
	if i := strings.IndexByte(s, '='); i >= 0 {
		return s[:i], s[i+1:], true
	}
	return s, "", false
}

func nextTokenValue(argv []string, idx int) (string, bool) {
	if idx+1 >= len(argv) {
		return "", false
	}
	return argv[idx+1], true
}

// exitForError maps err to an exit code, printing as needed. Errors without an ExitCoder get defaultCode (and usage, if defaultCode is 2).
func exitForError(cmd *Command, err error, errOut io.Writer, defaultCode int) int {
	code := defaultCode
	var ec ExitCoder
	if errors.As(err, &ec) {
		code = ec.ExitCode()
	}

	switch code {
	case 0:
		return 0
	case 2:
		printUsageError(cmd, err, errOut)
		return 2
	}
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(errOut, msg)
	}
	return code
}

func printUsageError(cmd *Command, err error, errOut io.Writer) {
	msg := usageErrorMessage(err)
	if msg != "" {
		fmt.Fprintln(errOut, msg)
		fmt.Fprintln(errOut)
	}
	writeHelp(errOut, cmd)
}

func usageErrorMessage(err error) string {
	var ue UsageError
	if errors.As(err, &ue) && ue.Message != "" {
		return ue.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
