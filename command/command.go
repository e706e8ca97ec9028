// Package command implements the dispatch sink: a name-to-handler table
// with error containment at the dispatch boundary.
package command

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrExit is returned by a handler to request a clean shutdown of the
// session.
var ErrExit = errors.New("exit requested")

// Func is a command handler. A returned error is reported to the user
// without ending the session.
type Func func(args []string) error

// Registry maps command names to handlers.
type Registry struct {
	commands map[string]Func
	help     map[string]string
	names    []string // registration order, for help output
	out      io.Writer
}

// NewRegistry creates an empty Registry reporting to out.
func NewRegistry(out io.Writer) *Registry {
	return &Registry{
		commands: make(map[string]Func),
		help:     make(map[string]string),
		out:      out,
	}
}

// Register adds a command under name with a one-line description.
// Re-registering a name replaces its handler.
func (r *Registry) Register(name, desc string, fn Func) {
	if _, exists := r.commands[name]; !exists {
		r.names = append(r.names, name)
	}
	r.commands[name] = fn
	r.help[name] = desc
}

// Dispatch splits line on whitespace into a command name and arguments
// and runs the matching handler. Unknown names and handler failures are
// reported to out and absorbed; only ErrExit escapes, to signal
// shutdown. An empty line is a no-op.
func (r *Registry) Dispatch(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	name, args := fields[0], fields[1:]

	fn, ok := r.commands[name]
	if !ok {
		fmt.Fprintf(r.out, "%s: command not found\n", name)
		return nil
	}

	err := r.invoke(fn, args)
	if errors.Is(err, ErrExit) {
		return ErrExit
	}
	if err != nil {
		fmt.Fprintf(r.out, "%s: %v\n", name, err)
	}
	return nil
}

// invoke runs fn, converting a panic into an error so a broken handler
// can't take the session down.
func (r *Registry) invoke(fn Func, args []string) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("panic: %v", v)
		}
	}()
	return fn(args)
}
