package command

import (
	"fmt"
	"strings"
)

// HistorySource exposes the stored history log to the history builtin.
type HistorySource interface {
	Entries() []string
}

// RegisterBuiltins installs the standard commands on r.
func RegisterBuiltins(r *Registry, hist HistorySource) {
	r.Register("help", "Show available commands.", func(args []string) error {
		for _, name := range r.names {
			fmt.Fprintf(r.out, "  %-10s %s\n", name, r.help[name])
		}
		return nil
	})

	r.Register("history", "Show submitted lines, oldest first.", func(args []string) error {
		for i, entry := range hist.Entries() {
			fmt.Fprintf(r.out, "%4d  %s\n", i+1, entry)
		}
		return nil
	})

	r.Register("echo", "Print arguments.", func(args []string) error {
		fmt.Fprintln(r.out, strings.Join(args, " "))
		return nil
	})

	exit := func(args []string) error { return ErrExit }
	r.Register("exit", "Leave the shell.", exit)
	r.Register("quit", "Leave the shell.", exit)
}
