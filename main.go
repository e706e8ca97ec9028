// Gosh is an interactive line-reading shell front end: raw-mode key
// handling, an editable prompt line, and history recall.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	xterm "golang.org/x/term"

	"gosh/command"
	"gosh/config"
	"gosh/editor"
	"gosh/history"
	"gosh/term"
)

func main() {
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--init-config":
			fmt.Print(config.DefaultTOML())
			return
		case "-h", "--help":
			printUsage()
			return
		}
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Gosh - Interactive Line Editor Shell

Usage: gosh [options]

Options:
  --init-config     Output default config (redirect to ~/.config/gosh/config.toml)
  -h, --help        Show this help

Interactive keys:
  Up/Down           Recall older/newer submitted lines
  Backspace         Delete the last character
  Enter             Submit the line to a registered command
  exit or quit      Leave the shell

Configuration:
  Config file: ~/.config/gosh/config.toml
  Generate with: gosh --init-config > ~/.config/gosh/config.toml`)
}

func run() error {
	// Load configuration (defaults + user overrides)
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w\n\n%s", err, config.FormatError(err))
	}

	// Key-at-a-time input needs a real terminal on stdin.
	if !xterm.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("stdin is not a terminal")
	}

	hist := history.New(cfg.History.Circular, cfg.History.Limit)

	// Seed history from the previous session
	var store *history.Store
	if cfg.History.Persist {
		store, err = history.LoadStore()
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: loading history: %v\n", err)
			store = nil
		} else {
			hist.SetEntries(store.Entries)
		}
	}

	registry := command.NewRegistry(os.Stdout)
	command.RegisterBuiltins(registry, hist)

	terminal, err := term.NewTerminal(os.Stdin)
	if err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}

	// Restore the terminal before dying on Ctrl-C or SIGTERM.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		terminal.Restore()
		fmt.Println()
		os.Exit(130)
	}()

	ed := editor.New(editor.Options{
		Prompt:   cfg.Prompt.Text,
		In:       os.Stdin,
		Out:      os.Stdout,
		History:  hist,
		Sink:     registry.Dispatch,
		Terminal: terminal,
	})

	runErr := ed.Run()

	if store != nil {
		if err := store.Save(hist.Entries()); err != nil {
			fmt.Fprintf(os.Stderr, "warning: saving history: %v\n", err)
		}
	}
	return runErr
}
