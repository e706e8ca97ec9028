// Package editor implements the interactive line editor: the raw-mode
// read loop, the edit buffer, and the redraw discipline.
package editor

import (
	"fmt"
	"io"
	"strings"

	"gosh/history"
	"gosh/term"
)

// Sink receives each submitted line. Command-level failures are expected
// to be contained inside the sink; a non-nil return is a shutdown
// request and ends the session cleanly.
type Sink func(line string) error

// Options configure an Editor.
type Options struct {
	Prompt   string
	In       io.Reader
	Out      io.Writer
	History  *history.History
	Sink     Sink
	Terminal *term.Terminal // optional; raw mode is skipped when nil
}

// Editor owns the in-progress line and the terminal session around it.
// The cursor is always pinned at the end of the buffer, and after every
// key event the visible line equals prompt+buffer.
type Editor struct {
	prompt   string
	buffer   []byte
	out      io.Writer
	decoder  *term.Decoder
	history  *history.History
	sink     Sink
	terminal *term.Terminal
}

// New creates an Editor from opts.
func New(opts Options) *Editor {
	return &Editor{
		prompt:   opts.Prompt,
		out:      opts.Out,
		decoder:  term.NewDecoder(opts.In),
		history:  opts.History,
		sink:     opts.Sink,
		terminal: opts.Terminal,
	}
}

// Buffer returns the current in-progress line.
func (e *Editor) Buffer() string {
	return string(e.buffer)
}

// Run enters raw mode, processes keys until the input stream fails or a
// command requests shutdown, and restores the terminal on the way out.
func (e *Editor) Run() error {
	if e.terminal != nil {
		if err := e.terminal.EnterRawMode(); err != nil {
			return fmt.Errorf("entering raw mode: %w", err)
		}
		defer e.terminal.Restore()
	}

	fmt.Fprint(e.out, e.prompt)
	for {
		key, err := e.decoder.ReadKey()
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		if done := e.handleKey(key); done {
			return nil
		}
	}
}

// handleKey applies one key event and reports whether the session
// should end.
func (e *Editor) handleKey(key term.Key) bool {
	switch key {
	case term.KeyUp:
		e.recall(e.history.Prev())

	case term.KeyDown:
		e.recall(e.history.Next())

	case term.KeyTab:
		// Placeholder only, no completion. The marker is echoed but
		// never enters the buffer.
		fmt.Fprint(e.out, "tab")

	case term.KeyEnter, term.KeyReturn:
		return e.submit()

	case 67, 68:
		// Arrow right/left fold to these codes in the decoder. The
		// cursor can't move inside the line, so they are inert.

	case term.KeyDelete, term.KeyBackspace:
		e.backspace()

	default:
		e.buffer = append(e.buffer, byte(key))
		fmt.Fprintf(e.out, "%c", byte(key))
	}
	return false
}

// recall replaces the buffer with a line pulled from history. When both
// the recalled line and the buffer are empty there is nothing to show.
func (e *Editor) recall(line string) {
	if line == "" && len(e.buffer) == 0 {
		return
	}
	e.eraseLine(len(e.prompt) + len(e.buffer))
	e.buffer = append(e.buffer[:0], line...)
	fmt.Fprintf(e.out, "%s%s", e.prompt, e.buffer)
}

// submit finishes the current line and reports whether the sink asked to
// shut down. An empty buffer just gets a fresh prompt.
func (e *Editor) submit() bool {
	fmt.Fprint(e.out, "\n")
	if len(e.buffer) > 0 {
		line := string(e.buffer)
		e.history.Push(line)
		e.buffer = e.buffer[:0]
		if e.sink != nil {
			if err := e.sink(line); err != nil {
				return true
			}
		}
	}
	fmt.Fprint(e.out, e.prompt)
	return false
}

// backspace drops the last character and repaints the line.
func (e *Editor) backspace() {
	if len(e.buffer) == 0 {
		return
	}
	e.eraseLine(len(e.prompt) + len(e.buffer))
	e.buffer = e.buffer[:len(e.buffer)-1]
	fmt.Fprintf(e.out, "%s%s", e.prompt, e.buffer)
}

// eraseLine returns to column 0 and overwrites width cells with spaces,
// so a shorter replacement can't leave stale characters behind.
func (e *Editor) eraseLine(width int) {
	fmt.Fprintf(e.out, "\r%s\r", strings.Repeat(" ", width))
}
