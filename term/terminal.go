// Package term provides raw-mode terminal control and logical key
// decoding for the interactive editor loop.
package term

import (
	"os"

	"golang.org/x/sys/unix"
)

// Terminal handles the raw-mode lifecycle for an interactive session.
// The mode captured at construction is the one Restore puts back.
type Terminal struct {
	fd       int
	original unix.Termios
	restored bool
}

// NewTerminal creates a terminal controller for the given file,
// snapshotting its current mode.
func NewTerminal(f *os.File) (*Terminal, error) {
	fd := int(f.Fd())
	termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, err
	}
	return &Terminal{fd: fd, original: *termios, restored: true}, nil
}

// EnterRawMode puts the terminal into cbreak mode: no line buffering, no
// local echo, one byte delivered at a time. Signal generation and output
// processing stay enabled, so Ctrl-C still interrupts and '\n' renders
// normally.
func (t *Terminal) EnterRawMode() error {
	raw := t.original
	raw.Lflag &^= unix.ECHO | unix.ICANON
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(t.fd, ioctlSetTermios, &raw); err != nil {
		return err
	}
	t.restored = false
	return nil
}

// Restore reapplies the saved terminal mode. Safe to call more than once
// and from a signal handler.
func (t *Terminal) Restore() error {
	if t.restored {
		return nil
	}
	if err := unix.IoctlSetTermios(t.fd, ioctlSetTermios, &t.original); err != nil {
		return err
	}
	t.restored = true
	return nil
}
