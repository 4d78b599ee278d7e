// Package host provides the run-loop's window of the outside world: pacing
// sleeps, input polling, and a quit signal. Everything else in this core
// (cartridge, bus, cpu) has no notion of wall-clock time or a display; the
// app package drives the CPU and asks a Host to pace it and report input.
package host

import "time"

// Host is the contract the run loop drives. A Host that has no window and
// never has buttons pressed (Headless) is just as valid as one backed by a
// real window.
type Host interface {
	// Sleep pauses for roughly d, yielding to whatever event pump the
	// backend needs serviced (a plain wall-clock sleep for Headless).
	Sleep(d time.Duration)

	// PollEvents services the backend's event queue and returns the
	// current held-button mask in joypad bit layout.
	PollEvents() uint8

	// QuitRequested reports whether the backend has asked to stop
	// (window closed, Ctrl-C observed by the backend, and so on).
	QuitRequested() bool

	// Close releases backend resources. Safe to call more than once.
	Close() error
}
