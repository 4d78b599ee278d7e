package host

import "time"

// HeadlessHost is a Host with no window and no input: Sleep is a real
// wall-clock sleep (useful for pacing a ROM test harness to real time),
// PollEvents always reports nothing pressed, and quit is driven only by
// an explicit call to RequestQuit or Close.
type HeadlessHost struct {
	quit bool
}

// NewHeadlessHost returns a HeadlessHost ready to use.
func NewHeadlessHost() *HeadlessHost {
	return &HeadlessHost{}
}

// Sleep pauses for d.
func (h *HeadlessHost) Sleep(d time.Duration) {
	time.Sleep(d)
}

// PollEvents always returns zero: no input source exists.
func (h *HeadlessHost) PollEvents() uint8 {
	return 0
}

// RequestQuit marks the host as wanting to stop, for callers (typically
// test harnesses) that need to end a run loop from outside it.
func (h *HeadlessHost) RequestQuit() {
	h.quit = true
}

// QuitRequested reports whether RequestQuit or Close has been called.
func (h *HeadlessHost) QuitRequested() bool {
	return h.quit
}

// Close marks the host as quit. Always returns nil: there are no
// resources to release.
func (h *HeadlessHost) Close() error {
	h.quit = true
	return nil
}
