package host

import (
	"testing"
	"time"
)

var (
	_ Host = (*HeadlessHost)(nil)
	_ Host = (*EbitenHost)(nil)
)

func TestHeadlessHostStartsNotQuit(t *testing.T) {
	h := NewHeadlessHost()
	if h.QuitRequested() {
		t.Fatal("expected a fresh HeadlessHost to not be quit")
	}
	if h.PollEvents() != 0 {
		t.Errorf("PollEvents() = %#x, want 0", h.PollEvents())
	}
}

func TestHeadlessHostRequestQuit(t *testing.T) {
	h := NewHeadlessHost()
	h.RequestQuit()
	if !h.QuitRequested() {
		t.Fatal("expected QuitRequested true after RequestQuit")
	}
}

func TestHeadlessHostClose(t *testing.T) {
	h := NewHeadlessHost()
	if err := h.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !h.QuitRequested() {
		t.Fatal("expected QuitRequested true after Close")
	}
}

func TestHeadlessHostSleepReturns(t *testing.T) {
	h := NewHeadlessHost()
	start := time.Now()
	h.Sleep(time.Millisecond)
	if time.Since(start) <= 0 {
		t.Fatal("Sleep returned before any time elapsed")
	}
}
