package deck

import (
	"testing"
	"time"
)

func TestAutoplay_Ready(t *testing.T) {
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	a := NewAutoplay(false)
	if a.Ready(t0) {
		t.Error("disabled autoplay should never be ready")
	}

	a.Toggle()
	if !a.Ready(t0) {
		t.Error("enabled autoplay with no typing should be ready")
	}

	a.Focus()
	if a.Ready(t0) {
		t.Error("autoplay must pause while the input is focused")
	}
	a.Blur()

	a.Keystroke(t0)
	if a.Ready(t0.Add(500 * time.Millisecond)) {
		t.Error("autoplay must wait for the typing idle")
	}
	if !a.Ready(t0.Add(DefaultTypingIdle)) {
		t.Error("autoplay should resume after the typing idle")
	}
}

func TestAutoplay_ResumesWhileFocused(t *testing.T) {
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	a := NewAutoplay(true)
	a.Focus()
	a.Keystroke(t0)
	if a.Ready(t0.Add(500 * time.Millisecond)) {
		t.Error("autoplay must wait for the typing idle")
	}
	if !a.Ready(t0.Add(1500 * time.Millisecond)) {
		t.Error("autoplay should resume once typing is idle, even with focus")
	}

	// Refocusing without typing pauses again, regardless of old keystrokes.
	a.Blur()
	a.Focus()
	if a.Ready(t0.Add(time.Minute)) {
		t.Error("refocused input without typing should pause autoplay")
	}
}

func TestAutoplay_Defaults(t *testing.T) {
	a := NewAutoplay(true)
	if a.Interval != 5*time.Second || a.TypingIdle != time.Second {
		t.Errorf("defaults = %v / %v", a.Interval, a.TypingIdle)
	}
	if a.Toggle() {
		t.Error("Toggle should report the new state")
	}
}
