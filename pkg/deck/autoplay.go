package deck

import "time"

// Autoplay defaults.
const (
	DefaultAutoplayInterval = 5 * time.Second
	DefaultTypingIdle       = time.Second
)

// Autoplay decides when the deck may advance on its own. Focusing the
// username input pauses it; it resumes TypingIdle after the last keystroke,
// even if the input keeps focus.
type Autoplay struct {
	Enabled    bool
	Interval   time.Duration
	TypingIdle time.Duration

	focused       bool
	lastKeystroke time.Time
}

// NewAutoplay returns an autoplay with the default interval and idle time.
func NewAutoplay(enabled bool) *Autoplay {
	return &Autoplay{
		Enabled:    enabled,
		Interval:   DefaultAutoplayInterval,
		TypingIdle: DefaultTypingIdle,
	}
}

// Focus marks the input as focused. Autoplay stays paused until the first
// keystroke goes idle or the input is blurred.
func (a *Autoplay) Focus() {
	a.focused = true
	a.lastKeystroke = time.Time{}
}

// Blur marks the input as unfocused.
func (a *Autoplay) Blur() { a.focused = false }

// Focused reports whether the input has focus.
func (a *Autoplay) Focused() bool { return a.focused }

// Keystroke records typing at now.
func (a *Autoplay) Keystroke(now time.Time) { a.lastKeystroke = now }

// Toggle flips Enabled and returns the new state.
func (a *Autoplay) Toggle() bool {
	a.Enabled = !a.Enabled
	return a.Enabled
}

// Ready reports whether an autoplay tick at now may advance the deck.
func (a *Autoplay) Ready(now time.Time) bool {
	if !a.Enabled {
		return false
	}
	if a.lastKeystroke.IsZero() {
		return !a.focused
	}
	return now.Sub(a.lastKeystroke) >= a.TypingIdle
}
