package deck

import (
	"time"

	"github.com/matzehuels/gitwrapped/pkg/integrations/github"
)

// InputGate decides when typed input becomes a lookup. A lookup fires once
// typing has paused for Idle and the normalized text has at least
// [github.MinUsernameLength] characters and differs from the last
// submitted name.
type InputGate struct {
	Idle time.Duration

	text      string
	changedAt time.Time
	submitted string
}

// NewInputGate returns a gate with the default typing idle.
func NewInputGate() *InputGate {
	return &InputGate{Idle: DefaultTypingIdle}
}

// Set records the current input text at now.
func (g *InputGate) Set(text string, now time.Time) {
	if text != g.text {
		g.text = text
		g.changedAt = now
	}
}

// Text returns the raw input.
func (g *InputGate) Text() string { return g.text }

// Due returns the login to look up at now, if any. A returned login is
// marked submitted and not returned again until the text changes.
func (g *InputGate) Due(now time.Time) (string, bool) {
	if g.changedAt.IsZero() || now.Sub(g.changedAt) < g.Idle {
		return "", false
	}
	return g.Submit()
}

// Submit bypasses the idle wait, as pressing enter does.
func (g *InputGate) Submit() (string, bool) {
	login := github.NormalizeUsername(g.text)
	if len(login) < github.MinUsernameLength || login == g.submitted {
		return "", false
	}
	g.submitted = login
	return login, true
}

// Reset clears the text and forgets the last submitted name.
func (g *InputGate) Reset() {
	g.text = ""
	g.changedAt = time.Time{}
	g.submitted = ""
}
