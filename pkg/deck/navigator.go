package deck

import "fmt"

// DefaultSwipeThreshold is the horizontal distance a drag must exceed to
// count as a swipe.
const DefaultSwipeThreshold = 50

// Navigator is the slide state machine. It cycles through n panels with
// wrap-around and has no terminal state.
//
// Every transition is ignored while Loading reports true or when the
// target equals the current index. Transition methods report whether the
// index changed, so callers only redraw on real moves.
type Navigator struct {
	index     int
	count     int
	threshold int

	// Loading guards transitions while a lookup is in flight.
	Loading func() bool
}

// NewNavigator creates a navigator over count panels starting at 0.
// A count below one is treated as one.
func NewNavigator(count int) *Navigator {
	return &Navigator{count: max(count, 1), threshold: DefaultSwipeThreshold}
}

// SetSwipeThreshold overrides [DefaultSwipeThreshold].
func (n *Navigator) SetSwipeThreshold(px int) {
	if px > 0 {
		n.threshold = px
	}
}

// Index returns the current panel index.
func (n *Navigator) Index() int { return n.index }

// Count returns the number of panels.
func (n *Navigator) Count() int { return n.count }

// Next moves to (i+1) mod N.
func (n *Navigator) Next() bool {
	return n.move((n.index + 1) % n.count)
}

// Prev moves to (i-1+N) mod N.
func (n *Navigator) Prev() bool {
	return n.move((n.index - 1 + n.count) % n.count)
}

// GoTo moves to k when 0 <= k < N.
func (n *Navigator) GoTo(k int) bool {
	if k < 0 || k >= n.count {
		return false
	}
	return n.move(k)
}

// Swipe maps a horizontal drag of dx pixels to a transition: dragging right
// goes back, dragging left goes forward. Drags within the threshold do
// nothing.
func (n *Navigator) Swipe(dx int) bool {
	switch {
	case dx > n.threshold:
		return n.Prev()
	case dx < -n.threshold:
		return n.Next()
	default:
		return false
	}
}

func (n *Navigator) move(target int) bool {
	if n.Loading != nil && n.Loading() {
		return false
	}
	if target == n.index {
		return false
	}
	n.index = target
	return true
}

// Progress returns "01/08" style text and the completed ratio in (0, 1].
func (n *Navigator) Progress() (string, float64) {
	return fmt.Sprintf("%02d/%02d", n.index+1, n.count), float64(n.index+1) / float64(n.count)
}
