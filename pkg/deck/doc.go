// Package deck holds the presentation state of a wrapped slide deck,
// independent of how it is drawn.
//
//   - [Navigator]: the cyclic slide state machine with its loading guard
//   - [Autoplay]: the timer policy, paused while the user types
//   - [InputGate]: debounced, length-checked username input
//
// None of these types are safe for concurrent use; they are owned by the
// single update loop of the terminal UI.
package deck
