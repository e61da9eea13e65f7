package cache

import (
	"strings"
)

// Keyer builds cache keys for every kind of cached artifact.
type Keyer interface {
	// WrappedKey returns the key for a user's wrapped snapshot.
	WrappedKey(login string) string

	// TrendingKey returns the key for the trending list created after since (YYYY-MM-DD).
	TrendingKey(since string) string
}

// DefaultKeyer produces plain, unscoped keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default key scheme.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// WrappedKey returns "wrapped:<lowercased login>".
func (DefaultKeyer) WrappedKey(login string) string {
	return "wrapped:" + NormalizeLogin(login)
}

// TrendingKey returns "trending:<since>".
func (DefaultKeyer) TrendingKey(since string) string {
	return hashKey("trending", since)
}

// NormalizeLogin lowercases and trims a GitHub login for use in keys.
func NormalizeLogin(login string) string {
	return strings.ToLower(strings.TrimSpace(login))
}
