package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// The CLI and server scope keys by a fingerprint of the configured GitHub
// token, so snapshots fetched with different credentials never mix.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "token:"+Hash([]byte(token))[:12]+":")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// WrappedKey generates a prefixed wrapped snapshot key.
func (k *ScopedKeyer) WrappedKey(login string) string {
	return k.prefix + k.inner.WrappedKey(login)
}

// TrendingKey generates a prefixed trending list key.
func (k *ScopedKeyer) TrendingKey(since string) string {
	return k.prefix + k.inner.TrendingKey(since)
}

// KeyerForToken returns the default keyer, scoped by a token fingerprint
// when token is non-empty.
func KeyerForToken(token string) Keyer {
	if token == "" {
		return NewDefaultKeyer()
	}
	return NewScopedKeyer(NewDefaultKeyer(), "token:"+Hash([]byte(token))[:12]+":")
}
