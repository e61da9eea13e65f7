package github

import (
	"fmt"
	"regexp"
	"strings"

	apperr "github.com/matzehuels/gitwrapped/pkg/errors"
)

// MinUsernameLength is the shortest input accepted as a lookup.
// One-character queries are ignored while typing.
const MinUsernameLength = 2

// GitHub logins: 1-39 alphanumeric or hyphen, not starting with hyphen.
var validLogin = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]{0,38}$`)

var profilePrefixes = []string{
	"https://www.github.com/",
	"http://www.github.com/",
	"https://github.com/",
	"http://github.com/",
	"www.github.com/",
	"github.com/",
}

// NormalizeUsername turns user input into a bare login.
// It trims whitespace, a leading "@" and a github.com profile URL prefix,
// and drops anything after the first path segment.
func NormalizeUsername(raw string) string {
	s := strings.TrimSpace(raw)
	lower := strings.ToLower(s)
	for _, p := range profilePrefixes {
		if strings.HasPrefix(lower, p) {
			s = s[len(p):]
			break
		}
	}
	s = strings.TrimPrefix(s, "@")
	if i := strings.IndexAny(s, "/?#"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// ValidateUsername checks a normalized login before any request is made.
func ValidateUsername(name string) error {
	if len(name) < MinUsernameLength {
		return apperr.New(apperr.ErrCodeInvalidUsername,
			"username must be at least %d characters", MinUsernameLength)
	}
	if !validLogin.MatchString(name) {
		return apperr.New(apperr.ErrCodeInvalidUsername,
			"invalid username %q: use letters, digits or hyphens (max 39), not starting with a hyphen", name)
	}
	return nil
}

// ParseUsername normalizes and validates raw input in one step.
func ParseUsername(raw string) (string, error) {
	name := NormalizeUsername(raw)
	if err := ValidateUsername(name); err != nil {
		return "", err
	}
	return name, nil
}

// ProfileURL returns the public profile page for login.
func ProfileURL(login string) string {
	return fmt.Sprintf("https://github.com/%s", login)
}
