package github

import (
	"testing"

	apperr "github.com/matzehuels/gitwrapped/pkg/errors"
)

func TestNormalizeUsername(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"torvalds", "torvalds"},
		{"  torvalds  ", "torvalds"},
		{"@torvalds", "torvalds"},
		{"https://github.com/torvalds", "torvalds"},
		{"http://github.com/torvalds/", "torvalds"},
		{"github.com/torvalds/linux", "torvalds"},
		{"HTTPS://GitHub.com/Torvalds", "Torvalds"},
		{"https://www.github.com/sindresorhus?tab=repositories", "sindresorhus"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeUsername(tt.in); got != tt.want {
			t.Errorf("NormalizeUsername(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"torvalds", false},
		{"ab", false},
		{"a-b-c", false},
		{"a", true},
		{"", true},
		{"-leading", true},
		{"has space", true},
		{"under_score", true},
		{"abcdefghijklmnopqrstuvwxyz0123456789abcd", true}, // 40 chars
	}
	for _, tt := range tests {
		err := ValidateUsername(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateUsername(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
		if err != nil && !apperr.Is(err, apperr.ErrCodeInvalidUsername) {
			t.Errorf("ValidateUsername(%q) code = %q", tt.name, apperr.GetCode(err))
		}
	}
}

func TestParseUsername(t *testing.T) {
	got, err := ParseUsername("@facebook")
	if err != nil || got != "facebook" {
		t.Errorf("ParseUsername(@facebook) = %q, %v", got, err)
	}
	if _, err := ParseUsername("@x"); err == nil {
		t.Error("ParseUsername(@x) should fail the minimum length")
	}
}
