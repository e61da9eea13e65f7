package cli

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/gitwrapped/pkg/deck"
	apperr "github.com/matzehuels/gitwrapped/pkg/errors"
	"github.com/matzehuels/gitwrapped/pkg/wrapped"
)

type fakeGenerator map[string]*wrapped.ViewModel

func (f fakeGenerator) Generate(_ context.Context, username string, _ bool) (*wrapped.ViewModel, bool, error) {
	vm, ok := f[strings.ToLower(username)]
	if !ok {
		return nil, false, apperr.New(apperr.ErrCodeUserNotFound, "user %q not found", username)
	}
	return vm, false, nil
}

func testVM(login string) *wrapped.ViewModel {
	return &wrapped.ViewModel{
		Profile: wrapped.Profile{Login: login},
		TopRepos: []wrapped.RepositorySummary{
			{Name: "first", Stars: 9, URL: "https://github.com/" + login + "/first"},
			{Name: "second", Stars: 3, URL: "https://github.com/" + login + "/second"},
		},
		Stats:       wrapped.StatsSummary{Score: 42},
		GeneratedAt: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
	}
}

type deckHarness struct {
	m      *deckModel
	opened []string
	copied []string
}

func newDeckHarness(t *testing.T) *deckHarness {
	t.Helper()
	gen := fakeGenerator{"octocat": testVM("octocat"), "torvalds": testVM("torvalds")}
	h := &deckHarness{m: newDeckModel(context.Background(), gen, false)}
	h.m.openURL = func(u string) error { h.opened = append(h.opened, u); return nil }
	h.m.copyText = func(s string) error { h.copied = append(h.copied, s); return nil }
	return h
}

// lookupResult runs the fetch half of a lookup command.
func lookupResult(t *testing.T, cmd tea.Cmd) lookupMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a lookup command")
	}
	switch msg := cmd().(type) {
	case lookupMsg:
		return msg
	case tea.BatchMsg:
		for _, c := range msg {
			if c == nil {
				continue
			}
			if lm, ok := c().(lookupMsg); ok {
				return lm
			}
		}
	}
	t.Fatal("no lookupMsg in command")
	return lookupMsg{}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func (h *deckHarness) load(t *testing.T, login string) {
	t.Helper()
	h.m.Update(lookupResult(t, h.m.lookup(login, false)))
}

func TestDeckLookupSuccess(t *testing.T) {
	h := newDeckHarness(t)
	h.load(t, "octocat")

	if h.m.vm == nil || h.m.vm.Profile.Login != "octocat" {
		t.Fatalf("vm = %+v", h.m.vm)
	}
	if h.m.inflight.Loading() {
		t.Error("still loading after result")
	}
	if got, want := h.m.nav.Index(), deck.IndexOf(deck.PanelProfile); got != want {
		t.Errorf("index = %d, want %d", got, want)
	}
}

func TestDeckLookupNotFoundKeepsState(t *testing.T) {
	h := newDeckHarness(t)
	h.load(t, "octocat")
	h.m.nav.GoTo(3)

	h.load(t, "ghost")

	if h.m.nav.Index() != 3 {
		t.Errorf("index = %d, want 3", h.m.nav.Index())
	}
	if h.m.inflight.Loading() {
		t.Error("loading not cleared after failure")
	}
	if h.m.vm.Profile.Login != "octocat" {
		t.Errorf("previous snapshot replaced by %q", h.m.vm.Profile.Login)
	}
	want := "User ghost not found. Try: torvalds, sindresorhus, facebook"
	if h.m.toast != want || !h.m.toastError {
		t.Errorf("toast = %q, want %q", h.m.toast, want)
	}
}

func TestDeckStaleResultDiscarded(t *testing.T) {
	h := newDeckHarness(t)
	first := lookupResult(t, h.m.lookup("octocat", false))
	second := lookupResult(t, h.m.lookup("torvalds", false))

	h.m.Update(first)
	if h.m.vm != nil {
		t.Fatal("stale result was applied")
	}
	if !h.m.inflight.Loading() {
		t.Fatal("stale result cleared loading")
	}

	h.m.Update(second)
	if h.m.vm == nil || h.m.vm.Profile.Login != "torvalds" {
		t.Errorf("vm = %+v, want torvalds", h.m.vm)
	}
}

func TestDeckNavigationBlockedWhileLoading(t *testing.T) {
	h := newDeckHarness(t)
	h.load(t, "octocat")
	start := h.m.nav.Index()

	h.m.lookup("torvalds", false)
	h.m.Update(key("right"))
	h.m.Update(key("3"))
	if h.m.nav.Index() != start {
		t.Errorf("index moved to %d while loading", h.m.nav.Index())
	}
}

func TestDeckNavigationKeys(t *testing.T) {
	h := newDeckHarness(t)
	h.load(t, "octocat")

	h.m.Update(key("right"))
	if h.m.nav.Index() != 2 {
		t.Errorf("after right: %d, want 2", h.m.nav.Index())
	}
	h.m.Update(key("left"))
	h.m.Update(key("left"))
	if h.m.nav.Index() != 0 {
		t.Errorf("after left twice: %d, want 0", h.m.nav.Index())
	}
	h.m.Update(key("left"))
	if h.m.nav.Index() != len(deck.Panels)-1 {
		t.Errorf("left from 0 should wrap, got %d", h.m.nav.Index())
	}
	h.m.Update(key("5"))
	if h.m.nav.Index() != 4 {
		t.Errorf("after 5: %d, want 4", h.m.nav.Index())
	}
	h.m.Update(key("9"))
	if h.m.nav.Index() != 4 {
		t.Errorf("out-of-range jump moved to %d", h.m.nav.Index())
	}
}

func TestDeckShareActions(t *testing.T) {
	h := newDeckHarness(t)
	h.load(t, "octocat")

	h.m.Update(key("c"))
	if len(h.copied) != 1 || h.copied[0] != "GitHub Wrapped 2025: 42/100! #GitHubWrapped" {
		t.Errorf("copied = %q", h.copied)
	}
	if h.m.toast != "Copied to clipboard!" {
		t.Errorf("toast = %q", h.m.toast)
	}

	h.m.Update(key("t"))
	h.m.Update(key("o"))
	h.m.Update(key("tab"))
	h.m.Update(key("o"))

	want := []string{
		wrapped.TweetURL(h.m.vm),
		"https://github.com/octocat/first",
		"https://github.com/octocat/second",
	}
	if strings.Join(h.opened, " ") != strings.Join(want, " ") {
		t.Errorf("opened = %q, want %q", h.opened, want)
	}
}

func TestDeckShareWithoutSnapshot(t *testing.T) {
	h := newDeckHarness(t)
	h.m.Update(key("c"))
	h.m.Update(key("t"))
	h.m.Update(key("o"))
	if len(h.copied) != 0 || len(h.opened) != 0 {
		t.Errorf("actions ran without a snapshot: copied=%q opened=%q", h.copied, h.opened)
	}
}

func TestDeckInput(t *testing.T) {
	h := newDeckHarness(t)
	h.m.Init()
	if !h.m.auto.Focused() {
		t.Fatal("input should start focused without a username")
	}

	h.m.Update(key("a"))
	if _, cmd := h.m.Update(key("enter")); cmd != nil {
		t.Error("one-character name should not start a lookup")
	}

	h.m.Update(key("/"))
	h.m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	for _, r := range "@Octocat" {
		h.m.Update(key(string(r)))
	}
	_, cmd := h.m.Update(key("enter"))
	msg := lookupResult(t, cmd)
	if msg.login != "Octocat" {
		t.Errorf("login = %q, want Octocat", msg.login)
	}
	if h.m.auto.Focused() {
		t.Error("enter should blur the input")
	}
}

func TestDeckInputDebounce(t *testing.T) {
	h := newDeckHarness(t)
	now := time.Date(2025, 12, 1, 12, 0, 0, 0, time.UTC)
	h.m.now = func() time.Time { return now }
	h.m.auto.Focus()

	for _, r := range "torvalds" {
		h.m.Update(key(string(r)))
	}
	if _, cmd := h.m.Update(gateCheckMsg(now.Add(500 * time.Millisecond))); cmd != nil {
		t.Error("lookup fired before typing went idle")
	}
	_, cmd := h.m.Update(gateCheckMsg(now.Add(time.Second)))
	if msg := lookupResult(t, cmd); msg.login != "torvalds" {
		t.Errorf("login = %q", msg.login)
	}
}

func TestDeckIdleLookupReturnsToDeck(t *testing.T) {
	h := newDeckHarness(t)
	now := time.Date(2025, 12, 1, 12, 0, 0, 0, time.UTC)
	h.m.now = func() time.Time { return now }
	h.m.Update(key("a"))
	h.m.auto.Focus()

	for _, r := range "torvalds" {
		h.m.Update(key(string(r)))
	}
	_, cmd := h.m.Update(gateCheckMsg(now.Add(time.Second)))
	h.m.Update(lookupResult(t, cmd))

	profile := deck.IndexOf(deck.PanelProfile)
	if h.m.nav.Index() != profile {
		t.Fatalf("index = %d, want %d", h.m.nav.Index(), profile)
	}
	if h.m.auto.Focused() {
		t.Error("input still focused after a successful lookup")
	}

	h.m.Update(key("right"))
	if h.m.nav.Index() != profile+1 {
		t.Errorf("right after lookup: index = %d, want %d", h.m.nav.Index(), profile+1)
	}

	h.m.Update(autoplayTickMsg(now.Add(5 * time.Second)))
	if h.m.nav.Index() != profile+2 {
		t.Errorf("autoplay after lookup: index = %d, want %d", h.m.nav.Index(), profile+2)
	}
}

func TestDeckArrowsNavigateWhileTyping(t *testing.T) {
	h := newDeckHarness(t)
	h.load(t, "octocat")
	start := h.m.nav.Index()

	h.m.Update(key("/"))
	h.m.Update(key("t"))
	h.m.Update(key("right"))
	if h.m.nav.Index() != start+1 {
		t.Errorf("right while typing: index = %d, want %d", h.m.nav.Index(), start+1)
	}
	h.m.Update(key("left"))
	if h.m.nav.Index() != start {
		t.Errorf("left while typing: index = %d, want %d", h.m.nav.Index(), start)
	}
	if !h.m.auto.Focused() || h.m.gate.Text() != "t" {
		t.Errorf("arrows disturbed the input: focused=%v text=%q", h.m.auto.Focused(), h.m.gate.Text())
	}
}

func TestDeckToastExpiry(t *testing.T) {
	h := newDeckHarness(t)
	h.m.fail("first")
	h.m.fail("second")

	h.m.Update(toastExpiredMsg{id: 1})
	if h.m.toast != "second" {
		t.Errorf("older expiry cleared newer toast: %q", h.m.toast)
	}
	h.m.Update(toastExpiredMsg{id: 2})
	if h.m.toast != "" {
		t.Errorf("toast = %q, want cleared", h.m.toast)
	}
}

func TestDeckMouseSwipe(t *testing.T) {
	h := newDeckHarness(t)
	h.load(t, "octocat")
	start := h.m.nav.Index()

	h.m.Update(tea.MouseMsg{X: 50, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	h.m.Update(tea.MouseMsg{X: 40, Action: tea.MouseActionRelease})
	if h.m.nav.Index() != start+1 {
		t.Errorf("left drag: index = %d, want %d", h.m.nav.Index(), start+1)
	}

	h.m.Update(tea.MouseMsg{X: 40, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	h.m.Update(tea.MouseMsg{X: 43, Action: tea.MouseActionRelease})
	if h.m.nav.Index() != start+1 {
		t.Errorf("short drag moved to %d", h.m.nav.Index())
	}
}

func TestDeckAutoplay(t *testing.T) {
	h := newDeckHarness(t)
	now := time.Date(2025, 12, 1, 12, 0, 0, 0, time.UTC)

	h.m.Update(autoplayTickMsg(now))
	if h.m.nav.Index() != 0 {
		t.Fatal("autoplay advanced while disabled")
	}

	h.load(t, "octocat")
	h.m.Update(key("a"))
	start := h.m.nav.Index()
	h.m.Update(autoplayTickMsg(now))
	if h.m.nav.Index() != start+1 {
		t.Errorf("autoplay index = %d, want %d", h.m.nav.Index(), start+1)
	}

	h.m.auto.Focus()
	h.m.Update(autoplayTickMsg(now))
	if h.m.nav.Index() != start+1 {
		t.Error("autoplay advanced while the input had focus")
	}
}

func TestDeckView(t *testing.T) {
	h := newDeckHarness(t)
	if v := h.m.View(); !strings.Contains(v, "01/08") {
		t.Errorf("view missing progress:\n%s", v)
	}
	h.load(t, "octocat")
	h.m.nav.GoTo(deck.IndexOf(deck.PanelRepos))
	if v := h.m.View(); !strings.Contains(v, "selected:") {
		t.Errorf("repos view missing selection:\n%s", v)
	}
}
