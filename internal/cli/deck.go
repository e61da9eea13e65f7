package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gitwrapped/pkg/deck"
	"github.com/matzehuels/gitwrapped/pkg/render"
	"github.com/matzehuels/gitwrapped/pkg/wrapped"
)

const (
	toastDuration = 2500 * time.Millisecond

	// swipeCellPx approximates the pixel width of one terminal cell so
	// mouse drags share the navigator's pixel threshold.
	swipeCellPx = 8
)

// Deck styles
var (
	deckFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(1, 2)
	deckInputStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	deckPromptStyle  = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	deckDotStyle     = lipgloss.NewStyle().Foreground(colorDim)
	deckDotOnStyle   = lipgloss.NewStyle().Foreground(colorCyan)
	deckBarStyle     = lipgloss.NewStyle().Foreground(colorCyan)
	deckToastStyle   = lipgloss.NewStyle().Foreground(colorWhite).Background(colorRed).Padding(0, 1)
	deckNoticeStyle  = lipgloss.NewStyle().Foreground(colorWhite).Background(colorGreen).Padding(0, 1)
	deckSelectStyle  = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)
	deckSpinnerStyle = styleIconSpinner
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// generator produces snapshots. *wrapped.Service satisfies it.
type generator interface {
	Generate(ctx context.Context, username string, refresh bool) (*wrapped.ViewModel, bool, error)
}

// =============================================================================
// Messages
// =============================================================================

type (
	// lookupMsg delivers a finished lookup tagged with its in-flight token.
	lookupMsg struct {
		token string
		login string
		vm    *wrapped.ViewModel
		err   error
	}

	autoplayTickMsg time.Time
	gateCheckMsg    time.Time
	spinnerTickMsg  struct{}

	toastExpiredMsg struct{ id int }
)

// =============================================================================
// deckModel - the interactive slide deck
// =============================================================================

// deckModel is the bubbletea model for the deck. It holds at most one
// ViewModel; every successful lookup replaces it wholesale.
type deckModel struct {
	ctx      context.Context
	gen      generator
	renderer *render.Renderer

	nav      *deck.Navigator
	auto     *deck.Autoplay
	gate     *deck.InputGate
	inflight *wrapped.Inflight

	vm          *wrapped.ViewModel
	loadingName string
	frame       int

	toast      string
	toastError bool
	toastID    int

	selected int // index into vm.TopRepos

	dragStartX int
	dragging   bool

	width, height int

	now         func() time.Time
	openURL     func(string) error
	copyText    func(string) error
	initialUser string
}

func newDeckModel(ctx context.Context, gen generator, autoplay bool) *deckModel {
	m := &deckModel{
		ctx:      ctx,
		gen:      gen,
		renderer: render.Default(),
		nav:      deck.NewNavigator(len(deck.Panels)),
		auto:     deck.NewAutoplay(autoplay),
		gate:     deck.NewInputGate(),
		inflight: &wrapped.Inflight{},
		now:      time.Now,
		openURL:  openBrowser,
		copyText: func(s string) error { return copyToClipboard(os.Stderr, s) },
	}
	m.nav.Loading = m.inflight.Loading
	return m
}

func (m *deckModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.autoplayTick()}
	if m.initialUser != "" {
		m.gate.Set(m.initialUser, m.now())
		if login, ok := m.gate.Submit(); ok {
			cmds = append(cmds, m.lookup(login, false))
		}
	} else {
		m.auto.Focus()
	}
	return tea.Batch(cmds...)
}

func (m *deckModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.renderer = m.renderer.WithWidth(min(max(msg.Width-8, 40), 100))
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.auto.Focused() {
			return m.updateInput(msg)
		}
		return m.updateDeck(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case lookupMsg:
		return m.finishLookup(msg)

	case gateCheckMsg:
		if login, ok := m.gate.Due(time.Time(msg)); ok {
			return m, m.lookup(login, false)
		}
		return m, nil

	case autoplayTickMsg:
		if m.vm != nil && m.auto.Ready(time.Time(msg)) {
			m.nav.Next()
		}
		return m, m.autoplayTick()

	case spinnerTickMsg:
		if !m.inflight.Loading() {
			return m, nil
		}
		m.frame++
		return m, spinnerTick()

	case toastExpiredMsg:
		if msg.id == m.toastID {
			m.toast = ""
		}
		return m, nil
	}
	return m, nil
}

// updateInput handles keys while the username input has focus.
func (m *deckModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := m.now()
	text := m.gate.Text()

	switch msg.Type {
	case tea.KeyEsc:
		m.auto.Blur()
		return m, nil
	case tea.KeyRight:
		m.nav.Next()
		return m, nil
	case tea.KeyLeft:
		m.nav.Prev()
		return m, nil
	case tea.KeyEnter:
		m.auto.Blur()
		if login, ok := m.gate.Submit(); ok {
			return m, m.lookup(login, false)
		}
		return m, nil
	case tea.KeyBackspace:
		if r := []rune(text); len(r) > 0 {
			text = string(r[:len(r)-1])
		}
	case tea.KeyRunes, tea.KeySpace:
		text += string(msg.Runes)
	default:
		return m, nil
	}

	m.auto.Keystroke(now)
	m.gate.Set(text, now)
	return m, tea.Tick(m.gate.Idle, func(t time.Time) tea.Msg { return gateCheckMsg(t) })
}

// updateDeck handles keys while the deck itself has focus.
func (m *deckModel) updateDeck(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "esc":
		return m, tea.Quit
	case "right", "l", "n", " ":
		m.nav.Next()
	case "left", "h", "p":
		m.nav.Prev()
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.nav.GoTo(int(key[0] - '1'))
	case "/", "i":
		m.auto.Focus()
	case "a":
		if m.auto.Toggle() {
			return m, m.notice("Autoplay on")
		}
		return m, m.notice("Autoplay off")
	case "tab":
		if m.vm != nil && len(m.vm.TopRepos) > 0 {
			m.selected = (m.selected + 1) % len(m.vm.TopRepos)
		}
	case "o":
		if repo, ok := m.selectedRepo(); ok {
			return m, m.open(repo.URL)
		}
	case "c":
		if m.vm != nil {
			if err := m.copyText(wrapped.ShareText(m.vm)); err != nil {
				return m, m.fail("Could not copy: " + err.Error())
			}
			return m, m.notice("Copied to clipboard!")
		}
	case "t":
		if m.vm != nil {
			return m, m.open(wrapped.TweetURL(m.vm))
		}
	case "r":
		if m.vm != nil && !m.inflight.Loading() {
			return m, m.lookup(m.vm.Profile.Login, true)
		}
	}
	return m, nil
}

// updateMouse turns a left-button drag into a swipe.
func (m *deckModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return m, nil
	}
	switch msg.Action {
	case tea.MouseActionPress:
		m.dragStartX, m.dragging = msg.X, true
	case tea.MouseActionRelease:
		if m.dragging {
			m.nav.Swipe((msg.X - m.dragStartX) * swipeCellPx)
		}
		m.dragging = false
	}
	return m, nil
}

// lookup starts a fetch under a fresh in-flight token. Results for older
// tokens are discarded when they arrive.
func (m *deckModel) lookup(login string, refresh bool) tea.Cmd {
	token := m.inflight.Begin()
	m.loadingName = login
	ctx, gen := m.ctx, m.gen
	fetch := func() tea.Msg {
		vm, _, err := gen.Generate(ctx, login, refresh)
		return lookupMsg{token: token, login: login, vm: vm, err: err}
	}
	return tea.Batch(fetch, spinnerTick())
}

// finishLookup applies a lookup result. Failures keep the current slide
// and snapshot. Success replaces the snapshot, hands keys back to the deck
// and shows the profile.
func (m *deckModel) finishLookup(msg lookupMsg) (tea.Model, tea.Cmd) {
	if !m.inflight.Finish(msg.token) {
		return m, nil
	}
	m.loadingName = ""
	if msg.err != nil {
		if errors.Is(msg.err, context.Canceled) {
			return m, nil
		}
		return m, m.fail(lookupErrorText(msg.login, msg.err))
	}
	m.vm = msg.vm
	m.selected = 0
	m.gate.Reset()
	m.auto.Blur()
	m.nav.GoTo(deck.IndexOf(deck.PanelProfile))
	return m, nil
}

func (m *deckModel) selectedRepo() (wrapped.RepositorySummary, bool) {
	if m.vm == nil || len(m.vm.TopRepos) == 0 {
		return wrapped.RepositorySummary{}, false
	}
	return m.vm.TopRepos[m.selected%len(m.vm.TopRepos)], true
}

func (m *deckModel) open(url string) tea.Cmd {
	if err := m.openURL(url); err != nil {
		return m.fail("Could not open browser: " + err.Error())
	}
	return nil
}

func (m *deckModel) fail(text string) tea.Cmd { return m.showToast(text, true) }

func (m *deckModel) notice(text string) tea.Cmd { return m.showToast(text, false) }

func (m *deckModel) showToast(text string, isErr bool) tea.Cmd {
	m.toastID++
	m.toast, m.toastError = text, isErr
	id := m.toastID
	return tea.Tick(toastDuration, func(time.Time) tea.Msg { return toastExpiredMsg{id: id} })
}

func (m *deckModel) autoplayTick() tea.Cmd {
	return tea.Tick(m.auto.Interval, func(t time.Time) tea.Msg { return autoplayTickMsg(t) })
}

func spinnerTick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(time.Time) tea.Msg { return spinnerTickMsg{} })
}

// =============================================================================
// View
// =============================================================================

func (m *deckModel) View() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewInput())
	b.WriteString("\n\n")

	panel := deck.Panels[m.nav.Index()]
	body := m.renderer.Render(m.vm, panel)
	if panel == deck.PanelRepos {
		if repo, ok := m.selectedRepo(); ok {
			body += "\n\n" + StyleDim.Render("selected: ") + deckSelectStyle.Render(repo.Name)
		}
	}
	b.WriteString(deckFrameStyle.Render(body))
	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	if m.toast != "" {
		style := deckNoticeStyle
		if m.toastError {
			style = deckToastStyle
		}
		b.WriteString("\n\n")
		b.WriteString(style.Render(m.toast))
	}
	return b.String()
}

func (m *deckModel) viewHeader() string {
	text, ratio := m.nav.Progress()

	const barWidth = 16
	filled := int(ratio*barWidth + 0.5)
	bar := deckBarStyle.Render(strings.Repeat("━", filled)) + StyleDim.Render(strings.Repeat("─", barWidth-filled))

	dots := make([]string, m.nav.Count())
	for i := range dots {
		if i == m.nav.Index() {
			dots[i] = deckDotOnStyle.Render("●")
		} else {
			dots[i] = deckDotStyle.Render("○")
		}
	}

	return StyleTitle.Render("GitHub Wrapped") + "  " + bar + " " + StyleNumber.Render(text) + "  " + strings.Join(dots, " ")
}

func (m *deckModel) viewInput() string {
	prompt := deckPromptStyle.Render("@ ")
	text := m.gate.Text()
	switch {
	case m.inflight.Loading():
		frame := spinnerFrames[m.frame%len(spinnerFrames)]
		return prompt + deckSpinnerStyle.Render(frame) + " " + StyleDim.Render("Fetching "+m.loadingName+"...")
	case m.auto.Focused():
		return prompt + deckInputStyle.Render(text) + deckPromptStyle.Render("▌")
	case text == "" && m.vm != nil:
		return prompt + StyleDim.Render(m.vm.Profile.Login+"  (/ to search)")
	default:
		return prompt + StyleDim.Render(fmt.Sprintf("%s  (/ to search)", text))
	}
}

func (m *deckModel) viewFooter() string {
	autoplay := "off"
	if m.auto.Enabled {
		autoplay = "on"
	}
	if m.auto.Focused() {
		return StyleDim.Render("enter look up · esc cancel")
	}
	return StyleDim.Render(fmt.Sprintf("←/→ navigate · 1-%d jump · / search · a autoplay (%s) · q quit", m.nav.Count(), autoplay))
}

// =============================================================================
// Command
// =============================================================================

// deckCommand opens the interactive deck.
func (c *CLI) deckCommand() *cobra.Command {
	var autoplay bool

	cmd := &cobra.Command{
		Use:   "deck [username]",
		Short: "Browse a GitHub Wrapped deck in the terminal",
		Long: `Browse a GitHub Wrapped deck in the terminal.

Keys:
  ←/→ h/l        previous / next slide
  1-8            jump to a slide
  / or i         type a username (looked up after a pause or on enter)
  tab, o         select and open a top repository
  c, t           copy the share text, open a tweet
  r              refresh the current user
  a              toggle autoplay
  q              quit

Dragging with the mouse swipes between slides. Logs are written to
deck.log in the state directory while the deck is open.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := c.newApp(ctx, cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if path, restore, err := openLogFile(c.Logger, os.Stderr); err != nil {
				c.Logger.Warn("deck logs disabled", "err", err)
				c.Logger.SetOutput(io.Discard)
				defer c.Logger.SetOutput(os.Stderr)
			} else {
				defer restore()
				c.Logger.Debug("deck started", "log", path)
			}

			if !cmd.Flags().Changed("autoplay") {
				autoplay = a.cfg.Deck.Autoplay
			}
			m := newDeckModel(ctx, a.svc, autoplay)
			m.auto.Interval = a.cfg.Deck.AutoplayInterval.Duration
			if len(args) == 1 {
				m.initialUser = args[0]
			}

			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
			if _, err := p.Run(); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return fmt.Errorf("deck: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&autoplay, "autoplay", false, "advance slides automatically (default from config)")
	return cmd
}
