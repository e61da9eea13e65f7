package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/gitwrapped/pkg/deck"
	"github.com/matzehuels/gitwrapped/pkg/wrapped"
)

// Empty-state placeholders.
const (
	EmptyLanguages = "No languages"
	EmptyRepos     = "No popular repos"
	EmptyBio       = "No bio"
	EmptyCompany   = "Independent"
	EmptyLocation  = "Worldwide"
	EmptyTwitter   = "None"
	UnknownLang    = "Unknown"
)

// ExampleUsers are suggested when a lookup fails.
var ExampleUsers = []string{"torvalds", "sindresorhus", "facebook"}

// DefaultPainters returns the built-in painter for every deck panel.
func DefaultPainters() map[deck.Panel]Painter {
	return map[deck.Panel]Painter{
		deck.PanelWelcome:   paintWelcome,
		deck.PanelProfile:   paintProfile,
		deck.PanelStats:     paintStats,
		deck.PanelLanguages: paintLanguages,
		deck.PanelRepos:     paintRepos,
		deck.PanelHeatmap:   paintHeatmap,
		deck.PanelPersona:   paintPersona,
		deck.PanelScore:     paintScore,
	}
}

func or(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func paintPrompt(width int) string {
	lines := []string{
		styleTitle.Render("GitHub Wrapped"),
		"",
		styleValue.Render("Type a GitHub username and press enter."),
		styleDim.Render("Try: " + strings.Join(ExampleUsers, ", ")),
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

func paintWelcome(vm *wrapped.ViewModel, width int) string {
	year := vm.GeneratedAt.Year()
	lines := []string{
		styleScoreBig.Render(fmt.Sprintf("%d in code", year)),
		"",
		styleValue.Render("Here is how " + vm.Profile.DisplayName() + " spent the year."),
		styleDim.Render("← → to navigate · space for autoplay · q to quit"),
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

func paintProfile(vm *wrapped.ViewModel, width int) string {
	p := vm.Profile
	twitter := EmptyTwitter
	if p.TwitterUsername != "" {
		twitter = "@" + p.TwitterUsername
	}

	var b strings.Builder
	b.WriteString(styleNumber.Render(p.DisplayName()))
	if p.Name != "" {
		b.WriteString(" " + styleDim.Render("@"+p.Login))
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Foreground(colorWhite).Render(or(p.Bio, EmptyBio)))
	b.WriteString("\n\n")
	b.WriteString("🏢 " + styleValue.Render(or(p.Company, EmptyCompany)) + "\n")
	b.WriteString("📍 " + styleValue.Render(or(p.Location, EmptyLocation)) + "\n")
	b.WriteString("🐦 " + styleValue.Render(twitter) + "\n\n")

	s := vm.Stats
	b.WriteString(statLine([]statCell{
		{"Stars", s.Stars},
		{"Commits", s.Commits},
		{"Pull requests", s.PullRequests},
	}))
	return b.String()
}

type statCell struct {
	label string
	value int
}

func statLine(cells []statCell) string {
	var parts []string
	for _, c := range cells {
		parts = append(parts, styleNumber.Render(FormatInt(c.value))+" "+styleLabel.Render(c.label))
	}
	return strings.Join(parts, styleDim.Render("  ·  "))
}

func paintStats(vm *wrapped.ViewModel, width int) string {
	s := vm.Stats
	prs := FormatInt(s.PullRequests)
	if s.PullRequestsEstimated {
		prs += "*"
	}
	rows := [][]string{
		{"Contributions", FormatInt(s.Contributions), "Repos", FormatInt(s.Repos)},
		{"Score", fmt.Sprintf("%d", s.Score), "Stars", FormatInt(s.Stars)},
		{"Commits", FormatInt(s.Commits), "Pull requests", prs},
		{"Forks", FormatInt(s.Forks), "Followers", FormatInt(vm.Profile.Followers)},
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if col%2 == 0 {
				return base.Foreground(colorGray)
			}
			return base.Bold(true).Foreground(colorCyan).Align(lipgloss.Right)
		})

	out := t.Render()
	if s.PullRequestsEstimated {
		out += "\n" + styleDim.Render("* estimated")
	}
	return out
}

func paintLanguages(vm *wrapped.ViewModel, width int) string {
	if len(vm.Languages) == 0 {
		return styleEmpty.Render(EmptyLanguages)
	}
	top := vm.Languages[0].Count
	barMax := max(width-32, 10)

	var lines []string
	for _, l := range vm.Languages {
		n := max(1, l.Count*barMax/max(top, 1))
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(LanguageColor(l.Name)))
		unit := "repos"
		if l.Count == 1 {
			unit = "repo"
		}
		lines = append(lines, fmt.Sprintf("%s %s %s",
			lipgloss.NewStyle().Width(14).Render(styleValue.Render(l.Name)),
			swatch.Render(strings.Repeat("█", n)),
			styleLabel.Render(fmt.Sprintf("%d %s", l.Count, unit))))
	}
	return strings.Join(lines, "\n")
}

func paintRepos(vm *wrapped.ViewModel, width int) string {
	if len(vm.TopRepos) == 0 {
		return styleEmpty.Render(EmptyRepos)
	}
	rows := make([][]string, 0, len(vm.TopRepos))
	for i, r := range vm.TopRepos {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			r.Name,
			"⭐ " + FormatInt(r.Stars),
			or(r.Language, UnknownLang),
		})
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("#", "Repository", "Stars", "Language").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return styleHeader.Padding(0, 1)
			case col == 2:
				return base.Inherit(styleStar)
			case col == 1:
				return base.Inherit(styleValue)
			default:
				return base.Inherit(styleLabel)
			}
		})
	return t.Render() + "\n" + styleDim.Render("tab to select · o to open")
}

func paintHeatmap(vm *wrapped.ViewModel, width int) string {
	h := vm.Heatmap
	weeks := wrapped.HeatmapWeeks
	// Each week takes one column; drop the oldest weeks on narrow screens.
	if width > 0 && width < weeks+4 {
		weeks = max(width-4, 1)
	}
	first := wrapped.HeatmapWeeks - weeks

	var rows []string
	for d := range wrapped.HeatmapDays {
		var b strings.Builder
		for w := first; w < wrapped.HeatmapWeeks; w++ {
			c := h.Weeks[w][d]
			b.WriteString(lipgloss.NewStyle().Foreground(heatColors[c.Level()]).Render("■"))
		}
		rows = append(rows, b.String())
	}

	s := vm.Stats
	summary := statLine([]statCell{
		{"contributions", h.Total},
		{"best streak", s.LongestStreak},
		{"active days", s.ActiveDays},
	})
	legend := styleDim.Render("less ")
	for _, l := range []wrapped.Level{wrapped.LevelEmpty, wrapped.LevelLow, wrapped.LevelMed, wrapped.LevelHigh} {
		legend += lipgloss.NewStyle().Foreground(heatColors[l]).Render("■")
	}
	legend += styleDim.Render(" more")

	return strings.Join(rows, "\n") + "\n\n" + summary + "\n" + legend
}

func paintPersona(vm *wrapped.ViewModel, width int) string {
	persona := or(vm.Persona, "Developer")
	badge := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorGreen).
		Padding(1, 4).
		Render(stylePersona.Render(persona + " " + PersonaEmoji(persona)))

	var top string
	if len(vm.Languages) > 0 {
		top = styleDim.Render("fluent in " + vm.Languages[0].Name)
	}
	return lipgloss.JoinVertical(lipgloss.Center, badge, top)
}

func paintScore(vm *wrapped.ViewModel, width int) string {
	score := vm.Stats.Score
	barWidth := min(max(width-10, 10), 50)
	filled := score * barWidth / wrapped.MaxScore

	bar := lipgloss.NewStyle().Foreground(colorGreen).Render(strings.Repeat("█", filled)) +
		styleDim.Render(strings.Repeat("░", barWidth-filled))

	lines := []string{
		styleScoreBig.Render(fmt.Sprintf("%d/100", score)),
		bar,
		"",
		styleValue.Render(wrapped.ShareText(vm)),
		styleDim.Render("c copy · t tweet · r refresh"),
	}
	return strings.Join(lines, "\n")
}
