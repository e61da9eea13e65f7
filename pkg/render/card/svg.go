package card

import (
	"bytes"
	_ "embed"
	"fmt"
	"html"
	"math"
	"text/template"

	"github.com/matzehuels/gitwrapped/pkg/render"
	"github.com/matzehuels/gitwrapped/pkg/wrapped"
)

const (
	cardWidth   = 800
	cardHeight  = 420
	cellSize    = 10
	cellGap     = 3
	heatmapY    = 310
	ringRadius  = 62
	ringCenterX = 680
)

// Heat colors, GitHub dark theme.
var heatFill = map[wrapped.Level]string{
	wrapped.LevelEmpty: "#161b22",
	wrapped.LevelLow:   "#0e4429",
	wrapped.LevelMed:   "#006d32",
	wrapped.LevelHigh:  "#39d353",
}

//go:embed templates/card.svg.tmpl
var cardTemplate string

var cardTmpl = template.Must(
	template.New("card").
		Funcs(template.FuncMap{
			"add": func(a, b int) int { return a + b },
			"mul": func(a, b int) int { return a * b },
		}).
		Parse(cardTemplate),
)

type statView struct {
	Label string
	Value string
}

type langView struct {
	Name  string
	Count int
	Color string
}

type repoView struct {
	Name     string
	Stars    string
	Language string
}

type cellView struct {
	X, Y  int
	Count int
	Color string
}

// All strings are XML-escaped before they reach the template.
type cardViewModel struct {
	Width, Height int
	Year          int

	Title   string
	Login   string
	Persona string

	Stats     []statView
	Languages []langView
	Repos     []repoView

	EmptyLanguages string
	EmptyRepos     string

	Score             int
	RingX             int
	RingRadius        int
	RingCircumference string
	RingOffset        string

	HeatmapY int
	CellSize int
	Cells    []cellView
}

// RenderSVG renders vm as a standalone SVG card.
func RenderSVG(vm *wrapped.ViewModel) ([]byte, error) {
	if vm == nil {
		return nil, fmt.Errorf("render card: nil view-model")
	}
	esc := html.EscapeString

	s := vm.Stats
	circ := 2 * math.Pi * ringRadius
	cv := cardViewModel{
		Width:   cardWidth,
		Height:  cardHeight,
		Year:    vm.GeneratedAt.Year(),
		Title:   esc(vm.Profile.DisplayName()),
		Login:   esc(vm.Profile.Login),
		Persona: esc(vm.Persona),
		Stats: []statView{
			{"Contributions", render.FormatInt(s.Contributions)},
			{"Stars", render.FormatInt(s.Stars)},
			{"Repos", render.FormatInt(s.Repos)},
			{"Commits", render.FormatInt(s.Commits)},
			{"Best streak", fmt.Sprintf("%d days", s.LongestStreak)},
		},
		EmptyLanguages:    render.EmptyLanguages,
		EmptyRepos:        render.EmptyRepos,
		Score:             s.Score,
		RingX:             ringCenterX,
		RingRadius:        ringRadius,
		RingCircumference: fmt.Sprintf("%.2f", circ),
		RingOffset:        fmt.Sprintf("%.2f", circ-float64(s.Score)/wrapped.MaxScore*circ),
		HeatmapY:          heatmapY,
		CellSize:          cellSize,
	}

	for _, l := range vm.Languages {
		cv.Languages = append(cv.Languages, langView{
			Name:  esc(l.Name),
			Count: l.Count,
			Color: render.LanguageColor(l.Name),
		})
	}
	for _, r := range vm.TopRepos {
		lang := r.Language
		if lang == "" {
			lang = render.UnknownLang
		}
		cv.Repos = append(cv.Repos, repoView{
			Name:     esc(r.Name),
			Stars:    render.FormatInt(r.Stars),
			Language: esc(lang),
		})
	}
	for w := range wrapped.HeatmapWeeks {
		for d := range wrapped.HeatmapDays {
			c := vm.Heatmap.Weeks[w][d]
			cv.Cells = append(cv.Cells, cellView{
				X:     w * (cellSize + cellGap),
				Y:     d * (cellSize + cellGap),
				Count: c.Count,
				Color: heatFill[c.Level()],
			})
		}
	}

	var buf bytes.Buffer
	if err := cardTmpl.Execute(&buf, cv); err != nil {
		return nil, fmt.Errorf("render card: %w", err)
	}
	return buf.Bytes(), nil
}
