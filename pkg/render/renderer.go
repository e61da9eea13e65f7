package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/matzehuels/gitwrapped/pkg/deck"
	"github.com/matzehuels/gitwrapped/pkg/wrapped"
)

// DefaultWidth is the panel width used when none is set.
const DefaultWidth = 72

// ErrMissingPanel is returned by [NewRenderer] when a deck panel has no painter.
var ErrMissingPanel = errors.New("missing panel painter")

// Painter draws one panel. vm is never nil; width is the usable width.
type Painter func(vm *wrapped.ViewModel, width int) string

// Renderer draws view-models panel by panel.
type Renderer struct {
	painters map[deck.Panel]Painter
	width    int
}

// NewRenderer returns a renderer after checking that every panel in
// [deck.Panels] has a painter.
func NewRenderer(painters map[deck.Panel]Painter) (*Renderer, error) {
	var missing []string
	for _, p := range deck.Panels {
		if painters[p] == nil {
			missing = append(missing, string(p))
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingPanel, strings.Join(missing, ", "))
	}
	own := make(map[deck.Panel]Painter, len(painters))
	for k, v := range painters {
		own[k] = v
	}
	return &Renderer{painters: own, width: DefaultWidth}, nil
}

// Default returns a renderer with the built-in painters.
func Default() *Renderer {
	r, err := NewRenderer(DefaultPainters())
	if err != nil {
		panic(err)
	}
	return r
}

// WithWidth returns a copy of r drawing at width columns.
func (r *Renderer) WithWidth(width int) *Renderer {
	cp := *r
	if width > 0 {
		cp.width = width
	}
	return &cp
}

// Width returns the panel width.
func (r *Renderer) Width() int { return r.width }

// Render draws panel p of vm. A nil vm draws the search prompt.
func (r *Renderer) Render(vm *wrapped.ViewModel, p deck.Panel) string {
	if vm == nil {
		return paintPrompt(r.width)
	}
	paint, ok := r.painters[p]
	if !ok {
		return styleEmpty.Render(fmt.Sprintf("unknown panel %q", p))
	}
	body := paint(vm, r.width)
	return styleTitle.Render(p.Title()) + "\n\n" + body
}

// RenderAll draws every panel after the welcome slide, separated by blank
// lines. Used for non-interactive output.
func (r *Renderer) RenderAll(vm *wrapped.ViewModel) string {
	var parts []string
	for _, p := range deck.Panels {
		if p == deck.PanelWelcome {
			continue
		}
		parts = append(parts, r.Render(vm, p))
	}
	return strings.Join(parts, "\n\n")
}
