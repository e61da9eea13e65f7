// Package render draws a wrapped [wrapped.ViewModel] as terminal panels.
//
// # Overview
//
// A [Renderer] holds one [Painter] per deck panel. [NewRenderer] checks
// once, at construction, that every panel in [deck.Panels] can be drawn,
// so a deck never discovers a missing panel halfway through.
//
//	r := render.Default()
//	fmt.Println(r.Render(vm, deck.PanelScore))
//
// Rendering is pure: the same view-model, panel and width always produce
// the same string. Colors that the browser version picked at random (for
// unknown languages) are derived from a hash of the name instead.
//
// # Empty states
//
// Missing data renders as a fixed placeholder rather than an empty panel:
// "No languages", "No popular repos", "No bio", "Independent",
// "Worldwide" and "None".
//
// # SVG card
//
// The [card] subpackage renders the same view-model as a standalone SVG.
//
// [wrapped.ViewModel]: github.com/matzehuels/gitwrapped/pkg/wrapped.ViewModel
// [deck.Panels]: github.com/matzehuels/gitwrapped/pkg/deck.Panels
// [card]: github.com/matzehuels/gitwrapped/pkg/render/card
package render
