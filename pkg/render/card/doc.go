// Package card renders a wrapped view-model as a shareable SVG card.
//
// The card is produced from an embedded text/template. It shows the
// headline stats, top languages, top repositories, the 52x7 heatmap and
// the score ring. PNG and PDF output shell out to rsvg-convert.
package card
