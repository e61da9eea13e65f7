package card

import (
	"bytes"
	"fmt"
	"os/exec"
	"strconv"

	"github.com/matzehuels/gitwrapped/pkg/wrapped"
)

// Format is an output format for the card.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatSVG, FormatPNG, FormatPDF:
		return f, nil
	case "":
		return FormatSVG, nil
	default:
		return "", fmt.Errorf("unsupported format %q (use svg, png or pdf)", s)
	}
}

// Render renders vm in format f. PNG and PDF are converted from SVG.
func Render(vm *wrapped.ViewModel, f Format) ([]byte, error) {
	svg, err := RenderSVG(vm)
	if err != nil {
		return nil, err
	}
	switch f {
	case FormatPNG:
		return ToPNG(svg, 2.0)
	case FormatPDF:
		return ToPDF(svg)
	default:
		return svg, nil
	}
}

// ToPNG converts SVG to PNG at the given scale.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	return rsvgConvert(svg, "-f", "png", "-z", strconv.FormatFloat(scale, 'f', -1, 64))
}

// ToPDF converts SVG to PDF.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPDF(svg []byte) ([]byte, error) {
	return rsvgConvert(svg, "-f", "pdf")
}

func rsvgConvert(svg []byte, args ...string) ([]byte, error) {
	path, err := exec.LookPath("rsvg-convert")
	if err != nil {
		return nil, fmt.Errorf("rsvg-convert not found: install librsvg")
	}
	cmd := exec.Command(path, args...)
	cmd.Stdin = bytes.NewReader(svg)
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("rsvg-convert: %w: %s", err, stderr.String())
	}
	return out.Bytes(), nil
}
