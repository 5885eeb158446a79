// Package horizon implements spec.md §4.6: mapping a row of values onto
// colored character cells using a banded color scheme, against a raw
// tcell.Screen.
package horizon

import "github.com/gdamore/tcell/v2"

// Cell is one step of a ColorBand: the glyph and color DrawRow writes for
// a given intensity bucket.
type Cell struct {
	Rune  rune
	Color tcell.Color
}

// ColorBand is spec.md §3's ColorBand: an ordered sequence of 3×N cells
// for N intensity bands.
type ColorBand []Cell

// glyphShades are the three cells within one hue band, dimmest to
// brightest, matching the ktop Sparkline's density-ramp idea
// (vladimirvivien-ktop ui/sparkline.go's braille dot density) adapted to
// plain block glyphs since horizon cells are whole terminal characters,
// not sub-cell braille dots.
var glyphShades = []rune{'░', '▒', '▓'}

// hue256 walks a green→yellow→red ramp over the xterm 256-color cube,
// the same low/mid/high traffic-light coding as ktop's
// ColorKeys{0:"green",50:"yellow",80:"red"} (ui/sparkline.go), expressed
// as indexed 256-color palette entries instead of named tcell colors.
var hue256 = []int{22, 28, 34, 40, 46, 82, 118, 154, 190, 226, 220, 214, 208, 202, 196}

// DefaultColorBand builds the N-band, 3×N-cell ramp spec.md §4.6 names:
// N evenly-spaced hues from hue256, each rendered at 3 glyph shades.
func DefaultColorBand(n int) ColorBand {
	if n < 1 {
		n = 1
	}
	band := make(ColorBand, 0, 3*n)
	for i := 0; i < n; i++ {
		hue := hue256[i*(len(hue256)-1)/max(1, n-1)]
		for _, r := range glyphShades {
			band = append(band, Cell{Rune: r, Color: tcell.PaletteColor(hue)})
		}
	}
	return band
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Index implements spec.md §4.6's bucket lookup against this band's own
// length (3·N, for whatever N the band was built with):
// idx = clamp(floor(len(band)·v/scale_max), 0, len(band)-1).
func (b ColorBand) Index(v, scaleMax float64) int {
	total := len(b)
	if total == 0 {
		return 0
	}
	if scaleMax <= 0 {
		return 0
	}
	idx := int(v / scaleMax * float64(total))
	if idx < 0 {
		return 0
	}
	if idx > total-1 {
		return total - 1
	}
	return idx
}
