package text

import (
	"unicode"
	"unicode/utf8"
)

// Font describes the face parameters measurement depends on. Size is in
// points; the same unit system as page geometry.
type Font struct {
	Family string
	Size   float64
	Bold   bool
	Italic bool
}

// Measurer reports the rendered width of text in points. Implementations
// must be monotonic over prefixes of the same string and must never fail:
// when exact metrics are unavailable they degrade to an estimate instead of
// returning an error.
type Measurer interface {
	Width(text string, f Font) float64
}

// courierAdvance is the advance width of every Courier glyph in em units
// (600/1000). Screenplay formatting assumes this fixed pitch.
const courierAdvance = 0.6

// CourierMetrics measures text against fixed-pitch Courier metrics: every
// spacing glyph advances 600/1000 em, and nonspacing combining marks (the
// Thai above/below vowels and tone marks, category Mn) advance zero.
type CourierMetrics struct{}

// Width implements Measurer.
func (CourierMetrics) Width(text string, f Font) float64 {
	var w float64
	for _, r := range text {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		w += courierAdvance * f.Size
	}
	return w
}

// Estimate is the degraded measurement path used when no font metrics are
// available: Thai-bearing text is estimated at 0.6×size per rune, Latin text
// at 0.5×size per rune. Deterministic and allocation-free.
type Estimate struct{}

// Width implements Measurer.
func (Estimate) Width(text string, f Font) float64 {
	factor := 0.5
	if ContainsThai(text) {
		factor = 0.6
	}
	return float64(utf8.RuneCountInString(text)) * factor * f.Size
}
