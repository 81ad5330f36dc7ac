package text

import "strings"

// Wrap breaks text into lines that each fit maxWidth according to the
// measurer. Breaking happens at whitespace boundaries; a single token wider
// than maxWidth (unbroken Thai runs have no spaces to break at) is
// hard-split at the largest rune offset whose prefix still fits.
//
// The input is normalized first. Empty or all-whitespace input yields zero
// lines. Wrap is a pure function: identical inputs produce identical output.
func Wrap(text string, maxWidth float64, f Font, m Measurer) []string {
	var lines []string
	var current string

	flush := func() {
		if current != "" {
			lines = append(lines, current)
			current = ""
		}
	}

	for _, tok := range strings.Fields(Normalize(text)) {
		if current != "" && m.Width(current+" "+tok, f) <= maxWidth {
			current += " " + tok
			continue
		}
		flush()
		for m.Width(tok, f) > maxWidth {
			head, rest := hardSplit(tok, maxWidth, f, m)
			lines = append(lines, head)
			tok = rest
		}
		current = tok
	}
	flush()
	return lines
}

// hardSplit cuts tok after the last rune whose prefix fits maxWidth. The
// head always contains at least one rune so the caller makes progress even
// when a single rune exceeds the budget.
func hardSplit(tok string, maxWidth float64, f Font, m Measurer) (head, rest string) {
	runes := []rune(tok)
	cut := 1
	for i := 2; i <= len(runes); i++ {
		if m.Width(string(runes[:i]), f) > maxWidth {
			break
		}
		cut = i
	}
	return string(runes[:cut]), string(runes[cut:])
}
