package text

import (
	"reflect"
	"strings"
	"testing"
)

func TestWrapFitsWidthBudget(t *testing.T) {
	m := CourierMetrics{}
	cases := []struct {
		name     string
		in       string
		maxWidth float64
	}{
		{"short sentence", "A dog runs across the grass.", 200},
		{"long sentence", strings.Repeat("screenplay pagination ", 20), 150},
		{"thai with spaces", "สวัสดี ครับ ผม ชื่อ เด่น", 80},
		{"single narrow column", "one two three four five", 40},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lines := Wrap(tc.in, tc.maxWidth, font12, m)
			if len(lines) == 0 {
				t.Fatal("expected at least one line")
			}
			for _, ln := range lines {
				if w := m.Width(ln, font12); w > tc.maxWidth {
					t.Errorf("line %q width %v exceeds budget %v", ln, w, tc.maxWidth)
				}
			}
		})
	}
}

func TestWrapEmptyInput(t *testing.T) {
	m := CourierMetrics{}
	for _, in := range []string{"", "   ", "\t\n", "​​"} {
		if lines := Wrap(in, 100, font12, m); len(lines) != 0 {
			t.Errorf("Wrap(%q) = %v, want zero lines", in, lines)
		}
	}
}

func TestWrapHardSplitsUnbreakableToken(t *testing.T) {
	m := CourierMetrics{}
	// 40 Thai base consonants at 7.2pt each is 288pt, far over the budget
	// and containing no whitespace to break at.
	in := strings.Repeat("ก", 40)
	maxWidth := 201.71
	lines := Wrap(in, maxWidth, font12, m)
	if len(lines) < 2 {
		t.Fatalf("expected hard split into >=2 lines, got %d", len(lines))
	}
	for _, ln := range lines {
		if w := m.Width(ln, font12); w > maxWidth {
			t.Errorf("hard-split line %q width %v exceeds %v", ln, w, maxWidth)
		}
	}
	if got := strings.Join(lines, ""); got != in {
		t.Errorf("hard split lost content: %q", got)
	}
}

func TestWrapKeepsWordBoundaries(t *testing.T) {
	m := CourierMetrics{}
	// 12 chars fit per line at 7.2pt and an 87pt budget
	lines := Wrap("good boy here", 87, font12, m)
	want := []string{"good boy", "here"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("Wrap = %v, want %v", lines, want)
	}
}

func TestWrapDeterministic(t *testing.T) {
	m := Estimate{}
	in := "deterministic wrapping must be restartable " + strings.Repeat("ก", 30)
	a := Wrap(in, 90, font12, m)
	b := Wrap(in, 90, font12, m)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Wrap not deterministic: %v vs %v", a, b)
	}
}
