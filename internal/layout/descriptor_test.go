package layout

import (
	"testing"

	"github.com/screenply/screenply/internal/document"
)

func TestResolveIsTotal(t *testing.T) {
	types := []document.BlockType{
		document.SceneHeading, document.Action, document.Character,
		document.Dialogue, document.Parenthetical, document.Transition,
		document.Shot, document.Text,
	}
	for _, bt := range types {
		d := Resolve(bt)
		if d.WidthFraction <= 0 || d.WidthFraction > 1 {
			t.Errorf("%s: width fraction %v out of range", bt, d.WidthFraction)
		}
	}
}

func TestResolveUnknownFallsBackToAction(t *testing.T) {
	if got, want := Resolve(document.BlockType("montage")), Resolve(document.Action); got != want {
		t.Errorf("unknown type descriptor = %+v, want action descriptor %+v", got, want)
	}
}

func TestResolveIndents(t *testing.T) {
	cases := []struct {
		bt     document.BlockType
		indent float64
	}{
		{document.SceneHeading, 0},
		{document.Action, 0},
		{document.Character, 200},
		{document.Dialogue, 130},
		{document.Parenthetical, 165},
		{document.Transition, 0},
	}
	for _, tc := range cases {
		if got := Resolve(tc.bt).LeftIndent; got != tc.indent {
			t.Errorf("%s indent = %v, want %v", tc.bt, got, tc.indent)
		}
	}
	if Resolve(document.Transition).Align != AlignRight {
		t.Error("transition should be right-aligned")
	}
}

func TestResolveCounters(t *testing.T) {
	if Resolve(document.SceneHeading).Counter != CounterScene {
		t.Error("scene heading should advance the scene counter")
	}
	if Resolve(document.Dialogue).Counter != CounterDialogue {
		t.Error("dialogue should advance the dialogue counter")
	}
	if Resolve(document.Transition).Counter != CounterTransition {
		t.Error("transition should advance the transition counter")
	}
	for _, bt := range []document.BlockType{document.Action, document.Character, document.Parenthetical, document.Shot, document.Text} {
		if Resolve(bt).Counter != CounterNone {
			t.Errorf("%s should not advance a counter", bt)
		}
	}
}

func TestMergeParentheticalIntoDialogue(t *testing.T) {
	in := []document.Block{
		{ID: "1", Type: document.Character, Content: "ALEX"},
		{ID: "2", Type: document.Parenthetical, Content: "(sotto)"},
		{ID: "3", Type: document.Dialogue, Content: "hello"},
	}
	out := MergeParentheticals(in)
	if len(out) != 2 {
		t.Fatalf("merged length = %d, want 2", len(out))
	}
	got := out[1]
	if got.Type != document.Dialogue {
		t.Errorf("merged type = %s, want dialogue", got.Type)
	}
	if got.Content != "(sotto) hello" {
		t.Errorf("merged content = %q, want %q", got.Content, "(sotto) hello")
	}
	// the inputs are never mutated
	if in[1].Content != "(sotto)" || in[2].Content != "hello" {
		t.Error("MergeParentheticals mutated its input")
	}
}

func TestMergeLeavesTrailingParenthetical(t *testing.T) {
	in := []document.Block{
		{ID: "1", Type: document.Dialogue, Content: "hello"},
		{ID: "2", Type: document.Parenthetical, Content: "(beat)"},
	}
	out := MergeParentheticals(in)
	if len(out) != 2 {
		t.Fatalf("length = %d, want 2", len(out))
	}
	if out[1].Type != document.Parenthetical || out[1].Content != "(beat)" {
		t.Errorf("trailing parenthetical altered: %+v", out[1])
	}
}

func TestMergeLeavesParentheticalBeforeNonDialogue(t *testing.T) {
	in := []document.Block{
		{ID: "1", Type: document.Parenthetical, Content: "(quiet)"},
		{ID: "2", Type: document.Action, Content: "Silence."},
	}
	out := MergeParentheticals(in)
	if len(out) != 2 || out[0].Type != document.Parenthetical {
		t.Errorf("parenthetical before non-dialogue should stay: %+v", out)
	}
}

func TestMergeChainsDoNotCascade(t *testing.T) {
	// two parentheticals in a row: only the one adjacent to dialogue merges
	in := []document.Block{
		{ID: "1", Type: document.Parenthetical, Content: "(a)"},
		{ID: "2", Type: document.Parenthetical, Content: "(b)"},
		{ID: "3", Type: document.Dialogue, Content: "line"},
	}
	out := MergeParentheticals(in)
	if len(out) != 2 {
		t.Fatalf("length = %d, want 2", len(out))
	}
	if out[0].Content != "(a)" || out[1].Content != "(b) line" {
		t.Errorf("unexpected merge result: %+v", out)
	}
}
