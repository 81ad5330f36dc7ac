package document

import (
	"strings"
	"testing"
)

const sampleJSON = `{
  "header": {"title": "The Park", "author": "A. Writer"},
  "blocks": [
    {"id": "1", "type": "scene-heading", "content": "EXT. PARK - DAY"},
    {"id": "2", "type": "action", "content": "A dog runs."},
    {"id": "3", "type": "character", "content": "ALEX"},
    {"id": "4", "type": "dialogue", "content": "Good boy!"}
  ]
}`

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if doc.Header.Title != "The Park" || doc.Header.Author != "A. Writer" {
		t.Errorf("header = %+v", doc.Header)
	}
	if len(doc.Blocks) != 4 {
		t.Fatalf("blocks = %d, want 4", len(doc.Blocks))
	}
	if doc.Blocks[0].Type != SceneHeading || doc.Blocks[3].Content != "Good boy!" {
		t.Errorf("blocks decoded wrong: %+v", doc.Blocks)
	}
}

func TestParseAcceptsUnknownBlockType(t *testing.T) {
	doc, err := Parse([]byte(`{"blocks": [{"id": "1", "type": "montage", "content": "x"}]}`))
	if err != nil {
		t.Fatalf("unknown type should pass validation: %v", err)
	}
	if doc.Blocks[0].Type != BlockType("montage") {
		t.Errorf("type = %q", doc.Blocks[0].Type)
	}
}

func TestParseRejectsInvalidDocuments(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"not json", "{nope"},
		{"missing blocks", `{"header": {"title": "x"}}`},
		{"block without id", `{"blocks": [{"type": "action", "content": "x"}]}`},
		{"empty id", `{"blocks": [{"id": "", "type": "action", "content": "x"}]}`},
		{"numeric content", `{"blocks": [{"id": "1", "type": "action", "content": 7}]}`},
		{"blocks not array", `{"blocks": {}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.in)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestHeaderWithDefaults(t *testing.T) {
	h := Header{}.WithDefaults()
	if h.Title != DefaultTitle {
		t.Errorf("title = %q, want %q", h.Title, DefaultTitle)
	}
	h = Header{Title: "  "}.WithDefaults()
	if h.Title != DefaultTitle {
		t.Errorf("blank title = %q, want %q", h.Title, DefaultTitle)
	}
	h = Header{Title: "Kept"}.WithDefaults()
	if h.Title != "Kept" {
		t.Errorf("title overwritten: %q", h.Title)
	}
}

func TestSanitizeTitle(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"The Park", "the_park"},
		{"  spaced   out  ", "spaced_out"},
		{"Mixed CASE 42", "mixed_case_42"},
		{"ฝน Rain", "ฝน_rain"},
		{"สวัสดี", "สวัสดี"},
		{"!!!", "untitled"},
		{"", "untitled"},
		{"dots.and/slashes", "dotsandslashes"},
		{"trailing punctuation!", "trailing_punctuation"},
	}
	for _, tc := range cases {
		if got := SanitizeTitle(tc.in); got != tc.want {
			t.Errorf("SanitizeTitle(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitizeTitleNeverEmitsSeparators(t *testing.T) {
	for _, in := range []string{"a b", "a  b", "a\tb", " a "} {
		got := SanitizeTitle(in)
		if strings.HasPrefix(got, "_") || strings.HasSuffix(got, "_") {
			t.Errorf("SanitizeTitle(%q) = %q has edge separator", in, got)
		}
	}
}
