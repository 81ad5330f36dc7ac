package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	p := Defaults()
	if p.Page.WidthPt != 595.28 || p.Page.HeightPt != 841.89 {
		t.Errorf("page = %+v, want A4 in points", p.Page)
	}
	if p.Page.MarginLeftPt != 85 || p.Page.MarginRightPt != 68 {
		t.Errorf("margins = %+v", p.Page)
	}
	if p.Font.SizePt != 12 || p.Font.Leading != 1.2 {
		t.Errorf("font = %+v", p.Font)
	}
}

func TestLoadPartialOverlayKeepsDefaults(t *testing.T) {
	path := writeProfile(t, "font:\n  size_pt: 11\nlogging:\n  level: debug\n")
	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Font.SizePt != 11 {
		t.Errorf("size = %v, want 11", p.Font.SizePt)
	}
	if p.Font.Leading != 1.2 {
		t.Errorf("leading = %v, default lost", p.Font.Leading)
	}
	if p.Page.WidthPt != 595.28 {
		t.Errorf("width = %v, default lost", p.Page.WidthPt)
	}
	if p.Logging.Level != "debug" {
		t.Errorf("logging = %+v", p.Logging)
	}
}

func TestLoadRejectsInvalidProfiles(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"bad yaml", "page: [not a map\n"},
		{"zero page", "page:\n  width_pt: 0\n"},
		{"negative font", "font:\n  size_pt: -3\n"},
		{"margins eat the page", "page:\n  margin_left_pt: 400\n  margin_right_pt: 400\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(writeProfile(t, tc.content)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestPaginationOptions(t *testing.T) {
	path := writeProfile(t, "page:\n  margin_top_pt: 72\nfont:\n  leading: 1.5\n")
	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	o := p.PaginationOptions()
	if o.MarginTop != 72 || o.Leading != 1.5 {
		t.Errorf("options = %+v", o)
	}
	if o.FontFamily != "Courier" {
		t.Errorf("font family = %q, want Courier", o.FontFamily)
	}
}
