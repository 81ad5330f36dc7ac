package text

import "testing"

func TestContainsThai(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"empty", "", false},
		{"latin", "EXT. PARK - DAY", false},
		{"thai", "สวัสดี", true},
		{"mixed", "INT. ห้องนอน - NIGHT", true},
		{"block start", "ก", true},
		{"block end", "๛", true},
		{"just outside", "\u0dff\u0e80", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ContainsThai(tc.in); got != tc.want {
				t.Errorf("ContainsThai(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeComposesAndStrips(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"nfc composition", "e\u0301", "\u00e9"},
		{"zero width space", "a\u200bb", "ab"},
		{"zwnj and zwj", "a\u200c\u200db", "ab"},
		{"bom", "\ufeffhello", "hello"},
		{"thai untouched", "สวัสดี", "สวัสดี"},
		{"plain", "hello world", "hello world"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"e\u0301 plus \u200b marks \ufeff",
		"สวัสดีครับ",
		"mixed ไทย and latin",
		"already normal",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestUppercase(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"ext. park - day", "EXT. PARK - DAY"},
		{"สวัสดี", "สวัสดี"},
		{"fade ไทย out", "fade ไทย out"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Uppercase(tc.in); got != tc.want {
			t.Errorf("Uppercase(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
