package phonabet

import "testing"

func TestClassification(t *testing.T) {
	cases := []struct {
		symbol string
		want   Category
	}{
		{"ㄅ", Initial},
		{"ㄙ", Initial},
		{"ㄧ", Medial},
		{"ㄨ", Medial},
		{"ㄩ", Medial},
		{"ㄚ", Final},
		{"ㄦ", Final},
		{" ", Tone},
		{"ˊ", Tone},
		{"˙", Tone},
		{"", None},
		{"x", None},
		{"ㄅㄚ", None},
	}
	for _, tc := range cases {
		p := New(tc.symbol)
		if p.Category() != tc.want {
			t.Errorf("New(%q).Category() = %v, want %v", tc.symbol, p.Category(), tc.want)
		}
		if tc.want == None {
			if !p.IsEmpty() || p.IsValid() {
				t.Errorf("New(%q) should be empty and invalid", tc.symbol)
			}
		} else if p.Value() != tc.symbol {
			t.Errorf("New(%q).Value() = %q", tc.symbol, p.Value())
		}
	}
}

func TestSetsAreDisjoint(t *testing.T) {
	seen := make(map[string]bool)
	for _, set := range [][]string{Initials, Medials, Finals, Tones} {
		for _, s := range set {
			if seen[s] {
				t.Fatalf("symbol %q appears in more than one set", s)
			}
			seen[s] = true
		}
	}
	if got := len(seen); got != 21+3+13+5 {
		t.Fatalf("expected 42 distinct symbols, got %d", got)
	}
}

func TestClear(t *testing.T) {
	p := New("ㄅ")
	p.Clear()
	if !p.IsEmpty() || p.Category() != None {
		t.Fatalf("cleared Phonabet should be empty with category None")
	}
}

func TestReplaceIfEqual(t *testing.T) {
	p := New("ㄍ")
	p.ReplaceIfEqual("ㄎ", "ㄑ")
	if p.Value() != "ㄍ" {
		t.Fatalf("mismatched old value must not replace, got %q", p.Value())
	}

	p.ReplaceIfEqual("ㄍ", "ㄜ")
	if p.Value() != "ㄜ" || p.Category() != Final {
		t.Fatalf("replace should re-classify: got %q (%v)", p.Value(), p.Category())
	}

	p.ReplaceIfEqual("ㄜ", "garbage")
	if !p.IsEmpty() || p.Category() != None {
		t.Fatalf("replacing with an unrecognized symbol must empty the Phonabet")
	}
}
