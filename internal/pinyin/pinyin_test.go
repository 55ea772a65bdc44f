package pinyin

import (
	"testing"

	"zhuyind/internal/layout"
)

func TestSyllable(t *testing.T) {
	cases := []struct {
		l    layout.Layout
		seq  string
		want string
	}{
		{layout.HanyuPinyin, "zhong", "ㄓㄨㄥ"},
		{layout.HanyuPinyin, "biang", "ㄅㄧㄤ"},
		{layout.HanyuPinyin, "lv", "ㄌㄩ"},
		{layout.SecondaryPinyin, "jung", "ㄓㄨㄥ"},
		{layout.YalePinyin, "jr", "ㄓ"},
		{layout.HualuoPinyin, "shih", "ㄕ"},
		{layout.UniversalPinyin, "zu", "ㄗㄨ"},
		{layout.WadeGilesPinyin, "ch'ung", "ㄔㄨㄥ"},
	}
	for _, tc := range cases {
		got, ok := Syllable(tc.l, tc.seq)
		if !ok || got != tc.want {
			t.Errorf("Syllable(%v, %q) = %q, %v; want %q", tc.l, tc.seq, got, ok, tc.want)
		}
	}

	if _, ok := Syllable(layout.HanyuPinyin, "zzz"); ok {
		t.Fatal("unknown syllables must miss")
	}
	if _, ok := Syllable(layout.Dachen, "zhong"); ok {
		t.Fatal("Bopomofo layouts have no syllable table")
	}
}

func TestToHanyuPinyin(t *testing.T) {
	cases := []struct{ in, want string }{
		{"ㄓㄨㄥ ", "zhong1"},
		{"ㄅㄚ ", "ba1"},
		{"ㄩㄝˋ", "yue4"},
		{"ㄇㄚ˙", "ma5"},
		{"ㄌㄧㄣˊ", "lin2"},
		{"ㄦˋ", "er4"},
		{"ㄋㄩㄝˋ", "nve4"},
	}
	for _, tc := range cases {
		if got := ToHanyuPinyin(tc.in); got != tc.want {
			t.Errorf("ToHanyuPinyin(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestToTextbookTone(t *testing.T) {
	cases := []struct{ in, want string }{
		{"zhong1", "zhōng"},
		{"ma3", "mǎ"},
		{"ma5", "ma"},
		{"lv4", "lǜ"},
		{"liang2", "liáng"},
		{"nv3", "nǚ"},
	}
	for _, tc := range cases {
		if got := ToTextbookTone(tc.in); got != tc.want {
			t.Errorf("ToTextbookTone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFrontNeutralTone(t *testing.T) {
	if got := FrontNeutralTone("ㄉㄜ˙"); got != "˙ㄉㄜ" {
		t.Fatalf("FrontNeutralTone = %q", got)
	}
	if got := FrontNeutralTone("ㄇㄚˇ"); got != "ㄇㄚˇ" {
		t.Fatalf("readings without a neutral tone are untouched, got %q", got)
	}
}

func TestRestoreToneOne(t *testing.T) {
	if got := RestoreToneOne("ㄓㄨㄥ"); got != "ㄓㄨㄥ1" {
		t.Fatalf("RestoreToneOne = %q", got)
	}
	if got := RestoreToneOne("ㄇㄚˇ"); got != "ㄇㄚˇ" {
		t.Fatalf("toned readings are untouched, got %q", got)
	}
}

func TestFromHanyuPinyin(t *testing.T) {
	if got := FromHanyuPinyin("zhong1-guo2", ""); got != "ㄓㄨㄥ-ㄍㄨㄛˊ" {
		t.Fatalf("FromHanyuPinyin chain = %q", got)
	}
	if got := FromHanyuPinyin("zhong1-guo2", "1"); got != "ㄓㄨㄥ1-ㄍㄨㄛˊ" {
		t.Fatalf("FromHanyuPinyin with explicit tone one = %q", got)
	}
	// Purely alphanumeric inputs are un-joined single syllables and pass
	// through untouched, as do underscore carriers.
	if got := FromHanyuPinyin("zhong1", ""); got != "zhong1" {
		t.Fatalf("single syllable should pass through, got %q", got)
	}
	if got := FromHanyuPinyin("_zhong1-a", ""); got != "_zhong1-a" {
		t.Fatalf("underscore input should pass through, got %q", got)
	}
}

func TestReplacementOrderIsLongestFirst(t *testing.T) {
	for i := 1; i < len(hanyuKeysByLength); i++ {
		if len(hanyuKeysByLength[i-1]) < len(hanyuKeysByLength[i]) {
			t.Fatalf("keys not sorted by descending length at %d", i)
		}
	}
}
