package layout

import "testing"

func TestParseRoundTrip(t *testing.T) {
	for _, l := range All() {
		got, err := Parse(l.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", l.String(), err)
		}
		if got != l {
			t.Fatalf("Parse(%q) = %v, want %v", l.String(), got, l)
		}
	}
	if _, err := Parse("qwerty"); err == nil {
		t.Fatal("Parse of an unknown name should fail")
	}
	if got, err := Parse("  HanyuPinyin "); err != nil || got != HanyuPinyin {
		t.Fatalf("Parse should trim and lowercase, got %v, %v", got, err)
	}
}

func TestKindPredicates(t *testing.T) {
	if Dachen.IsPinyin() || Dachen.IsDynamic() {
		t.Fatal("Dachen is a static Bopomofo layout")
	}
	for _, l := range []Layout{Dachen26, ETen26, Hsu, Starlight, AlvinLiu} {
		if !l.IsDynamic() || l.IsPinyin() {
			t.Fatalf("%v should be dynamic Bopomofo", l)
		}
	}
	for _, l := range []Layout{HanyuPinyin, SecondaryPinyin, YalePinyin, HualuoPinyin, UniversalPinyin, WadeGilesPinyin} {
		if !l.IsPinyin() || l.IsDynamic() {
			t.Fatalf("%v should be a romanization", l)
		}
	}
}

func TestPhonabetLookup(t *testing.T) {
	cases := []struct {
		l    Layout
		key  string
		want string
	}{
		{Dachen, "1", "ㄅ"},
		{Dachen, "8", "ㄚ"},
		{Dachen, " ", " "},
		{ETen, "b", "ㄅ"},
		{IBM, "1", "ㄅ"},
		{MiTAC, "b", "ㄅ"},
		{Seigyou, "2", "ㄅ"},
		{FakeSeigyou, "2", "ㄅ"},
		{Hsu, "b", "ㄅ"},
		{Dachen26, "q", "ㄅ"},
		{ETen26, "b", "ㄅ"},
		{Starlight, "b", "ㄅ"},
		{AlvinLiu, "b", "ㄅ"},
	}
	for _, tc := range cases {
		got, ok := tc.l.Phonabet(tc.key)
		if !ok || got != tc.want {
			t.Errorf("%v.Phonabet(%q) = %q, %v; want %q", tc.l, tc.key, got, ok, tc.want)
		}
	}

	if _, ok := HanyuPinyin.Phonabet("a"); ok {
		t.Fatal("romanizations have no single-key table")
	}
}

func TestAcceptsKey(t *testing.T) {
	if !Dachen.AcceptsKey("1") || Dachen.AcceptsKey("~") {
		t.Fatal("Dachen accepts exactly its table keys")
	}
	if !Hsu.AcceptsKey(" ") || Hsu.AcceptsKey("1") {
		t.Fatal("Hsu accepts letters and space only")
	}
	if !Starlight.AcceptsKey("0") {
		t.Fatal("Starlight accepts digit tones")
	}
	for _, key := range []string{"a", "z", "1", "7", " "} {
		if !HanyuPinyin.AcceptsKey(key) {
			t.Fatalf("HanyuPinyin should accept %q", key)
		}
	}
	if HanyuPinyin.AcceptsKey("'") {
		t.Fatal("the apostrophe is Wade-Giles only")
	}
	if !WadeGilesPinyin.AcceptsKey("'") {
		t.Fatal("Wade-Giles accepts the apostrophe")
	}
	if HanyuPinyin.AcceptsKey("") || Dachen.AcceptsKey("") {
		t.Fatal("the empty key is never accepted")
	}
}
