package composer

import (
	"testing"

	"zhuyind/internal/layout"
	"zhuyind/internal/phonabet"
)

func compose(t *testing.T, l layout.Layout, sequence string) *Composer {
	t.Helper()
	c := New("", l, false)
	c.ReceiveSequence(sequence, false)
	return c
}

func checkSequences(t *testing.T, l layout.Layout, cases [][2]string) {
	t.Helper()
	c := New("", l, false)
	for _, tc := range cases {
		if got := c.ReceiveSequence(tc[0], false); got != tc[1] {
			t.Errorf("%v: %q -> %q, want %q", l, tc[0], got, tc[1])
		}
	}
}

func TestDachenSequences(t *testing.T) {
	checkSequences(t, layout.Dachen, [][2]string{
		{" ", " "},
		{"18 ", "ㄅㄚ "},
		{"m,4", "ㄩㄝˋ"},
		{"5j/ ", "ㄓㄨㄥ "},
		{"fu.", "ㄑㄧㄡ"},
		{"g0 ", "ㄕㄢ "},
		{"xup6", "ㄌㄧㄣˊ"},
		{"xu;6", "ㄌㄧㄤˊ"},
		{"z/", "ㄈㄥ"},
		{"tjo ", "ㄔㄨㄟ "},
		{"284", "ㄉㄚˋ"},
		{"2u4", "ㄉㄧˋ"},
		{"hl3", "ㄘㄠˇ"},
		{"5 ", "ㄓ "},
		{"193", "ㄅㄞˇ"},
	})
}

func TestHsuSequences(t *testing.T) {
	checkSequences(t, layout.Hsu, [][2]string{
		// j is ㄐ by key but a lone ㄐ snaps to ㄓ once a tone-family key
		// confirms it stands alone.
		{"j", "ㄓ"},
		{"jj", "ㄓˋ"},
		{"jxld", "ㄓㄨㄥˊ"},
		// ㄕ+ㄧ reconciles to ㄒ.
		{"ce", "ㄒㄧ"},
		{"ced", "ㄒㄧˊ"},
		{"gm ", "ㄍㄢ "},
		// d/f/s/j act as plain initials while nothing is pronounceable.
		{"jdfj", "ㄓˋ"},
	})
}

func TestETen26Sequences(t *testing.T) {
	checkSequences(t, layout.ETen26, [][2]string{
		{"ba ", "ㄅㄚ "},
		// ㄍ with ㄩ reconciles to ㄑ.
		{"vu", "ㄑㄩ"},
		// The ㄍ+ㄧ pivot is owned by the ETen26 handler itself.
		{"ve", "ㄑㄧ"},
		{"ge", "ㄐㄧ"},
		{"gf", "ㄓˊ"},
		// A tone on a lone ㄆ proves the p key meant ㄡ.
		{"pf", "ㄡˊ"},
		{"d", "ㄉ"},
	})
}

func TestDachen26Sequences(t *testing.T) {
	checkSequences(t, layout.Dachen26, [][2]string{
		// q/t/w first yield their letter-row reading, repeating toggles to
		// the number-row phoneme.
		{"q", "ㄆ"},
		{"qq", "ㄅ"},
		{"w", "ㄊ"},
		{"ww", "ㄉ"},
		{"tt", "ㄓ"},
		{"ttjn ", "ㄓㄨㄥ "},
		{"auu ", "ㄇㄚ "},
		{"aue", "ㄇㄧˊ"},
		// m picks ㄩ after palatals, ㄡ otherwise, and swaps on repeat.
		{"rm", "ㄐㄩ"},
		{"am", "ㄇㄡ"},
		{"rmm", "ㄐㄡ"},
		{"e", "ㄍ"},
	})
}

func TestStarlightSequences(t *testing.T) {
	checkSequences(t, layout.Starlight, [][2]string{
		{"jug2", "ㄓㄨㄥˊ"},
		// A digit tone on a lone ㄈ proves the f key meant ㄠ.
		{"f8", "ㄠˇ"},
		{"ba1", "ㄅㄚ "},
	})
}

func TestAlvinLiuSequences(t *testing.T) {
	checkSequences(t, layout.AlvinLiu, [][2]string{
		{"zu", "ㄗㄨ"},
		{"af", "ㄚˊ"},
		{"l", "ㄦ"},
		// A final arriving after ㄦ reveals it was the ㄌ reading.
		{"la", "ㄌㄚ"},
		{"qf", "ㄔˊ"},
		{"d", "ㄉ"},
	})
}

func TestPinyinSequences(t *testing.T) {
	c := New("", layout.HanyuPinyin, false)
	if got := c.ReceiveSequence("zhong1", true); got != "ㄓㄨㄥ " {
		t.Fatalf("romanized zhong1 -> %q", got)
	}
	if got := c.Composition(false, false); got != "ㄓㄨㄥ" {
		t.Fatalf("Bopomofo composition = %q", got)
	}
	if got := c.Composition(true, false); got != "zhong1" {
		t.Fatalf("numeric Pinyin composition = %q", got)
	}
	if got := c.Composition(true, true); got != "zhōng" {
		t.Fatalf("textbook Pinyin composition = %q", got)
	}
}

func TestPinyinKeyByKey(t *testing.T) {
	c := New("", layout.HanyuPinyin, false)
	for _, k := range "zhong" {
		c.ReceiveKeyRune(k)
	}
	if got := c.RomajiBuffer(); got != "zhong" {
		t.Fatalf("buffer = %q", got)
	}
	if got := c.Value(); got != "ㄓㄨㄥ" {
		t.Fatalf("value before tone = %q", got)
	}
	c.ReceiveKey("1")
	if got := c.Value(); got != "ㄓㄨㄥ " {
		t.Fatalf("value after tone one = %q", got)
	}
	if got := c.InlineDisplay(false); got != "zhong1" {
		t.Fatalf("inline display = %q", got)
	}

	// The buffer survives each incremental resolution.
	if got := c.RomajiBuffer(); got != "zhong" {
		t.Fatalf("buffer after tone = %q", got)
	}
}

func TestPinyinLegacyToneKeys(t *testing.T) {
	c := New("", layout.HanyuPinyin, false)
	if got := c.ReceiveSequence("ma6", false); got != "ㄇㄚˊ" {
		t.Fatalf("legacy tone 6 -> %q", got)
	}
	if got := c.ReceiveSequence("ma7", false); got != "ㄇㄚ˙" {
		t.Fatalf("legacy tone 7 -> %q", got)
	}
	if got := c.ReceiveSequence("ma ", false); got != "ㄇㄚ " {
		t.Fatalf("space as tone one -> %q", got)
	}
}

func TestPinyinBufferCap(t *testing.T) {
	c := New("", layout.HanyuPinyin, false)
	for _, k := range "aaaaaaaaaa" {
		c.ReceiveKeyRune(k)
	}
	if got := len(c.RomajiBuffer()); got != 6 {
		t.Fatalf("Hanyu buffer should cap at 6, got %d", got)
	}

	wg := New("", layout.WadeGilesPinyin, false)
	for _, k := range "aaaaaaaaaa" {
		wg.ReceiveKeyRune(k)
	}
	if got := len(wg.RomajiBuffer()); got != 7 {
		t.Fatalf("Wade-Giles buffer should cap at 7, got %d", got)
	}
}

func TestInlineDisplayRewritesUmlaut(t *testing.T) {
	c := New("", layout.HanyuPinyin, false)
	c.ReceiveKey("l")
	c.ReceiveKey("v")
	c.ReceiveKey("3")
	if got := c.InlineDisplay(false); got != "lü3" {
		t.Fatalf("inline display = %q", got)
	}
}

func TestOtherRomanizations(t *testing.T) {
	cases := []struct {
		l    layout.Layout
		seq  string
		want string
	}{
		{layout.SecondaryPinyin, "jung", "ㄓㄨㄥ"},
		{layout.YalePinyin, "jung", "ㄓㄨㄥ"},
		{layout.HualuoPinyin, "jhong", "ㄓㄨㄥ"},
		{layout.UniversalPinyin, "jhong", "ㄓㄨㄥ"},
		{layout.WadeGilesPinyin, "chung", "ㄓㄨㄥ"},
		{layout.WadeGilesPinyin, "ch'ung", "ㄔㄨㄥ"},
	}
	for _, tc := range cases {
		c := New("", tc.l, false)
		if got := c.ReceiveSequence(tc.seq, true); got != tc.want {
			t.Errorf("%v: %q -> %q, want %q", tc.l, tc.seq, got, tc.want)
		}
	}
}

func TestBackspaceOrder(t *testing.T) {
	c := compose(t, layout.Dachen, "5j/3")
	steps := []string{"ㄓㄨㄥ", "ㄓㄨ", "ㄓ", ""}
	for i, want := range steps {
		c.DoBackspace()
		if got := c.Value(); got != want {
			t.Fatalf("backspace step %d: %q, want %q", i, got, want)
		}
	}
	// Draining an empty composer stays a no-op.
	c.DoBackspace()
	if got := c.Value(); got != "" {
		t.Fatalf("backspace on empty composer: %q", got)
	}
}

func TestBackspaceInPinyinMode(t *testing.T) {
	c := New("", layout.HanyuPinyin, false)
	c.ReceiveSequence("ma3", false)
	c.DoBackspace()
	if c.HasTone(false) {
		t.Fatal("tone should go first")
	}
	if got := c.RomajiBuffer(); got != "ma" {
		t.Fatalf("buffer after tone removal = %q", got)
	}
	c.DoBackspace()
	if got := c.RomajiBuffer(); got != "m" {
		t.Fatalf("buffer after one more backspace = %q", got)
	}
	c.DoBackspace()
	if got := c.RomajiBuffer(); got != "" {
		t.Fatalf("buffer should drain, got %q", got)
	}
}

func TestClearKeepsSettings(t *testing.T) {
	c := New("", layout.Hsu, true)
	c.ReceiveSequence("jxld", false)
	c.Clear()
	if !c.IsEmpty() || c.Value() != "" {
		t.Fatal("clear should empty everything")
	}
	if c.Layout() != layout.Hsu || !c.CorrectionEnabled() {
		t.Fatal("clear must not touch layout or correction")
	}
	// History independence: a cleared composer behaves like a fresh one.
	if got := c.ReceiveSequence("jxld", false); got != "ㄓㄨㄥˊ" {
		t.Fatalf("replay after clear = %q", got)
	}
}

func TestCorrectionRules(t *testing.T) {
	cases := []struct {
		name     string
		sequence string
		want     string
	}{
		// ㄅ/ㄆ/ㄇ/ㄈ shed a ㄨ medial before ㄥ.
		{"labial drops medial before eng", "1j/", "ㄅㄥ"},
		// ㄋ/ㄌ shed a ㄨ medial before ㄟ.
		{"nl drops medial before ei", "sjo", "ㄋㄟ"},
		// Sibilant with ㄧ medial drops the medial before a final.
		{"sibilant drops yi", "5u8", "ㄓㄚ"},
		// Sibilant with ㄩ medial turns palatal before a final.
		{"sibilant turns palatal", "5m/", "ㄐㄩㄥ"},
		// ㄨ after ㄝ really meant ㄩ.
		{"wu after eh is yu", ",j", "ㄩㄝ"},
		// ㄜ after a ㄧ medial really meant ㄝ.
		{"e after yi is eh", "uk", "ㄧㄝ"},
	}
	for _, tc := range cases {
		c := New("", layout.Dachen, true)
		if got := c.ReceiveSequence(tc.sequence, false); got != tc.want {
			t.Errorf("%s: %q -> %q, want %q", tc.name, tc.sequence, got, tc.want)
		}
	}
}

func TestCorrectionDisabledIsAdditive(t *testing.T) {
	c := New("", layout.Dachen, false)
	for _, sym := range []string{"ㄓ", "ㄧ", "ㄚ", "ㄐ", "ˊ"} {
		c.ReceiveKeyFromPhonabet(sym)
	}
	// Each slot holds exactly the last symbol of its category.
	if got := c.Value(); got != "ㄐㄧㄚˊ" {
		t.Fatalf("additive state = %q", got)
	}
}

func TestSlotCategoryInvariant(t *testing.T) {
	sequences := []struct {
		l   layout.Layout
		seq string
	}{
		{layout.Dachen, "5j/ "},
		{layout.Dachen, "m,4"},
		{layout.Hsu, "jxld"},
		{layout.ETen26, "pf"},
		{layout.Dachen26, "ttjn "},
		{layout.Starlight, "f8"},
		{layout.AlvinLiu, "la"},
	}
	for _, tc := range sequences {
		c := compose(t, tc.l, tc.seq)
		checkSlot := func(p phonabet.Phonabet, want phonabet.Category) {
			if p.IsEmpty() {
				return
			}
			if p.Category() != want {
				t.Errorf("%v %q: slot %q holds category %v, want %v",
					tc.l, tc.seq, p.Value(), p.Category(), want)
			}
		}
		checkSlot(c.initial, phonabet.Initial)
		checkSlot(c.medial, phonabet.Medial)
		checkSlot(c.final, phonabet.Final)
		checkSlot(c.tone, phonabet.Tone)

		want := c.initial.Value() + c.medial.Value() + c.final.Value() + c.tone.Value()
		if got := c.Value(); got != want {
			t.Errorf("%v %q: Value %q != slot concatenation %q", tc.l, tc.seq, got, want)
		}
	}
}

func TestPinyinRoundTrip(t *testing.T) {
	sequences := []string{"5j/ ", "18 ", "m,4", "xup6", "hl3", "tjo "}
	for _, seq := range sequences {
		src := compose(t, layout.Dachen, seq)
		numeric := src.Composition(true, false)

		back := New("", layout.HanyuPinyin, false)
		back.ReceiveSequence(numeric, false)
		if got, want := back.Value(), src.Value(); got != want {
			t.Errorf("round trip %q via %q: %q != %q", seq, numeric, got, want)
		}
	}
}

func TestQueriesAndCounters(t *testing.T) {
	c := compose(t, layout.Dachen, "5j/ ")
	if got := c.Count(false); got != 3 {
		t.Fatalf("Count(false) = %d", got)
	}
	if got := c.Count(true); got != 4 {
		t.Fatalf("Count(true) = %d", got)
	}
	if !c.IsPronounceable() || !c.HasTone(false) || c.HasTone(true) {
		t.Fatal("predicate mismatch on a full syllable")
	}
	if got := c.PhonabetKeyForQuery(true); got != "ㄓㄨㄥ" {
		t.Fatalf("query key = %q", got)
	}

	toneOnly := compose(t, layout.Dachen, "3")
	if !toneOnly.HasTone(true) || toneOnly.IsPronounceable() {
		t.Fatal("a lone tone is exclusive and unpronounceable")
	}
	if got := toneOnly.PhonabetKeyForQuery(true); got != "" {
		t.Fatalf("unpronounceable query should be empty, got %q", got)
	}
	if got := toneOnly.PhonabetKeyForQuery(false); got != "ˇ" {
		t.Fatalf("non-pronounceable-only query = %q", got)
	}
}

func TestFixValue(t *testing.T) {
	c := compose(t, layout.Dachen, "e8")
	c.FixValue("ㄍ", "ㄑ")
	if got := c.Value(); got != "ㄑㄚ" {
		t.Fatalf("FixValue rewrite = %q", got)
	}
	c.FixValue("ㄎ", "ㄏ")
	if got := c.Value(); got != "ㄑㄚ" {
		t.Fatalf("FixValue miss must not change state, got %q", got)
	}
}

func TestInputValidityCheck(t *testing.T) {
	c := New("", layout.Dachen, false)
	if !c.InputValidityCheck('1') || !c.InputValidityCheck(' ') {
		t.Fatal("Dachen keys should validate")
	}
	if c.InputValidityCheck('A') {
		t.Fatal("uppercase is not a Dachen key")
	}
	if c.InputValidityCheck('ㄅ') {
		t.Fatal("non-ASCII input never validates")
	}

	c.SetLayout(layout.WadeGilesPinyin)
	if !c.InputValidityCheck('\'') {
		t.Fatal("Wade-Giles accepts the apostrophe")
	}
	c.SetLayout(layout.HanyuPinyin)
	if c.InputValidityCheck('\'') {
		t.Fatal("Hanyu does not accept the apostrophe")
	}
}

func TestTextbookBopomofo(t *testing.T) {
	c := New("", layout.Dachen, false)
	c.ReceiveSequence("2k7", false) // ㄉㄜ˙
	if got := c.Composition(false, true); got != "˙ㄉㄜ" {
		t.Fatalf("textbook Bopomofo = %q", got)
	}
	c.ReceiveSequence("5j/ ", false)
	if got := c.Composition(false, true); got != "ㄓㄨㄥ" {
		t.Fatalf("tone one leaves no mark in textbook Bopomofo, got %q", got)
	}
}

func TestSeedKey(t *testing.T) {
	c := New("1", layout.Dachen, false)
	if got := c.Value(); got != "ㄅ" {
		t.Fatalf("seed key should be ingested, got %q", got)
	}
}
