// Package pinyin converts between Bopomofo readings and the supported
// romanizations.
//
// All conversions are ordered longest-match substring replacement over
// static tables: the replacement lists are arranged (or sorted at init)
// so that longer keys are rewritten before their prefixes. The keys in
// the data tables must stay non-overlapping once that rule is applied.
package pinyin

import (
	"sort"
	"strings"

	"zhuyind/internal/layout"
)

// Tones maps the ASCII tone keys shared by every romanization layout onto
// Bopomofo tone marks. 6 and 7 are legacy aliases kept from the Dachen
// number row; the space bar doubles as tone one.
var Tones = map[string]string{
	"1": " ",
	"2": "ˊ",
	"3": "ˇ",
	"4": "ˋ",
	"5": "˙",
	"6": "ˊ",
	"7": "˙",
	" ": " ",
}

// syllableTable returns the romanized-syllable-to-Bopomofo table for a
// romanization layout, or nil.
func syllableTable(l layout.Layout) map[string]string {
	switch l {
	case layout.HanyuPinyin:
		return hanyuTable
	case layout.SecondaryPinyin:
		return secondaryTable
	case layout.YalePinyin:
		return yaleTable
	case layout.HualuoPinyin:
		return hualuoTable
	case layout.UniversalPinyin:
		return universalTable
	case layout.WadeGilesPinyin:
		return wadeGilesTable
	}
	return nil
}

// Syllable resolves a complete romanized syllable into its Bopomofo form
// under the given romanization layout.
func Syllable(l layout.Layout, seq string) (string, bool) {
	v, ok := syllableTable(l)[seq]
	return v, ok
}

// ToHanyuPinyin rewrites a Bopomofo reading into numeric-toned Hanyu
// Pinyin. Tone one must be present as a trailing space to become "1".
func ToHanyuPinyin(reading string) string {
	for _, step := range bopomofoToPinyinSteps {
		reading = strings.ReplaceAll(reading, step[0], step[1])
	}
	return reading
}

// ToTextbookTone rewrites numeric-toned Hanyu Pinyin into the diacritic
// textbook form (neutral tone loses its digit entirely).
func ToTextbookTone(numeric string) string {
	for _, step := range textbookToneSteps {
		numeric = strings.ReplaceAll(numeric, step[0], step[1])
	}
	return numeric
}

// FrontNeutralTone moves a trailing neutral-tone mark to the head of a
// Bopomofo reading, the way textbooks print it.
func FrontNeutralTone(reading string) string {
	if strings.Contains(reading, "˙") {
		reading = "˙" + strings.TrimSuffix(reading, "˙")
	}
	return reading
}

// RestoreToneOne appends an explicit "1" to a Bopomofo reading that
// carries no other tone mark, for exports that want tone one spelled out.
func RestoreToneOne(reading string) string {
	if !strings.ContainsAny(reading, "ˊˇˋ˙") {
		reading += "1"
	}
	return reading
}

// Replacement key lists sorted longest-first, alphabetical within a
// length, so the left-to-right sweep in FromHanyuPinyin is deterministic.
var (
	hanyuKeysByLength []string
	toneKeysByLength  []string
)

func init() {
	hanyuKeysByLength = sortedKeysByLength(hanyuTable)
	toneKeysByLength = sortedKeysByLength(Tones)
}

func sortedKeysByLength(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	sort.SliceStable(keys, func(i, j int) bool {
		return len(keys[i]) > len(keys[j])
	})
	return keys
}

// FromHanyuPinyin rewrites a numeric-toned Hanyu Pinyin chain into
// Bopomofo. newToneOne is the mark substituted for the digit 1.
//
// Inputs containing "_", and inputs made purely of letters and digits
// (i.e. single un-joined syllables rather than separator-joined chains),
// are returned unchanged.
func FromHanyuPinyin(joined, newToneOne string) string {
	if strings.Contains(joined, "_") || !containsNonAlnum(joined) {
		return joined
	}
	for _, k := range hanyuKeysByLength {
		joined = strings.ReplaceAll(joined, k, hanyuTable[k])
	}
	for _, k := range toneKeysByLength {
		repl := Tones[k]
		if k == "1" {
			repl = newToneOne
		}
		joined = strings.ReplaceAll(joined, k, repl)
	}
	return joined
}

func containsNonAlnum(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		default:
			return true
		}
	}
	return false
}
