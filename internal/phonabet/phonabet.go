// Package phonabet defines the typed Bopomofo symbol that the composer
// assembles syllables from.
//
// A Mandarin syllable decomposes into four positional slots: an initial
// consonant, a medial semivowel, a final vowel, and a tone mark. Every
// Bopomofo symbol belongs to exactly one of those four disjoint sets, so a
// symbol's category can always be derived from its value.
package phonabet

// Category classifies a Bopomofo symbol by the syllable slot it occupies.
type Category int

const (
	// None marks an empty or unrecognized symbol.
	None Category = iota
	// Initial is a syllable-initial consonant.
	Initial
	// Medial is a semivowel between the initial and the final.
	Medial
	// Final is the vowel (or vowel cluster) closing the syllable.
	Final
	// Tone is one of the five tone marks. Tone one is a plain space.
	Tone
)

// The four disjoint symbol sets accepted by the engine.
var (
	Initials = []string{
		"ㄅ", "ㄆ", "ㄇ", "ㄈ", "ㄉ", "ㄊ", "ㄋ", "ㄌ", "ㄍ", "ㄎ", "ㄏ",
		"ㄐ", "ㄑ", "ㄒ", "ㄓ", "ㄔ", "ㄕ", "ㄖ", "ㄗ", "ㄘ", "ㄙ",
	}
	Medials = []string{"ㄧ", "ㄨ", "ㄩ"}
	Finals  = []string{
		"ㄚ", "ㄛ", "ㄜ", "ㄝ", "ㄞ", "ㄟ", "ㄠ",
		"ㄡ", "ㄢ", "ㄣ", "ㄤ", "ㄥ", "ㄦ",
	}
	Tones = []string{" ", "ˊ", "ˇ", "ˋ", "˙"}
)

var categories = make(map[string]Category)

func init() {
	for _, s := range Initials {
		categories[s] = Initial
	}
	for _, s := range Medials {
		categories[s] = Medial
	}
	for _, s := range Finals {
		categories[s] = Final
	}
	for _, s := range Tones {
		categories[s] = Tone
	}
}

// Classify returns the category a symbol belongs to, or None.
func Classify(s string) Category {
	return categories[s]
}

// Phonabet holds at most one Bopomofo symbol together with its category.
// Constructing one from anything that is not a single recognized symbol
// yields the empty Phonabet; the invariant "empty value iff category None"
// holds at all times.
type Phonabet struct {
	value    string
	category Category
}

// New builds a Phonabet from a candidate symbol string.
func New(s string) Phonabet {
	c := Classify(s)
	if c == None {
		return Phonabet{}
	}
	return Phonabet{value: s, category: c}
}

// Value returns the stored symbol, or the empty string.
func (p Phonabet) Value() string { return p.value }

// Category returns the slot category of the stored symbol.
func (p Phonabet) Category() Category { return p.category }

// IsEmpty reports whether no symbol is stored.
func (p Phonabet) IsEmpty() bool { return p.value == "" }

// IsValid reports whether a recognized symbol is stored.
func (p Phonabet) IsValid() bool { return p.category != None }

// Clear empties the symbol and resets the category.
func (p *Phonabet) Clear() {
	p.value = ""
	p.category = None
}

// ReplaceIfEqual overwrites the stored symbol with repl when it currently
// equals old, re-deriving the category. Anything unrecognized empties the
// Phonabet, keeping the invariant.
func (p *Phonabet) ReplaceIfEqual(old, repl string) {
	if p.value != old {
		return
	}
	*p = New(repl)
}
