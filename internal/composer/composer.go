// Package composer implements the stateful syllable assembly area: four
// typed slots (initial, medial, final, tone) plus a romanization buffer,
// fed one keystroke at a time.
//
// The contract is total: any input either advances the slots or is a
// no-op. Unrecognized keys are silently dropped and there are no error
// returns anywhere in the package.
package composer

import (
	"strings"

	"zhuyind/internal/layout"
	"zhuyind/internal/phonabet"
	"zhuyind/internal/pinyin"
)

// Composer assembles one Mandarin syllable from keystrokes.
//
// A Composer belongs to a single input context; it is not safe for
// concurrent use. The static tables it reads are immutable and shared.
type Composer struct {
	initial phonabet.Phonabet
	medial  phonabet.Phonabet
	final   phonabet.Phonabet
	tone    phonabet.Phonabet

	// romajiBuffer holds raw keystrokes in romanization mode. In Bopomofo
	// modes it mirrors the three phoneme slots as toneless Pinyin, which
	// IsEmpty relies on.
	romajiBuffer string

	arrangement layout.Layout

	// correctionEnabled turns on the silent repair of illegal or
	// colloquial phoneme combinations.
	correctionEnabled bool
}

// New creates a Composer on the given arrangement and feeds it the seed
// key, which may be empty.
func New(seed string, arrange layout.Layout, correction bool) *Composer {
	c := &Composer{arrangement: arrange, correctionEnabled: correction}
	c.ReceiveKey(seed)
	return c
}

// Layout returns the current keyboard arrangement.
func (c *Composer) Layout() layout.Layout { return c.arrangement }

// SetLayout switches the keyboard arrangement without clearing the slots.
func (c *Composer) SetLayout(arrange layout.Layout) { c.arrangement = arrange }

// CorrectionEnabled reports whether combination correction is active.
func (c *Composer) CorrectionEnabled() bool { return c.correctionEnabled }

// SetCorrection toggles combination correction.
func (c *Composer) SetCorrection(enabled bool) { c.correctionEnabled = enabled }

// IsPinyinMode reports whether the current arrangement is a romanization.
func (c *Composer) IsPinyinMode() bool { return c.arrangement.IsPinyin() }

// RomajiBuffer returns the pending romanization keystrokes.
func (c *Composer) RomajiBuffer() string { return c.romajiBuffer }

// Value returns the raw slot concatenation in initial-medial-final-tone
// order. Tone one appears as a trailing space here; use Composition for
// display forms.
func (c *Composer) Value() string {
	return c.initial.Value() + c.medial.Value() + c.final.Value() + c.tone.Value()
}

// Count returns the number of occupied slots, counting the tone slot only
// when withTone is set.
func (c *Composer) Count(withTone bool) int {
	n := 0
	if withTone && c.tone.IsValid() {
		n++
	}
	if c.initial.IsValid() {
		n++
	}
	if c.medial.IsValid() {
		n++
	}
	if c.final.IsValid() {
		n++
	}
	return n
}

// IsEmpty reports whether nothing is buffered. In Bopomofo modes the
// romaji mirror tracks the three phoneme slots, so checking it together
// with the tone covers all four.
func (c *Composer) IsEmpty() bool {
	if !c.IsPinyinMode() {
		return c.tone.IsEmpty() && c.romajiBuffer == ""
	}
	return c.initial.IsEmpty() && c.medial.IsEmpty() &&
		c.final.IsEmpty() && c.tone.IsEmpty()
}

// IsPronounceable reports whether at least one phoneme slot is occupied.
func (c *Composer) IsPronounceable() bool {
	return !c.final.IsEmpty() || !c.medial.IsEmpty() || !c.initial.IsEmpty()
}

// HasTone reports whether the tone slot is occupied; with exclusive set it
// additionally requires the three phoneme slots to be empty.
func (c *Composer) HasTone(exclusive bool) bool {
	if exclusive {
		return !c.tone.IsEmpty() && c.final.IsEmpty() &&
			c.medial.IsEmpty() && c.initial.IsEmpty()
	}
	return !c.tone.IsEmpty()
}

// Clear empties all slots and the romanization buffer. The arrangement
// and the correction flag survive.
func (c *Composer) Clear() {
	c.initial.Clear()
	c.medial.Clear()
	c.final.Clear()
	c.tone.Clear()
	c.romajiBuffer = ""
}

// Composition renders the current syllable. With asPinyin the Bopomofo
// reading is transcoded to numeric Hanyu Pinyin, and textbook then turns
// the digits into diacritics. Without asPinyin the tone-one space is
// stripped, and textbook fronts a neutral-tone mark.
func (c *Composer) Composition(asPinyin, textbook bool) string {
	if asPinyin {
		v := pinyin.ToHanyuPinyin(c.Value())
		if textbook {
			v = pinyin.ToTextbookTone(v)
		}
		return v
	}
	v := strings.ReplaceAll(c.Value(), " ", "")
	if textbook {
		v = pinyin.FrontNeutralTone(v)
	}
	return v
}

// InlineDisplay returns the string shown in an inline composition area.
// Romanization modes show the raw buffer plus a tone digit, with "v"
// displayed as "ü"; Bopomofo modes fall through to Composition.
func (c *Composer) InlineDisplay(asPinyin bool) string {
	if !c.IsPinyinMode() {
		return c.Composition(asPinyin, false)
	}
	toneDigit := ""
	switch c.tone.Value() {
	case " ":
		toneDigit = "1"
	case "ˊ":
		toneDigit = "2"
	case "ˇ":
		toneDigit = "3"
	case "ˋ":
		toneDigit = "4"
	case "˙":
		toneDigit = "5"
	}
	return strings.ReplaceAll(c.romajiBuffer+toneDigit, "v", "ü")
}

// InputValidityCheck reports whether a single keystroke is recognized by
// the current arrangement. Non-ASCII keys never are.
func (c *Composer) InputValidityCheck(key rune) bool {
	return key < 128 && c.InputValidityCheckString(string(key))
}

// InputValidityCheckString is InputValidityCheck for key strings.
func (c *Composer) InputValidityCheckString(key string) bool {
	return c.arrangement.AcceptsKey(key)
}

// ReceiveKey ingests one keystroke. In romanization modes tone keys set
// the tone slot directly and everything else accumulates into the buffer,
// which is re-resolved as a whole syllable after each key; the buffer
// evicts its oldest key beyond the per-layout cap. In Bopomofo modes the
// key is translated by the arrangement and routed to its slot.
func (c *Composer) ReceiveKey(key string) {
	if !c.IsPinyinMode() {
		c.ReceiveKeyFromPhonabet(c.translate(key))
		return
	}
	if tone, ok := pinyin.Tones[key]; ok {
		c.tone = phonabet.New(tone)
		return
	}
	maxLen := 6
	if c.arrangement == layout.WadeGilesPinyin {
		maxLen = 7
	}
	if len(c.romajiBuffer) > maxLen-1 {
		c.romajiBuffer = c.romajiBuffer[1:]
	}
	// ReceiveSequence clears the buffer on entry, so resolve against a
	// snapshot and restore it afterwards.
	backup := c.romajiBuffer + key
	c.ReceiveSequence(backup, true)
	c.romajiBuffer = backup
}

// ReceiveKeyRune is ReceiveKey for a single rune.
func (c *Composer) ReceiveKeyRune(key rune) {
	c.ReceiveKey(string(key))
}

// ReceiveKeyFromPhonabet routes a single Bopomofo symbol into its slot,
// applying the combination corrector first when it is enabled.
func (c *Composer) ReceiveKeyFromPhonabet(symbol string) {
	incoming := phonabet.New(symbol)
	if c.correctionEnabled {
		incoming = c.correctCombination(incoming, symbol)
	}
	switch incoming.Category() {
	case phonabet.Initial:
		c.initial = incoming
	case phonabet.Medial:
		c.medial = incoming
	case phonabet.Final:
		c.final = incoming
	case phonabet.Tone:
		c.tone = incoming
	}
	c.updateRomajiBuffer()
}

// correctCombination applies the pre-placement repair rules and returns
// the (possibly replaced) incoming symbol.
func (c *Composer) correctCombination(incoming phonabet.Phonabet, symbol string) phonabet.Phonabet {
	switch symbol {
	case "ㄧ", "ㄩ":
		if c.final.Value() == "ㄜ" {
			c.final = phonabet.New("ㄝ")
		}
	case "ㄜ":
		if c.medial.Value() == "ㄨ" {
			c.medial = phonabet.New("ㄩ")
		}
		if v := c.medial.Value(); v == "ㄧ" || v == "ㄩ" {
			incoming = phonabet.New("ㄝ")
		}
	case "ㄝ":
		if c.medial.Value() == "ㄨ" {
			c.medial = phonabet.New("ㄩ")
		}
	case "ㄛ", "ㄥ":
		if isLabial(c.initial.Value()) && c.medial.Value() == "ㄨ" {
			c.medial.Clear()
		}
	case "ㄟ":
		if isAlveolarNL(c.initial.Value()) && c.medial.Value() == "ㄨ" {
			c.medial.Clear()
		}
	case "ㄨ":
		if isLabial(c.initial.Value()) && (c.final.Value() == "ㄛ" || c.final.Value() == "ㄥ") {
			c.final.Clear()
		}
		if isAlveolarNL(c.initial.Value()) && c.final.Value() == "ㄟ" {
			c.final.Clear()
		}
		if c.final.Value() == "ㄜ" {
			c.final = phonabet.New("ㄝ")
		}
		if c.final.Value() == "ㄝ" {
			incoming = phonabet.New("ㄩ")
		}
	case "ㄅ", "ㄆ", "ㄇ", "ㄈ":
		if mv := c.medial.Value() + c.final.Value(); mv == "ㄨㄛ" || mv == "ㄨㄥ" {
			c.medial.Clear()
		}
	}
	if (incoming.Category() == phonabet.Final || incoming.Category() == phonabet.Tone) &&
		isSibilant(c.initial.Value()) {
		switch c.medial.Value() {
		case "ㄧ":
			c.medial.Clear()
		case "ㄩ":
			switch c.initial.Value() {
			case "ㄓ", "ㄗ":
				c.initial = phonabet.New("ㄐ")
			case "ㄔ", "ㄘ":
				c.initial = phonabet.New("ㄑ")
			case "ㄕ", "ㄙ":
				c.initial = phonabet.New("ㄒ")
			}
		}
	}
	return incoming
}

func isLabial(s string) bool {
	return s == "ㄅ" || s == "ㄆ" || s == "ㄇ" || s == "ㄈ"
}

func isAlveolarNL(s string) bool {
	return s == "ㄋ" || s == "ㄌ"
}

func isSibilant(s string) bool {
	switch s {
	case "ㄓ", "ㄔ", "ㄕ", "ㄗ", "ㄘ", "ㄙ":
		return true
	}
	return false
}

// updateRomajiBuffer refreshes the Bopomofo-mode mirror from the three
// phoneme slots. Only meaningful for Bopomofo modes; romanization mode
// owns the buffer itself and overwrites this after resolving.
func (c *Composer) updateRomajiBuffer() {
	c.romajiBuffer = pinyin.ToHanyuPinyin(
		c.initial.Value() + c.medial.Value() + c.final.Value())
}

// ReceiveSequence clears the composer and replays a whole key sequence,
// returning the resulting raw value. With romanized set the sequence is
// resolved as one romanized syllable against the arrangement's table
// instead of being replayed key by key; a trailing tone key sets the tone.
func (c *Composer) ReceiveSequence(sequence string, romanized bool) string {
	c.Clear()
	if !romanized {
		for _, key := range sequence {
			c.ReceiveKeyRune(key)
		}
		return c.Value()
	}
	bopomofo, ok := pinyin.Syllable(c.arrangement, sequence)
	tone := ""
	if n := len(sequence); !ok && n > 1 {
		if t, isTone := pinyin.Tones[sequence[n-1:]]; isTone {
			bopomofo, ok = pinyin.Syllable(c.arrangement, sequence[:n-1])
			tone = t
		}
	}
	if ok {
		for _, symbol := range bopomofo {
			c.ReceiveKeyFromPhonabet(string(symbol))
		}
		if tone != "" {
			c.tone = phonabet.New(tone)
		}
	}
	return c.Value()
}

// DoBackspace deletes one element, in tone, final, medial, initial
// priority order. In romanization mode with a pending buffer, a tone is
// removed first, then the newest buffered key.
func (c *Composer) DoBackspace() {
	switch {
	case c.IsPinyinMode() && c.romajiBuffer != "":
		if !c.tone.IsEmpty() {
			c.tone.Clear()
		} else {
			c.romajiBuffer = c.romajiBuffer[:len(c.romajiBuffer)-1]
		}
	case !c.tone.IsEmpty():
		c.tone.Clear()
	case !c.final.IsEmpty():
		c.final.Clear()
	case !c.medial.IsEmpty():
		c.medial.Clear()
	case !c.initial.IsEmpty():
		c.initial.Clear()
	}
	if !c.IsPinyinMode() {
		c.updateRomajiBuffer()
	}
}

// FixValue locates the slot currently holding old, clears it, then routes
// repl through the slot classifier. A miss is a no-op.
func (c *Composer) FixValue(old, repl string) {
	switch {
	case c.initial.Value() == old:
		c.initial.Clear()
	case c.medial.Value() == old:
		c.medial.Clear()
	case c.final.Value() == old:
		c.final.Clear()
	case c.tone.Value() == old:
		c.tone.Clear()
	default:
		return
	}
	c.ReceiveKeyFromPhonabet(repl)
}

// PhonabetKeyForQuery returns the rendered composition when it qualifies
// as a dictionary lookup key, else the empty string. Romanization modes
// always require a pronounceable syllable.
func (c *Composer) PhonabetKeyForQuery(pronounceableOnly bool) string {
	readingKey := c.Composition(false, false)
	valid := false
	if !c.IsPinyinMode() {
		if pronounceableOnly {
			valid = c.IsPronounceable()
		} else {
			valid = readingKey != ""
		}
	} else {
		valid = c.IsPronounceable()
	}
	if !valid {
		return ""
	}
	return readingKey
}
