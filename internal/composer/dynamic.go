package composer

import (
	"strings"

	"zhuyind/internal/layout"
	"zhuyind/internal/phonabet"
)

// translate resolves a keystroke under the current Bopomofo arrangement.
// Static arrangements are plain table lookups. The dynamic handlers may
// route the symbol into a slot themselves, in which case they return the
// empty string so the caller does not route it twice.
func (c *Composer) translate(key string) string {
	if c.IsPinyinMode() {
		return ""
	}
	switch c.arrangement {
	case layout.Dachen26:
		return c.handleDachen26(key)
	case layout.ETen26:
		return c.handleETen26(key)
	case layout.Hsu:
		return c.handleHsu(key)
	case layout.Starlight:
		return c.handleStarlight(key)
	case layout.AlvinLiu:
		return c.handleAlvinLiu(key)
	}
	symbol, _ := c.arrangement.Phonabet(key)
	return symbol
}

// handleETen26 resolves a key on the ETen 26-key arrangement. The tone
// keys d/f/j/k only act as tones once the syllable is pronounceable, and
// several letters double as finals once an initial or medial is present.
func (c *Composer) handleETen26(key string) string {
	symbol, _ := layout.ETen26.Phonabet(key)

	const handledHere = "dfhjklmnpqtw"

	switch key {
	case "d":
		if c.IsPronounceable() {
			symbol = "˙"
		}
	case "f":
		if c.IsPronounceable() {
			symbol = "ˊ"
		}
	case "j":
		if c.IsPronounceable() {
			symbol = "ˇ"
		}
	case "k":
		if c.IsPronounceable() {
			symbol = "ˋ"
		}
	case "e":
		if c.initial.Value() == "ㄍ" {
			c.initial = phonabet.New("ㄑ")
		}
	case "p":
		if !c.initial.IsEmpty() || c.medial.Value() == "ㄧ" {
			symbol = "ㄡ"
		}
	case "h":
		if !c.initial.IsEmpty() || !c.medial.IsEmpty() {
			symbol = "ㄦ"
		}
	case "l":
		if !c.initial.IsEmpty() || !c.medial.IsEmpty() {
			symbol = "ㄥ"
		}
	case "m":
		if !c.initial.IsEmpty() || !c.medial.IsEmpty() {
			symbol = "ㄢ"
		}
	case "n":
		if !c.initial.IsEmpty() || !c.medial.IsEmpty() {
			symbol = "ㄣ"
		}
	case "q":
		if !c.initial.IsEmpty() || !c.medial.IsEmpty() {
			symbol = "ㄟ"
		}
	case "t":
		if !c.initial.IsEmpty() || !c.medial.IsEmpty() {
			symbol = "ㄤ"
		}
	case "w":
		if !c.initial.IsEmpty() || !c.medial.IsEmpty() {
			symbol = "ㄝ"
		}
	}

	if strings.Contains(handledHere, key) {
		c.ReceiveKeyFromPhonabet(symbol)
	}

	c.fixDynamicInput(phonabet.New(symbol))

	// A tone key landing on a lone initial means the letter was meant as
	// the final it also carries on this arrangement.
	if strings.Contains("dfjk ", key) && c.Count(false) == 1 {
		c.FixValue("ㄆ", "ㄡ")
		c.FixValue("ㄇ", "ㄢ")
		c.FixValue("ㄊ", "ㄤ")
		c.FixValue("ㄋ", "ㄣ")
		c.FixValue("ㄌ", "ㄥ")
		c.FixValue("ㄏ", "ㄦ")
	}

	if c.Value() == "ㄍ˙" {
		c.initial = phonabet.New("ㄑ")
	}

	if strings.Contains(handledHere, key) {
		symbol = ""
	}
	return symbol
}

// handleHsu resolves a key on the Hsu arrangement.
func (c *Composer) handleHsu(key string) string {
	symbol, _ := layout.Hsu.Phonabet(key)

	const handledHere = "acdefghjklmns"

	switch key {
	case "d":
		if c.IsPronounceable() {
			symbol = "ˊ"
		}
	case "f":
		if c.IsPronounceable() {
			symbol = "ˇ"
		}
	case "s":
		if c.IsPronounceable() {
			symbol = "˙"
		}
	case "j":
		if c.IsPronounceable() {
			symbol = "ˋ"
		}
	case "a":
		if !c.initial.IsEmpty() || !c.medial.IsEmpty() {
			symbol = "ㄟ"
		}
	case "v":
		if !c.medial.IsEmpty() {
			symbol = "ㄑ"
		}
	case "c":
		if !c.medial.IsEmpty() {
			symbol = "ㄒ"
		}
	case "e":
		if !c.medial.IsEmpty() {
			symbol = "ㄝ"
		}
	case "g":
		if !c.initial.IsEmpty() || !c.medial.IsEmpty() {
			symbol = "ㄜ"
		}
	case "h":
		if !c.initial.IsEmpty() || !c.medial.IsEmpty() {
			symbol = "ㄛ"
		}
	case "k":
		if !c.initial.IsEmpty() || !c.medial.IsEmpty() {
			symbol = "ㄤ"
		}
	case "m":
		if !c.initial.IsEmpty() || !c.medial.IsEmpty() {
			symbol = "ㄢ"
		}
	case "n":
		if !c.initial.IsEmpty() || !c.medial.IsEmpty() {
			symbol = "ㄣ"
		}
	case "l":
		switch {
		case c.Value() == "" && !c.initial.IsEmpty() && !c.medial.IsEmpty():
			symbol = "ㄦ"
		case c.initial.IsEmpty() && c.medial.IsEmpty():
			symbol = "ㄌ"
		default:
			symbol = "ㄥ"
		}
	}

	if strings.Contains(handledHere, key) {
		c.ReceiveKeyFromPhonabet(symbol)
	}

	c.fixDynamicInput(phonabet.New(symbol))

	if strings.Contains("dfjs ", key) && c.Count(false) == 1 {
		c.FixValue("ㄒ", "ㄕ")
		c.FixValue("ㄍ", "ㄜ")
		c.FixValue("ㄋ", "ㄣ")
		c.FixValue("ㄌ", "ㄦ")
		c.FixValue("ㄎ", "ㄤ")
		c.FixValue("ㄇ", "ㄢ")
		c.FixValue("ㄐ", "ㄓ")
		c.FixValue("ㄑ", "ㄔ")
		c.FixValue("ㄏ", "ㄛ")
	}

	if c.Value() == "ㄔ˙" {
		c.initial = phonabet.New("ㄑ")
	}

	if strings.Contains(handledHere, key) {
		symbol = ""
	}
	return symbol
}

// handleStarlight resolves a key on the Starlight arrangement. Tones live
// on the digit row here, so letters never pivot into tones.
func (c *Composer) handleStarlight(key string) string {
	symbol, _ := layout.Starlight.Phonabet(key)

	const handledHere = "efgklmnt"

	switch key {
	case "e":
		if v := c.medial.Value(); v == "ㄧ" || v == "ㄩ" {
			symbol = "ㄝ"
		}
	case "f":
		if !c.initial.IsEmpty() || !c.medial.IsEmpty() {
			symbol = "ㄠ"
		}
	case "g":
		if !c.initial.IsEmpty() || !c.medial.IsEmpty() {
			symbol = "ㄥ"
		}
	case "k":
		if !c.initial.IsEmpty() || !c.medial.IsEmpty() {
			symbol = "ㄤ"
		}
	case "l":
		if !c.initial.IsEmpty() || !c.medial.IsEmpty() {
			symbol = "ㄦ"
		}
	case "m":
		if !c.initial.IsEmpty() || !c.medial.IsEmpty() {
			symbol = "ㄢ"
		}
	case "n":
		if !c.initial.IsEmpty() || !c.medial.IsEmpty() {
			symbol = "ㄣ"
		}
	case "t":
		if !c.initial.IsEmpty() || !c.medial.IsEmpty() {
			symbol = "ㄟ"
		}
	}

	if strings.Contains(handledHere, key) {
		c.ReceiveKeyFromPhonabet(symbol)
	}

	c.fixDynamicInput(phonabet.New(symbol))

	if strings.Contains("67890 ", key) && c.Count(false) == 1 {
		c.FixValue("ㄈ", "ㄠ")
		c.FixValue("ㄍ", "ㄥ")
		c.FixValue("ㄎ", "ㄤ")
		c.FixValue("ㄌ", "ㄦ")
		c.FixValue("ㄇ", "ㄢ")
		c.FixValue("ㄋ", "ㄣ")
		c.FixValue("ㄊ", "ㄟ")
	}

	if strings.Contains(handledHere, key) {
		symbol = ""
	}
	return symbol
}

// handleDachen26 resolves a key on the Dachen 26-key arrangement. Each
// letter that also carries a number-row phoneme toggles on a repeated
// press, and m/u swap between medial and final readings depending on the
// current contents.
func (c *Composer) handleDachen26(key string) string {
	symbol, _ := layout.Dachen26.Phonabet(key)

	switch key {
	case "e":
		if c.IsPronounceable() {
			symbol = "ˊ"
		}
	case "r":
		if c.IsPronounceable() {
			symbol = "ˇ"
		}
	case "d":
		if c.IsPronounceable() {
			symbol = "ˋ"
		}
	case "y":
		if c.IsPronounceable() {
			symbol = "˙"
		}
	case "b":
		if !c.initial.IsEmpty() || !c.medial.IsEmpty() {
			symbol = "ㄝ"
		}
	case "i":
		if c.final.IsEmpty() || c.final.Value() == "ㄞ" {
			symbol = "ㄛ"
		}
	case "l":
		if c.final.IsEmpty() || c.final.Value() == "ㄤ" {
			symbol = "ㄠ"
		}
	case "n":
		if !c.initial.IsEmpty() || !c.medial.IsEmpty() {
			if c.Value() == "ㄙ" {
				c.initial.Clear()
			}
			symbol = "ㄥ"
		}
	case "o":
		if c.final.IsEmpty() || c.final.Value() == "ㄢ" {
			symbol = "ㄟ"
		}
	case "p":
		if c.final.IsEmpty() || c.final.Value() == "ㄦ" {
			symbol = "ㄣ"
		}
	case "q":
		if c.initial.IsEmpty() || c.initial.Value() == "ㄅ" {
			symbol = "ㄆ"
		}
	case "t":
		if c.initial.IsEmpty() || c.initial.Value() == "ㄓ" {
			symbol = "ㄔ"
		}
	case "w":
		if c.initial.IsEmpty() || c.initial.Value() == "ㄉ" {
			symbol = "ㄊ"
		}
	case "m":
		switch {
		case c.medial.Value() == "ㄩ" && c.final.Value() != "ㄡ":
			c.medial.Clear()
			symbol = "ㄡ"
		case c.medial.Value() != "ㄩ" && c.final.Value() == "ㄡ":
			c.final.Clear()
			symbol = "ㄩ"
		case !c.medial.IsEmpty():
			symbol = "ㄡ"
		default:
			switch c.initial.Value() {
			case "ㄐ", "ㄑ", "ㄒ":
				symbol = "ㄩ"
			default:
				symbol = "ㄡ"
			}
		}
	case "u":
		switch {
		case c.medial.Value() == "ㄧ" && c.final.Value() != "ㄚ":
			c.medial.Clear()
			symbol = "ㄚ"
		case c.medial.Value() != "ㄧ" && c.final.Value() == "ㄚ":
			symbol = "ㄧ"
		case c.medial.Value() == "ㄧ" && c.final.Value() == "ㄚ":
			c.medial.Clear()
			c.final.Clear()
		case !c.medial.IsEmpty():
			symbol = "ㄚ"
		default:
			symbol = "ㄧ"
		}
	}

	return symbol
}

// handleAlvinLiu resolves a key on Alvin Liu's phonetic arrangement. The
// layout keeps ㄦ and ㄌ on one key; an ㄦ already buffered turns back
// into ㄌ as soon as any further key whose reading is not ㄦ arrives.
func (c *Composer) handleAlvinLiu(key string) string {
	symbol, _ := layout.AlvinLiu.Phonabet(key)

	if symbol != "ㄦ" && !c.final.IsEmpty() {
		c.FixValue("ㄦ", "ㄌ")
	}

	const handledHere = "dfjlegnhkbmc"

	switch key {
	case "d":
		if c.IsPronounceable() {
			symbol = "˙"
		}
	case "f":
		if c.IsPronounceable() {
			symbol = "ˊ"
		}
	case "j":
		if c.IsPronounceable() {
			symbol = "ˇ"
		}
	case "l":
		if c.IsPronounceable() {
			symbol = "ˋ"
		}
	case "e":
		if v := c.medial.Value(); v == "ㄧ" || v == "ㄩ" {
			symbol = "ㄝ"
		}
	case "g":
		if !c.initial.IsEmpty() || !c.medial.IsEmpty() {
			symbol = "ㄤ"
		}
	case "n":
		if !c.initial.IsEmpty() || !c.medial.IsEmpty() {
			symbol = "ㄣ"
		}
	case "h":
		if !c.initial.IsEmpty() || !c.medial.IsEmpty() {
			symbol = "ㄞ"
		}
	case "k":
		if !c.initial.IsEmpty() || !c.medial.IsEmpty() {
			symbol = "ㄟ"
		}
	case "b":
		if !c.initial.IsEmpty() || !c.medial.IsEmpty() {
			symbol = "ㄢ"
		}
	case "m":
		if !c.initial.IsEmpty() || !c.medial.IsEmpty() {
			symbol = "ㄥ"
		}
	case "c":
		if !c.initial.IsEmpty() || !c.medial.IsEmpty() {
			symbol = "ㄝ"
		}
	}

	if strings.Contains(handledHere, key) {
		c.ReceiveKeyFromPhonabet(symbol)
	}

	c.fixDynamicInput(phonabet.New(symbol))

	if strings.Contains("dfjl ", key) && c.Count(false) == 1 {
		c.FixValue("ㄑ", "ㄔ")
		c.FixValue("ㄊ", "ㄦ")
		c.FixValue("ㄍ", "ㄤ")
		c.FixValue("ㄏ", "ㄞ")
		c.FixValue("ㄐ", "ㄓ")
		c.FixValue("ㄎ", "ㄟ")
		c.FixValue("ㄌ", "ㄦ")
		c.FixValue("ㄒ", "ㄕ")
		c.FixValue("ㄅ", "ㄢ")
		c.FixValue("ㄋ", "ㄣ")
		c.FixValue("ㄇ", "ㄥ")
	}

	if strings.Contains(handledHere, key) {
		symbol = ""
	}
	return symbol
}

// fixDynamicInput is the repair step shared by the Hsu, ETen26, Starlight
// and AlvinLiu handlers after a symbol lands (Dachen26 does not use it): a fresh medial reconciles the palatal and
// retroflex initial families, and a final with no medial forces the
// retroflex reading.
func (c *Composer) fixDynamicInput(incoming phonabet.Phonabet) {
	switch incoming.Category() {
	case phonabet.Medial:
		switch c.initial.Value() {
		case "ㄍ":
			switch incoming.Value() {
			// ㄍ+ㄧ→ㄑ is ETen26's own business and stays in its handler.
			case "ㄨ":
				c.initial = phonabet.New("ㄍ")
			case "ㄩ":
				c.initial = phonabet.New("ㄑ")
			}
		case "ㄓ":
			switch incoming.Value() {
			case "ㄧ", "ㄩ":
				c.initial = phonabet.New("ㄐ")
			case "ㄨ":
				c.initial = phonabet.New("ㄓ")
			}
		case "ㄔ":
			switch incoming.Value() {
			case "ㄧ", "ㄩ":
				c.initial = phonabet.New("ㄑ")
			case "ㄨ":
				c.initial = phonabet.New("ㄔ")
			}
		case "ㄕ":
			switch incoming.Value() {
			case "ㄧ", "ㄩ":
				c.initial = phonabet.New("ㄒ")
			case "ㄨ":
				c.initial = phonabet.New("ㄕ")
			}
		}
		if incoming.Value() == "ㄨ" {
			c.FixValue("ㄐ", "ㄓ")
			c.FixValue("ㄑ", "ㄔ")
			c.FixValue("ㄒ", "ㄕ")
		}
	case phonabet.Final:
		if c.medial.IsEmpty() {
			c.FixValue("ㄐ", "ㄓ")
			c.FixValue("ㄑ", "ㄔ")
			c.FixValue("ㄒ", "ㄕ")
		}
	}
}
