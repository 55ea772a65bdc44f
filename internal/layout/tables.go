// Code generated from the published keyboard arrangement charts; edit the
// charts, not this file, when a layout revision lands.

package layout

var dachenKeys = map[string]string{
	" ": " ",
	",": "ㄝ",
	"-": "ㄦ",
	".": "ㄡ",
	"/": "ㄥ",
	"0": "ㄢ",
	"1": "ㄅ",
	"2": "ㄉ",
	"3": "ˇ",
	"4": "ˋ",
	"5": "ㄓ",
	"6": "ˊ",
	"7": "˙",
	"8": "ㄚ",
	"9": "ㄞ",
	";": "ㄤ",
	"a": "ㄇ",
	"b": "ㄖ",
	"c": "ㄏ",
	"d": "ㄎ",
	"e": "ㄍ",
	"f": "ㄑ",
	"g": "ㄕ",
	"h": "ㄘ",
	"i": "ㄛ",
	"j": "ㄨ",
	"k": "ㄜ",
	"l": "ㄠ",
	"m": "ㄩ",
	"n": "ㄙ",
	"o": "ㄟ",
	"p": "ㄣ",
	"q": "ㄆ",
	"r": "ㄐ",
	"s": "ㄋ",
	"t": "ㄔ",
	"u": "ㄧ",
	"v": "ㄒ",
	"w": "ㄊ",
	"x": "ㄌ",
	"y": "ㄗ",
	"z": "ㄈ",
}

var dachen26Keys = map[string]string{
	" ": " ",
	"a": "ㄇ",
	"b": "ㄖ",
	"c": "ㄏ",
	"d": "ㄎ",
	"e": "ㄍ",
	"f": "ㄑ",
	"g": "ㄕ",
	"h": "ㄘ",
	"i": "ㄞ",
	"j": "ㄨ",
	"k": "ㄜ",
	"l": "ㄤ",
	"m": "ㄩ",
	"n": "ㄙ",
	"o": "ㄢ",
	"p": "ㄦ",
	"q": "ㄅ",
	"r": "ㄐ",
	"s": "ㄋ",
	"t": "ㄓ",
	"u": "ㄧ",
	"v": "ㄒ",
	"w": "ㄉ",
	"x": "ㄌ",
	"y": "ㄗ",
	"z": "ㄈ",
}

var etenKeys = map[string]string{
	" ": " ",
	"'": "ㄘ",
	",": "ㄓ",
	"-": "ㄥ",
	".": "ㄔ",
	"/": "ㄕ",
	"0": "ㄤ",
	"1": "˙",
	"2": "ˊ",
	"3": "ˇ",
	"4": "ˋ",
	"7": "ㄑ",
	"8": "ㄢ",
	"9": "ㄣ",
	";": "ㄗ",
	"=": "ㄦ",
	"a": "ㄚ",
	"b": "ㄅ",
	"c": "ㄒ",
	"d": "ㄉ",
	"e": "ㄧ",
	"f": "ㄈ",
	"g": "ㄐ",
	"h": "ㄏ",
	"i": "ㄞ",
	"j": "ㄖ",
	"k": "ㄎ",
	"l": "ㄌ",
	"m": "ㄇ",
	"n": "ㄋ",
	"o": "ㄛ",
	"p": "ㄆ",
	"q": "ㄟ",
	"r": "ㄜ",
	"s": "ㄙ",
	"t": "ㄊ",
	"u": "ㄩ",
	"v": "ㄍ",
	"w": "ㄝ",
	"x": "ㄨ",
	"y": "ㄡ",
	"z": "ㄠ",
}

var eten26Keys = map[string]string{
	" ": " ",
	"a": "ㄚ",
	"b": "ㄅ",
	"c": "ㄕ",
	"d": "ㄉ",
	"e": "ㄧ",
	"f": "ㄈ",
	"g": "ㄓ",
	"h": "ㄏ",
	"i": "ㄞ",
	"j": "ㄖ",
	"k": "ㄎ",
	"l": "ㄌ",
	"m": "ㄇ",
	"n": "ㄋ",
	"o": "ㄛ",
	"p": "ㄆ",
	"q": "ㄗ",
	"r": "ㄜ",
	"s": "ㄙ",
	"t": "ㄊ",
	"u": "ㄩ",
	"v": "ㄍ",
	"w": "ㄘ",
	"x": "ㄨ",
	"y": "ㄔ",
	"z": "ㄠ",
}

var hsuKeys = map[string]string{
	" ": " ",
	"a": "ㄘ",
	"b": "ㄅ",
	"c": "ㄕ",
	"d": "ㄉ",
	"e": "ㄧ",
	"f": "ㄈ",
	"g": "ㄍ",
	"h": "ㄏ",
	"i": "ㄞ",
	"j": "ㄐ",
	"k": "ㄎ",
	"l": "ㄌ",
	"m": "ㄇ",
	"n": "ㄋ",
	"o": "ㄡ",
	"p": "ㄆ",
	"r": "ㄖ",
	"s": "ㄙ",
	"t": "ㄊ",
	"u": "ㄩ",
	"v": "ㄔ",
	"w": "ㄠ",
	"x": "ㄨ",
	"y": "ㄚ",
	"z": "ㄗ",
}

var ibmKeys = map[string]string{
	" ": " ",
	",": "ˇ",
	"-": "ㄏ",
	".": "ˋ",
	"/": "˙",
	"0": "ㄎ",
	"1": "ㄅ",
	"2": "ㄆ",
	"3": "ㄇ",
	"4": "ㄈ",
	"5": "ㄉ",
	"6": "ㄊ",
	"7": "ㄋ",
	"8": "ㄌ",
	"9": "ㄍ",
	";": "ㄠ",
	"a": "ㄧ",
	"b": "ㄥ",
	"c": "ㄣ",
	"d": "ㄩ",
	"e": "ㄒ",
	"f": "ㄚ",
	"g": "ㄛ",
	"h": "ㄜ",
	"i": "ㄗ",
	"j": "ㄝ",
	"k": "ㄞ",
	"l": "ㄟ",
	"m": "ˊ",
	"n": "ㄦ",
	"o": "ㄘ",
	"p": "ㄙ",
	"q": "ㄐ",
	"r": "ㄓ",
	"s": "ㄨ",
	"t": "ㄔ",
	"u": "ㄖ",
	"v": "ㄤ",
	"w": "ㄑ",
	"x": "ㄢ",
	"y": "ㄕ",
	"z": "ㄡ",
}

var mitacKeys = map[string]string{
	" ": " ",
	",": "ㄓ",
	"-": "ㄦ",
	".": "ㄔ",
	"/": "ㄕ",
	"0": "ㄥ",
	"1": "˙",
	"2": "ˊ",
	"3": "ˇ",
	"4": "ˋ",
	"5": "ㄞ",
	"6": "ㄠ",
	"7": "ㄢ",
	"8": "ㄣ",
	"9": "ㄤ",
	";": "ㄝ",
	"a": "ㄚ",
	"b": "ㄅ",
	"c": "ㄘ",
	"d": "ㄉ",
	"e": "ㄜ",
	"f": "ㄈ",
	"g": "ㄍ",
	"h": "ㄏ",
	"i": "ㄟ",
	"j": "ㄐ",
	"k": "ㄎ",
	"l": "ㄌ",
	"m": "ㄇ",
	"n": "ㄋ",
	"o": "ㄛ",
	"p": "ㄆ",
	"q": "ㄑ",
	"r": "ㄖ",
	"s": "ㄙ",
	"t": "ㄊ",
	"u": "ㄡ",
	"v": "ㄩ",
	"w": "ㄨ",
	"x": "ㄒ",
	"y": "ㄧ",
	"z": "ㄗ",
}

var seigyouKeys = map[string]string{
	" ": " ",
	"'": "ㄩ",
	",": "ㄝ",
	"-": "ㄧ",
	".": "ㄡ",
	"/": "ㄥ",
	"0": "ㄥ",
	"1": "˙",
	"2": "ㄅ",
	"3": "ㄉ",
	"4": "ㄧ",
	"5": "ㄨ",
	"6": "ㄠ",
	"7": "ㄩ",
	"8": "ㄣ",
	"9": "ㄤ",
	";": "ㄤ",
	"=": "ㄦ",
	"a": "ㄚ",
	"b": "ㄒ",
	"c": "ㄘ",
	"d": "ㄋ",
	"e": "ㄜ",
	"f": "ㄎ",
	"g": "ㄑ",
	"h": "ㄕ",
	"i": "ㄟ",
	"j": "ㄘ",
	"k": "ㄜ",
	"l": "ㄠ",
	"m": "ㄙ",
	"n": "ㄖ",
	"o": "ㄟ",
	"p": "ㄣ",
	"q": "ㄑ",
	"r": "ㄖ",
	"s": "ㄙ",
	"t": "ㄐ",
	"u": "ㄡ",
	"v": "ㄩ",
	"w": "ㄨ",
	"x": "ㄒ",
	"y": "ㄧ",
	"z": "ㄗ",
	"{": "ㄨ",
}

var fakeSeigyouKeys = map[string]string{
	" ": " ",
	",": "ㄝ",
	"-": "ㄦ",
	".": "ㄡ",
	"/": "ㄥ",
	"0": "ㄢ",
	"1": "˙",
	"2": "ㄅ",
	"3": "ㄉ",
	"4": "ㄧ",
	"5": "ㄨ",
	"6": "ㄓ",
	"7": "ㄩ",
	"8": "ㄚ",
	"9": "ㄞ",
	";": "ㄤ",
	"a": "ˇ",
	"b": "ㄒ",
	"c": "ㄌ",
	"d": "ㄋ",
	"e": "ㄊ",
	"f": "ㄎ",
	"g": "ㄑ",
	"h": "ㄕ",
	"i": "ㄛ",
	"j": "ㄘ",
	"k": "ㄜ",
	"l": "ㄠ",
	"m": "ㄙ",
	"n": "ㄖ",
	"o": "ㄟ",
	"p": "ㄣ",
	"q": "ˊ",
	"r": "ㄍ",
	"s": "ㄇ",
	"t": "ㄐ",
	"u": "ㄗ",
	"v": "ㄏ",
	"w": "ㄆ",
	"x": "ㄈ",
	"y": "ㄔ",
	"z": "ˋ",
}

var starlightKeys = map[string]string{
	" ": " ",
	"0": "˙",
	"1": " ",
	"2": "ˊ",
	"3": "ˇ",
	"4": "ˋ",
	"5": "˙",
	"6": " ",
	"7": "ˊ",
	"8": "ˇ",
	"9": "ˋ",
	"a": "ㄚ",
	"b": "ㄅ",
	"c": "ㄘ",
	"d": "ㄉ",
	"e": "ㄜ",
	"f": "ㄈ",
	"g": "ㄍ",
	"h": "ㄏ",
	"i": "ㄧ",
	"j": "ㄓ",
	"k": "ㄎ",
	"l": "ㄌ",
	"m": "ㄇ",
	"n": "ㄋ",
	"o": "ㄛ",
	"p": "ㄆ",
	"q": "ㄔ",
	"r": "ㄖ",
	"s": "ㄙ",
	"t": "ㄊ",
	"u": "ㄨ",
	"v": "ㄩ",
	"w": "ㄡ",
	"x": "ㄕ",
	"y": "ㄞ",
	"z": "ㄗ",
}

var alvinLiuKeys = map[string]string{
	" ": " ",
	"a": "ㄚ",
	"b": "ㄅ",
	"c": "ㄘ",
	"d": "ㄉ",
	"e": "ㄜ",
	"f": "ㄈ",
	"g": "ㄍ",
	"h": "ㄏ",
	"i": "ㄧ",
	"j": "ㄐ",
	"k": "ㄎ",
	"l": "ㄦ",
	"m": "ㄇ",
	"n": "ㄋ",
	"o": "ㄛ",
	"p": "ㄆ",
	"q": "ㄑ",
	"r": "ㄖ",
	"s": "ㄙ",
	"t": "ㄊ",
	"u": "ㄨ",
	"v": "ㄡ",
	"w": "ㄠ",
	"x": "ㄒ",
	"y": "ㄩ",
	"z": "ㄗ",
}
