// Package kana provides helpers for working with Japanese scripts:
// hiragana/katakana tables, script checks and katakana-to-hiragana conversion.
package kana

// Unicode blocks:
//   hiragana https://en.wikipedia.org/wiki/Hiragana_(Unicode_block)
//   katakana https://en.wikipedia.org/wiki/Katakana_(Unicode_block)
const (
	Hiragana = "ぁあぃいぅうぇえぉおかがきぎくぐけげこごさざしじすずせぜそぞただちぢっつづてでとどなにぬねのはばぱひびぴふぶぷへべぺほぼぽまみむめもゃやゅゆょよらりるれろゎわゐゑをんゔゕゖ゙゚゛゜ゝゞゟ"
	Katakana = "゠ァアィイゥウェエォオカガキギクグケゲコゴサザシジスズセゼソゾタダチヂッツヅテデトドナニヌネノハバパヒビピフブプヘベペホボポマミムメモャヤュユョヨラリルレロヮワヰヱヲンヴヵヶヷヸヹヺ・ーヽヾヿ"
)

// IsHiragana reports whether r is in the hiragana block.
func IsHiragana(r rune) bool {
	return r >= 0x3040 && r <= 0x309F
}

// IsKatakana reports whether r is in the katakana block.
func IsKatakana(r rune) bool {
	return r >= 0x30A0 && r <= 0x30FF
}

// IsKanaRune reports whether r is hiragana or katakana.
func IsKanaRune(r rune) bool {
	return IsHiragana(r) || IsKatakana(r)
}

// IsKana reports whether every rune in s is kana. The empty string counts as kana.
func IsKana(s string) bool {
	for _, r := range s {
		if !IsKanaRune(r) {
			return false
		}
	}
	return true
}

// IsKanji reports whether r is a CJK unified ideograph.
func IsKanji(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FFF
}

// KataToHira converts katakana runes in s to their hiragana equivalents.
// Runes outside the convertible range (ァ..ヶ) are left untouched, so
// prolonged sound marks and middle dots survive the conversion.
func KataToHira(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if r >= 0x30A1 && r <= 0x30F6 {
			runes[i] = r - 0x60
		}
	}
	return string(runes)
}
