package stats

import (
	"sync"
	"unicode/utf8"

	"github.com/forPelevin/gomoji"
)

// Classifier reports whether a single code point counts as an emoji.
type Classifier func(rune) bool

// emojiSet holds the leading code point of every emoji in the gomoji
// dataset. Built once on first use.
var emojiSet = sync.OnceValue(func() map[rune]struct{} {
	set := make(map[rune]struct{})
	for _, e := range gomoji.AllEmojis() {
		r, _ := utf8.DecodeRuneInString(e.Character)
		if r == utf8.RuneError || isComponent(r) {
			continue
		}
		set[r] = struct{}{}
	}
	return set
})

// isComponent reports code points that only build sequences: keycap bases,
// joiners, variation selectors, skin tones, hair styles, regional
// indicators and tags. They are never counted on their own.
func isComponent(r rune) bool {
	switch {
	case r < 0x80: // '#', '*' and digits of keycaps
		return true
	case r == 0x200D, r == 0x20E3, r == 0xFE0F, r == 0xFE0E:
		return true
	case r >= 0x1F3FB && r <= 0x1F3FF:
		return true
	case r >= 0x1F9B0 && r <= 0x1F9B3:
		return true
	case r >= 0x1F1E6 && r <= 0x1F1FF:
		return true
	case r >= 0xE0020 && r <= 0xE007F:
		return true
	}
	return false
}

// IsEmoji is the default Classifier.
func IsEmoji(r rune) bool {
	_, ok := emojiSet()[r]
	return ok
}
