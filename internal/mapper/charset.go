package mapper

import "github.com/dshills/keybridge/internal/key"

// charPairs holds, for each character-producing logical key, the
// (unshifted, shifted) characters it stands for on the US reference
// layout. Letters are derived arithmetically and are not listed here.
var charPairs = map[key.KeyCode][2]rune{
	key.KeyDigit1:       {'1', '!'},
	key.KeyDigit2:       {'2', '@'},
	key.KeyDigit3:       {'3', '#'},
	key.KeyDigit4:       {'4', '$'},
	key.KeyDigit5:       {'5', '%'},
	key.KeyDigit6:       {'6', '^'},
	key.KeyDigit7:       {'7', '&'},
	key.KeyDigit8:       {'8', '*'},
	key.KeyDigit9:       {'9', '('},
	key.KeyDigit0:       {'0', ')'},
	key.KeySemicolon:    {';', ':'},
	key.KeyEqual:        {'=', '+'},
	key.KeyComma:        {',', '<'},
	key.KeyMinus:        {'-', '_'},
	key.KeyPeriod:       {'.', '>'},
	key.KeySlash:        {'/', '?'},
	key.KeyBackquote:    {'`', '~'},
	key.KeyBracketLeft:  {'[', '{'},
	key.KeyBackslash:    {'\\', '|'},
	key.KeyBracketRight: {']', '}'},
	key.KeyQuote:        {'\'', '"'},
}

// remappableChars is the closed set of characters that participate in
// the reverse index. Characters outside this set are never
// layout-remapped.
var remappableChars = func() map[rune]struct{} {
	set := make(map[rune]struct{}, 128)
	for r := 'a'; r <= 'z'; r++ {
		set[r] = struct{}{}
	}
	for r := 'A'; r <= 'Z'; r++ {
		set[r] = struct{}{}
	}
	for _, pair := range charPairs {
		set[pair[0]] = struct{}{}
		set[pair[1]] = struct{}{}
	}
	return set
}()

// isRemappable reports whether r participates in layout remapping.
func isRemappable(r rune) bool {
	_, ok := remappableChars[r]
	return ok
}

// desiredChar returns the US reference character a logical key stands
// for under the given shift flag, or false if the key has none (it is
// neither a letter nor a listed character key).
func desiredChar(kc key.KeyCode, shift bool) (rune, bool) {
	if kc.IsLetter() {
		if shift {
			return 'A' + rune(kc-key.KeyA), true
		}
		return 'a' + rune(kc-key.KeyA), true
	}
	pair, ok := charPairs[kc]
	if !ok {
		return 0, false
	}
	if shift {
		return pair[1], true
	}
	return pair[0], true
}
