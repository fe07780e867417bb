package layout

import "github.com/dshills/keybridge/internal/key"

// USStandard returns the standard US layout table. It is the reference
// layout the logical key codes are defined against, and the default
// table when no OS-supplied one is available.
func USStandard() *Table {
	pair := func(value, withShift string) Mapping {
		return Mapping{Value: value, WithShift: withShift}
	}

	return NewTable(map[key.ScanCode]Mapping{
		key.ScanKeyA:          pair("a", "A"),
		key.ScanKeyB:          pair("b", "B"),
		key.ScanKeyC:          pair("c", "C"),
		key.ScanKeyD:          pair("d", "D"),
		key.ScanKeyE:          pair("e", "E"),
		key.ScanKeyF:          pair("f", "F"),
		key.ScanKeyG:          pair("g", "G"),
		key.ScanKeyH:          pair("h", "H"),
		key.ScanKeyI:          pair("i", "I"),
		key.ScanKeyJ:          pair("j", "J"),
		key.ScanKeyK:          pair("k", "K"),
		key.ScanKeyL:          pair("l", "L"),
		key.ScanKeyM:          pair("m", "M"),
		key.ScanKeyN:          pair("n", "N"),
		key.ScanKeyO:          pair("o", "O"),
		key.ScanKeyP:          pair("p", "P"),
		key.ScanKeyQ:          pair("q", "Q"),
		key.ScanKeyR:          pair("r", "R"),
		key.ScanKeyS:          pair("s", "S"),
		key.ScanKeyT:          pair("t", "T"),
		key.ScanKeyU:          pair("u", "U"),
		key.ScanKeyV:          pair("v", "V"),
		key.ScanKeyW:          pair("w", "W"),
		key.ScanKeyX:          pair("x", "X"),
		key.ScanKeyY:          pair("y", "Y"),
		key.ScanKeyZ:          pair("z", "Z"),
		key.ScanDigit1:        pair("1", "!"),
		key.ScanDigit2:        pair("2", "@"),
		key.ScanDigit3:        pair("3", "#"),
		key.ScanDigit4:        pair("4", "$"),
		key.ScanDigit5:        pair("5", "%"),
		key.ScanDigit6:        pair("6", "^"),
		key.ScanDigit7:        pair("7", "&"),
		key.ScanDigit8:        pair("8", "*"),
		key.ScanDigit9:        pair("9", "("),
		key.ScanDigit0:        pair("0", ")"),
		key.ScanMinus:         pair("-", "_"),
		key.ScanEqual:         pair("=", "+"),
		key.ScanBracketLeft:   pair("[", "{"),
		key.ScanBracketRight:  pair("]", "}"),
		key.ScanBackslash:     pair("\\", "|"),
		key.ScanSemicolon:     pair(";", ":"),
		key.ScanQuote:         pair("'", "\""),
		key.ScanBackquote:     pair("`", "~"),
		key.ScanComma:         pair(",", "<"),
		key.ScanPeriod:        pair(".", ">"),
		key.ScanSlash:         pair("/", "?"),
		key.ScanIntlBackslash: pair("\\", "|"),
	})
}
