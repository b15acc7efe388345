package morse

import (
	"strings"

	"github.com/samber/lo"
)

// Codec encodes and decodes Morse code against a symbol table.
// Characters and tokens missing from the table are dropped silently.
type Codec struct {
	table *Table
}

// New returns a Codec over the standard table.
func New() *Codec {
	return &Codec{table: NewTable()}
}

// Table exposes the codec's symbol table.
func (c *Codec) Table() *Table {
	return c.table
}

// LookupCode returns the token for ch.
func (c *Codec) LookupCode(ch rune) (string, bool) {
	return c.table.LookupCode(ch)
}

// LookupCharacter returns the character for token.
func (c *Codec) LookupCharacter(token string) (rune, bool) {
	return c.table.LookupCharacter(token)
}

// Encode converts text to space separated tokens. Spaces become "/".
func (c *Codec) Encode(text string) string {
	var sb strings.Builder
	for _, r := range text {
		if token, ok := c.table.LookupCode(r); ok {
			sb.WriteString(token)
			sb.WriteByte(' ')
		}
	}
	return strings.TrimSpace(sb.String())
}

// Decode converts Morse code back to text. Word groups are split on "/"
// and tokens within a group on whitespace. An encoded space and an empty
// word group both decode to nothing but the group separator, so
// Decode(Encode(" ")) is "".
func (c *Codec) Decode(morse string) string {
	var sb strings.Builder
	for _, group := range strings.Split(morse, WordSeparator) {
		for _, token := range strings.Fields(group) {
			if ch, ok := c.table.LookupCharacter(token); ok {
				sb.WriteRune(ch)
			}
		}
		sb.WriteByte(' ')
	}
	return strings.TrimSpace(sb.String())
}

// Translate handles mixed input one space-delimited word at a time: words
// made only of Morse symbols are decoded, everything else is encoded.
// Each word is decoded on its own, so "/" inside a word is not treated as
// a boundary between neighbouring words.
func (c *Codec) Translate(text string) string {
	var sb strings.Builder
	for _, word := range strings.Split(text, " ") {
		if IsMorse(word) {
			sb.WriteString(c.Decode(word))
		} else {
			sb.WriteString(c.Encode(word))
		}
		sb.WriteByte(' ')
	}
	return strings.TrimSpace(sb.String())
}

// IsMorse reports whether text consists only of '.', '-', '/' and ' '.
// The empty string is Morse.
func IsMorse(text string) bool {
	return lo.EveryBy([]rune(text), func(r rune) bool {
		return r == '.' || r == '-' || r == '/' || r == ' '
	})
}

// ContainsMorse reports whether text has at least one '.', '-' or '/'.
func ContainsMorse(text string) bool {
	return lo.SomeBy([]rune(text), func(r rune) bool {
		return r == '.' || r == '-' || r == '/'
	})
}

var std = New()

// Encode encodes text with the standard table.
func Encode(text string) string { return std.Encode(text) }

// Decode decodes morse with the standard table.
func Decode(morse string) string { return std.Decode(morse) }

// Translate translates mixed content with the standard table.
func Translate(text string) string { return std.Translate(text) }

// LookupCode looks ch up in the standard table.
func LookupCode(ch rune) (string, bool) { return std.LookupCode(ch) }

// LookupCharacter looks token up in the standard table.
func LookupCharacter(token string) (rune, bool) { return std.LookupCharacter(token) }

// Entries lists the standard table.
func Entries() []Entry { return std.table.Entries() }
