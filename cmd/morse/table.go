// Package morse translates between plain text and Morse code.
package morse

import (
	"github.com/samber/lo"
)

// WordSeparator is the token that stands for the space character.
const WordSeparator = "/"

// Entry pairs a character with its Morse token.
type Entry struct {
	Char  rune
	Token string
}

// entries is the canonical table: letters, digits, punctuation, then space.
var entries = []Entry{
	{'A', ".-"}, {'B', "-..."}, {'C', "-.-."}, {'D', "-.."}, {'E', "."},
	{'F', "..-."}, {'G', "--."}, {'H', "...."}, {'I', ".."}, {'J', ".---"},
	{'K', "-.-"}, {'L', ".-.."}, {'M', "--"}, {'N', "-."}, {'O', "---"},
	{'P', ".--."}, {'Q', "--.-"}, {'R', ".-."}, {'S', "..."}, {'T', "-"},
	{'U', "..-"}, {'V', "...-"}, {'W', ".--"}, {'X', "-..-"}, {'Y', "-.--"},
	{'Z', "--.."},
	{'0', "-----"}, {'1', ".----"}, {'2', "..---"}, {'3', "...--"}, {'4', "....-"},
	{'5', "....."}, {'6', "-...."}, {'7', "--..."}, {'8', "---.."}, {'9', "----."},
	{',', "--..--"}, {'.', ".-.-.-"}, {'?', "..--.."}, {'\'', ".----."},
	{'!', "-.-.--"}, {'/', "-..-."}, {'(', "-.--."}, {')', "-.--.-"},
	{'&', ".-..."}, {':', "---..."}, {';', "-.-.-."}, {'=', "-...-"},
	{'+', ".-.-."}, {'-', "-....-"}, {'_', "..--.-"}, {'"', ".-..-."},
	{'$', "...-..-"}, {'@', ".--.-."},
	{' ', WordSeparator},
}

// Table is an immutable bidirectional index over the Morse alphabet.
// Lookups are case-sensitive: only upper case letters are present.
type Table struct {
	toToken map[rune]string
	toChar  map[string]rune
}

// NewTable builds both indexes from the canonical entry list.
func NewTable() *Table {
	toToken := lo.SliceToMap(entries, func(e Entry) (rune, string) {
		return e.Char, e.Token
	})
	return &Table{
		toToken: toToken,
		toChar:  lo.Invert(toToken),
	}
}

// LookupCode returns the token for ch, if the table has one.
func (t *Table) LookupCode(ch rune) (string, bool) {
	token, ok := t.toToken[ch]
	return token, ok
}

// LookupCharacter returns the character for token, if the table has one.
func (t *Table) LookupCharacter(token string) (rune, bool) {
	ch, ok := t.toChar[token]
	return ch, ok
}

// Entries returns a copy of the table in canonical order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.toToken)
}
