package normalize

import "strings"

// ASCII replaces every run of code points outside the 7-bit ASCII range with
// a single space. Applying it twice yields the same result as applying it
// once, since the replacement character is itself ASCII.
func ASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	replaced := false
	for _, r := range s {
		if r > 0x7F {
			if !replaced {
				b.WriteByte(' ')
				replaced = true
			}
			continue
		}
		b.WriteRune(r)
		replaced = false
	}
	return b.String()
}

// Collapse squeezes interior whitespace runs to single spaces and trims the
// ends. HTML text nodes carry the source document's indentation, so scraped
// strings need this before they are stored or compared.
func Collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Clean is the normalization applied to every extracted string: non-ASCII
// stripped, then whitespace collapsed.
func Clean(s string) string {
	return Collapse(ASCII(s))
}
