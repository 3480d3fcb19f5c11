package textutil

import "strings"

// Sanitize replaces control characters so document text cannot inject
// terminal escape sequences when drawn. Tabs are left alone; ExpandTabs
// handles them with column awareness.
func Sanitize(text string) string {
	clean := true
	for _, r := range text {
		if requiresSanitization(r) {
			clean = false
			break
		}
	}
	if clean {
		return text
	}

	var b strings.Builder
	for _, r := range text {
		switch {
		case r == '\n' || r == '\r':
			b.WriteByte(' ')
		case (r >= 0 && r < 0x20 && r != '\t') || r == 0x7f:
			b.WriteByte('?')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func requiresSanitization(r rune) bool {
	if r == '\t' {
		return false
	}
	return (r >= 0 && r < 0x20) || r == 0x7f
}
