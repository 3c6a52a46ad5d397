package domain

import "strings"

// TitleCase lowercases s and capitalizes the first letter of each word.
// Registration and biodata names are stored in this form so the
// case-insensitive duplicate-name check stays meaningful.
func TitleCase(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return ""
	}
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// NormalizePhone strips non-digits and canonicalizes Indonesian numbers
// to the leading-zero form ("62812..." becomes "0812...").
func NormalizePhone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	d := b.String()
	if d == "" {
		return ""
	}
	if strings.HasPrefix(d, "62") {
		d = "0" + d[2:]
	}
	if !strings.HasPrefix(d, "0") {
		d = "0" + d
	}
	return d
}
