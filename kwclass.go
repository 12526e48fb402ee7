package kwclass

import (
	"unicode"
	"unicode/utf8"
)

// Pattern returns the case-insensitive character-class fragment for
// keyword s, one bracket group per rune: Pattern("ab") is "[aA][bB]".
// Runes without case fill both slots of their group unchanged. An empty
// keyword yields an empty string; Pattern never fails for any input.
func Pattern(s string) string {
	if s == "" {
		return ""
	}
	return string(AppendPattern(make([]byte, 0, len(s)*4), s))
}

// AppendPattern appends the pattern fragment for s to dst and returns
// the extended buffer.
func AppendPattern(dst []byte, s string) []byte {
	i := 0
	for ; i < len(s); i++ {
		c := s[i]
		if c >= utf8.RuneSelf {
			goto hasUnicode
		}
		dst = append(dst, '[', _lower[c], _upper[c], ']')
	}
	return dst

hasUnicode:
	for _, r := range s[i:] {
		if r < utf8.RuneSelf {
			c := byte(r)
			dst = append(dst, '[', _lower[c], _upper[c], ']')
			continue
		}
		dst = append(dst, '[')
		dst = utf8.AppendRune(dst, unicode.ToLower(r))
		dst = utf8.AppendRune(dst, unicode.ToUpper(r))
		dst = append(dst, ']')
	}
	return dst
}
