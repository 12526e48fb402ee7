// Copyright 2024 The kwclass Authors. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package bytclass is a []byte counterpart of the kwclass package: it
// converts literal keywords into case-insensitive character-class
// pattern fragments, one bracket group per rune.
package bytclass

import (
	"unicode"
	"unicode/utf8"
)

// Pattern returns the case-insensitive character-class fragment for
// keyword b, one bracket group per rune: Pattern([]byte("ab")) is
// "[aA][bB]". Runes without case fill both slots of their group
// unchanged.
func Pattern(b []byte) []byte {
	return AppendPattern(make([]byte, 0, len(b)*4), b)
}

// AppendPattern appends the pattern fragment for b to dst and returns
// the extended buffer.
func AppendPattern(dst, b []byte) []byte {
	i := 0
	for ; i < len(b); i++ {
		c := b[i]
		if c >= utf8.RuneSelf {
			goto hasUnicode
		}
		dst = append(dst, '[', _lower[c], _upper[c], ']')
	}
	return dst

hasUnicode:
	for i < len(b) {
		r, size := utf8.DecodeRune(b[i:])
		i += size
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
