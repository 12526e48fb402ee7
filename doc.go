// Copyright 2024 The kwclass Authors. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package kwclass converts literal keywords into case-insensitive
// character-class pattern fragments: "ab" becomes "[aA][bB]".
//
// Each rune of the keyword produces one bracket group holding its lower
// and upper case forms. Simple Unicode case mapping is used; runes
// without case occupy both slots of their group unchanged, so "1"
// becomes "[11]".
//
// The fragments are intended for embedding literal keywords into
// regular expressions that must match case-insensitively without
// enabling a global case-insensitive flag. Regular expression
// metacharacters in the keyword are not escaped.
package kwclass

// BUG(kwclass): There is no mechanism for full case folding, that is, for
// characters whose upper or lower case forms involve multiple runes in the
// output (see: https://pkg.go.dev/unicode#pkg-note-BUG).
