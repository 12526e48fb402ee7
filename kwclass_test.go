package kwclass

import (
	"testing"
	"unicode"
	"unicode/utf8"
)

type PatternTest struct {
	in  string
	out string
}

var patternTests = []PatternTest{
	{"", ""},
	{"a", "[aA]"},
	{"A", "[aA]"},
	{"ab", "[aA][bB]"},
	{"1", "[11]"},
	{"Zz!", "[zZ][zZ][!!]"},
	{"select", "[sS][eE][lL][eE][cC][tT]"},
	{"GROUP BY", "[gG][rR][oO][uU][pP][  ][bB][yY]"},
	{"x_1", "[xX][__][11]"},
	{"[a]", "[[[][aA][]]]"},
	// Unicode
	{"αΒ", "[αΑ][βΒ]"},
	{"İ", "[iİ]"},
	{"ſ", "[ſS]"},
	{"ß", "[ßß]"}, // no simple upper case mapping
	{"日", "[日日]"},
}

func TestPattern(t *testing.T) {
	for _, test := range patternTests {
		got := Pattern(test.in)
		if got != test.out {
			t.Errorf("Pattern(%q) = %q; want: %q", test.in, got, test.out)
		}
	}
}

func TestAppendPattern(t *testing.T) {
	for _, test := range patternTests {
		got := AppendPattern(nil, test.in)
		if string(got) != test.out {
			t.Errorf("AppendPattern(nil, %q) = %q; want: %q", test.in, got, test.out)
		}
	}
}

// AppendPattern must leave any existing prefix of dst intact.
func TestAppendPatternPrefix(t *testing.T) {
	dst := []byte("^")
	dst = AppendPattern(dst, "go")
	dst = append(dst, '$')
	want := "^[gG][oO]$"
	if string(dst) != want {
		t.Errorf("AppendPattern prefix = %q; want: %q", dst, want)
	}
}

func TestPatternLength(t *testing.T) {
	for _, test := range patternTests {
		n := utf8.RuneCountInString(test.in)
		got := utf8.RuneCountInString(Pattern(test.in))
		if got != 4*n {
			t.Errorf("Pattern(%q) rune count = %d; want: %d", test.in, got, 4*n)
		}
	}
}

func TestPatternGroups(t *testing.T) {
	for _, test := range patternTests {
		p := Pattern(test.in)
		i := 0
		for _, r := range test.in {
			lo := unicode.ToLower(r)
			up := unicode.ToUpper(r)
			for _, want := range [4]rune{'[', lo, up, ']'} {
				got, size := utf8.DecodeRuneInString(p[i:])
				if got != want {
					t.Fatalf("Pattern(%q): group for %q: got %q, want %q at offset %d",
						test.in, r, got, want, i)
				}
				i += size
			}
		}
		if i != len(p) {
			t.Errorf("Pattern(%q): %d bytes of trailing output: %q", test.in, len(p)-i, p[i:])
		}
	}
}

// Case mapping must be idempotent or the bracket pairs would not be
// stable under repeated transformation of their contents.
func TestCaseMappingIdempotent(t *testing.T) {
	for _, test := range patternTests {
		for _, r := range test.in {
			if lo := unicode.ToLower(r); unicode.ToLower(lo) != lo {
				t.Errorf("ToLower(ToLower(%q)) != ToLower(%q)", r, r)
			}
			if up := unicode.ToUpper(r); unicode.ToUpper(up) != up {
				t.Errorf("ToUpper(ToUpper(%q)) != ToUpper(%q)", r, r)
			}
		}
	}
}

func TestPatternInvalidUTF8(t *testing.T) {
	// Invalid bytes decode to utf8.RuneError, which is caseless, so the
	// transform stays total.
	p := Pattern("a\xffb")
	want := "[aA][��][bB]"
	if p != want {
		t.Errorf("Pattern(%q) = %q; want: %q", "a\xffb", p, want)
	}
}

var benchmarkString = "the quick brown fox JUMPS over the lazy dog 0123456789"

func BenchmarkPattern(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Pattern(benchmarkString)
	}
}

func BenchmarkAppendPattern(b *testing.B) {
	dst := make([]byte, 0, len(benchmarkString)*4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		AppendPattern(dst[:0], benchmarkString)
	}
}

func BenchmarkPatternUnicode(b *testing.B) {
	s := "Hello, 世界! ΑΒΔ αβδ İſß"
	for i := 0; i < b.N; i++ {
		Pattern(s)
	}
}
