package morphemize

import (
	"strings"
	"unicode"
)

// cjkIdeographs covers the CJK ideograph code-point ranges: the unified
// ideograph block and its extensions, the compatibility ideograph
// blocks, and the ideographic number zero U+3007.
var cjkIdeographs = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x3007, Hi: 0x3007, Stride: 1}, // 〇
		{Lo: 0x3400, Hi: 0x4DBF, Stride: 1}, // Extension A
		{Lo: 0x4E00, Hi: 0x9FFF, Stride: 1}, // CJK Unified Ideographs
		{Lo: 0xF900, Hi: 0xFAFF, Stride: 1}, // Compatibility Ideographs
	},
	R32: []unicode.Range32{
		{Lo: 0x20000, Hi: 0x2A6DF, Stride: 1}, // Extension B
		{Lo: 0x2A700, Hi: 0x2B73F, Stride: 1}, // Extension C
		{Lo: 0x2B740, Hi: 0x2B81F, Stride: 1}, // Extension D
		{Lo: 0x2B820, Hi: 0x2CEAF, Stride: 1}, // Extension E
		{Lo: 0x2CEB0, Hi: 0x2EBEF, Stride: 1}, // Extension F
		{Lo: 0x2F800, Hi: 0x2FA1F, Stride: 1}, // Compatibility Supplement
		{Lo: 0x30000, Hi: 0x3134F, Stride: 1}, // Extension G
	},
}

// isCJK reports whether r is a CJK ideograph.
func isCJK(r rune) bool {
	return unicode.Is(cjkIdeographs, r)
}

// filterCJK returns only the CJK ideographs of s, in order. Latin
// text, punctuation and whitespace are discarded.
func filterCJK(s string) string {
	var b strings.Builder
	for _, r := range s {
		if isCJK(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
