package domain

import "strings"

// scanBalanced returns the index of the delimiter closing the one at openIdx,
// tracking a running open/close counter instead of parsing. Returns -1 when
// the text ends before the region closes.
//
// Known limitation: delimiters inside string or template literals and
// comments are counted like any other byte, so a stray brace in a template
// literal can mis-scan. The Verifier's brace-balance check is the safety net.
func scanBalanced(text string, openIdx int, open, close byte) int {
	depth := 0
	for i := openIdx; i < len(text); i++ {
		switch text[i] {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// indexAfter returns the index of the first occurrence of b at or after from,
// or -1.
func indexAfter(text string, from int, b byte) int {
	if from < 0 || from >= len(text) {
		return -1
	}
	idx := strings.IndexByte(text[from:], b)
	if idx < 0 {
		return -1
	}
	return from + idx
}
