package main

import (
	"strconv"
	"strings"
)

// parseNumber is the default token-to-Cell conversion shared by NopHost and
// StdHost: a token that the dictionary lookup didn't resolve to a word is
// tried as a floating-point literal before the outer interpreter gives up
// and aborts NotAWord.
func parseNumber(buf []byte) (Cell, bool) {
	s := strings.TrimSpace(string(buf))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return Cell(v), true
}
