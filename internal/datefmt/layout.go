package datefmt

import (
	"fmt"
	"strings"
)

// tokenLayouts maps supported pattern tokens to their Go reference-time
// equivalents. Tokens are maximal runs of the same letter, so "hh" and "h"
// are distinct lookups.
var tokenLayouts = map[string]string{
	"yyyy": "2006",
	"MMM":  "Jan",
	"MM":   "01",
	"dd":   "02",
	"d":    "2",
	"hh":   "03",
	"mm":   "04",
	"ss":   "05",
	"a":    "PM",
}

// compileLayout translates a token pattern into a Go time layout. Letter runs
// must match a supported token; digits are rejected because the reference
// time uses them as placeholders; everything else passes through as a literal.
func compileLayout(pattern string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(pattern); {
		c := pattern[i]
		if isLetter(c) {
			j := i
			for j < len(pattern) && pattern[j] == c {
				j++
			}
			token := pattern[i:j]
			layout, ok := tokenLayouts[token]
			if !ok {
				return "", fmt.Errorf("%w: unrecognized pattern token %q", ErrInvalidArgument, token)
			}
			b.WriteString(layout)
			i = j
			continue
		}
		if c >= '0' && c <= '9' {
			return "", fmt.Errorf("%w: literal digit %q not allowed in pattern", ErrInvalidArgument, string(c))
		}
		b.WriteByte(c)
		i++
	}
	return b.String(), nil
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
