package versioncheck

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// parseMajor reads an integer literal: surrounding whitespace, an optional
// sign, Unicode decimal digits, and single underscores between digits.
// Values outside the int range saturate to math.MinInt or math.MaxInt.
func parseMajor(text string) (int, error) {
	s := strings.TrimSpace(text)
	syntaxErr := &strconv.NumError{Func: "parseMajor", Num: text, Err: strconv.ErrSyntax}

	var b strings.Builder
	if s != "" && (s[0] == '+' || s[0] == '-') {
		b.WriteByte(s[0])
		s = s[1:]
	}

	prevDigit := false
	for _, r := range s {
		switch {
		case r == '_':
			if !prevDigit {
				return 0, syntaxErr
			}
			prevDigit = false
		case unicode.IsDigit(r):
			b.WriteByte(byte('0' + digitValue(r)))
			prevDigit = true
		default:
			return 0, syntaxErr
		}
	}
	if !prevDigit {
		return 0, syntaxErr
	}

	n, err := strconv.Atoi(b.String())
	if errors.Is(err, strconv.ErrRange) {
		// Atoi already clamps to the nearest bound.
		return n, nil
	}
	return n, err
}

// digitValue returns the value of a Unicode decimal digit. Nd digits are
// encoded in contiguous runs that start at zero.
func digitValue(r rune) int {
	zero := r
	for unicode.IsDigit(zero - 1) {
		zero--
	}
	return int(r-zero) % 10
}
