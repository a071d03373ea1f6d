// Package input reads numbers the way a formatted stream extraction does: it takes the
// longest numeric prefix of the first token and falls back to zero on anything else.
package input

import (
	"bufio"
	"errors"
	"io"
	"math"
	"strconv"
	"unicode"
)

// ReadFloat reads one number from r. Leading whitespace is skipped and reading stops at
// the first byte that cannot extend the number, so the rest of the stream is left alone.
// Absent or malformed input yields 0.
func ReadFloat(r io.Reader) float64 {
	br, ok := r.(io.ByteScanner)
	if !ok {
		br = bufio.NewReader(r)
	}

	if !skipSpace(br) {
		return 0
	}

	var token []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			break
		}
		if !extendsNumber(token, b) {
			//nolint:errcheck // UnreadByte after a successful ReadByte cannot fail
			br.UnreadByte()
			break
		}
		token = append(token, b)
	}

	return ParseFloat(string(token))
}

// ParseFloat parses the longest decimal floating-point prefix of s.
// It returns 0 when no prefix is a number or when an exponent marker has no digits,
// clamps overflow to ±math.MaxFloat64 and rejects inf, nan and hexadecimal forms.
func ParseFloat(s string) float64 {
	prefix := numericPrefix(s)
	if prefix == "" {
		return 0
	}

	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			switch {
			case math.IsInf(v, 1):
				return math.MaxFloat64
			case math.IsInf(v, -1):
				return -math.MaxFloat64
			}
			return v
		}
		return 0
	}
	return v
}

// numericPrefix returns the longest prefix of s matching
// [+-]? (digits [. digits?] | . digits) ([eE] [+-]? digits)?
// A mantissa followed by an exponent marker without digits is not a number, so the
// result is "" for "1e" and "2e+".
func numericPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	intDigits := countDigits(s[i:])
	i += intDigits

	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		fracDigits = countDigits(s[i+1:])
		if intDigits == 0 && fracDigits == 0 {
			return ""
		}
		i += 1 + fracDigits
	}

	if intDigits == 0 && fracDigits == 0 {
		return ""
	}

	mantissaEnd := i
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		n := countDigits(s[j:])
		if n == 0 {
			return ""
		}
		return s[:j+n]
	}

	return s[:mantissaEnd]
}

func countDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

// extendsNumber reports whether appending b to token still spells a prefix of
// [+-]? digits [. digits] ([eE] [+-]? digits)?
func extendsNumber(token []byte, b byte) bool {
	var digits, dot, exp bool
	for _, c := range token {
		switch {
		case c >= '0' && c <= '9':
			digits = true
		case c == '.':
			dot = true
		case c == 'e', c == 'E':
			exp = true
		}
	}

	switch {
	case b >= '0' && b <= '9':
		return true
	case b == '+', b == '-':
		if len(token) == 0 {
			return true
		}
		last := token[len(token)-1]
		return last == 'e' || last == 'E'
	case b == '.':
		return !dot && !exp
	case b == 'e', b == 'E':
		return digits && !exp
	}
	return false
}

// skipSpace consumes leading whitespace and reports whether a non-space byte follows.
func skipSpace(br io.ByteScanner) bool {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return false
		}
		if !unicode.IsSpace(rune(b)) {
			//nolint:errcheck // UnreadByte after a successful ReadByte cannot fail
			br.UnreadByte()
			return true
		}
	}
}
