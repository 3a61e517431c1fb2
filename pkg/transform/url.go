package transform

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	// ErrInvalidPercentEncoding indicates a "%" not followed by two hex digits.
	ErrInvalidPercentEncoding = errors.New("invalid percent encoding")

	// ErrInvalidUTF8 indicates decoded bytes that do not form valid UTF-8.
	ErrInvalidUTF8 = errors.New("decoded text is not valid UTF-8")
)

const upperHex = "0123456789ABCDEF"

// EncodeURL percent-encodes every byte of text outside the unreserved set
// A-Z a-z 0-9 - _ . ! ~ * ' ( ), using uppercase hex digits.
func EncodeURL(text string) string {
	var builder strings.Builder
	builder.Grow(len(text))

	for i := 0; i < len(text); i++ {
		c := text[i]
		if isUnreserved(c) {
			builder.WriteByte(c)
			continue
		}
		builder.WriteByte('%')
		builder.WriteByte(upperHex[c>>4])
		builder.WriteByte(upperHex[c&0x0F])
	}

	return builder.String()
}

// DecodeURL reverses EncodeURL. Any "%XX" escape is decoded, including
// escapes of unreserved characters. "+" is kept as is.
func DecodeURL(text string) (string, error) {
	if strings.IndexByte(text, '%') < 0 {
		return text, nil
	}

	out := make([]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '%' {
			out = append(out, c)
			continue
		}
		if i+2 >= len(text) {
			return "", fmt.Errorf("%w: truncated escape at offset %d", ErrInvalidPercentEncoding, i)
		}
		hi, okHi := unhex(text[i+1])
		lo, okLo := unhex(text[i+2])
		if !okHi || !okLo {
			return "", fmt.Errorf("%w: %q at offset %d", ErrInvalidPercentEncoding, text[i:i+3], i)
		}
		out = append(out, hi<<4|lo)
		i += 2
	}

	if !utf8.Valid(out) {
		return "", ErrInvalidUTF8
	}
	return string(out), nil
}

func isUnreserved(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
