package transform

import (
	"encoding/base64"
	"regexp"
	"strings"
	"unicode/utf8"
)

// base64Pattern matches padded standard base64 in full.
var base64Pattern = regexp.MustCompile(`^(?:[A-Za-z0-9+/]{4})*(?:[A-Za-z0-9+/]{2}==|[A-Za-z0-9+/]{3}=)?$`)

// EncodeBase64 encodes the UTF-8 bytes of text with the standard padded alphabet.
func EncodeBase64(text string) string {
	return base64.StdEncoding.EncodeToString([]byte(text))
}

// IsBase64 reports whether text is complete, padded standard base64.
func IsBase64(text string) bool {
	return base64Pattern.MatchString(text)
}

// DecodeBase64 decodes text when it is valid padded base64.
// It returns false, and no text, when the input does not validate.
// Decoded bytes that are not valid UTF-8 become U+FFFD, one per maximal
// ill-formed subsequence as in the WHATWG UTF-8 decoder: E2 82 gives a
// single U+FFFD, FF FF gives two.
func DecodeBase64(text string) (string, bool) {
	if !IsBase64(text) {
		return "", false
	}
	raw, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return "", false
	}
	return toValidText(raw), true
}

// toValidText converts raw bytes to a string, replacing each maximal
// ill-formed subsequence with the replacement character.
func toValidText(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}

	var b strings.Builder
	b.Grow(len(raw) + 2)
	for len(raw) > 0 {
		r, size := utf8.DecodeRune(raw)
		if r == utf8.RuneError && size == 1 {
			b.WriteRune(utf8.RuneError)
			raw = raw[maximalSubpart(raw):]
			continue
		}
		b.WriteRune(r)
		raw = raw[size:]
	}
	return b.String()
}

// maximalSubpart returns how many bytes at the start of p form the longest
// prefix of some well-formed sequence. p must not start with a complete
// sequence. The result is at least 1.
func maximalSubpart(p []byte) int {
	lo, hi := byte(0x80), byte(0xBF)
	var need int
	switch lead := p[0]; {
	case lead >= 0xC2 && lead <= 0xDF:
		need = 1
	case lead == 0xE0:
		need, lo = 2, 0xA0
	case lead == 0xED:
		need, hi = 2, 0x9F
	case lead >= 0xE1 && lead <= 0xEF:
		need = 2
	case lead == 0xF0:
		need, lo = 3, 0x90
	case lead == 0xF4:
		need, hi = 3, 0x8F
	case lead >= 0xF1 && lead <= 0xF3:
		need = 3
	default:
		return 1
	}

	n := 1
	for n <= need && n < len(p) && p[n] >= lo && p[n] <= hi {
		n++
		lo, hi = 0x80, 0xBF
	}
	return n
}
