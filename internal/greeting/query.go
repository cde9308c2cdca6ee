package greeting

import (
	"net/url"
	"strings"
)

// ParseQuery decodes a raw query string. Well-formed queries go through
// url.ParseQuery. When that fails, every pair is decoded leniently instead of
// being dropped: only '&' separates pairs, '+' becomes a space, and a '%' not
// followed by two hex digits is kept as literal text. Invalid UTF-8 is
// replaced with U+FFFD.
func ParseQuery(rawQuery string) url.Values {
	if values, err := url.ParseQuery(rawQuery); err == nil {
		return values
	}

	values := make(url.Values)
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		key = lenientUnescape(key)
		values[key] = append(values[key], lenientUnescape(value))
	}
	return values
}

func lenientUnescape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '+':
			b.WriteByte(' ')
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		default:
			b.WriteByte(c)
		}
	}
	return strings.ToValidUTF8(b.String(), "�")
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
