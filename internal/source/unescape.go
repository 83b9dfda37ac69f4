package source

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// UnescapeKey returns the literal name denoted by a context key. A quoted key
// ("a \"b\"") is stripped of its quotes and un-escaped; any other text is
// returned unchanged. Malformed escapes are kept verbatim.
func UnescapeKey(raw string) string {
	if len(raw) < 2 || raw[0] != '"' || raw[len(raw)-1] != '"' {
		return raw
	}
	body := raw[1 : len(raw)-1]
	if !strings.ContainsRune(body, '\\') {
		return body
	}
	var sb strings.Builder
	sb.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' || i+1 >= len(body) {
			sb.WriteByte(c)
			continue
		}
		next := body[i+1]
		switch next {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case '"', '\'', '\\':
			sb.WriteByte(next)
		case 'u':
			if i+6 <= len(body) {
				if v, err := strconv.ParseUint(body[i+2:i+6], 16, 32); err == nil {
					var buf [utf8.UTFMax]byte
					n := utf8.EncodeRune(buf[:], rune(v))
					sb.Write(buf[:n])
					i += 5
					continue
				}
			}
			sb.WriteByte(c)
			sb.WriteByte(next)
		default:
			sb.WriteByte(c)
			sb.WriteByte(next)
		}
		i++
	}
	return sb.String()
}
