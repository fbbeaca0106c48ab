// Package strdecode implements the replay string decoding policy: a
// deterministic try-chain instead of guessing, as real replays mix UTF-8,
// Windows-1252 and Korean (EUC-KR) player/map/title strings depending on
// the client that recorded them.
package strdecode

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

// CString decodes a NUL-terminated (or NUL-padded) fixed-size field,
// returning the decoded string and the raw bytes up to (excluding) the
// terminating NUL (or the whole field if no NUL was found).
func CString(data []byte) (decoded, raw string) {
	raw = rawCString(data)
	return Decode(raw), raw
}

// rawCString trims a byte slice at its first NUL byte.
func rawCString(data []byte) string {
	for i, ch := range data {
		if ch == 0 {
			return string(data[:i])
		}
	}
	return string(data)
}

// Decode applies the string decoding try-chain described in §4.1:
// strict UTF-8, then Windows-1252, then ISO-8859-1, then Korean EUC-KR,
// and finally a byte-filtering fallback over printable ASCII, Latin-1
// supplement and Hangul syllable ranges. Each leg after UTF-8 runs only if
// the one before it returned an error or invalid UTF-8. The Windows-1252
// decoder maps every byte to a rune, so input that is not valid UTF-8 is
// decoded as Windows-1252 and the later legs are not reached. The result
// is trimmed of surrounding whitespace.
func Decode(raw string) string {
	if raw == "" {
		return raw
	}

	if utf8.ValidString(raw) {
		return strings.TrimSpace(raw)
	}

	if s, err := decodeWith(charmap.Windows1252, raw); err == nil && utf8.ValidString(s) {
		return strings.TrimSpace(s)
	}

	if s, err := decodeWith(charmap.ISO8859_1, raw); err == nil && utf8.ValidString(s) {
		return strings.TrimSpace(s)
	}

	if s, err := decodeWith(korean.EUCKR, raw); err == nil {
		s = strings.ReplaceAll(s, " ", "")
		s = strings.ReplaceAll(s, "�", "")
		if s != "" {
			return strings.TrimSpace(s)
		}
	}

	return strings.TrimSpace(filterPrintable(raw))
}

// decodeWith runs raw through the given encoding's decoder.
func decodeWith(enc encoding.Encoding, raw string) (string, error) {
	out, _, err := transform.String(enc.NewDecoder(), raw)
	return out, err
}

// filterPrintable keeps only bytes/runes considered safely printable:
// ASCII 0x20-0x7E, Latin-1 supplement 0xA0-0xFF, and Hangul syllables
// 0xAC00-0xD7AF (for sources that are already wide/UTF-16-derived).
func filterPrintable(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 0x20 && r <= 0x7E:
			b.WriteRune(r)
		case r >= 0xA0 && r <= 0xFF:
			b.WriteRune(r)
		case r >= 0xAC00 && r <= 0xD7AF:
			b.WriteRune(r)
		}
	}
	return b.String()
}
