package tagread

import (
	"encoding/hex"
	"strings"
	"unicode/utf8"
)

// FormatTagID renders a tag UID as 0x-prefixed lower-case hex.
// An empty UID renders as the empty string.
func FormatTagID(uid []byte) string {
	if len(uid) == 0 {
		return ""
	}
	return "0x" + hex.EncodeToString(uid)
}

// DecodeText decodes a record payload as US-ASCII text.
// Bytes outside the ASCII range become U+FFFD.
func DecodeText(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		if c < utf8.RuneSelf {
			sb.WriteByte(c)
		} else {
			sb.WriteRune(utf8.RuneError)
		}
	}
	return sb.String()
}
