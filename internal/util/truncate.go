package util

// Truncate caps s at max characters (code points, not bytes), so multi-byte
// text is never cut mid-rune.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
