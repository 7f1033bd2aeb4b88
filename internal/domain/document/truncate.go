package document

const (
	// MaxTextLength is counted in characters (runes), not model tokens.
	MaxTextLength = 15000

	TruncationMarker = "\n\n[Texto truncado devido ao tamanho excessivo]"
)

// Truncate keeps the first MaxTextLength characters of s and appends
// TruncationMarker when anything was cut. The bool reports whether it did.
func Truncate(s string) (string, bool) {
	if len(s) <= MaxTextLength {
		return s, false
	}
	n := 0
	for i := range s {
		if n == MaxTextLength {
			return s[:i] + TruncationMarker, true
		}
		n++
	}
	return s, false
}
