package notion

import "strings"

// NormalizeID strips everything that is not a hex digit from id and formats
// the remainder in the dashed 8-4-4-4-12 form the API expects. Notion IDs
// are pasted in many shapes (dashed, bare, with surrounding punctuation);
// after stripping, exactly 32 hex digits must remain.
func NormalizeID(id string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(id); i++ {
		if isHexDigit(id[i]) {
			b.WriteByte(id[i])
		}
	}

	clean := b.String()
	if len(clean) != 32 {
		return "", &InvalidIDError{Input: id, Length: len(clean)}
	}

	return clean[0:8] + "-" + clean[8:12] + "-" + clean[12:16] + "-" + clean[16:20] + "-" + clean[20:32], nil
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
