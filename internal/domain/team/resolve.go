package team

import "strings"

// ResolveText splits detected text on whitespace runs and returns the ids of
// every token that exactly matches a known abbreviation, in reading order.
// Duplicate occurrences are kept; the caller decides how many it consumes.
func ResolveText(text string) []ID {
	var out []ID
	for _, token := range strings.Fields(text) {
		if id, ok := IDByCode[Code(token)]; ok {
			out = append(out, id)
		}
	}

	return out
}
