package intent

import (
	"regexp"
	"strings"
	"unicode"
)

const defaultLocation = "your area"

var (
	locationPattern = regexp.MustCompile(`\b(?:in|for)\s+([a-zA-Z\-\s]+)`)
	locationStop    = regexp.MustCompile(`\b(?:today|now|tomorrow|please)\b`)
)

// ExtractLocation finds the place named after "in" or "for", dropping a
// trailing today/now/tomorrow/please. Without one it falls back to a final
// alphabetic word, then to "your area".
func ExtractLocation(text string) string {
	if m := locationPattern.FindStringSubmatch(text); m != nil {
		loc := strings.TrimSpace(m[1])
		if stop := locationStop.FindStringIndex(loc); stop != nil {
			loc = loc[:stop[0]]
		}
		return strings.TrimSpace(loc)
	}

	tokens := strings.Fields(text)
	if len(tokens) > 0 && isAlpha(tokens[len(tokens)-1]) {
		return tokens[len(tokens)-1]
	}
	return defaultLocation
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
