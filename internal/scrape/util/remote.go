package util

import "strings"

var remoteHints = []string{
	"remote",
	"anywhere",
	"work from home",
	"distributed",
}

// LooksRemote reports whether free text (location, sometimes title)
// reads as a remote role. Crude substring heuristic, intentionally so:
// boards encode remoteness a dozen different ways and a keyword scan
// catches most of them.
func LooksRemote(text string) bool {
	if text == "" {
		return false
	}
	low := strings.ToLower(text)
	for _, hint := range remoteHints {
		if strings.Contains(low, hint) {
			return true
		}
	}
	return false
}
