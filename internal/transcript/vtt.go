package transcript

import "strings"

var tagReplacer = strings.NewReplacer(
	"<c>", "", "</c>", "",
	"<i>", "", "</i>", "",
	"<b>", "", "</b>", "",
)

// ParseVTT reduces a WebVTT payload to plain transcript text: the format
// header, NOTE lines, cue-timing lines, blank lines and numeric cue
// indices are dropped, inline styling tags are stripped, and the kept cue
// lines are joined with single spaces in original order. Repeated caption
// lines (common in auto-captions) pass through verbatim.
func ParseVTT(payload string) string {
	var parts []string
	for _, line := range strings.Split(payload, "\n") {
		line = strings.TrimSpace(line)
		if line == "" ||
			strings.HasPrefix(line, "WEBVTT") ||
			strings.HasPrefix(line, "NOTE") ||
			strings.Contains(line, "-->") ||
			isNumeric(line) {
			continue
		}
		if clean := tagReplacer.Replace(line); clean != "" {
			parts = append(parts, clean)
		}
	}
	return strings.Join(parts, " ")
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
