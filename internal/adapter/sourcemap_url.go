package adapter

import (
	"net/url"
	"regexp"
	"strings"

	m "mapwright.dev/pkg/mapwright/internal/model"
)

// Matches //# sourceMappingURL=..., //@ sourceMappingURL=... and the CSS form
// /*# sourceMappingURL=... */.
var sourceMappingURLRe = regexp.MustCompile(`(?://|/\*)[#@]\s*sourceMappingURL\s*=\s*([^\s*]+)`)

// sourceMappingURLTail is how many trailing lines are searched for the comment.
const sourceMappingURLTail = 10

// ParseSourceMappingURL finds the sourceMappingURL comment in script content.
// Data URIs are returned as-is. Returns an empty string when there is none.
func ParseSourceMappingURL(content string) string {
	// Search from the end of the file (the comment is typically the last line)
	lines := strings.Split(strings.TrimSpace(content), "\n")

	start := len(lines) - sourceMappingURLTail
	if start < 0 {
		start = 0
	}

	for i := len(lines) - 1; i >= start; i-- {
		matches := sourceMappingURLRe.FindStringSubmatch(lines[i])
		if len(matches) >= 2 {
			return strings.TrimSpace(matches[1])
		}
	}

	return ""
}

// IsDataURI reports whether s is a data: URI.
func IsDataURI(s string) bool {
	return strings.HasPrefix(strings.ToLower(s), "data:")
}

// LocalMapPath resolves a sourceMappingURL value against the script at
// scriptPath and reports the map's file path when it lives on disk.
func LocalMapPath(scriptPath m.Path, raw string) (m.Path, bool) {
	if raw == "" || IsDataURI(raw) {
		return "", false
	}

	u, err := url.Parse(CompleteURL(fileURL(scriptPath), raw))
	if err != nil || u.Scheme != "file" {
		return "", false
	}

	return fileURLToPath(u)
}
