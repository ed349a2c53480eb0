package provider

import (
	"regexp"
	"strings"
)

var (
	headingRe   = regexp.MustCompile(`(?m)^#\s+(.+?)\s*$`)
	adrPrefixRe = regexp.MustCompile(`^ADR\s+\d+:\s+`)
)

// ExtractTitle pulls the first markdown top-level heading out of content
// and strips any leading "ADR <n>:" numbering. Falls back to DefaultTitle
// when no heading exists.
func ExtractTitle(content string) string {
	m := headingRe.FindStringSubmatch(content)
	if m == nil {
		return DefaultTitle
	}
	title := strings.TrimSpace(adrPrefixRe.ReplaceAllString(m[1], ""))
	if title == "" {
		return DefaultTitle
	}
	return title
}
