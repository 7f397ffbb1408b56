package usecase

import (
	"regexp"
	"strings"
)

// minQueryLen is the shortest query considered a usable relevance signal;
// anything shorter passes the content through untouched.
const minQueryLen = 5

var headingBoundary = regexp.MustCompile(`(?m)^#{1,3}\s+`)

// filterContent narrows content to the sections relevant to query. Sections
// are delimited by markdown headings of level 1 to 3 and matched by
// case-insensitive substring; matching sections are rejoined with a level-2
// heading separator. A query with no matching section returns the original
// content, never an empty result.
//
// This is deliberately cheap and lexical. Sections that are semantically
// relevant but share no wording with the query will be missed.
func filterContent(content, query string) string {
	query = strings.TrimSpace(query)
	if len(query) < minQueryLen {
		return content
	}

	var matched []string
	needle := strings.ToLower(query)
	for _, section := range headingBoundary.Split(content, -1) {
		if strings.TrimSpace(section) == "" {
			continue
		}
		if strings.Contains(strings.ToLower(section), needle) {
			matched = append(matched, strings.TrimSpace(section))
		}
	}

	if len(matched) == 0 {
		return content
	}
	return strings.Join(matched, "\n\n## ")
}
