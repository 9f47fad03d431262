package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Blocklists for user-submitted free text. The check is a plain
// case-insensitive substring scan, so legitimate text that merely
// mentions a blocked topic is rejected too. Known limitation.
var (
	DiscussionBlocklist = []string{"abuse", "caste", "religion", "hate", "violence"}
	CommentBlocklist    = []string{"abuse", "caste", "religion", "hate", "violence", "threat"}
)

var strictPolicy = bluemonday.StrictPolicy()

// Sanitize strips all HTML from user-submitted text before it is
// moderated or persisted.
func Sanitize(content string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(content))
}

// BlockedTerm returns the first blocklisted term contained in the
// content, case-insensitively, and whether one was found.
func BlockedTerm(content string, blocklist []string) (string, bool) {
	lowered := strings.ToLower(content)
	for _, term := range blocklist {
		if strings.Contains(lowered, term) {
			return term, true
		}
	}
	return "", false
}
