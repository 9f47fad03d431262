package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlockedTerm(t *testing.T) {
	term, blocked := BlockedTerm("This is pure HATE speech", DiscussionBlocklist)
	assert.True(t, blocked)
	assert.Equal(t, "hate", term)

	_, blocked = BlockedTerm("Roads in my area need repair", DiscussionBlocklist)
	assert.False(t, blocked)
}

func TestBlockedTermThreatOnlyInComments(t *testing.T) {
	content := "I consider this a threat to democracy"

	_, blocked := BlockedTerm(content, DiscussionBlocklist)
	assert.False(t, blocked)

	term, blocked := BlockedTerm(content, CommentBlocklist)
	assert.True(t, blocked)
	assert.Equal(t, "threat", term)
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "hello", Sanitize("<script>alert(1)</script>hello"))
	assert.Equal(t, "bold text", Sanitize("  <b>bold</b> text "))
}
