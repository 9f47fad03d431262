package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wakeupvoter-be/models"
	"wakeupvoter-be/store"
)

func discussionRouter(s *store.Store) *gin.Engine {
	dc := NewDiscussionController(s)
	r := gin.New()
	r.GET("/api/discussions", dc.List)
	r.POST("/api/discussions", dc.Create)
	r.PUT("/api/discussions/:id", dc.Update)
	return r
}

func TestDiscussionBlocklistRejects(t *testing.T) {
	s := store.NewMemory()
	r := discussionRouter(s)

	user := seedUser(t, s)
	issue := seedIssue(t, s, "Hospital understaffed", models.Health)

	w := doRequest(t, r, http.MethodPost, "/api/discussions", gin.H{
		"issueId": issue.ID.Hex(),
		"userId":  user.ID.Hex(),
		"content": "This is fuelled by Hate and nothing else",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	count, err := s.Discussions.CountByIssue(context.Background(), issue.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestDiscussionThreatAllowed(t *testing.T) {
	s := store.NewMemory()
	r := discussionRouter(s)

	user := seedUser(t, s)
	issue := seedIssue(t, s, "Hospital understaffed", models.Health)

	// "threat" is only blocked for promise comments, not discussions
	w := doRequest(t, r, http.MethodPost, "/api/discussions", gin.H{
		"issueId": issue.ID.Hex(),
		"userId":  user.ID.Hex(),
		"content": "Understaffing is a threat to patient safety",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestDiscussionModerationStampsModeratedAt(t *testing.T) {
	s := store.NewMemory()
	r := discussionRouter(s)

	user := seedUser(t, s)
	issue := seedIssue(t, s, "Hospital understaffed", models.Health)

	discussion := models.Discussion{
		IssueID: issue.ID,
		UserID:  user.ID,
		Content: "The night shift has a single doctor",
	}
	require.NoError(t, s.Discussions.Create(context.Background(), &discussion))

	w := doRequest(t, r, http.MethodPut, "/api/discussions/"+discussion.ID.Hex(), gin.H{
		"isModerated": true,
		"moderatedBy": "moderator-1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	listed, _, err := s.Discussions.List(context.Background(), store.DiscussionFilter{IssueID: &issue.ID})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.True(t, listed[0].IsModerated)
	require.NotNil(t, listed[0].ModeratedAt)
	require.NotNil(t, listed[0].ModeratedBy)
	assert.Equal(t, "moderator-1", *listed[0].ModeratedBy)
}

func TestDiscussionSoftDeleteHidesFromList(t *testing.T) {
	s := store.NewMemory()
	r := discussionRouter(s)

	user := seedUser(t, s)
	issue := seedIssue(t, s, "Hospital understaffed", models.Health)

	discussion := models.Discussion{
		IssueID: issue.ID,
		UserID:  user.ID,
		Content: "Off topic",
	}
	require.NoError(t, s.Discussions.Create(context.Background(), &discussion))

	w := doRequest(t, r, http.MethodPut, "/api/discussions/"+discussion.ID.Hex(), gin.H{
		"isDeleted": true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	listed, total, err := s.Discussions.List(context.Background(), store.DiscussionFilter{IssueID: &issue.ID})
	require.NoError(t, err)
	assert.Empty(t, listed)
	assert.Equal(t, int64(0), total)
}

func TestDiscussionUpdateEmptyBodyLeavesRecordUnchanged(t *testing.T) {
	s := store.NewMemory()
	r := discussionRouter(s)

	user := seedUser(t, s)
	issue := seedIssue(t, s, "Hospital understaffed", models.Health)

	discussion := models.Discussion{
		IssueID: issue.ID,
		UserID:  user.ID,
		Content: "The night shift has a single doctor",
	}
	require.NoError(t, s.Discussions.Create(context.Background(), &discussion))

	// A body with every field omitted is a valid no-op, not an error
	w := doRequest(t, r, http.MethodPut, "/api/discussions/"+discussion.ID.Hex(), gin.H{})
	require.Equal(t, http.StatusOK, w.Code)

	listed, _, err := s.Discussions.List(context.Background(), store.DiscussionFilter{IssueID: &issue.ID})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "The night shift has a single doctor", listed[0].Content)
	assert.False(t, listed[0].IsModerated)
	assert.False(t, listed[0].IsDeleted)
}

func TestDiscussionMissingIssueOrUser(t *testing.T) {
	s := store.NewMemory()
	r := discussionRouter(s)

	user := seedUser(t, s)

	w := doRequest(t, r, http.MethodPost, "/api/discussions", gin.H{
		"issueId": "000000000000000000000001",
		"userId":  user.ID.Hex(),
		"content": "Where did this issue go",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
