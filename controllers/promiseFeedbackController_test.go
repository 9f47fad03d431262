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

func feedbackRouter(s *store.Store) *gin.Engine {
	fc := NewPromiseFeedbackController(s)
	r := gin.New()
	r.GET("/api/promise-votes", fc.ListVotes)
	r.POST("/api/promise-votes", fc.CastVote)
	r.GET("/api/promise-comments", fc.ListComments)
	r.POST("/api/promise-comments", fc.CreateComment)
	r.PUT("/api/promise-comments/:id", fc.UpdateComment)
	r.POST("/api/promise-fact-checks", fc.CreateFactCheck)
	r.POST("/api/promise-reminders", fc.CreateReminder)
	return r
}

func TestCastVoteCreatesThenOverwrites(t *testing.T) {
	s := store.NewMemory()
	r := feedbackRouter(s)

	user := seedUser(t, s)
	party := seedParty(t, s, "Jan Shakti Party")
	promise := seedPromise(t, s, party.ID, "Free electricity for farmers")

	w := doRequest(t, r, http.MethodPost, "/api/promise-votes", gin.H{
		"promiseId":  promise.ID.Hex(),
		"userId":     user.ID.Hex(),
		"vote":       "fulfilled",
		"confidence": 4,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Voting again must overwrite the verdict, not add a second row
	w = doRequest(t, r, http.MethodPost, "/api/promise-votes", gin.H{
		"promiseId":  promise.ID.Hex(),
		"userId":     user.ID.Hex(),
		"vote":       "broken",
		"confidence": 2,
	})
	require.Equal(t, http.StatusOK, w.Code)

	votes, err := s.PromiseVotes.List(context.Background(), store.PromiseVoteFilter{PromiseID: &promise.ID})
	require.NoError(t, err)
	require.Len(t, votes, 1)
	assert.Equal(t, models.VoteBroken, votes[0].Vote)
	assert.Equal(t, 2, votes[0].Confidence)
}

func TestCastVoteValidation(t *testing.T) {
	s := store.NewMemory()
	r := feedbackRouter(s)

	user := seedUser(t, s)
	party := seedParty(t, s, "Jan Shakti Party")
	promise := seedPromise(t, s, party.ID, "New hospitals in every district")

	w := doRequest(t, r, http.MethodPost, "/api/promise-votes", gin.H{
		"promiseId":  promise.ID.Hex(),
		"userId":     user.ID.Hex(),
		"vote":       "maybe",
		"confidence": 3,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, http.MethodPost, "/api/promise-votes", gin.H{
		"promiseId":  promise.ID.Hex(),
		"userId":     user.ID.Hex(),
		"vote":       "fulfilled",
		"confidence": 6,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, http.MethodPost, "/api/promise-votes", gin.H{
		"promiseId":  "000000000000000000000001",
		"userId":     user.ID.Hex(),
		"vote":       "fulfilled",
		"confidence": 3,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateCommentBlocklist(t *testing.T) {
	s := store.NewMemory()
	r := feedbackRouter(s)

	user := seedUser(t, s)
	party := seedParty(t, s, "Jan Shakti Party")
	promise := seedPromise(t, s, party.ID, "Clean drinking water")

	w := doRequest(t, r, http.MethodPost, "/api/promise-comments", gin.H{
		"promiseId": promise.ID.Hex(),
		"userId":    user.ID.Hex(),
		"content":   "This is a Threat to all of us",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	count, err := s.PromiseComments.CountByPromise(context.Background(), promise.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	w = doRequest(t, r, http.MethodPost, "/api/promise-comments", gin.H{
		"promiseId": promise.ID.Hex(),
		"userId":    user.ID.Hex(),
		"content":   "Still waiting for the pipeline in our village",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestUpdateCommentModeratesAndHides(t *testing.T) {
	s := store.NewMemory()
	r := feedbackRouter(s)

	user := seedUser(t, s)
	party := seedParty(t, s, "Jan Shakti Party")
	promise := seedPromise(t, s, party.ID, "Clean drinking water")

	w := doRequest(t, r, http.MethodPost, "/api/promise-comments", gin.H{
		"promiseId": promise.ID.Hex(),
		"userId":    user.ID.Hex(),
		"content":   "The pipeline work stopped last month",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	comments, _, err := s.PromiseComments.List(context.Background(), store.PromiseCommentFilter{PromiseID: &promise.ID})
	require.NoError(t, err)
	require.Len(t, comments, 1)
	commentID := comments[0].ID

	w = doRequest(t, r, http.MethodPut, "/api/promise-comments/"+commentID.Hex(), gin.H{
		"isModerated": true,
		"moderatedBy": "moderator-1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	comments, _, err = s.PromiseComments.List(context.Background(), store.PromiseCommentFilter{PromiseID: &promise.ID})
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.True(t, comments[0].IsModerated)
	require.NotNil(t, comments[0].ModeratedAt)
	require.NotNil(t, comments[0].ModeratedBy)
	assert.Equal(t, "moderator-1", *comments[0].ModeratedBy)

	// Soft delete removes the comment from listings
	w = doRequest(t, r, http.MethodPut, "/api/promise-comments/"+commentID.Hex(), gin.H{
		"isDeleted": true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	comments, _, err = s.PromiseComments.List(context.Background(), store.PromiseCommentFilter{PromiseID: &promise.ID})
	require.NoError(t, err)
	assert.Len(t, comments, 0)

	w = doRequest(t, r, http.MethodPut, "/api/promise-comments/000000000000000000000001", gin.H{
		"isDeleted": true,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateFactCheckMarksPromiseVerified(t *testing.T) {
	s := store.NewMemory()
	r := feedbackRouter(s)

	party := seedParty(t, s, "Jan Shakti Party")
	promise := seedPromise(t, s, party.ID, "Double farmer income")

	w := doRequest(t, r, http.MethodPost, "/api/promise-fact-checks", gin.H{
		"promiseId":  promise.ID.Hex(),
		"claim":      "Income has doubled",
		"reality":    "Income grew 12 percent",
		"rating":     "mostly_false",
		"verifiedBy": "editorial-team",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	updated, err := s.Promises.GetByID(context.Background(), promise.ID)
	require.NoError(t, err)
	assert.True(t, updated.IsVerified)
	assert.Equal(t, models.VerificationVerified, updated.VerificationLevel)
	require.NotNil(t, updated.VerifiedBy)
	assert.Equal(t, "editorial-team", *updated.VerifiedBy)
}

func TestCreateFactCheckRejectsUnknownRating(t *testing.T) {
	s := store.NewMemory()
	r := feedbackRouter(s)

	party := seedParty(t, s, "Jan Shakti Party")
	promise := seedPromise(t, s, party.ID, "Metro in every city")

	w := doRequest(t, r, http.MethodPost, "/api/promise-fact-checks", gin.H{
		"promiseId": promise.ID.Hex(),
		"claim":     "Metro built",
		"reality":   "Not started",
		"rating":    "pants_on_fire",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateReminderDefaults(t *testing.T) {
	s := store.NewMemory()
	r := feedbackRouter(s)

	user := seedUser(t, s)
	party := seedParty(t, s, "Jan Shakti Party")
	promise := seedPromise(t, s, party.ID, "Jobs for the youth")

	w := doRequest(t, r, http.MethodPost, "/api/promise-reminders", gin.H{
		"promiseId": promise.ID.Hex(),
		"userId":    user.ID.Hex(),
	})
	require.Equal(t, http.StatusCreated, w.Code)

	reminders, err := s.PromiseReminders.List(context.Background(), store.PromiseReminderFilter{
		UserID: &user.ID,
	})
	require.NoError(t, err)
	require.Len(t, reminders, 1)
	assert.Equal(t, "monthly", reminders[0].Type)
	assert.Equal(t, "30d", reminders[0].Frequency)
	assert.True(t, reminders[0].IsActive)
	assert.False(t, reminders[0].NextDue.IsZero())
}
