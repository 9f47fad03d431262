package controllers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wakeupvoter-be/models"
	"wakeupvoter-be/store"
)

func pollRouter(s *store.Store) *gin.Engine {
	pc := NewPollController(s)
	r := gin.New()
	r.GET("/api/polls", pc.List)
	r.POST("/api/polls", pc.Create)
	r.PUT("/api/polls/:id", pc.Update)
	r.POST("/api/poll-votes", pc.Vote)
	return r
}

func seedPoll(t *testing.T, s *store.Store, active bool, endDate *time.Time) models.Poll {
	t.Helper()
	poll := models.Poll{
		Question:  "Was the promise kept?",
		Options:   []string{"yes", "no", "partially"},
		IsActive:  active,
		EndDate:   endDate,
		CreatedAt: time.Now(),
	}
	require.NoError(t, s.Polls.Create(context.Background(), &poll))
	return poll
}

func TestPollVoteRejectsInactiveAndEnded(t *testing.T) {
	s := store.NewMemory()
	r := pollRouter(s)

	inactive := seedPoll(t, s, false, nil)
	w := doRequest(t, r, http.MethodPost, "/api/poll-votes", gin.H{
		"pollId": inactive.ID.Hex(),
		"option": "yes",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	past := time.Now().Add(-time.Hour)
	ended := seedPoll(t, s, true, &past)
	w = doRequest(t, r, http.MethodPost, "/api/poll-votes", gin.H{
		"pollId": ended.ID.Hex(),
		"option": "yes",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPollVoteUserDeduplication(t *testing.T) {
	s := store.NewMemory()
	r := pollRouter(s)

	user := seedUser(t, s)
	poll := seedPoll(t, s, true, nil)

	body := gin.H{
		"pollId": poll.ID.Hex(),
		"userId": user.ID.Hex(),
		"option": "yes",
	}

	w := doRequest(t, r, http.MethodPost, "/api/poll-votes", body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, r, http.MethodPost, "/api/poll-votes", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	count, err := s.PollVotes.CountByPoll(context.Background(), poll.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestPollVoteAnonymousDeduplicationByIP(t *testing.T) {
	s := store.NewMemory()
	r := pollRouter(s)

	poll := seedPoll(t, s, true, nil)

	body := gin.H{
		"pollId":    poll.ID.Hex(),
		"option":    "no",
		"ipAddress": "203.0.113.7",
	}

	w := doRequest(t, r, http.MethodPost, "/api/poll-votes", body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, r, http.MethodPost, "/api/poll-votes", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPollVoteUserAndAnonymousChecksIndependent(t *testing.T) {
	s := store.NewMemory()
	r := pollRouter(s)

	user := seedUser(t, s)
	poll := seedPoll(t, s, true, nil)

	// Signed-in vote from an address
	w := doRequest(t, r, http.MethodPost, "/api/poll-votes", gin.H{
		"pollId":    poll.ID.Hex(),
		"userId":    user.ID.Hex(),
		"option":    "yes",
		"ipAddress": "203.0.113.7",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// An anonymous vote from the same address is still allowed
	w = doRequest(t, r, http.MethodPost, "/api/poll-votes", gin.H{
		"pollId":    poll.ID.Hex(),
		"option":    "no",
		"ipAddress": "203.0.113.7",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	poll2, err := s.Polls.GetByID(context.Background(), poll.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, poll2.TotalVotes)
}

func TestPollUpdateAdjustsActiveAndTotalVotes(t *testing.T) {
	s := store.NewMemory()
	r := pollRouter(s)

	poll := seedPoll(t, s, true, nil)

	w := doRequest(t, r, http.MethodPut, "/api/polls/"+poll.ID.Hex(), gin.H{
		"totalVotes": 42,
	})
	require.Equal(t, http.StatusOK, w.Code)

	fetched, err := s.Polls.GetByID(context.Background(), poll.ID)
	require.NoError(t, err)
	assert.Equal(t, 42, fetched.TotalVotes)
	assert.True(t, fetched.IsActive)

	w = doRequest(t, r, http.MethodPut, "/api/polls/"+poll.ID.Hex(), gin.H{
		"isActive": false,
	})
	require.Equal(t, http.StatusOK, w.Code)

	fetched, err = s.Polls.GetByID(context.Background(), poll.ID)
	require.NoError(t, err)
	assert.False(t, fetched.IsActive)
	assert.Equal(t, 42, fetched.TotalVotes)
}

func TestPollVoteRejectsUnknownOption(t *testing.T) {
	s := store.NewMemory()
	r := pollRouter(s)

	poll := seedPoll(t, s, true, nil)
	w := doRequest(t, r, http.MethodPost, "/api/poll-votes", gin.H{
		"pollId": poll.ID.Hex(),
		"option": "abstain",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
