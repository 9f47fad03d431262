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

func accountabilityRouter(s *store.Store) *gin.Engine {
	ac := NewAccountabilityController(s)
	r := gin.New()
	r.GET("/api/accountability", ac.List)
	r.POST("/api/accountability", ac.Create)
	r.PUT("/api/accountability/:id", ac.Update)
	return r
}

func TestAccountabilityCreateAddsTimelineEntry(t *testing.T) {
	s := store.NewMemory()
	r := accountabilityRouter(s)

	issue := seedIssue(t, s, "Flooded underpass", models.Infrastructure)

	w := doRequest(t, r, http.MethodPost, "/api/accountability", gin.H{
		"issueId":        issue.ID.Hex(),
		"promiseType":    "municipal",
		"promisor":       "Ward Councillor",
		"promise":        "Drainage will be fixed",
		"promisedDate":   time.Now().Format(time.RFC3339),
		"expectedAction": "New drainage line before monsoon",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	entries, err := s.Timeline.ListRecent(context.Background(), issue.ID, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.SourceAccountability, entries[0].Source)
	assert.Equal(t, "वादा दर्ज किया गया: Drainage will be fixed", entries[0].Description)
}

func TestAccountabilityCompletedAtStampedOnTransition(t *testing.T) {
	s := store.NewMemory()
	r := accountabilityRouter(s)

	issue := seedIssue(t, s, "Flooded underpass", models.Infrastructure)
	record := models.Accountability{
		IssueID:        issue.ID,
		PromiseType:    "municipal",
		Promisor:       "Ward Councillor",
		Promise:        "Drainage will be fixed",
		PromisedDate:   time.Now(),
		ExpectedAction: "New drainage line",
		Status:         models.AccountabilityPending,
		CreatedAt:      time.Now(),
		LastUpdated:    time.Now(),
	}
	require.NoError(t, s.Accountability.Create(context.Background(), &record))

	w := doRequest(t, r, http.MethodPut, "/api/accountability/"+record.ID.Hex(), gin.H{
		"status":       "completed",
		"actualAction": "Drainage line laid",
	})
	require.Equal(t, http.StatusOK, w.Code)

	records, _, err := s.Accountability.List(context.Background(), store.AccountabilityFilter{IssueID: &issue.ID})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.AccountabilityCompleted, records[0].Status)
	require.NotNil(t, records[0].CompletedAt)
	assert.WithinDuration(t, time.Now(), *records[0].CompletedAt, time.Minute)
}

func TestAccountabilityExplicitCompletedAtPreserved(t *testing.T) {
	s := store.NewMemory()
	r := accountabilityRouter(s)

	issue := seedIssue(t, s, "Flooded underpass", models.Infrastructure)
	record := models.Accountability{
		IssueID:        issue.ID,
		PromiseType:    "municipal",
		Promisor:       "Ward Councillor",
		Promise:        "Drainage will be fixed",
		PromisedDate:   time.Now(),
		ExpectedAction: "New drainage line",
		Status:         models.AccountabilityPending,
		CreatedAt:      time.Now(),
		LastUpdated:    time.Now(),
	}
	require.NoError(t, s.Accountability.Create(context.Background(), &record))

	explicit := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	w := doRequest(t, r, http.MethodPut, "/api/accountability/"+record.ID.Hex(), gin.H{
		"status":      "completed",
		"completedAt": explicit.Format(time.RFC3339),
	})
	require.Equal(t, http.StatusOK, w.Code)

	records, _, err := s.Accountability.List(context.Background(), store.AccountabilityFilter{IssueID: &issue.ID})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.NotNil(t, records[0].CompletedAt)
	assert.True(t, records[0].CompletedAt.Equal(explicit))
}

func TestAccountabilityRejectsUnknownStatus(t *testing.T) {
	s := store.NewMemory()
	r := accountabilityRouter(s)

	issue := seedIssue(t, s, "Flooded underpass", models.Infrastructure)
	record := models.Accountability{
		IssueID:      issue.ID,
		PromiseType:  "municipal",
		Promisor:     "Ward Councillor",
		Promise:      "Drainage will be fixed",
		PromisedDate: time.Now(),
		Status:       models.AccountabilityPending,
	}
	require.NoError(t, s.Accountability.Create(context.Background(), &record))

	w := doRequest(t, r, http.MethodPut, "/api/accountability/"+record.ID.Hex(), gin.H{
		"status": "abandoned",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
