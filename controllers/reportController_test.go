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

func reportRouter(s *store.Store) *gin.Engine {
	rc := NewReportController(s)
	r := gin.New()
	r.GET("/api/reports", rc.List)
	r.POST("/api/reports", rc.Create)
	r.POST("/api/reports/:id/upvote", rc.Upvote)
	return r
}

func TestCreateReportLinksMatchingIssue(t *testing.T) {
	s := store.NewMemory()
	r := reportRouter(s)

	user := seedUser(t, s)
	issue := seedIssue(t, s, "Broken roads in Patna", models.Infrastructure)

	w := doRequest(t, r, http.MethodPost, "/api/reports", gin.H{
		"userId":      user.ID.Hex(),
		"title":       "Potholes everywhere",
		"description": "The main road has not been repaired in years",
		"category":    "infrastructure",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	ctx := context.Background()
	reports, _, err := s.Reports.List(ctx, store.ReportFilter{})
	require.NoError(t, err)
	require.Len(t, reports, 1)
	require.NotNil(t, reports[0].IssueID)
	assert.Equal(t, issue.ID, *reports[0].IssueID)

	// Linking also leaves exactly one report entry on the timeline
	entries, err := s.Timeline.ListRecent(ctx, issue.ID, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.SourceCitizenReport, entries[0].Source)
	assert.Equal(t, "नई स्थानीय रिपोर्ट: Potholes everywhere", entries[0].Description)
}

func TestCreateReportNoMatchStaysUnlinked(t *testing.T) {
	s := store.NewMemory()
	r := reportRouter(s)

	user := seedUser(t, s)
	seedIssue(t, s, "River pollution", models.Environment)

	w := doRequest(t, r, http.MethodPost, "/api/reports", gin.H{
		"userId":      user.ID.Hex(),
		"title":       "School fees doubled",
		"description": "The local school raised fees without notice",
		"category":    "education",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	reports, _, err := s.Reports.List(context.Background(), store.ReportFilter{})
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Nil(t, reports[0].IssueID)
	assert.Equal(t, models.ReportPending, reports[0].Status)
}

func TestCreateReportUnknownUser(t *testing.T) {
	s := store.NewMemory()
	r := reportRouter(s)

	w := doRequest(t, r, http.MethodPost, "/api/reports", gin.H{
		"userId":      "000000000000000000000001",
		"title":       "Anything",
		"description": "Anything at all",
		"category":    "health",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpvoteToggles(t *testing.T) {
	s := store.NewMemory()
	r := reportRouter(s)

	user := seedUser(t, s)
	report := models.LocalReport{
		UserID:      user.ID,
		Title:       "Streetlights out",
		Description: "Whole block is dark at night",
		Category:    models.Infrastructure,
		Status:      models.ReportPending,
	}
	require.NoError(t, s.Reports.Create(context.Background(), &report))

	path := "/api/reports/" + report.ID.Hex() + "/upvote"
	body := gin.H{"userId": user.ID.Hex()}

	w := doRequest(t, r, http.MethodPost, path, body)
	require.Equal(t, http.StatusOK, w.Code)
	updated, err := s.Reports.GetByID(context.Background(), report.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Upvotes)

	w = doRequest(t, r, http.MethodPost, path, body)
	require.Equal(t, http.StatusOK, w.Code)
	updated, err = s.Reports.GetByID(context.Background(), report.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Upvotes)
}
