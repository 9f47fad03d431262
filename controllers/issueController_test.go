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

func issueRouter(s *store.Store) *gin.Engine {
	ic := NewIssueController(s)
	r := gin.New()
	r.GET("/api/issues", ic.List)
	r.POST("/api/issues", ic.Create)
	r.GET("/api/issues/analytics", ic.Analytics)
	r.GET("/api/issues/:id", ic.GetByID)
	return r
}

func TestCreateIssueDerivesScoreAndPriority(t *testing.T) {
	s := store.NewMemory()
	r := issueRouter(s)

	w := doRequest(t, r, http.MethodPost, "/api/issues", gin.H{
		"title":           "Unemployment rising",
		"summary":         "Joblessness at a decade high",
		"description":     "Several sectors shed jobs this quarter",
		"category":        "economy",
		"localVsNational": "national",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	issues, _, err := s.Issues.List(context.Background(), store.IssueFilter{})
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, 100, issues[0].ImpactScore)
	assert.Equal(t, models.PriorityHigh, issues[0].Priority)
	assert.Equal(t, models.Active, issues[0].Status)

	// Creation seeds the timeline with the registration entry
	entries, err := s.Timeline.ListRecent(context.Background(), issues[0].ID, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "मुद्दा दर्ज किया गया", entries[0].Description)
	assert.Equal(t, models.SourceSystem, entries[0].Source)
}

func TestCreateIssueUnknownCategoryGetsBaseScore(t *testing.T) {
	s := store.NewMemory()
	r := issueRouter(s)

	w := doRequest(t, r, http.MethodPost, "/api/issues", gin.H{
		"title":       "Cricket stadium dispute",
		"summary":     "Dispute over stadium land",
		"description": "Ongoing litigation",
		"category":    "sports",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	issues, _, err := s.Issues.List(context.Background(), store.IssueFilter{})
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, 50, issues[0].ImpactScore)
	assert.Equal(t, models.PriorityLow, issues[0].Priority)
}

func TestListIssuesPagination(t *testing.T) {
	s := store.NewMemory()
	r := issueRouter(s)

	for i := 0; i < 12; i++ {
		seedIssue(t, s, "Issue", models.Health)
	}

	w := doRequest(t, r, http.MethodGet, "/api/issues?limit=10&offset=0", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	pagination := body["pagination"].(map[string]interface{})
	assert.Equal(t, float64(12), pagination["total"])
	assert.Equal(t, true, pagination["hasMore"])

	w = doRequest(t, r, http.MethodGet, "/api/issues?limit=10&offset=10", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	pagination = body["pagination"].(map[string]interface{})
	assert.Equal(t, false, pagination["hasMore"])
	assert.Len(t, body["data"].([]interface{}), 2)
}

func TestListIssuesClampsOversizedLimit(t *testing.T) {
	s := store.NewMemory()
	r := issueRouter(s)

	seedIssue(t, s, "Issue", models.Health)

	w := doRequest(t, r, http.MethodGet, "/api/issues?limit=500", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	pagination := body["pagination"].(map[string]interface{})
	assert.Equal(t, float64(100), pagination["limit"])

	// Non-positive limits fall back to the endpoint default
	w = doRequest(t, r, http.MethodGet, "/api/issues?limit=0", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	pagination = body["pagination"].(map[string]interface{})
	assert.Equal(t, float64(10), pagination["limit"])
}

func TestGetIssueNotFound(t *testing.T) {
	s := store.NewMemory()
	r := issueRouter(s)

	w := doRequest(t, r, http.MethodGet, "/api/issues/000000000000000000000001", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/issues/not-an-id", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIssueAnalytics(t *testing.T) {
	s := store.NewMemory()
	r := issueRouter(s)

	seedIssue(t, s, "Clinic shortage", models.Health)
	seedIssue(t, s, "Clinic shortage two", models.Health)
	seedIssue(t, s, "School dropout", models.Education)

	w := doRequest(t, r, http.MethodGet, "/api/issues/analytics", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["totalIssues"])
	assert.Equal(t, float64(3), data["openIssues"])
	assert.Len(t, data["issuesByCategory"].([]interface{}), 2)
	assert.Len(t, data["last7Days"].([]interface{}), 7)
}
