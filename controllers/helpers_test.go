package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"wakeupvoter-be/models"
	"wakeupvoter-be/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func seedUser(t *testing.T, s *store.Store) models.User {
	t.Helper()
	user := models.User{
		Name:      "Asha Verma",
		Email:     primitive.NewObjectID().Hex() + "@example.com",
		Password:  "hashed",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, s.Users.Create(context.Background(), &user))
	return user
}

func seedIssue(t *testing.T, s *store.Store, title string, category models.IssueCategory) models.Issue {
	t.Helper()
	score := models.ImpactScore(category, models.ScopeLocal)
	issue := models.Issue{
		Title:       title,
		Summary:     "summary",
		Description: "description",
		Category:    category,
		Scope:       models.ScopeLocal,
		ImpactScore: score,
		Priority:    models.PriorityForScore(score),
		Status:      models.Active,
		CreatedAt:   time.Now(),
		LastUpdated: time.Now(),
	}
	require.NoError(t, s.Issues.Create(context.Background(), &issue))
	return issue
}

func seedParty(t *testing.T, s *store.Store, name string) models.Party {
	t.Helper()
	party := models.Party{
		Name:      name,
		ShortName: "P",
		CreatedAt: time.Now(),
	}
	require.NoError(t, s.Parties.Create(context.Background(), &party))
	return party
}

func seedPromise(t *testing.T, s *store.Store, partyID primitive.ObjectID, title string) models.Promise {
	t.Helper()
	promise := models.Promise{
		Title:             title,
		Description:       "description",
		Category:          "economy",
		PartyID:           partyID,
		ElectionYear:      2024,
		PromiseDate:       time.Now().AddDate(-1, 0, 0),
		Status:            models.PromisePending,
		VerificationLevel: models.VerificationUnverified,
		CreatedAt:         time.Now(),
	}
	require.NoError(t, s.Promises.Create(context.Background(), &promise))
	return promise
}
