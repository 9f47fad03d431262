package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wakeupvoter-be/store"
)

func authRouter(s *store.Store) *gin.Engine {
	ac := NewAuthController(s)
	r := gin.New()
	r.POST("/api/auth/register", ac.Register)
	r.POST("/api/auth/login", ac.Login)
	return r
}

func TestRegisterAndLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	s := store.NewMemory()
	r := authRouter(s)

	w := doRequest(t, r, http.MethodPost, "/api/auth/register", gin.H{
		"name":     "Asha Verma",
		"email":    "asha@example.com",
		"password": "s3cret-pass",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Duplicate email is rejected
	w = doRequest(t, r, http.MethodPost, "/api/auth/register", gin.H{
		"name":     "Asha Again",
		"email":    "asha@example.com",
		"password": "another-pass",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "asha@example.com",
		"password": "s3cret-pass",
	})
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	var found bool
	for _, cookie := range cookies {
		if cookie.Name == "auth_token" && cookie.Value != "" {
			found = true
		}
	}
	assert.True(t, found, "login should set the auth_token cookie")

	w = doRequest(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "asha@example.com",
		"password": "wrong-pass",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
