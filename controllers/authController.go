package controllers

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"wakeupvoter-be/models"
	"wakeupvoter-be/store"
	"wakeupvoter-be/utils"
)

type AuthController struct {
	Store *store.Store
}

func NewAuthController(s *store.Store) *AuthController {
	return &AuthController{Store: s}
}

// Register handles user registration
func (a *AuthController) Register(c *gin.Context) {
	var input struct {
		Name     string  `json:"name" binding:"required,max=50"`
		Email    string  `json:"email" binding:"required,email"`
		Password string  `json:"password" binding:"required,min=6"`
		City     *string `json:"city,omitempty"`
		State    *string `json:"state,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx := c.Request.Context()

	count, err := a.Store.Users.CountByEmail(ctx, input.Email)
	if err != nil {
		log.Println("Error checking existing user:", err)
		respondError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}
	if count > 0 {
		respondError(c, http.StatusBadRequest, "User with this email already exists")
		return
	}

	user := models.User{
		Name:      input.Name,
		Email:     input.Email,
		Password:  input.Password,
		City:      input.City,
		State:     input.State,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := user.HashPassword(); err != nil {
		log.Println("Error hashing password:", err)
		respondError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	if err := a.Store.Users.Create(ctx, &user); err != nil {
		log.Println("Error inserting user:", err)
		respondError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	respondCreated(c, gin.H{
		"id":        user.ID,
		"name":      user.Name,
		"email":     user.Email,
		"createdAt": user.CreatedAt,
	})
}

// Login handles user login and sets the auth cookie
func (a *AuthController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := a.Store.Users.GetByEmail(c.Request.Context(), input.Email)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if !user.ComparePassword(input.Password) {
		respondError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.ID.Hex())
	if err != nil {
		log.Println("Error generating token:", err)
		respondError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}
	environment := os.Getenv("GO_ENV")
	domain := os.Getenv("DOMAIN")

	// For production, don't set domain to allow cross-origin cookies
	if environment == "production" {
		domain = ""
	}

	cookie := &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		MaxAge:   3600,
		Path:     "/",
		Domain:   domain,
		Secure:   environment == "production",
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	}
	http.SetCookie(c.Writer, cookie)

	respondOK(c, gin.H{
		"id":        user.ID,
		"name":      user.Name,
		"email":     user.Email,
		"city":      user.City,
		"state":     user.State,
		"createdAt": user.CreatedAt,
	})
}

// Me returns the authenticated user's profile
func (a *AuthController) Me(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		respondError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	objectID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := a.Store.Users.GetByID(c.Request.Context(), objectID)
	if err != nil {
		respondError(c, http.StatusNotFound, "User not found")
		return
	}

	respondOK(c, gin.H{
		"id":        user.ID,
		"name":      user.Name,
		"email":     user.Email,
		"city":      user.City,
		"state":     user.State,
		"createdAt": user.CreatedAt,
	})
}

// Logout clears the auth_token cookie
func (a *AuthController) Logout(c *gin.Context) {
	environment := os.Getenv("GO_ENV")
	domain := os.Getenv("DOMAIN")

	c.SetCookie("auth_token", "", -1, "/", domain, environment == "production", true)
	respondOK(c, gin.H{"message": "Logged out successfully"})
}
