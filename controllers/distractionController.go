package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"wakeupvoter-be/models"
	"wakeupvoter-be/store"
	"wakeupvoter-be/utils"
)

type DistractionController struct {
	Store *store.Store
}

func NewDistractionController(s *store.Store) *DistractionController {
	return &DistractionController{Store: s}
}

// List returns flagged distractions, most recently detected first
func (dc *DistractionController) List(c *gin.Context) {
	limit, offset := pageParams(c, 10)

	distractions, total, err := dc.Store.Distractions.List(c.Request.Context(), store.DistractionFilter{
		Category:    c.Query("category"),
		ImpactLevel: c.Query("impactLevel"),
		IsActive:    queryBool(c, "isActive"),
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		log.Println("Error listing distractions:", err)
		respondError(c, http.StatusInternalServerError, "Failed to retrieve distractions")
		return
	}

	respondPage(c, distractions, total, limit, offset)
}

// Create flags a media story as a distraction
func (dc *DistractionController) Create(c *gin.Context) {
	var input struct {
		Title       string `json:"title" binding:"required,max=300"`
		Description string `json:"description" binding:"required"`
		Category    string `json:"category" binding:"required"`
		ImpactLevel string `json:"impactLevel" binding:"required"`
		Reason      string `json:"reason" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	distraction := models.Distraction{
		Title:       utils.Sanitize(input.Title),
		Description: utils.Sanitize(input.Description),
		Category:    input.Category,
		ImpactLevel: input.ImpactLevel,
		Reason:      utils.Sanitize(input.Reason),
		IsActive:    true,
		DetectedAt:  time.Now(),
	}
	if err := dc.Store.Distractions.Create(c.Request.Context(), &distraction); err != nil {
		log.Println("Error inserting distraction:", err)
		respondError(c, http.StatusInternalServerError, "Failed to create distraction")
		return
	}

	respondCreated(c, distraction)
}

// Update activates or retires a distraction flag
func (dc *DistractionController) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid distraction ID")
		return
	}

	var input struct {
		IsActive *bool `json:"isActive" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := dc.Store.Distractions.SetActive(c.Request.Context(), id, *input.IsActive)
	if err != nil {
		if err == store.ErrNotFound {
			respondError(c, http.StatusNotFound, "Distraction not found")
		} else {
			respondError(c, http.StatusInternalServerError, "Failed to update distraction")
		}
		return
	}

	respondOK(c, updated)
}
