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

type FactCheckController struct {
	Store *store.Store
}

func NewFactCheckController(s *store.Store) *FactCheckController {
	return &FactCheckController{Store: s}
}

// List returns fact checks attached to issues
func (fc *FactCheckController) List(c *gin.Context) {
	limit, offset := pageParams(c, 10)

	issueID, ok := queryObjectID(c, "issueId")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid issue ID")
		return
	}

	checks, total, err := fc.Store.FactChecks.List(c.Request.Context(), store.FactCheckFilter{
		IssueID:      issueID,
		IsMisleading: queryBool(c, "isMisleading"),
		Limit:        limit,
		Offset:       offset,
	})
	if err != nil {
		log.Println("Error listing fact checks:", err)
		respondError(c, http.StatusInternalServerError, "Failed to retrieve fact checks")
		return
	}

	respondPage(c, checks, total, limit, offset)
}

// Create attaches a claim-vs-reality record to an issue and notes it on
// the issue's timeline.
func (fc *FactCheckController) Create(c *gin.Context) {
	var input struct {
		IssueID      string  `json:"issueId" binding:"required"`
		Claim        string  `json:"claim" binding:"required"`
		Reality      string  `json:"reality" binding:"required"`
		IsMisleading bool    `json:"isMisleading"`
		Sources      string  `json:"sources,omitempty"`
		VerifiedBy   *string `json:"verifiedBy,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	issueID, err := primitive.ObjectIDFromHex(input.IssueID)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid issue ID")
		return
	}

	ctx := c.Request.Context()

	if _, err := fc.Store.Issues.GetByID(ctx, issueID); err != nil {
		if err == store.ErrNotFound {
			respondError(c, http.StatusNotFound, "Issue not found")
		} else {
			respondError(c, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	check := models.FactCheck{
		IssueID:      issueID,
		Claim:        utils.Sanitize(input.Claim),
		Reality:      utils.Sanitize(input.Reality),
		IsMisleading: input.IsMisleading,
		Sources:      input.Sources,
		VerifiedBy:   input.VerifiedBy,
		CreatedAt:    time.Now(),
	}
	if input.VerifiedBy != nil {
		now := time.Now()
		check.VerifiedAt = &now
	}

	if err := fc.Store.FactChecks.Create(ctx, &check); err != nil {
		log.Println("Error inserting fact check:", err)
		respondError(c, http.StatusInternalServerError, "Failed to create fact check")
		return
	}

	entry := models.TimelineEntry{
		IssueID:     issueID,
		EventType:   models.EventUpdated,
		Description: "फैक्ट चेक जोड़ा गया: " + check.Claim,
		Source:      models.SourceFactCheck,
		Date:        time.Now(),
	}
	if err := fc.Store.Timeline.Append(ctx, &entry); err != nil {
		log.Println("Error appending timeline entry:", err)
	}

	respondCreated(c, check)
}
