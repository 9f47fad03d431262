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

type AccountabilityController struct {
	Store *store.Store
}

func NewAccountabilityController(s *store.Store) *AccountabilityController {
	return &AccountabilityController{Store: s}
}

// List returns accountability records, newest promised date first
func (ac *AccountabilityController) List(c *gin.Context) {
	limit, offset := pageParams(c, 10)

	issueID, ok := queryObjectID(c, "issueId")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid issue ID")
		return
	}

	records, total, err := ac.Store.Accountability.List(c.Request.Context(), store.AccountabilityFilter{
		IssueID:     issueID,
		Status:      c.Query("status"),
		PromiseType: c.Query("promiseType"),
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		log.Println("Error listing accountability records:", err)
		respondError(c, http.StatusInternalServerError, "Failed to retrieve accountability records")
		return
	}

	respondPage(c, records, total, limit, offset)
}

// Create files a promise made against an issue and notes it on the
// issue's timeline.
func (ac *AccountabilityController) Create(c *gin.Context) {
	var input struct {
		IssueID        string    `json:"issueId" binding:"required"`
		PromiseType    string    `json:"promiseType" binding:"required"`
		Promisor       string    `json:"promisor" binding:"required"`
		Promise        string    `json:"promise" binding:"required"`
		PromisedDate   time.Time `json:"promisedDate" binding:"required"`
		ExpectedAction string    `json:"expectedAction" binding:"required"`
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

	if _, err := ac.Store.Issues.GetByID(ctx, issueID); err != nil {
		if err == store.ErrNotFound {
			respondError(c, http.StatusNotFound, "Issue not found")
		} else {
			respondError(c, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	record := models.Accountability{
		IssueID:        issueID,
		PromiseType:    input.PromiseType,
		Promisor:       input.Promisor,
		Promise:        utils.Sanitize(input.Promise),
		PromisedDate:   input.PromisedDate,
		ExpectedAction: utils.Sanitize(input.ExpectedAction),
		Status:         models.AccountabilityPending,
		CreatedAt:      time.Now(),
		LastUpdated:    time.Now(),
	}
	if err := ac.Store.Accountability.Create(ctx, &record); err != nil {
		log.Println("Error inserting accountability record:", err)
		respondError(c, http.StatusInternalServerError, "Failed to create accountability record")
		return
	}

	entry := models.TimelineEntry{
		IssueID:     issueID,
		EventType:   models.EventUpdated,
		Description: "वादा दर्ज किया गया: " + record.Promise,
		Source:      models.SourceAccountability,
		Date:        time.Now(),
	}
	if err := ac.Store.Timeline.Append(ctx, &entry); err != nil {
		log.Println("Error appending timeline entry:", err)
	}

	respondCreated(c, record)
}

// Update records progress on a tracked promise. A transition to
// completed without an explicit timestamp stamps completedAt with the
// current time; an explicit timestamp is kept as supplied.
func (ac *AccountabilityController) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid record ID")
		return
	}

	var input struct {
		ActualAction *string    `json:"actualAction,omitempty"`
		Status       *string    `json:"status,omitempty"`
		CompletedAt  *time.Time `json:"completedAt,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if input.Status != nil {
		switch *input.Status {
		case models.AccountabilityPending, models.AccountabilityCompleted, models.AccountabilityOverdue:
		default:
			respondError(c, http.StatusBadRequest, "Invalid status")
			return
		}
	}

	upd := store.AccountabilityUpdate{
		ActualAction: input.ActualAction,
		Status:       input.Status,
		CompletedAt:  input.CompletedAt,
	}
	if input.Status != nil && *input.Status == models.AccountabilityCompleted && input.CompletedAt == nil {
		now := time.Now()
		upd.CompletedAt = &now
	}

	ctx := c.Request.Context()
	updated, err := ac.Store.Accountability.Update(ctx, id, upd)
	if err != nil {
		if err == store.ErrNotFound {
			respondError(c, http.StatusNotFound, "Accountability record not found")
		} else {
			respondError(c, http.StatusInternalServerError, "Failed to update accountability record")
		}
		return
	}

	if input.Status != nil {
		entry := models.TimelineEntry{
			IssueID:     updated.IssueID,
			EventType:   models.EventUpdated,
			Description: "वादा स्थिति अपडेट: " + *input.Status,
			Source:      models.SourceAccountability,
			Date:        time.Now(),
		}
		if err := ac.Store.Timeline.Append(ctx, &entry); err != nil {
			log.Println("Error appending timeline entry:", err)
		}
	}

	respondOK(c, updated)
}
