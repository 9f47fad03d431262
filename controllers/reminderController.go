package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"wakeupvoter-be/models"
	"wakeupvoter-be/store"
)

type ReminderController struct {
	Store *store.Store
}

func NewReminderController(s *store.Store) *ReminderController {
	return &ReminderController{Store: s}
}

// List returns a user's reminders, soonest first. userId is mandatory;
// reminders are never listed across users.
func (rc *ReminderController) List(c *gin.Context) {
	raw := c.Query("userId")
	if raw == "" {
		respondError(c, http.StatusBadRequest, "userId is required")
		return
	}
	userID, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	reminders, err := rc.Store.Reminders.List(c.Request.Context(), store.ReminderFilter{
		UserID:   userID,
		Type:     c.Query("type"),
		IsActive: queryBool(c, "isActive"),
	})
	if err != nil {
		log.Println("Error listing reminders:", err)
		respondError(c, http.StatusInternalServerError, "Failed to retrieve reminders")
		return
	}

	respondOK(c, reminders)
}

// Create schedules a reminder for a user, optionally tied to an issue
func (rc *ReminderController) Create(c *gin.Context) {
	var input struct {
		UserID       string    `json:"userId" binding:"required"`
		IssueID      *string   `json:"issueId,omitempty"`
		Type         string    `json:"type" binding:"required"`
		Message      string    `json:"message" binding:"required,max=500"`
		ScheduledFor time.Time `json:"scheduledFor" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, err := primitive.ObjectIDFromHex(input.UserID)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	ctx := c.Request.Context()

	if _, err := rc.Store.Users.GetByID(ctx, userID); err != nil {
		if err == store.ErrNotFound {
			respondError(c, http.StatusNotFound, "User not found")
		} else {
			respondError(c, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	var issueID *primitive.ObjectID
	if input.IssueID != nil {
		id, err := primitive.ObjectIDFromHex(*input.IssueID)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid issue ID")
			return
		}
		if _, err := rc.Store.Issues.GetByID(ctx, id); err != nil {
			if err == store.ErrNotFound {
				respondError(c, http.StatusNotFound, "Issue not found")
			} else {
				respondError(c, http.StatusInternalServerError, "Something went wrong")
			}
			return
		}
		issueID = &id
	}

	reminder := models.Reminder{
		UserID:       userID,
		IssueID:      issueID,
		Type:         input.Type,
		Message:      input.Message,
		ScheduledFor: input.ScheduledFor,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	if err := rc.Store.Reminders.Create(ctx, &reminder); err != nil {
		log.Println("Error inserting reminder:", err)
		respondError(c, http.StatusInternalServerError, "Failed to create reminder")
		return
	}

	respondCreated(c, reminder)
}

// Update marks a reminder sent or toggles it. Marking it sent without
// an explicit timestamp stamps sentAt with the current time.
func (rc *ReminderController) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid reminder ID")
		return
	}

	var input struct {
		IsSent   *bool      `json:"isSent,omitempty"`
		SentAt   *time.Time `json:"sentAt,omitempty"`
		IsActive *bool      `json:"isActive,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	upd := store.ReminderUpdate{
		IsSent:   input.IsSent,
		SentAt:   input.SentAt,
		IsActive: input.IsActive,
	}
	if input.IsSent != nil && *input.IsSent && input.SentAt == nil {
		now := time.Now()
		upd.SentAt = &now
	}

	updated, err := rc.Store.Reminders.Update(c.Request.Context(), id, upd)
	if err != nil {
		if err == store.ErrNotFound {
			respondError(c, http.StatusNotFound, "Reminder not found")
		} else {
			respondError(c, http.StatusInternalServerError, "Failed to update reminder")
		}
		return
	}

	respondOK(c, updated)
}
