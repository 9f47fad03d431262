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

type ReportController struct {
	Store *store.Store
}

func NewReportController(s *store.Store) *ReportController {
	return &ReportController{Store: s}
}

// List returns local reports filtered by location, category and status
func (rc *ReportController) List(c *gin.Context) {
	limit, offset := pageParams(c, 10)

	filter := store.ReportFilter{
		State:    c.Query("state"),
		City:     c.Query("city"),
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Limit:    limit,
		Offset:   offset,
	}

	reports, total, err := rc.Store.Reports.List(c.Request.Context(), filter)
	if err != nil {
		log.Println("Error listing reports:", err)
		respondError(c, http.StatusInternalServerError, "Failed to retrieve reports")
		return
	}

	respondPage(c, reports, total, limit, offset)
}

// Create files a citizen report and tries to link it to an existing
// issue by title, category or location. A successful link also records
// the report on the issue's timeline.
func (rc *ReportController) Create(c *gin.Context) {
	var input struct {
		UserID      string   `json:"userId" binding:"required"`
		Title       string   `json:"title" binding:"required,max=200"`
		Description string   `json:"description" binding:"required"`
		Category    string   `json:"category" binding:"required"`
		State       *string  `json:"state,omitempty"`
		City        *string  `json:"city,omitempty"`
		Area        *string  `json:"area,omitempty"`
		Latitude    *float64 `json:"latitude,omitempty"`
		Longitude   *float64 `json:"longitude,omitempty"`
		ImageURL    *string  `json:"imageUrl,omitempty"`
		IsAnonymous bool     `json:"isAnonymous"`
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

	report := models.LocalReport{
		UserID:      userID,
		Title:       utils.Sanitize(input.Title),
		Description: utils.Sanitize(input.Description),
		Category:    models.IssueCategory(input.Category),
		State:       input.State,
		City:        input.City,
		Area:        input.Area,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		ImageURL:    input.ImageURL,
		IsAnonymous: input.IsAnonymous,
		Status:      models.ReportPending,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := rc.Store.Reports.Create(ctx, &report); err != nil {
		log.Println("Error inserting report:", err)
		respondError(c, http.StatusInternalServerError, "Failed to create report")
		return
	}

	match, err := rc.Store.Issues.FindMatch(ctx, report.Title, report.Category, report.State, report.City)
	if err != nil {
		log.Println("Error matching report to issue:", err)
	}
	if match != nil {
		if err := rc.Store.Reports.LinkIssue(ctx, report.ID, match.ID); err != nil {
			log.Println("Error linking report to issue:", err)
		} else {
			report.IssueID = &match.ID
			entry := models.TimelineEntry{
				IssueID:     match.ID,
				EventType:   models.EventUpdated,
				Description: "नई स्थानीय रिपोर्ट: " + report.Title,
				Source:      models.SourceCitizenReport,
				Date:        time.Now(),
			}
			if err := rc.Store.Timeline.Append(ctx, &entry); err != nil {
				log.Println("Error appending timeline entry:", err)
			}
		}
	}

	respondCreated(c, report)
}

// Upvote toggles the user's upvote on a report
func (rc *ReportController) Upvote(c *gin.Context) {
	reportID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid report ID")
		return
	}

	var input struct {
		UserID string `json:"userId" binding:"required"`
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

	if _, err := rc.Store.Reports.GetByID(ctx, reportID); err != nil {
		if err == store.ErrNotFound {
			respondError(c, http.StatusNotFound, "Report not found")
		} else {
			respondError(c, http.StatusInternalServerError, "Failed to retrieve report")
		}
		return
	}

	voted, err := rc.Store.Reports.HasUpvote(ctx, reportID, userID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to check existing upvotes")
		return
	}

	if voted {
		if err := rc.Store.Reports.RemoveUpvote(ctx, reportID, userID); err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to remove upvote")
			return
		}
		if err := rc.Store.Reports.AdjustUpvotes(ctx, reportID, -1); err != nil {
			log.Println("Error adjusting upvote count:", err)
		}
		respondOK(c, gin.H{"message": "Upvote removed successfully", "upvoted": false})
		return
	}

	upvote := models.ReportUpvote{
		ReportID:  reportID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	if err := rc.Store.Reports.AddUpvote(ctx, &upvote); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to add upvote")
		return
	}
	if err := rc.Store.Reports.AdjustUpvotes(ctx, reportID, 1); err != nil {
		log.Println("Error adjusting upvote count:", err)
	}
	respondOK(c, gin.H{"message": "Upvote added successfully", "upvoted": true})
}
