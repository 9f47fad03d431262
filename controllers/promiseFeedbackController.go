package controllers

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"wakeupvoter-be/models"
	"wakeupvoter-be/store"
	"wakeupvoter-be/utils"
)

type PromiseFeedbackController struct {
	Store *store.Store
}

func NewPromiseFeedbackController(s *store.Store) *PromiseFeedbackController {
	return &PromiseFeedbackController{Store: s}
}

// ListVotes returns promise votes, optionally scoped to one promise or
// one user.
func (fc *PromiseFeedbackController) ListVotes(c *gin.Context) {
	promiseID, ok := queryObjectID(c, "promiseId")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid promise ID")
		return
	}
	userID, ok := queryObjectID(c, "userId")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	votes, err := fc.Store.PromiseVotes.List(c.Request.Context(), store.PromiseVoteFilter{
		PromiseID: promiseID,
		UserID:    userID,
	})
	if err != nil {
		log.Println("Error listing promise votes:", err)
		respondError(c, http.StatusInternalServerError, "Failed to retrieve votes")
		return
	}

	respondOK(c, votes)
}

// CastVote records a user's verdict on a promise. A user holds at most
// one vote per promise; voting again overwrites the earlier verdict.
func (fc *PromiseFeedbackController) CastVote(c *gin.Context) {
	var input struct {
		PromiseID   string  `json:"promiseId" binding:"required"`
		UserID      string  `json:"userId" binding:"required"`
		Vote        string  `json:"vote" binding:"required"`
		Confidence  int     `json:"confidence" binding:"required"`
		Comment     *string `json:"comment,omitempty"`
		IsAnonymous bool    `json:"isAnonymous"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	vote := models.VoteValue(input.Vote)
	if !models.ValidVoteValues[vote] {
		respondError(c, http.StatusBadRequest, "Invalid vote value")
		return
	}
	if input.Confidence < 1 || input.Confidence > 5 {
		respondError(c, http.StatusBadRequest, "Confidence must be between 1 and 5")
		return
	}

	promiseID, err := primitive.ObjectIDFromHex(input.PromiseID)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid promise ID")
		return
	}
	userID, err := primitive.ObjectIDFromHex(input.UserID)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	ctx := c.Request.Context()

	if _, err := fc.Store.Promises.GetByID(ctx, promiseID); err != nil {
		if err == store.ErrNotFound {
			respondError(c, http.StatusNotFound, "Promise not found")
		} else {
			respondError(c, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}
	if _, err := fc.Store.Users.GetByID(ctx, userID); err != nil {
		if err == store.ErrNotFound {
			respondError(c, http.StatusNotFound, "User not found")
		} else {
			respondError(c, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	existing, err := fc.Store.PromiseVotes.FindByPromiseAndUser(ctx, promiseID, userID)
	if err != nil && err != store.ErrNotFound {
		respondError(c, http.StatusInternalServerError, "Failed to check existing vote")
		return
	}

	if existing != nil {
		updated, err := fc.Store.PromiseVotes.Update(ctx, existing.ID, store.PromiseVoteUpdate{
			Vote:        vote,
			Confidence:  input.Confidence,
			Comment:     input.Comment,
			IsAnonymous: input.IsAnonymous,
		})
		if err != nil {
			log.Println("Error updating promise vote:", err)
			respondError(c, http.StatusInternalServerError, "Failed to update vote")
			return
		}
		respondOK(c, updated)
		return
	}

	record := models.PromiseVote{
		PromiseID:   promiseID,
		UserID:      userID,
		Vote:        vote,
		Confidence:  input.Confidence,
		Comment:     input.Comment,
		IsAnonymous: input.IsAnonymous,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := fc.Store.PromiseVotes.Create(ctx, &record); err != nil {
		log.Println("Error inserting promise vote:", err)
		respondError(c, http.StatusInternalServerError, "Failed to cast vote")
		return
	}

	respondCreated(c, record)
}

// ListComments returns non-deleted comments on promises
func (fc *PromiseFeedbackController) ListComments(c *gin.Context) {
	limit, offset := pageParams(c, 20)

	promiseID, ok := queryObjectID(c, "promiseId")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid promise ID")
		return
	}

	comments, total, err := fc.Store.PromiseComments.List(c.Request.Context(), store.PromiseCommentFilter{
		PromiseID: promiseID,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		log.Println("Error listing promise comments:", err)
		respondError(c, http.StatusInternalServerError, "Failed to retrieve comments")
		return
	}

	respondPage(c, comments, total, limit, offset)
}

// CreateComment files a comment on a promise after screening it against
// the comment blocklist.
func (fc *PromiseFeedbackController) CreateComment(c *gin.Context) {
	var input struct {
		PromiseID   string `json:"promiseId" binding:"required"`
		UserID      string `json:"userId" binding:"required"`
		Content     string `json:"content" binding:"required,max=2000"`
		IsAnonymous bool   `json:"isAnonymous"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	promiseID, err := primitive.ObjectIDFromHex(input.PromiseID)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid promise ID")
		return
	}
	userID, err := primitive.ObjectIDFromHex(input.UserID)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	content := utils.Sanitize(input.Content)
	if term, blocked := utils.BlockedTerm(content, utils.CommentBlocklist); blocked {
		respondError(c, http.StatusBadRequest, "Comment contains inappropriate content: "+term)
		return
	}

	ctx := c.Request.Context()

	if _, err := fc.Store.Promises.GetByID(ctx, promiseID); err != nil {
		if err == store.ErrNotFound {
			respondError(c, http.StatusNotFound, "Promise not found")
		} else {
			respondError(c, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}
	if _, err := fc.Store.Users.GetByID(ctx, userID); err != nil {
		if err == store.ErrNotFound {
			respondError(c, http.StatusNotFound, "User not found")
		} else {
			respondError(c, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	comment := models.PromiseComment{
		PromiseID:   promiseID,
		UserID:      userID,
		Content:     content,
		IsAnonymous: input.IsAnonymous,
		CreatedAt:   time.Now(),
	}
	if err := fc.Store.PromiseComments.Create(ctx, &comment); err != nil {
		log.Println("Error inserting promise comment:", err)
		respondError(c, http.StatusInternalServerError, "Failed to create comment")
		return
	}

	respondCreated(c, comment)
}

// UpdateComment applies moderation, soft deletion or vote tallies to a
// comment. Marking it moderated stamps moderatedAt when no timestamp is
// supplied.
func (fc *PromiseFeedbackController) UpdateComment(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid comment ID")
		return
	}

	var input struct {
		IsModerated *bool   `json:"isModerated,omitempty"`
		ModeratedBy *string `json:"moderatedBy,omitempty"`
		IsDeleted   *bool   `json:"isDeleted,omitempty"`
		Upvotes     *int    `json:"upvotes,omitempty"`
		Downvotes   *int    `json:"downvotes,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	upd := store.PromiseCommentUpdate{
		IsModerated: input.IsModerated,
		ModeratedBy: input.ModeratedBy,
		IsDeleted:   input.IsDeleted,
		Upvotes:     input.Upvotes,
		Downvotes:   input.Downvotes,
	}
	if input.IsModerated != nil && *input.IsModerated {
		now := time.Now()
		upd.ModeratedAt = &now
	}

	updated, err := fc.Store.PromiseComments.Update(c.Request.Context(), id, upd)
	if err != nil {
		if err == store.ErrNotFound {
			respondError(c, http.StatusNotFound, "Comment not found")
		} else {
			respondError(c, http.StatusInternalServerError, "Failed to update comment")
		}
		return
	}

	respondOK(c, updated)
}

// ListFactChecks returns fact checks on promises
func (fc *PromiseFeedbackController) ListFactChecks(c *gin.Context) {
	promiseID, ok := queryObjectID(c, "promiseId")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid promise ID")
		return
	}

	checks, err := fc.Store.PromiseFactChecks.List(c.Request.Context(), store.PromiseFactCheckFilter{
		PromiseID: promiseID,
		Rating:    c.Query("rating"),
	})
	if err != nil {
		log.Println("Error listing promise fact checks:", err)
		respondError(c, http.StatusInternalServerError, "Failed to retrieve fact checks")
		return
	}

	respondOK(c, checks)
}

// CreateFactCheck files an editorial verdict on a promise. When the
// check names a verifier the promise itself is marked verified.
func (fc *PromiseFeedbackController) CreateFactCheck(c *gin.Context) {
	var input struct {
		PromiseID  string  `json:"promiseId" binding:"required"`
		Claim      string  `json:"claim" binding:"required"`
		Reality    string  `json:"reality" binding:"required"`
		Rating     string  `json:"rating" binding:"required"`
		Sources    string  `json:"sources,omitempty"`
		VerifiedBy *string `json:"verifiedBy,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	rating := models.FactCheckRating(input.Rating)
	if !models.ValidFactCheckRatings[rating] {
		respondError(c, http.StatusBadRequest, "Invalid rating")
		return
	}

	promiseID, err := primitive.ObjectIDFromHex(input.PromiseID)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid promise ID")
		return
	}

	ctx := c.Request.Context()

	if _, err := fc.Store.Promises.GetByID(ctx, promiseID); err != nil {
		if err == store.ErrNotFound {
			respondError(c, http.StatusNotFound, "Promise not found")
		} else {
			respondError(c, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	check := models.PromiseFactCheck{
		PromiseID:  promiseID,
		Claim:      utils.Sanitize(input.Claim),
		Reality:    utils.Sanitize(input.Reality),
		Rating:     rating,
		Sources:    input.Sources,
		VerifiedBy: input.VerifiedBy,
		CreatedAt:  time.Now(),
	}
	if input.VerifiedBy != nil {
		now := time.Now()
		check.VerifiedAt = &now
	}

	if err := fc.Store.PromiseFactChecks.Create(ctx, &check); err != nil {
		log.Println("Error inserting promise fact check:", err)
		respondError(c, http.StatusInternalServerError, "Failed to create fact check")
		return
	}

	if input.VerifiedBy != nil {
		if err := fc.Store.Promises.MarkVerified(ctx, promiseID, *input.VerifiedBy, time.Now()); err != nil {
			log.Println("Error marking promise verified:", err)
		}
	}

	respondCreated(c, check)
}

// ListReminders returns a user's promise reminders
func (fc *PromiseFeedbackController) ListReminders(c *gin.Context) {
	userID, ok := queryObjectID(c, "userId")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}
	if userID == nil {
		respondError(c, http.StatusBadRequest, "userId is required")
		return
	}
	promiseID, ok := queryObjectID(c, "promiseId")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid promise ID")
		return
	}

	reminders, err := fc.Store.PromiseReminders.List(c.Request.Context(), store.PromiseReminderFilter{
		UserID:    userID,
		PromiseID: promiseID,
		IsActive:  queryBool(c, "isActive"),
	})
	if err != nil {
		log.Println("Error listing promise reminders:", err)
		respondError(c, http.StatusInternalServerError, "Failed to retrieve reminders")
		return
	}

	respondOK(c, reminders)
}

// CreateReminder schedules a recurring nudge for a user to re-check a
// promise. Frequency is a day count in string form; anything that does
// not parse falls back to 30 days.
func (fc *PromiseFeedbackController) CreateReminder(c *gin.Context) {
	var input struct {
		PromiseID string `json:"promiseId" binding:"required"`
		UserID    string `json:"userId" binding:"required"`
		Type      string `json:"type,omitempty"`
		Frequency string `json:"frequency,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	promiseID, err := primitive.ObjectIDFromHex(input.PromiseID)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid promise ID")
		return
	}
	userID, err := primitive.ObjectIDFromHex(input.UserID)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	ctx := c.Request.Context()

	if _, err := fc.Store.Promises.GetByID(ctx, promiseID); err != nil {
		if err == store.ErrNotFound {
			respondError(c, http.StatusNotFound, "Promise not found")
		} else {
			respondError(c, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}
	if _, err := fc.Store.Users.GetByID(ctx, userID); err != nil {
		if err == store.ErrNotFound {
			respondError(c, http.StatusNotFound, "User not found")
		} else {
			respondError(c, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	reminderType := input.Type
	if reminderType == "" {
		reminderType = "monthly"
	}
	frequency := input.Frequency
	if frequency == "" {
		frequency = "30d"
	}

	days, err := strconv.Atoi(strings.TrimSuffix(frequency, "d"))
	if err != nil || days < 1 {
		days = 30
	}

	reminder := models.PromiseReminder{
		PromiseID: promiseID,
		UserID:    userID,
		Type:      reminderType,
		Frequency: frequency,
		IsActive:  true,
		NextDue:   time.Now().AddDate(0, 0, days),
		CreatedAt: time.Now(),
	}
	if err := fc.Store.PromiseReminders.Create(ctx, &reminder); err != nil {
		log.Println("Error inserting promise reminder:", err)
		respondError(c, http.StatusInternalServerError, "Failed to create reminder")
		return
	}

	respondCreated(c, reminder)
}

// UpdateReminder toggles a reminder or records that it was sent
func (fc *PromiseFeedbackController) UpdateReminder(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid reminder ID")
		return
	}

	var input struct {
		IsActive *bool      `json:"isActive,omitempty"`
		LastSent *time.Time `json:"lastSent,omitempty"`
		NextDue  *time.Time `json:"nextDue,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := fc.Store.PromiseReminders.Update(c.Request.Context(), id, store.PromiseReminderUpdate{
		IsActive: input.IsActive,
		LastSent: input.LastSent,
		NextDue:  input.NextDue,
	})
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
