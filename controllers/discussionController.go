package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	"wakeupvoter-be/models"
	"wakeupvoter-be/store"
	"wakeupvoter-be/utils"
)

type DiscussionController struct {
	Store *store.Store
}

func NewDiscussionController(s *store.Store) *DiscussionController {
	return &DiscussionController{Store: s}
}

// List returns non-deleted discussions, optionally scoped to one issue
func (dc *DiscussionController) List(c *gin.Context) {
	limit, offset := pageParams(c, 20)

	issueID, ok := queryObjectID(c, "issueId")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid issue ID")
		return
	}

	filter := store.DiscussionFilter{
		IssueID:     issueID,
		IsExpert:    queryBool(c, "isExpert"),
		IsModerated: queryBool(c, "isModerated"),
		Limit:       limit,
		Offset:      offset,
	}

	discussions, total, err := dc.Store.Discussions.List(c.Request.Context(), filter)
	if err != nil {
		log.Println("Error listing discussions:", err)
		respondError(c, http.StatusInternalServerError, "Failed to retrieve discussions")
		return
	}

	respondPage(c, discussions, total, limit, offset)
}

// Create files a discussion on an issue. Content is screened against
// the discussion blocklist; a hit rejects the whole submission.
func (dc *DiscussionController) Create(c *gin.Context) {
	var input struct {
		IssueID     string  `json:"issueId" binding:"required"`
		UserID      string  `json:"userId" binding:"required"`
		Content     string  `json:"content" binding:"required,max=2000"`
		IsExpert    bool    `json:"isExpert"`
		ExpertField *string `json:"expertField,omitempty"`
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
	userID, err := primitive.ObjectIDFromHex(input.UserID)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	content := utils.Sanitize(input.Content)
	if term, blocked := utils.BlockedTerm(content, utils.DiscussionBlocklist); blocked {
		respondError(c, http.StatusBadRequest, "Discussion contains inappropriate content: "+term)
		return
	}

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		_, err := dc.Store.Issues.GetByID(ctx, issueID)
		return err
	})
	g.Go(func() error {
		_, err := dc.Store.Users.GetByID(ctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		if err == store.ErrNotFound {
			respondError(c, http.StatusNotFound, "Issue or user not found")
		} else {
			respondError(c, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	discussion := models.Discussion{
		IssueID:     issueID,
		UserID:      userID,
		Content:     content,
		IsExpert:    input.IsExpert,
		ExpertField: input.ExpertField,
		CreatedAt:   time.Now(),
	}
	if err := dc.Store.Discussions.Create(c.Request.Context(), &discussion); err != nil {
		log.Println("Error inserting discussion:", err)
		respondError(c, http.StatusInternalServerError, "Failed to create discussion")
		return
	}

	respondCreated(c, discussion)
}

// Update applies moderation or soft deletion to a discussion. Marking
// it moderated stamps moderatedAt when no timestamp is supplied.
func (dc *DiscussionController) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid discussion ID")
		return
	}

	var input struct {
		IsModerated *bool   `json:"isModerated,omitempty"`
		ModeratedBy *string `json:"moderatedBy,omitempty"`
		IsDeleted   *bool   `json:"isDeleted,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	upd := store.DiscussionUpdate{
		IsModerated: input.IsModerated,
		ModeratedBy: input.ModeratedBy,
		IsDeleted:   input.IsDeleted,
	}
	if input.IsModerated != nil && *input.IsModerated {
		now := time.Now()
		upd.ModeratedAt = &now
	}

	updated, err := dc.Store.Discussions.Update(c.Request.Context(), id, upd)
	if err != nil {
		if err == store.ErrNotFound {
			respondError(c, http.StatusNotFound, "Discussion not found")
		} else {
			respondError(c, http.StatusInternalServerError, "Failed to update discussion")
		}
		return
	}

	respondOK(c, updated)
}
