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

type PollController struct {
	Store *store.Store
}

func NewPollController(s *store.Store) *PollController {
	return &PollController{Store: s}
}

// List returns polls with their current ballot counts
func (pc *PollController) List(c *gin.Context) {
	promiseID, ok := queryObjectID(c, "promiseId")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid promise ID")
		return
	}

	ctx := c.Request.Context()
	polls, err := pc.Store.Polls.List(ctx, store.PollFilter{
		PromiseID: promiseID,
		IsActive:  queryBool(c, "isActive"),
	})
	if err != nil {
		log.Println("Error listing polls:", err)
		respondError(c, http.StatusInternalServerError, "Failed to retrieve polls")
		return
	}

	type pollView struct {
		models.Poll
		BallotCount int64 `json:"ballotCount"`
	}

	views := make([]pollView, 0, len(polls))
	for _, poll := range polls {
		ballots, err := pc.Store.PollVotes.CountByPoll(ctx, poll.ID)
		if err != nil {
			ballots = 0
		}
		views = append(views, pollView{Poll: poll, BallotCount: ballots})
	}

	respondOK(c, views)
}

// Create opens a poll, optionally tied to a promise
func (pc *PollController) Create(c *gin.Context) {
	var input struct {
		Question  string     `json:"question" binding:"required,max=300"`
		PromiseID *string    `json:"promiseId,omitempty"`
		Options   []string   `json:"options" binding:"required,min=2"`
		EndDate   *time.Time `json:"endDate,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx := c.Request.Context()

	var promiseID *primitive.ObjectID
	if input.PromiseID != nil {
		id, err := primitive.ObjectIDFromHex(*input.PromiseID)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid promise ID")
			return
		}
		if _, err := pc.Store.Promises.GetByID(ctx, id); err != nil {
			if err == store.ErrNotFound {
				respondError(c, http.StatusNotFound, "Promise not found")
			} else {
				respondError(c, http.StatusInternalServerError, "Something went wrong")
			}
			return
		}
		promiseID = &id
	}

	poll := models.Poll{
		Question:  utils.Sanitize(input.Question),
		PromiseID: promiseID,
		Options:   input.Options,
		IsActive:  true,
		EndDate:   input.EndDate,
		CreatedAt: time.Now(),
	}
	if err := pc.Store.Polls.Create(ctx, &poll); err != nil {
		log.Println("Error inserting poll:", err)
		respondError(c, http.StatusInternalServerError, "Failed to create poll")
		return
	}

	respondCreated(c, poll)
}

// Update opens or closes a poll, or corrects its vote tally
func (pc *PollController) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid poll ID")
		return
	}

	var input struct {
		IsActive   *bool `json:"isActive,omitempty"`
		TotalVotes *int  `json:"totalVotes,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := pc.Store.Polls.Update(c.Request.Context(), id, store.PollUpdate{
		IsActive:   input.IsActive,
		TotalVotes: input.TotalVotes,
	})
	if err != nil {
		if err == store.ErrNotFound {
			respondError(c, http.StatusNotFound, "Poll not found")
		} else {
			respondError(c, http.StatusInternalServerError, "Failed to update poll")
		}
		return
	}

	respondOK(c, updated)
}

// Vote casts a ballot. Signed-in voters are deduplicated by user ID,
// anonymous voters by IP address; the two checks are independent, so a
// signed-in vote and an anonymous vote may share an address.
func (pc *PollController) Vote(c *gin.Context) {
	var input struct {
		PollID    string  `json:"pollId" binding:"required"`
		UserID    *string `json:"userId,omitempty"`
		Option    string  `json:"option" binding:"required"`
		IPAddress *string `json:"ipAddress,omitempty"`
		UserAgent *string `json:"userAgent,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	pollID, err := primitive.ObjectIDFromHex(input.PollID)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid poll ID")
		return
	}

	ctx := c.Request.Context()

	poll, err := pc.Store.Polls.GetByID(ctx, pollID)
	if err != nil {
		if err == store.ErrNotFound {
			respondError(c, http.StatusNotFound, "Poll not found")
		} else {
			respondError(c, http.StatusInternalServerError, "Failed to retrieve poll")
		}
		return
	}

	if !poll.IsActive {
		respondError(c, http.StatusBadRequest, "Poll is not active")
		return
	}
	if poll.EndDate != nil && poll.EndDate.Before(time.Now()) {
		respondError(c, http.StatusBadRequest, "Poll has ended")
		return
	}

	validOption := false
	for _, option := range poll.Options {
		if option == input.Option {
			validOption = true
			break
		}
	}
	if !validOption {
		respondError(c, http.StatusBadRequest, "Invalid option")
		return
	}

	ipAddress := input.IPAddress
	if ipAddress == nil {
		ip := c.ClientIP()
		ipAddress = &ip
	}

	var userID *primitive.ObjectID
	if input.UserID != nil {
		id, err := primitive.ObjectIDFromHex(*input.UserID)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid user ID")
			return
		}
		userID = &id

		voted, err := pc.Store.PollVotes.HasUserVote(ctx, pollID, id)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to check existing votes")
			return
		}
		if voted {
			respondError(c, http.StatusBadRequest, "You have already voted in this poll")
			return
		}
	} else {
		voted, err := pc.Store.PollVotes.HasAnonymousVote(ctx, pollID, *ipAddress)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to check existing votes")
			return
		}
		if voted {
			respondError(c, http.StatusBadRequest, "A vote from this address was already recorded")
			return
		}
	}

	vote := models.PollVote{
		PollID:    pollID,
		UserID:    userID,
		Option:    input.Option,
		IPAddress: ipAddress,
		UserAgent: input.UserAgent,
		CreatedAt: time.Now(),
	}
	if err := pc.Store.PollVotes.Create(ctx, &vote); err != nil {
		log.Println("Error inserting poll vote:", err)
		respondError(c, http.StatusInternalServerError, "Failed to cast vote")
		return
	}

	if err := pc.Store.Polls.IncrementVotes(ctx, pollID); err != nil {
		log.Println("Error incrementing poll votes:", err)
	}

	respondCreated(c, vote)
}
