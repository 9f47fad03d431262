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

type PromiseController struct {
	Store *store.Store
}

func NewPromiseController(s *store.Store) *PromiseController {
	return &PromiseController{Store: s}
}

// promiseView is a promise plus its feedback counters
type promiseView struct {
	models.Promise
	VoteCount      int64 `json:"voteCount"`
	CommentCount   int64 `json:"commentCount"`
	FactCheckCount int64 `json:"factCheckCount"`
}

func (pc *PromiseController) enrich(c *gin.Context, promise models.Promise) promiseView {
	ctx := c.Request.Context()

	votes, err := pc.Store.PromiseVotes.CountByPromise(ctx, promise.ID)
	if err != nil {
		votes = 0
	}
	comments, err := pc.Store.PromiseComments.CountByPromise(ctx, promise.ID)
	if err != nil {
		comments = 0
	}
	factChecks, err := pc.Store.PromiseFactChecks.CountByPromise(ctx, promise.ID)
	if err != nil {
		factChecks = 0
	}

	return promiseView{
		Promise:        promise,
		VoteCount:      votes,
		CommentCount:   comments,
		FactCheckCount: factChecks,
	}
}

// List returns promises filtered by party, leader, category, status,
// state and election year, newest promise first.
func (pc *PromiseController) List(c *gin.Context) {
	limit, offset := pageParams(c, 20)

	partyID, ok := queryObjectID(c, "partyId")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid party ID")
		return
	}
	leaderID, ok := queryObjectID(c, "leaderId")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid leader ID")
		return
	}

	filter := store.PromiseFilter{
		PartyID:  partyID,
		LeaderID: leaderID,
		Category: c.Query("category"),
		Status:   c.Query("status"),
		State:    c.Query("state"),
		Limit:    limit,
		Offset:   offset,
	}
	if year := queryInt(c, "electionYear", 0); year > 0 {
		filter.ElectionYear = &year
	}

	promises, total, err := pc.Store.Promises.List(c.Request.Context(), filter)
	if err != nil {
		log.Println("Error listing promises:", err)
		respondError(c, http.StatusInternalServerError, "Failed to retrieve promises")
		return
	}

	views := make([]promiseView, 0, len(promises))
	for _, promise := range promises {
		views = append(views, pc.enrich(c, promise))
	}

	respondPage(c, views, total, limit, offset)
}

// GetByID returns a single promise with its feedback counters
func (pc *PromiseController) GetByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid promise ID")
		return
	}

	promise, err := pc.Store.Promises.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == store.ErrNotFound {
			respondError(c, http.StatusNotFound, "Promise not found")
		} else {
			respondError(c, http.StatusInternalServerError, "Failed to retrieve promise")
		}
		return
	}

	respondOK(c, pc.enrich(c, *promise))
}

// Create registers a promise against an existing party, and optionally
// an existing leader. New promises start pending and unverified.
func (pc *PromiseController) Create(c *gin.Context) {
	var input struct {
		Title           string    `json:"title" binding:"required,max=300"`
		Description     string    `json:"description" binding:"required"`
		Category        string    `json:"category" binding:"required"`
		Subcategory     *string   `json:"subcategory,omitempty"`
		PartyID         string    `json:"partyId" binding:"required"`
		LeaderID        *string   `json:"leaderId,omitempty"`
		ElectionYear    int       `json:"electionYear" binding:"required"`
		State           *string   `json:"state,omitempty"`
		Constituency    *string   `json:"constituency,omitempty"`
		PromiseDate     time.Time `json:"promiseDate" binding:"required"`
		PromiseLocation *string   `json:"promiseLocation,omitempty"`
		SourceURL       *string   `json:"sourceUrl,omitempty"`
		SourceType      *string   `json:"sourceType,omitempty"`
		EvidenceURL     *string   `json:"evidenceUrl,omitempty"`
		EvidenceType    *string   `json:"evidenceType,omitempty"`
		Tags            string    `json:"tags,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	partyID, err := primitive.ObjectIDFromHex(input.PartyID)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid party ID")
		return
	}

	ctx := c.Request.Context()

	if _, err := pc.Store.Parties.GetByID(ctx, partyID); err != nil {
		if err == store.ErrNotFound {
			respondError(c, http.StatusNotFound, "Party not found")
		} else {
			respondError(c, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	var leaderID *primitive.ObjectID
	if input.LeaderID != nil {
		id, err := primitive.ObjectIDFromHex(*input.LeaderID)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid leader ID")
			return
		}
		if _, err := pc.Store.Leaders.GetByID(ctx, id); err != nil {
			if err == store.ErrNotFound {
				respondError(c, http.StatusNotFound, "Leader not found")
			} else {
				respondError(c, http.StatusInternalServerError, "Something went wrong")
			}
			return
		}
		leaderID = &id
	}

	promise := models.Promise{
		Title:             utils.Sanitize(input.Title),
		Description:       utils.Sanitize(input.Description),
		Category:          input.Category,
		Subcategory:       input.Subcategory,
		PartyID:           partyID,
		LeaderID:          leaderID,
		ElectionYear:      input.ElectionYear,
		State:             input.State,
		Constituency:      input.Constituency,
		PromiseDate:       input.PromiseDate,
		PromiseLocation:   input.PromiseLocation,
		SourceURL:         input.SourceURL,
		SourceType:        input.SourceType,
		EvidenceURL:       input.EvidenceURL,
		EvidenceType:      input.EvidenceType,
		Tags:              input.Tags,
		Status:            models.PromisePending,
		VerificationLevel: models.VerificationUnverified,
		CreatedAt:         time.Now(),
	}

	if err := pc.Store.Promises.Create(ctx, &promise); err != nil {
		log.Println("Error inserting promise:", err)
		respondError(c, http.StatusInternalServerError, "Failed to create promise")
		return
	}

	respondCreated(c, promise)
}

// ListParties returns all parties with their promise and leader counts
func (pc *PromiseController) ListParties(c *gin.Context) {
	ctx := c.Request.Context()

	parties, err := pc.Store.Parties.List(ctx)
	if err != nil {
		log.Println("Error listing parties:", err)
		respondError(c, http.StatusInternalServerError, "Failed to retrieve parties")
		return
	}

	type partyView struct {
		models.Party
		PromiseCount int64 `json:"promiseCount"`
		LeaderCount  int64 `json:"leaderCount"`
	}

	views := make([]partyView, 0, len(parties))
	for _, party := range parties {
		promises, err := pc.Store.Promises.CountByParty(ctx, party.ID)
		if err != nil {
			promises = 0
		}
		leaders, err := pc.Store.Leaders.CountByParty(ctx, party.ID)
		if err != nil {
			leaders = 0
		}
		views = append(views, partyView{Party: party, PromiseCount: promises, LeaderCount: leaders})
	}

	respondOK(c, views)
}

// CreateParty registers a political party
func (pc *PromiseController) CreateParty(c *gin.Context) {
	var input struct {
		Name        string  `json:"name" binding:"required,max=120"`
		ShortName   string  `json:"shortName" binding:"required,max=20"`
		Description *string `json:"description,omitempty"`
		Logo        *string `json:"logo,omitempty"`
		FoundedYear *int    `json:"foundedYear,omitempty"`
		Ideology    *string `json:"ideology,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	party := models.Party{
		Name:        input.Name,
		ShortName:   input.ShortName,
		Description: input.Description,
		Logo:        input.Logo,
		FoundedYear: input.FoundedYear,
		Ideology:    input.Ideology,
		CreatedAt:   time.Now(),
	}

	if err := pc.Store.Parties.Create(c.Request.Context(), &party); err != nil {
		log.Println("Error inserting party:", err)
		respondError(c, http.StatusInternalServerError, "Failed to create party")
		return
	}

	respondCreated(c, party)
}

// ListLeaders returns leaders filtered by party, state and activity,
// each with the number of promises attributed to them.
func (pc *PromiseController) ListLeaders(c *gin.Context) {
	partyID, ok := queryObjectID(c, "partyId")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid party ID")
		return
	}

	filter := store.LeaderFilter{
		PartyID:  partyID,
		State:    c.Query("state"),
		IsActive: queryBool(c, "isActive"),
	}

	ctx := c.Request.Context()
	leaders, err := pc.Store.Leaders.List(ctx, filter)
	if err != nil {
		log.Println("Error listing leaders:", err)
		respondError(c, http.StatusInternalServerError, "Failed to retrieve leaders")
		return
	}

	type leaderView struct {
		models.Leader
		PromiseCount int64 `json:"promiseCount"`
	}

	views := make([]leaderView, 0, len(leaders))
	for _, leader := range leaders {
		promises, err := pc.Store.Promises.CountByLeader(ctx, leader.ID)
		if err != nil {
			promises = 0
		}
		views = append(views, leaderView{Leader: leader, PromiseCount: promises})
	}

	respondOK(c, views)
}

// CreateLeader registers a leader under an existing party
func (pc *PromiseController) CreateLeader(c *gin.Context) {
	var input struct {
		Name         string  `json:"name" binding:"required,max=120"`
		PartyID      string  `json:"partyId" binding:"required"`
		Position     *string `json:"position,omitempty"`
		State        *string `json:"state,omitempty"`
		Constituency *string `json:"constituency,omitempty"`
		Photo        *string `json:"photo,omitempty"`
		Bio          *string `json:"bio,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	partyID, err := primitive.ObjectIDFromHex(input.PartyID)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid party ID")
		return
	}

	ctx := c.Request.Context()
	if _, err := pc.Store.Parties.GetByID(ctx, partyID); err != nil {
		if err == store.ErrNotFound {
			respondError(c, http.StatusNotFound, "Party not found")
		} else {
			respondError(c, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	leader := models.Leader{
		Name:         input.Name,
		PartyID:      partyID,
		Position:     input.Position,
		State:        input.State,
		Constituency: input.Constituency,
		Photo:        input.Photo,
		Bio:          input.Bio,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}

	if err := pc.Store.Leaders.Create(ctx, &leader); err != nil {
		log.Println("Error inserting leader:", err)
		respondError(c, http.StatusInternalServerError, "Failed to create leader")
		return
	}

	respondCreated(c, leader)
}
