package controllers

import (
	"log"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"wakeupvoter-be/models"
	"wakeupvoter-be/store"
	"wakeupvoter-be/utils"
)

type IssueController struct {
	Store *store.Store
}

func NewIssueController(s *store.Store) *IssueController {
	return &IssueController{Store: s}
}

// issueView is an issue plus the activity summary list and detail
// endpoints attach to it.
type issueView struct {
	models.Issue
	Timeline        []models.TimelineEntry `json:"timeline"`
	DiscussionCount int64                  `json:"discussionCount"`
	ReportCount     int64                  `json:"reportCount"`
}

func (ic *IssueController) enrich(c *gin.Context, issue models.Issue) issueView {
	ctx := c.Request.Context()

	timeline, err := ic.Store.Timeline.ListRecent(ctx, issue.ID, 3)
	if err != nil {
		timeline = nil
	}
	if timeline == nil {
		timeline = []models.TimelineEntry{}
	}

	discussions, err := ic.Store.Discussions.CountByIssue(ctx, issue.ID)
	if err != nil {
		discussions = 0
	}

	reports, err := ic.Store.Reports.CountByIssue(ctx, issue.ID)
	if err != nil {
		reports = 0
	}

	return issueView{
		Issue:           issue,
		Timeline:        timeline,
		DiscussionCount: discussions,
		ReportCount:     reports,
	}
}

// List returns issues filtered by category, status, priority and scope,
// ordered by impact score.
func (ic *IssueController) List(c *gin.Context) {
	limit, offset := pageParams(c, 10)

	filter := store.IssueFilter{
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Scope:    c.Query("type"),
		Limit:    limit,
		Offset:   offset,
	}

	issues, total, err := ic.Store.Issues.List(c.Request.Context(), filter)
	if err != nil {
		log.Println("Error listing issues:", err)
		respondError(c, http.StatusInternalServerError, "Failed to retrieve issues")
		return
	}

	views := make([]issueView, 0, len(issues))
	for _, issue := range issues {
		views = append(views, ic.enrich(c, issue))
	}

	respondPage(c, views, total, limit, offset)
}

// GetByID returns a single issue with its recent activity
func (ic *IssueController) GetByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid issue ID")
		return
	}

	issue, err := ic.Store.Issues.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == store.ErrNotFound {
			respondError(c, http.StatusNotFound, "Issue not found")
		} else {
			respondError(c, http.StatusInternalServerError, "Failed to retrieve issue")
		}
		return
	}

	respondOK(c, ic.enrich(c, *issue))
}

// Create registers a new issue. The impact score and priority are
// derived from category and scope once, here, and never recomputed.
func (ic *IssueController) Create(c *gin.Context) {
	var input struct {
		Title              string     `json:"title" binding:"required,max=200"`
		Summary            string     `json:"summary" binding:"required"`
		Description        string     `json:"description" binding:"required"`
		Category           string     `json:"category" binding:"required"`
		Subcategory        *string    `json:"subcategory,omitempty"`
		LocalVsNational    string     `json:"localVsNational,omitempty"`
		State              *string    `json:"state,omitempty"`
		City               *string    `json:"city,omitempty"`
		Area               *string    `json:"area,omitempty"`
		SourceURL          *string    `json:"sourceUrl,omitempty"`
		SourceTitle        *string    `json:"sourceTitle,omitempty"`
		Tags               string     `json:"tags,omitempty"`
		ExpectedResolution *time.Time `json:"expectedResolution,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	scope := models.ScopeLocal
	if input.LocalVsNational == string(models.ScopeNational) {
		scope = models.ScopeNational
	}

	category := models.IssueCategory(input.Category)
	score := models.ImpactScore(category, scope)

	issue := models.Issue{
		Title:              utils.Sanitize(input.Title),
		Summary:            utils.Sanitize(input.Summary),
		Description:        utils.Sanitize(input.Description),
		Category:           category,
		Subcategory:        input.Subcategory,
		Scope:              scope,
		ImpactScore:        score,
		Priority:           models.PriorityForScore(score),
		Status:             models.Active,
		State:              input.State,
		City:               input.City,
		Area:               input.Area,
		SourceURL:          input.SourceURL,
		SourceTitle:        input.SourceTitle,
		Tags:               input.Tags,
		ExpectedResolution: input.ExpectedResolution,
		CreatedAt:          time.Now(),
		LastUpdated:        time.Now(),
	}

	ctx := c.Request.Context()
	if err := ic.Store.Issues.Create(ctx, &issue); err != nil {
		log.Println("Error inserting issue:", err)
		respondError(c, http.StatusInternalServerError, "Failed to create issue")
		return
	}

	entry := models.TimelineEntry{
		IssueID:     issue.ID,
		EventType:   models.EventReported,
		Description: "मुद्दा दर्ज किया गया",
		Source:      models.SourceSystem,
		Date:        time.Now(),
	}
	if err := ic.Store.Timeline.Append(ctx, &entry); err != nil {
		log.Println("Error appending timeline entry:", err)
	}

	respondCreated(c, issue)
}

// Analytics returns aggregate numbers for the issues dashboard
func (ic *IssueController) Analytics(c *gin.Context) {
	ctx := c.Request.Context()

	byCategory, err := ic.Store.Issues.CountByCategory(ctx)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to get category analytics")
		return
	}
	issuesByCategory := make([]gin.H, 0, len(byCategory))
	for name, value := range byCategory {
		issuesByCategory = append(issuesByCategory, gin.H{"name": name, "value": value})
	}
	sort.Slice(issuesByCategory, func(i, j int) bool {
		return issuesByCategory[i]["name"].(string) < issuesByCategory[j]["name"].(string)
	})

	var last7Days []gin.H
	for i := 6; i >= 0; i-- {
		date := time.Now().AddDate(0, 0, -i)
		date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		nextDate := date.AddDate(0, 0, 1)

		count, err := ic.Store.Issues.CountCreatedBetween(ctx, date, nextDate)
		if err != nil {
			count = 0
		}

		last7Days = append(last7Days, gin.H{
			"date":  date.Format("2006-01-02"),
			"count": count,
		})
	}

	// Rank recent issues by how many citizen reports landed on them
	recent, _, err := ic.Store.Issues.List(ctx, store.IssueFilter{Limit: 50})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to retrieve issues for report analysis")
		return
	}

	type issueWithReports struct {
		ID       primitive.ObjectID `json:"id"`
		Title    string             `json:"title"`
		Category string             `json:"category"`
		Reports  int64              `json:"reports"`
	}

	var ranked []issueWithReports
	for _, issue := range recent {
		count, err := ic.Store.Reports.CountByIssue(ctx, issue.ID)
		if err != nil {
			count = 0
		}
		ranked = append(ranked, issueWithReports{
			ID:       issue.ID,
			Title:    issue.Title,
			Category: string(issue.Category),
			Reports:  count,
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].Reports > ranked[j].Reports
	})
	topReported := ranked
	if len(ranked) > 5 {
		topReported = ranked[:5]
	}

	totalIssues, err := ic.Store.Issues.CountByStatus(ctx,
		models.Active, models.Resolved, models.UnderDiscussion, models.Ignored)
	if err != nil {
		totalIssues = 0
	}

	totalReports, err := ic.Store.Reports.CountAll(ctx)
	if err != nil {
		totalReports = 0
	}

	openIssues, err := ic.Store.Issues.CountByStatus(ctx, models.Active, models.UnderDiscussion)
	if err != nil {
		openIssues = 0
	}

	respondOK(c, gin.H{
		"issuesByCategory":  issuesByCategory,
		"last7Days":         last7Days,
		"topReportedIssues": topReported,
		"totalIssues":       totalIssues,
		"totalReports":      totalReports,
		"openIssues":        openIssues,
	})
}
