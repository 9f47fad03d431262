package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IssueCategory enum
type IssueCategory string

const (
	Health         IssueCategory = "health"
	Education      IssueCategory = "education"
	Infrastructure IssueCategory = "infrastructure"
	Economy        IssueCategory = "economy"
	Environment    IssueCategory = "environment"
	OtherCategory  IssueCategory = "other"
)

// IssueStatus enum
type IssueStatus string

const (
	Active          IssueStatus = "active"
	Resolved        IssueStatus = "resolved"
	UnderDiscussion IssueStatus = "under_discussion"
	Ignored         IssueStatus = "ignored"
)

// IssuePriority enum
type IssuePriority string

const (
	PriorityLow    IssuePriority = "low"
	PriorityMedium IssuePriority = "medium"
	PriorityHigh   IssuePriority = "high"
)

// IssueScope enum, local vs national reach of an issue
type IssueScope string

const (
	ScopeLocal    IssueScope = "local"
	ScopeNational IssueScope = "national"
)

// ValidIssueStatuses is used by handlers to validate status input
var ValidIssueStatuses = map[IssueStatus]bool{
	Active: true, Resolved: true, UnderDiscussion: true, Ignored: true,
}

// categoryImpact holds the base impact score per category. Categories not
// listed here fall back to a base score of 50.
var categoryImpact = map[IssueCategory]int{
	Health:         85,
	Education:      80,
	Infrastructure: 75,
	Economy:        90,
	Environment:    70,
}

// ImpactScore computes an issue's impact score from its category and scope.
// National issues get a flat +10 on top of the category base. The score is
// computed once at creation and never re-derived afterwards.
func ImpactScore(category IssueCategory, scope IssueScope) int {
	score, ok := categoryImpact[category]
	if !ok {
		score = 50
	}
	if scope == ScopeNational {
		score += 10
	}
	return score
}

// PriorityForScore maps an impact score to a priority tier.
func PriorityForScore(score int) IssuePriority {
	switch {
	case score >= 80:
		return PriorityHigh
	case score >= 60:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// Issue represents a tracked public problem
type Issue struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title              string             `bson:"title" json:"title"`
	Summary            string             `bson:"summary" json:"summary"`
	Description        string             `bson:"description" json:"description"`
	Category           IssueCategory      `bson:"category" json:"category"`
	Subcategory        *string            `bson:"subcategory,omitempty" json:"subcategory,omitempty"`
	Scope              IssueScope         `bson:"localVsNational" json:"localVsNational"`
	ImpactScore        int                `bson:"impactScore" json:"impactScore"`
	Priority           IssuePriority      `bson:"priority" json:"priority"`
	Status             IssueStatus        `bson:"status" json:"status"`
	State              *string            `bson:"state,omitempty" json:"state,omitempty"`
	City               *string            `bson:"city,omitempty" json:"city,omitempty"`
	Area               *string            `bson:"area,omitempty" json:"area,omitempty"`
	SourceURL          *string            `bson:"sourceUrl,omitempty" json:"sourceUrl,omitempty"`
	SourceTitle        *string            `bson:"sourceTitle,omitempty" json:"sourceTitle,omitempty"`
	Tags               string             `bson:"tags" json:"tags"`
	ExpectedResolution *time.Time         `bson:"expectedResolution,omitempty" json:"expectedResolution,omitempty"`
	IsVerified         bool               `bson:"isVerified" json:"isVerified"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	LastUpdated        time.Time          `bson:"lastUpdated" json:"lastUpdated"`
}
