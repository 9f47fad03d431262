package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Timeline event types
const (
	EventReported = "reported"
	EventUpdated  = "updated"
)

// Timeline sources
const (
	SourceSystem         = "system"
	SourceCitizenReport  = "citizen_report"
	SourceAccountability = "accountability"
	SourceFactCheck      = "fact_check"
)

// TimelineEntry is one audit-trail event on an issue
type TimelineEntry struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	IssueID     primitive.ObjectID `bson:"issueId" json:"issueId"`
	EventType   string             `bson:"eventType" json:"eventType"`
	Description string             `bson:"description" json:"description"`
	Source      string             `bson:"source" json:"source"`
	Date        time.Time          `bson:"date" json:"date"`
}
