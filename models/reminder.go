package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Reminder is a scheduled nudge for a user, optionally tied to an issue
type Reminder struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID  `bson:"userId" json:"userId"`
	IssueID      *primitive.ObjectID `bson:"issueId,omitempty" json:"issueId,omitempty"`
	Type         string              `bson:"type" json:"type"`
	Message      string              `bson:"message" json:"message"`
	ScheduledFor time.Time           `bson:"scheduledFor" json:"scheduledFor"`
	IsSent       bool                `bson:"isSent" json:"isSent"`
	SentAt       *time.Time          `bson:"sentAt,omitempty" json:"sentAt,omitempty"`
	IsActive     bool                `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time           `bson:"createdAt" json:"createdAt"`
}
