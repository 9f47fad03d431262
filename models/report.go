package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReportStatus enum
type ReportStatus string

const (
	ReportPending  ReportStatus = "pending"
	ReportVerified ReportStatus = "verified"
	ReportRejected ReportStatus = "rejected"
)

// LocalReport is a citizen-submitted report of a problem on the ground.
// On creation the system tries to link it to an existing issue; IssueID
// stays nil when nothing matches.
type LocalReport struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID  `bson:"userId" json:"userId"`
	IssueID     *primitive.ObjectID `bson:"issueId,omitempty" json:"issueId,omitempty"`
	Title       string              `bson:"title" json:"title"`
	Description string              `bson:"description" json:"description"`
	Category    IssueCategory       `bson:"category" json:"category"`
	State       *string             `bson:"state,omitempty" json:"state,omitempty"`
	City        *string             `bson:"city,omitempty" json:"city,omitempty"`
	Area        *string             `bson:"area,omitempty" json:"area,omitempty"`
	Latitude    *float64            `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude   *float64            `bson:"longitude,omitempty" json:"longitude,omitempty"`
	ImageURL    *string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	IsAnonymous bool                `bson:"isAnonymous" json:"isAnonymous"`
	Status      ReportStatus        `bson:"status" json:"status"`
	Upvotes     int                 `bson:"upvotes" json:"upvotes"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// ReportUpvote records one user's upvote on a report, unique per
// (report, user) pair
type ReportUpvote struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ReportID  primitive.ObjectID `bson:"report" json:"report"`
	UserID    primitive.ObjectID `bson:"user" json:"user"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
