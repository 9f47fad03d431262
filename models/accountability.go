package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Accountability statuses
const (
	AccountabilityPending   = "pending"
	AccountabilityCompleted = "completed"
	AccountabilityOverdue   = "overdue"
)

// Accountability tracks a concrete promise made against an issue:
// who promised what, what was expected, and what actually happened.
// CompletedAt is stamped automatically when the status transitions to
// completed without an explicit timestamp.
type Accountability struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	IssueID        primitive.ObjectID `bson:"issueId" json:"issueId"`
	PromiseType    string             `bson:"promiseType" json:"promiseType"`
	Promisor       string             `bson:"promisor" json:"promisor"`
	Promise        string             `bson:"promise" json:"promise"`
	PromisedDate   time.Time          `bson:"promisedDate" json:"promisedDate"`
	ExpectedAction string             `bson:"expectedAction" json:"expectedAction"`
	ActualAction   *string            `bson:"actualAction,omitempty" json:"actualAction,omitempty"`
	Status         string             `bson:"status" json:"status"`
	CompletedAt    *time.Time         `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	LastUpdated    time.Time          `bson:"lastUpdated" json:"lastUpdated"`
}
