package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FactCheck is a claim-vs-reality record attached to an issue
type FactCheck struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	IssueID      primitive.ObjectID `bson:"issueId" json:"issueId"`
	Claim        string             `bson:"claim" json:"claim"`
	Reality      string             `bson:"reality" json:"reality"`
	IsMisleading bool               `bson:"isMisleading" json:"isMisleading"`
	Sources      string             `bson:"sources" json:"sources"`
	VerifiedBy   *string            `bson:"verifiedBy,omitempty" json:"verifiedBy,omitempty"`
	VerifiedAt   *time.Time         `bson:"verifiedAt,omitempty" json:"verifiedAt,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
