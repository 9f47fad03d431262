package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PromiseStatus enum
type PromiseStatus string

const (
	PromisePending            PromiseStatus = "pending"
	PromisePartiallyFulfilled PromiseStatus = "partially_fulfilled"
	PromiseFulfilled          PromiseStatus = "fulfilled"
	PromiseBroken             PromiseStatus = "broken"
)

// Verification levels
const (
	VerificationUnverified = "unverified"
	VerificationVerified   = "verified"
)

// Promise is a political commitment attributed to a party and optionally
// a leader, tracked toward fulfillment
type Promise struct {
	ID                primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Title             string              `bson:"title" json:"title"`
	Description       string              `bson:"description" json:"description"`
	Category          string              `bson:"category" json:"category"`
	Subcategory       *string             `bson:"subcategory,omitempty" json:"subcategory,omitempty"`
	PartyID           primitive.ObjectID  `bson:"partyId" json:"partyId"`
	LeaderID          *primitive.ObjectID `bson:"leaderId,omitempty" json:"leaderId,omitempty"`
	ElectionYear      int                 `bson:"electionYear" json:"electionYear"`
	State             *string             `bson:"state,omitempty" json:"state,omitempty"`
	Constituency      *string             `bson:"constituency,omitempty" json:"constituency,omitempty"`
	PromiseDate       time.Time           `bson:"promiseDate" json:"promiseDate"`
	PromiseLocation   *string             `bson:"promiseLocation,omitempty" json:"promiseLocation,omitempty"`
	SourceURL         *string             `bson:"sourceUrl,omitempty" json:"sourceUrl,omitempty"`
	SourceType        *string             `bson:"sourceType,omitempty" json:"sourceType,omitempty"`
	EvidenceURL       *string             `bson:"evidenceUrl,omitempty" json:"evidenceUrl,omitempty"`
	EvidenceType      *string             `bson:"evidenceType,omitempty" json:"evidenceType,omitempty"`
	Tags              string              `bson:"tags" json:"tags"`
	Status            PromiseStatus       `bson:"status" json:"status"`
	VerificationLevel string              `bson:"verificationLevel" json:"verificationLevel"`
	IsVerified        bool                `bson:"isVerified" json:"isVerified"`
	VerifiedBy        *string             `bson:"verifiedBy,omitempty" json:"verifiedBy,omitempty"`
	VerifiedAt        *time.Time          `bson:"verifiedAt,omitempty" json:"verifiedAt,omitempty"`
	CreatedAt         time.Time           `bson:"createdAt" json:"createdAt"`
}
