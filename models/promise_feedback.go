package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VoteValue is a citizen's verdict on a promise
type VoteValue string

const (
	VoteFulfilled          VoteValue = "fulfilled"
	VotePartiallyFulfilled VoteValue = "partially_fulfilled"
	VoteBroken             VoteValue = "broken"
	VoteNotApplicable      VoteValue = "not_applicable"
)

// ValidVoteValues is used by handlers to validate vote input
var ValidVoteValues = map[VoteValue]bool{
	VoteFulfilled: true, VotePartiallyFulfilled: true,
	VoteBroken: true, VoteNotApplicable: true,
}

// FactCheckRating enum for promise fact checks
type FactCheckRating string

const (
	RatingTrue        FactCheckRating = "true"
	RatingMostlyTrue  FactCheckRating = "mostly_true"
	RatingHalfTrue    FactCheckRating = "half_true"
	RatingMostlyFalse FactCheckRating = "mostly_false"
	RatingFalse       FactCheckRating = "false"
)

var ValidFactCheckRatings = map[FactCheckRating]bool{
	RatingTrue: true, RatingMostlyTrue: true, RatingHalfTrue: true,
	RatingMostlyFalse: true, RatingFalse: true,
}

// PromiseVote holds one user's verdict on one promise. At most one vote
// exists per (promise, user) pair; a repeat submission overwrites the
// earlier one.
type PromiseVote struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PromiseID   primitive.ObjectID `bson:"promise" json:"promiseId"`
	UserID      primitive.ObjectID `bson:"user" json:"userId"`
	Vote        VoteValue          `bson:"vote" json:"vote"`
	Confidence  int                `bson:"confidence" json:"confidence"`
	Comment     *string            `bson:"comment,omitempty" json:"comment,omitempty"`
	IsAnonymous bool               `bson:"isAnonymous" json:"isAnonymous"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// PromiseComment is free-text feedback on a promise, subject to the
// moderation blocklist before it is persisted
type PromiseComment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PromiseID   primitive.ObjectID `bson:"promiseId" json:"promiseId"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	Content     string             `bson:"content" json:"content"`
	IsAnonymous bool               `bson:"isAnonymous" json:"isAnonymous"`
	IsModerated bool               `bson:"isModerated" json:"isModerated"`
	ModeratedBy *string            `bson:"moderatedBy,omitempty" json:"moderatedBy,omitempty"`
	ModeratedAt *time.Time         `bson:"moderatedAt,omitempty" json:"moderatedAt,omitempty"`
	IsDeleted   bool               `bson:"isDeleted" json:"isDeleted"`
	Upvotes     int                `bson:"upvotes" json:"upvotes"`
	Downvotes   int                `bson:"downvotes" json:"downvotes"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// PromiseFactCheck is an editorial claim-vs-reality verdict on a promise
type PromiseFactCheck struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PromiseID  primitive.ObjectID `bson:"promiseId" json:"promiseId"`
	Claim      string             `bson:"claim" json:"claim"`
	Reality    string             `bson:"reality" json:"reality"`
	Rating     FactCheckRating    `bson:"rating" json:"rating"`
	Sources    string             `bson:"sources" json:"sources"`
	VerifiedBy *string            `bson:"verifiedBy,omitempty" json:"verifiedBy,omitempty"`
	VerifiedAt *time.Time         `bson:"verifiedAt,omitempty" json:"verifiedAt,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

// PromiseReminder is a recurring nudge for a user to re-check a promise
type PromiseReminder struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PromiseID primitive.ObjectID `bson:"promiseId" json:"promiseId"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Type      string             `bson:"type" json:"type"`
	Frequency string             `bson:"frequency" json:"frequency"`
	IsActive  bool               `bson:"isActive" json:"isActive"`
	LastSent  *time.Time         `bson:"lastSent,omitempty" json:"lastSent,omitempty"`
	NextDue   time.Time          `bson:"nextDue" json:"nextDue"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
