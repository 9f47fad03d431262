package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Poll is a question with a fixed option list, optionally tied to a
// promise. A poll closes implicitly once EndDate passes.
type Poll struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Question   string              `bson:"question" json:"question"`
	PromiseID  *primitive.ObjectID `bson:"promiseId,omitempty" json:"promiseId,omitempty"`
	Options    []string            `bson:"options" json:"options"`
	IsActive   bool                `bson:"isActive" json:"isActive"`
	EndDate    *time.Time          `bson:"endDate,omitempty" json:"endDate,omitempty"`
	TotalVotes int                 `bson:"totalVotes" json:"totalVotes"`
	CreatedAt  time.Time           `bson:"createdAt" json:"createdAt"`
}

// PollVote is a single ballot. Signed-in voters are deduplicated by
// UserID; anonymous voters by IPAddress. The two checks are independent.
type PollVote struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	PollID    primitive.ObjectID  `bson:"pollId" json:"pollId"`
	UserID    *primitive.ObjectID `bson:"userId,omitempty" json:"userId,omitempty"`
	Option    string              `bson:"option" json:"option"`
	IPAddress *string             `bson:"ipAddress,omitempty" json:"ipAddress,omitempty"`
	UserAgent *string             `bson:"userAgent,omitempty" json:"userAgent,omitempty"`
	CreatedAt time.Time           `bson:"createdAt" json:"createdAt"`
}
