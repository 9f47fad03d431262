package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Discussion is a free-text contribution on an issue. Content is screened
// against the moderation blocklist before creation; moderation and
// deletion afterwards are soft flags, never hard deletes.
type Discussion struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	IssueID     primitive.ObjectID `bson:"issueId" json:"issueId"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	Content     string             `bson:"content" json:"content"`
	IsExpert    bool               `bson:"isExpert" json:"isExpert"`
	ExpertField *string            `bson:"expertField,omitempty" json:"expertField,omitempty"`
	IsModerated bool               `bson:"isModerated" json:"isModerated"`
	ModeratedBy *string            `bson:"moderatedBy,omitempty" json:"moderatedBy,omitempty"`
	ModeratedAt *time.Time         `bson:"moderatedAt,omitempty" json:"moderatedAt,omitempty"`
	IsDeleted   bool               `bson:"isDeleted" json:"isDeleted"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
