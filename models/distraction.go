package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Distraction flags a media story that crowds out substantive issues
type Distraction struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Category    string             `bson:"category" json:"category"`
	ImpactLevel string             `bson:"impactLevel" json:"impactLevel"`
	Reason      string             `bson:"reason" json:"reason"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	DetectedAt  time.Time          `bson:"detectedAt" json:"detectedAt"`
}
