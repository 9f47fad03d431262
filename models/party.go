package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Party is a political party that promises are attributed to
type Party struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	ShortName   string             `bson:"shortName" json:"shortName"`
	Description *string            `bson:"description,omitempty" json:"description,omitempty"`
	Logo        *string            `bson:"logo,omitempty" json:"logo,omitempty"`
	FoundedYear *int               `bson:"foundedYear,omitempty" json:"foundedYear,omitempty"`
	Ideology    *string            `bson:"ideology,omitempty" json:"ideology,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// Leader is an individual politician, always tied to a party
type Leader struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	PartyID      primitive.ObjectID `bson:"partyId" json:"partyId"`
	Position     *string            `bson:"position,omitempty" json:"position,omitempty"`
	State        *string            `bson:"state,omitempty" json:"state,omitempty"`
	Constituency *string            `bson:"constituency,omitempty" json:"constituency,omitempty"`
	Photo        *string            `bson:"photo,omitempty" json:"photo,omitempty"`
	Bio          *string            `bson:"bio,omitempty" json:"bio,omitempty"`
	IsActive     bool               `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
