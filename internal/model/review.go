package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type Review struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	SessionID   string             `bson:"sessionId" json:"sessionId"`
	StudentName string             `bson:"studentName,omitempty" json:"studentName,omitempty"`
	Rating      float64            `bson:"rating" json:"rating"`
	Review      string             `bson:"review" json:"review"`
	CreatedAt   primitive.DateTime `bson:"created_at,omitempty" json:"-"`
}

type Note struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserEmail string             `bson:"userEmail" json:"userEmail"`
	Title     string             `bson:"title" json:"title"`
	Note      string             `bson:"note" json:"note"`
	CreatedAt primitive.DateTime `bson:"created_at,omitempty" json:"-"`
}

type Announcement struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title     string             `bson:"title" json:"title"`
	Details   string             `bson:"details" json:"details"`
	CreatedAt primitive.DateTime `bson:"created_at,omitempty" json:"-"`
}
