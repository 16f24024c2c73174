package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// BookedSession snapshots the listing a student booked. It is never updated
// after insertion; booking the same session twice creates two documents.
type BookedSession struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	SessionID    string             `bson:"sessionId" json:"sessionId"`
	StudentEmail string             `bson:"studentEmail" json:"studentEmail"`
	TutorEmail   string             `bson:"tutorEmail,omitempty" json:"tutorEmail,omitempty"`
	SessionTitle string             `bson:"sessionTitle,omitempty" json:"sessionTitle,omitempty"`
	Fee          *float64           `bson:"fee,omitempty" json:"fee,omitempty"`
	CreatedAt    primitive.DateTime `bson:"created_at,omitempty" json:"-"`
}
