package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type Material struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title      string             `bson:"title" json:"title"`
	SessionID  string             `bson:"sessionId" json:"sessionId"`
	TutorEmail string             `bson:"tutorEmail" json:"tutorEmail"`
	Image      string             `bson:"image,omitempty" json:"image,omitempty"`
	DriveLink  string             `bson:"driveLink,omitempty" json:"driveLink,omitempty"`
	CreatedAt  primitive.DateTime `bson:"created_at,omitempty" json:"-"`
}
