package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type SessionStatus string

const (
	SessionStatusPending  SessionStatus = "pending"
	SessionStatusApproved SessionStatus = "approved"
	SessionStatusRejected SessionStatus = "rejected"
)

// Session is a tutoring session listing. Fee stays unset until an admin
// approves the session and supplies one.
type Session struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title             string             `bson:"title" json:"title"`
	TutorName         string             `bson:"tutorName" json:"tutorName"`
	TutorEmail        string             `bson:"tutorEmail" json:"tutorEmail"`
	Description       string             `bson:"description" json:"description"`
	RegistrationStart string             `bson:"registrationStart,omitempty" json:"registrationStart,omitempty"`
	RegistrationEnd   string             `bson:"registrationEnd,omitempty" json:"registrationEnd,omitempty"`
	ClassStart        string             `bson:"classStart,omitempty" json:"classStart,omitempty"`
	ClassEnd          string             `bson:"classEnd,omitempty" json:"classEnd,omitempty"`
	Duration          string             `bson:"duration,omitempty" json:"duration,omitempty"`
	Status            SessionStatus      `bson:"status" json:"status"`
	Fee               *float64           `bson:"fee,omitempty" json:"fee,omitempty"`
	CreatedAt         primitive.DateTime `bson:"created_at,omitempty" json:"-"`
}

// Feedback is appended on every rejection. The feedback shown to a tutor is
// the most recently inserted one matching the session.
type Feedback struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	SessionID  string             `bson:"sessionId" json:"sessionId"`
	TutorEmail string             `bson:"tutorEmail,omitempty" json:"tutorEmail,omitempty"`
	Feedback   string             `bson:"feedback" json:"feedback"`
	CreatedAt  primitive.DateTime `bson:"created_at,omitempty" json:"-"`
}
