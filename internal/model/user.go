package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Role is the privilege level stored on a User document. The zero value
// means no role was ever set, which is treated the same as a student.
type Role string

const (
	RoleNone    Role = ""
	RoleStudent Role = "student"
	RoleTutor   Role = "tutor"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleNone, RoleStudent, RoleTutor, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	PhotoURL  string             `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	Role      Role               `bson:"role,omitempty" json:"role,omitempty"`
	CreatedAt primitive.DateTime `bson:"created_at,omitempty" json:"-"`
}
