package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// RoleAdmin is the only non-default role.
const RoleAdmin = "admin"

// User is a portal account keyed by email. An empty Role is an ordinary user.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email string             `bson:"email" json:"email"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}

// IsAdmin reports whether the stored role grants admin privileges.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// UserProfile is the client-writable part of a user record.
// Role changes only through admin promotion.
type UserProfile struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
